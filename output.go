// seehuhn.de/go/hero - a placeholder hero image generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package hero

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
)

// OutputName is the file written by [Run].
const OutputName = "car-hero.jpg"

// Quality is the JPEG quality setting used by [Encode].
const Quality = jpeg.DefaultQuality

// IOError is returned when the image cannot be encoded or written.
type IOError struct {
	Op   string // the failing step, e.g. "create", "encode" or "rename"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("hero: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Run draws the car hero image and writes it to car-hero.jpg in the
// current directory.
func Run() error {
	return CarHero().WriteFile(OutputName)
}

// Encode writes img to w in JPEG format.
func Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: Quality})
}

// WriteFile renders the scene and stores it as a JPEG file.
//
// The image is first written to a temporary file in the same directory,
// which then replaces name. If an error occurs, name is left untouched
// and the temporary file is removed.
func (s Scene) WriteFile(name string) (err error) {
	img := s.Render()

	dir := filepath.Dir(name)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: name, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	cw := &countWriter{w: tmp}
	buf := bufio.NewWriter(cw)
	if err := Encode(buf, img); err != nil {
		return &IOError{Op: "encode", Path: name, Err: err}
	}
	if err := buf.Flush(); err != nil {
		return &IOError{Op: "write", Path: name, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &IOError{Op: "sync", Path: name, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: name, Err: err}
	}
	// CreateTemp uses mode 0600, a plain create would give 0666 &^ umask
	if err := os.Chmod(tmpName, 0644); err != nil {
		return &IOError{Op: "chmod", Path: name, Err: err}
	}
	if err := os.Rename(tmpName, name); err != nil {
		return &IOError{Op: "rename", Path: name, Err: err}
	}

	logger().Debug("image written", "path", name,
		"width", s.Width, "height", s.Height, "bytes", cw.n)
	return nil
}

// countWriter counts the bytes written through it.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
