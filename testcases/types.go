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

// Package testcases holds the fill geometry used to check the rasteriser
// against independent renderers.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single fill to render.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   *path.Data    // the geometry to fill
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Rule   FillRule      // how the interior is determined
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
