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

// Command carhero writes the placeholder hero image car-hero.jpg into the
// current directory. It takes no arguments.
package main

import (
	"log/slog"
	"os"

	"seehuhn.de/go/hero"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	hero.SetLogger(logger)

	if err := hero.Run(); err != nil {
		logger.Error("cannot write hero image", "err", err)
		os.Exit(1)
	}
}
