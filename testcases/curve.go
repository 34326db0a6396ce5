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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/hero/shape"
)

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_loop",
		Path:   cubicCurve(10, 32, 60, 5, 4, 59, 54, 32), // self-intersecting loop
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "circle",
		Path:   shape.Ellipse{Box: rect.Rect{LLx: 7, LLy: 7, URx: 57, URy: 57}}.Path(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "ellipse_wide",
		Path:   shape.Ellipse{Box: rect.Rect{LLx: 4, LLy: 20, URx: 60, URy: 44}}.Path(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "ellipse_small",
		Path:   shape.Ellipse{Box: shape.BoxInclusive(30, 30, 33, 33)}.Path(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// quadraticCurve builds a closed path from a quadratic Bézier and its chord.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed path from a cubic Bézier and its chord.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}
