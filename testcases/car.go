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
	"seehuhn.de/go/hero/shape"
)

// The shapes of the car hero image, each on a full-size canvas.
// These must stay in sync with hero.CarHero.
var carCases = []TestCase{
	{
		Name:   "silhouette",
		Path:   CarSilhouette.Path(),
		Width:  800,
		Height: 400,
		Rule:   NonZero,
	},
	{
		Name:   "front_wheel",
		Path:   FrontWheel.Path(),
		Width:  800,
		Height: 400,
		Rule:   NonZero,
	},
	{
		Name:   "rear_wheel",
		Path:   RearWheel.Path(),
		Width:  800,
		Height: 400,
		Rule:   NonZero,
	},
}

var (
	CarSilhouette = shape.Polygon(shape.Points(
		[2]int{300, 300}, // bottom left
		[2]int{700, 300}, // bottom right
		[2]int{700, 250}, // back
		[2]int{650, 200}, // roof back
		[2]int{450, 150}, // roof middle
		[2]int{350, 200}, // roof front
		[2]int{250, 200}, // hood
		[2]int{300, 300},
	))
	FrontWheel = shape.Ellipse{Box: shape.BoxInclusive(280, 280, 320, 320)}
	RearWheel  = shape.Ellipse{Box: shape.BoxInclusive(580, 280, 620, 320)}
)
