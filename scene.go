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

// Package hero draws the placeholder hero image of the car rental site:
// a purple background with a white car silhouette on two black wheels,
// saved as a JPEG file.
package hero

import (
	"image/color"

	"seehuhn.de/go/hero/shape"
)

// Scene is a list of filled shapes on a plain background.
type Scene struct {
	Width, Height int
	Background    color.RGBA

	// Layers are painted in order, later layers on top of earlier ones.
	Layers []Layer
}

// Layer is a shape filled with a single colour.
type Layer struct {
	Shape shape.Shape
	Color color.RGBA
}

// Colours used by the car hero image.
var (
	Purple = color.RGBA{R: 0x6f, G: 0x42, B: 0xc1, A: 0xff} // #6f42c1
	White  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black  = color.RGBA{A: 0xff}
)

// CarHero returns the scene of the car hero image.
func CarHero() Scene {
	body := shape.Polygon(shape.Points(
		[2]int{300, 300}, // bottom left
		[2]int{700, 300}, // bottom right
		[2]int{700, 250}, // back
		[2]int{650, 200}, // roof back
		[2]int{450, 150}, // roof middle
		[2]int{350, 200}, // roof front
		[2]int{250, 200}, // hood
		[2]int{300, 300},
	))

	return Scene{
		Width:      800,
		Height:     400,
		Background: Purple,
		Layers: []Layer{
			{Shape: body, Color: White},
			{Shape: shape.Ellipse{Box: shape.BoxInclusive(280, 280, 320, 320)}, Color: Black}, // front wheel
			{Shape: shape.Ellipse{Box: shape.BoxInclusive(580, 280, 620, 320)}, Color: Black}, // rear wheel
		},
	}
}
