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

// Package shape describes the filled shapes which make up a scene.
//
// Coordinates are in pixels, with the origin at the top-left corner of the
// image and y increasing downwards. Pixel (x, y) occupies the unit square
// [x, x+1] x [y, y+1].
package shape

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for a cubic Bézier approximation of
// a quarter circle of radius 1.
const kappa = 0.5522847498307936

// Shape is a closed region of the plane.
type Shape interface {
	// Path returns the outline of the shape.
	Path() *path.Data

	// Bounds returns the smallest rectangle containing the shape.
	Bounds() rect.Rect
}

// Polygon is a closed polygon through the given vertices. A last vertex
// equal to the first is allowed and has no effect.
type Polygon []vec.Vec2

// Path implements the [Shape] interface.
func (p Polygon) Path() *path.Data {
	d := &path.Data{}
	if len(p) == 0 {
		return d
	}
	d = d.MoveTo(p[0])
	for _, v := range p[1:] {
		d = d.LineTo(v)
	}
	return d.Close()
}

// Bounds implements the [Shape] interface.
func (p Polygon) Bounds() rect.Rect {
	if len(p) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: p[0].X, LLy: p[0].Y, URx: p[0].X, URy: p[0].Y}
	for _, v := range p[1:] {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	return b
}

// Ellipse is the axis-aligned ellipse inscribed in Box.
type Ellipse struct {
	Box rect.Rect
}

// Path implements the [Shape] interface.
// The outline is made of four cubic Bézier arcs, starting at the rightmost
// point and running through the bottom of the ellipse first.
func (e Ellipse) Path() *path.Data {
	cx := (e.Box.LLx + e.Box.URx) / 2
	cy := (e.Box.LLy + e.Box.URy) / 2
	rx := (e.Box.URx - e.Box.LLx) / 2
	ry := (e.Box.URy - e.Box.LLy) / 2
	if rx <= 0 || ry <= 0 {
		return &path.Data{}
	}
	kx, ky := kappa*rx, kappa*ry

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}

// Bounds implements the [Shape] interface.
func (e Ellipse) Bounds() rect.Rect {
	return e.Box
}

// BoxInclusive returns the rectangle covering the pixels x0..x1 and
// y0..y1, both ends included.
func BoxInclusive(x0, y0, x1, y1 int) rect.Rect {
	return rect.Rect{
		LLx: float64(min(x0, x1)),
		LLy: float64(min(y0, y1)),
		URx: float64(max(x0, x1) + 1),
		URy: float64(max(y0, y1) + 1),
	}
}

// Points converts a list of integer coordinate pairs into vertices.
func Points(xy ...[2]int) []vec.Vec2 {
	res := make([]vec.Vec2, len(xy))
	for i, p := range xy {
		res[i] = pt(float64(p[0]), float64(p[1]))
	}
	return res
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
