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

package shape

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

func TestPolygonPath(t *testing.T) {
	p := Polygon(Points([2]int{0, 0}, [2]int{10, 0}, [2]int{10, 5}, [2]int{0, 0}))
	d := p.Path()

	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if len(d.Cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(d.Cmds), len(want))
	}
	for i, cmd := range want {
		if d.Cmds[i] != cmd {
			t.Errorf("command %d: got %v, want %v", i, d.Cmds[i], cmd)
		}
	}
	if len(d.Coords) != 4 {
		t.Errorf("got %d coordinates, want 4", len(d.Coords))
	}
}

func TestPolygonEmpty(t *testing.T) {
	var p Polygon
	if d := p.Path(); len(d.Cmds) != 0 {
		t.Errorf("empty polygon produced %d commands", len(d.Cmds))
	}
	if b := p.Bounds(); b != (rect.Rect{}) {
		t.Errorf("empty polygon has bounds %v", b)
	}
}

func TestPolygonBounds(t *testing.T) {
	p := Polygon(Points(
		[2]int{300, 300}, [2]int{700, 300}, [2]int{700, 250}, [2]int{650, 200},
		[2]int{450, 150}, [2]int{350, 200}, [2]int{250, 200}, [2]int{300, 300},
	))
	want := rect.Rect{LLx: 250, LLy: 150, URx: 700, URy: 300}
	if got := p.Bounds(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBoxInclusive(t *testing.T) {
	want := rect.Rect{LLx: 280, LLy: 280, URx: 321, URy: 321}
	if got := BoxInclusive(280, 280, 320, 320); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// corners may be given in either order
	if got := BoxInclusive(320, 320, 280, 280); got != want {
		t.Errorf("swapped corners: got %v, want %v", got, want)
	}
}

// TestEllipseOnCurve checks that the arc end points lie on the ellipse and
// that the midpoint of each arc deviates from it by less than 0.03%.
func TestEllipseOnCurve(t *testing.T) {
	e := Ellipse{Box: rect.Rect{LLx: 10, LLy: 20, URx: 110, URy: 60}}
	cx, cy, rx, ry := 60.0, 40.0, 50.0, 20.0

	d := e.Path()
	if len(d.Cmds) != 6 || d.Cmds[0] != path.CmdMoveTo || d.Cmds[5] != path.CmdClose {
		t.Fatalf("unexpected command sequence %v", d.Cmds)
	}

	start := d.Coords[0]
	for i := range 4 {
		c := d.Coords[1+3*i : 4+3*i]
		p0 := start
		if i > 0 {
			p0 = d.Coords[3*i]
		}
		for _, q := range []struct{ x, y float64 }{
			{c[2].X, c[2].Y},
			{ // B(1/2)
				(p0.X + 3*c[0].X + 3*c[1].X + c[2].X) / 8,
				(p0.Y + 3*c[0].Y + 3*c[1].Y + c[2].Y) / 8,
			},
		} {
			u, v := (q.x-cx)/rx, (q.y-cy)/ry
			r := math.Hypot(u, v)
			if math.Abs(r-1) > 3e-4 {
				t.Errorf("arc %d: point (%g, %g) has normalised radius %g", i, q.x, q.y, r)
			}
		}
	}
}

func TestEllipseDegenerate(t *testing.T) {
	e := Ellipse{Box: rect.Rect{LLx: 5, LLy: 5, URx: 5, URy: 10}}
	if d := e.Path(); len(d.Cmds) != 0 {
		t.Errorf("zero-width ellipse produced %d commands", len(d.Cmds))
	}
}
