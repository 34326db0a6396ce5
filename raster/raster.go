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

// Package raster converts closed vector paths into anti-aliased pixel
// coverage.
//
// Coverage is the fraction of a pixel's area which lies inside the filled
// path, from 0 (outside) to 1 (inside). Results are delivered one scanline
// at a time through a callback, so that the caller decides how coverage is
// turned into colour.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rule selects how the interior of a self-intersecting path is determined.
type Rule int

const (
	// NonZero fills every point with a non-zero winding number.
	NonZero Rule = iota

	// EvenOdd fills every point with an odd winding number.
	EvenOdd
)

func (r Rule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// EmitFunc receives the coverage of one scanline. Coverage[i] belongs to
// pixel (xMin+i, y). The slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yRange() (lo, hi float64) {
	return min(e.y0, e.y1), max(e.y0, e.y1)
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasterizer fills paths. Create one instance and reuse it: internal
// buffers grow as needed but are never released, so that repeated fills
// do not allocate.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this device-space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments which approximate it. Must be positive.
	Flatness float64

	// denseLimit is the largest bounding box area (in pixels) which is
	// rasterised with full 2D buffers. Larger paths use an active edge list.
	denseLimit int

	edges     []edge
	cover     []float32 // signed vertical extent of edges, per pixel; reused as output
	area      []float32 // cover weighted by the horizontal position inside the pixel
	active    []int     // indices into edges
	rowInUse  []bool
	crossings []float64

	bboxEmpty bool
	bbox      rect.Rect // device-space bounding box of edges
}

// NewRasterizer returns a Rasterizer for the given clip rectangle with the
// identity transformation and default flatness.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		denseLimit: denseLimit,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness

	r.edges = r.edges[:0]
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.active = r.active[:0]
	r.rowInUse = r.rowInUse[:0]
	r.crossings = r.crossings[:0]
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.Fill(p, EvenOdd, emit)
}

// Fill fills p using the given rule. Every subpath is implicitly closed.
// Emit is called at most once per scanline, in increasing y order, and
// only for scanlines with non-zero coverage.
func (r *Rasterizer) Fill(p *path.Data, rule Rule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.denseLimit {
		r.fillDense(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillSparse(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// collectEdges flattens p into device-space edges. The returned pixel
// bounds are clamped to the clip rectangle; ok is false if nothing inside
// the clip can be covered.
func (r *Rasterizer) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	if p == nil {
		return 0, 0, 0, 0, false
	}

	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
			open = false
		}
	}
	if open && cur != start {
		r.addEdge(cur, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms the user-space segment p0-p1 to device space and
// records it. Horizontal segments carry no coverage and are dropped.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	box := rect.Rect{LLx: min(x0, x1), LLy: min(y0, y1), URx: max(x0, x1), URy: max(y0, y1)}
	if r.bboxEmpty {
		r.bbox = box
		r.bboxEmpty = false
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, box.LLx)
	r.bbox.LLy = min(r.bbox.LLy, box.LLy)
	r.bbox.URx = max(r.bbox.URx, box.URx)
	r.bbox.URy = max(r.bbox.URy, box.URy)
}

// linearPart applies the CTM without its translation.
func (r *Rasterizer) linearPart(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier p0, p1, p2 by line
// segments whose device-space error is at most r.Flatness.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	dev := r.linearPart(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		next := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, next)
		prev = next
	}
}

// flattenCubic approximates the cubic Bézier p0, ..., p3 by line segments.
// The number of segments follows Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.linearPart(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linearPart(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		next := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, next)
		prev = next
	}
}

// The accumulation buffers hold, for every pixel of a scanline,
//
//	cover: the signed vertical extent of all edge pieces inside the pixel
//	area:  the same quantity weighted by the part of the pixel to the
//	       right of the edge piece
//
// Walking the scanline from left to right, the signed area of the path
// inside pixel i is the running sum of cover over pixels 0..i-1 plus
// area[i].

// accumulate adds the part of e inside scanline y to cover and area.
// Both buffers are indexed by x - xMin. Edge pieces to the left of xMin
// are folded into pixel 0; pieces at or beyond xMax are ignored.
func (r *Rasterizer) accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	lo, hi := e.yRange()
	top := max(float64(y), lo)
	bot := min(float64(y+1), hi)
	if bot <= top {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(top), e.xAt(bot)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	switch {
	case right < xMin:
		c := sign * float32(bot-top)
		cover[0] += c
		area[0] += c
		return
	case left >= xMax:
		return
	case left == right:
		r.deposit(e, top, bot, sign, left, cover, area, xMin, xMax)
		return
	}

	// split at every vertical pixel boundary the piece crosses
	r.crossings = append(r.crossings[:0], top, bot)
	for x := left + 1; x <= right; x++ {
		yx := e.y0 + (float64(x)-e.x0)/e.dxdy
		if yx > top && yx < bot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := 1; i < len(r.crossings); i++ {
		a, b := r.crossings[i-1], r.crossings[i]
		if b <= a {
			continue
		}
		pix := int(math.Floor(e.xAt((a + b) / 2)))
		r.deposit(e, a, b, sign, pix, cover, area, xMin, xMax)
	}
}

// deposit records the piece of e between top and bot, which lies inside
// pixel column pix.
func (r *Rasterizer) deposit(e *edge, top, bot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(bot-top)
	if pix < xMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= xMax {
		return
	}

	frac := e.xAt((top+bot)/2) - float64(pix)
	i := pix - xMin
	cover[i] += c
	area[i] += c * float32(1-frac)
}

// integrate turns accumulated cover and area into coverage, in place.
func integrate(cover, area []float32, rule Rule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}

		if rule == EvenOdd {
			raw -= 2 * float32(int(raw/2))
			if raw > 1 {
				raw = 2 - raw
			}
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

// trimZeros strips zero coverage from both ends of a scanline.
// It returns nil if the whole scanline is zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillDense rasterises with one cover/area buffer for the whole bounding
// box. Each edge is visited once.
func (r *Rasterizer) fillDense(xMin, xMax, yMin, yMax int, rule Rule, emit EmitFunc) {
	w, h := xMax-xMin, yMax-yMin

	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)
	r.rowInUse = slices.Grow(r.rowInUse[:0], h)[:h]
	clear(r.rowInUse)

	for i := range r.edges {
		e := &r.edges[i]
		lo, hi := e.yRange()
		first := max(int(math.Floor(lo)), yMin)
		last := min(int(math.Floor(hi))+1, yMax)
		for y := first; y < last; y++ {
			row := y - yMin
			off := row * w
			r.accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			r.rowInUse[row] = true
		}
	}

	for row := range h {
		if !r.rowInUse[row] {
			continue
		}
		off := row * w
		line := r.cover[off : off+w]
		integrate(line, r.area[off:off+w], rule)
		if trimmed, k := trimZeros(line); trimmed != nil {
			emit(yMin+row, xMin+k, trimmed)
		}
	}
}

// fillSparse rasterises scanline by scanline, keeping only the edges which
// intersect the current scanline.
func (r *Rasterizer) fillSparse(xMin, xMax, yMin, yMax int, rule Rule, emit EmitFunc) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) {
			if lo, _ := r.edges[next].yRange(); lo >= bot {
				break
			}
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			lo, hi := e.yRange()
			if hi <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			if min(bot, hi) > max(top, lo) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, k := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+k, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default curve tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent for which
	// an edge is kept.
	horizontalEdgeThreshold = 1e-10

	// denseLimit is the default bounding box area, in pixels, below which
	// fillDense is used.
	denseLimit = 65536
)
