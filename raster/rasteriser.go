// seehuhn.de/go/carto - cartographic projections and geometry streams
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

// Package raster draws projected geometry into images.
//
// [Rasteriser] computes exact-area anti-aliased coverage for filled
// outlines given in pixel coordinates.  [Canvas] builds on it to provide a
// drawing surface for [seehuhn.de/go/carto/geopath.Path].
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule selects which points count as inside an outline.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// edge is a line segment in pixel coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts outlines to pixel coverage values.
//
// Outlines are added using [Rasteriser.AddPath] or [Rasteriser.AddPolygon]
// and then filled using [Rasteriser.Fill].  Internal buffers grow as needed
// but never shrink, so that a Rasteriser can be reused without allocations.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Clip is the output region in pixel coordinates.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in pixels.
	// Must be > 0.
	Flatness float64

	edges     []edge
	active    []int
	cover     []float32 // cover change per pixel; reused as output
	area      []float32 // area within pixel
	crossings []float64 // y values where an edge crosses a pixel column

	bboxEmpty        bool
	bxMin, bxMax     float64
	byMin, byMax     float64
	subStart, subCur vec.Vec2
	subOpen          bool
}

// NewRasteriser returns a new Rasteriser for the given clip rectangle.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		Clip:      clip,
		Flatness:  defaultFlatness,
		bboxEmpty: true,
	}
}

// Reset discards all edges and sets a new clip rectangle, keeping the
// internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	r.subOpen = false
}

// AddPath adds the outline of p.  Open subpaths are closed implicitly.
func (r *Rasteriser) AddPath(p *path.Data) {
	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.closeSubpath()
			r.subStart = p.Coords[i]
			r.subCur = r.subStart
			r.subOpen = true
			i++
		case path.CmdLineTo:
			r.addEdge(r.subCur, p.Coords[i])
			r.subCur = p.Coords[i]
			i++
		case path.CmdQuadTo:
			r.flattenQuadratic(r.subCur, p.Coords[i], p.Coords[i+1], r.addEdge)
			r.subCur = p.Coords[i+1]
			i += 2
		case path.CmdCubeTo:
			r.flattenCubic(r.subCur, p.Coords[i], p.Coords[i+1], p.Coords[i+2], r.addEdge)
			r.subCur = p.Coords[i+2]
			i += 3
		case path.CmdClose:
			r.closeSubpath()
		}
	}
	r.closeSubpath()
}

func (r *Rasteriser) closeSubpath() {
	if r.subOpen && r.subCur != r.subStart {
		r.addEdge(r.subCur, r.subStart)
	}
	r.subCur = r.subStart
	r.subOpen = false
}

// AddPolygon adds the closed polygon with the given vertices.
func (r *Rasteriser) AddPolygon(pts ...vec.Vec2) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		r.addEdge(p, q)
	}
}

// addEdge records the segment from p0 to p1.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	if !finite(p0) || !finite(p1) {
		return
	}
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = p0.X, p0.X
		r.byMin, r.byMax = p0.Y, p0.Y
		r.bboxEmpty = false
	}
	r.bxMin = min(r.bxMin, p0.X, p1.X)
	r.bxMax = max(r.bxMax, p0.X, p1.X)
	r.byMin = min(r.byMin, p0.Y, p1.Y)
	r.byMax = max(r.byMax, p0.Y, p1.Y)
}

// flattenQuadratic splits a quadratic Bézier into line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// (P0 - 2*P1 + P2) / 4 bounds the distance to the chord
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if d := e.Length(); d > r.Flatness {
		n = int(math.Ceil(math.Sqrt(d / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic splits a cubic Bézier into line segments, using Wang's
// formula for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Fill computes the coverage of all outlines added since the last call to
// Fill or Reset, and then discards the outlines.
//
// Coverage is delivered row by row, from top to bottom.  The coverage
// slice passed to emit is only valid for the duration of the callback.
func (r *Rasteriser) Fill(rule FillRule, emit func(y, xMin int, coverage []float32)) {
	defer func() {
		r.edges = r.edges[:0]
		r.bboxEmpty = true
	}()
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop, yBot := float64(y), float64(y+1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yBot {
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
			if max(e.y0, e.y1) <= yTop {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == NonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// Coverage accumulation:
//
// An edge crossing a pixel contributes cover = ±dy to the pixel, and
// area = cover·(1 - xFrac) where xFrac is the horizontal position of the
// crossing within the pixel.  Integrating from left to right, the coverage
// of pixel i is the sum of the cover values of all pixels left of i, plus
// the area value of pixel i.

// accumulate adds the part of e within scanline y to the cover and area
// buffers, which are indexed by x - xMin.  The return value reports whether
// the edge overlaps the scanline.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xa, xb)))
	pixRight := int(math.Floor(max(xa, xb)))

	if pixLeft >= xMax {
		return false
	}
	if pixLeft == pixRight || pixRight < xMin {
		r.deposit(e, yTop, yBot, sign, pixLeft, xMin, xMax)
		return true
	}

	// Split the edge where it crosses pixel columns.  Columns outside the
	// clip region need no splitting.
	r.crossings = append(r.crossings[:0], yTop, yBot)
	dydx := 1 / e.dxdy
	for x := max(pixLeft+1, xMin); x <= min(pixRight, xMax); x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)
	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		r.deposit(e, y0, y1, sign, int(math.Floor(xMid)), xMin, xMax)
	}
	return true
}

// deposit adds the piece of e between y0 and y1, which lies within pixel
// column pix.
func (r *Rasteriser) deposit(e *edge, y0, y1 float64, sign float32, pix, xMin, xMax int) {
	c := sign * float32(y1-y0)
	switch {
	case pix < xMin:
		// left of the clip region: affects all pixels
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		frac := xMid - float64(pix)
		r.cover[pix-xMin] += c
		r.area[pix-xMin] += c * float32(1-frac)
	}
}

// integrateNonZero converts cover and area values to coverage using the
// nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		cover[i] = min(abs32(v), 1)
	}
}

// integrateEvenOdd converts cover and area values to coverage using the
// even-odd rule.  The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := abs32(acc + area[i])
		acc += cover[i]
		v -= 2 * float32(int(v/2))
		cover[i] = 1 - abs32(1-v)
	}
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero part of coverage and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
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

const (
	// defaultFlatness is the default curve flattening tolerance in pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10
)
