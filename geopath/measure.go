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

package geopath

import (
	"math"

	"github.com/paulmach/orb"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/carto/fsum"
)

// Bounds records the bounding box of all points it receives.
// The zero value is ready to use.
type Bounds struct {
	x0, y0, x1, y1 float64
	started        bool
}

func (b *Bounds) Point(x, y, _ float64) {
	if !b.started {
		b.x0, b.y0 = math.Inf(1), math.Inf(1)
		b.x1, b.y1 = math.Inf(-1), math.Inf(-1)
		b.started = true
	}
	b.x0 = min(b.x0, x)
	b.y0 = min(b.y0, y)
	b.x1 = max(b.x1, x)
	b.y1 = max(b.y1, y)
}

func (b *Bounds) LineStart()    {}
func (b *Bounds) LineEnd()      {}
func (b *Bounds) PolygonStart() {}
func (b *Bounds) PolygonEnd()   {}
func (b *Bounds) Sphere()       {}

// Result returns the bounding box and resets b.  If no points were
// received, LL is +Inf and UR is -Inf.
func (b *Bounds) Result() rect.Rect {
	var res rect.Rect
	if b.started {
		res = rect.Rect{LLx: b.x0, LLy: b.y0, URx: b.x1, URy: b.y1}
	} else {
		inf := math.Inf(1)
		res = rect.Rect{LLx: inf, LLy: inf, URx: -inf, URy: -inf}
	}
	b.started = false
	return res
}

// Area computes the planar area enclosed by polygons.  The area of every
// ring counts positively, independent of orientation, so holes add to the
// total.  Points and lines have no area.
// The zero value is ready to use.
type Area struct {
	sum    fsum.Adder
	ring   fsum.Adder
	inPoly bool
	inRing bool
	first  bool
	x00    float64
	y00    float64
	x0, y0 float64
}

func (a *Area) Point(x, y, _ float64) {
	if !a.inRing {
		return
	}
	if a.first {
		a.x00, a.y00 = x, y
		a.first = false
	} else {
		a.ring.Add(a.y0*x - a.x0*y)
	}
	a.x0, a.y0 = x, y
}

func (a *Area) LineStart() {
	if a.inPoly {
		a.inRing = true
		a.first = true
		a.ring.Reset()
	}
}

func (a *Area) LineEnd() {
	if !a.inRing {
		return
	}
	if !a.first {
		a.Point(a.x00, a.y00, 0)
		a.sum.Add(math.Abs(a.ring.Value()))
	}
	a.inRing = false
}

func (a *Area) PolygonStart() { a.inPoly = true }
func (a *Area) PolygonEnd()   { a.inPoly = false }
func (a *Area) Sphere()       {}

// Result returns the accumulated area and resets a.
func (a *Area) Result() float64 {
	res := a.sum.Value() / 2
	a.sum.Reset()
	return res
}

// Length computes the planar length of lines and polygon boundaries.
// The zero value is ready to use.
type Length struct {
	sum      fsum.Adder
	inPoly   bool
	inLine   bool
	first    bool
	x00, y00 float64
	x0, y0   float64
}

func (l *Length) Point(x, y, _ float64) {
	if !l.inLine {
		return
	}
	if l.first {
		l.x00, l.y00 = x, y
		l.first = false
	} else {
		l.sum.Add(math.Hypot(x-l.x0, y-l.y0))
	}
	l.x0, l.y0 = x, y
}

func (l *Length) LineStart() {
	l.inLine = true
	l.first = true
}

func (l *Length) LineEnd() {
	if l.inPoly && !l.first {
		l.Point(l.x00, l.y00, 0)
	}
	l.inLine = false
}

func (l *Length) PolygonStart() { l.inPoly = true }
func (l *Length) PolygonEnd()   { l.inPoly = false }
func (l *Length) Sphere()       {}

// Result returns the accumulated length and resets l.
func (l *Length) Result() float64 {
	res := l.sum.Value()
	l.sum.Reset()
	return res
}

// Centroid computes the planar centroid of the geometry of the highest
// dimension it receives: polygons are weighted by area, lines by length and
// points count equally.
// The zero value is ready to use.
type Centroid struct {
	x0, y0, z0 float64 // points
	x1, y1, z1 float64 // lines
	x2, y2, z2 float64 // polygons

	inPoly bool
	inLine bool
	first  bool
	xa, ya float64 // first point of the ring
	xp, yp float64 // previous point
}

func (c *Centroid) Point(x, y, _ float64) {
	switch {
	case !c.inLine:
	case c.first:
		c.xa, c.ya = x, y
		c.first = false
	default:
		c.segment(x, y)
	}
	c.xp, c.yp = x, y
	c.x0 += x
	c.y0 += y
	c.z0++
}

// segment adds the edge from the previous point to (x, y).
func (c *Centroid) segment(x, y float64) {
	dx, dy := x-c.xp, y-c.yp
	z := math.Hypot(dx, dy)
	c.x1 += z * (c.xp + x) / 2
	c.y1 += z * (c.yp + y) / 2
	c.z1 += z

	if c.inPoly {
		z = c.yp*x - c.xp*y
		c.x2 += z * (c.xp + x)
		c.y2 += z * (c.yp + y)
		c.z2 += z * 3
	}
}

func (c *Centroid) LineStart() {
	c.inLine = true
	c.first = true
}

func (c *Centroid) LineEnd() {
	if c.inPoly && !c.first {
		// close the ring
		c.Point(c.xa, c.ya, 0)
	}
	c.inLine = false
}

func (c *Centroid) PolygonStart() { c.inPoly = true }
func (c *Centroid) PolygonEnd()   { c.inPoly = false }
func (c *Centroid) Sphere()       {}

// Result returns the centroid and resets c.  If no geometry was received,
// both coordinates are NaN.
func (c *Centroid) Result() orb.Point {
	var res orb.Point
	switch {
	case c.z2 != 0:
		res = orb.Point{c.x2 / c.z2, c.y2 / c.z2}
	case c.z1 != 0:
		res = orb.Point{c.x1 / c.z1, c.y1 / c.z1}
	case c.z0 != 0:
		res = orb.Point{c.x0 / c.z0, c.y0 / c.z0}
	default:
		res = orb.Point{math.NaN(), math.NaN()}
	}
	*c = Centroid{}
	return res
}
