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

package clip

import (
	"math"

	"github.com/paulmach/orb"

	"seehuhn.de/go/carto"
)

// Rectangle returns the planar clip which keeps the region
// [x0, x1] × [y0, y1].
func Rectangle(x0, y0, x1, y1 float64) Func {
	r := &rectangle{x0: x0, y0: y0, x1: x1, y1: y1}
	return func(sink carto.Stream) carto.Stream {
		return &rectangleClip{rectangle: r, sink: sink, active: sink}
	}
}

type rectangle struct {
	x0, y0, x1, y1 float64
}

func (r *rectangle) visible(x, y float64) bool {
	return r.x0 <= x && x <= r.x1 && r.y0 <= y && y <= r.y1
}

// corner returns the index of the rectangle side p lies on, counting
// 0 = (x0, y0), 1 = (x1, y0), 2 = (x1, y1), 3 = (x0, y1) for the corner at
// the start of the side when walking in the given direction.
func (r *rectangle) corner(p orb.Point, direction float64) int {
	switch {
	case math.Abs(p[0]-r.x0) < epsilon:
		if direction > 0 {
			return 0
		}
		return 3
	case math.Abs(p[0]-r.x1) < epsilon:
		if direction > 0 {
			return 2
		}
		return 1
	case math.Abs(p[1]-r.y0) < epsilon:
		if direction > 0 {
			return 1
		}
		return 0
	default: // on y1
		if direction > 0 {
			return 3
		}
		return 2
	}
}

// comparePoint orders two points on the rectangle boundary.
func (r *rectangle) comparePoint(a, b orb.Point) float64 {
	ca, cb := r.corner(a, 1), r.corner(b, 1)
	if ca != cb {
		return float64(ca - cb)
	}
	switch ca {
	case 0:
		return b[1] - a[1]
	case 1:
		return a[0] - b[0]
	case 2:
		return a[1] - b[1]
	default:
		return b[0] - a[0]
	}
}

func (r *rectangle) compareIntersection(a, b vertex) float64 {
	return r.comparePoint(orb.Point{a.x, a.y}, orb.Point{b.x, b.y})
}

func (r *rectangle) interpolate(from, to *orb.Point, direction float64, s carto.Stream) {
	a, a1 := 0, 0
	full := from == nil
	if !full {
		a, a1 = r.corner(*from, direction), r.corner(*to, direction)
		full = a != a1 || (r.comparePoint(*from, *to) < 0) != (direction > 0)
	}
	if !full {
		s.Point(to[0], to[1], 0)
		return
	}

	step := 1
	if direction < 0 {
		step = -1
	}
	for {
		x, y := r.x1, r.y0
		if a == 0 || a == 3 {
			x = r.x0
		}
		if a > 1 {
			y = r.y1
		}
		s.Point(x, y, 0)
		a = (a + step + 4) % 4
		if a == a1 {
			break
		}
	}
}

// rectangleClip is the clipping stream of a rectangle.  Polygons are
// buffered and rejoined at PolygonEnd.
type rectangleClip struct {
	*rectangle
	sink   carto.Stream
	active carto.Stream
	buf    buffer

	inPolygon bool
	inLine    bool
	polygon   []orb.Ring
	segments  [][]vertex

	x__, y__ float64 // first point of the line
	v__      bool
	x_, y_   float64 // previous point
	v_       bool
	first    bool
	clean    bool
}

func (c *rectangleClip) Point(x, y, z float64) {
	if c.inLine {
		c.linePoint(x, y)
		return
	}
	if c.visible(x, y) {
		c.active.Point(x, y, z)
	}
}

// polygonInside returns the winding number of the polygon around the
// corner (x0, y1).
func (c *rectangleClip) polygonInside() int {
	winding := 0
	for _, ring := range c.polygon {
		if len(ring) == 0 {
			continue
		}
		b0, b1 := ring[0][0], ring[0][1]
		for _, p := range ring[1:] {
			a0, a1 := b0, b1
			b0, b1 = p[0], p[1]
			if a1 <= c.y1 {
				if b1 > c.y1 && (b0-a0)*(c.y1-a1) > (b1-a1)*(c.x0-a0) {
					winding++
				}
			} else {
				if b1 <= c.y1 && (b0-a0)*(c.y1-a1) < (b1-a1)*(c.x0-a0) {
					winding--
				}
			}
		}
	}
	return winding
}

func (c *rectangleClip) PolygonStart() {
	c.active = &c.buf
	c.inPolygon = true
	c.segments = nil
	c.polygon = nil
	c.clean = true
}

func (c *rectangleClip) PolygonEnd() {
	startInside := c.polygonInside() != 0
	cleanInside := c.clean && startInside
	visible := len(c.segments) > 0

	if cleanInside || visible {
		c.sink.PolygonStart()
		if cleanInside {
			c.sink.LineStart()
			c.interpolate(nil, nil, 1, c.sink)
			c.sink.LineEnd()
		}
		if visible {
			rejoin(c.segments, c.compareIntersection, startInside, c.interpolate, c.sink)
		}
		c.sink.PolygonEnd()
	}

	c.active = c.sink
	c.inPolygon = false
	c.segments = nil
	c.polygon = nil
}

func (c *rectangleClip) LineStart() {
	c.inLine = true
	if c.inPolygon {
		c.polygon = append(c.polygon, nil)
	}
	c.first = true
	c.v_ = false
	c.x_, c.y_ = math.NaN(), math.NaN()
}

func (c *rectangleClip) LineEnd() {
	if c.inPolygon {
		c.linePoint(c.x__, c.y__)
		if c.v__ && c.v_ {
			c.buf.rejoin()
		}
		c.segments = append(c.segments, c.buf.result()...)
	}
	c.inLine = false
	if c.v_ {
		c.active.LineEnd()
	}
}

func (c *rectangleClip) Sphere() {
	c.sink.Sphere()
}

func (c *rectangleClip) linePoint(x, y float64) {
	v := c.visible(x, y)
	if c.inPolygon {
		n := len(c.polygon) - 1
		c.polygon[n] = append(c.polygon[n], orb.Point{x, y})
	}

	if c.first {
		c.x__, c.y__, c.v__ = x, y, v
		c.first = false
		if v {
			c.active.LineStart()
			c.active.Point(x, y, 0)
		}
	} else if v && c.v_ {
		c.active.Point(x, y, 0)
	} else {
		a := orb.Point{clamp(c.x_), clamp(c.y_)}
		b := orb.Point{clamp(x), clamp(y)}
		x, y = b[0], b[1]
		if a, b, ok := Line(a, b, c.x0, c.y0, c.x1, c.y1); ok {
			if !c.v_ {
				c.active.LineStart()
				c.active.Point(a[0], a[1], 0)
			}
			c.active.Point(b[0], b[1], 0)
			if !v {
				c.active.LineEnd()
			}
			c.clean = false
		} else if v {
			c.active.LineStart()
			c.active.Point(x, y, 0)
			c.clean = false
		}
	}
	c.x_, c.y_, c.v_ = x, y, v
}

// clamp limits coordinates to a range where the line clipping arithmetic
// is exact enough.
func clamp(x float64) float64 {
	return math.Max(-clipMax, math.Min(clipMax, x))
}

const clipMax = 1e9
