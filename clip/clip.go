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

// Package clip cuts geometry streams at the boundary of a region.
//
// Sphere clips ([Antimeridian], [Circle]) operate on longitude/latitude in
// radians, before projection.  The [Rectangle] clip operates on projected,
// planar coordinates.  Lines are cut into pieces; polygon rings are cut
// and then reconnected along the clip boundary, so that clipped polygons
// remain closed.
package clip

import (
	"math"

	"github.com/paulmach/orb"

	"seehuhn.de/go/carto"
	"seehuhn.de/go/carto/sphere"
)

// Func wraps a sink into a clipping stream.
type Func func(sink carto.Stream) carto.Stream

// Identity is the clip which passes all geometry unchanged.
func Identity(sink carto.Stream) carto.Stream {
	return sink
}

// LineClipper cuts lines at the clip boundary.  The pieces are reported to
// the stream the clipper was created for, one line per piece.  Points
// synthesized on the boundary carry a non-zero flag in z.
type LineClipper interface {
	Point(x, y, z float64)
	LineStart()
	LineEnd()

	// Clean describes the last line.  Bit 0 is set if the line was not
	// cut at all.  Bit 1 is set if the first and last piece of a closed
	// ring need to be joined.
	Clean() int
}

// Interpolator emits points along the clip boundary to s, walking from
// the boundary point from towards the boundary point to.  If from is nil,
// the whole boundary is emitted as a closed ring.  The direction is 1 or
// -1.
type Interpolator func(from, to *orb.Point, direction float64, s carto.Stream)

// New returns a sphere clip.
//
// Points are kept if visible returns true.  Lines and polygon rings are cut
// by the line clippers returned by line.  Reconnected polygons are closed
// along the boundary by interpolate.  The point start must lie outside the
// visible region; polygons which contain start are treated as covering the
// whole visible region.
func New(visible func(lambda, phi float64) bool, line func(carto.Stream) LineClipper, interpolate Interpolator, start orb.Point) Func {
	return func(sink carto.Stream) carto.Stream {
		c := &sphereClip{
			sink:        sink,
			visible:     visible,
			interpolate: interpolate,
			start:       start,
			ringBuffer:  &buffer{},
		}
		c.line = line(sink)
		c.ringSink = line(c.ringBuffer)
		return c
	}
}

type sphereClip struct {
	sink        carto.Stream
	visible     func(lambda, phi float64) bool
	interpolate Interpolator
	start       orb.Point

	line       LineClipper
	ringBuffer *buffer
	ringSink   LineClipper

	inPolygon      bool
	inLine         bool
	polygonStarted bool

	polygon  []orb.Ring
	ring     orb.Ring
	segments [][]vertex
}

func (c *sphereClip) Point(lambda, phi, z float64) {
	switch {
	case c.inPolygon:
		c.ring = append(c.ring, orb.Point{lambda, phi})
		c.ringSink.Point(lambda, phi, z)
	case c.inLine:
		c.line.Point(lambda, phi, z)
	case c.visible(lambda, phi):
		c.sink.Point(lambda, phi, z)
	}
}

func (c *sphereClip) LineStart() {
	if c.inPolygon {
		c.ringSink.LineStart()
		c.ring = c.ring[:0]
		return
	}
	c.inLine = true
	c.line.LineStart()
}

func (c *sphereClip) LineEnd() {
	if c.inPolygon {
		c.ringEnd()
		return
	}
	c.inLine = false
	c.line.LineEnd()
}

func (c *sphereClip) ringEnd() {
	if len(c.ring) == 0 {
		c.ringSink.LineEnd()
		c.ringBuffer.result()
		return
	}

	first := c.ring[0]
	c.ringSink.Point(first[0], first[1], 0)
	c.ringSink.LineEnd()

	clean := c.ringSink.Clean()
	ringSegments := c.ringBuffer.result()

	c.polygon = append(c.polygon, append(orb.Ring(nil), c.ring...))

	n := len(ringSegments)
	if n == 0 {
		return
	}

	// no intersections
	if clean&1 != 0 {
		segment := ringSegments[0]
		if m := len(segment) - 1; m > 0 {
			c.startPolygon()
			c.sink.LineStart()
			for _, p := range segment[:m] {
				c.sink.Point(p.x, p.y, 0)
			}
			c.sink.LineEnd()
		}
		return
	}

	// The ring was cut.  If it started and ended in the visible region,
	// its first and last piece form one segment.
	if n > 1 && clean&2 != 0 {
		joined := append(ringSegments[n-1], ringSegments[0]...)
		ringSegments = append(ringSegments[1:n-1:n-1], joined)
	}
	for _, s := range ringSegments {
		if len(s) > 1 {
			c.segments = append(c.segments, s)
		}
	}
}

func (c *sphereClip) startPolygon() {
	if !c.polygonStarted {
		c.sink.PolygonStart()
		c.polygonStarted = true
	}
}

func (c *sphereClip) PolygonStart() {
	c.inPolygon = true
	c.polygon = c.polygon[:0]
	c.segments = c.segments[:0]
}

func (c *sphereClip) PolygonEnd() {
	c.inPolygon = false

	startInside := sphere.PolygonContains(c.polygon, c.start)
	if len(c.segments) > 0 {
		c.startPolygon()
		rejoin(c.segments, compareSphere, startInside, c.interpolate, c.sink)
	} else if startInside {
		c.startPolygon()
		c.sink.LineStart()
		c.interpolate(nil, nil, 1, c.sink)
		c.sink.LineEnd()
	}
	if c.polygonStarted {
		c.sink.PolygonEnd()
		c.polygonStarted = false
	}
	c.polygon = nil
	c.segments = nil
}

func (c *sphereClip) Sphere() {
	c.sink.PolygonStart()
	c.sink.LineStart()
	c.interpolate(nil, nil, 1, c.sink)
	c.sink.LineEnd()
	c.sink.PolygonEnd()
}

// compareSphere orders points on a sphere clip boundary.  Points in the
// western hemisphere sort before points in the eastern one; the order
// within each half runs around the boundary.
func compareSphere(a, b vertex) float64 {
	return sphereKey(a) - sphereKey(b)
}

func sphereKey(p vertex) float64 {
	if p.x < 0 {
		return p.y - math.Pi/2 - epsilon
	}
	return math.Pi/2 - p.y
}

// vertex is a point on a clipped line.  The flag m is non-zero for points
// on the clip boundary.
type vertex struct {
	x, y, m float64
}

func (v vertex) point() *orb.Point {
	return &orb.Point{v.x, v.y}
}

func pointEqual(a, b vertex) bool {
	return math.Abs(a.x-b.x) < epsilon && math.Abs(a.y-b.y) < epsilon
}

// epsilon is the tolerance for coordinates on the clip boundary.
const epsilon = 1e-6
