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

// Package carto streams geographic geometry through projections, clipping
// and measurement.
//
// Geometry is walked into a [Stream], a visitor which receives the points,
// lines and polygons of a geometry object as a sequence of events.  Streams
// are chained: the sub-packages provide stream transformers for rotation,
// clipping, resampling and projection (see [seehuhn.de/go/carto/project])
// and terminal streams which measure or draw the result (see
// [seehuhn.de/go/carto/geopath]).
package carto

import "github.com/paulmach/orb"

// Stream receives geometry as a sequence of events.
//
// A line is reported as LineStart, one Point per vertex, and LineEnd.  A
// polygon is reported as PolygonStart, one line per ring, and PolygonEnd.
// Polygon rings are implicitly closed: the closing vertex is not repeated.
// Point events outside a line are isolated points.
//
// The z argument of Point is the third coordinate of the input, if any.
// Inside the clipping pipeline it carries the clip flag of points
// synthesized on a clip boundary; ordinary points have z == 0.
//
// Stream values are stateful and single use.
type Stream interface {
	Point(x, y, z float64)
	LineStart()
	LineEnd()
	PolygonStart()
	PolygonEnd()
	Sphere()
}

// Sphere is a geometry object representing the whole globe.
// Walking a Sphere calls the Sphere method of the stream.
type Sphere struct{}

// PointMapper forwards all events to Next, mapping the coordinates of
// every point through Map.
type PointMapper struct {
	Next Stream
	Map  func(x, y float64) (float64, float64)
}

func (m *PointMapper) Point(x, y, z float64) {
	x, y = m.Map(x, y)
	m.Next.Point(x, y, z)
}

func (m *PointMapper) LineStart()    { m.Next.LineStart() }
func (m *PointMapper) LineEnd()      { m.Next.LineEnd() }
func (m *PointMapper) PolygonStart() { m.Next.PolygonStart() }
func (m *PointMapper) PolygonEnd()   { m.Next.PolygonEnd() }
func (m *PointMapper) Sphere()       { m.Next.Sphere() }

// Collector is a terminal stream which gathers the events it receives
// into orb geometry.  Rings are closed by repeating their first point.
type Collector struct {
	Points   orb.MultiPoint
	Lines    orb.MultiLineString
	Polygons orb.MultiPolygon

	// IsSphere is set if the stream received a Sphere event.
	IsSphere bool

	inPolygon bool
	inLine    bool
	line      orb.LineString
	polygon   orb.Polygon
}

func (c *Collector) Point(x, y, z float64) {
	if !c.inLine {
		c.Points = append(c.Points, orb.Point{x, y})
		return
	}
	c.line = append(c.line, orb.Point{x, y})
}

func (c *Collector) LineStart() {
	c.inLine = true
	c.line = nil
}

func (c *Collector) LineEnd() {
	c.inLine = false
	if c.inPolygon {
		if len(c.line) > 0 {
			ring := orb.Ring(c.line)
			if first := ring[0]; ring[len(ring)-1] != first {
				ring = append(ring, first)
			}
			c.polygon = append(c.polygon, ring)
		}
	} else {
		c.Lines = append(c.Lines, c.line)
	}
	c.line = nil
}

func (c *Collector) PolygonStart() {
	c.inPolygon = true
	c.polygon = nil
}

func (c *Collector) PolygonEnd() {
	c.inPolygon = false
	if len(c.polygon) > 0 {
		c.Polygons = append(c.Polygons, c.polygon)
	}
	c.polygon = nil
}

func (c *Collector) Sphere() {
	c.IsSphere = true
}

// Rings returns all polygon rings collected so far, in order.
func (c *Collector) Rings() []orb.Ring {
	var rings []orb.Ring
	for _, p := range c.Polygons {
		rings = append(rings, p...)
	}
	return rings
}
