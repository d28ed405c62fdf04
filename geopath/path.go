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

// Package geopath measures and renders projected geometry.
//
// The types in this package are terminal streams: they receive projected
// geometry and either accumulate a measurement ([Area], [Bounds],
// [Centroid], [Length]) or produce output ([PathString], [PathContext],
// [PathData]).  [Path] combines a projection with these streams.
package geopath

import (
	"github.com/paulmach/orb"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/carto"
)

// Projection converts geometry streams, for example from geographic to
// screen coordinates.
type Projection interface {
	Stream(sink carto.Stream) carto.Stream
}

// Path measures and renders geometry objects, after applying an optional
// projection.
type Path struct {
	// Projection is applied to all geometry.  If this is nil, coordinates
	// are used unchanged.
	Projection Projection

	// PointRadius is the radius of the circles drawn for points.
	PointRadius float64

	// Digits is the number of fractional digits used by [Path.String].
	// Negative values select the shortest exact representation.
	Digits int
}

// NewPath returns a path generator for the given projection, with point
// radius 4.5 and three fractional digits in string output.
func NewPath(p Projection) *Path {
	return &Path{Projection: p, PointRadius: 4.5, Digits: 3}
}

func (p *Path) walk(obj any, sink carto.Stream) {
	if p.Projection != nil {
		sink = p.Projection.Stream(sink)
	}
	carto.Walk(obj, sink)
}

// String returns obj as SVG path data.  The second return value is false
// if nothing is visible.
func (p *Path) String(obj any) (string, bool) {
	s := &PathString{PointRadius: p.PointRadius, Digits: p.Digits}
	p.walk(obj, s)
	return s.Result()
}

// Draw draws obj on ctx.
func (p *Path) Draw(obj any, ctx Context) {
	p.walk(obj, &PathContext{Ctx: ctx, PointRadius: p.PointRadius})
}

// Data returns obj as path data, or nil if nothing is visible.
func (p *Path) Data(obj any) *path.Data {
	d := &PathData{PointRadius: p.PointRadius}
	p.walk(obj, d)
	return d.Result()
}

// Area returns the projected area of obj.
func (p *Path) Area(obj any) float64 {
	a := &Area{}
	p.walk(obj, a)
	return a.Result()
}

// Measure returns the projected length of obj.
func (p *Path) Measure(obj any) float64 {
	l := &Length{}
	p.walk(obj, l)
	return l.Result()
}

// Bounds returns the projected bounding box of obj.
func (p *Path) Bounds(obj any) rect.Rect {
	b := &Bounds{}
	p.walk(obj, b)
	return b.Result()
}

// Centroid returns the projected centroid of obj.
func (p *Path) Centroid(obj any) orb.Point {
	c := &Centroid{}
	p.walk(obj, c)
	return c.Result()
}
