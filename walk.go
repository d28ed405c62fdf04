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

package carto

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ErrUnknownGeometry is returned by [WalkStrict] for values which are not
// geometry objects.
var ErrUnknownGeometry = errors.New("unknown geometry type")

// Walk reports the geometry object obj to s.
//
// Supported values are the orb geometry types, orb.Bound, orb.Ring (walked
// as a polygon with one ring), the geojson Feature, FeatureCollection and
// Geometry types, and [Sphere].  Nil and unknown values are ignored.
func Walk(obj any, s Stream) {
	_ = walk(obj, s, false)
}

// WalkStrict is like [Walk] but returns an error if obj, or any object
// nested inside it, is of an unknown type.  Events for the parts before
// the unknown value have already been delivered when the error is
// returned.
func WalkStrict(obj any, s Stream) error {
	return walk(obj, s, true)
}

func walk(obj any, s Stream, strict bool) error {
	switch g := obj.(type) {
	case nil:
		return nil
	case Sphere:
		s.Sphere()
	case *Sphere:
		if g != nil {
			s.Sphere()
		}

	case *geojson.FeatureCollection:
		if g == nil {
			return nil
		}
		for _, f := range g.Features {
			if err := walk(f, s, strict); err != nil {
				return err
			}
		}
	case *geojson.Feature:
		if g == nil {
			return nil
		}
		return walk(g.Geometry, s, strict)
	case *geojson.Geometry:
		if g == nil {
			return nil
		}
		return walk(g.Geometry(), s, strict)

	case orb.Point:
		s.Point(g[0], g[1], 0)
	case orb.MultiPoint:
		for _, p := range g {
			s.Point(p[0], p[1], 0)
		}
	case orb.LineString:
		walkLine(g, s, false)
	case orb.MultiLineString:
		for _, l := range g {
			walkLine(l, s, false)
		}
	case orb.Ring:
		s.PolygonStart()
		walkLine(g, s, true)
		s.PolygonEnd()
	case orb.Polygon:
		walkPolygon(g, s)
	case orb.MultiPolygon:
		for _, p := range g {
			walkPolygon(p, s)
		}
	case orb.Bound:
		// clockwise in longitude/latitude, so that on the sphere the
		// polygon covers the inside of the box
		ring := orb.Ring{
			g.Min,
			{g.Min[0], g.Max[1]},
			g.Max,
			{g.Max[0], g.Min[1]},
			g.Min,
		}
		s.PolygonStart()
		walkLine(ring, s, true)
		s.PolygonEnd()
	case orb.Collection:
		for _, c := range g {
			if err := walk(c, s, strict); err != nil {
				return err
			}
		}

	default:
		if strict {
			return fmt.Errorf("%w: %T", ErrUnknownGeometry, obj)
		}
	}
	return nil
}

// walkLine reports one line.  For closed rings the final point, which
// repeats the first, is omitted.
func walkLine(coords []orb.Point, s Stream, closed bool) {
	n := len(coords)
	if closed && n > 0 {
		n--
	}
	s.LineStart()
	for _, p := range coords[:n] {
		s.Point(p[0], p[1], 0)
	}
	s.LineEnd()
}

func walkPolygon(p orb.Polygon, s Stream) {
	s.PolygonStart()
	for _, ring := range p {
		walkLine(ring, s, true)
	}
	s.PolygonEnd()
}
