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

package main

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/carto"
	"seehuhn.de/go/carto/geopath"
	"seehuhn.de/go/carto/sphere"
)

// layer is a group of geometry drawn with the same style.  Grey levels
// range from 0 (black) to 1 (white); negative values disable filling or
// stroking.
type layer struct {
	name   string
	obj    any
	fill   float64
	stroke float64
}

// scene is a projected map ready for drawing.
type scene struct {
	width, height float64
	path          *geopath.Path
	layers        []layer
	strokeWidth   float64
}

// newScene fits the configured projection to an output of the given size
// and sorts the features into layers.
func newScene(cfg Config, fc *geojson.FeatureCollection, width, height float64) (*scene, error) {
	p, err := cfg.newProjection()
	if err != nil {
		return nil, err
	}

	var fit any = carto.Sphere{}
	if cfg.Fit == "data" {
		if len(fc.Features) == 0 {
			return nil, errors.New("no features to fit the map to")
		}
		fit = fc
	}
	m := min(cfg.Margin, width/4, height/4)
	p.FitExtent(rect.Rect{LLx: m, LLy: m, URx: width - m, URy: height - m}, fit)

	tx, ty := p.Translate()
	logrus.WithFields(logrus.Fields{
		"projection": cfg.Projection,
		"scale":      p.Scale(),
		"tx":         tx,
		"ty":         ty,
	}).Debug("projection fitted")

	g := geopath.NewPath(p)
	g.PointRadius = cfg.PointRadius

	s := &scene{
		width:       width,
		height:      height,
		path:        g,
		strokeWidth: cfg.StrokeWidth,
	}
	if cfg.Outline {
		s.layers = append(s.layers, layer{name: "sphere", obj: carto.Sphere{}, fill: 0.95, stroke: -1})
	}
	if cfg.Graticule {
		s.layers = append(s.layers, layer{name: "graticule", obj: sphere.NewGraticule().Lines(), fill: -1, stroke: 0.75})
	}

	var areas, lines, points orb.Collection
	for _, f := range fc.Features {
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon, orb.Ring, orb.Bound:
			areas = append(areas, f.Geometry)
		case orb.Point, orb.MultiPoint:
			points = append(points, f.Geometry)
		case nil:
		default:
			lines = append(lines, f.Geometry)
		}
	}
	if len(areas) > 0 {
		s.layers = append(s.layers, layer{name: "areas", obj: areas, fill: 0.6, stroke: 0.2})
	}
	if len(lines) > 0 {
		s.layers = append(s.layers, layer{name: "lines", obj: lines, fill: -1, stroke: 0.1})
	}
	if len(points) > 0 {
		s.layers = append(s.layers, layer{name: "points", obj: points, fill: 0, stroke: -1})
	}
	if cfg.Outline {
		s.layers = append(s.layers, layer{name: "outline", obj: carto.Sphere{}, fill: -1, stroke: 0})
	}
	return s, nil
}
