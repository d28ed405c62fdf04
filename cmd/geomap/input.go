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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
)

// readInput reads the features from a GeoJSON file or an ESRI shapefile.
func readInput(fname string) (*geojson.FeatureCollection, error) {
	var fc *geojson.FeatureCollection
	var err error
	if strings.EqualFold(filepath.Ext(fname), ".shp") {
		fc, err = readShapefile(fname)
	} else {
		fc, err = readGeoJSON(fname)
	}
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"file":     fname,
		"features": len(fc.Features),
	}).Debug("input read")
	return fc, nil
}

// readGeoJSON reads a GeoJSON file.  A single feature or a bare geometry
// is wrapped in a feature collection.
func readGeoJSON(fname string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		return fc, nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		return geojson.NewFeatureCollection().Append(f), nil
	case "":
		return nil, fmt.Errorf("%s: missing GeoJSON type", fname)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		return geojson.NewFeatureCollection().Append(geojson.NewFeature(g.Geometry())), nil
	}
}

// readShapefile reads the shapes and attributes of an ESRI shapefile.
// Coordinates must be in degrees of longitude and latitude.
func readShapefile(fname string) (fc *geojson.FeatureCollection, err error) {
	r, err := shp.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := r.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	fields := r.Fields()
	fc = geojson.NewFeatureCollection()
	for r.Next() {
		n, shape := r.Shape()
		g, err := convertShape(shape)
		if err != nil {
			return nil, fmt.Errorf("%s: shape %d: %w", fname, n, err)
		}
		if g == nil {
			continue
		}

		f := geojson.NewFeature(g)
		for k, field := range fields {
			f.Properties[strings.ToLower(field.String())] = r.ReadAttribute(n, k)
		}
		fc.Append(f)
	}
	return fc, nil
}

// convertShape converts a shapefile shape to an orb geometry.  M and Z
// values are dropped.  Null shapes give a nil geometry.
func convertShape(s shp.Shape) (orb.Geometry, error) {
	switch s := s.(type) {
	case *shp.Null:
		return nil, nil
	case *shp.Point:
		return orb.Point{s.X, s.Y}, nil
	case *shp.PointM:
		return orb.Point{s.X, s.Y}, nil
	case *shp.PointZ:
		return orb.Point{s.X, s.Y}, nil
	case *shp.MultiPoint:
		return multiPoint(s.Points), nil
	case *shp.MultiPointM:
		return multiPoint(s.Points), nil
	case *shp.MultiPointZ:
		return multiPoint(s.Points), nil
	case *shp.PolyLine:
		return polyLine(s.Parts, s.Points), nil
	case *shp.PolyLineM:
		return polyLine(s.Parts, s.Points), nil
	case *shp.PolyLineZ:
		return polyLine(s.Parts, s.Points), nil
	case *shp.Polygon:
		return polygons(s.Parts, s.Points), nil
	case *shp.PolygonM:
		return polygons(s.Parts, s.Points), nil
	case *shp.PolygonZ:
		return polygons(s.Parts, s.Points), nil
	default:
		return nil, fmt.Errorf("unsupported shape type %T", s)
	}
}

func multiPoint(pts []shp.Point) orb.MultiPoint {
	res := make(orb.MultiPoint, len(pts))
	for i, p := range pts {
		res[i] = orb.Point{p.X, p.Y}
	}
	return res
}

// parts splits the point list of a shape at the given part offsets.
func parts(offsets []int32, pts []shp.Point) [][]orb.Point {
	res := make([][]orb.Point, 0, len(offsets))
	for i, start := range offsets {
		end := len(pts)
		if i+1 < len(offsets) {
			end = int(offsets[i+1])
		}
		if int(start) >= end || end > len(pts) {
			continue
		}
		part := make([]orb.Point, 0, end-int(start))
		for _, p := range pts[start:end] {
			part = append(part, orb.Point{p.X, p.Y})
		}
		res = append(res, part)
	}
	return res
}

func polyLine(offsets []int32, pts []shp.Point) orb.MultiLineString {
	var res orb.MultiLineString
	for _, part := range parts(offsets, pts) {
		res = append(res, orb.LineString(part))
	}
	return res
}

// polygons groups the rings of a shapefile polygon.  Clockwise rings are
// outer boundaries, and each counter-clockwise ring is a hole in the
// preceding outer ring.
func polygons(offsets []int32, pts []shp.Point) orb.Geometry {
	var res orb.MultiPolygon
	for _, part := range parts(offsets, pts) {
		ring := orb.Ring(part)
		if ring.Orientation() == orb.CCW && len(res) > 0 {
			last := len(res) - 1
			res[last] = append(res[last], ring)
			continue
		}
		res = append(res, orb.Polygon{ring})
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}
