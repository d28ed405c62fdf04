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

// Command export writes the map test cases as a GeoJSON feature
// collection, for viewing in other GIS tools.  Run from the module root
// directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"seehuhn.de/go/carto"
	"seehuhn.de/go/carto/raster"
	"seehuhn.de/go/carto/sphere"
	"seehuhn.de/go/carto/testcases"
)

func main() {
	fc := geojson.NewFeatureCollection()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			f, err := toFeature(category, tc)
			if err != nil {
				panic(err)
			}
			fc.Append(f)
		}
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		panic(err)
	}
	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	if err := os.WriteFile("testdata/testcases.geojson", data, 0644); err != nil {
		panic(err)
	}
}

func toFeature(category string, tc testcases.TestCase) (*geojson.Feature, error) {
	g, err := geometry(tc.Object)
	if err != nil {
		return nil, fmt.Errorf("%s_%s: %w", category, tc.Name, err)
	}

	f := geojson.NewFeature(g)
	f.Properties["name"] = category + "_" + tc.Name
	f.Properties["width"] = tc.Width
	f.Properties["height"] = tc.Height
	switch op := tc.Op.(type) {
	case testcases.Fill:
		f.Properties["op"] = "fill"
		if op.Rule == raster.EvenOdd {
			f.Properties["fill_rule"] = "evenodd"
		} else {
			f.Properties["fill_rule"] = "nonzero"
		}
	case testcases.Stroke:
		f.Properties["op"] = "stroke"
		f.Properties["line_width"] = op.Width
	}
	f.Properties["spherical_area"] = sphere.Area(tc.Object)
	return f, nil
}

// geometry converts a test object to an orb geometry.  The sphere has no
// GeoJSON representation and is written as the graticule outline.
func geometry(obj any) (orb.Geometry, error) {
	switch obj := obj.(type) {
	case carto.Sphere:
		return sphere.NewGraticule().Outline(), nil
	case orb.Geometry:
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported object type %T", obj)
	}
}
