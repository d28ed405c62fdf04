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

package testcases

import (
	"math"

	"github.com/paulmach/orb"

	"seehuhn.de/go/carto/project"
	"seehuhn.de/go/carto/raster"
	"seehuhn.de/go/carto/sphere"
)

// polygonCases fill polygons with holes and self-intersections.
var polygonCases = []TestCase{
	{
		Name:       "triangle",
		Object:     orb.Polygon{{{-40, -20}, {0, 40}, {40, -20}, {-40, -20}}},
		Projection: project.Equirectangular,
		Width:      64,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
		Fit:        box(-45, -25, 45, 45),
	},
	{
		Name:       "star_nonzero",
		Object:     star(0, 0, 40),
		Projection: project.AzimuthalEquidistant,
		Width:      64,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
		Fit:        sphere.Circle(orb.Point{0, 0}, 42, 6),
	},
	{
		Name:       "star_evenodd",
		Object:     star(0, 0, 40),
		Projection: project.AzimuthalEquidistant,
		Width:      64,
		Height:     64,
		Op:         Fill{Rule: raster.EvenOdd},
		Fit:        sphere.Circle(orb.Point{0, 0}, 42, 6),
	},
	{
		Name:       "ring_with_hole",
		Object:     ring(20, 10, 40, 15),
		Projection: rotated(project.Orthographic, -20, -10, 0),
		Width:      64,
		Height:     64,
		Op:         Fill{Rule: raster.EvenOdd},
	},
	{
		Name: "two_boxes",
		Object: orb.MultiPolygon{
			box(-60, -10, -20, 30),
			box(10, -40, 70, 0),
		},
		Projection: project.EqualEarth,
		Width:      128,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
	},
}

// star builds a five-pointed, self-intersecting star around the given
// centre, with vertices at the given angular distance.
func star(lon, lat, radius float64) orb.Polygon {
	var pts [5]orb.Point
	for i := range pts {
		angle := float64(i)*2*math.Pi/5 + math.Pi/2
		pts[i] = orb.Point{
			lon + radius*math.Cos(angle),
			lat + radius*math.Sin(angle),
		}
	}

	// connect every second point, clockwise on the map
	var r orb.Ring
	for _, i := range []int{0, 3, 1, 4, 2, 0} {
		r = append(r, pts[i])
	}
	return orb.Polygon{r}
}

// ring builds a small circle with a concentric hole.
func ring(lon, lat, outer, inner float64) orb.Polygon {
	c := orb.Point{lon, lat}
	hole := sphere.Circle(c, inner, 3)[0]
	hole.Reverse()
	return orb.Polygon{sphere.Circle(c, outer, 3)[0], hole}
}
