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
	"github.com/paulmach/orb"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/carto"
)

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"outline": outlineCases,
	"clip":    clipCases,
	"line":    lineCases,
	"point":   pointCases,
	"polygon": polygonCases,
}

var globe = carto.Sphere{}

func extent(x0, y0, x1, y1 float64) rect.Rect {
	return rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1}
}

// box returns a longitude/latitude rectangle, with the ring in clockwise
// order as seen on the map so that it encloses the small area.
func box(lon0, lat0, lon1, lat1 float64) orb.Polygon {
	return orb.Polygon{{
		{lon0, lat0}, {lon0, lat1}, {lon1, lat1}, {lon1, lat0}, {lon0, lat0},
	}}
}
