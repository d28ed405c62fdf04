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

	"seehuhn.de/go/carto/project"
	"seehuhn.de/go/carto/sphere"
)

// lineCases stroke great arcs and graticules, which exercise resampling.
var lineCases = []TestCase{
	{
		Name:       "graticule_orthographic",
		Object:     sphere.NewGraticule().Lines(),
		Projection: rotated(project.Orthographic, -10, -40, 0),
		Width:      128,
		Height:     128,
		Op:         Stroke{Width: 0.5},
	},
	{
		Name:       "graticule_equal_earth",
		Object:     sphere.NewGraticule().Lines(),
		Projection: project.EqualEarth,
		Width:      128,
		Height:     64,
		Op:         Stroke{Width: 0.5},
	},
	{
		Name:       "great_arcs_mercator",
		Object:     greatArcs,
		Projection: project.Mercator,
		Width:      128,
		Height:     128,
		Op:         Stroke{Width: 1},
		Fit:        greatArcs,
	},
	{
		Name:       "great_arc_gnomonic",
		Object:     orb.LineString{{-40, 10}, {40, 30}},
		Projection: project.Gnomonic,
		Width:      64,
		Height:     64,
		Op:         Stroke{Width: 1},
	},
}

// greatArcs bend towards the poles in Mercator; the last one crosses the
// antimeridian.
var greatArcs = orb.MultiLineString{
	{{-120, 40}, {100, 50}},
	{{-60, -40}, {60, 60}},
	{{-170, 0}, {170, 10}},
}
