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
	"seehuhn.de/go/carto/raster"
)

// pointCases draw point markers.
var pointCases = []TestCase{
	{
		Name:       "cities",
		Object:     cities,
		Projection: project.NaturalEarth1,
		Width:      128,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero, PointRadius: 2},
	},
	{
		Name:       "cities_outline",
		Object:     cities,
		Projection: rotated(project.Orthographic, 0, -30, 0),
		Width:      64,
		Height:     64,
		Op:         Stroke{Width: 0.5, PointRadius: 3},
	},
}

var cities = orb.MultiPoint{
	{-0.13, 51.51},   // London
	{139.69, 35.69},  // Tokyo
	{-74.01, 40.71},  // New York
	{151.21, -33.87}, // Sydney
	{-43.17, -22.91}, // Rio de Janeiro
	{37.62, 55.76},   // Moscow
	{18.42, -33.92},  // Cape Town
}
