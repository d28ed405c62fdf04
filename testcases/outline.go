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
	"seehuhn.de/go/carto/project"
	"seehuhn.de/go/carto/raster"
)

// outlineCases fill the whole sphere under different projections.
var outlineCases = []TestCase{
	{
		Name:       "orthographic",
		Object:     globe,
		Projection: project.Orthographic,
		Width:      64,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
	},
	{
		Name:       "stereographic",
		Object:     globe,
		Projection: project.Stereographic,
		Width:      64,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
	},
	{
		Name:       "equal_area",
		Object:     globe,
		Projection: project.AzimuthalEqualArea,
		Width:      64,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
	},
	{
		Name:       "equal_earth",
		Object:     globe,
		Projection: project.EqualEarth,
		Width:      128,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
	},
	{
		Name:       "natural_earth",
		Object:     globe,
		Projection: project.NaturalEarth1,
		Width:      128,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
	},
	{
		Name:       "equirectangular",
		Object:     globe,
		Projection: project.Equirectangular,
		Width:      128,
		Height:     64,
		Op:         Stroke{Width: 1},
	},
}
