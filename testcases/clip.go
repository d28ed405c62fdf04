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
	"seehuhn.de/go/carto/sphere"
)

// clipCases exercise the antimeridian, small-circle and rectangle clips.
var clipCases = []TestCase{
	{
		Name:       "antimeridian_box",
		Object:     box(160, -30, -160, 30),
		Projection: project.Equirectangular,
		Width:      128,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
	},
	{
		Name:       "antimeridian_rotated",
		Object:     box(160, -30, -160, 30),
		Projection: rotated(project.Equirectangular, 180, 0, 0),
		Width:      128,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
	},
	{
		Name:       "pole_cap",
		Object:     sphere.Circle(orb.Point{0, 90}, 30, 3),
		Projection: project.EqualEarth,
		Width:      128,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
	},
	{
		Name:       "hemisphere_limb",
		Object:     sphere.Circle(orb.Point{60, 20}, 50, 3),
		Projection: project.Orthographic,
		Width:      64,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
	},
	{
		Name:       "hidden_side",
		Object:     sphere.Circle(orb.Point{150, 0}, 40, 3),
		Projection: rotated(project.Orthographic, -30, -20, 0),
		Width:      64,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
	},
	{
		Name:       "around_viewpoint",
		Object:     sphere.Circle(orb.Point{0, 0}, 120, 3),
		Projection: project.Orthographic,
		Width:      64,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
	},
	{
		Name:       "extent",
		Object:     sphere.Circle(orb.Point{0, 0}, 40, 3),
		Projection: clipped(project.Mercator, 16, 16, 48, 48),
		Width:      64,
		Height:     64,
		Op:         Fill{Rule: raster.NonZero},
		Fit:        sphere.Circle(orb.Point{0, 0}, 40, 3),
	},
}

// rotated returns a projection constructor which applies a rotation.
func rotated(p func() *project.Projection, lambda, phi, gamma float64) func() *project.Projection {
	return func() *project.Projection {
		return p().SetRotate(lambda, phi, gamma)
	}
}

// clipped returns a projection constructor which clips the output to the
// given rectangle.
func clipped(p func() *project.Projection, x0, y0, x1, y1 float64) func() *project.Projection {
	return func() *project.Projection {
		ext := extent(x0, y0, x1, y1)
		return p().SetClipExtent(&ext)
	}
}
