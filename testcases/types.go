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
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/carto/geopath"
	"seehuhn.de/go/carto/project"
	"seehuhn.de/go/carto/raster"
)

// TestCase defines a single map rendering test.
type TestCase struct {
	Name       string                     // lowercase a-z and _ only
	Object     any                        // the geometry to render, in degrees
	Projection func() *project.Projection // the map projection
	Width      int                        // canvas width in pixels
	Height     int                        // canvas height in pixels
	Op         Operation                  // fill or stroke

	// Fit is the object the projection is fitted to.  If this is nil,
	// the projection is fitted to the sphere.
	Fit any
}

// Project returns the projection of the test case, scaled and translated
// to fit the canvas with a margin of two pixels.
func (tc TestCase) Project() *project.Projection {
	fit := tc.Fit
	if fit == nil {
		fit = globe
	}
	p := tc.Projection()
	ext := extent(2, 2, float64(tc.Width-2), float64(tc.Height-2))
	return p.FitExtent(ext, fit)
}

// Path returns the projected geometry of the test case.
// The result is nil if nothing is visible.
func (tc TestCase) Path() *path.Data {
	return tc.geoPath().Data(tc.Object)
}

// Draw sends the projected geometry of the test case to ctx.
func (tc TestCase) Draw(ctx geopath.Context) {
	tc.geoPath().Draw(tc.Object, ctx)
}

func (tc TestCase) geoPath() *geopath.Path {
	g := geopath.NewPath(tc.Project())
	var r float64
	switch op := tc.Op.(type) {
	case Fill:
		r = op.PointRadius
	case Stroke:
		r = op.PointRadius
	}
	if r > 0 {
		g.PointRadius = r
	}
	return g
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// Fill specifies a fill operation.
type Fill struct {
	Rule        raster.FillRule
	PointRadius float64 // radius of point markers, 0 for the default
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width       float64 // line width (>0)
	PointRadius float64 // radius of point markers, 0 for the default
}

func (Stroke) isOperation() {}
