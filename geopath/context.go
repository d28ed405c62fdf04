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

package geopath

import "math"

// Context is a two-dimensional drawing surface.
type Context interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	// Arc adds a circular arc around (x, y) from angle a0 to angle a1,
	// measured in radians, starting a new subpath.
	Arc(x, y, r, a0, a1 float64)
}

// PathContext draws geometry on a [Context].
//
// Lines are drawn as connected segments, polygon rings are closed, and
// isolated points are drawn as circles of radius PointRadius.
type PathContext struct {
	Ctx         Context
	PointRadius float64

	inPoly bool
	state  lineState
}

// NewPathContext returns a PathContext which draws on ctx, using point
// radius 4.5.
func NewPathContext(ctx Context) *PathContext {
	return &PathContext{Ctx: ctx, PointRadius: 4.5}
}

func (c *PathContext) Point(x, y, _ float64) {
	switch c.state {
	case lineFirst:
		c.Ctx.MoveTo(x, y)
		c.state = lineRest
	case lineRest:
		c.Ctx.LineTo(x, y)
	default:
		c.Ctx.MoveTo(x+c.PointRadius, y)
		c.Ctx.Arc(x, y, c.PointRadius, 0, 2*math.Pi)
	}
}

func (c *PathContext) LineStart() {
	c.state = lineFirst
}

func (c *PathContext) LineEnd() {
	if c.inPoly {
		c.Ctx.ClosePath()
	}
	c.state = outsideLine
}

func (c *PathContext) PolygonStart() { c.inPoly = true }
func (c *PathContext) PolygonEnd()   { c.inPoly = false }
func (c *PathContext) Sphere()       {}
