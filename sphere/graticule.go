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

package sphere

import (
	"math"

	"github.com/paulmach/orb"
)

// Graticule generates a grid of meridians and parallels.
//
// Major lines cover ExtentMajor with spacing StepMajor, minor lines cover
// ExtentMinor with spacing StepMinor.  Minor lines which coincide with a
// major line are omitted.  All values are in degrees.
type Graticule struct {
	ExtentMajor orb.Bound
	ExtentMinor orb.Bound
	StepMajor   [2]float64
	StepMinor   [2]float64

	// Precision is the spacing of vertices along parallels.
	Precision float64
}

// NewGraticule returns a graticule with lines every 10° between 80°S and
// 80°N, and meridians every 90° reaching to the poles.
func NewGraticule() *Graticule {
	return &Graticule{
		ExtentMajor: orb.Bound{
			Min: orb.Point{-180, -90 + epsilon},
			Max: orb.Point{180, 90 - epsilon},
		},
		ExtentMinor: orb.Bound{
			Min: orb.Point{-180, -80 - epsilon},
			Max: orb.Point{180, 80 + epsilon},
		},
		StepMajor: [2]float64{90, 360},
		StepMinor: [2]float64{10, 10},
		Precision: 2.5,
	}
}

// Lines returns the graticule as a MultiLineString.
func (g *Graticule) Lines() orb.MultiLineString {
	X0, Y0 := g.ExtentMajor.Min[0], g.ExtentMajor.Min[1]
	X1, Y1 := g.ExtentMajor.Max[0], g.ExtentMajor.Max[1]
	x0, y0 := g.ExtentMinor.Min[0], g.ExtentMinor.Min[1]
	x1, y1 := g.ExtentMinor.Max[0], g.ExtentMinor.Max[1]
	DX, DY := g.StepMajor[0], g.StepMajor[1]
	dx, dy := g.StepMinor[0], g.StepMinor[1]

	var lines orb.MultiLineString
	for _, x := range steps(math.Ceil(X0/DX)*DX, X1, DX) {
		lines = append(lines, meridian(x, Y0, Y1, 90))
	}
	for _, y := range steps(math.Ceil(Y0/DY)*DY, Y1, DY) {
		lines = append(lines, parallel(y, X0, X1, g.Precision))
	}
	for _, x := range steps(math.Ceil(x0/dx)*dx, x1, dx) {
		if math.Abs(math.Mod(x, DX)) > epsilon {
			lines = append(lines, meridian(x, y0, y1, 90))
		}
	}
	for _, y := range steps(math.Ceil(y0/dy)*dy, y1, dy) {
		if math.Abs(math.Mod(y, DY)) > epsilon {
			lines = append(lines, parallel(y, x0, x1, g.Precision))
		}
	}
	return lines
}

// Outline returns the polygon bounding the major extent.
func (g *Graticule) Outline() orb.Polygon {
	X0, Y0 := g.ExtentMajor.Min[0], g.ExtentMajor.Min[1]
	X1, Y1 := g.ExtentMajor.Max[0], g.ExtentMajor.Max[1]

	ring := orb.Ring(meridian(X0, Y0, Y1, 90))
	ring = append(ring, parallel(Y1, X0, X1, g.Precision)[1:]...)
	east := meridian(X1, Y0, Y1, 90)
	for i := len(east) - 2; i >= 0; i-- {
		ring = append(ring, east[i])
	}
	south := parallel(Y0, X0, X1, g.Precision)
	for i := len(south) - 2; i >= 0; i-- {
		ring = append(ring, south[i])
	}
	return orb.Polygon{ring}
}

func meridian(x, y0, y1, dy float64) orb.LineString {
	var line orb.LineString
	for _, y := range steps(y0, y1-epsilon, dy) {
		line = append(line, orb.Point{x, y})
	}
	return append(line, orb.Point{x, y1})
}

func parallel(y, x0, x1, dx float64) orb.LineString {
	var line orb.LineString
	for _, x := range steps(x0, x1-epsilon, dx) {
		line = append(line, orb.Point{x, y})
	}
	return append(line, orb.Point{x1, y})
}

// steps returns start, start+step, ... up to but excluding stop.
func steps(start, stop, step float64) []float64 {
	if step <= 0 || !(start < stop) {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	res := make([]float64, n)
	for i := range res {
		res[i] = start + float64(i)*step
	}
	return res
}
