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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PathData collects geometry as a [path.Data] value, for use with the
// raster and PDF surfaces.  Points become circles of radius PointRadius,
// built from cubic Bézier segments.
type PathData struct {
	PointRadius float64

	data   *path.Data
	inPoly bool
	state  lineState
}

// NewPathData returns a PathData with point radius 4.5.
func NewPathData() *PathData {
	return &PathData{PointRadius: 4.5}
}

func (d *PathData) Point(x, y, _ float64) {
	if d.data == nil {
		d.data = &path.Data{}
	}
	p := vec.Vec2{X: x, Y: y}
	switch d.state {
	case lineFirst:
		d.data = d.data.MoveTo(p)
		d.state = lineRest
	case lineRest:
		d.data = d.data.LineTo(p)
	default:
		d.data = appendCircle(d.data, p, d.PointRadius)
	}
}

func (d *PathData) LineStart() {
	d.state = lineFirst
}

func (d *PathData) LineEnd() {
	if d.inPoly && d.data != nil {
		d.data = d.data.Close()
	}
	d.state = outsideLine
}

func (d *PathData) PolygonStart() { d.inPoly = true }
func (d *PathData) PolygonEnd()   { d.inPoly = false }
func (d *PathData) Sphere()       {}

// Result returns the collected path and starts a new one.  The result is
// nil if no geometry was received.
func (d *PathData) Result() *path.Data {
	res := d.data
	d.data = nil
	return res
}

// appendCircle adds a closed circle around c to p.
func appendCircle(p *path.Data, c vec.Vec2, r float64) *path.Data {
	start, curves := ArcSegments(c.X, c.Y, r, 0, 2*math.Pi)
	p = p.MoveTo(start)
	for i := 0; i+2 < len(curves); i += 3 {
		p = p.CubeTo(curves[i], curves[i+1], curves[i+2])
	}
	return p.Close()
}
