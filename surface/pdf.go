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

// Package surface adapts drawing targets to [geopath.Context], so that
// projected geometry can be drawn on them with [geopath.Path.Draw].
package surface

import (
	"seehuhn.de/go/carto/geopath"
)

// PathBuilder is the path construction subset of a PDF content stream
// writer, as implemented by the pages of seehuhn.de/go/pdf/document.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// PDF draws on a PDF page.  Circular arcs are written as cubic Bézier
// curves.
type PDF struct {
	Page PathBuilder

	hasCur bool
	curX   float64
	curY   float64
}

var _ geopath.Context = (*PDF)(nil)

// NewPDF returns a context which writes path operators to page.
func NewPDF(page PathBuilder) *PDF {
	return &PDF{Page: page}
}

func (p *PDF) MoveTo(x, y float64) {
	p.Page.MoveTo(x, y)
	p.hasCur, p.curX, p.curY = true, x, y
}

func (p *PDF) LineTo(x, y float64) {
	if !p.hasCur {
		p.MoveTo(x, y)
		return
	}
	p.Page.LineTo(x, y)
	p.curX, p.curY = x, y
}

func (p *PDF) ClosePath() {
	if p.hasCur {
		p.Page.ClosePath()
	}
}

// Arc implements [geopath.Context].  If there is a current point which
// differs from the start of the arc, the two are joined by a straight line.
func (p *PDF) Arc(x, y, r, a0, a1 float64) {
	start, curves := geopath.ArcSegments(x, y, r, a0, a1)
	switch {
	case !p.hasCur:
		p.MoveTo(start.X, start.Y)
	case start.X != p.curX || start.Y != p.curY:
		p.LineTo(start.X, start.Y)
	}
	for i := 0; i+2 < len(curves); i += 3 {
		c1, c2, end := curves[i], curves[i+1], curves[i+2]
		p.Page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		p.curX, p.curY = end.X, end.Y
	}
}

// Reset forgets the current point, after the page has painted the path.
func (p *PDF) Reset() {
	p.hasCur = false
}
