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

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/carto/geopath"
)

// Canvas is a drawing surface backed by an image.
//
// Canvas implements [geopath.Context]: the path drawn with MoveTo, LineTo,
// ClosePath and Arc is painted by the next call to Fill or Stroke.
type Canvas struct {
	Img draw.Image

	r    *Rasteriser
	mask *image.Alpha
	path *path.Data

	cur, start vec.Vec2
	hasCur     bool

	segs  []vec.Vec2 // pairs of stroke segment end points
	joint []vec.Vec2
}

var _ geopath.Context = (*Canvas)(nil)

// NewCanvas returns a canvas which draws on img.
func NewCanvas(img draw.Image) *Canvas {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	}
	return &Canvas{
		Img:  img,
		r:    NewRasteriser(clip),
		mask: image.NewAlpha(b),
		path: &path.Data{},
	}
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	p := vec.Vec2{X: x, Y: y}
	c.path = c.path.MoveTo(p)
	c.cur, c.start, c.hasCur = p, p, true
}

// LineTo adds a straight line to (x, y).
func (c *Canvas) LineTo(x, y float64) {
	if !c.hasCur {
		c.MoveTo(x, y)
		return
	}
	p := vec.Vec2{X: x, Y: y}
	c.path = c.path.LineTo(p)
	c.cur = p
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	if !c.hasCur {
		return
	}
	c.path = c.path.Close()
	c.cur = c.start
}

// Arc adds a circular arc, connected to the current point by a straight
// line.
func (c *Canvas) Arc(x, y, r, a0, a1 float64) {
	start, curves := geopath.ArcSegments(x, y, r, a0, a1)
	if !c.hasCur {
		c.MoveTo(start.X, start.Y)
	} else if start != c.cur {
		c.LineTo(start.X, start.Y)
	}
	for i := 0; i+2 < len(curves); i += 3 {
		c.path = c.path.CubeTo(curves[i], curves[i+1], curves[i+2])
	}
	c.cur = curves[len(curves)-1]
}

// Path returns the current path.
func (c *Canvas) Path() *path.Data {
	return c.path
}

// Fill paints the inside of the current path with col and starts a new
// path.
func (c *Canvas) Fill(col color.Color, rule FillRule) {
	c.r.AddPath(c.path)
	c.paint(col, rule)
	c.clearPath()
}

// FillPath paints the inside of p with col.  The current path is not
// changed.
func (c *Canvas) FillPath(p *path.Data, col color.Color, rule FillRule) {
	c.r.AddPath(p)
	c.paint(col, rule)
}

// Stroke paints the outline of the current path with lines of the given
// width, and starts a new path.  Line ends are squared off and joins are
// round.
func (c *Canvas) Stroke(col color.Color, width float64) {
	c.segs = c.segs[:0]
	var cur, start vec.Vec2
	add := func(from, to vec.Vec2) {
		c.segs = append(c.segs, from, to)
	}
	i := 0
	for _, cmd := range c.path.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = c.path.Coords[i]
			start = cur
			i++
		case path.CmdLineTo:
			add(cur, c.path.Coords[i])
			cur = c.path.Coords[i]
			i++
		case path.CmdQuadTo:
			c.r.flattenQuadratic(cur, c.path.Coords[i], c.path.Coords[i+1], add)
			cur = c.path.Coords[i+1]
			i += 2
		case path.CmdCubeTo:
			c.r.flattenCubic(cur, c.path.Coords[i], c.path.Coords[i+1], c.path.Coords[i+2], add)
			cur = c.path.Coords[i+2]
			i += 3
		case path.CmdClose:
			if cur != start {
				add(cur, start)
			}
			cur = start
		}
	}

	w := width / 2
	for j := 0; j+1 < len(c.segs); j += 2 {
		p0, p1 := c.segs[j], c.segs[j+1]
		d := p1.Sub(p0)
		l := d.Length()
		if l < zeroLengthThreshold {
			continue
		}
		d = d.Mul(w / l)
		n := vec.Vec2{X: -d.Y, Y: d.X}
		p0 = p0.Sub(d)
		p1 = p1.Add(d)
		c.r.AddPolygon(p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n))
	}
	if width > minJoinWidth {
		for j := 2; j+1 < len(c.segs); j += 2 {
			if c.segs[j] == c.segs[j-1] {
				c.addJoin(c.segs[j], w)
			}
		}
	}
	c.paint(col, NonZero)
	c.clearPath()
}

// addJoin adds a disc around a vertex where two stroke segments meet.
// The disc has the same orientation as the segment quads, so that the
// nonzero rule merges them.
func (c *Canvas) addJoin(p vec.Vec2, r float64) {
	n := max(8, int(math.Ceil(2*math.Pi*r)))
	c.joint = c.joint[:0]
	for i := range n {
		sin, cos := math.Sincos(-2 * math.Pi * float64(i) / float64(n))
		c.joint = append(c.joint, vec.Vec2{X: p.X + r*cos, Y: p.Y + r*sin})
	}
	c.r.AddPolygon(c.joint...)
}

func (c *Canvas) clearPath() {
	c.path = &path.Data{}
	c.hasCur = false
}

// paint composites col onto the image, using the coverage of the edges
// collected in the rasteriser as the mask.
func (c *Canvas) paint(col color.Color, rule FillRule) {
	b := c.mask.Rect
	painted := image.Rectangle{}
	c.r.Fill(rule, func(y, xMin int, coverage []float32) {
		off := c.mask.PixOffset(xMin, y)
		for i, v := range coverage {
			c.mask.Pix[off+i] = uint8(math.Round(float64(v) * 255))
		}
		painted = painted.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	painted = painted.Intersect(b)
	if painted.Empty() {
		return
	}
	draw.DrawMask(c.Img, painted, image.NewUniform(col), image.Point{}, c.mask, painted.Min, draw.Over)
	for y := painted.Min.Y; y < painted.Max.Y; y++ {
		off := c.mask.PixOffset(painted.Min.X, y)
		clear(c.mask.Pix[off : off+painted.Dx()])
	}
}

const (
	// zeroLengthThreshold is the minimum length of a stroked segment.
	zeroLengthThreshold = 1e-10

	// minJoinWidth is the line width below which joins are not drawn.
	minJoinWidth = 1.5
)
