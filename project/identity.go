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

package project

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/carto"
	"seehuhn.de/go/carto/clip"
	"seehuhn.de/go/carto/sphere"
)

// Identity is a planar projection for geometry which is already projected,
// for example shapefiles in a projected coordinate system.  It applies
// scale, translation, reflection, rotation and an optional clip extent,
// but no spherical clipping or resampling.
type Identity struct {
	k      float64
	tx, ty float64
	sx, sy float64
	alpha  float64
	extent *rect.Rect

	postclip clip.Func
	m        sphere.Transform
	cache    *streamCache
}

// NewIdentity returns the identity projection.
func NewIdentity() *Identity {
	p := &Identity{
		k:        1,
		sx:       1,
		sy:       1,
		postclip: clip.Identity,
	}
	p.update()
	return p
}

// Project applies the planar transform to (x, y).
func (p *Identity) Project(x, y float64) (float64, float64) {
	return p.m.Forward(x, y)
}

// Invert reverses [Identity.Project].
func (p *Identity) Invert(x, y float64) (float64, float64) {
	return p.m.Inverse(x, y)
}

// Stream returns a stream which transforms its input and forwards it to
// sink.
func (p *Identity) Stream(sink carto.Stream) carto.Stream {
	if p.cache != nil && sameSink(p.cache.sink, sink) {
		return p.cache.stream
	}
	s := &carto.PointMapper{Next: p.postclip(sink), Map: p.m.Forward}
	p.cache = &streamCache{sink: sink, stream: s}
	return s
}

// Scale returns the scale factor.
func (p *Identity) Scale() float64 { return p.k }

// SetScale sets the scale factor.
func (p *Identity) SetScale(k float64) *Identity {
	p.k = k
	return p.update()
}

// Translate returns the translation.
func (p *Identity) Translate() (x, y float64) { return p.tx, p.ty }

// SetTranslate sets the translation.
func (p *Identity) SetTranslate(x, y float64) *Identity {
	p.tx, p.ty = x, y
	return p.update()
}

// Angle returns the rotation in degrees.
func (p *Identity) Angle() float64 { return p.alpha * degrees }

// SetAngle sets the rotation in degrees.
func (p *Identity) SetAngle(deg float64) *Identity {
	p.alpha = math.Mod(deg, 360) * radians
	return p.update()
}

// SetReflectX sets whether the x-axis is reflected.
func (p *Identity) SetReflectX(reflect bool) *Identity {
	p.sx = 1
	if reflect {
		p.sx = -1
	}
	return p.update()
}

// SetReflectY sets whether the y-axis is reflected.  Use this to draw
// geometry with y pointing up on a surface with y pointing down.
func (p *Identity) SetReflectY(reflect bool) *Identity {
	p.sy = 1
	if reflect {
		p.sy = -1
	}
	return p.update()
}

// ClipExtent returns the clip rectangle, or nil.
func (p *Identity) ClipExtent() *rect.Rect {
	if p.extent == nil {
		return nil
	}
	r := *p.extent
	return &r
}

// SetClipExtent restricts output to the given rectangle, or disables
// clipping if r is nil.
func (p *Identity) SetClipExtent(r *rect.Rect) *Identity {
	if r == nil {
		p.extent = nil
		p.postclip = clip.Identity
	} else {
		e := *r
		p.extent = &e
		p.postclip = clip.Rectangle(e.LLx, e.LLy, e.URx, e.URy)
	}
	p.cache = nil
	return p
}

// FitExtent sets scale and translation such that obj fills the rectangle.
func (p *Identity) FitExtent(extent rect.Rect, obj any) *Identity {
	fitExtent(p, extent, obj)
	return p
}

// FitSize is like FitExtent for the rectangle from (0, 0) to
// (width, height).
func (p *Identity) FitSize(width, height float64, obj any) *Identity {
	fitExtent(p, rect.Rect{URx: width, URy: height}, obj)
	return p
}

// FitWidth fits obj to the given width.
func (p *Identity) FitWidth(width float64, obj any) *Identity {
	fitWidth(p, width, obj)
	return p
}

// FitHeight fits obj to the given height.
func (p *Identity) FitHeight(height float64, obj any) *Identity {
	fitHeight(p, height, obj)
	return p
}

func (p *Identity) update() *Identity {
	kx, ky := p.k*p.sx, p.k*p.sy
	ca, sa := math.Cos(p.alpha), math.Sin(p.alpha)
	p.m = affine(matrix.Matrix{kx * ca, -kx * sa, ky * sa, ky * ca, p.tx, p.ty})
	p.cache = nil
	return p
}

func (p *Identity) setScaleTranslate(k, x, y float64) {
	p.k, p.tx, p.ty = k, x, y
	p.update()
}

func (p *Identity) clipExtent() *rect.Rect { return p.ClipExtent() }

func (p *Identity) setClipExtent(r *rect.Rect) { p.SetClipExtent(r) }
