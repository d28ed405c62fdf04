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

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/carto"
	"seehuhn.de/go/carto/geopath"
)

// fitter is implemented by the projection types which support fitting.
type fitter interface {
	Stream(sink carto.Stream) carto.Stream
	setScaleTranslate(k, x, y float64)
	clipExtent() *rect.Rect
	setClipExtent(r *rect.Rect)
}

// fit projects obj with scale 150, no translation and no clip extent, and
// then passes the output bounds to adjust.  The clip extent is restored
// afterwards.
func fit(p fitter, obj any, adjust func(b rect.Rect)) {
	extent := p.clipExtent()
	p.setScaleTranslate(150, 0, 0)
	if extent != nil {
		p.setClipExtent(nil)
	}

	bounds := &geopath.Bounds{}
	carto.Walk(obj, p.Stream(bounds))
	adjust(bounds.Result())

	if extent != nil {
		p.setClipExtent(extent)
	}
}

func fitExtent(p fitter, extent rect.Rect, obj any) {
	fit(p, obj, func(b rect.Rect) {
		w := extent.URx - extent.LLx
		h := extent.URy - extent.LLy
		k := math.Min(w/(b.URx-b.LLx), h/(b.URy-b.LLy))
		x := extent.LLx + (w-k*(b.URx+b.LLx))/2
		y := extent.LLy + (h-k*(b.URy+b.LLy))/2
		p.setScaleTranslate(150*k, x, y)
	})
}

func fitWidth(p fitter, width float64, obj any) {
	fit(p, obj, func(b rect.Rect) {
		k := width / (b.URx - b.LLx)
		x := (width - k*(b.URx+b.LLx)) / 2
		y := -k * b.LLy
		p.setScaleTranslate(150*k, x, y)
	})
}

func fitHeight(p fitter, height float64, obj any) {
	fit(p, obj, func(b rect.Rect) {
		k := height / (b.URy - b.LLy)
		x := -k * b.LLx
		y := (height - k*(b.URy+b.LLy)) / 2
		p.setScaleTranslate(150*k, x, y)
	})
}

// FitExtent sets scale and translation such that obj fills the given
// output rectangle, centred along the axis with spare room.
func (p *Projection) FitExtent(extent rect.Rect, obj any) *Projection {
	fitExtent(p, extent, obj)
	return p
}

// FitSize is like FitExtent for the rectangle from (0, 0) to
// (width, height).
func (p *Projection) FitSize(width, height float64, obj any) *Projection {
	fitExtent(p, rect.Rect{URx: width, URy: height}, obj)
	return p
}

// FitWidth sets scale and translation such that obj spans the output
// x-range from 0 to width, with its top edge at y = 0.
func (p *Projection) FitWidth(width float64, obj any) *Projection {
	fitWidth(p, width, obj)
	return p
}

// FitHeight sets scale and translation such that obj spans the output
// y-range from 0 to height, with its left edge at x = 0.
func (p *Projection) FitHeight(height float64, obj any) *Projection {
	fitHeight(p, height, obj)
	return p
}
