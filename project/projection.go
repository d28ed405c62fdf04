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

// Package project implements configurable map projections.
//
// A [Projection] combines a raw projection, which maps longitude and
// latitude in radians to the plane, with a rotation of the sphere, a
// spherical clip, adaptive resampling and an affine transform to output
// coordinates.  Projections can be applied to single points using
// [Projection.Project] and to whole geometries using [Projection.Stream].
package project

import (
	"errors"
	"math"
	"reflect"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/carto"
	"seehuhn.de/go/carto/clip"
	"seehuhn.de/go/carto/sphere"
)

// ErrUnknownProjection is returned by [ByName] for unknown names.
var ErrUnknownProjection = errors.New("unknown projection")

// Projection is a configured map projection.
//
// The zero value is not usable; projections are created using [New] or one
// of the named constructors like [Mercator].  The Set* methods modify the
// projection in place and return it, so that calls can be chained.
type Projection struct {
	raw sphere.Transform

	k      float64 // scale
	x, y   float64 // translate
	lambda float64 // centre longitude, radians
	phi    float64 // centre latitude, radians
	rot    [3]float64
	alpha  float64 // post-projection rotation, radians
	sx, sy float64 // ±1, for reflection
	theta  float64 // clip angle in radians, or 0
	extent *rect.Rect
	delta2 float64

	preclip  clip.Func
	postclip clip.Func

	// derived state, updated by recenter
	transform              matrix.Matrix
	rotate                 sphere.Transform
	projectTransform       sphere.Transform
	projectRotateTransform sphere.Transform
	resample               func(carto.Stream) carto.Stream

	cache *streamCache
}

type streamCache struct {
	sink   carto.Stream
	stream carto.Stream
}

// New returns a projection for the given raw projection.
//
// The projection starts with scale 150, translation (480, 250), no
// rotation, antimeridian cutting, no clip extent and precision √0.5.
func New(raw sphere.Transform) *Projection {
	p := &Projection{
		raw:      raw,
		k:        150,
		x:        480,
		y:        250,
		sx:       1,
		sy:       1,
		delta2:   0.5,
		preclip:  clip.Antimeridian(),
		postclip: clip.Identity,
	}
	p.recenter()
	return p
}

// Project maps a longitude/latitude pair in degrees to output coordinates.
// The result may be non-finite for points the projection cannot show.
func (p *Projection) Project(lon, lat float64) (x, y float64) {
	return p.projectRotateTransform.Forward(lon*radians, lat*radians)
}

// Invert maps output coordinates back to longitude and latitude in
// degrees.  The last return value is false if the raw projection has no
// inverse.
func (p *Projection) Invert(x, y float64) (lon, lat float64, ok bool) {
	inv := p.projectRotateTransform.Inverse
	if inv == nil {
		return 0, 0, false
	}
	lon, lat = inv(x, y)
	return lon * degrees, lat * degrees, true
}

// Stream returns a stream which projects its input and forwards the result
// to sink.  Input coordinates are in degrees.
//
// Asking twice for the same sink without changing the projection in
// between returns the same stream.
func (p *Projection) Stream(sink carto.Stream) carto.Stream {
	if p.cache != nil && sameSink(p.cache.sink, sink) {
		return p.cache.stream
	}

	s := p.postclip(sink)
	s = p.resample(s)
	s = p.preclip(s)
	s = &carto.PointMapper{Next: s, Map: p.rotate.Forward}
	s = &carto.PointMapper{Next: s, Map: toRadians}

	p.cache = &streamCache{sink: sink, stream: s}
	return s
}

// sameSink reports whether a and b are the same sink, without panicking on
// sinks of incomparable dynamic type.
func sameSink(a, b carto.Stream) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

// Scale returns the scale factor.
func (p *Projection) Scale() float64 {
	return p.k
}

// SetScale sets the scale factor.  A scale of 1 maps one radian to one
// output unit.
func (p *Projection) SetScale(k float64) *Projection {
	p.k = k
	return p.recenter()
}

// Translate returns the output position of the projection centre.
func (p *Projection) Translate() (x, y float64) {
	return p.x, p.y
}

// SetTranslate sets the output position of the projection centre.
func (p *Projection) SetTranslate(x, y float64) *Projection {
	p.x, p.y = x, y
	return p.recenter()
}

// Center returns the longitude and latitude, in degrees, which are mapped
// to the translation point.
func (p *Projection) Center() (lon, lat float64) {
	return p.lambda * degrees, p.phi * degrees
}

// SetCenter sets the longitude and latitude, in degrees, which are mapped
// to the translation point.
func (p *Projection) SetCenter(lon, lat float64) *Projection {
	p.lambda = math.Mod(lon, 360) * radians
	p.phi = math.Mod(lat, 360) * radians
	return p.recenter()
}

// Rotate returns the three rotation angles in degrees.
func (p *Projection) Rotate() [3]float64 {
	return [3]float64{p.rot[0] * degrees, p.rot[1] * degrees, p.rot[2] * degrees}
}

// SetRotate sets the rotation of the sphere which is applied before
// projecting.  The angles are in degrees: lambda rotates around the polar
// axis, phi tilts the pole and gamma rolls around the centre.
func (p *Projection) SetRotate(lambda, phi, gamma float64) *Projection {
	p.rot[0] = math.Mod(lambda, 360) * radians
	p.rot[1] = math.Mod(phi, 360) * radians
	p.rot[2] = math.Mod(gamma, 360) * radians
	return p.recenter()
}

// Angle returns the post-projection rotation in degrees.
func (p *Projection) Angle() float64 {
	return p.alpha * degrees
}

// SetAngle sets the post-projection rotation in degrees.
func (p *Projection) SetAngle(deg float64) *Projection {
	p.alpha = math.Mod(deg, 360) * radians
	return p.recenter()
}

// ReflectX reports whether the x-axis is reflected.
func (p *Projection) ReflectX() bool {
	return p.sx < 0
}

// SetReflectX sets whether the x-axis is reflected.
func (p *Projection) SetReflectX(reflect bool) *Projection {
	p.sx = 1
	if reflect {
		p.sx = -1
	}
	return p.recenter()
}

// ReflectY reports whether the y-axis is reflected.
func (p *Projection) ReflectY() bool {
	return p.sy < 0
}

// SetReflectY sets whether the y-axis is reflected.  Output y coordinates
// grow downwards unless the y-axis is reflected.
func (p *Projection) SetReflectY(reflect bool) *Projection {
	p.sy = 1
	if reflect {
		p.sy = -1
	}
	return p.recenter()
}

// ClipAngle returns the radius in degrees of the small-circle clip, or 0
// if the projection cuts along the antimeridian instead.
func (p *Projection) ClipAngle() float64 {
	return p.theta * degrees
}

// SetClipAngle selects a small-circle clip of the given radius in degrees
// around the projection centre.  An angle of 0 selects cutting along the
// antimeridian.
func (p *Projection) SetClipAngle(deg float64) *Projection {
	if deg > 0 {
		p.theta = deg * radians
		p.preclip = clip.Circle(p.theta)
	} else {
		p.theta = 0
		p.preclip = clip.Antimeridian()
	}
	p.reset()
	return p
}

// ClipExtent returns the output rectangle the projection is clipped to, or
// nil if output is not clipped.
func (p *Projection) ClipExtent() *rect.Rect {
	if p.extent == nil {
		return nil
	}
	r := *p.extent
	return &r
}

// SetClipExtent restricts output to the given rectangle.  A nil rectangle
// disables output clipping.
func (p *Projection) SetClipExtent(r *rect.Rect) *Projection {
	if r == nil {
		p.extent = nil
		p.postclip = clip.Identity
	} else {
		e := *r
		p.extent = &e
		p.postclip = clip.Rectangle(e.LLx, e.LLy, e.URx, e.URy)
	}
	p.reset()
	return p
}

// Precision returns the resampling threshold in output units.
func (p *Projection) Precision() float64 {
	return math.Sqrt(p.delta2)
}

// SetPrecision sets the maximum distance in output units between a
// resampled line and the projected great arc.  Precision 0 disables
// resampling.
func (p *Projection) SetPrecision(precision float64) *Projection {
	p.delta2 = precision * precision
	return p.recenter()
}

// recenter recomputes the derived transforms after a parameter change.
func (p *Projection) recenter() *Projection {
	cx, cy := p.raw.Forward(p.lambda, p.phi)
	m := scaleTranslateRotate(p.k, 0, 0, p.sx, p.sy, p.alpha)
	cx, cy = apply(m, cx, cy)
	p.transform = scaleTranslateRotate(p.k, p.x-cx, p.y-cy, p.sx, p.sy, p.alpha)

	p.rotate = sphere.RotateRadians(p.rot[0], p.rot[1], p.rot[2])
	p.projectTransform = sphere.Compose(p.raw, affine(p.transform))
	p.projectRotateTransform = sphere.Compose(p.rotate, p.projectTransform)
	p.resample = Resample(p.projectTransform.Forward, p.delta2)
	p.reset()
	return p
}

func (p *Projection) reset() {
	p.cache = nil
}

// The following methods allow [Projection] to be used by the fit helpers.

func (p *Projection) setScaleTranslate(k, x, y float64) {
	p.k, p.x, p.y = k, x, y
	p.recenter()
}

func (p *Projection) clipExtent() *rect.Rect {
	return p.ClipExtent()
}

func (p *Projection) setClipExtent(r *rect.Rect) {
	p.SetClipExtent(r)
}

func toRadians(x, y float64) (float64, float64) {
	return x * radians, y * radians
}

const (
	epsilon  = 1e-6
	epsilon2 = 1e-12
	halfPi   = math.Pi / 2
	radians  = math.Pi / 180
	degrees  = 180 / math.Pi
)
