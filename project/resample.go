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

	"seehuhn.de/go/carto"
	"seehuhn.de/go/carto/sphere"
)

// Resample returns a stream transformer which projects points with the
// function project, which maps longitude/latitude in radians to the
// plane.
//
// Lines are adaptively subdivided along great arcs, until the projected
// line deviates from the projected arc by no more than √delta2.  If delta2
// is zero, points are projected without subdivision.
func Resample(project sphere.Func, delta2 float64) func(carto.Stream) carto.Stream {
	if !(delta2 > 0) {
		return func(s carto.Stream) carto.Stream {
			return &carto.PointMapper{Next: s, Map: project}
		}
	}
	return func(s carto.Stream) carto.Stream {
		return &resampler{project: project, delta2: delta2, s: s}
	}
}

// sample is a line vertex, both projected and as a unit vector.
type sample struct {
	x, y    float64 // projected position
	lambda  float64
	a, b, c float64 // unit vector
}

type resampler struct {
	project sphere.Func
	delta2  float64
	s       carto.Stream

	inPolygon bool
	inLine    bool
	ringFirst bool

	first sample // first vertex of the current ring
	prev  sample
}

func (r *resampler) Point(lambda, phi, z float64) {
	if !r.inLine {
		x, y := r.project(lambda, phi)
		r.s.Point(x, y, z)
		return
	}

	v := sphere.Cartesian(lambda, phi)
	x, y := r.project(lambda, phi)
	next := sample{x: x, y: y, lambda: lambda, a: v.X, b: v.Y, c: v.Z}
	r.lineTo(r.prev, next, maxDepth)
	r.s.Point(x, y, 0)
	r.prev = next

	if r.ringFirst {
		r.first = next
		r.ringFirst = false
	}
}

func (r *resampler) LineStart() {
	r.inLine = true
	r.prev = sample{x: math.NaN()}
	r.ringFirst = r.inPolygon
	r.s.LineStart()
}

func (r *resampler) LineEnd() {
	if r.inPolygon && !r.ringFirst {
		r.lineTo(r.prev, r.first, maxDepth)
	}
	r.inLine = false
	r.s.LineEnd()
}

func (r *resampler) PolygonStart() {
	r.inPolygon = true
	r.s.PolygonStart()
}

func (r *resampler) PolygonEnd() {
	r.inPolygon = false
	r.s.PolygonEnd()
}

func (r *resampler) Sphere() {
	r.s.Sphere()
}

// lineTo emits the intermediate points needed to draw the great arc from
// p0 to p1, excluding both end points.
func (r *resampler) lineTo(p0, p1 sample, depth int) {
	dx, dy := p1.x-p0.x, p1.y-p0.y
	d2 := dx*dx + dy*dy
	if !(d2 > 4*r.delta2) || depth == 0 {
		return
	}
	depth--

	a, b, c := p0.a+p1.a, p0.b+p1.b, p0.c+p1.c
	m := math.Sqrt(a*a + b*b + c*c)
	c /= m
	phi2 := sphere.Asin(c)
	var lambda2 float64
	if math.Abs(math.Abs(c)-1) < epsilon || math.Abs(p0.lambda-p1.lambda) < epsilon {
		lambda2 = (p0.lambda + p1.lambda) / 2
	} else {
		lambda2 = math.Atan2(b, a)
	}
	x2, y2 := r.project(lambda2, phi2)

	dx2, dy2 := x2-p0.x, y2-p0.y
	dz := dy*dx2 - dx*dy2
	if dz*dz/d2 > r.delta2 || // perpendicular projected distance
		math.Abs((dx*dx2+dy*dy2)/d2-0.5) > 0.3 || // midpoint close to an end
		p0.a*p1.a+p0.b*p1.b+p0.c*p1.c < cosMinDistance { // angular distance
		mid := sample{x: x2, y: y2, lambda: lambda2, a: a / m, b: b / m, c: c}
		r.lineTo(p0, mid, depth)
		r.s.Point(x2, y2, 0)
		r.lineTo(mid, p1, depth)
	}
}

const (
	// maxDepth bounds the recursion of the resampler.
	maxDepth = 16

	// cosMinDistance is the cosine of the largest angle between
	// consecutive vertices which is left unsubdivided.
	cosMinDistance = 0.8660254037844387 // cos(30°)
)
