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

package clip

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/paulmach/orb"

	"seehuhn.de/go/carto"
	"seehuhn.de/go/carto/sphere"
)

// Circle returns the sphere clip which keeps the region within the given
// angular radius, in radians, of the point (0, 0).  Radii above π/2 keep
// more than a hemisphere.
func Circle(radius float64) Func {
	c := &circleClip{
		radius:        radius,
		cr:            math.Cos(radius),
		delta:         circleStep,
		smallRadius:   math.Cos(radius) > 0,
		notHemisphere: math.Abs(math.Cos(radius)) > epsilon,
	}
	start := orb.Point{-math.Pi, radius - math.Pi}
	if c.smallRadius {
		start = orb.Point{0, -radius}
	}
	return New(c.visible, c.newLine, c.interpolate, start)
}

type circleClip struct {
	radius        float64
	cr            float64 // cosine of the radius
	delta         float64 // interpolation step
	smallRadius   bool
	notHemisphere bool
}

func (c *circleClip) visible(lambda, phi float64) bool {
	return math.Cos(lambda)*math.Cos(phi) > c.cr
}

func (c *circleClip) interpolate(from, to *orb.Point, direction float64, s carto.Stream) {
	sphere.CircleStream(s, c.radius, c.delta, direction, from, to)
}

// code returns a 4-bit classification of a point relative to the bounding
// box of the circle: bits 0 and 1 for left and right, bits 2 and 3 for
// below and above.
func (c *circleClip) code(lambda, phi float64) int {
	r := c.radius
	if !c.smallRadius {
		r = math.Pi - c.radius
	}
	code := 0
	if lambda < -r {
		code |= 1
	} else if lambda > r {
		code |= 2
	}
	if phi < -r {
		code |= 4
	} else if phi > r {
		code |= 8
	}
	return code
}

// intersect intersects the great circle through a and b with the clip
// circle.  If two is false, it returns the first intersection point.  If
// two is true, it returns both intersection points, provided the first
// one lies on the arc between a and b.  The result n gives the number of
// points returned.
func (c *circleClip) intersect(a, b vertex, two bool) (q0, q1 vertex, n int) {
	pa := sphere.Cartesian(a.x, a.y)
	pb := sphere.Cartesian(b.x, b.y)

	// Two planes, n1·p = d1 and n2·p = d2.  The intersection line is
	// p(t) = c1 n1 + c2 n2 + t (n1 × n2).
	n1 := r3.Vector{X: 1}
	n2 := pa.Cross(pb)
	n2n2 := n2.Dot(n2)
	n1n2 := n2.X
	determinant := n2n2 - n1n2*n1n2

	// two polar points
	if determinant == 0 {
		if two {
			return vertex{}, vertex{}, 0
		}
		return a, vertex{}, 1
	}

	c1 := c.cr * n2n2 / determinant
	c2 := -c.cr * n1n2 / determinant
	u := n1.Cross(n2)
	A := n1.Mul(c1).Add(n2.Mul(c2))

	// solve |p(t)|² = 1
	w := A.Dot(u)
	uu := u.Dot(u)
	t2 := w*w - uu*(A.Dot(A)-1)
	if t2 < 0 {
		return vertex{}, vertex{}, 0
	}
	t := math.Sqrt(t2)
	q0 = toVertex(u.Mul((-w - t) / uu).Add(A))
	if !two {
		return q0, vertex{}, 1
	}

	lambda0, lambda1, phi0, phi1 := a.x, b.x, a.y, b.y
	if lambda1 < lambda0 {
		lambda0, lambda1 = lambda1, lambda0
	}
	delta := lambda1 - lambda0
	polar := math.Abs(delta-math.Pi) < epsilon
	meridian := polar || delta < epsilon
	if !polar && phi1 < phi0 {
		phi0, phi1 = phi1, phi0
	}

	// check that the first point lies between a and b
	var between bool
	switch {
	case polar:
		ref := phi1
		if math.Abs(q0.x-lambda0) < epsilon {
			ref = phi0
		}
		between = (phi0+phi1 > 0) != (q0.y < ref)
	case meridian:
		between = phi0 <= q0.y && q0.y <= phi1
	default:
		between = (delta > math.Pi) != (lambda0 <= q0.x && q0.x <= lambda1)
	}
	if !between {
		return vertex{}, vertex{}, 0
	}
	q1 = toVertex(u.Mul((-w + t) / uu).Add(A))
	return q0, q1, 2
}

func toVertex(v r3.Vector) vertex {
	lambda, phi := sphere.Spherical(v)
	return vertex{x: lambda, y: phi}
}

type circleLine struct {
	c *circleClip
	s carto.Stream

	point0   vertex
	hasPoint bool
	c0       int
	v0, v00  bool
	clean    int
}

func (c *circleClip) newLine(s carto.Stream) LineClipper {
	return &circleLine{c: c, s: s}
}

func (l *circleLine) LineStart() {
	l.v00 = false
	l.v0 = false
	l.clean = 1
}

func (l *circleLine) Point(lambda, phi, _ float64) {
	c := l.c
	point1 := vertex{x: lambda, y: phi}
	v := c.visible(lambda, phi)

	var code int
	if c.smallRadius {
		if !v {
			code = c.code(lambda, phi)
		}
	} else if v {
		if lambda < 0 {
			code = c.code(lambda+math.Pi, phi)
		} else {
			code = c.code(lambda-math.Pi, phi)
		}
	}

	if !l.hasPoint {
		l.v0 = v
		l.v00 = v
		if v {
			l.s.LineStart()
		}
	}

	if v != l.v0 {
		p2, _, n := c.intersect(l.point0, point1, false)
		if n == 0 || pointEqual(l.point0, p2) || pointEqual(point1, p2) {
			point1.m = 1
		}
	}

	if v != l.v0 {
		l.clean = 0
		var p2 vertex
		if v {
			// outside going in
			l.s.LineStart()
			p2 = l.crossing(point1, l.point0)
			l.s.Point(p2.x, p2.y, 0)
		} else {
			// inside going out
			p2 = l.crossing(l.point0, point1)
			l.s.Point(p2.x, p2.y, 2)
			l.s.LineEnd()
		}
		l.point0 = p2
	} else if c.notHemisphere && l.hasPoint && c.smallRadius != v {
		// Both points are on the same side, but the arc between them
		// may still dip into or out of the circle.
		if code&l.c0 == 0 {
			if t0, t1, n := c.intersect(point1, l.point0, true); n == 2 {
				l.clean = 0
				if c.smallRadius {
					l.s.LineStart()
					l.s.Point(t0.x, t0.y, 0)
					l.s.Point(t1.x, t1.y, 0)
					l.s.LineEnd()
				} else {
					l.s.Point(t1.x, t1.y, 0)
					l.s.LineEnd()
					l.s.LineStart()
					l.s.Point(t0.x, t0.y, 3)
				}
			}
		}
	}

	if v && (!l.hasPoint || !pointEqual(l.point0, point1)) {
		l.s.Point(point1.x, point1.y, point1.m)
	}
	l.point0, l.hasPoint, l.v0, l.c0 = point1, true, v, code
}

// crossing returns the point where the arc from a to b crosses the clip
// circle.  If no crossing can be computed, a is returned.
func (l *circleLine) crossing(a, b vertex) vertex {
	q, _, n := l.c.intersect(a, b, false)
	if n == 0 {
		return a
	}
	return q
}

func (l *circleLine) LineEnd() {
	if l.v0 {
		l.s.LineEnd()
	}
	l.hasPoint = false
}

// Clean sets bit 1 if the line started and ended inside the circle, so
// that the first and last piece of a cut ring are joined.
func (l *circleLine) Clean() int {
	if l.v00 && l.v0 {
		return l.clean | 2
	}
	return l.clean
}

// circleStep is the angular step for points along the clip circle.
const circleStep = 6 * math.Pi / 180
