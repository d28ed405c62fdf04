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

	"github.com/golang/geo/r3"
	"github.com/paulmach/orb"

	"seehuhn.de/go/carto"
)

// CircleStream emits points along the small circle of the given angular
// radius around the point (0, 0) to s, stepping by delta radians.
//
// If from is nil the whole circle is emitted, ending near its start point.
// Otherwise the arc from the point from towards the point to is emitted,
// starting at from and stopping before to.  Both points must lie on the
// circle.  The arc runs
// counter-clockwise (seen from outside the sphere) for direction < 0 and
// clockwise for direction > 0.
func CircleStream(s carto.Stream, radius, delta, direction float64, from, to *orb.Point) {
	circlePoints(radius, delta, direction, from, to, func(lambda, phi float64) {
		s.Point(lambda, phi, 0)
	})
}

func circlePoints(radius, delta, direction float64, from, to *orb.Point, emit func(lambda, phi float64)) {
	if delta == 0 {
		return
	}
	cosRadius, sinRadius := math.Cos(radius), math.Sin(radius)
	step := direction * delta

	var t0, t1 float64
	if from == nil {
		t0 = radius + direction*tau
		t1 = radius - step/2
	} else {
		t0 = circleAngle(cosRadius, *from)
		t1 = circleAngle(cosRadius, *to)
		if direction > 0 && t0 < t1 || direction <= 0 && t0 > t1 {
			t0 += direction * tau
		}
	}

	for t := t0; direction > 0 && t > t1 || direction <= 0 && t < t1; t -= step {
		emit(Spherical(r3.Vector{
			X: cosRadius,
			Y: -sinRadius * math.Cos(t),
			Z: -sinRadius * math.Sin(t),
		}))
	}
}

// circleAngle returns the position of p along the circle with the given
// cosine of its radius, as an angle in [0, 2π).
func circleAngle(cosRadius float64, p orb.Point) float64 {
	v := Cartesian(p[0], p[1])
	v.X -= cosRadius
	v = normalize(v)
	r := Acos(-v.Y)
	if -v.Z < 0 {
		r = -r
	}
	return math.Mod(r+tau-epsilon, tau)
}

// Circle returns a polygon approximating the small circle with the given
// center and radius.  All angles are in degrees; precision is the angular
// step between vertices.  The ring is clockwise, so for radius < 90 the
// polygon covers the inside of the circle.
func Circle(center orb.Point, radius, precision float64) orb.Polygon {
	rotate := RotateRadians(-center[0]*radians, -center[1]*radians, 0).Inverse
	var ring orb.Ring
	circlePoints(radius*radians, precision*radians, 1, nil, nil, func(lambda, phi float64) {
		x, y := rotate(lambda, phi)
		ring = append(ring, orb.Point{x * degrees, y * degrees})
	})
	return orb.Polygon{ring}
}
