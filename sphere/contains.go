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

	"seehuhn.de/go/carto/fsum"
)

// PolygonContains reports whether point lies inside the spherical polygon
// given by rings.  Coordinates are longitude/latitude pairs in radians.
// Rings may be given with or without the closing point.
//
// Small polygons have clockwise exterior rings.  A polygon with a
// counter-clockwise exterior ring covers the complement of the enclosed
// region.
func PolygonContains(rings []orb.Ring, point orb.Point) bool {
	lambda := longitude(point[0])
	phi := point[1]
	sinPhi := math.Sin(phi)
	normal := r3.Vector{X: math.Sin(lambda), Y: -math.Cos(lambda)}

	if sinPhi == 1 {
		phi = halfPi + epsilon
	} else if sinPhi == -1 {
		phi = -halfPi - epsilon
	}

	var sum fsum.Adder
	angle := 0.0
	winding := 0
	for _, ring := range rings {
		m := len(ring)
		if m == 0 {
			continue
		}
		p0 := ring[m-1]
		lambda0 := longitude(p0[0])
		phi0 := p0[1]/2 + quarterPi
		sinPhi0, cosPhi0 := math.Sin(phi0), math.Cos(phi0)

		for _, p1 := range ring {
			lambda1 := longitude(p1[0])
			phi1 := p1[1]/2 + quarterPi
			sinPhi1, cosPhi1 := math.Sin(phi1), math.Cos(phi1)
			delta := lambda1 - lambda0
			sign := 1.0
			if delta < 0 {
				sign = -1
			}
			absDelta := sign * delta
			antimeridian := absDelta > math.Pi
			k := sinPhi0 * sinPhi1

			sum.Add(math.Atan2(k*sign*math.Sin(absDelta), cosPhi0*cosPhi1+k*math.Cos(absDelta)))
			if antimeridian {
				angle += delta + sign*tau
			} else {
				angle += delta
			}

			if antimeridian != (lambda0 >= lambda) != (lambda1 >= lambda) {
				arc := normalize(Cartesian(p0[0], p0[1]).Cross(Cartesian(p1[0], p1[1])))
				intersection := normalize(normal.Cross(arc))
				dir := 1.0
				if antimeridian != (delta >= 0) {
					dir = -1
				}
				phiArc := dir * Asin(intersection.Z)
				if phi > phiArc || phi == phiArc && (arc.X != 0 || arc.Y != 0) {
					if antimeridian != (delta >= 0) {
						winding++
					} else {
						winding--
					}
				}
			}

			lambda0, sinPhi0, cosPhi0, p0 = lambda1, sinPhi1, cosPhi1, p1
		}
	}

	inside := angle < -epsilon || angle < epsilon && sum.Value() < -epsilon2
	return inside != (winding&1 == 1)
}

// Contains reports whether the point pt, in degrees, lies inside the
// polygon p.
func Contains(p orb.Polygon, pt orb.Point) bool {
	rings := make([]orb.Ring, len(p))
	for i, ring := range p {
		n := len(ring)
		if n > 1 && ring[0] == ring[n-1] {
			n--
		}
		r := make(orb.Ring, n)
		for j, q := range ring[:n] {
			r[j] = orb.Point{q[0] * radians, q[1] * radians}
		}
		rings[i] = r
	}
	return PolygonContains(rings, orb.Point{pt[0] * radians, pt[1] * radians})
}

// longitude wraps lambda into [-π, π].
func longitude(lambda float64) float64 {
	if math.Abs(lambda) <= math.Pi {
		return lambda
	}
	s := 1.0
	if lambda < 0 {
		s = -1
	}
	return s * (math.Mod(math.Abs(lambda)+math.Pi, tau) - math.Pi)
}
