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

// Package sphere implements spherical trigonometry on the unit sphere.
//
// Unless stated otherwise, angles passed to and returned from the functions
// in this package are in radians.  The measurement functions [Area],
// [Length], [Distance] and [Interpolate], and the generators [Circle] and
// [Graticule] use degrees, like the geometry objects they operate on.
package sphere

import (
	"math"

	"github.com/golang/geo/r3"
)

// Cartesian returns the unit vector for the point with longitude lambda
// and latitude phi.
func Cartesian(lambda, phi float64) r3.Vector {
	cosPhi := math.Cos(phi)
	return r3.Vector{
		X: cosPhi * math.Cos(lambda),
		Y: cosPhi * math.Sin(lambda),
		Z: math.Sin(phi),
	}
}

// Spherical returns longitude and latitude of the direction v.
// The vector must have unit length.
func Spherical(v r3.Vector) (lambda, phi float64) {
	return math.Atan2(v.Y, v.X), Asin(v.Z)
}

// Asin is math.Asin with the argument clamped to [-1, 1].
func Asin(x float64) float64 {
	if x > 1 {
		return math.Pi / 2
	} else if x < -1 {
		return -math.Pi / 2
	}
	return math.Asin(x)
}

// Acos is math.Acos with the argument clamped to [-1, 1].
func Acos(x float64) float64 {
	if x > 1 {
		return 0
	} else if x < -1 {
		return math.Pi
	}
	return math.Acos(x)
}

// normalize scales v to unit length.  Unlike r3.Vector.Normalize, the zero
// vector maps to NaN, so that degenerate arcs drop out of comparisons.
func normalize(v r3.Vector) r3.Vector {
	return v.Mul(1 / v.Norm())
}

func haversin(x float64) float64 {
	x = math.Sin(x / 2)
	return x * x
}

const (
	radians = math.Pi / 180
	degrees = 180 / math.Pi

	halfPi    = math.Pi / 2
	quarterPi = math.Pi / 4
	tau       = 2 * math.Pi
)

// Numerical tolerances.
const (
	// epsilon is the angular tolerance in radians.
	epsilon = 1e-6

	// epsilon2 is the tolerance for accumulated signed areas.
	epsilon2 = 1e-12
)
