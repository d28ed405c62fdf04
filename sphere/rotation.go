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
)

// Func maps a point (x, y) to a new point.
type Func func(x, y float64) (float64, float64)

// Transform is a point mapping together with its inverse.
// Inverse is nil if the mapping cannot be inverted.
type Transform struct {
	Forward Func
	Inverse Func
}

// Invertible reports whether t has an inverse.
func (t Transform) Invertible() bool {
	return t.Inverse != nil
}

// Compose returns the transform which first applies a and then b.
// The result is invertible if both a and b are.
func Compose(a, b Transform) Transform {
	res := Transform{
		Forward: func(x, y float64) (float64, float64) {
			return b.Forward(a.Forward(x, y))
		},
	}
	if a.Inverse != nil && b.Inverse != nil {
		res.Inverse = func(x, y float64) (float64, float64) {
			return a.Inverse(b.Inverse(x, y))
		}
	}
	return res
}

// RotateRadians returns the rotation of the sphere which first shifts
// longitudes by dLambda and then, if dPhi or dGamma is non-zero, tilts the
// pole by dPhi and rolls by dGamma.  All angles are in radians.
func RotateRadians(dLambda, dPhi, dGamma float64) Transform {
	dLambda = math.Mod(dLambda, tau)
	switch {
	case dLambda != 0 && (dPhi != 0 || dGamma != 0):
		return Compose(rotationLambda(dLambda), rotationPhiGamma(dPhi, dGamma))
	case dLambda != 0:
		return rotationLambda(dLambda)
	case dPhi != 0 || dGamma != 0:
		return rotationPhiGamma(dPhi, dGamma)
	default:
		return Transform{Forward: wrapLongitude, Inverse: wrapLongitude}
	}
}

// Rotation returns the rotation with the given Euler angles in degrees.
// The returned transform maps longitude/latitude pairs in degrees.
func Rotation(lambda, phi, gamma float64) Transform {
	r := RotateRadians(lambda*radians, phi*radians, gamma*radians)
	return Transform{
		Forward: func(x, y float64) (float64, float64) {
			x, y = r.Forward(x*radians, y*radians)
			return x * degrees, y * degrees
		},
		Inverse: func(x, y float64) (float64, float64) {
			x, y = r.Inverse(x*radians, y*radians)
			return x * degrees, y * degrees
		},
	}
}

func wrapLongitude(lambda, phi float64) (float64, float64) {
	if math.Abs(lambda) > math.Pi {
		lambda -= math.Round(lambda/tau) * tau
	}
	return lambda, phi
}

func shiftLongitude(dLambda float64) Func {
	return func(lambda, phi float64) (float64, float64) {
		return wrapLongitude(lambda+dLambda, phi)
	}
}

func rotationLambda(dLambda float64) Transform {
	return Transform{
		Forward: shiftLongitude(dLambda),
		Inverse: shiftLongitude(-dLambda),
	}
}

func rotationPhiGamma(dPhi, dGamma float64) Transform {
	cosDPhi, sinDPhi := math.Cos(dPhi), math.Sin(dPhi)
	cosDGamma, sinDGamma := math.Cos(dGamma), math.Sin(dGamma)

	return Transform{
		Forward: func(lambda, phi float64) (float64, float64) {
			cosPhi := math.Cos(phi)
			x := math.Cos(lambda) * cosPhi
			y := math.Sin(lambda) * cosPhi
			z := math.Sin(phi)
			k := z*cosDPhi + x*sinDPhi
			return math.Atan2(y*cosDGamma-k*sinDGamma, x*cosDPhi-z*sinDPhi),
				Asin(k*cosDGamma + y*sinDGamma)
		},
		Inverse: func(lambda, phi float64) (float64, float64) {
			cosPhi := math.Cos(phi)
			x := math.Cos(lambda) * cosPhi
			y := math.Sin(lambda) * cosPhi
			z := math.Sin(phi)
			k := z*cosDGamma - y*sinDGamma
			return math.Atan2(y*cosDGamma+z*sinDGamma, x*cosDPhi+k*sinDPhi),
				Asin(k*cosDPhi - x*sinDPhi)
		},
	}
}
