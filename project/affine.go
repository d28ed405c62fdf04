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

	"seehuhn.de/go/carto/sphere"
)

// scaleTranslateRotate returns the output transform of a projection:
// reflection by (sx, sy), scaling by k with the y-axis pointing down,
// rotation by alpha and translation by (dx, dy).
func scaleTranslateRotate(k, dx, dy, sx, sy, alpha float64) matrix.Matrix {
	a := math.Cos(alpha) * k
	b := math.Sin(alpha) * k
	return matrix.Matrix{a * sx, -b * sx, -b * sy, -a * sy, dx, dy}
}

func apply(m matrix.Matrix, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// affine wraps the matrix m as an invertible point transform.
func affine(m matrix.Matrix) sphere.Transform {
	det := m[0]*m[3] - m[1]*m[2]
	return sphere.Transform{
		Forward: func(x, y float64) (float64, float64) {
			return apply(m, x, y)
		},
		Inverse: func(x, y float64) (float64, float64) {
			x -= m[4]
			y -= m[5]
			return (m[3]*x - m[2]*y) / det, (m[0]*y - m[1]*x) / det
		},
	}
}
