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

package geopath

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// ArcSegments approximates the circular arc around (x, y) with radius r,
// from angle a0 to angle a1 in radians, by cubic Bézier curves spanning at
// most a quarter circle each.
//
// The function returns the start point of the arc, followed by three
// points (two control points and the end point) per curve.
func ArcSegments(x, y, r, a0, a1 float64) (start vec.Vec2, curves []vec.Vec2) {
	sweep := a1 - a0
	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-1e-9)), 1)
	theta := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(theta/4) * r

	onCircle := func(phi float64) (p, tangent vec.Vec2) {
		sin, cos := math.Sincos(phi)
		return vec.Vec2{X: x + r*cos, Y: y + r*sin}, vec.Vec2{X: -sin, Y: cos}
	}

	start, t0 := onCircle(a0)
	p0 := start
	curves = make([]vec.Vec2, 0, 3*n)
	for i := 1; i <= n; i++ {
		p1, t1 := onCircle(a0 + float64(i)*theta)
		curves = append(curves, p0.Add(t0.Mul(k)), p1.Sub(t1.Mul(k)), p1)
		p0, t0 = p1, t1
	}
	return start, curves
}
