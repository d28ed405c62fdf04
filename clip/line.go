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

import "github.com/paulmach/orb"

// Line clips the segment from a to b to the rectangle [x0, x1] × [y0, y1],
// using the Liang-Barsky algorithm.  It returns the end points of the
// visible part of the segment, and false if no part of the segment is
// visible.
func Line(a, b orb.Point, x0, y0, x1, y1 float64) (orb.Point, orb.Point, bool) {
	ax, ay := a[0], a[1]
	dx, dy := b[0]-ax, b[1]-ay
	t0, t1 := 0.0, 1.0

	// clipEdge restricts [t0, t1] for one edge of the rectangle, where
	// num is the signed distance from the start point to the edge along
	// the axis, and d the extent of the segment along the axis.  For
	// lower edges entering means increasing coordinates.
	clipEdge := func(num, d float64, lower bool) bool {
		if d == 0 {
			if lower {
				return num <= 0
			}
			return num >= 0
		}
		r := num / d
		if (d < 0) == lower {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		} else {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		}
		return true
	}

	if !clipEdge(x0-ax, dx, true) ||
		!clipEdge(x1-ax, dx, false) ||
		!clipEdge(y0-ay, dy, true) ||
		!clipEdge(y1-ay, dy, false) {
		return a, b, false
	}

	if t0 > 0 {
		a = orb.Point{ax + t0*dx, ay + t0*dy}
	}
	if t1 < 1 {
		b = orb.Point{ax + t1*dx, ay + t1*dy}
	}
	return a, b, true
}
