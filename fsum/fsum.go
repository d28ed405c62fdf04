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

// Package fsum implements compensated floating point summation.
//
// An [Adder] keeps the running total as a short list of non-overlapping
// partial sums (a Shewchuk expansion), so that adding many values of very
// different magnitude does not lose the small ones.
package fsum

import "math"

// Adder accumulates float64 values without rounding loss.
// The zero value is an empty sum, ready to use.
type Adder struct {
	partials [maxPartials]float64
	n        int
}

// Add adds x to the sum.
func (a *Adder) Add(x float64) {
	p := &a.partials
	i := 0
	for j := 0; j < a.n; j++ {
		y := p[j]
		hi := x + y
		var lo float64
		if math.Abs(x) < math.Abs(y) {
			lo = x - (hi - y)
		} else {
			lo = y - (hi - x)
		}
		if lo != 0 {
			p[i] = lo
			i++
		}
		x = hi
	}
	if i == maxPartials {
		// all slots are taken by non-zero error terms; fold the new
		// high-order part into the top slot
		p[i-1] += x
		a.n = i
		return
	}
	p[i] = x
	a.n = i + 1
}

// Value returns the sum, correctly rounded to the nearest float64.
func (a *Adder) Value() float64 {
	p := &a.partials
	n := a.n
	if n == 0 {
		return 0
	}

	n--
	hi := p[n]
	var lo float64
	for n > 0 {
		x := hi
		n--
		y := p[n]
		hi = x + y
		lo = y - (hi - x)
		if lo != 0 {
			break
		}
	}

	// round-half-even correction: if the remaining partials push the
	// rounding error in the same direction, round away from hi
	if n > 0 && ((lo < 0 && p[n-1] < 0) || (lo > 0 && p[n-1] > 0)) {
		y := lo * 2
		x := hi + y
		if y == x-hi {
			hi = x
		}
	}
	return hi
}

// Reset clears the sum.
func (a *Adder) Reset() {
	a.n = 0
}

// Sum returns the compensated sum of xs.
func Sum(xs ...float64) float64 {
	var a Adder
	for _, x := range xs {
		a.Add(x)
	}
	return a.Value()
}

// maxPartials bounds the length of the expansion.  Exactly representing
// any float64 sum needs far fewer terms.
const maxPartials = 32
