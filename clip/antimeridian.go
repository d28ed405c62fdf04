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

	"github.com/paulmach/orb"

	"seehuhn.de/go/carto"
)

// Antimeridian returns the sphere clip which cuts geometry along the
// meridian at ±180°, so that no line or polygon edge wraps around the
// back of the sphere.
func Antimeridian() Func {
	return New(
		func(lambda, phi float64) bool { return true },
		newAntimeridianLine,
		antimeridianInterpolate,
		orb.Point{-math.Pi, -math.Pi / 2},
	)
}

type antimeridianLine struct {
	s carto.Stream

	lambda0, phi0, sign0 float64
	clean                int
}

func newAntimeridianLine(s carto.Stream) LineClipper {
	return &antimeridianLine{
		s:       s,
		lambda0: math.NaN(),
		phi0:    math.NaN(),
		sign0:   math.NaN(),
	}
}

func (l *antimeridianLine) LineStart() {
	l.s.LineStart()
	l.clean = 1
}

func (l *antimeridianLine) Point(lambda1, phi1, _ float64) {
	sign1 := -math.Pi
	if lambda1 > 0 {
		sign1 = math.Pi
	}
	delta := math.Abs(lambda1 - l.lambda0)

	if math.Abs(delta-math.Pi) < epsilon {
		// the line crosses a pole
		if (l.phi0+phi1)/2 > 0 {
			l.phi0 = math.Pi / 2
		} else {
			l.phi0 = -math.Pi / 2
		}
		l.s.Point(l.lambda0, l.phi0, 0)
		l.s.Point(l.sign0, l.phi0, 0)
		l.s.LineEnd()
		l.s.LineStart()
		l.s.Point(sign1, l.phi0, 0)
		l.s.Point(lambda1, l.phi0, 0)
		l.clean = 0
	} else if l.sign0 != sign1 && delta >= math.Pi {
		// the line crosses the antimeridian
		if math.Abs(l.lambda0-l.sign0) < epsilon {
			l.lambda0 -= l.sign0 * epsilon
		}
		if math.Abs(lambda1-sign1) < epsilon {
			lambda1 -= sign1 * epsilon
		}
		l.phi0 = antimeridianIntersect(l.lambda0, l.phi0, lambda1, phi1)
		l.s.Point(l.sign0, l.phi0, 0)
		l.s.LineEnd()
		l.s.LineStart()
		l.s.Point(sign1, l.phi0, 0)
		l.clean = 0
	}
	l.lambda0, l.phi0 = lambda1, phi1
	l.s.Point(lambda1, phi1, 0)
	l.sign0 = sign1
}

func (l *antimeridianLine) LineEnd() {
	l.s.LineEnd()
	l.lambda0 = math.NaN()
	l.phi0 = math.NaN()
}

// Clean returns 2 if the line was cut, since then the first and last
// piece of a ring always meet.
func (l *antimeridianLine) Clean() int {
	return 2 - l.clean
}

// antimeridianIntersect returns the latitude at which the great arc
// between the two points crosses the antimeridian.
func antimeridianIntersect(lambda0, phi0, lambda1, phi1 float64) float64 {
	sinLambda0Lambda1 := math.Sin(lambda0 - lambda1)
	if math.Abs(sinLambda0Lambda1) <= epsilon {
		return (phi0 + phi1) / 2
	}
	cosPhi0, cosPhi1 := math.Cos(phi0), math.Cos(phi1)
	return math.Atan((math.Sin(phi0)*cosPhi1*math.Sin(lambda1) -
		math.Sin(phi1)*cosPhi0*math.Sin(lambda0)) /
		(cosPhi0 * cosPhi1 * sinLambda0Lambda1))
}

func antimeridianInterpolate(from, to *orb.Point, direction float64, s carto.Stream) {
	switch {
	case from == nil:
		phi := direction * math.Pi / 2
		s.Point(-math.Pi, phi, 0)
		s.Point(0, phi, 0)
		s.Point(math.Pi, phi, 0)
		s.Point(math.Pi, 0, 0)
		s.Point(math.Pi, -phi, 0)
		s.Point(0, -phi, 0)
		s.Point(-math.Pi, -phi, 0)
		s.Point(-math.Pi, 0, 0)
		s.Point(-math.Pi, phi, 0)
	case math.Abs(from[0]-to[0]) > epsilon:
		lambda := -math.Pi
		if from[0] < to[0] {
			lambda = math.Pi
		}
		phi := direction * lambda / 2
		s.Point(-lambda, phi, 0)
		s.Point(0, phi, 0)
		s.Point(lambda, phi, 0)
	default:
		s.Point(to[0], to[1], 0)
	}
}
