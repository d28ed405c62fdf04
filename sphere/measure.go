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

	"github.com/paulmach/orb"

	"seehuhn.de/go/carto"
	"seehuhn.de/go/carto/fsum"
)

// Area returns the spherical area of the geometry object obj in
// steradians, i.e. as a fraction of 4π for the whole sphere.
// Points and lines have zero area.
func Area(obj any) float64 {
	a := &areaStream{}
	carto.Walk(obj, a)
	return 2 * a.sum.Value()
}

// areaStream accumulates the spherical excess of polygon rings.
type areaStream struct {
	sum     fsum.Adder
	ringSum fsum.Adder

	inPolygon bool
	inRing    bool
	first     bool

	lambda00, phi00           float64 // first point of the ring, degrees
	lambda0, cosPhi0, sinPhi0 float64
}

func (a *areaStream) Point(x, y, z float64) {
	if !a.inRing {
		return
	}
	if a.first {
		a.first = false
		a.lambda00, a.phi00 = x, y
		phi := y*radians/2 + quarterPi
		a.lambda0 = x * radians
		a.cosPhi0, a.sinPhi0 = math.Cos(phi), math.Sin(phi)
		return
	}
	a.addPoint(x, y)
}

func (a *areaStream) addPoint(x, y float64) {
	lambda := x * radians
	phi := y*radians/2 + quarterPi

	dLambda := lambda - a.lambda0
	sdLambda := 1.0
	if dLambda < 0 {
		sdLambda = -1
	}
	adLambda := sdLambda * dLambda
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	k := a.sinPhi0 * sinPhi
	u := a.cosPhi0*cosPhi + k*math.Cos(adLambda)
	v := k * sdLambda * math.Sin(adLambda)
	a.ringSum.Add(math.Atan2(v, u))

	a.lambda0, a.cosPhi0, a.sinPhi0 = lambda, cosPhi, sinPhi
}

func (a *areaStream) LineStart() {
	if a.inPolygon {
		a.inRing = true
		a.first = true
	}
}

func (a *areaStream) LineEnd() {
	if a.inRing && !a.first {
		a.addPoint(a.lambda00, a.phi00)
	}
	a.inRing = false
}

func (a *areaStream) PolygonStart() {
	a.inPolygon = true
	a.ringSum.Reset()
}

func (a *areaStream) PolygonEnd() {
	a.inPolygon = false
	ring := a.ringSum.Value()
	if ring < 0 {
		ring += tau
	}
	a.sum.Add(ring)
}

func (a *areaStream) Sphere() {
	a.sum.Add(tau)
}

// Length returns the great-arc length of the geometry object obj in
// radians.  For polygons this is the total perimeter of all rings.
func Length(obj any) float64 {
	l := &lengthStream{}
	carto.Walk(obj, l)
	return l.sum.Value()
}

type lengthStream struct {
	sum fsum.Adder

	inPolygon bool
	inLine    bool
	first     bool

	lambda00, phi00           float64
	lambda0, sinPhi0, cosPhi0 float64
}

func (l *lengthStream) Point(x, y, z float64) {
	if !l.inLine {
		return
	}
	lambda, phi := x*radians, y*radians
	if l.first {
		l.first = false
		l.lambda00, l.phi00 = lambda, phi
		l.lambda0, l.sinPhi0, l.cosPhi0 = lambda, math.Sin(phi), math.Cos(phi)
		return
	}
	l.addPoint(lambda, phi)
}

func (l *lengthStream) addPoint(lambda, phi float64) {
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	delta := math.Abs(lambda - l.lambda0)
	cosDelta, sinDelta := math.Cos(delta), math.Sin(delta)
	x := cosPhi * sinDelta
	y := l.cosPhi0*sinPhi - l.sinPhi0*cosPhi*cosDelta
	z := l.sinPhi0*sinPhi + l.cosPhi0*cosPhi*cosDelta
	l.sum.Add(math.Atan2(math.Sqrt(x*x+y*y), z))
	l.lambda0, l.sinPhi0, l.cosPhi0 = lambda, sinPhi, cosPhi
}

func (l *lengthStream) LineStart() {
	l.inLine = true
	l.first = true
}

func (l *lengthStream) LineEnd() {
	if l.inPolygon && !l.first {
		l.addPoint(l.lambda00, l.phi00)
	}
	l.inLine = false
}

func (l *lengthStream) PolygonStart() { l.inPolygon = true }
func (l *lengthStream) PolygonEnd()   { l.inPolygon = false }
func (l *lengthStream) Sphere()       {}

// Distance returns the great-arc distance between a and b in radians.
// The points are given in degrees.
func Distance(a, b orb.Point) float64 {
	return Length(orb.LineString{a, b})
}

// Interpolate returns a function which maps t in [0, 1] to the point at
// fraction t along the great arc from a to b, together with the angular
// length of the arc in radians.  Points are in degrees.
func Interpolate(a, b orb.Point) (func(t float64) orb.Point, float64) {
	x0, y0 := a[0]*radians, a[1]*radians
	x1, y1 := b[0]*radians, b[1]*radians
	d := 2 * Asin(math.Sqrt(haversin(y1-y0)+math.Cos(y0)*math.Cos(y1)*haversin(x1-x0)))
	if d == 0 {
		return func(float64) orb.Point { return a }, 0
	}

	v0 := Cartesian(x0, y0)
	v1 := Cartesian(x1, y1)
	k := math.Sin(d)
	return func(t float64) orb.Point {
		t *= d
		v := v0.Mul(math.Sin(d-t) / k).Add(v1.Mul(math.Sin(t) / k))
		return orb.Point{
			math.Atan2(v.Y, v.X) * degrees,
			math.Atan2(v.Z, math.Hypot(v.X, v.Y)) * degrees,
		}
	}, d
}
