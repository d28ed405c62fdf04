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
	"testing"

	"github.com/paulmach/orb"

	"seehuhn.de/go/carto"
)

func TestCartesianRoundTrip(t *testing.T) {
	for _, p := range [][2]float64{{0, 0}, {1, 0.5}, {-3, -1.2}, {math.Pi / 2, 0.3}} {
		v := Cartesian(p[0], p[1])
		if d := math.Abs(v.Norm() - 1); d > 1e-15 {
			t.Errorf("|Cartesian(%v)| = 1%+g", p, d)
		}
		lambda, phi := Spherical(v)
		if math.Abs(lambda-p[0]) > 1e-12 || math.Abs(phi-p[1]) > 1e-12 {
			t.Errorf("Spherical(Cartesian(%v)) = %g, %g", p, lambda, phi)
		}
	}
}

func TestRotationInverse(t *testing.T) {
	rotations := [][3]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 0.5, 0},
		{0, 0, 0.7},
		{-2, 0.3, 1.1},
		{7, -1, 0.2},
	}
	points := [][2]float64{{0, 0}, {0.4, 0.2}, {-2.5, -1.1}, {3, 1.4}}
	for _, r := range rotations {
		rot := RotateRadians(r[0], r[1], r[2])
		for _, p := range points {
			x, y := rot.Forward(p[0], p[1])
			x, y = rot.Inverse(x, y)
			if math.Abs(x-p[0]) > 1e-9 || math.Abs(y-p[1]) > 1e-9 {
				t.Errorf("rotation %v: %v -> %g, %g", r, p, x, y)
			}
		}
	}
}

func TestRotationLongitude(t *testing.T) {
	rot := Rotation(90, 0, 0)
	x, y := rot.Forward(100, 10)
	if math.Abs(x+170) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Errorf("got %g, %g, want -170, 10", x, y)
	}
}

func TestRotationPole(t *testing.T) {
	// tilting by 90° moves the north pole onto the equator
	rot := Rotation(0, 90, 0)
	_, y := rot.Forward(0, 0)
	if math.Abs(math.Abs(y)-90) > 1e-9 {
		t.Errorf("latitude of rotated origin = %g", y)
	}
}

func TestCompose(t *testing.T) {
	double := Transform{
		Forward: func(x, y float64) (float64, float64) { return 2 * x, 2 * y },
		Inverse: func(x, y float64) (float64, float64) { return x / 2, y / 2 },
	}
	shift := Transform{
		Forward: func(x, y float64) (float64, float64) { return x + 1, y },
		Inverse: func(x, y float64) (float64, float64) { return x - 1, y },
	}
	c := Compose(double, shift)
	if x, y := c.Forward(3, 4); x != 7 || y != 8 {
		t.Errorf("Forward(3, 4) = %g, %g", x, y)
	}
	if x, y := c.Inverse(7, 8); x != 3 || y != 4 {
		t.Errorf("Inverse(7, 8) = %g, %g", x, y)
	}

	c = Compose(double, Transform{Forward: shift.Forward})
	if c.Invertible() {
		t.Error("composition with a non-invertible transform is invertible")
	}
}

func TestArea(t *testing.T) {
	box := orb.Polygon{{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}}
	// area of the latitude/longitude box; the polygon's edges are great
	// arcs, which differ slightly from the parallels
	want := radians * math.Sin(radians)

	tests := []struct {
		name string
		obj  any
		want float64
	}{
		{"sphere", carto.Sphere{}, 4 * math.Pi},
		{"point", orb.Point{1, 2}, 0},
		{"line", orb.LineString{{0, 0}, {10, 10}}, 0},
		{"box", box, want},
		{"bound", orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, want},
		{"complement", orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}, 4*math.Pi - want},
		{"hemisphere", orb.Polygon{{{0, 0}, {90, 0}, {180, 0}, {-90, 0}, {0, 0}}}, 2 * math.Pi},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Area(tc.obj)
			if math.Abs(got-tc.want) > 1e-7 {
				t.Errorf("Area = %.12g, want %.12g", got, tc.want)
			}
		})
	}
}

func TestAreaAdditive(t *testing.T) {
	a := orb.Polygon{{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}}
	b := orb.Polygon{{{20, 5}, {25, 15}, {30, 5}, {20, 5}}}
	c := Circle(orb.Point{-60, -30}, 12, 3)
	sum := Area(a) + Area(b) + Area(c)
	got := Area(orb.MultiPolygon{a, b, c})
	if math.Abs(got-sum) > 1e-12 {
		t.Errorf("Area(multipolygon) = %g, sum of parts = %g", got, sum)
	}
}

func TestLength(t *testing.T) {
	got := Length(orb.LineString{{0, 0}, {45, 0}, {90, 0}})
	if math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Length = %g, want π/2", got)
	}

	// a polygon ring includes its closing edge
	got = Length(orb.Polygon{{{0, 0}, {90, 0}, {0, 90}, {0, 0}}})
	if math.Abs(got-3*math.Pi/2) > 1e-12 {
		t.Errorf("perimeter = %g, want 3π/2", got)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(orb.Point{0, 0}, orb.Point{0, 90}); math.Abs(d-math.Pi/2) > 1e-12 {
		t.Errorf("Distance = %g, want π/2", d)
	}
	if d := Distance(orb.Point{-180, 10}, orb.Point{180, 10}); math.Abs(d) > 1e-12 {
		t.Errorf("Distance across antimeridian = %g, want 0", d)
	}
}

func TestInterpolate(t *testing.T) {
	f, d := Interpolate(orb.Point{0, 0}, orb.Point{90, 0})
	if math.Abs(d-math.Pi/2) > 1e-12 {
		t.Errorf("distance = %g", d)
	}
	m := f(0.5)
	if math.Abs(m[0]-45) > 1e-9 || math.Abs(m[1]) > 1e-9 {
		t.Errorf("midpoint = %v", m)
	}
	end := f(1)
	if math.Abs(end[0]-90) > 1e-9 || math.Abs(end[1]) > 1e-9 {
		t.Errorf("end point = %v", end)
	}

	f, d = Interpolate(orb.Point{3, 4}, orb.Point{3, 4})
	if d != 0 || f(0.7) != (orb.Point{3, 4}) {
		t.Error("degenerate interpolation")
	}
}

func TestCircle(t *testing.T) {
	center := orb.Point{10, 20}
	c := Circle(center, 5, 6)
	ring := c[0]
	if len(ring) != 61 {
		t.Errorf("circle has %d vertices, want 61", len(ring))
	}
	for _, p := range ring {
		if d := Distance(center, p) * degrees; math.Abs(d-5) > 1e-9 {
			t.Errorf("vertex %v at distance %g", p, d)
		}
	}

	area := Area(c)
	capArea := 2 * math.Pi * (1 - math.Cos(5*radians))
	if area <= 0 || area > capArea {
		t.Errorf("circle area %g, cap area %g", area, capArea)
	}
}

func TestContains(t *testing.T) {
	c := Circle(orb.Point{10, 20}, 5, 6)
	tests := []struct {
		pt   orb.Point
		want bool
	}{
		{orb.Point{10, 20}, true},
		{orb.Point{12, 21}, true},
		{orb.Point{10, 40}, false},
		{orb.Point{-170, -20}, false},
	}
	for _, tc := range tests {
		if got := Contains(c, tc.pt); got != tc.want {
			t.Errorf("Contains(%v) = %t", tc.pt, got)
		}
	}

	box := orb.Polygon{{{170, -10}, {170, 10}, {-170, 10}, {-170, -10}, {170, -10}}}
	if !Contains(box, orb.Point{180, 0}) {
		t.Error("box across the antimeridian does not contain (180, 0)")
	}
	if Contains(box, orb.Point{0, 0}) {
		t.Error("box across the antimeridian contains (0, 0)")
	}
}

func TestGraticule(t *testing.T) {
	g := NewGraticule()
	lines := g.Lines()
	if len(lines) != 53 {
		t.Errorf("got %d lines, want 53", len(lines))
	}

	outline := g.Outline()[0]
	if outline[0] != outline[len(outline)-1] {
		t.Errorf("outline not closed: %v ... %v", outline[0], outline[len(outline)-1])
	}
}
