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
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/carto"
)

var unitSquare = orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}

func square(x, y, size float64) orb.Ring {
	return orb.Ring{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y}}
}

func TestAreaUnitSquare(t *testing.T) {
	a := &Area{}
	carto.Walk(unitSquare, a)
	if got := a.Result(); got != 1 {
		t.Errorf("area = %g, want 1", got)
	}

	// the result resets the sink
	if got := a.Result(); got != 0 {
		t.Errorf("second result = %g, want 0", got)
	}
}

func TestArea(t *testing.T) {
	cases := []struct {
		name string
		obj  any
		want float64
	}{
		{"point", orb.Point{1, 2}, 0},
		{"line", orb.LineString{{0, 0}, {5, 5}, {0, 5}}, 0},
		{"square", orb.Polygon{square(0, 0, 3)}, 9},
		{"reversed", orb.Polygon{{{0, 0}, {0, 3}, {3, 3}, {3, 0}, {0, 0}}}, 9},
		{"hole", orb.Polygon{square(0, 0, 4), square(1, 1, 1)}, 17},
		{"multi", orb.MultiPolygon{{square(0, 0, 1)}, {square(5, 5, 2)}}, 5},
		{"triangle", orb.Polygon{{{0, 0}, {4, 0}, {0, 3}, {0, 0}}}, 6},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := &Area{}
			carto.Walk(c.obj, a)
			if got := a.Result(); math.Abs(got-c.want) > 1e-12 {
				t.Errorf("area = %g, want %g", got, c.want)
			}
		})
	}
}

func TestAreaAdditive(t *testing.T) {
	polys := orb.MultiPolygon{
		{{{0, 0}, {3, 1}, {2, 4}, {0, 0}}},
		{square(10, 10, 2.5)},
		{{{-5, -5}, {-1, -6}, {-2, -1}, {-6, -2}, {-5, -5}}},
	}

	var sum float64
	for _, poly := range polys {
		a := &Area{}
		carto.Walk(poly, a)
		got := a.Result()
		want := math.Abs(planar.Area(poly))
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("area %v = %g, want %g", poly, got, want)
		}
		sum += got
	}

	a := &Area{}
	carto.Walk(polys, a)
	if got := a.Result(); math.Abs(got-sum) > 1e-9 {
		t.Errorf("multipolygon area = %g, want %g", got, sum)
	}
}

func TestBounds(t *testing.T) {
	b := &Bounds{}
	carto.Walk(orb.LineString{{1, 5}, {-2, 3}, {4, -1}}, b)
	carto.Walk(orb.Point{0, 7}, b)
	r := b.Result()
	if r.LLx != -2 || r.LLy != -1 || r.URx != 4 || r.URy != 7 {
		t.Errorf("bounds = %v", r)
	}

	r = b.Result()
	if !math.IsInf(r.LLx, 1) || !math.IsInf(r.LLy, 1) || !math.IsInf(r.URx, -1) || !math.IsInf(r.URy, -1) {
		t.Errorf("empty bounds = %v", r)
	}
}

func TestLength(t *testing.T) {
	cases := []struct {
		name string
		obj  any
		want float64
	}{
		{"point", orb.MultiPoint{{0, 0}, {3, 4}}, 0},
		{"line", orb.LineString{{0, 0}, {3, 4}}, 5},
		{"two lines", orb.MultiLineString{{{0, 0}, {3, 4}}, {{1, 1}, {1, 3}}}, 7},
		{"ring", unitSquare, 4},
		{"hole", orb.Polygon{square(0, 0, 4), square(1, 1, 1)}, 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := &Length{}
			carto.Walk(c.obj, l)
			if got := l.Result(); math.Abs(got-c.want) > 1e-12 {
				t.Errorf("length = %g, want %g", got, c.want)
			}
		})
	}
}

func TestLengthPlanar(t *testing.T) {
	line := orb.LineString{{0, 0}, {1, 2}, {-3, 5}, {7, 7}, {2, -1}}
	l := &Length{}
	carto.Walk(line, l)
	if got, want := l.Result(), planar.Length(line); math.Abs(got-want) > 1e-12 {
		t.Errorf("length = %g, want %g", got, want)
	}
}

func TestCentroid(t *testing.T) {
	cases := []struct {
		name string
		obj  any
		want orb.Point
	}{
		{"points", orb.MultiPoint{{0, 0}, {2, 0}, {4, 6}}, orb.Point{2, 2}},
		{"line", orb.LineString{{0, 0}, {2, 0}}, orb.Point{1, 0}},
		{"weighted line", orb.LineString{{0, 0}, {4, 0}, {4, 2}}, orb.Point{8.0 / 3, 1.0 / 3}},
		{"square", orb.Polygon{square(0, 0, 2)}, orb.Point{1, 1}},
		{"polygon wins", orb.Collection{
			orb.Point{100, 100},
			orb.LineString{{50, 50}, {60, 60}},
			orb.Polygon{square(2, 4, 2)},
		}, orb.Point{3, 5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cs := &Centroid{}
			carto.Walk(c.obj, cs)
			got := cs.Result()
			if math.Abs(got[0]-c.want[0]) > 1e-12 || math.Abs(got[1]-c.want[1]) > 1e-12 {
				t.Errorf("centroid = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCentroidEmpty(t *testing.T) {
	c := &Centroid{}
	got := c.Result()
	if !math.IsNaN(got[0]) || !math.IsNaN(got[1]) {
		t.Errorf("centroid = %v, want NaN", got)
	}
}

func TestPathString(t *testing.T) {
	cases := []struct {
		name string
		obj  any
		want string
	}{
		{"point", orb.Point{1, 2}, "M1,2m0,4.5a4.5,4.5 0 1,1 0,-9a4.5,4.5 0 1,1 0,9z"},
		{"line", orb.LineString{{0, 0}, {1.5, 1}, {2, -3}}, "M0,0L1.5,1L2,-3"},
		{"polygon", orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}, "M0,0L1,0L1,1Z"},
		{"two rings", orb.Polygon{square(0, 0, 4), square(1, 1, 1)}, "M0,0L4,0L4,4L0,4ZM1,1L2,1L2,2L1,2Z"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewPathString()
			carto.Walk(c.obj, s)
			got, ok := s.Result()
			if !ok || got != c.want {
				t.Errorf("path = %q, %t, want %q", got, ok, c.want)
			}
		})
	}
}

func TestPathStringEmpty(t *testing.T) {
	s := NewPathString()
	carto.Walk(carto.Sphere{}, s)
	if got, ok := s.Result(); ok || got != "" {
		t.Errorf("path = %q, %t", got, ok)
	}

	carto.Walk(orb.Point{0, 0}, s)
	if _, ok := s.Result(); !ok {
		t.Fatal("no output for point")
	}
	if got, ok := s.Result(); ok || got != "" {
		t.Errorf("buffer not cleared: %q", got)
	}
}

func TestPathStringDigits(t *testing.T) {
	s := &PathString{PointRadius: 1, Digits: 2}
	carto.Walk(orb.LineString{{1.23456, -0.001}, {2, 3.999}}, s)
	got, _ := s.Result()
	if want := "M1.23,0L2,4"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}

	s.Digits = 0
	s.PointRadius = 2.4
	carto.Walk(orb.Point{0.6, 0.2}, s)
	got, _ = s.Result()
	if want := "M1,0m0,2a2,2 0 1,1 0,-5a2,2 0 1,1 0,5z"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestPathStringZero(t *testing.T) {
	var s PathString
	carto.Walk(orb.LineString{{1.4, 2.6}, {-0.4, 3.5}}, &s)
	got, _ := s.Result()
	if want := "M1,3L0,4"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}

	carto.Walk(orb.Point{2.5, -1.2}, &s)
	got, _ = s.Result()
	if want := "M3,-1m0,0a0,0 0 1,1 0,0a0,0 0 1,1 0,0z"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

// recorder is a Context which logs all calls.
type recorder struct {
	calls []string
}

func (r *recorder) MoveTo(x, y float64) { r.calls = append(r.calls, fmt.Sprintf("M %g %g", x, y)) }
func (r *recorder) LineTo(x, y float64) { r.calls = append(r.calls, fmt.Sprintf("L %g %g", x, y)) }
func (r *recorder) ClosePath()          { r.calls = append(r.calls, "Z") }
func (r *recorder) Arc(x, y, radius, a0, a1 float64) {
	r.calls = append(r.calls, fmt.Sprintf("A %g %g %g %g %.4f", x, y, radius, a0, a1))
}

func TestPathContext(t *testing.T) {
	rec := &recorder{}
	c := NewPathContext(rec)
	c.PointRadius = 2
	carto.Walk(orb.Collection{
		orb.Point{1, 1},
		orb.LineString{{0, 0}, {3, 0}},
		orb.Polygon{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}},
	}, c)

	want := []string{
		"M 3 1", "A 1 1 2 0 6.2832",
		"M 0 0", "L 3 0",
		"M 0 0", "L 1 0", "L 0 1", "Z",
	}
	if got := strings.Join(rec.calls, "; "); got != strings.Join(want, "; ") {
		t.Errorf("calls = %s", got)
	}
}

func TestPathData(t *testing.T) {
	d := NewPathData()
	if d.Result() != nil {
		t.Fatal("expected nil path")
	}

	carto.Walk(orb.Polygon{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}}, d)
	p := d.Result()
	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if len(p.Cmds) != len(want) {
		t.Fatalf("commands = %v", p.Cmds)
	}
	for i := range want {
		if p.Cmds[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, p.Cmds[i], want[i])
		}
	}

	carto.Walk(orb.Point{5, 5}, d)
	p = d.Result()
	if len(p.Cmds) != 6 || p.Cmds[0] != path.CmdMoveTo || p.Cmds[5] != path.CmdClose {
		t.Errorf("circle commands = %v", p.Cmds)
	}
}

// shift is a planar projection which translates all points.
type shift struct {
	dx, dy float64
}

func (s shift) Stream(sink carto.Stream) carto.Stream {
	return &carto.PointMapper{Next: sink, Map: func(x, y float64) (float64, float64) {
		return x + s.dx, y + s.dy
	}}
}

func TestPath(t *testing.T) {
	p := NewPath(nil)
	if got, _ := p.String(orb.LineString{{0.12345, 0}, {1, 1}}); got != "M0.123,0L1,1" {
		t.Errorf("string = %q", got)
	}
	if got := p.Area(unitSquare); got != 1 {
		t.Errorf("area = %g", got)
	}

	p.Projection = shift{dx: 10, dy: 20}
	if got := p.Centroid(unitSquare); got != (orb.Point{10.5, 20.5}) {
		t.Errorf("centroid = %v", got)
	}
	if got := p.Measure(unitSquare); got != 4 {
		t.Errorf("length = %g", got)
	}
	b := p.Bounds(unitSquare)
	if b.LLx != 10 || b.LLy != 20 || b.URx != 11 || b.URy != 21 {
		t.Errorf("bounds = %v", b)
	}

	rec := &recorder{}
	p.Draw(orb.LineString{{0, 0}, {1, 0}}, rec)
	if got := strings.Join(rec.calls, "; "); got != "M 10 20; L 11 20" {
		t.Errorf("calls = %s", got)
	}
}

func BenchmarkPathString(b *testing.B) {
	var ring orb.Ring
	for i := range 1000 {
		a := 2 * math.Pi * float64(i) / 1000
		ring = append(ring, orb.Point{100 * math.Cos(a), 100 * math.Sin(a)})
	}
	ring = append(ring, ring[0])
	poly := orb.Polygon{ring}

	s := NewPathString()
	for b.Loop() {
		carto.Walk(poly, s)
		s.Result()
	}
}

func TestArcSegments(t *testing.T) {
	cases := []struct {
		a0, a1 float64
		n      int
	}{
		{0, math.Pi / 2, 1},
		{0, 2 * math.Pi, 4},
		{1, 1 + math.Pi, 2},
		{0, -math.Pi, 2},
		{0.5, 0.6, 1},
	}
	for _, c := range cases {
		start, curves := ArcSegments(10, 20, 5, c.a0, c.a1)
		if len(curves) != 3*c.n {
			t.Errorf("arc %g..%g: %d points, want %d", c.a0, c.a1, len(curves), 3*c.n)
			continue
		}
		if math.Abs(start.X-10-5*math.Cos(c.a0)) > 1e-12 || math.Abs(start.Y-20-5*math.Sin(c.a0)) > 1e-12 {
			t.Errorf("arc %g..%g: start %v", c.a0, c.a1, start)
		}
		end := curves[len(curves)-1]
		if math.Abs(end.X-10-5*math.Cos(c.a1)) > 1e-12 || math.Abs(end.Y-20-5*math.Sin(c.a1)) > 1e-12 {
			t.Errorf("arc %g..%g: end %v", c.a0, c.a1, end)
		}

		// the curve midpoints stay close to the circle
		p0 := start
		for i := 0; i < len(curves); i += 3 {
			p1, p2, p3 := curves[i], curves[i+1], curves[i+2]
			mx := (p0.X + 3*p1.X + 3*p2.X + p3.X) / 8
			my := (p0.Y + 3*p1.Y + 3*p2.Y + p3.Y) / 8
			if d := math.Hypot(mx-10, my-20); math.Abs(d-5) > 5e-3 {
				t.Errorf("arc %g..%g: midpoint at distance %g", c.a0, c.a1, d)
			}
			p0 = p3
		}
	}
}
