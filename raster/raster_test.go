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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// coverage renders the outlines into a width x height buffer.
func coverage(r *Rasteriser, rule FillRule, width, height int) []float32 {
	buf := make([]float32, width*height)
	r.Fill(rule, func(y, xMin int, cov []float32) {
		copy(buf[y*width+xMin:], cov)
	})
	return buf
}

func TestSquareCoverage(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 5, URy: 5})
	r.AddPolygon(
		vec.Vec2{X: 1.5, Y: 1.5}, vec.Vec2{X: 3.5, Y: 1.5},
		vec.Vec2{X: 3.5, Y: 3.5}, vec.Vec2{X: 1.5, Y: 3.5},
	)
	buf := coverage(r, NonZero, 5, 5)

	want := []float32{
		0, 0, 0, 0, 0,
		0, 0.25, 0.5, 0.25, 0,
		0, 0.5, 1, 0.5, 0,
		0, 0.25, 0.5, 0.25, 0,
		0, 0, 0, 0, 0,
	}
	for i := range want {
		if d := math.Abs(float64(buf[i] - want[i])); d > 1e-6 {
			t.Errorf("pixel (%d,%d): got %g, want %g", i%5, i/5, buf[i], want[i])
		}
	}
}

func TestTriangleArea(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 20, URy: 20})
	r.AddPolygon(vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 18, Y: 4}, vec.Vec2{X: 7, Y: 17})
	buf := coverage(r, NonZero, 20, 20)

	var sum float64
	for _, v := range buf {
		sum += float64(v)
	}
	// shoelace formula
	want := math.Abs((18-2)*(17-2)-(7-2)*(4-2)) / 2
	if math.Abs(sum-want) > 1e-3 {
		t.Errorf("total coverage %g, want %g", sum, want)
	}
}

func TestFillRules(t *testing.T) {
	square := func(r *Rasteriser, x0, y0, x1, y1 float64) {
		r.AddPolygon(
			vec.Vec2{X: x0, Y: y0}, vec.Vec2{X: x1, Y: y0},
			vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x0, Y: y1},
		)
	}

	tests := []struct {
		rule       FillRule
		inner, mid float32
	}{
		{NonZero, 1, 1},
		{EvenOdd, 0, 1},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.rule), func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
			square(r, 1, 1, 9, 9)
			square(r, 3, 3, 7, 7) // same orientation
			buf := coverage(r, tc.rule, 10, 10)
			if got := buf[5*10+5]; got != tc.inner {
				t.Errorf("inner: got %g, want %g", got, tc.inner)
			}
			if got := buf[2*10+5]; got != tc.mid {
				t.Errorf("ring: got %g, want %g", got, tc.mid)
			}
			if got := buf[0]; got != 0 {
				t.Errorf("outside: got %g, want 0", got)
			}
		})
	}
}

func TestClipped(t *testing.T) {
	// a polygon reaching far beyond the clip region on all sides
	r := NewRasteriser(rect.Rect{URx: 4, URy: 4})
	r.AddPolygon(
		vec.Vec2{X: -1e9, Y: -1e9}, vec.Vec2{X: 1e9, Y: -1e9},
		vec.Vec2{X: 1e9, Y: 1e9}, vec.Vec2{X: -1e9, Y: 1e9},
	)
	buf := coverage(r, NonZero, 4, 4)
	for i, v := range buf {
		if math.Abs(float64(v)-1) > 1e-6 {
			t.Errorf("pixel %d: got %g, want 1", i, v)
		}
	}
}

func TestNonFinite(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 4, URy: 4})
	r.AddPolygon(vec.Vec2{X: math.NaN(), Y: 0}, vec.Vec2{X: 2, Y: math.Inf(1)})
	called := false
	r.Fill(NonZero, func(int, int, []float32) { called = true })
	if called {
		t.Error("non-finite edges produced output")
	}
}

func TestAddPathCurves(t *testing.T) {
	// A circle of radius 10, built from four cubic arcs.
	r := NewRasteriser(rect.Rect{URx: 32, URy: 32})
	p := &path.Data{}
	p = p.MoveTo(vec.Vec2{X: 26, Y: 16})
	const k = 0.5522847498 * 10
	p = p.CubeTo(vec.Vec2{X: 26, Y: 16 + k}, vec.Vec2{X: 16 + k, Y: 26}, vec.Vec2{X: 16, Y: 26})
	p = p.CubeTo(vec.Vec2{X: 16 - k, Y: 26}, vec.Vec2{X: 6, Y: 16 + k}, vec.Vec2{X: 6, Y: 16})
	p = p.CubeTo(vec.Vec2{X: 6, Y: 16 - k}, vec.Vec2{X: 16 - k, Y: 6}, vec.Vec2{X: 16, Y: 6})
	p = p.CubeTo(vec.Vec2{X: 16 + k, Y: 6}, vec.Vec2{X: 26, Y: 16 - k}, vec.Vec2{X: 26, Y: 16})
	r.AddPath(p)

	var sum float64
	for _, v := range coverage(r, NonZero, 32, 32) {
		sum += float64(v)
	}
	want := math.Pi * 100
	if math.Abs(sum-want)/want > 0.01 {
		t.Errorf("circle area %g, want %g", sum, want)
	}
}

func TestCanvasFill(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	c := NewCanvas(img)
	c.MoveTo(2, 2)
	c.LineTo(6, 2)
	c.LineTo(6, 6)
	c.LineTo(2, 6)
	c.ClosePath()
	c.Fill(color.White, NonZero)

	for y := range 8 {
		for x := range 8 {
			want := uint8(0)
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = 255
			}
			if got := img.GrayAt(x, y).Y; got != want {
				t.Errorf("pixel (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
	if len(c.Path().Cmds) != 0 {
		t.Error("path not cleared after Fill")
	}
}

func TestCanvasStroke(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 12, 12))
	c := NewCanvas(img)
	c.MoveTo(2, 5)
	c.LineTo(9, 5)
	c.Stroke(color.White, 2)

	tests := []struct {
		x, y int
		want uint8
	}{
		{5, 4, 255}, // inside the stroke
		{5, 5, 255},
		{1, 4, 255}, // square cap
		{9, 5, 255},
		{5, 3, 0}, // above
		{5, 6, 0}, // below
		{11, 5, 0},
	}
	for _, tc := range tests {
		if got := img.GrayAt(tc.x, tc.y).Y; got != tc.want {
			t.Errorf("pixel (%d,%d): got %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestCanvasArc(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 32, 32))
	c := NewCanvas(img)
	c.Arc(16, 16, 10, 0, 2*math.Pi)
	c.Fill(color.Alpha{A: 255}, NonZero)

	var sum float64
	for _, v := range img.Pix {
		sum += float64(v) / 255
	}
	want := math.Pi * 100
	if math.Abs(sum-want)/want > 0.01 {
		t.Errorf("disc area %g, want %g", sum, want)
	}
}

func BenchmarkRasteriserDisc(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			pts := disc(float64(size)/2, float64(size)*0.45, 256)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.AddPolygon(pts...)
				r.Fill(NonZero, func(y, xMin int, cov []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range cov {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

func BenchmarkVectorDisc(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			vr := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			pts := disc(float64(size)/2, float64(size)*0.45, 256)

			b.ReportAllocs()
			for b.Loop() {
				vr.Reset(size, size)
				vr.MoveTo(float32(pts[0].X), float32(pts[0].Y))
				for _, p := range pts[1:] {
					vr.LineTo(float32(p.X), float32(p.Y))
				}
				vr.ClosePath()
				vr.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// disc returns the vertices of a regular n-gon.
func disc(c, radius float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = vec.Vec2{X: c + radius*cos, Y: c + radius*sin}
	}
	return pts
}
