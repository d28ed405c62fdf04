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

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

const sampleGeoJSON = `{"type": "FeatureCollection", "features": [
  {"type": "Feature", "properties": {"name": "square"},
   "geometry": {"type": "Polygon", "coordinates": [[[0,0],[0,10],[10,10],[10,0],[0,0]]]}},
  {"type": "Feature", "properties": {"name": "road"},
   "geometry": {"type": "LineString", "coordinates": [[-20,5],[30,40]]}},
  {"type": "Feature", "properties": {},
   "geometry": {"type": "Point", "coordinates": [100,-10]}}
]}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fname, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestReadConfig(t *testing.T) {
	fname := writeTemp(t, "map.toml", `
projection = "orthographic"
rotate = [10.0, -20.0]
width = 300
graticule = false
`)
	cfg := defaultConfig()
	if err := readConfig(fname, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Projection != "orthographic" || cfg.Width != 300 || cfg.Graticule {
		t.Errorf("unexpected config %+v", cfg)
	}
	if len(cfg.Rotate) != 2 || cfg.Rotate[0] != 10 || cfg.Rotate[1] != -20 {
		t.Errorf("rotate = %v", cfg.Rotate)
	}
	if cfg.Height != 500 || !cfg.Outline {
		t.Error("defaults not kept")
	}
	if err := cfg.validate(); err != nil {
		t.Error(err)
	}
}

func TestReadConfigUnknownKey(t *testing.T) {
	fname := writeTemp(t, "map.toml", `colour = "red"`)
	cfg := defaultConfig()
	if err := readConfig(fname, &cfg); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"projection", func(c *Config) { c.Projection = "robinson" }},
		{"rotate", func(c *Config) { c.Rotate = []float64{1} }},
		{"fit", func(c *Config) { c.Fit = "world" }},
		{"width", func(c *Config) { c.Width = 0 }},
		{"rows", func(c *Config) { c.Rows = -1 }},
		{"margin", func(c *Config) { c.Margin = 300 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.modify(&cfg)
			if err := cfg.validate(); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}

	cfg := defaultConfig()
	if err := cfg.validate(); err != nil {
		t.Errorf("default config: %v", err)
	}
}

func TestReadGeoJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		n       int
		typ     string
	}{
		{"collection", sampleGeoJSON, 3, "Polygon"},
		{"feature", `{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [1, 2]}}`, 1, "Point"},
		{"geometry", `{"type": "LineString", "coordinates": [[1, 2], [3, 4]]}`, 1, "LineString"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fc, err := readInput(writeTemp(t, "in.geojson", tc.content))
			if err != nil {
				t.Fatal(err)
			}
			if len(fc.Features) != tc.n {
				t.Fatalf("got %d features, want %d", len(fc.Features), tc.n)
			}
			if got := fc.Features[0].Geometry.GeoJSONType(); got != tc.typ {
				t.Errorf("got %s, want %s", got, tc.typ)
			}
		})
	}

	if _, err := readInput(writeTemp(t, "bad.geojson", `{"coordinates": []}`)); err == nil {
		t.Error("missing type accepted")
	}
}

func TestConvertShape(t *testing.T) {
	outer := []shp.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	hole := []shp.Point{{X: 0.2, Y: 0.2}, {X: 0.8, Y: 0.2}, {X: 0.8, Y: 0.8}, {X: 0.2, Y: 0.8}, {X: 0.2, Y: 0.2}}
	other := []shp.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 5, Y: 5}}

	g, err := convertShape(&shp.Polygon{Parts: []int32{0, 5}, Points: append(append([]shp.Point{}, outer...), hole...)})
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := g.(orb.Polygon); !ok || len(p) != 2 {
		t.Errorf("polygon with hole: got %#v", g)
	}

	g, err = convertShape(&shp.PolygonZ{Parts: []int32{0, 5}, Points: append(append([]shp.Point{}, outer...), other...)})
	if err != nil {
		t.Fatal(err)
	}
	if mp, ok := g.(orb.MultiPolygon); !ok || len(mp) != 2 {
		t.Errorf("two outer rings: got %#v", g)
	}

	g, err = convertShape(&shp.PolyLine{Parts: []int32{0, 2}, Points: outer[:4]})
	if err != nil {
		t.Fatal(err)
	}
	if ml, ok := g.(orb.MultiLineString); !ok || len(ml) != 2 || len(ml[0]) != 2 {
		t.Errorf("polyline: got %#v", g)
	}

	g, err = convertShape(&shp.PointZ{X: 3, Y: 4, Z: 5})
	if err != nil || g != (orb.Point{3, 4}) {
		t.Errorf("point: got %#v, %v", g, err)
	}

	g, err = convertShape(&shp.Null{})
	if err != nil || g != nil {
		t.Errorf("null: got %#v, %v", g, err)
	}
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("geomap %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestRenderSVG(t *testing.T) {
	in := writeTemp(t, "in.geojson", sampleGeoJSON)
	out := filepath.Join(t.TempDir(), "map.svg")
	run(t, "render", "--width", "200", "--height", "100", "-o", out, in)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("not an SVG file: %.40q", svg)
	}
	for _, class := range []string{"sphere", "graticule", "areas", "lines", "points", "outline"} {
		if !strings.Contains(svg, `class="`+class+`"`) {
			t.Errorf("layer %s missing", class)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	in := writeTemp(t, "in.geojson", sampleGeoJSON)
	out := filepath.Join(t.TempDir(), "map.png")
	run(t, "render", "-p", "orthographic", "--rotate", "-5,-10", "--width", "120", "--height", "80", "-o", out, in)

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("image size %v", b)
	}
}

func TestRenderPDF(t *testing.T) {
	in := writeTemp(t, "in.geojson", sampleGeoJSON)
	out := filepath.Join(t.TempDir(), "map.pdf")
	run(t, "render", "--fit", "data", "-o", out, in)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("not a PDF file")
	}
}

func TestRenderTerminal(t *testing.T) {
	in := writeTemp(t, "in.geojson", sampleGeoJSON)
	out := run(t, "render", "--title", "sample", in)
	if !strings.Contains(out, "sample") || !strings.Contains(out, "╭") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	in := writeTemp(t, "in.geojson", sampleGeoJSON)
	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "-o", filepath.Join(t.TempDir(), "map.gif"), in})
	if err := cmd.Execute(); err == nil {
		t.Error("unsupported format accepted")
	}
}

func TestMeasure(t *testing.T) {
	in := writeTemp(t, "in.geojson", sampleGeoJSON)
	out := run(t, "measure", in)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	for i, name := range []string{"square", "road", "#3"} {
		if !strings.Contains(lines[i+1], name) {
			t.Errorf("line %d: %q does not mention %s", i+1, lines[i+1], name)
		}
	}
}
