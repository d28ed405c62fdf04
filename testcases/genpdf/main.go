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

// Command genpdf draws every map test case twice: as a PDF file, and as a
// PNG image rendered by package raster.  Viewing both side by side is a
// quick visual check of the projection and rasterisation code.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/carto/raster"
	"seehuhn.de/go/carto/surface"
	"seehuhn.de/go/carto/testcases"
)

const outDir = "testdata/maps"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePNG(tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// 1 point = 1 pixel at 72 DPI
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that grey levels equal coverage
	page.SetFillColor(pdfcolor.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// map coordinates have y pointing down
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetFillColor(pdfcolor.DeviceGray(1))
	page.SetStrokeColor(pdfcolor.DeviceGray(1))
	if op, ok := tc.Op.(testcases.Stroke); ok {
		page.SetLineWidth(op.Width)
	}

	tc.Draw(surface.NewPDF(page))

	switch op := tc.Op.(type) {
	case testcases.Fill:
		if op.Rule == raster.EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}
	case testcases.Stroke:
		page.Stroke()
	}

	return page.Close()
}

func generatePNG(tc testcases.TestCase, pngPath string) error {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	c := raster.NewCanvas(img)
	tc.Draw(c)

	switch op := tc.Op.(type) {
	case testcases.Fill:
		c.Fill(color.White, op.Rule)
	case testcases.Stroke:
		c.Stroke(color.White, op.Width)
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
