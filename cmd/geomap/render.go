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
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/carto/raster"
	"seehuhn.de/go/carto/surface"
)

func newRenderCmd(opt *options) *cobra.Command {
	var output, title string
	cmd := &cobra.Command{
		Use:   "render [flags] input",
		Short: "Draw a map of GeoJSON or shapefile data",
		Long: `Draw a map of GeoJSON or shapefile data.

The output format is chosen by the extension of the output file:
.svg, .png or .pdf.  Without an output file, the map is drawn on the
terminal using braille characters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := readInput(args[0])
			if err != nil {
				return err
			}
			cfg := opt.cfg

			if output == "" {
				b := surface.NewBraille(cfg.Columns, cfg.Rows)
				w, h := b.Size()
				s, err := newScene(cfg, fc, float64(w), float64(h))
				if err != nil {
					return err
				}
				s.drawTerminal(b)
				if title == "" {
					title = filepath.Base(args[0])
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), b.Framed(title))
				return err
			}

			s, err := newScene(cfg, fc, float64(cfg.Width), float64(cfg.Height))
			if err != nil {
				return err
			}
			switch ext := strings.ToLower(filepath.Ext(output)); ext {
			case ".svg":
				err = writeFile(output, s.writeSVG)
			case ".png":
				err = writeFile(output, s.writePNG)
			case ".pdf":
				err = s.writePDF(output)
			default:
				err = fmt.Errorf("unsupported output format %q", ext)
			}
			if err != nil {
				return err
			}
			logrus.WithField("file", output).Info("map written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.svg, .png or .pdf)")
	cmd.Flags().StringVar(&title, "title", "", "title for terminal output")
	return cmd
}

func writeFile(fname string, write func(w io.Writer) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return f.Close()
}

func (s *scene) writeSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		s.width, s.height, s.width, s.height)
	for _, l := range s.layers {
		d, ok := s.path.String(l.obj)
		if !ok {
			continue
		}
		fill, stroke := "none", "none"
		if l.fill >= 0 {
			fill = svgGrey(l.fill)
		}
		if l.stroke >= 0 {
			stroke = svgGrey(l.stroke)
		}
		fmt.Fprintf(bw, `<path class="%s" fill="%s" stroke="%s" stroke-width="%g" d="%s"/>`+"\n",
			l.name, fill, stroke, s.strokeWidth, d)
	}
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

func svgGrey(level float64) string {
	v := grey(level)
	return fmt.Sprintf("#%02x%02x%02x", v, v, v)
}

func grey(level float64) uint8 {
	return uint8(math.Round(255 * max(0, min(1, level))))
}

func (s *scene) writePNG(w io.Writer) error {
	img := image.NewGray(image.Rect(0, 0, int(s.width), int(s.height)))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	c := raster.NewCanvas(img)
	for _, l := range s.layers {
		s.path.Draw(l.obj, c)
		if l.fill >= 0 {
			col := color.Gray{Y: grey(l.fill)}
			if l.stroke >= 0 {
				c.FillPath(c.Path(), col, raster.NonZero)
			} else {
				c.Fill(col, raster.NonZero)
			}
		}
		if l.stroke >= 0 {
			c.Stroke(color.Gray{Y: grey(l.stroke)}, s.strokeWidth)
		}
	}
	return png.Encode(w, img)
}

func (s *scene) writePDF(fname string) error {
	paper := &pdf.Rectangle{URx: s.width, URy: s.height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// map coordinates have y pointing down
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, s.height})
	page.SetLineWidth(s.strokeWidth)

	ctx := surface.NewPDF(page)
	for _, l := range s.layers {
		if s.path.Data(l.obj) == nil {
			continue
		}
		if l.fill >= 0 {
			page.SetFillColor(pdfcolor.DeviceGray(l.fill))
			s.path.Draw(l.obj, ctx)
			page.Fill()
			ctx.Reset()
		}
		if l.stroke >= 0 {
			page.SetStrokeColor(pdfcolor.DeviceGray(l.stroke))
			s.path.Draw(l.obj, ctx)
			page.Stroke()
			ctx.Reset()
		}
	}
	return page.Close()
}

// drawTerminal draws the outlines of all layers.
func (s *scene) drawTerminal(b *surface.Braille) {
	for _, l := range s.layers {
		if l.name == "sphere" {
			continue
		}
		s.path.Draw(l.obj, b)
	}
}
