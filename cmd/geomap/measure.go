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
	"fmt"
	"text/tabwriter"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"seehuhn.de/go/carto/sphere"
)

func newMeasureCmd(opt *options) *cobra.Command {
	return &cobra.Command{
		Use:   "measure [flags] input",
		Short: "Print planar and spherical measurements of each feature",
		Long: `Print planar and spherical measurements of each feature.

Planar values refer to the projected map, in pixels.  Spherical values are
computed on a sphere with the configured earth radius, in kilometres.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := readInput(args[0])
			if err != nil {
				return err
			}
			cfg := opt.cfg
			s, err := newScene(cfg, fc, float64(cfg.Width), float64(cfg.Height))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "feature\tarea [km²]\tlength [km]\tarea [px²]\tlength [px]\tcentroid [px]\tbounds [px]\t")
			for i, f := range fc.Features {
				fmt.Fprintln(tw, s.measure(featureName(f, i), f, cfg.EarthRadius))
			}
			return tw.Flush()
		},
	}
}

// measure formats one row of the measurement table.
func (s *scene) measure(name string, f *geojson.Feature, radius float64) string {
	g := f.Geometry
	area := sphere.Area(g) * radius * radius
	length := sphere.Length(g) * radius

	c := s.path.Centroid(g)
	b := s.path.Bounds(g)
	return fmt.Sprintf("%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f,%.1f\t%.0f,%.0f,%.0f,%.0f\t",
		name, area, length, s.path.Area(g), s.path.Measure(g),
		c[0], c[1], b.LLx, b.LLy, b.URx, b.URy)
}

func featureName(f *geojson.Feature, i int) string {
	for _, key := range []string{"name", "NAME", "id"} {
		if v, ok := f.Properties[key].(string); ok && v != "" {
			return v
		}
	}
	if s, ok := f.ID.(string); ok && s != "" {
		return s
	}
	return fmt.Sprintf("#%d", i+1)
}
