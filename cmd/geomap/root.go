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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options holds the state shared by all subcommands.
type options struct {
	configFile string
	verbose    bool
	cfg        Config

	// flag values, applied on top of the configuration file
	flags struct {
		projection string
		rotate     []float64
		fit        string
		width      int
		height     int
		graticule  bool
		outline    bool
	}
}

func newRootCmd() *cobra.Command {
	opt := &options{}
	def := defaultConfig()

	root := &cobra.Command{
		Use:           "geomap",
		Short:         "Draw and measure geographic data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opt.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return opt.load(cmd)
		},
	}

	fs := root.PersistentFlags()
	fs.StringVar(&opt.configFile, "config", "", "TOML configuration file")
	fs.BoolVarP(&opt.verbose, "verbose", "v", false, "log debugging information")
	fs.StringVarP(&opt.flags.projection, "projection", "p", def.Projection, "map projection")
	fs.Float64SliceVar(&opt.flags.rotate, "rotate", nil, "rotation angles λ,φ[,γ] in degrees")
	fs.StringVar(&opt.flags.fit, "fit", def.Fit, `scale the map to the "sphere" or the "data"`)
	fs.IntVar(&opt.flags.width, "width", def.Width, "map width in pixels")
	fs.IntVar(&opt.flags.height, "height", def.Height, "map height in pixels")
	fs.BoolVar(&opt.flags.graticule, "graticule", def.Graticule, "draw a graticule")
	fs.BoolVar(&opt.flags.outline, "outline", def.Outline, "draw the outline of the sphere")

	root.AddCommand(newRenderCmd(opt), newMeasureCmd(opt))
	return root
}

// load combines the defaults, the configuration file and the command line
// flags, in this order of increasing priority.
func (o *options) load(cmd *cobra.Command) error {
	o.cfg = defaultConfig()
	if o.configFile != "" {
		if err := readConfig(o.configFile, &o.cfg); err != nil {
			return err
		}
		logrus.WithField("file", o.configFile).Debug("configuration loaded")
	}

	changed := cmd.Flags().Changed
	if changed("projection") {
		o.cfg.Projection = o.flags.projection
	}
	if changed("rotate") {
		o.cfg.Rotate = o.flags.rotate
	}
	if changed("fit") {
		o.cfg.Fit = o.flags.fit
	}
	if changed("width") {
		o.cfg.Width = o.flags.width
	}
	if changed("height") {
		o.cfg.Height = o.flags.height
	}
	if changed("graticule") {
		o.cfg.Graticule = o.flags.graticule
	}
	if changed("outline") {
		o.cfg.Outline = o.flags.outline
	}
	return o.cfg.validate()
}
