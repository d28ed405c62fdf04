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
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/carto/project"
)

// Config holds the map settings.  Values are read from a TOML file and
// can be overridden by command line flags.
type Config struct {
	Projection string    `toml:"projection"`
	Rotate     []float64 `toml:"rotate"`     // λ, φ and optionally γ, in degrees
	ClipAngle  float64   `toml:"clip_angle"` // 0 keeps the projection default
	Precision  float64   `toml:"precision"`  // resampling threshold in pixels

	// Fit selects what the map is scaled to: "sphere" or "data".
	Fit    string  `toml:"fit"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Margin float64 `toml:"margin"`

	Graticule   bool    `toml:"graticule"`
	Outline     bool    `toml:"outline"`
	PointRadius float64 `toml:"point_radius"`
	StrokeWidth float64 `toml:"stroke_width"`

	// Columns and Rows give the size of terminal output in characters.
	Columns int `toml:"columns"`
	Rows    int `toml:"rows"`

	// EarthRadius converts spherical measurements to kilometres.
	EarthRadius float64 `toml:"earth_radius"`
}

func defaultConfig() Config {
	return Config{
		Projection:  "equalEarth",
		Precision:   0.5,
		Fit:         "sphere",
		Width:       960,
		Height:      500,
		Margin:      10,
		Graticule:   true,
		Outline:     true,
		PointRadius: 3,
		StrokeWidth: 0.5,
		Columns:     72,
		Rows:        20,
		EarthRadius: 6371.0088,
	}
}

// readConfig reads settings from a TOML file.  Settings not given in the
// file keep the values from cfg.
func readConfig(fname string, cfg *Config) error {
	md, err := toml.DecodeFile(fname, cfg)
	if err != nil {
		return fmt.Errorf("reading config %q: %w", fname, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %q: unknown key %q", fname, undecoded[0].String())
	}
	return nil
}

func (c *Config) validate() error {
	var errs []error
	if _, err := project.ByName(c.Projection); err != nil {
		errs = append(errs, err)
	}
	if n := len(c.Rotate); n != 0 && n != 2 && n != 3 {
		errs = append(errs, fmt.Errorf("rotate needs 2 or 3 angles, got %d", n))
	}
	if c.Fit != "sphere" && c.Fit != "data" {
		errs = append(errs, fmt.Errorf("invalid fit %q", c.Fit))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid map size %dx%d", c.Width, c.Height))
	}
	if c.Columns <= 0 || c.Rows <= 0 {
		errs = append(errs, fmt.Errorf("invalid terminal size %dx%d", c.Columns, c.Rows))
	}
	if 2*c.Margin >= float64(min(c.Width, c.Height)) || c.Margin < 0 {
		errs = append(errs, fmt.Errorf("invalid margin %g", c.Margin))
	}
	return errors.Join(errs...)
}

// newProjection sets up the projection described by the configuration.
// The projection still needs to be fitted to the output.
func (c *Config) newProjection() (*project.Projection, error) {
	p, err := project.ByName(c.Projection)
	if err != nil {
		return nil, err
	}
	var r [3]float64
	copy(r[:], c.Rotate)
	p.SetRotate(r[0], r[1], r[2])
	if c.ClipAngle > 0 {
		p.SetClipAngle(c.ClipAngle)
	}
	p.SetPrecision(c.Precision)
	return p, nil
}
