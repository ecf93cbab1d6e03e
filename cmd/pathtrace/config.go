// seehuhn.de/go/motion - path-following animation geometry
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
	"os"

	"github.com/pelletier/go-toml/v2"
)

// config is the content of a configuration file. Settings given on the
// command line take precedence.
//
// Example:
//
//	flatness = 0.25
//	steps = 100
//	tangent = true
//	format = "csv"
//
//	[trace]
//	marks = 24
//	arrow_size = 6.0
//	line_width = 0.5
type config struct {
	Flatness float64 `toml:"flatness"`
	Steps    int     `toml:"steps"`
	Tangent  bool    `toml:"tangent"`
	Format   string  `toml:"format"`

	Trace traceConfig `toml:"trace"`
}

type traceConfig struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Marks     int     `toml:"marks"`
	ArrowSize float64 `toml:"arrow_size"`
	LineWidth float64 `toml:"line_width"`
}

// loadConfig reads a configuration file. An empty file name gives the
// zero configuration.
func loadConfig(fname string) (*config, error) {
	conf := &config{}
	if fname == "" {
		return conf, nil
	}

	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(conf); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%s:%d:%d: %w", fname, row, col, err)
		}
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	if conf.Steps < 0 {
		return nil, fmt.Errorf("%s: invalid number of steps %d", fname, conf.Steps)
	}
	return conf, nil
}
