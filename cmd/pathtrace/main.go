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
// Command pathtrace samples positions along a path.
//
// The path is given either as SVG path data or as the name of one of the
// built-in test paths. Without a subcommand, positions at evenly spaced
// fractions of the arc length are written as JSON or CSV. The "trace"
// subcommand draws the path with direction marks to a PDF or PNG file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/motion"
	"seehuhn.de/go/motion/internal/svgpath"
	"seehuhn.de/go/motion/internal/trace"
	"seehuhn.de/go/motion/testcases"
)

// Sample holds the options of the root command.
type Sample struct {
	Data     string  `short:"d" desc:"SVG path data"`
	Case     string  `short:"c" desc:"Built-in test path, for example line_corner"`
	Flatness float64 `desc:"Curve flattening tolerance"`
	Steps    int     `short:"n" desc:"Number of steps (default 10)"`
	Tangent  bool    `desc:"Include the direction of travel"`
	Format   string  `short:"f" desc:"Output format, json or csv (default json)"`
	Output   string  `short:"o" desc:"Output file"`
	Config   string  `desc:"TOML configuration file"`
	Verbose  bool    `short:"v" desc:"Log debug messages"`
}

// Trace holds the options of the trace command.
type Trace struct {
	Data     string  `short:"d" desc:"SVG path data"`
	Case     string  `short:"c" desc:"Built-in test path, for example line_corner"`
	Flatness float64 `desc:"Curve flattening tolerance"`
	Marks    int     `short:"m" desc:"Number of direction marks (default 12)"`
	Width    int     `desc:"Page width, zero to fit the path"`
	Height   int     `desc:"Page height, zero to fit the path"`
	Output   string  `short:"o" desc:"Output file, .pdf or .png"`
	Config   string  `desc:"TOML configuration file"`
	Verbose  bool    `short:"v" desc:"Log debug messages"`
}

func main() {
	root := argp.NewCmd(&Sample{}, "Sample positions along a path")
	root.AddCmd(&Trace{}, "trace", "Draw a path with direction marks")
	root.Parse()
	root.PrintHelp()
}

// Run implements the root command.
func (cmd *Sample) Run() error {
	logger := setupLogging(cmd.Verbose)

	conf, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	steps := firstNonZero(cmd.Steps, conf.Steps, defaultSteps)
	format := strings.ToLower(firstNonZero(cmd.Format, conf.Format, "json"))
	tangent := cmd.Tangent || conf.Tangent
	if steps < 1 {
		return fmt.Errorf("invalid number of steps %d", steps)
	}
	if format != "json" && format != "csv" {
		return fmt.Errorf("unknown output format %q", format)
	}

	s, err := openSampler(cmd.Data, cmd.Case, firstNonZero(cmd.Flatness, conf.Flatness))
	if err != nil {
		return err
	}
	logger.Debug("sampling",
		slog.Int("steps", steps),
		slog.Bool("tangent", tangent),
		slog.String("format", format))

	samples := sample(s, steps, tangent)
	write := func(w io.Writer) error {
		if format == "csv" {
			return writeCSV(w, samples)
		}
		return writeJSON(w, s.TotalLength(), samples)
	}

	if cmd.Output == "" || cmd.Output == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Run implements the trace command.
func (cmd *Trace) Run() error {
	logger := setupLogging(cmd.Verbose)

	if cmd.Output == "" {
		return argp.ShowUsage
	}
	conf, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}

	s, err := openSampler(cmd.Data, cmd.Case, firstNonZero(cmd.Flatness, conf.Flatness))
	if err != nil {
		return err
	}

	opt := &trace.Options{
		Width:     firstNonZero(cmd.Width, conf.Trace.Width),
		Height:    firstNonZero(cmd.Height, conf.Trace.Height),
		Marks:     firstNonZero(cmd.Marks, conf.Trace.Marks, defaultMarks),
		ArrowSize: conf.Trace.ArrowSize,
		LineWidth: conf.Trace.LineWidth,
	}

	switch ext := strings.ToLower(filepath.Ext(cmd.Output)); ext {
	case ".pdf":
		err = trace.WritePDF(cmd.Output, s, opt)
	case ".png":
		var f *os.File
		f, err = os.Create(cmd.Output)
		if err != nil {
			return err
		}
		err = trace.WritePNG(f, s, opt)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	default:
		return fmt.Errorf("output extension must be .pdf or .png, not %q", ext)
	}
	if err != nil {
		return err
	}

	logger.Info("trace written",
		slog.String("file", cmd.Output),
		slog.Float64("length", s.TotalLength()))
	return nil
}

const (
	defaultSteps = 10
	defaultMarks = 12
)

var (
	errNoPath   = errors.New("either SVG path data or a test path name is required")
	errTwoPaths = errors.New("SVG path data and test path name are mutually exclusive")
)

// openSampler builds a sampler from SVG path data or from a named test
// path. A non-zero flatness overrides the test path's setting.
func openSampler(data, name string, flatness float64) (*motion.Sampler, error) {
	switch {
	case data == "" && name == "":
		return nil, errNoPath
	case data != "" && name != "":
		return nil, errTwoPaths
	}

	if name != "" {
		tc, ok := testcases.Find(name)
		if !ok {
			return nil, fmt.Errorf("unknown test path %q", name)
		}
		if flatness == 0 {
			flatness = tc.Flatness
		}
		return motion.NewSampler(tc.Path, tc.CTM, flatness), nil
	}

	p, err := svgpath.Parse(data)
	if err != nil {
		return nil, err
	}
	return motion.NewSampler(p.Iter(), matrix.Identity, flatness), nil
}

// setupLogging returns the logger for the command and installs it for the
// motion package. Without verbose, only warnings and errors are shown.
func setupLogging(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if verbose {
		motion.SetLogger(logger)
	}
	return logger
}

// firstNonZero returns the first argument which is not the zero value.
func firstNonZero[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
