// seehuhn.de/go/coverage - analytic coverage rasterization
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

// Package job reads rendering jobs from YAML files and runs them.
//
// A job selects a rasterization strategy, the kernels used for
// anti-aliasing and reconstruction, a sample pattern, a color space and a
// list of scenes.  Running the job renders every scene and writes it as a
// PNG file.  A job file looks like this:
//
//	strategy: coarse
//	direction: both
//	antialias: smoothstep -0.5 0.5
//	reconstruct: tent
//	samples: {nx: 2, ny: 2}
//	colorspace: srgb
//	scenes: [shape_triangles, text_glyphs]
//	output: out
//	report: out/report.pdf
//	logging:
//	  level: debug
//	  file: render.log
//
// All fields are optional.  See [Defaults] for the values used for
// missing fields.
package job

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/coverage/filter"
	"seehuhn.de/go/coverage/scenes"
)

// Strategy names.
const (
	StrategyCoarse   = "coarse"
	StrategyDistance = "distance"
	StrategyHati     = "hati"
	StrategyGouache  = "gouache"
	StrategyAnalytic = "analytic"
)

// Samples gives the number of samples per texel along each axis.
type Samples struct {
	NX int `yaml:"nx"`
	NY int `yaml:"ny"`
}

// Logging configures the log output of the command line tools.
type Logging struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // optional, rotated log file
}

// Config is the contents of a job file.
type Config struct {
	// Width and Height override the canvas size of the scenes, which
	// are scaled to fit.  Zero means to use the size given by each scene.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Strategy    string   `yaml:"strategy"`
	Direction   string   `yaml:"direction"` // coarse only: horizontal or both
	Antialias   string   `yaml:"antialias"` // kernel for the rasterizer
	Reconstruct string   `yaml:"reconstruct"`
	Samples     Samples  `yaml:"samples"`
	Colorspace  string   `yaml:"colorspace"` // srgb or linear
	Scenes      []string `yaml:"scenes"`     // empty means all scenes
	Output      string   `yaml:"output"`     // output directory

	// Report optionally names a PDF file which collects all rendered
	// scenes, one per page.
	Report string `yaml:"report"`

	// Workers limits the number of scenes rendered concurrently.
	// Zero means one worker per CPU.
	Workers int `yaml:"workers"`

	Logging Logging `yaml:"logging"`
}

// Defaults returns the configuration used for missing fields.
func Defaults() Config {
	return Config{
		Strategy:    StrategyCoarse,
		Direction:   "horizontal",
		Antialias:   "box -0.5 0.5",
		Reconstruct: "box -0.5 0.5",
		Samples:     Samples{NX: 1, NY: 1},
		Colorspace:  "srgb",
		Output:      ".",
		Logging:     Logging{Level: "info", Format: "text"},
	}
}

// Load reads and validates a job file.
func Load(fname string) (Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// Parse decodes a job description.  Fields missing from data keep their
// default values.  Unknown fields are an error.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	lower := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	c.Strategy = lower(c.Strategy)
	c.Direction = lower(c.Direction)
	c.Colorspace = lower(c.Colorspace)
	c.Logging.Level = lower(c.Logging.Level)
	c.Logging.Format = lower(c.Logging.Format)
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	c.Report = strings.TrimSpace(c.Report)
}

// Validate checks the configuration and reports all problems found.
func (c Config) Validate() error {
	var errs []error
	addf := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Workers < 0 {
		addf("negative number of workers %d", c.Workers)
	}
	if c.Width < 0 || c.Height < 0 {
		addf("negative canvas size %dx%d", c.Width, c.Height)
	}
	switch c.Strategy {
	case StrategyCoarse, StrategyDistance, StrategyHati, StrategyGouache, StrategyAnalytic:
	default:
		addf("unknown strategy %q", c.Strategy)
	}
	if c.Direction != "horizontal" && c.Direction != "both" {
		addf("unknown direction %q", c.Direction)
	}
	if c.Strategy != StrategyAnalytic {
		if k, err := filter.Parse(c.Antialias); err != nil {
			addf("antialias: %w", err)
		} else if err := k.Check(filter.CapCDF); err != nil {
			addf("antialias: %w", err)
		}
	}
	if k, err := filter.Parse(c.Reconstruct); err != nil {
		addf("reconstruct: %w", err)
	} else if err := k.Check(filter.CapPDF, filter.CapBounds); err != nil {
		addf("reconstruct: %w", err)
	}
	if c.Samples.NX < 1 || c.Samples.NY < 1 {
		addf("invalid sample grid %dx%d", c.Samples.NX, c.Samples.NY)
	}
	if c.Colorspace != "srgb" && c.Colorspace != "linear" {
		addf("unknown colorspace %q", c.Colorspace)
	}
	for _, name := range c.Scenes {
		if _, err := scenes.Find(name); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Output == "" {
		addf("empty output directory")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		addf("unknown log level %q", c.Logging.Level)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		addf("unknown log format %q", c.Logging.Format)
	}

	return errors.Join(errs...)
}
