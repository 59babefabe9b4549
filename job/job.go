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

package job

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/coverage"
	"seehuhn.de/go/coverage/filter"
	"seehuhn.de/go/coverage/scenes"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Job is a validated, ready to run configuration.
type Job struct {
	// NewRasterizer returns a fresh rasterizer.  Rasterizers keep
	// internal buffers, so every concurrently rendered scene needs its
	// own.
	NewRasterizer func() coverage.Rasterizer

	Reconstruct filter.Kernel
	Sampler     coverage.Sampler
	Colorspace  coverage.Colorspace

	// Width and Height override the scene canvas size, if non-zero.
	// The scene is scaled to the new size.
	Width, Height int

	Scenes  []string // full scene names
	Output  string
	Report  string
	Workers int

	// Log receives progress messages.  If nil, the logger of the
	// coverage package is used.
	Log *slog.Logger
}

// Build turns a configuration into a job.
func (c Config) Build() (*Job, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if _, err := c.rasterizer(); err != nil {
		return nil, err
	}
	newRasterizer := func() coverage.Rasterizer {
		// The configuration was checked above.
		r, err := c.rasterizer()
		if err != nil {
			panic(err)
		}
		return r
	}

	rk, err := filter.Parse(c.Reconstruct)
	if err != nil {
		return nil, err
	}
	cs := coverage.SRGB
	if c.Colorspace == "linear" {
		cs = coverage.Linear
	}
	names := c.Scenes
	if len(names) == 0 {
		names = scenes.Names()
	}
	workers := c.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Job{
		NewRasterizer: newRasterizer,
		Reconstruct:   rk,
		Sampler:       coverage.UniformSampler{NX: c.Samples.NX, NY: c.Samples.NY},
		Colorspace:    cs,
		Width:         c.Width,
		Height:        c.Height,
		Scenes:        names,
		Output:        c.Output,
		Report:        c.Report,
		Workers:       workers,
	}, nil
}

func (c Config) rasterizer() (coverage.Rasterizer, error) {
	if c.Strategy == StrategyAnalytic {
		return coverage.NewAnalyticBox(), nil
	}

	k, err := filter.Parse(c.Antialias)
	if err != nil {
		return nil, err
	}
	switch c.Strategy {
	case StrategyCoarse:
		dir := coverage.Horizontal
		if c.Direction == "both" {
			dir = coverage.Both
		}
		return coverage.NewCoarse(k, dir)
	case StrategyDistance:
		return coverage.NewDistance(k)
	case StrategyHati:
		return coverage.NewHati(k)
	case StrategyGouache:
		return coverage.NewGouache(k)
	default:
		return nil, fmt.Errorf("unknown strategy %q", c.Strategy)
	}
}

func (j *Job) logger() *slog.Logger {
	if j.Log != nil {
		return j.Log
	}
	return coverage.Logger()
}

// Render draws a single scene using r and reconstructs the final image.
// If the job overrides the canvas size, the scene is scaled to fit.
func (j *Job) Render(r coverage.Rasterizer, s scenes.Scene) (*coverage.Frame, error) {
	w, h := s.Width, s.Height
	if j.Width > 0 {
		w = j.Width
	}
	if j.Height > 0 {
		h = j.Height
	}
	sx, sy := 1.0, 1.0
	if s.Width > 0 {
		sx = float64(w) / float64(s.Width)
	}
	if s.Height > 0 {
		sy = float64(h) / float64(s.Height)
	}

	fb := coverage.NewFramebuffer(w, h)
	j.Sampler.Populate(fb)

	for _, op := range s.Ops {
		switch op := op.(type) {
		case scenes.Draw:
			rc := coverage.NewRect(scaleRect(op.Local, sx, sy), op.CurveRect())
			r.Draw(fb, rc, r.CreatePath(op.Segments))
		case scenes.Fill:
			local := scaleRect(op.Local, sx, sy)
			offset := vec.Vec2{X: local.LLx, Y: local.LLy}
			extent := vec.Vec2{X: local.URx - local.LLx, Y: local.URy - local.LLy}
			r.Fill(fb, offset, extent, op.Value)
		default:
			return nil, fmt.Errorf("scene %s: unsupported operation %T", s.Name, op)
		}
	}

	f := coverage.NewFrame(w, h)
	if err := f.Reconstruct(fb, j.Reconstruct, j.Colorspace); err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	return f, nil
}

func scaleRect(r rect.Rect, sx, sy float64) rect.Rect {
	return rect.Rect{
		LLx: r.LLx * sx,
		LLy: r.LLy * sy,
		URx: r.URx * sx,
		URy: r.URy * sy,
	}
}

// Run renders all scenes of the job and writes one PNG file per scene
// into the output directory, followed by the report, if requested.
// The names of the PNG files written are returned in scene order.
//
// Up to j.Workers scenes are rendered concurrently.  Run stops early if
// ctx is cancelled or if a scene fails.
func (j *Job) Run(ctx context.Context) ([]string, error) {
	if err := os.MkdirAll(j.Output, 0o755); err != nil {
		return nil, err
	}

	log := j.logger()
	pages := make([]reportPage, len(j.Scenes))

	g, gctx := errgroup.WithContext(ctx)
	if j.Workers > 0 {
		g.SetLimit(j.Workers)
	}
	for i, name := range j.Scenes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := scenes.Find(name)
			if err != nil {
				return err
			}

			start := time.Now()
			r := j.NewRasterizer()
			f, err := j.Render(r, s)
			if err != nil {
				return err
			}

			fname := filepath.Join(j.Output, name+".png")
			if err := writePNG(fname, f); err != nil {
				return fmt.Errorf("scene %s: %w", name, err)
			}
			pages[i] = reportPage{Scene: name, Rasterizer: r.Name(), File: fname, Frame: f}

			log.Info("rendered",
				slog.String("scene", name),
				slog.String("rasterizer", r.Name()),
				slog.String("file", fname),
				slog.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	err := g.Wait()

	var written []string
	for _, p := range pages {
		if p.File != "" {
			written = append(written, p.File)
		}
	}
	if err != nil {
		return written, err
	}

	if j.Report != "" {
		info := reportInfo{
			Reconstruct: j.Reconstruct.Name(),
			Colorspace:  j.Colorspace.String(),
		}
		if err := writeReport(j.Report, info, pages); err != nil {
			return written, fmt.Errorf("report: %w", err)
		}
		log.Info("report written", slog.String("file", j.Report), slog.Int("pages", len(pages)))
	}
	return written, nil
}

func writePNG(fname string, f *coverage.Frame) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(out, f.Gray()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
