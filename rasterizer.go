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

package coverage

import (
	"fmt"
	"log/slog"

	"seehuhn.de/go/coverage/curve"
	"seehuhn.de/go/coverage/filter"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rasterizer computes coverage values for the samples of a framebuffer.
//
// Implementations are not safe for concurrent use on the same framebuffer.
type Rasterizer interface {
	// Name describes the rasterizer and its kernel.
	Name() string

	// CreatePath prepares the given contours for drawing.
	CreatePath(segments []curve.Segment) *Path

	// Fill sets every sample of every texel touched by the rectangle
	// with the given offset and extent to value.
	Fill(fb *Framebuffer, offset, extent vec.Vec2, value float32)

	// Draw stores the coverage of the path for every sample of the texels
	// covered by r, plus a border of one texel.  Existing values are
	// overwritten.
	Draw(fb *Framebuffer, r Rect, p *Path)
}

// Path is a set of contours prepared for drawing.
// All curves are monotonic in both coordinates.
type Path struct {
	curves []curve.Curve
	bounds rect.Rect
}

// NewPath flattens the segments into one list of monotonic curves.
func NewPath(segments []curve.Segment) *Path {
	var curves []curve.Curve
	for _, seg := range segments {
		curves = append(curves, curve.Monotonize(seg)...)
	}
	return &Path{
		curves: curves,
		bounds: curve.Bounds(segments),
	}
}

// Curves returns the monotonic curves of the path.
// The caller must not modify the returned slice.
func (p *Path) Curves() []curve.Curve {
	return p.curves
}

// Bounds returns the bounding box of the path in curve space.
func (p *Path) Bounds() rect.Rect {
	return p.bounds
}

// sampleFunc returns the coverage of the curves for a single sample.
// The curves are given in sample coordinates, see toSample.
type sampleFunc func(curves []sampleCurve) float64

// pathRasterizer holds the parts common to all strategies.
type pathRasterizer struct {
	name    string
	scratch []sampleCurve
}

func (r *pathRasterizer) Name() string {
	return r.name
}

func (r *pathRasterizer) CreatePath(segments []curve.Segment) *Path {
	return NewPath(segments)
}

func (r *pathRasterizer) Fill(fb *Framebuffer, offset, extent vec.Vec2, value float32) {
	pr := newPixelRect(vec.Vec2{}, offset, extent, fb.Width, fb.Height)
	n := fb.NumSamples()
	for y := pr.y0; y < pr.y1; y++ {
		row := fb.Samples[fb.Index(pr.x0, y, 0):fb.Index(pr.x1, y, 0)]
		for i := range row {
			row[i] = value
		}
	}
	Logger().Debug("fill",
		slog.String("rasterizer", r.name),
		slog.Int("texels", (pr.x1-pr.x0)*(pr.y1-pr.y0)),
		slog.Int("samples", n))
}

// draw visits every sample of the texels covered by rc, grown by one texel
// on each side, and stores the value returned by f.
func (r *pathRasterizer) draw(fb *Framebuffer, rc Rect, p *Path, f sampleFunc) {
	if !fb.IsComplete() {
		panic(fmt.Sprintf("coverage: %s: %v", r.name, ErrIncomplete))
	}

	pr := newPixelRect(vec.Vec2{X: 1, Y: 1}, rc.OffsetLocal, rc.ExtentLocal, fb.Width, fb.Height)

	dxdy := rc.CurveDxDy()
	scale := vec.Vec2{X: invOrOne(dxdy.X), Y: invOrOne(dxdy.Y)}

	if cap(r.scratch) < len(p.curves) {
		r.scratch = make([]sampleCurve, len(p.curves))
	}
	local := r.scratch[:len(p.curves)]

	for y := pr.y0; y < pr.y1; y++ {
		for x := pr.x0; x < pr.x1; x++ {
			for s, sp := range fb.SamplePos {
				pos := rc.LocalToCurve(vec.Vec2{X: float64(x) + sp.X, Y: float64(y) + sp.Y})
				for i, c := range p.curves {
					local[i] = toSample(c, pos, scale)
				}
				fb.Set(x, y, s, float32(f(local)))
			}
		}
	}

	Logger().Debug("draw",
		slog.String("rasterizer", r.name),
		slog.Int("curves", len(p.curves)),
		slog.Int("texels", (pr.x1-pr.x0)*(pr.y1-pr.y0)),
		slog.Int("samples", fb.NumSamples()))
}

func invOrOne(x float64) float64 {
	if x == 0 {
		return 1
	}
	return 1 / x
}

// newKernelRasterizer returns the common part of a strategy which evaluates
// the distribution function of k.
func newKernelRasterizer(strategy string, k filter.Kernel) (pathRasterizer, error) {
	if err := k.Check(filter.CapCDF); err != nil {
		return pathRasterizer{}, fmt.Errorf("coverage: %s: %w", strategy, err)
	}
	return pathRasterizer{name: strategy + " :: " + k.Name()}, nil
}
