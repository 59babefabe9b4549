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
	"math"
	"slices"

	"seehuhn.de/go/coverage/poly"
)

// AnalyticBox computes the exact area of the path inside the square
// footprint of side length one pixel, centered at the sample.  This
// corresponds to a box filter and does not use a kernel.
type AnalyticBox struct {
	pathRasterizer
	ts []float64
}

// NewAnalyticBox returns an AnalyticBox rasterizer.
func NewAnalyticBox() *AnalyticBox {
	return &AnalyticBox{pathRasterizer: pathRasterizer{name: "AnalyticBox"}}
}

// Draw implements the [Rasterizer] interface.
func (r *AnalyticBox) Draw(fb *Framebuffer, rc Rect, p *Path) {
	r.draw(fb, rc, p, r.coverage)
}

// coverage sums ∫ clamp(x+1/2, 0, 1) dy over the parts of all curves
// with y in [-1/2, 1/2].  By Green's theorem this is the signed area of the
// path inside the footprint.
func (r *AnalyticBox) coverage(curves []sampleCurve) float64 {
	var area float64
	for _, c := range curves {
		if c.p0.Y == c.p2.Y {
			continue
		}
		if math.Max(c.p0.Y, c.p2.Y) <= -0.5 || math.Min(c.p0.Y, c.p2.Y) >= 0.5 {
			continue
		}
		if math.Max(c.p0.X, c.p2.X) <= -0.5 {
			continue
		}
		area += r.curveArea(c)
	}
	return math.Min(math.Abs(area), 1)
}

func (r *AnalyticBox) curveArea(c sampleCurve) float64 {
	// Split the curve where it enters or leaves the footprint.  Between
	// these parameters the curve is either inside the footprint, or
	// entirely on one side of it.
	ts := append(r.ts[:0], 0, 1)
	for _, v := range []float64{-0.5, 0.5} {
		if between(v, c.p0.Y, c.p2.Y) {
			ts = append(ts, c.raycastY(v))
		}
		if between(v, c.p0.X, c.p2.X) {
			ts = append(ts, c.raycastX(v))
		}
	}
	slices.Sort(ts)
	r.ts = ts

	x, y := c.polys()
	inside := x.Add(poly.New(0.5)).Mul(y.Derivative()).Integral()

	var area float64
	for i := 1; i < len(ts); i++ {
		ta, tb := ts[i-1], ts[i]
		if tb <= ta {
			continue
		}
		mid := c.eval((ta + tb) / 2)
		switch {
		case mid.Y <= -0.5 || mid.Y >= 0.5:
			// above or below the footprint
		case mid.X <= -0.5:
			// left of the footprint
		case mid.X >= 0.5:
			area += y.Eval(tb) - y.Eval(ta)
		default:
			area += inside.Eval(tb) - inside.Eval(ta)
		}
	}
	return area
}

// between reports whether v lies strictly between a and b.
func between(v, a, b float64) bool {
	return (a < v && v < b) || (b < v && v < a)
}
