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

	"seehuhn.de/go/coverage/filter"
)

// Gouache sweeps the sample footprint horizontally.  Each curve contributes
// the width of its overlap with the footprint, weighted by the kernel's
// distribution function at the vertical distance to the sample.  The
// distance is scaled by the horizontal component of the unit tangent, so
// that shallow edges are not blurred more than steep ones.
type Gouache struct {
	pathRasterizer
	kernel filter.Kernel
}

// NewGouache returns a Gouache rasterizer.
// The kernel must support [filter.CapCDF].
func NewGouache(k filter.Kernel) (*Gouache, error) {
	base, err := newKernelRasterizer("Gouache", k)
	if err != nil {
		return nil, err
	}
	return &Gouache{pathRasterizer: base, kernel: k}, nil
}

// Draw implements the [Rasterizer] interface.
func (r *Gouache) Draw(fb *Framebuffer, rc Rect, p *Path) {
	r.draw(fb, rc, p, r.coverage)
}

func (r *Gouache) coverage(curves []sampleCurve) float64 {
	var cov float64
	for _, c := range curves {
		x0 := math.Max(-0.5, math.Min(0.5, c.p0.X))
		x1 := math.Max(-0.5, math.Min(0.5, c.p2.X))
		xx := x1 - x0
		if xx == 0 || math.Max(c.p0.Y, c.p2.Y) <= -0.5 {
			continue
		}
		if math.Min(c.p0.Y, c.p2.Y) >= 0.5 {
			cov += xx
			continue
		}

		t := c.raycastX(0.5 * (x0 + x1))
		d := c.eval(t).Y
		f := d
		if tan := c.tangent(t); tan.Length() > 0 {
			f = d * math.Abs(tan.X) / tan.Length()
		}
		cov += xx * r.kernel.CDF(f)
	}
	return math.Min(math.Abs(cov), 1)
}
