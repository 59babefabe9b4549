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

// Hati combines exact ray crossing with distance based antialiasing.
// Inside and outside are decided by counting the curves which cross a
// horizontal ray from the sample.  The distance to the closest curve then
// sets the kernel argument.
type Hati struct {
	pathRasterizer
	kernel filter.Kernel
}

// NewHati returns a Hati rasterizer.
// The kernel must support [filter.CapCDF].
func NewHati(k filter.Kernel) (*Hati, error) {
	base, err := newKernelRasterizer("Hati", k)
	if err != nil {
		return nil, err
	}
	return &Hati{pathRasterizer: base, kernel: k}, nil
}

// Draw implements the [Rasterizer] interface.
func (r *Hati) Draw(fb *Framebuffer, rc Rect, p *Path) {
	r.draw(fb, rc, p, r.coverage)
}

func (r *Hati) coverage(curves []sampleCurve) float64 {
	var winding float64
	dist := math.Inf(1)
	for _, c := range curves {
		dist = math.Min(dist, closestPoint(c).Length())

		sign := crossSign(c.p0.Y, c.p2.Y)
		if sign == 0 {
			continue
		}
		if c.eval(c.raycastY(0)).X > 0 {
			winding += sign
		}
	}
	if math.IsInf(dist, 1) {
		return r.kernel.CDF(math.Inf(-1))
	}
	w := math.Min(math.Abs(winding), 1)
	return r.kernel.CDF((2*w - 1) * dist)
}
