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

// Distance computes coverage from the distance between the sample and the
// closest curve.  The sample counts as inside if the closest points of the
// curves which cross the horizontal line through the sample wind around
// it; the kernel's distribution function is then evaluated at the signed
// distance.
type Distance struct {
	pathRasterizer
	kernel filter.Kernel
}

// NewDistance returns a Distance rasterizer.
// The kernel must support [filter.CapCDF].
func NewDistance(k filter.Kernel) (*Distance, error) {
	base, err := newKernelRasterizer("Distance", k)
	if err != nil {
		return nil, err
	}
	return &Distance{pathRasterizer: base, kernel: k}, nil
}

// Draw implements the [Rasterizer] interface.
func (r *Distance) Draw(fb *Framebuffer, rc Rect, p *Path) {
	r.draw(fb, rc, p, r.coverage)
}

func (r *Distance) coverage(curves []sampleCurve) float64 {
	var winding float64
	dist := math.Inf(1)
	for _, c := range curves {
		q := closestPoint(c)
		dist = math.Min(dist, q.Length())

		// q is the vector from the sample to the curve, so q.X > 0 means
		// that the curve passes to the right of the sample.
		if q.X > 0 {
			winding += crossSign(c.p0.Y, c.p2.Y)
		}
	}
	if math.IsInf(dist, 1) {
		return r.kernel.CDF(math.Inf(-1))
	}
	w := math.Min(math.Abs(winding), 1)
	return r.kernel.CDF((2*w - 1) * dist)
}
