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
	"math"

	"seehuhn.de/go/coverage/filter"
)

// Direction selects the rays used by the [Coarse] rasterizer.
type Direction uint8

const (
	// Horizontal casts a single ray in the positive x direction.
	Horizontal Direction = iota

	// Both averages the results for rays in the positive x and the
	// positive y direction.
	Both
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Coarse computes coverage by counting the curves which cross a ray
// starting at the sample.  Each crossing is weighted by the distribution
// function of the kernel, evaluated at the signed distance between the
// sample and the crossing point.
type Coarse struct {
	pathRasterizer
	kernel    filter.Kernel
	direction Direction
}

// NewCoarse returns a Coarse rasterizer.
// The kernel must support [filter.CapCDF].
func NewCoarse(k filter.Kernel, d Direction) (*Coarse, error) {
	base, err := newKernelRasterizer("Coarse", k)
	if err != nil {
		return nil, err
	}
	if d == Both {
		base.name = "Coarse (both) :: " + k.Name()
	}
	return &Coarse{pathRasterizer: base, kernel: k, direction: d}, nil
}

// Draw implements the [Rasterizer] interface.
func (r *Coarse) Draw(fb *Framebuffer, rc Rect, p *Path) {
	r.draw(fb, rc, p, r.coverage)
}

func (r *Coarse) coverage(curves []sampleCurve) float64 {
	var wx float64
	for _, c := range curves {
		sign := crossSign(c.p0.Y, c.p2.Y)
		if sign == 0 {
			continue
		}
		x := c.eval(c.raycastY(0)).X
		wx += sign * r.kernel.CDF(x)
	}
	cov := math.Min(math.Abs(wx), 1)
	if r.direction != Both {
		return cov
	}

	var wy float64
	for _, c := range curves {
		sign := crossSign(c.p0.X, c.p2.X)
		if sign == 0 {
			continue
		}
		y := c.eval(c.raycastX(0)).Y
		wy += sign * r.kernel.CDF(y)
	}
	return (cov + math.Min(math.Abs(wy), 1)) / 2
}
