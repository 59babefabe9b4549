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

package filter

import "math"

// Range is an inclusive range of integers.
// The range is empty if Last < First.
type Range struct {
	First, Last int
}

// Len returns the number of integers in the range.
func (r Range) Len() int {
	return max(r.Last-r.First+1, 0)
}

// RelativeBounds is a window of texel offsets, relative to some anchor
// texel.
type RelativeBounds struct {
	X, Y Range
}

// Bounds is a window of absolute texel coordinates.
type Bounds struct {
	X, Y Range
}

// RelativeBounds returns the texel offsets where the kernel, centered at the
// fractional position (x, y), can be non-zero.
// RelativeBounds panics if the kernel does not support CapBounds.
func (k Kernel) RelativeBounds(x, y float64) RelativeBounds {
	k.require(CapBounds)

	return RelativeBounds{
		X: Range{int(math.Floor(x + k.a)), int(math.Ceil(x + k.b))},
		Y: Range{int(math.Floor(y + k.a)), int(math.Ceil(y + k.b))},
	}
}

// Offset moves the window to the anchor texel (ox, oy) and clips it to the
// texel grid [0, boundX) × [0, boundY).
func (r RelativeBounds) Offset(ox, oy, boundX, boundY int) Bounds {
	return Bounds{
		X: Range{clampInt(r.X.First+ox, boundX), clampInt(r.X.Last+ox, boundX)},
		Y: Range{clampInt(r.Y.First+oy, boundY), clampInt(r.Y.Last+oy, boundY)},
	}
}

func clampInt(v, bound int) int {
	return min(max(v, 0), bound-1)
}
