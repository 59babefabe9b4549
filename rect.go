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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rect maps a rectangle of destination pixels ("local" space) onto a
// rectangle in the coordinate system of the path ("curve" space).
// Both rectangles are given by their offset and extent.
type Rect struct {
	OffsetLocal vec.Vec2
	ExtentLocal vec.Vec2
	OffsetCurve vec.Vec2
	ExtentCurve vec.Vec2
}

// NewRect returns the Rect which maps local onto curve.
func NewRect(local, curve rect.Rect) Rect {
	return Rect{
		OffsetLocal: vec.Vec2{X: local.LLx, Y: local.LLy},
		ExtentLocal: vec.Vec2{X: local.URx - local.LLx, Y: local.URy - local.LLy},
		OffsetCurve: vec.Vec2{X: curve.LLx, Y: curve.LLy},
		ExtentCurve: vec.Vec2{X: curve.URx - curve.LLx, Y: curve.URy - curve.LLy},
	}
}

// LocalToCurve maps a point from local space to curve space.
// Along an axis where the local extent is zero, every point maps to the
// curve-space offset.
func (r Rect) LocalToCurve(p vec.Vec2) vec.Vec2 {
	var tx, ty float64
	if r.ExtentLocal.X != 0 {
		tx = (p.X - r.OffsetLocal.X) / r.ExtentLocal.X
	}
	if r.ExtentLocal.Y != 0 {
		ty = (p.Y - r.OffsetLocal.Y) / r.ExtentLocal.Y
	}
	return vec.Vec2{
		X: r.OffsetCurve.X + tx*r.ExtentCurve.X,
		Y: r.OffsetCurve.Y + ty*r.ExtentCurve.Y,
	}
}

// CurveDxDy returns the size of one local pixel, measured in curve space.
// Along an axis where the local extent is zero, the curve extent is
// returned unchanged.
func (r Rect) CurveDxDy() vec.Vec2 {
	sx, sy := 1.0, 1.0
	if r.ExtentLocal.X != 0 {
		sx = 1 / r.ExtentLocal.X
	}
	if r.ExtentLocal.Y != 0 {
		sy = 1 / r.ExtentLocal.Y
	}
	return vec.Vec2{X: sx * r.ExtentCurve.X, Y: sy * r.ExtentCurve.Y}
}

// CurveToLocal returns the affine map from curve space to local space,
// in PDF matrix convention.  Axes with zero extent are collapsed onto the
// local offset.
func (r Rect) CurveToLocal() matrix.Matrix {
	sx := scale(r.ExtentLocal.X, r.ExtentCurve.X)
	sy := scale(r.ExtentLocal.Y, r.ExtentCurve.Y)
	return matrix.Matrix{
		sx, 0,
		0, sy,
		r.OffsetLocal.X - sx*r.OffsetCurve.X,
		r.OffsetLocal.Y - sy*r.OffsetCurve.Y,
	}
}

func scale(local, curve float64) float64 {
	if curve == 0 {
		return 0
	}
	return local / curve
}

// pixelRect is a half-open range [x0, x1) × [y0, y1) of texels.
type pixelRect struct {
	x0, x1, y0, y1 int
}

// newPixelRect returns the texels touched by the rectangle with the given
// offset and extent, grown by bias on each side and clipped to the
// framebuffer.
func newPixelRect(bias, offset, extent vec.Vec2, width, height int) pixelRect {
	p0 := offset
	p1 := offset.Add(extent)
	return pixelRect{
		x0: clampPixel(math.Floor(math.Min(p0.X, p1.X)-bias.X), width),
		x1: clampPixel(math.Ceil(math.Max(p0.X, p1.X)+bias.X), width),
		y0: clampPixel(math.Floor(math.Min(p0.Y, p1.Y)-bias.Y), height),
		y1: clampPixel(math.Ceil(math.Max(p0.Y, p1.Y)+bias.Y), height),
	}
}

func clampPixel(v float64, bound int) int {
	if !(v > 0) {
		return 0
	}
	if v >= float64(bound) {
		return bound
	}
	return int(v)
}
