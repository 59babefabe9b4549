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

// Package curve implements the geometry model for the coverage rasterizers:
// straight lines and quadratic Bézier curves, contours made from them, and
// the splitting of quadratics into pieces which are monotonic in both
// coordinates.
package curve

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Kind distinguishes the two curve variants.
type Kind uint8

const (
	Line Kind = iota + 1
	Quad
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Quad:
		return "quad"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Curve is a straight line or a quadratic Bézier curve.
// The control points cannot be changed after construction.
type Curve struct {
	kind       Kind
	p0, p1, p2 vec.Vec2 // for lines, p1 is unused
}

// NewLine returns the straight line from p0 to p1.
func NewLine(p0, p1 vec.Vec2) Curve {
	return Curve{kind: Line, p0: p0, p2: p1}
}

// NewQuad returns the quadratic Bézier curve with start point p0,
// control point p1 and end point p2.
func NewQuad(p0, p1, p2 vec.Vec2) Curve {
	return Curve{kind: Quad, p0: p0, p1: p1, p2: p2}
}

// Kind returns the variant of c.
func (c Curve) Kind() Kind {
	return c.kind
}

// Start returns the start point.
func (c Curve) Start() vec.Vec2 {
	return c.p0
}

// Control returns the control point of a quadratic curve.
// For a line, this is the midpoint, which turns the line into an
// equivalent quadratic.
func (c Curve) Control() vec.Vec2 {
	if c.kind == Line {
		return c.p0.Add(c.p2).Mul(0.5)
	}
	return c.p1
}

// End returns the end point.
func (c Curve) End() vec.Vec2 {
	return c.p2
}

// Eval returns the point at parameter t.
func (c Curve) Eval(t float64) vec.Vec2 {
	if c.kind == Line {
		return lerp(c.p0, c.p2, t)
	}
	s := 1 - t
	return c.p0.Mul(s * s).Add(c.p1.Mul(2 * s * t)).Add(c.p2.Mul(t * t))
}

// Tangent returns the derivative with respect to t.
// The result is not normalized and is zero for degenerate curves.
func (c Curve) Tangent(t float64) vec.Vec2 {
	if c.kind == Line {
		return c.p2.Sub(c.p0)
	}
	a := c.p1.Sub(c.p0).Mul(2 * (1 - t))
	b := c.p2.Sub(c.p1).Mul(2 * t)
	return a.Add(b)
}

// Split divides c at parameter t using de Casteljau's algorithm.
func (c Curve) Split(t float64) (Curve, Curve) {
	if c.kind == Line {
		m := lerp(c.p0, c.p2, t)
		return NewLine(c.p0, m), NewLine(m, c.p2)
	}
	a := lerp(c.p0, c.p1, t)
	b := lerp(c.p1, c.p2, t)
	m := lerp(a, b, t)
	return NewQuad(c.p0, a, m), NewQuad(m, b, c.p2)
}

// Bounds returns an axis-aligned box containing the curve.
// The box is exact for lines. For quadratics it encloses all three
// control points and is therefore not tight in general.
func (c Curve) Bounds() rect.Rect {
	b := rect.Rect{
		LLx: math.Min(c.p0.X, c.p2.X),
		LLy: math.Min(c.p0.Y, c.p2.Y),
		URx: math.Max(c.p0.X, c.p2.X),
		URy: math.Max(c.p0.Y, c.p2.Y),
	}
	if c.kind == Quad {
		b.LLx = math.Min(b.LLx, c.p1.X)
		b.LLy = math.Min(b.LLy, c.p1.Y)
		b.URx = math.Max(b.URx, c.p1.X)
		b.URy = math.Max(b.URy, c.p1.Y)
	}
	return b
}

// Monotonize splits c into pieces which are monotonic in both x and y.
// Lines, and quadratics without an interior extremum, are returned
// unchanged as a single piece.
func (c Curve) Monotonize() []Curve {
	return c.appendMonotone(nil)
}

func (c Curve) appendMonotone(out []Curve) []Curve {
	if c.kind == Line {
		return append(out, c)
	}

	tx, okX := extremum(c.p0.X, c.p1.X, c.p2.X)
	ty, okY := extremum(c.p0.Y, c.p1.Y, c.p2.Y)
	if !okX && !okY {
		return append(out, c)
	}
	t := tx
	if !okX || (okY && ty < tx) {
		t = ty
	}

	left, right := c.Split(t)
	// At the split point the tangent is parallel to one axis.  Snap the
	// control points, so that rounding cannot introduce a new extremum.
	if okX && tx == t {
		left.p1.X = left.p2.X
		right.p1.X = right.p0.X
	}
	if okY && ty == t {
		left.p1.Y = left.p2.Y
		right.p1.Y = right.p0.Y
	}
	return right.appendMonotone(append(out, left))
}

// extremumEps keeps [extremum] from splitting off pieces of negligible
// length.
const extremumEps = 1e-9

// extremum returns the parameter where the one-dimensional quadratic
// Bézier with coefficients a, b, c has its extremum.  The second return
// value is false unless the extremum lies inside (0, 1), at least
// extremumEps away from both end points.  This can only happen if b lies
// outside the closed range between a and c.
func extremum(a, b, c float64) (float64, bool) {
	if (b >= a && b <= c) || (b <= a && b >= c) {
		return 0, false
	}
	t := (a - b) / (a - 2*b + c)
	if !(t > extremumEps && t < 1-extremumEps) {
		return 0, false
	}
	return t, true
}

// Monotonize replaces every curve in curves by its monotonic pieces.
func Monotonize(curves []Curve) []Curve {
	out := make([]Curve, 0, len(curves))
	for _, c := range curves {
		out = c.appendMonotone(out)
	}
	return out
}

// Segment is one contour: a sequence of curves where each curve starts at
// the end point of the previous one.
type Segment []Curve

// Bounds returns the union of the bounding boxes of all curves, visited in
// order.  The result is the zero rectangle if there are no curves.
func Bounds(segments []Segment) rect.Rect {
	var b rect.Rect
	first := true
	for _, seg := range segments {
		for _, c := range seg {
			cb := c.Bounds()
			if first {
				b = cb
				first = false
				continue
			}
			b.LLx = math.Min(b.LLx, cb.LLx)
			b.LLy = math.Min(b.LLy, cb.LLy)
			b.URx = math.Max(b.URx, cb.URx)
			b.URy = math.Max(b.URy, cb.URy)
		}
	}
	return b
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
