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

package curve

import (
	"errors"

	"seehuhn.de/go/geom/vec"
)

// ErrNoCurrentPoint is reported when a drawing operation is used before
// the first MoveTo.
var ErrNoCurrentPoint = errors.New("curve: no current point")

// Builder constructs a Segment one drawing operation at a time.
//
// The builder is either waiting for a MoveTo, or it has a current point.
// LineTo, QuadTo and Close require a current point.  A call made in the
// wrong state is ignored and the error is kept until Finish is called.
type Builder struct {
	curves []Curve

	hasCurrent bool
	current    vec.Vec2 // pen position
	start      vec.Vec2 // position of the last MoveTo

	err error
}

// MoveTo starts a new contour at p.
func (b *Builder) MoveTo(p vec.Vec2) *Builder {
	b.current = p
	b.start = p
	b.hasCurrent = true
	return b
}

// LineTo appends a straight line from the current point to p.
func (b *Builder) LineTo(p vec.Vec2) *Builder {
	if !b.need() {
		return b
	}
	b.curves = append(b.curves, NewLine(b.current, p))
	b.current = p
	return b
}

// QuadTo appends a quadratic Bézier curve with control point c, ending at p.
func (b *Builder) QuadTo(c, p vec.Vec2) *Builder {
	if !b.need() {
		return b
	}
	b.curves = append(b.curves, NewQuad(b.current, c, p))
	b.current = p
	return b
}

// Close appends a line back to the start of the contour.
// The current point moves to the start of the contour.
func (b *Builder) Close() *Builder {
	if !b.need() {
		return b
	}
	b.curves = append(b.curves, NewLine(b.current, b.start))
	b.current = b.start
	return b
}

// Monotonize splits every curve added so far into monotonic pieces.
func (b *Builder) Monotonize() *Builder {
	b.curves = Monotonize(b.curves)
	return b
}

// Finish returns the curves built so far and resets the builder.
func (b *Builder) Finish() (Segment, error) {
	seg, err := Segment(b.curves), b.err
	*b = Builder{}
	if err != nil {
		return nil, err
	}
	return seg, nil
}

func (b *Builder) need() bool {
	if b.hasCurrent {
		return true
	}
	if b.err == nil {
		b.err = ErrNoCurrentPoint
	}
	return false
}
