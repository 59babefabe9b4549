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
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FromPath converts a path into one Segment per subpath.
//
// Cubic Bézier curves are approximated by two quadratic curves each.
// Subpaths without any curves are dropped.
func FromPath(p path.Path) ([]Segment, error) {
	var segs []Segment
	var b Builder
	var current, start vec.Vec2
	nonEmpty := false

	flush := func() error {
		if !nonEmpty {
			return nil
		}
		seg, err := b.Finish()
		if err != nil {
			return err
		}
		if len(seg) > 0 {
			segs = append(segs, seg)
		}
		nonEmpty = false
		return nil
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if err := flush(); err != nil {
				return nil, err
			}
			b.MoveTo(pts[0])
			current, start = pts[0], pts[0]
			nonEmpty = true
		case path.CmdLineTo:
			b.LineTo(pts[0])
			current = pts[0]
			nonEmpty = true
		case path.CmdQuadTo:
			b.QuadTo(pts[0], pts[1])
			current = pts[1]
			nonEmpty = true
		case path.CmdCubeTo:
			c1, c2 := cubicToQuads(current, pts[0], pts[1], pts[2])
			b.QuadTo(c1.p1, c1.p2)
			b.QuadTo(c2.p1, c2.p2)
			current = pts[2]
			nonEmpty = true
		case path.CmdClose:
			if current != start {
				b.Close()
			}
			current = start
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("curve: unknown path command %v", cmd)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return segs, nil
}

// cubicToQuads splits a cubic Bézier curve at t=1/2 and replaces each half
// by the quadratic which matches its end points and end tangents on average.
func cubicToQuads(p0, p1, p2, p3 vec.Vec2) (Curve, Curve) {
	a := lerp(p0, p1, 0.5)
	b := lerp(p1, p2, 0.5)
	c := lerp(p2, p3, 0.5)
	ab := lerp(a, b, 0.5)
	bc := lerp(b, c, 0.5)
	m := lerp(ab, bc, 0.5)

	return NewQuad(p0, approxControl(p0, a, ab, m), m),
		NewQuad(m, approxControl(m, bc, c, p3), p3)
}

func approxControl(p0, p1, p2, p3 vec.Vec2) vec.Vec2 {
	return p1.Add(p2).Mul(3).Sub(p0).Sub(p3).Mul(0.25)
}

// ToPath converts segments back into a path.  A new subpath is started
// at the beginning of every segment and wherever a curve does not start
// at the end of its predecessor.  Subpaths which end at their starting
// point are closed.
func ToPath(segments []Segment) *path.Data {
	p := &path.Data{}
	var start, current vec.Vec2
	open := false
	finish := func() {
		if open && current == start {
			p.Close()
		}
		open = false
	}
	for _, seg := range segments {
		finish()
		for _, c := range seg {
			if !open || c.p0 != current {
				finish()
				p.MoveTo(c.p0)
				start = c.p0
				open = true
			}
			if c.kind == Quad {
				p.QuadTo(c.p1, c.p2)
			} else {
				p.LineTo(c.p2)
			}
			current = c.p2
		}
	}
	finish()
	return p
}
