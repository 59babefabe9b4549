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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestLocalToCurve(t *testing.T) {
	r := NewRect(
		rect.Rect{LLx: 10, LLy: 20, URx: 30, URy: 60},
		rect.Rect{LLx: -1, LLy: 0, URx: 1, URy: 100},
	)
	cases := []struct{ in, want vec.Vec2 }{
		{pt(10, 20), pt(-1, 0)},
		{pt(30, 60), pt(1, 100)},
		{pt(20, 40), pt(0, 50)},
		{pt(10, 60), pt(-1, 100)},
	}
	for _, c := range cases {
		if got := r.LocalToCurve(c.in); got != c.want {
			t.Errorf("LocalToCurve(%v) = %v, want %v", c.in, got, c.want)
		}
	}

	if got, want := r.CurveDxDy(), pt(0.1, 2.5); got != want {
		t.Errorf("CurveDxDy = %v, want %v", got, want)
	}
}

func TestRectZeroExtent(t *testing.T) {
	r := NewRect(
		rect.Rect{LLx: 3, LLy: 4, URx: 3, URy: 8},
		rect.Rect{LLx: 5, LLy: 0, URx: 7, URy: 2},
	)
	if got := r.LocalToCurve(pt(100, 6)); got != pt(5, 1) {
		t.Errorf("LocalToCurve = %v", got)
	}
	if got := r.CurveDxDy(); got != pt(2, 0.5) {
		t.Errorf("CurveDxDy = %v", got)
	}

	m := NewRect(rect.Rect{URx: 4, URy: 4}, rect.Rect{LLx: 1, URx: 1, URy: 2}).CurveToLocal()
	if m[0] != 0 || m[4] != 0 {
		t.Errorf("collapsed axis: %v", m)
	}
}

func TestCurveToLocalInverse(t *testing.T) {
	r := NewRect(
		rect.Rect{LLx: 2, LLy: 3, URx: 12, URy: 23},
		rect.Rect{LLx: -5, LLy: 1, URx: 5, URy: 3},
	)
	m := r.CurveToLocal()
	opt := cmpopts.EquateApprox(0, 1e-12)
	for _, p := range []vec.Vec2{pt(2, 3), pt(12, 23), pt(4.5, 7.25)} {
		c := r.LocalToCurve(p)
		back := pt(m[0]*c.X+m[2]*c.Y+m[4], m[1]*c.X+m[3]*c.Y+m[5])
		if d := cmp.Diff(p, back, opt); d != "" {
			t.Errorf("round trip of %v: %s", p, d)
		}
	}
}

func TestNewPixelRect(t *testing.T) {
	cases := []struct {
		offset, extent vec.Vec2
		want           pixelRect
	}{
		{pt(2.5, 3.5), pt(2, 1), pixelRect{1, 6, 2, 6}},
		{pt(4.5, 4.5), pt(-2, -2), pixelRect{1, 6, 1, 6}},
		{pt(-10, -10), pt(5, 5), pixelRect{0, 0, 0, 0}},
		{pt(-1, 7), pt(20, 20), pixelRect{0, 10, 6, 10}},
	}
	for _, c := range cases {
		got := newPixelRect(pt(1, 1), c.offset, c.extent, 10, 10)
		if got != c.want {
			t.Errorf("newPixelRect(%v, %v) = %v, want %v", c.offset, c.extent, got, c.want)
		}
	}
}
