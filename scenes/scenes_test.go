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

package scenes

import (
	"errors"
	"math"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/coverage/curve"
	"seehuhn.de/go/geom/rect"
)

var validName = regexp.MustCompile(`^[a-z_]+$`)

func TestNames(t *testing.T) {
	seen := map[string]bool{}
	for category, list := range All {
		if !validName.MatchString(category) {
			t.Errorf("invalid category %q", category)
		}
		for _, s := range list {
			if !validName.MatchString(s.Name) {
				t.Errorf("%s: invalid scene name %q", category, s.Name)
			}
			full := category + "_" + s.Name
			if seen[full] {
				t.Errorf("duplicate scene %q", full)
			}
			seen[full] = true
		}
	}

	names := Names()
	if len(names) != len(seen) || !slices.IsSorted(names) {
		t.Errorf("Names() = %v", names)
	}
}

func TestNamesOrder(t *testing.T) {
	names := Names()
	ring := slices.Index(names, "shape_ring")
	triangles := slices.Index(names, "shape_triangles")
	if ring < 0 || triangles < 0 || ring > triangles {
		t.Errorf("Names() = %v", names)
	}
}

func TestFind(t *testing.T) {
	for _, name := range Names() {
		s, err := Find(name)
		if err != nil {
			t.Error(err)
			continue
		}
		if s.Width <= 0 || s.Height <= 0 || len(s.Ops) == 0 {
			t.Errorf("%s: empty scene", name)
		}
	}

	for _, name := range []string{"", "shape", "shape_", "nothing_here"} {
		if _, err := Find(name); !errors.Is(err, ErrUnknownScene) {
			t.Errorf("Find(%q): %v", name, err)
		}
	}
}

func TestDrawOps(t *testing.T) {
	for _, name := range Names() {
		s, _ := Find(name)
		for i, op := range s.Ops {
			d, ok := op.(Draw)
			if !ok {
				continue
			}
			if len(d.Segments) == 0 {
				t.Errorf("%s, op %d: no segments", name, i)
			}
			cr := d.CurveRect()
			if cr.URx-cr.LLx <= 0 || cr.URy-cr.LLy <= 0 {
				t.Errorf("%s, op %d: empty curve rectangle %v", name, i, cr)
			}
		}
	}
}

func TestCurveRectDefault(t *testing.T) {
	d := Draw{Segments: line(100, 0, 0, 25)}
	if got, want := d.CurveRect(), (rect.Rect{URx: 100, URy: 25}); got != want {
		t.Errorf("CurveRect() = %v, want %v", got, want)
	}
	d.Curve = unitSquare
	if got := d.CurveRect(); got != unitSquare {
		t.Errorf("CurveRect() = %v", got)
	}
}

func TestBands(t *testing.T) {
	ops := bands(100)
	if len(ops) != 101 {
		t.Fatalf("got %d ops", len(ops))
	}
	last := ops[100].(Fill)
	if last.Value != 1 || last.Local != box(347, 20, 3, 20) {
		t.Errorf("last band: %+v", last)
	}
}

func TestWedges(t *testing.T) {
	segs := wedges(32, 100)
	if len(segs) != 32 {
		t.Fatalf("got %d wedges", len(segs))
	}
	for i, seg := range segs {
		if len(seg) != 3 || seg[0].Start() != seg[2].End() {
			t.Errorf("wedge %d is not a closed triangle", i)
		}
	}
}

func TestRing(t *testing.T) {
	segs := ring(64, 64, 56, 36)
	if len(segs) != 2 {
		t.Fatalf("got %d contours", len(segs))
	}
	for _, seg := range segs {
		for _, c := range seg {
			if c.Kind() != curve.Quad {
				t.Fatalf("unexpected %s in ring", c.Kind())
			}
		}
	}
	b := curve.Bounds(segs)
	if b.LLx > 8.01 || b.URx < 119.99 {
		t.Errorf("bounds %v", b)
	}
}

func TestGlyphRun(t *testing.T) {
	ops, err := GlyphRun("ab c", 20, 40)
	if err != nil {
		t.Fatal(err)
	}
	// the space has no outline
	if len(ops) != 6 {
		t.Fatalf("got %d glyphs, want 6", len(ops))
	}
	prevX := -1.0
	for i, op := range ops {
		d := op.(Draw)
		w := d.Local.URx - d.Local.LLx
		h := d.Local.URy - d.Local.LLy
		if math.Abs(w-(d.Curve.URx-d.Curve.LLx)) > 1e-9 || math.Abs(h-(d.Curve.URy-d.Curve.LLy)) > 1e-9 {
			t.Errorf("glyph %d is scaled", i)
		}
		if i%3 != 0 && d.Local.LLx <= prevX {
			t.Errorf("glyph %d does not advance", i)
		}
		prevX = d.Local.LLx
	}

	small := ops[0].(Draw).Local
	large := ops[3].(Draw).Local
	if large.URy-large.LLy <= small.URy-small.LLy {
		t.Error("glyphs do not grow with the font size")
	}
}
