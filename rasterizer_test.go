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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/coverage/curve"
	"seehuhn.de/go/coverage/filter"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// identity maps a w×h destination onto the same rectangle in curve space.
func identity(w, h int) Rect {
	r := rect.Rect{URx: float64(w), URy: float64(h)}
	return NewRect(r, r)
}

func polygon(pts ...float64) []curve.Segment {
	var b curve.Builder
	b.MoveTo(pt(pts[0], pts[1]))
	for i := 2; i+1 < len(pts); i += 2 {
		b.LineTo(pt(pts[i], pts[i+1]))
	}
	seg, err := b.Close().Finish()
	if err != nil {
		panic(err)
	}
	return []curve.Segment{seg}
}

func allRasterizers(t testing.TB) []Rasterizer {
	t.Helper()
	k := filter.Box(-0.5, 0.5)
	coarse, err := NewCoarse(k, Horizontal)
	if err != nil {
		t.Fatal(err)
	}
	both, err := NewCoarse(k, Both)
	if err != nil {
		t.Fatal(err)
	}
	dist, err := NewDistance(k)
	if err != nil {
		t.Fatal(err)
	}
	hati, err := NewHati(k)
	if err != nil {
		t.Fatal(err)
	}
	gouache, err := NewGouache(k)
	if err != nil {
		t.Fatal(err)
	}
	return []Rasterizer{coarse, both, dist, hati, gouache, NewAnalyticBox()}
}

// near reports whether a stored coverage value equals want, up to
// rounding.
func near(v float32, want float64) bool {
	return math.Abs(float64(v)-want) < 1e-6
}

func newTestFramebuffer(w, h, n int) *Framebuffer {
	fb := NewFramebuffer(w, h)
	UniformSampler{NX: n, NY: n}.Populate(fb)
	return fb
}

func TestNewRequiresCDF(t *testing.T) {
	constructors := map[string]func(filter.Kernel) error{
		"coarse":   func(k filter.Kernel) error { _, err := NewCoarse(k, Horizontal); return err },
		"distance": func(k filter.Kernel) error { _, err := NewDistance(k); return err },
		"hati":     func(k filter.Kernel) error { _, err := NewHati(k); return err },
		"gouache":  func(k filter.Kernel) error { _, err := NewGouache(k); return err },
	}
	for name, newFn := range constructors {
		err := newFn(filter.Lanczos(3))
		var uerr *filter.UnsupportedError
		if !errors.As(err, &uerr) || uerr.Capability != filter.CapCDF {
			t.Errorf("%s: got error %v", name, err)
		}
		if err := newFn(filter.Step()); err != nil {
			t.Errorf("%s: step kernel rejected: %v", name, err)
		}
	}
}

// TestVerticalEdge draws a single edge at x = 5.5.  The sample of texel 5
// lies exactly on the edge.
func TestVerticalEdge(t *testing.T) {
	seg := curve.Segment{curve.NewLine(pt(5.5, -100), pt(5.5, 100))}
	kernels := []filter.Kernel{
		filter.Box(-0.5, 0.5),
		filter.Tent(),
		filter.Smoothstep(-1, 1),
		filter.RadialBox(0.5),
	}
	for _, k := range kernels {
		r, err := NewCoarse(k, Horizontal)
		if err != nil {
			t.Fatal(err)
		}
		fb := newTestFramebuffer(20, 3, 1)
		r.Draw(fb, identity(20, 3), r.CreatePath([]curve.Segment{seg}))

		if v := fb.At(5, 1, 0); math.Abs(float64(v)-0.5) > 1e-6 {
			t.Errorf("%s: coverage on the edge is %g", k.Name(), v)
		}
		if v := fb.At(0, 1, 0); v != 1 {
			t.Errorf("%s: coverage far left is %g", k.Name(), v)
		}
		if v := fb.At(19, 1, 0); v != 0 {
			t.Errorf("%s: coverage far right is %g", k.Name(), v)
		}
		prev := float32(2)
		for x := range 20 {
			v := fb.At(x, 1, 0)
			if v > prev {
				t.Errorf("%s: coverage increases at x=%d", k.Name(), x)
			}
			prev = v
		}
	}
}

func TestTriangle(t *testing.T) {
	const size = 100
	r, err := NewCoarse(filter.Box(-0.5, 0.5), Horizontal)
	if err != nil {
		t.Fatal(err)
	}
	fb := newTestFramebuffer(size, size, 1)
	tri := polygon(0, 0, 25, 100, 50, 80)
	r.Draw(fb, identity(size, size), r.CreatePath(tri))

	a, b, c := pt(0, 0), pt(25, 100), pt(50, 80)
	for y := range size {
		for x := range size {
			p := pt(float64(x)+0.5, float64(y)+0.5)
			d := math.Min(segmentDist(p, a, b), math.Min(segmentDist(p, b, c), segmentDist(p, c, a)))
			if d <= 1 {
				continue
			}
			want := float32(0)
			if inTriangle(p, a, b, c) {
				want = 1
			}
			if got := fb.At(x, y, 0); got != want {
				t.Errorf("pixel (%d,%d): got %g, want %g", x, y, got, want)
			}
		}
	}

	// pixels on the left and right boundary
	for y := 5; y < 75; y++ {
		sy := float64(y) + 0.5
		for _, xe := range []float64{sy / 4, sy * 50 / 80} {
			x := int(math.Floor(xe))
			if v := fb.At(x, y, 0); !(v > 0 && v < 1) {
				t.Errorf("boundary pixel (%d,%d): coverage %g", x, y, v)
			}
		}
	}
}

func segmentDist(p, a, b vec.Vec2) float64 {
	return closestOnLine(a.Sub(p), b.Sub(p)).Length()
}

func inTriangle(p, a, b, c vec.Vec2) bool {
	cross := func(o, u, v vec.Vec2) float64 {
		return (u.X-o.X)*(v.Y-o.Y) - (u.Y-o.Y)*(v.X-o.X)
	}
	d1, d2, d3 := cross(a, b, p), cross(b, c, p), cross(c, a, p)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func TestSquareAllStrategies(t *testing.T) {
	square := polygon(10, 10, 30, 10, 30, 30, 10, 30)
	reversed := polygon(10, 10, 10, 30, 30, 30, 30, 10)
	for _, r := range allRasterizers(t) {
		for _, shape := range [][]curve.Segment{square, reversed} {
			fb := newTestFramebuffer(40, 40, 2)
			r.Draw(fb, identity(40, 40), r.CreatePath(shape))

			for y := range 40 {
				for x := range 40 {
					inside := x >= 12 && x < 28 && y >= 12 && y < 28
					outside := x < 8 || x >= 32 || y < 8 || y >= 32
					for s := range fb.NumSamples() {
						v := fb.At(x, y, s)
						if v < 0 || v > 1 {
							t.Fatalf("%s: (%d,%d,%d) = %g out of range", r.Name(), x, y, s, v)
						}
						if inside && !near(v, 1) {
							t.Fatalf("%s: inside (%d,%d,%d) = %g", r.Name(), x, y, s, v)
						}
						if outside && !near(v, 0) {
							t.Fatalf("%s: outside (%d,%d,%d) = %g", r.Name(), x, y, s, v)
						}
					}
				}
			}
		}
	}
}

func TestHole(t *testing.T) {
	outer := polygon(2, 2, 38, 2, 38, 38, 2, 38)
	inner := polygon(12, 12, 12, 28, 28, 28, 28, 12)
	shape := append(outer, inner...)
	for _, r := range allRasterizers(t) {
		fb := newTestFramebuffer(40, 40, 1)
		r.Draw(fb, identity(40, 40), r.CreatePath(shape))

		if v := fb.At(20, 20, 0); !near(v, 0) {
			t.Errorf("%s: inside the hole: %g", r.Name(), v)
		}
		if v := fb.At(7, 20, 0); !near(v, 1) {
			t.Errorf("%s: inside the ring: %g", r.Name(), v)
		}
	}
}

func TestAnalyticBoxArea(t *testing.T) {
	// A sample in the middle of a texel sees exactly the texel area.
	cases := []struct {
		shape []curve.Segment
		want  float64
	}{
		{polygon(0, 0, 1, 0, 1, 1, 0, 1), 1},
		{polygon(0, 0, 1, 0, 1, 1), 0.5},
		{polygon(0.25, 0, 0.75, 0, 0.75, 1, 0.25, 1), 0.5},
		{polygon(-1, 0.5, 2, 0.5, 2, 3, -1, 3), 0.5},
		{polygon(0, 0, 0.5, 0, 0.5, 0.5, 0, 0.5), 0.25},
	}
	r := NewAnalyticBox()
	for i, c := range cases {
		fb := newTestFramebuffer(1, 1, 1)
		r.Draw(fb, identity(1, 1), r.CreatePath(c.shape))
		if got := float64(fb.At(0, 0, 0)); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("%d: area %g, want %g", i, got, c.want)
		}
	}
}

func TestAnalyticBoxQuad(t *testing.T) {
	// The region under the parabola y = 1 - x² (0 ≤ x ≤ 1) has area 2/3.
	var b curve.Builder
	seg, err := b.MoveTo(pt(0, 0)).
		LineTo(pt(1, 0)).
		QuadTo(pt(0.5, 1), pt(0, 1)).
		Close().
		Finish()
	if err != nil {
		t.Fatal(err)
	}
	r := NewAnalyticBox()
	fb := newTestFramebuffer(1, 1, 1)
	r.Draw(fb, identity(1, 1), r.CreatePath([]curve.Segment{seg}))
	if got := float64(fb.At(0, 0, 0)); math.Abs(got-2.0/3) > 1e-6 {
		t.Errorf("area %g, want 2/3", got)
	}
}

func TestMagnification(t *testing.T) {
	// The same unit square drawn into 10×10 pixels covers the
	// destination completely.
	square := polygon(0, 0, 1, 0, 1, 1, 0, 1)
	for _, r := range allRasterizers(t) {
		fb := newTestFramebuffer(20, 20, 1)
		rc := NewRect(rect.Rect{LLx: 5, LLy: 5, URx: 15, URy: 15}, rect.Rect{URx: 1, URy: 1})
		r.Draw(fb, rc, r.CreatePath(square))
		if v := fb.At(10, 10, 0); !near(v, 1) {
			t.Errorf("%s: center %g", r.Name(), v)
		}
		if v := fb.At(3, 10, 0); !near(v, 0) {
			t.Errorf("%s: left of the square %g", r.Name(), v)
		}
		// texels more than one pixel outside the rectangle are not touched
		if v := fb.At(2, 2, 0); v != 0 {
			t.Errorf("%s: untouched texel %g", r.Name(), v)
		}
	}
}

func TestFill(t *testing.T) {
	r := NewAnalyticBox()
	fb := newTestFramebuffer(10, 10, 2)
	r.Fill(fb, pt(2.5, 3), pt(3, 2), 0.75)
	for y := range 10 {
		for x := range 10 {
			want := float32(0)
			if x >= 2 && x < 6 && y >= 3 && y < 5 {
				want = 0.75
			}
			for s := range 4 {
				if got := fb.At(x, y, s); got != want {
					t.Fatalf("(%d,%d,%d): got %g, want %g", x, y, s, got, want)
				}
			}
		}
	}

	// Filling beyond the framebuffer is clipped.
	r.Fill(fb, pt(-5, -5), pt(100, 100), 1)
	for i, v := range fb.Samples {
		if v != 1 {
			t.Fatalf("sample %d: %g", i, v)
		}
	}
}

func TestCreatePathMonotonizes(t *testing.T) {
	var b curve.Builder
	seg, _ := b.MoveTo(pt(0, 0)).QuadTo(pt(1, 2), pt(2, 0)).Close().Finish()
	p := NewAnalyticBox().CreatePath([]curve.Segment{seg})
	if n := len(p.Curves()); n != 3 {
		t.Errorf("path has %d curves, want 3", n)
	}
	want := rect.Rect{URx: 2, URy: 2}
	if got := p.Bounds(); got != want {
		t.Errorf("bounds %v, want %v", got, want)
	}
}

func TestDrawIncompletePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for framebuffer without samples")
		}
	}()
	r := NewAnalyticBox()
	r.Draw(NewFramebuffer(4, 4), identity(4, 4), r.CreatePath(polygon(0, 0, 1, 0, 1, 1)))
}
