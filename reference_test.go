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
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/coverage/curve"
	"seehuhn.de/go/coverage/internal/scanline"
)

// compareScanline renders segs with AnalyticBox at one sample per texel
// and returns the largest difference to the scanline area coverage.
func compareScanline(t *testing.T, segs []curve.Segment, rc Rect, w, h int) float64 {
	t.Helper()

	r := NewAnalyticBox()
	fb := newTestFramebuffer(w, h, 1)
	r.Draw(fb, rc, r.CreatePath(segs))

	ref := scanline.New().Fill(segs, rc.CurveToLocal(), w, h)

	var worst float64
	for y := range h {
		for x := range w {
			d := math.Abs(float64(fb.At(x, y, 0)) - float64(ref[y*w+x]))
			worst = math.Max(worst, d)
		}
	}
	return worst
}

func TestAnalyticBoxMatchesScanline(t *testing.T) {
	const size = 48
	rng := rand.New(rand.NewPCG(1, 2))
	coord := func() float64 { return 2 + rng.Float64()*(size-4) }

	for i := range 20 {
		segs := polygon(coord(), coord(), coord(), coord(), coord(), coord())
		if d := compareScanline(t, segs, identity(size, size), size, size); d > 1e-4 {
			t.Errorf("triangle %d: largest difference %g", i, d)
		}
	}
}

func TestAnalyticBoxMatchesScanlineCurves(t *testing.T) {
	const size = 64
	segs, err := curve.FromPath(oShape(size))
	if err != nil {
		t.Fatal(err)
	}
	if d := compareScanline(t, segs, identity(size, size), size, size); d > 0.02 {
		t.Errorf("O: largest difference %g", d)
	}
}

func TestAnalyticBoxMatchesScanlineScaled(t *testing.T) {
	var b curve.Builder
	seg, err := b.MoveTo(pt(0, 0)).
		QuadTo(pt(0.5, 1.4), pt(1, 0)).
		LineTo(pt(0.8, 1)).
		LineTo(pt(0.1, 0.7)).
		Close().
		Finish()
	if err != nil {
		t.Fatal(err)
	}

	rc := NewRect(
		rect.Rect{LLx: 3.5, LLy: 5, URx: 37, URy: 29.25},
		rect.Rect{URx: 1, URy: 1},
	)
	if d := compareScanline(t, []curve.Segment{seg}, rc, 40, 32); d > 0.02 {
		t.Errorf("largest difference %g", d)
	}
}

// TestCurvesAllStrategies draws shapes made of quadratic curves with every
// rasterizer.  Away from the boundary the coverage must be exactly 0 or 1,
// and the total coverage must be close to the exact area.
func TestCurvesAllStrategies(t *testing.T) {
	const size = 64

	var b curve.Builder
	bump, err := b.MoveTo(pt(4, 50)).
		QuadTo(pt(32, -20), pt(60, 50)).
		Close().
		Finish()
	if err != nil {
		t.Fatal(err)
	}
	ring, err := curve.FromPath(oShape(size))
	if err != nil {
		t.Fatal(err)
	}

	shapes := []struct {
		name string
		segs []curve.Segment
	}{
		{"bump", []curve.Segment{bump}},
		{"O", ring},
	}
	for _, shape := range shapes {
		ref := scanline.New().Fill(shape.segs, matrix.Identity, size, size)
		area := 0.0
		for _, v := range ref {
			area += float64(v)
		}

		for _, r := range allRasterizers(t) {
			fb := newTestFramebuffer(size, size, 1)
			r.Draw(fb, identity(size, size), r.CreatePath(shape.segs))

			total := 0.0
			for y := range size {
				for x := range size {
					v := fb.At(x, y, 0)
					total += float64(v)
					if v < 0 || v > 1 {
						t.Errorf("%s/%s: pixel (%d, %d) = %g", shape.name, r.Name(), x, y, v)
					}
					if want, deep := uniformAround(ref, size, x, y, 2); deep && !near(v, want) {
						t.Errorf("%s/%s: pixel (%d, %d) = %g, want %g",
							shape.name, r.Name(), x, y, v, want)
					}
				}
			}
			if math.Abs(total-area) > 0.03*area {
				t.Errorf("%s/%s: total coverage %g, exact area %g", shape.name, r.Name(), total, area)
			}
		}
	}
}

// uniformAround reports whether all reference values within distance d
// of pixel (x, y) are equal to 0, or all equal to 1.
func uniformAround(ref []float32, size, x, y, d int) (float64, bool) {
	first := ref[y*size+x]
	if first != 0 && first != 1 {
		return 0, false
	}
	for j := max(y-d, 0); j <= min(y+d, size-1); j++ {
		for i := max(x-d, 0); i <= min(x+d, size-1); i++ {
			if ref[j*size+i] != first {
				return 0, false
			}
		}
	}
	return float64(first), true
}
