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
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/coverage/curve"
	"seehuhn.de/go/coverage/filter"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var benchSizes = []int{20, 200, 1000}

func BenchmarkAnalyticBoxO(b *testing.B) {
	benchmarkO(b, NewAnalyticBox())
}

func BenchmarkCoarseO(b *testing.B) {
	r, err := NewCoarse(filter.Box(-0.5, 0.5), Horizontal)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkO(b, r)
}

func BenchmarkGouacheO(b *testing.B) {
	r, err := NewGouache(filter.Tent())
	if err != nil {
		b.Fatal(err)
	}
	benchmarkO(b, r)
}

func benchmarkO(b *testing.B, r Rasterizer) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			segs, err := curve.FromPath(oShape(size))
			if err != nil {
				b.Fatal(err)
			}
			p := r.CreatePath(segs)
			fb := newTestFramebuffer(size, size, 1)
			rc := identity(size, size)

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				r.Draw(fb, rc, p)
			}
		})
	}
}

// BenchmarkVectorO draws the same shape using x/image/vector.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			o := oShape(size)

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				toVector(r, o)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// oShape returns an "O" centered in a size×size square.  The outer circle
// runs counter-clockwise, the inner one clockwise.
func oShape(size int) path.Path {
	c := float64(size) / 2
	o := &path.Data{}
	addCircle(o, vec.Vec2{X: c, Y: c}, float64(size)*0.45, 1)
	addCircle(o, vec.Vec2{X: c, Y: c}, float64(size)*0.30, -1)
	return o.Iter()
}

// addCircle appends a circle made of four cubic arcs, starting at the top.
// The orientation is selected by the sign of dir.
func addCircle(o *path.Data, center vec.Vec2, r, dir float64) {
	const k = 0.5522847498
	at := func(angle, radial, tangential float64) vec.Vec2 {
		s, c := math.Sincos(angle)
		return vec.Vec2{
			X: center.X + radial*s + tangential*c*dir,
			Y: center.Y - radial*c + tangential*s*dir,
		}
	}

	o.MoveTo(at(0, r, 0))
	for i := range 4 {
		a0 := dir * float64(i) * math.Pi / 2
		a1 := dir * float64(i+1) * math.Pi / 2
		o.CubeTo(at(a0, r, k*r), at(a1, r, -k*r), at(a1, r, 0))
	}
	o.Close()
}

func toVector(r *vector.Rasterizer, p path.Path) {
	f := func(v vec.Vec2) (float32, float32) { return float32(v.X), float32(v.Y) }
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(f(pts[0]))
		case path.CmdLineTo:
			r.LineTo(f(pts[0]))
		case path.CmdQuadTo:
			x1, y1 := f(pts[0])
			x2, y2 := f(pts[1])
			r.QuadTo(x1, y1, x2, y2)
		case path.CmdCubeTo:
			x1, y1 := f(pts[0])
			x2, y2 := f(pts[1])
			x3, y3 := f(pts[2])
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			r.ClosePath()
		}
	}
}
