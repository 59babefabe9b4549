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
	"math"

	"seehuhn.de/go/coverage/curve"
	"seehuhn.de/go/geom/path"
)

const (
	canvasWidth  = 480
	canvasHeight = 260
)

var unitSquare = box(0, 0, 100, 100)

var shapeScenes = []Scene{
	{
		Name:   "triangles",
		Width:  canvasWidth,
		Height: canvasHeight,
		Ops: []Op{
			Draw{
				Segments: []curve.Segment{polygon(0, 0, 25, 100, 50, 80)},
				Local:    box(0, 0, 100, 100),
				Curve:    unitSquare,
			},
			Draw{
				Segments: []curve.Segment{polygon(60.2, 80.4, 80, 80.4, 89, 8.4, 70.2, 8)},
				Local:    box(200, 0, 100, 100),
				Curve:    unitSquare,
			},
		},
	},
	{
		Name:   "ring",
		Width:  128,
		Height: 128,
		Ops: []Op{
			Draw{
				Segments: ring(64, 64, 56, 36),
				Local:    box(0, 0, 128, 128),
				Curve:    box(0, 0, 128, 128),
			},
		},
	},
}

var edgeScenes = []Scene{
	{
		Name:   "lines",
		Width:  canvasWidth,
		Height: canvasHeight,
		Ops: []Op{
			Draw{Segments: line(100, 0, 0, 25), Local: box(10, 20, 100, 25)},
			Draw{Segments: line(0, 0, 100, 25), Local: box(120, 20, 100, 25)},
			Draw{Segments: line(0, 25, 100, 0), Local: box(120, 50, 100, 25)},
			Draw{Segments: line(100, 25, 0, 0), Local: box(10, 50, 100, 25)},
		},
	},
	{
		Name:   "quads",
		Width:  canvasWidth,
		Height: canvasHeight,
		Ops: []Op{
			Draw{
				Segments: []curve.Segment{quad(false, 0, 0, 20, 70, 100, 100)},
				Local:    box(240, 20, 100, 100),
			},
			Draw{
				Segments: []curve.Segment{quad(true, 0, 0, 100, 50, 0, 100)},
				Local:    box(360, 20, 100, 100),
				Curve:    unitSquare,
			},
		},
	},
}

var fillScenes = []Scene{
	{
		Name:   "bands",
		Width:  canvasWidth,
		Height: canvasHeight,
		Ops:    bands(100),
	},
}

var fanScenes = []Scene{
	{
		Name:   "wedges",
		Width:  canvasWidth,
		Height: canvasHeight,
		Ops: []Op{
			Draw{
				Segments: wedges(32, 100),
				Local:    box(20, 20, 200, 200),
				Curve:    box(-100, -100, 200, 200),
			},
		},
	},
}

// filterScenes is meant for heavy supersampling with a step kernel,
// followed by reconstruction with different kernels.
var filterScenes = []Scene{
	{
		Name:   "triangle",
		Width:  128,
		Height: 128,
		Ops: []Op{
			Draw{
				Segments: []curve.Segment{polygon(10, 0, 20, 100, 20, 0)},
				Local:    box(4, 4, 20, 100),
			},
		},
	},
}

// polygon returns the closed polygon through the given x, y pairs.
func polygon(xy ...float64) curve.Segment {
	b := &curve.Builder{}
	b.MoveTo(pt(xy[0], xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		b.LineTo(pt(xy[i], xy[i+1]))
	}
	return mustFinish(b.Close())
}

// line returns an open path consisting of a single straight line.
func line(x0, y0, x1, y1 float64) []curve.Segment {
	b := &curve.Builder{}
	b.MoveTo(pt(x0, y0)).LineTo(pt(x1, y1))
	return []curve.Segment{mustFinish(b)}
}

// quad returns an open path consisting of a single quadratic curve.
func quad(monotonize bool, x0, y0, cx, cy, x1, y1 float64) curve.Segment {
	b := &curve.Builder{}
	b.MoveTo(pt(x0, y0)).QuadTo(pt(cx, cy), pt(x1, y1))
	if monotonize {
		b.Monotonize()
	}
	return mustFinish(b)
}

// bands returns a half-gray background with n adjacent gray bands on
// top, ramping up to full coverage.
func bands(n int) []Op {
	ops := []Op{
		Fill{Local: box(40, 10, 320, 40), Value: 0.5},
	}
	for i := range n {
		ops = append(ops, Fill{
			Local: box(50+float64(i)*3, 20, 3, 20),
			Value: float32(i+1) / float32(n),
		})
	}
	return ops
}

// wedges returns n thin triangles around the origin, each spanning half of
// the angle available to it.
func wedges(n int, radius float64) []curve.Segment {
	step := 2 * math.Pi / float64(n)
	segs := make([]curve.Segment, 0, n)
	for i := range n {
		s0, c0 := math.Sincos(step * (float64(i) + 0.25))
		s1, c1 := math.Sincos(step * (float64(i) - 0.25))
		segs = append(segs, polygon(0, 0, c0*radius, s0*radius, c1*radius, s1*radius))
	}
	return segs
}

// ring returns a ring made from two circles of opposite orientation.
// The circles are built from cubic Bézier curves, which are converted
// into quadratic curves.
func ring(cx, cy, outer, inner float64) []curve.Segment {
	p := &path.Data{}
	circle(p, cx, cy, outer, 1)
	circle(p, cx, cy, inner, -1)
	segs, err := curve.FromPath(p.Iter())
	if err != nil {
		panic(err)
	}
	return segs
}

func circle(p *path.Data, cx, cy, r, dir float64) {
	const kappa = 0.5522847498
	kx := kappa * r
	ky := kx * dir
	ry := r * dir
	p.MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-r, cy-ky), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+r, cy+ky), pt(cx+r, cy)).
		Close()
}
