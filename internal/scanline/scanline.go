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

// Package scanline computes the area coverage of filled outlines on a
// pixel grid.
//
// Curves are flattened into line segments, and the signed area of the
// outline within each pixel is accumulated one scanline at a time.  The
// result equals the box-filtered coverage of the outline up to the
// flattening error.  This is used as a reference when testing the
// rasterizers of the parent package.
package scanline

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/coverage/curve"
)

// DefaultFlatness is the default maximum distance, in pixels, between a
// curve and its polygonal approximation.
const DefaultFlatness = 0.01

// edge is a non-horizontal line segment in pixel coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

// Rasterizer computes nonzero-winding coverage for closed outlines.
// Internal buffers are reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Flatness is the tolerance used for flattening quadratic curves.
	Flatness float64

	edges []edge
	cover []float32
	area  []float32
}

// New returns a Rasterizer using [DefaultFlatness].
func New() *Rasterizer {
	return &Rasterizer{Flatness: DefaultFlatness}
}

// Fill computes the coverage of the outline given by segments, after
// mapping every point through m.  Each segment is implicitly closed.
// The result has width*height entries in row-major order, each in the
// range [0, 1].
func (r *Rasterizer) Fill(segments []curve.Segment, m matrix.Matrix, width, height int) []float32 {
	res := make([]float32, width*height)
	if width <= 0 || height <= 0 {
		return res
	}

	r.collectEdges(segments, m)
	if len(r.edges) == 0 {
		return res
	}

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]
	for y := range height {
		clear(r.cover)
		clear(r.area)
		hit := false
		for i := range r.edges {
			if r.accumulate(&r.edges[i], y) {
				hit = true
			}
		}
		if hit {
			integrate(r.cover, r.area, res[y*width:(y+1)*width])
		}
	}
	return res
}

func (r *Rasterizer) collectEdges(segments []curve.Segment, m matrix.Matrix) {
	r.edges = r.edges[:0]
	apply := func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
		}
	}

	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		for _, c := range seg {
			p0 := apply(c.Start())
			p2 := apply(c.End())
			if c.Kind() == curve.Line {
				r.addEdge(p0, p2)
				continue
			}
			r.flattenQuad(p0, apply(c.Control()), p2)
		}
		first := apply(seg[0].Start())
		last := apply(seg[len(seg)-1].End())
		if first != last {
			r.addEdge(last, first)
		}
	}
}

// flattenQuad adds line segments approximating the quadratic Bézier curve
// with the given control points, which must be in pixel coordinates.
func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2) {
	// The distance between the curve and its chord is at most |e|.
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if d := e.Length(); d > r.Flatness {
		n = int(math.Ceil(math.Sqrt(d / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		p := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, p)
		prev = p
	}
}

func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if math.Abs(dy) < 1e-12 {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})
}

// Each edge crossing a pixel adds its signed vertical extent to cover,
// and the same value weighted by the fraction of the pixel to the right
// of the edge to area.  Summing cover from the left and adding area
// gives the signed area of the outline inside each pixel.
//
// accumulate adds the part of e inside scanline y and reports whether
// anything was added.
func (r *Rasterizer) accumulate(e *edge, y int) bool {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	if pixLeft == pixRight {
		r.add(e, yTop, yBot, sign, pixLeft)
		return true
	}

	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi > lo {
			r.add(e, lo, hi, sign, pix)
		}
	}
	return true
}

// add records the part of e between yTop and yBot, which lies inside
// pixel column pix.
func (r *Rasterizer) add(e *edge, yTop, yBot float64, sign float32, pix int) {
	width := len(r.cover)
	c := sign * float32(yBot-yTop)
	switch {
	case pix < 0:
		r.cover[0] += c
		r.area[0] += c
	case pix < width:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		r.cover[pix] += c
		r.area[pix] += c * float32(1-(xMid-float64(pix)))
	}
}

// integrate converts one row of accumulated cover and area values into
// coverage, using the nonzero winding rule.
func integrate(cover, area, out []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		out[i] = min(raw, 1)
	}
}
