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

	"seehuhn.de/go/coverage/curve"
	"seehuhn.de/go/coverage/poly"
	"seehuhn.de/go/geom/vec"
)

// quadLinearThreshold is the size of the quadratic coefficient below which
// a quadratic Bézier is treated as a straight line.
const quadLinearThreshold = 1e-4

// sampleCurve is a curve in sample coordinates: the sample is at the
// origin and one destination pixel has size 1.
type sampleCurve struct {
	quad       bool
	p0, p1, p2 vec.Vec2 // for lines, p1 is the midpoint
}

// toSample transforms c into sample coordinates.
func toSample(c curve.Curve, pos, scale vec.Vec2) sampleCurve {
	tr := func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: (p.X - pos.X) * scale.X, Y: (p.Y - pos.Y) * scale.Y}
	}
	return sampleCurve{
		quad: c.Kind() == curve.Quad,
		p0:   tr(c.Start()),
		p1:   tr(c.Control()),
		p2:   tr(c.End()),
	}
}

func (c sampleCurve) eval(t float64) vec.Vec2 {
	if !c.quad {
		return vec.Vec2{X: lineEval(c.p0.X, c.p2.X, t), Y: lineEval(c.p0.Y, c.p2.Y, t)}
	}
	return vec.Vec2{X: quadEval(c.p0.X, c.p1.X, c.p2.X, t), Y: quadEval(c.p0.Y, c.p1.Y, c.p2.Y, t)}
}

func (c sampleCurve) tangent(t float64) vec.Vec2 {
	if !c.quad {
		return c.p2.Sub(c.p0)
	}
	return c.p1.Sub(c.p0).Mul(1 - t).Add(c.p2.Sub(c.p1).Mul(t))
}

// raycastX returns the parameter where the x coordinate equals x,
// clamped to [0, 1].  The curve must be monotonic in x.
func (c sampleCurve) raycastX(x float64) float64 {
	if !c.quad {
		return clamp01(lineRaycast(c.p0.X, c.p2.X, x))
	}
	return clamp01(quadRaycast(c.p0.X, c.p1.X, c.p2.X, x))
}

// raycastY returns the parameter where the y coordinate equals y,
// clamped to [0, 1].  The curve must be monotonic in y.
func (c sampleCurve) raycastY(y float64) float64 {
	if !c.quad {
		return clamp01(lineRaycast(c.p0.Y, c.p2.Y, y))
	}
	return clamp01(quadRaycast(c.p0.Y, c.p1.Y, c.p2.Y, y))
}

func clamp01(t float64) float64 {
	if !(t > 0) {
		return 0
	}
	return math.Min(t, 1)
}

// polys returns the coordinates of c as polynomials in t.
func (c sampleCurve) polys() (x, y poly.Polynomial) {
	if !c.quad {
		return poly.New(c.p0.X, c.p2.X-c.p0.X), poly.New(c.p0.Y, c.p2.Y-c.p0.Y)
	}
	coeffs := func(a, b, c float64) poly.Polynomial {
		return poly.New(a, 2*(b-a), a-2*b+c)
	}
	return coeffs(c.p0.X, c.p1.X, c.p2.X), coeffs(c.p0.Y, c.p1.Y, c.p2.Y)
}

// crossSign is +1 if the coordinate goes from ≤0 to >0, -1 if it goes from
// >0 to ≤0, and 0 otherwise.
func crossSign(start, end float64) float64 {
	return b2f(end > 0) - b2f(start > 0)
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func lineEval(p0, p1, t float64) float64 {
	return (1-t)*p0 + t*p1
}

func lineRaycast(p0, p1, p float64) float64 {
	return (p - p0) / (p1 - p0)
}

func quadEval(p0, p1, p2, t float64) float64 {
	s := 1 - t
	return s*s*p0 + 2*s*t*p1 + t*t*p2
}

// quadRaycast returns the parameter t in [0, 1] where the monotonic
// one-dimensional quadratic Bézier (p0, p1, p2) takes the value p.
//
// Writing the curve as p0 - 2bt + at², with a = p0-2p1+p2 and b = p0-p1,
// the roots are (b ± √(b²-ac))/a with c = p0-p.  The root on the curve is
// the one where the derivative has the sign of p2-p0.
func quadRaycast(p0, p1, p2, p float64) float64 {
	a := p0 - 2*p1 + p2
	if math.Abs(a) < quadLinearThreshold {
		return lineRaycast(p0, p2, p)
	}
	b := p0 - p1
	c := p0 - p
	disc := math.Sqrt(math.Max(b*b-a*c, 0))
	if p2 < p0 {
		disc = -disc
	}
	return (b + disc) / a
}

// cardano returns the real roots of the depressed cubic t³ + pt + q.
// If there is only one real root, it is returned three times.
func cardano(p, q float64) [3]float64 {
	p3 := p * p * p
	d := -(4*p3 + 27*q*q)
	switch {
	case d > 0:
		// three distinct real roots, so p < 0
		a := 2 * math.Sqrt(-p/3)
		arg := math.Sqrt(27/(-p3)) * (-q / 2)
		b := math.Acos(math.Max(-1, math.Min(1, arg))) / 3
		return [3]float64{
			a * math.Cos(b),
			a * math.Cos(b+2*math.Pi/3),
			a * math.Cos(b+4*math.Pi/3),
		}
	case d < 0:
		dd := math.Sqrt(-d / 27)
		u := math.Cbrt((-q + dd) / 2)
		v := math.Cbrt((-q - dd) / 2)
		return [3]float64{u + v, u + v, u + v}
	default:
		if p == 0 {
			return [3]float64{}
		}
		r := 3 * q / p
		r2 := -3 * q / (2 * p)
		return [3]float64{r, r2, r2}
	}
}

// closestPoint returns the point of c closest to the origin.
func closestPoint(c sampleCurve) vec.Vec2 {
	if !c.quad {
		return closestOnLine(c.p0, c.p2)
	}

	// Minimize |c(t)|² by solving c(t)·c'(t) = 0.
	x, y := c.polys()
	f := x.Mul(x.Derivative()).Add(y.Mul(y.Derivative()))
	if f.Degree() < 3 || math.Abs(f.Coeff(3)) < quadLinearThreshold*quadLinearThreshold {
		return closestOnLine(c.p0, c.p2)
	}

	// Normalize and substitute t = u - A/3 to get u³ + pu + q.
	shift := f.Coeff(2) / f.Coeff(3) / 3
	g := f.Compose(poly.New(-shift, 1)).Scale(1 / f.Coeff(3))
	roots := cardano(g.Coeff(1), g.Coeff(0))

	best := c.p0
	bestDist := c.p0.Length()
	if d := c.p2.Length(); d < bestDist {
		best, bestDist = c.p2, d
	}
	for _, u := range roots {
		t := clamp01(u - shift)
		p := c.eval(t)
		if d := p.Length(); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// closestOnLine returns the point on the line segment from p0 to p1 which is
// closest to the origin.
func closestOnLine(p0, p1 vec.Vec2) vec.Vec2 {
	dir := p1.Sub(p0)
	l2 := dir.Dot(dir)
	if l2 == 0 {
		return p0
	}
	t := math.Max(0, math.Min(1, -p0.Dot(dir)/l2))
	return p0.Add(dir.Mul(t))
}
