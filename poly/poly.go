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

// Package poly implements arithmetic on real polynomials in one variable.
//
// Polynomials are immutable values. Every operation returns a new
// polynomial and leaves its operands untouched. No operation reports an
// error: NaN and infinite coefficients simply propagate.
package poly

// Polynomial holds the coefficients of a polynomial, lowest degree first:
// the value at t is c[0] + c[1]*t + c[2]*t² + ...
//
// The zero value is the zero polynomial.
type Polynomial struct {
	c []float64
}

// New returns the polynomial with the given coefficients, lowest degree first.
func New(coeffs ...float64) Polynomial {
	return Polynomial{c: trim(append([]float64(nil), coeffs...))}
}

// trim removes leading zero coefficients.
func trim(c []float64) []float64 {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	return c[:n]
}

// Coeff returns the coefficient of t^i.
// Coefficients beyond the degree are zero.
func (p Polynomial) Coeff(i int) float64 {
	if i < 0 || i >= len(p.c) {
		return 0
	}
	return p.c[i]
}

// Coeffs returns a copy of the coefficients, lowest degree first.
func (p Polynomial) Coeffs() []float64 {
	return append([]float64(nil), p.c...)
}

// Degree returns the degree of p.
// The zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	return len(p.c) - 1
}

// Eval evaluates p at t using Horner's scheme.
func (p Polynomial) Eval(t float64) float64 {
	var res float64
	for i := len(p.c) - 1; i >= 0; i-- {
		res = res*t + p.c[i]
	}
	return res
}

// Scale returns s*p.
func (p Polynomial) Scale(s float64) Polynomial {
	c := make([]float64, len(p.c))
	for i, a := range p.c {
		c[i] = s * a
	}
	return Polynomial{c: trim(c)}
}

// Add returns p+q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	c := make([]float64, max(len(p.c), len(q.c)))
	copy(c, p.c)
	for i, a := range q.c {
		c[i] += a
	}
	return Polynomial{c: trim(c)}
}

// Sub returns p-q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	c := make([]float64, max(len(p.c), len(q.c)))
	copy(c, p.c)
	for i, a := range q.c {
		c[i] -= a
	}
	return Polynomial{c: trim(c)}
}

// Mul returns the product p*q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.c) == 0 || len(q.c) == 0 {
		return Polynomial{}
	}
	c := make([]float64, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		for j, b := range q.c {
			c[i+j] += a * b
		}
	}
	return Polynomial{c: trim(c)}
}

// Derivative returns dp/dt.
func (p Polynomial) Derivative() Polynomial {
	if len(p.c) < 2 {
		return Polynomial{}
	}
	c := make([]float64, len(p.c)-1)
	for i := 1; i < len(p.c); i++ {
		c[i-1] = float64(i) * p.c[i]
	}
	return Polynomial{c: trim(c)}
}

// Integral returns the antiderivative of p whose constant term is zero.
func (p Polynomial) Integral() Polynomial {
	if len(p.c) == 0 {
		return Polynomial{}
	}
	c := make([]float64, len(p.c)+1)
	for i, a := range p.c {
		c[i+1] = a / float64(i+1)
	}
	return Polynomial{c: trim(c)}
}

// Compose returns the polynomial t ↦ p(g(t)).
func (p Polynomial) Compose(g Polynomial) Polynomial {
	var res Polynomial
	for i := len(p.c) - 1; i >= 0; i-- {
		res = res.Mul(g).Add(New(p.c[i]))
	}
	return res
}
