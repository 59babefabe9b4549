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

// Package filter implements one-dimensional filter kernels.
//
// A kernel serves two purposes.  Rasterizers use its cumulative
// distribution function to turn the signed distance between a sample and
// an edge into a coverage value.  Frame reconstruction uses its density
// to weight the samples around a pixel.
//
// Not every kernel supports every operation.  Use [Kernel.Has] or
// [Kernel.Check] before handing a kernel to code which needs a specific
// capability.  Calling an unsupported method panics with an
// [*UnsupportedError].
package filter

import (
	"fmt"
	"math"
)

// Type identifies a kernel family.
type Type uint8

const (
	TypeBox Type = iota + 1
	TypeStep
	TypeTent
	TypeSmoothstep
	TypeLanczos
	TypeRadialBox
)

// Capability is an optional kernel operation.
type Capability uint8

const (
	CapPDF    Capability = 1 << iota // density, see Kernel.PDF
	CapCDF                           // distribution function, see Kernel.CDF
	CapBounds                        // finite support, see Kernel.RelativeBounds
)

func (c Capability) String() string {
	switch c {
	case CapPDF:
		return "PDF"
	case CapCDF:
		return "CDF"
	case CapBounds:
		return "bounds"
	default:
		return fmt.Sprintf("Capability(%d)", uint8(c))
	}
}

var capabilities = map[Type]Capability{
	TypeBox:        CapPDF | CapCDF | CapBounds,
	TypeStep:       CapCDF,
	TypeTent:       CapPDF | CapCDF | CapBounds,
	TypeSmoothstep: CapPDF | CapCDF | CapBounds,
	TypeLanczos:    CapPDF | CapBounds,
	TypeRadialBox:  CapPDF | CapCDF | CapBounds,
}

// UnsupportedError reports the use of an operation which a kernel does
// not implement.
type UnsupportedError struct {
	Kernel     string
	Capability Capability
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("filter: %s kernel does not support %s", e.Kernel, e.Capability)
}

// Kernel is a filter kernel.  The zero value is not a valid kernel; use one
// of the constructors.
type Kernel struct {
	tp   Type
	a, b float64
}

// Box returns the uniform kernel on [min, max].
// The caller must ensure min < max.
func Box(min, max float64) Kernel {
	return Kernel{tp: TypeBox, a: min, b: max}
}

// Step returns the Heaviside step function.  Its density is a point mass
// at 0, so the kernel only has a distribution function.
func Step() Kernel {
	return Kernel{tp: TypeStep}
}

// Tent returns the triangular kernel on [-1, 1].
func Tent() Kernel {
	return Kernel{tp: TypeTent, a: -1, b: 1}
}

// Smoothstep returns the kernel whose distribution function is the
// smoothstep polynomial 3t²-2t³ between e0 and e1.
// The caller must ensure e0 < e1.
func Smoothstep(e0, e1 float64) Kernel {
	return Kernel{tp: TypeSmoothstep, a: e0, b: e1}
}

// Lanczos returns the Lanczos kernel with a lobes on each side.
// Lanczos kernels have no closed-form distribution function.
func Lanczos(a float64) Kernel {
	return Kernel{tp: TypeLanczos, a: -a, b: a}
}

// RadialBox returns the kernel which measures the area of a disc of
// radius r on one side of a straight edge.
func RadialBox(r float64) Kernel {
	return Kernel{tp: TypeRadialBox, a: -r, b: r}
}

// Type returns the kernel family.
func (k Kernel) Type() Type {
	return k.tp
}

// Name returns a human readable description of the kernel.
func (k Kernel) Name() string {
	switch k.tp {
	case TypeBox:
		return fmt.Sprintf("Box [%g, %g]", k.a, k.b)
	case TypeStep:
		return "Step"
	case TypeTent:
		return "Tent"
	case TypeSmoothstep:
		return fmt.Sprintf("Smoothstep [%g, %g]", k.a, k.b)
	case TypeLanczos:
		return fmt.Sprintf("Lanczos %g", k.b)
	case TypeRadialBox:
		return fmt.Sprintf("RadialBox %g", k.b)
	default:
		return "invalid"
	}
}

// Support returns the interval outside of which the density is zero.
// For the step kernel this is the degenerate interval [0, 0].
func (k Kernel) Support() (lo, hi float64) {
	return k.a, k.b
}

// Has reports whether k implements all capabilities in c.
func (k Kernel) Has(c Capability) bool {
	have, ok := capabilities[k.tp]
	return ok && have&c == c
}

// Check returns an *UnsupportedError for the first capability in caps
// which k does not implement.
func (k Kernel) Check(caps ...Capability) error {
	for _, c := range caps {
		if !k.Has(c) {
			return &UnsupportedError{Kernel: k.Name(), Capability: c}
		}
	}
	return nil
}

func (k Kernel) require(c Capability) {
	if !k.Has(c) {
		panic(&UnsupportedError{Kernel: k.Name(), Capability: c})
	}
}

// PDF returns the density of the kernel at offset x.
// PDF panics if the kernel does not support CapPDF.
func (k Kernel) PDF(x float64) float64 {
	k.require(CapPDF)

	switch k.tp {
	case TypeBox:
		if x < k.a || x > k.b {
			return 0
		}
		return 1 / (k.b - k.a)
	case TypeTent:
		return math.Max(1-math.Abs(x), 0)
	case TypeSmoothstep:
		if x < k.a || x > k.b {
			return 0
		}
		t := (x - k.a) / (k.b - k.a)
		return 6 * (t - t*t) / (k.b - k.a)
	case TypeLanczos:
		a := k.b
		if x == 0 {
			return 1
		}
		if x <= -a || x >= a {
			return 0
		}
		return sinc(x) * sinc(x/a)
	case TypeRadialBox:
		r := k.b
		d := clamp(-x/r, -1, 1)
		return 2 * math.Sqrt(1-d*d) / (math.Pi * r)
	}
	panic("unreachable")
}

// CDF returns the integral of the density from -∞ to x.
// CDF panics if the kernel does not support CapCDF.
func (k Kernel) CDF(x float64) float64 {
	k.require(CapCDF)

	switch k.tp {
	case TypeBox:
		return clamp((x-k.a)/(k.b-k.a), 0, 1)
	case TypeStep:
		if x < 0 {
			return 0
		}
		return 1
	case TypeTent:
		switch {
		case x <= -1:
			return 0
		case x <= 0:
			return (1 + x) * (1 + x) / 2
		case x < 1:
			return 1 - (1-x)*(1-x)/2
		default:
			return 1
		}
	case TypeSmoothstep:
		t := clamp((x-k.a)/(k.b-k.a), 0, 1)
		return t * t * (3 - 2*t)
	case TypeRadialBox:
		d := clamp(-x/k.b, -1, 1)
		return (math.Acos(d) - d*math.Sqrt(1-d*d)) / math.Pi
	}
	panic("unreachable")
}

func sinc(x float64) float64 {
	xPi := x * math.Pi
	return math.Sin(xPi) / xPi
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
