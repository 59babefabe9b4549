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

package filter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrSyntax is returned by [Parse] for malformed kernel descriptions.
var ErrSyntax = errors.New("invalid kernel description")

type kernelSyntax struct {
	args int
	make func(p []float64) (Kernel, error)
}

var kernelSyntaxes = map[string]kernelSyntax{
	"box": {2, func(p []float64) (Kernel, error) {
		if !(p[0] < p[1]) {
			return Kernel{}, errors.New("empty interval")
		}
		return Box(p[0], p[1]), nil
	}},
	"step": {0, func([]float64) (Kernel, error) { return Step(), nil }},
	"tent": {0, func([]float64) (Kernel, error) { return Tent(), nil }},
	"smoothstep": {2, func(p []float64) (Kernel, error) {
		if !(p[0] < p[1]) {
			return Kernel{}, errors.New("empty interval")
		}
		return Smoothstep(p[0], p[1]), nil
	}},
	"lanczos": {1, func(p []float64) (Kernel, error) {
		if !(p[0] > 0) {
			return Kernel{}, errors.New("number of lobes must be positive")
		}
		return Lanczos(p[0]), nil
	}},
	"radialbox": {1, func(p []float64) (Kernel, error) {
		if !(p[0] > 0) {
			return Kernel{}, errors.New("radius must be positive")
		}
		return RadialBox(p[0]), nil
	}},
}

// Parse converts a textual kernel description into a kernel.  The
// description is a kernel name, followed by the kernel parameters,
// separated by white space:
//
//	box -0.5 0.5
//	step
//	tent
//	smoothstep -0.5 0.5
//	lanczos 3
//	radialbox 0.7
//
// Names are not case sensitive.
func Parse(desc string) (Kernel, error) {
	fields := strings.Fields(desc)
	if len(fields) == 0 {
		return Kernel{}, fmt.Errorf("%q: %w", desc, ErrSyntax)
	}

	syn, ok := kernelSyntaxes[strings.ToLower(fields[0])]
	if !ok {
		return Kernel{}, fmt.Errorf("%q: unknown kernel %q: %w", desc, fields[0], ErrSyntax)
	}
	if len(fields)-1 != syn.args {
		return Kernel{}, fmt.Errorf("%q: expected %d parameters: %w", desc, syn.args, ErrSyntax)
	}

	params := make([]float64, syn.args)
	for i, f := range fields[1:] {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Kernel{}, fmt.Errorf("%q: %w: %w", desc, ErrSyntax, err)
		}
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return Kernel{}, fmt.Errorf("%q: parameter %q is not finite: %w", desc, f, ErrSyntax)
		}
		params[i] = x
	}

	k, err := syn.make(params)
	if err != nil {
		return Kernel{}, fmt.Errorf("%q: %w: %w", desc, ErrSyntax, err)
	}
	return k, nil
}
