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
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Kernel
	}{
		{"box -0.5 0.5", Box(-0.5, 0.5)},
		{"  Box   -2 1 ", Box(-2, 1)},
		{"step", Step()},
		{"tent", Tent()},
		{"smoothstep -0.7 0.7", Smoothstep(-0.7, 0.7)},
		{"lanczos 3", Lanczos(3)},
		{"RADIALBOX 0.5", RadialBox(0.5)},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %s, want %s", c.in, got.Name(), c.want.Name())
		}
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"gauss 1",
		"box",
		"box 1",
		"box 1 0",
		"box a b",
		"tent 1",
		"lanczos 0",
		"radialbox -1",
		"smoothstep 1 1",
		"lanczos inf",
		"radialbox +Inf",
		"box -inf 0.5",
		"smoothstep 0 NaN",
	}
	for _, in := range bad {
		if _, err := Parse(in); !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}
