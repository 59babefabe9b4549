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

// Package scenes defines the test scenes used by the tests, the benchmarks
// and the command line tools of the coverage module.
//
// A scene is a list of draw and fill operations on a canvas of fixed size.
// Scenes only describe geometry; they are rendered by the caller.
package scenes

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"seehuhn.de/go/coverage/curve"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrUnknownScene is returned by [Find] for names which are not in [All].
var ErrUnknownScene = errors.New("unknown scene")

// Scene is a single test picture.
type Scene struct {
	Name   string // lowercase a-z and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels
	Ops    []Op
}

// Op is an operation of a scene, either a [Draw] or a [Fill].
type Op interface {
	isOp()
}

// Draw renders a path.
//
// Curve gives the rectangle in path coordinates which is mapped onto
// the pixel rectangle Local.  If Curve is the zero rectangle, the
// bounding box of the segments is used.
type Draw struct {
	Segments []curve.Segment
	Local    rect.Rect
	Curve    rect.Rect
}

func (Draw) isOp() {}

// CurveRect returns the curve space rectangle of the operation.
func (d Draw) CurveRect() rect.Rect {
	if d.Curve == (rect.Rect{}) {
		return curve.Bounds(d.Segments)
	}
	return d.Curve
}

// Fill sets all samples of the pixel rectangle Local to Value.
type Fill struct {
	Local rect.Rect
	Value float32
}

func (Fill) isOp() {}

// All contains all scenes, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]Scene{
	"shape":  shapeScenes,
	"edge":   edgeScenes,
	"fill":   fillScenes,
	"fan":    fanScenes,
	"filter": filterScenes,
	"text":   textScenes,
}

// Names returns the full names ("category_name") of all scenes, in
// sorted order.
func Names() []string {
	var names []string
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[category] {
			names = append(names, category+"_"+s.Name)
		}
	}
	slices.Sort(names)
	return names
}

// Find returns the scene with the given full name.
func Find(name string) (Scene, error) {
	category, rest, ok := strings.Cut(name, "_")
	if ok {
		for _, s := range All[category] {
			if s.Name == rest {
				return s, nil
			}
		}
	}
	return Scene{}, fmt.Errorf("scene %q: %w", name, ErrUnknownScene)
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// box returns the rectangle with the given offset and extent.
func box(x, y, w, h float64) rect.Rect {
	return rect.Rect{LLx: x, LLy: y, URx: x + w, URy: y + h}
}

// mustFinish is used for scene definitions, which never lack a current
// point.
func mustFinish(b *curve.Builder) curve.Segment {
	seg, err := b.Finish()
	if err != nil {
		panic(err)
	}
	return seg
}
