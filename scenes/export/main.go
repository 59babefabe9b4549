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

// Command export writes the test scenes to a JSON file, for use by
// external reference renderers.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/coverage/curve"
	"seehuhn.de/go/coverage/scenes"
)

func main() {
	outName := flag.String("o", "testdata/scenes.json", "output file")
	flag.Parse()

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, name := range scenes.Names() {
		s, err := scenes.Find(name)
		if err != nil {
			panic(err)
		}
		out.Scenes = append(out.Scenes, toJSON(name, s))
	}

	if err := os.MkdirAll(filepath.Dir(*outName), 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	f, err := os.Create(*outName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(out)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type jsonScene struct {
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Ops    []jsonOp `json:"ops"`
}

type jsonOp struct {
	Op    string        `json:"op"` // "fill" or "draw"
	Local [4]float64    `json:"local"`
	Curve *[4]float64   `json:"curve,omitempty"`
	Value float32       `json:"value,omitempty"`
	Path  []jsonSegment `json:"path,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(name string, s scenes.Scene) jsonScene {
	js := jsonScene{
		Name:   name,
		Width:  s.Width,
		Height: s.Height,
	}
	for _, op := range s.Ops {
		switch op := op.(type) {
		case scenes.Fill:
			js.Ops = append(js.Ops, jsonOp{
				Op:    "fill",
				Local: rectToJSON(op.Local),
				Value: op.Value,
			})
		case scenes.Draw:
			c := rectToJSON(op.CurveRect())
			js.Ops = append(js.Ops, jsonOp{
				Op:    "draw",
				Local: rectToJSON(op.Local),
				Curve: &c,
				Path:  pathToJSON(curve.ToPath(op.Segments).Iter()),
			})
		}
	}
	return js
}

func rectToJSON(r rect.Rect) [4]float64 {
	return [4]float64{r.LLx, r.LLy, r.URx, r.URy}
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
