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

// Command genpdf generates reference images for the test scenes.
// Every scene is written as a PDF file, which Ghostscript then renders to
// a grayscale PNG.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/coverage"
	"seehuhn.de/go/coverage/curve"
	"seehuhn.de/go/coverage/scenes"
)

func main() {
	refDir := flag.String("o", "testdata/reference", "output directory")
	noPNG := flag.Bool("pdf-only", false, "do not run Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, name := range scenes.Names() {
		s, err := scenes.Find(name)
		if err != nil {
			panic(err)
		}
		pdfPath := filepath.Join(*refDir, name+".pdf")
		pngPath := filepath.Join(*refDir, name+".png")

		if err := generatePDF(s, pdfPath); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			os.Exit(1)
		}
		if *noPNG {
			continue
		}
		if err := renderPNG(pdfPath, pngPath); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			os.Exit(1)
		}
	}
}

func generatePDF(s scenes.Scene, pdfPath string) error {
	// one PDF point per pixel
	paper := &pdf.Rectangle{
		URx: float64(s.Width),
		URy: float64(s.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that gray levels equal coverage
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(s.Width), float64(s.Height))
	page.Fill()

	// scenes use a top-left origin
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(s.Height)})

	for _, op := range s.Ops {
		switch op := op.(type) {
		case scenes.Fill:
			r := op.Local
			page.SetFillColor(color.DeviceGray(clamp(op.Value)))
			page.Rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
			page.Fill()

		case scenes.Draw:
			m := coverage.NewRect(op.Local, op.CurveRect()).CurveToLocal()
			page.SetFillColor(color.DeviceGray(1))

			// PDF has no quadratic Béziers
			p := curve.ToPath(op.Segments).Iter().ToCubic()
			for cmd, pts := range p {
				switch cmd {
				case path.CmdMoveTo:
					q := apply(m, pts[0])
					page.MoveTo(q.X, q.Y)
				case path.CmdLineTo:
					q := apply(m, pts[0])
					page.LineTo(q.X, q.Y)
				case path.CmdCubeTo:
					a, b, c := apply(m, pts[0]), apply(m, pts[1]), apply(m, pts[2])
					page.CurveTo(a.X, a.Y, b.X, b.Y, c.X, c.Y)
				case path.CmdClose:
					page.ClosePath()
				}
			}
			page.Fill()
		}
	}

	return page.Close()
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func clamp(v float32) float64 {
	return float64(min(max(v, 0), 1))
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: one pixel per point
	// -dGraphicsAlphaBits=4: anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
