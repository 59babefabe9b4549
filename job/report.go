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

package job

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"seehuhn.de/go/coverage"
)

// reportPage describes one rendered scene.
type reportPage struct {
	Scene      string
	Rasterizer string
	File       string
	Frame      *coverage.Frame
}

// reportInfo holds the settings shared by all pages.
type reportInfo struct {
	Reconstruct string
	Colorspace  string
}

// Page layout, in PDF points.
const (
	reportMargin   = 24.0
	reportCaption  = 44.0
	reportMinWidth = 320.0
	reportFontSize = 10.0
)

// writeReport writes a PDF file with one page per rendered scene.  Each
// page shows the image at one point per pixel, with a caption giving the
// scene name and the rendering settings.
func writeReport(fname string, info reportInfo, pages []reportPage) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: reportMinWidth, Ht: reportMinWidth},
	})
	pdf.SetTitle("coverage rendering report", false)
	pdf.SetCreator("seehuhn.de/go/coverage", false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", reportFontSize)

	for i, p := range pages {
		if p.Frame == nil {
			continue
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, p.Frame.Gray()); err != nil {
			return fmt.Errorf("%s: %w", p.Scene, err)
		}
		imgName := fmt.Sprintf("scene%d", i)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(imgName, opts, &buf)

		w := float64(p.Frame.Width)
		h := float64(p.Frame.Height)
		pageW := max(w, reportMinWidth) + 2*reportMargin
		pageH := h + 2*reportMargin + reportCaption
		pdf.AddPageFormat("", gofpdf.SizeType{Wd: pageW, Ht: pageH})

		pdf.SetTextColor(0, 0, 0)
		y := reportMargin + reportFontSize
		pdf.Text(reportMargin, y, p.Scene)
		y += 1.4 * reportFontSize
		pdf.Text(reportMargin, y, fmt.Sprintf("%s, reconstruct %s, %s",
			p.Rasterizer, info.Reconstruct, info.Colorspace))

		top := reportMargin + reportCaption
		pdf.ImageOptions(imgName, reportMargin, top, w, h, false, opts, 0, "")
		pdf.SetDrawColor(128, 128, 128)
		pdf.SetLineWidth(0.5)
		pdf.Rect(reportMargin, top, w, h, "D")

		if err := pdf.Error(); err != nil {
			return fmt.Errorf("%s: %w", p.Scene, err)
		}
	}

	if dir := filepath.Dir(fname); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return pdf.OutputFileAndClose(fname)
}
