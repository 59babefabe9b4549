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

package scenes

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/coverage/curve"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var textScenes = []Scene{
	{
		Name:   "glyphs",
		Width:  640,
		Height: canvasHeight,
		Ops:    mustGlyphRun("quick brown fox", 18, 24, 32, 48, 72),
	},
}

func mustGlyphRun(text string, sizes ...float64) []Op {
	ops, err := GlyphRun(text, sizes...)
	if err != nil {
		panic(err)
	}
	return ops
}

// GlyphRun sets one line of text in the Go Regular font for each of the
// given pixel sizes, stacked from the top of the canvas.  Every glyph
// becomes a separate [Draw] operation whose curve rectangle is the glyph's
// bounding box, so that glyph outlines are drawn at their natural size.
func GlyphRun(text string, sizes ...float64) ([]Op, error) {
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("glyph run: %w", err)
	}

	var buf sfnt.Buffer
	var ops []Op
	top := 0.0
	for _, size := range sizes {
		ppem := fixed.Int26_6(size * 64)
		m, err := f.Metrics(&buf, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("glyph run at %gpx: %w", size, err)
		}
		baseline := top + fromFixed(m.Ascent)

		x := 10.0
		var prev sfnt.GlyphIndex
		for i, r := range text {
			gid, err := f.GlyphIndex(&buf, r)
			if err != nil {
				return nil, fmt.Errorf("glyph run: %q: %w", r, err)
			}
			if i > 0 {
				if k, err := f.Kern(&buf, prev, gid, ppem, font.HintingNone); err == nil {
					x += fromFixed(k)
				}
			}

			segs, err := glyphOutline(f, &buf, gid, ppem)
			if err != nil {
				return nil, fmt.Errorf("glyph run: %q: %w", r, err)
			}
			if len(segs) > 0 {
				b := curve.Bounds(segs)
				ops = append(ops, Draw{
					Segments: segs,
					Local: rect.Rect{
						LLx: x + b.LLx,
						LLy: baseline + b.LLy,
						URx: x + b.URx,
						URy: baseline + b.URy,
					},
					Curve: b,
				})
			}

			adv, err := f.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
			if err != nil {
				return nil, fmt.Errorf("glyph run: %q: %w", r, err)
			}
			x += fromFixed(adv)
			prev = gid
		}
		top += size
	}
	return ops, nil
}

// glyphOutline returns the contours of a glyph, relative to the glyph
// origin with y pointing down.
func glyphOutline(f *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, ppem fixed.Int26_6) ([]curve.Segment, error) {
	outline, err := f.LoadGlyph(buf, gid, ppem, nil)
	if err != nil {
		return nil, err
	}

	p := &path.Data{}
	open := false
	for _, seg := range outline {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(fromPoint(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(fromPoint(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(fromPoint(seg.Args[0]), fromPoint(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.CubeTo(fromPoint(seg.Args[0]), fromPoint(seg.Args[1]), fromPoint(seg.Args[2]))
		}
	}
	if open {
		p.Close()
	}
	return curve.FromPath(p.Iter())
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

func fromPoint(p fixed.Point26_6) vec.Vec2 {
	return vec.Vec2{X: fromFixed(p.X), Y: fromFixed(p.Y)}
}
