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
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"

	"seehuhn.de/go/coverage/filter"
)

var (
	// ErrSizeMismatch is returned when a framebuffer and a frame have
	// different dimensions.
	ErrSizeMismatch = errors.New("framebuffer and frame sizes differ")

	// ErrIncomplete is returned when a framebuffer does not hold exactly
	// one value per texel and sample position.
	ErrIncomplete = errors.New("framebuffer is incomplete")
)

// Colorspace selects the transfer function applied during reconstruction.
type Colorspace uint8

const (
	Linear Colorspace = iota
	SRGB
)

func (cs Colorspace) String() string {
	switch cs {
	case Linear:
		return "linear"
	case SRGB:
		return "srgb"
	default:
		return fmt.Sprintf("Colorspace(%d)", uint8(cs))
	}
}

// Frame is the reconstructed image.  Every pixel is stored as a packed
// gray value with full alpha, 0xAARRGGBB, row by row from the top.
type Frame struct {
	Width, Height int
	Data          []uint32
}

// NewFrame allocates a frame of the given size.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Data:   make([]uint32, width*height),
	}
}

// Reconstruct filters the samples of fb down to one value per pixel.
//
// Every pixel is the weighted mean of the samples around its center,
// with separable weights given by the density of k.  The stored values
// use the range [-1, 1]; they are mapped to [0, 1], clamped, and encoded
// using the transfer function of cs.
//
// The kernel must support [filter.CapPDF] and [filter.CapBounds].
func (f *Frame) Reconstruct(fb *Framebuffer, k filter.Kernel, cs Colorspace) error {
	if fb.Width != f.Width || fb.Height != f.Height {
		return fmt.Errorf("reconstruct %dx%d frame from %dx%d framebuffer: %w",
			f.Width, f.Height, fb.Width, fb.Height, ErrSizeMismatch)
	}
	if !fb.IsComplete() {
		return fmt.Errorf("reconstruct: %w", ErrIncomplete)
	}
	if err := k.Check(filter.CapPDF, filter.CapBounds); err != nil {
		return fmt.Errorf("reconstruct: %w", err)
	}
	if len(f.Data) != f.Width*f.Height {
		f.Data = make([]uint32, f.Width*f.Height)
	}

	// Pixel centers are at fractional position (1/2, 1/2), so the window
	// of contributing texels is the same for every pixel.
	rel := k.RelativeBounds(0.5, 0.5)

	for py := range f.Height {
		for px := range f.Width {
			b := rel.Offset(px, py, fb.Width, fb.Height)
			cx := float64(px) + 0.5
			cy := float64(py) + 0.5

			var sum, wsum float64
			for ty := b.Y.First; ty <= b.Y.Last; ty++ {
				for tx := b.X.First; tx <= b.X.Last; tx++ {
					for s, sp := range fb.SamplePos {
						w := k.PDF(float64(tx)+sp.X-cx) * k.PDF(float64(ty)+sp.Y-cy)
						if w == 0 {
							continue
						}
						sum += w * float64(fb.At(tx, ty, s))
						wsum += w
					}
				}
			}

			var v float64
			if wsum != 0 {
				v = sum / wsum
			}
			f.Data[py*f.Width+px] = pack(encode(v*0.5+0.5, cs))
		}
	}

	Logger().Debug("reconstruct",
		slog.String("kernel", k.Name()),
		slog.String("colorspace", cs.String()),
		slog.Int("width", f.Width),
		slog.Int("height", f.Height),
		slog.Int("samples", fb.NumSamples()))
	return nil
}

// encode clamps v to [0, 1] and applies the transfer function.
func encode(v float64, cs Colorspace) float64 {
	v = math.Max(0, math.Min(1, v))
	if cs == SRGB {
		return linearToSRGB(v)
	}
	return v
}

func linearToSRGB(v float64) float64 {
	if v < 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// pack converts a value in [0, 1] to an opaque gray pixel.
func pack(v float64) uint32 {
	c := uint32(math.Round(v * 255))
	return 0xFF<<24 | c<<16 | c<<8 | c
}

// Gray returns the frame as a gray scale image.
func (f *Frame) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for y := range f.Height {
		row := img.Pix[y*img.Stride : y*img.Stride+f.Width]
		for x := range row {
			row[x] = uint8(f.Data[y*f.Width+x])
		}
	}
	return img
}
