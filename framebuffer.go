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

import "seehuhn.de/go/geom/vec"

// Framebuffer stores one coverage value for every combination of texel and
// sample position.
//
// The values of all samples of a texel are stored next to each other: the
// value for sample s of texel (x, y) is at index s + n*(y*Width+x), where n
// is the number of sample positions.  Use [Framebuffer.Index] to compute
// this.
type Framebuffer struct {
	Width, Height int

	// SamplePos holds the sub-texel offset of each sample, in [0,1)².
	SamplePos []vec.Vec2

	Samples []float32
}

// NewFramebuffer allocates a framebuffer without any sample positions.
// Use a [Sampler] or [Framebuffer.AddSamplePos] to add them.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height}
}

// Reset removes all sample positions and values.
// The backing store is kept for reuse.
func (fb *Framebuffer) Reset() {
	fb.SamplePos = fb.SamplePos[:0]
	fb.Samples = fb.Samples[:0]
}

// Clear sets all stored values to zero, keeping the sample positions.
func (fb *Framebuffer) Clear() {
	clear(fb.Samples)
}

// AddSamplePos adds a new sample position and grows the value store by one
// zero value per texel.
//
// All sample positions must be added before values are written, since the
// values of a texel are stored together.
func (fb *Framebuffer) AddSamplePos(p vec.Vec2) {
	fb.SamplePos = append(fb.SamplePos, p)
	fb.Samples = append(fb.Samples, make([]float32, fb.NumTexels())...)
}

// NumTexels returns Width*Height.
func (fb *Framebuffer) NumTexels() int {
	return fb.Width * fb.Height
}

// NumSamples returns the number of sample positions.
func (fb *Framebuffer) NumSamples() int {
	return len(fb.SamplePos)
}

// IsComplete reports whether there is exactly one value for every texel and
// sample position.  A framebuffer without sample positions is not
// complete.
func (fb *Framebuffer) IsComplete() bool {
	n := fb.NumSamples()
	return n > 0 && len(fb.Samples) == fb.NumTexels()*n
}

// Index returns the position of the value for sample s of texel (x, y) in
// fb.Samples.
func (fb *Framebuffer) Index(x, y, s int) int {
	return s + fb.NumSamples()*(y*fb.Width+x)
}

// At returns the value for sample s of texel (x, y).
func (fb *Framebuffer) At(x, y, s int) float32 {
	return fb.Samples[fb.Index(x, y, s)]
}

// Set stores the value for sample s of texel (x, y).
func (fb *Framebuffer) Set(x, y, s int, v float32) {
	fb.Samples[fb.Index(x, y, s)] = v
}

// Sampler places sample positions into a framebuffer.
type Sampler interface {
	Populate(fb *Framebuffer)
}

// UniformSampler places NX×NY samples on a regular grid, each in the
// center of its sub-cell.
type UniformSampler struct {
	NX, NY int
}

// Populate implements the [Sampler] interface.
func (u UniformSampler) Populate(fb *Framebuffer) {
	dx := 1 / float64(u.NX)
	dy := 1 / float64(u.NY)
	for j := range u.NY {
		for i := range u.NX {
			fb.AddSamplePos(vec.Vec2{
				X: (float64(i) + 0.5) * dx,
				Y: (float64(j) + 0.5) * dy,
			})
		}
	}
}
