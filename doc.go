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

// Package coverage computes analytically antialiased coverage values for
// paths made from straight lines and quadratic Bézier curves.
//
// Drawing happens in three steps.  A [Sampler] places one or more sample
// positions inside every texel of a [Framebuffer].  A [Rasterizer] then
// stores, for every sample near a path, the fraction of the sample's
// footprint covered by the path.  Finally, [Frame.Reconstruct] filters the
// samples down to one gray value per pixel.
//
// Several rasterization strategies are available: [Coarse], [Distance],
// [Hati], [Gouache] and [AnalyticBox].  All except AnalyticBox use the
// distribution function of a [filter.Kernel] as the antialiasing profile.
//
// A [Rect] maps the destination pixels of a draw call onto the coordinate
// system of the path, so that the same path can be drawn at any size.
package coverage

//go:generate go run ./scenes/export
//go:generate go run ./scenes/genpdf
