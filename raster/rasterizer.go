// seehuhn.de/go/pixstat - pixel-space binning and rasterization
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

// Package raster determines the exact set of pixels covered by simple
// shapes.
//
// Unlike an anti-aliasing renderer, a [Rasterizer] records only whether a
// pixel was hit.  Pixels are treated as integer lattice points: a filled
// shape covers the pixel (x, y) if the point (x, y) lies inside the shape or
// on its boundary.  Marking is idempotent, so the [Pixels] snapshot taken
// after any number of drawing calls lists every covered pixel exactly once.
// This makes the result usable for counting, not just for display.
package raster

import (
	"math"
	"math/bits"
	"slices"
)

// Rasterizer marks the pixels covered by a sequence of drawing calls.
// All drawing is clipped to the region given at construction time;
// coordinates outside the region are silently ignored.
//
// Internal buffers are reused by [Rasterizer.Reset], so one instance can
// serve many shapes without allocating.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	region Region

	// mask holds one bit per pixel of the region, in row-major order.
	mask []uint64

	// scratch buffers for FillPolygon
	edges     []edge
	activeIdx []int
}

// NewRasterizer returns a Rasterizer with an empty mask covering region.
func NewRasterizer(region Region) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(region)
	return r
}

// Reset clears all marked pixels and binds the rasterizer to a new region.
func (r *Rasterizer) Reset(region Region) {
	if region.Empty() {
		region.Width = 0
		region.Height = 0
	}
	r.region = region

	n := (region.Width*region.Height + 63) / 64
	r.mask = slices.Grow(r.mask[:0], n)[:n]
	clear(r.mask)
}

// Region returns the region the rasterizer is bound to.
func (r *Rasterizer) Region() Region {
	return r.region
}

// Set marks a single pixel.
func (r *Rasterizer) Set(x, y int) {
	if !r.region.Contains(x, y) {
		return
	}
	i := (y-r.region.Y0)*r.region.Width + (x - r.region.X0)
	r.mask[i>>6] |= 1 << uint(i&63)
}

// Pixels returns a snapshot of the pixels marked so far.
// Later drawing calls do not affect the returned value.
func (r *Rasterizer) Pixels() *Pixels {
	p := &Pixels{
		region: r.region,
		bits:   slices.Clone(r.mask),
	}
	for _, w := range p.bits {
		p.n += bits.OnesCount64(w)
	}
	return p
}

// setRun marks the pixels xLo..xHi (inclusive) of row y.
func (r *Rasterizer) setRun(y, xLo, xHi int) {
	reg := r.region
	if y < reg.Y0 || y > reg.yMax() {
		return
	}
	xLo = max(xLo, reg.X0)
	xHi = min(xHi, reg.xMax())
	if xLo > xHi {
		return
	}
	base := (y - reg.Y0) * reg.Width
	setBits(r.mask, base+xLo-reg.X0, base+xHi-reg.X0)
}

// setColumn marks the pixels yLo..yHi (inclusive) of column x.
func (r *Rasterizer) setColumn(x, yLo, yHi int) {
	reg := r.region
	if x < reg.X0 || x > reg.xMax() {
		return
	}
	yLo = max(yLo, reg.Y0)
	yHi = min(yHi, reg.yMax())
	for y := yLo; y <= yHi; y++ {
		r.Set(x, y)
	}
}

// setBits sets the bits a..b (inclusive) of mask.
func setBits(mask []uint64, a, b int) {
	for a <= b {
		w := a >> 6
		lo := uint(a & 63)
		hi := uint(63)
		if b>>6 == w {
			hi = uint(b & 63)
		}
		mask[w] |= (^uint64(0) >> (63 - hi)) &^ (uint64(1)<<lo - 1)
		a = (w + 1) << 6
	}
}

// roundHalfUp rounds to the nearest integer, with halves rounded towards
// positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
