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

package raster

import (
	"image"
	"image/color"
	"iter"
	"math/bits"

	"golang.org/x/image/draw"
)

// Pixels is an immutable set of pixels within a region, as produced by
// [Rasterizer.Pixels].
type Pixels struct {
	region Region
	bits   []uint64
	n      int
}

// Region returns the region the pixels were drawn in.
func (p *Pixels) Region() Region {
	return p.region
}

// Len returns the number of pixels in the set.
func (p *Pixels) Len() int {
	return p.n
}

// Contains reports whether the pixel (x, y) is in the set.
func (p *Pixels) Contains(x, y int) bool {
	if !p.region.Contains(x, y) {
		return false
	}
	i := (y-p.region.Y0)*p.region.Width + (x - p.region.X0)
	return p.bits[i>>6]&(1<<uint(i&63)) != 0
}

// All iterates over the pixels in row-major order.
// Every pixel is visited exactly once.
func (p *Pixels) All() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		width := p.region.Width
		for wi, w := range p.bits {
			for w != 0 {
				b := bits.TrailingZeros64(w)
				w &= w - 1

				i := wi<<6 + b
				pt := image.Point{
					X: p.region.X0 + i%width,
					Y: p.region.Y0 + i/width,
				}
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// Bounds returns the smallest rectangle containing all pixels of the set.
// The result is empty if the set is empty.
func (p *Pixels) Bounds() image.Rectangle {
	var b image.Rectangle
	first := true
	for pt := range p.All() {
		if first {
			b = image.Rectangle{Min: pt, Max: pt.Add(image.Point{X: 1, Y: 1})}
			first = false
			continue
		}
		b.Min.X = min(b.Min.X, pt.X)
		b.Max.X = max(b.Max.X, pt.X+1)
		b.Max.Y = pt.Y + 1 // rows are visited in increasing order
	}
	return b
}

// Paint sets every pixel of the set which lies inside dst to colour c.
func (p *Pixels) Paint(dst draw.Image, c color.Color) {
	b := dst.Bounds()
	for pt := range p.All() {
		if pt.In(b) {
			dst.Set(pt.X, pt.Y, c)
		}
	}
}
