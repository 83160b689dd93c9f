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
	"math"

	"seehuhn.de/go/geom/rect"
)

// Region is an axis-aligned rectangle of pixels.  The pixels belonging to
// the region are those with X0 <= x < X0+Width and Y0 <= y < Y0+Height.
type Region struct {
	X0, Y0        int
	Width, Height int
}

// Empty reports whether the region contains no pixels.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the pixel (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X0+r.Width && y >= r.Y0 && y < r.Y0+r.Height
}

// Bounds returns the region as an image rectangle.
func (r Region) Bounds() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(r.X0, r.Y0, r.X0+r.Width, r.Y0+r.Height)
}

// Clip returns the region as a device-space clip rectangle.
func (r Region) Clip() rect.Rect {
	return rect.Rect{
		LLx: float64(r.X0),
		LLy: float64(r.Y0),
		URx: float64(r.X0 + max(r.Width, 0)),
		URy: float64(r.Y0 + max(r.Height, 0)),
	}
}

// RegionFromRect returns the smallest region which covers the given
// device-space rectangle.
func RegionFromRect(c rect.Rect) Region {
	x0 := int(math.Floor(c.LLx))
	y0 := int(math.Floor(c.LLy))
	x1 := int(math.Ceil(c.URx))
	y1 := int(math.Ceil(c.URy))
	if x1 < x0 || y1 < y0 {
		return Region{X0: x0, Y0: y0}
	}
	return Region{X0: x0, Y0: y0, Width: x1 - x0, Height: y1 - y0}
}

// xMax and yMax return the last valid coordinate (inclusive).
func (r Region) xMax() int { return r.X0 + r.Width - 1 }
func (r Region) yMax() int { return r.Y0 + r.Height - 1 }

// missesBox reports whether the inclusive box [xLo,xHi]×[yLo,yHi] lies
// completely outside the region.
func (r Region) missesBox(xLo, yLo, xHi, yHi int) bool {
	return r.Empty() || xHi < r.X0 || xLo > r.xMax() || yHi < r.Y0 || yLo > r.yMax()
}
