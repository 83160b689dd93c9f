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

// containsTolerance absorbs rounding errors in the implicit inequalities of
// curved shapes, so that lattice points exactly on the boundary are
// consistently treated as inside.
const containsTolerance = 1e-9

// Box is an axis-aligned box of pixels, with both ends inclusive.
type Box struct {
	XMin, YMin int
	XMax, YMax int
}

// Shape is a region of the plane which can be tested pixel by pixel.
type Shape interface {
	// Bounds returns a box containing all pixels of the shape.
	Bounds() Box

	// Contains reports whether the lattice point (x, y) lies inside the
	// shape or on its boundary.
	Contains(x, y int) bool
}

// Fill marks every pixel of the region for which s.Contains returns true.
//
// This tests every pixel of the bounding box and is much slower than the
// specialised methods like [Rasterizer.FillOval].  It is meant for shapes
// which have no specialised method.
func (r *Rasterizer) Fill(s Shape) {
	b := s.Bounds()
	reg := r.region
	if reg.missesBox(b.XMin, b.YMin, b.XMax, b.YMax) {
		return
	}
	xLo := max(b.XMin, reg.X0)
	xHi := min(b.XMax, reg.xMax())
	yLo := max(b.YMin, reg.Y0)
	yHi := min(b.YMax, reg.yMax())
	for y := yLo; y <= yHi; y++ {
		for x := xLo; x <= xHi; x++ {
			if s.Contains(x, y) {
				r.Set(x, y)
			}
		}
	}
}
