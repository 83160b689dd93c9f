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

// DrawLine marks an 8-connected line from (x0, y0) to (x1, y1), both
// endpoints included.
//
// The line advances one pixel per step along its major axis (the one with
// the larger extent); the coordinate on the minor axis is rounded to the
// nearest integer.  Only the part of the major axis inside the region is
// walked, so very long lines cost no more than the region size.
func (r *Rasterizer) DrawLine(x0, y0, x1, y1 int) {
	reg := r.region
	if reg.missesBox(min(x0, x1), min(y0, y1), max(x0, x1), max(y0, y1)) {
		return
	}

	switch {
	case y0 == y1:
		r.setRun(y0, min(x0, x1), max(x0, x1))
	case x0 == x1:
		r.setColumn(x0, min(y0, y1), max(y0, y1))
	case abs(x1-x0) >= abs(y1-y0):
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		slope := float64(y1-y0) / float64(x1-x0)
		xLo := max(x0, reg.X0)
		xHi := min(x1, reg.xMax())
		for x := xLo; x <= xHi; x++ {
			r.Set(x, y0+roundHalfUp(slope*float64(x-x0)))
		}
	default:
		if y0 > y1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		slope := float64(x1-x0) / float64(y1-y0)
		yLo := max(y0, reg.Y0)
		yHi := min(y1, reg.yMax())
		for y := yLo; y <= yHi; y++ {
			r.Set(x0+roundHalfUp(slope*float64(y-y0)), y)
		}
	}
}

// FillRect marks the pixels x <= px < x+w, y <= py < y+h.
// Nothing is marked if w or h is not positive.
func (r *Rasterizer) FillRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	yLo := max(y, r.region.Y0)
	yHi := min(y+h-1, r.region.yMax())
	for py := yLo; py <= yHi; py++ {
		r.setRun(py, x, x+w-1)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
