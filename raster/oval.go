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
	"math"
)

// DrawOval marks the outline of the axis-aligned ellipse inscribed in the
// box [x, x+w] × [y, y+h] (both ends inclusive).
//
// The curve is walked twice, once by columns starting at the top and bottom
// and once by rows starting at the left and right, and every point found is
// reflected into all four quadrants.  Each walk stops once the curve has
// become too steep for its scan direction, since the other walk covers the
// remaining part without gaps.
//
// If w or h is zero, the degenerate ellipse is drawn as a line.
// Nothing is drawn if w or h is negative.
func (r *Rasterizer) DrawOval(x, y, w, h int) {
	if w < 0 || h < 0 || r.region.missesBox(x, y, x+w, y+h) {
		return
	}
	if w == 0 || h == 0 {
		r.DrawLine(x, y, x+w, y+h)
		return
	}

	a := float64(w) / 2
	b := float64(h) / 2

	// Walk the columns from the centre outwards.  j is the distance of the
	// curve from the top of the box.
	prev := -1
	for i := w / 2; i >= 0; i-- {
		dx := (a - float64(i)) / a
		j := roundHalfUp(b - b*math.Sqrt(max(0, 1-dx*dx)))
		r.mark4(x, y, w, h, i, j)
		if prev >= 0 && j-prev > 1 {
			break
		}
		prev = j
	}

	// Walk the rows from the middle outwards.  i is the distance of the
	// curve from the left of the box.
	prev = -1
	for j := h / 2; j >= 0; j-- {
		dy := (b - float64(j)) / b
		i := roundHalfUp(a - a*math.Sqrt(max(0, 1-dy*dy)))
		r.mark4(x, y, w, h, i, j)
		if prev >= 0 && i-prev > 1 {
			break
		}
		prev = i
	}
}

// mark4 marks the four reflections of the point at offset (i, j) from the
// top-left corner of the box with size w×h at (x, y).
func (r *Rasterizer) mark4(x, y, w, h, i, j int) {
	r.Set(x+i, y+j)
	r.Set(x+w-i, y+j)
	r.Set(x+i, y+h-j)
	r.Set(x+w-i, y+h-j)
}

// FillOval marks all pixels inside or on the axis-aligned ellipse inscribed
// in the box [x, x+w] × [y, y+h].  Each row is filled as a single span.
// Ovals with zero area mark nothing.
func (r *Rasterizer) FillOval(x, y, w, h int) {
	if w <= 0 || h <= 0 || r.region.missesBox(x, y, x+w, y+h) {
		return
	}

	a := float64(w) / 2
	b := float64(h) / 2
	cx := float64(x) + a
	yLo := max(y, r.region.Y0)
	yHi := min(y+h, r.region.yMax())
	for py := yLo; py <= yHi; py++ {
		v := (float64(py-y) - b) / b
		rem := 1 + containsTolerance - v*v
		if rem < 0 {
			continue
		}
		hw := a * math.Sqrt(rem)
		r.setRun(py, int(math.Ceil(cx-hw)), int(math.Floor(cx+hw)))
	}
}

// Oval is an axis-aligned ellipse inscribed in the box [X, X+W] × [Y, Y+H].
type Oval struct {
	X, Y, W, H int
	Filled     bool
}

// Bounds implements the [Shape] interface.
func (o Oval) Bounds() Box {
	return Box{XMin: o.X, YMin: o.Y, XMax: o.X + o.W, YMax: o.Y + o.H}
}

// Contains implements the [Shape] interface.
// The outline flag is ignored; Contains always describes the filled oval.
func (o Oval) Contains(px, py int) bool {
	if o.W <= 0 || o.H <= 0 {
		return false
	}
	a := float64(o.W) / 2
	b := float64(o.H) / 2
	u := (float64(px-o.X) - a) / a
	v := (float64(py-o.Y) - b) / b
	return u*u+v*v <= 1+containsTolerance
}
