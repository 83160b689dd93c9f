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
package grid

// Gridder combines the bin indices of two axes into a single index.
// Indices are stored in row-major order: ix varies fastest.
type Gridder struct {
	NX, NY int
}

// Len returns the number of cells of the grid.
func (g Gridder) Len() int {
	if g.NX <= 0 || g.NY <= 0 {
		return 0
	}
	return g.NX * g.NY
}

// Contains reports whether (ix, iy) is a cell of the grid.
func (g Gridder) Contains(ix, iy int) bool {
	return ix >= 0 && ix < g.NX && iy >= 0 && iy < g.NY
}

// Index returns the linear index of cell (ix, iy).
// The result is only meaningful if Contains(ix, iy) is true.
func (g Gridder) Index(ix, iy int) int {
	return ix + g.NX*iy
}

// XY is the inverse of [Gridder.Index].
func (g Gridder) XY(i int) (ix, iy int) {
	return i % g.NX, i / g.NX
}
