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
package testcases

import "seehuhn.de/go/pixstat/raster"

// degenerateCases contains shapes with zero length or zero area.
var degenerateCases = []TestCase{
	{
		Name:   "point_line",
		Width:  16,
		Height: 16,
		Prim:   raster.Line{X0: 7, Y0: 8, X1: 7, Y1: 8},
	},
	{
		Name:   "flat_oval_outline",
		Width:  16,
		Height: 16,
		Prim:   raster.Oval{X: 2, Y: 8, W: 11, H: 0},
	},
	{
		Name:   "flat_oval_filled",
		Width:  16,
		Height: 16,
		Prim:   raster.Oval{X: 2, Y: 8, W: 11, H: 0, Filled: true},
	},
	{
		Name:   "parallel_axes_outline",
		Width:  16,
		Height: 16,
		Prim:   raster.Ellipse{CX: 8, CY: 8, AX: 4, AY: 2, BX: -2, BY: -1},
	},
	{
		Name:   "parallel_axes_filled",
		Width:  16,
		Height: 16,
		Prim:   raster.Ellipse{CX: 8, CY: 8, AX: 4, AY: 2, BX: -2, BY: -1, Filled: true},
	},
	{
		Name:   "collinear_polygon",
		Width:  16,
		Height: 16,
		Prim:   triangle(1, 1, 5, 5, 9, 9),
	},
	{
		Name:   "empty_rect",
		Width:  16,
		Height: 16,
		Prim:   raster.Rect{X: 3, Y: 3, W: 0, H: 5, Filled: true},
	},
}
