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

// clipCases contains shapes which extend beyond the canvas.
var clipCases = []TestCase{
	{
		Name:   "long_line",
		Width:  32,
		Height: 32,
		Prim:   raster.Line{X0: -100000, Y0: -99990, X1: 100000, Y1: 100010},
	},
	{
		Name:   "oval_corner",
		Width:  32,
		Height: 32,
		Prim:   raster.Oval{X: 16, Y: 16, W: 40, H: 40, Filled: true},
	},
	{
		Name:   "oval_outline_overlap",
		Width:  32,
		Height: 32,
		Prim:   raster.Oval{X: -10, Y: 4, W: 52, H: 24},
	},
	{
		Name:   "ellipse_overlap",
		Width:  32,
		Height: 32,
		Prim:   raster.Ellipse{CX: 0, CY: 16, AX: 30, AY: 6, BX: -3, BY: 9, Filled: true},
	},
	{
		Name:   "polygon_overlap",
		Width:  32,
		Height: 32,
		Prim:   triangle(-20, 40, 16, -8, 50, 30),
	},
	{
		Name:   "rect_outside",
		Width:  32,
		Height: 32,
		Prim:   raster.Rect{X: 40, Y: 0, W: 10, H: 10, Filled: true},
	},
}
