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

var rectCases = []TestCase{
	{
		Name:   "filled",
		Width:  64,
		Height: 64,
		Prim:   raster.Rect{X: 10, Y: 12, W: 44, H: 30, Filled: true},
	},
	{
		Name:   "outline",
		Width:  64,
		Height: 64,
		Prim:   raster.Rect{X: 10, Y: 12, W: 44, H: 30},
	},
}

var ovalCases = []TestCase{
	{
		Name:   "circle_outline",
		Width:  64,
		Height: 64,
		Prim:   raster.Oval{X: 12, Y: 12, W: 40, H: 40},
	},
	{
		Name:   "circle_filled",
		Width:  64,
		Height: 64,
		Prim:   raster.Oval{X: 12, Y: 12, W: 40, H: 40, Filled: true},
	},
	{
		Name:   "wide_outline",
		Width:  64,
		Height: 64,
		Prim:   raster.Oval{X: 2, Y: 24, W: 59, H: 15},
	},
	{
		Name:   "tall_filled",
		Width:  64,
		Height: 64,
		Prim:   raster.Oval{X: 25, Y: 1, W: 13, H: 61, Filled: true},
	},
	{
		Name:   "tiny_outline",
		Width:  16,
		Height: 16,
		Prim:   raster.Oval{X: 6, Y: 6, W: 3, H: 2},
	},
}

var ellipseCases = []TestCase{
	{
		Name:   "rotated_outline",
		Width:  64,
		Height: 64,
		Prim:   raster.Ellipse{CX: 32, CY: 32, AX: 20, AY: 12, BX: -6, BY: 10},
	},
	{
		Name:   "rotated_filled",
		Width:  64,
		Height: 64,
		Prim:   raster.Ellipse{CX: 32, CY: 32, AX: 20, AY: 12, BX: -6, BY: 10, Filled: true},
	},
	{
		Name:   "aligned_filled",
		Width:  64,
		Height: 64,
		Prim:   raster.Ellipse{CX: 32, CY: 32, AX: 25, BY: 9, Filled: true},
	},
	{
		Name:   "skewed_outline",
		Width:  64,
		Height: 64,
		Prim:   raster.Ellipse{CX: 30, CY: 34, AX: 24, AY: 3, BX: 15, BY: 16},
	},
}

var polygonCases = []TestCase{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Prim:   triangle(10, 50, 32, 10, 54, 50),
	},
	{
		Name:   "triangle_reversed",
		Width:  64,
		Height: 64,
		Prim:   triangle(54, 50, 32, 10, 10, 50),
	},
	{
		Name:   "pentagon",
		Width:  64,
		Height: 64,
		Prim:   regularPolygon(32, 32, 25, 5),
	},
	{
		Name:   "octagon",
		Width:  64,
		Height: 64,
		Prim:   regularPolygon(32, 32, 28, 8),
	},
	{
		Name:   "diamond",
		Width:  64,
		Height: 64,
		Prim:   raster.Polygon{Xs: []int{32, 60, 32, 4}, Ys: []int{4, 32, 60, 32}},
	},
	{
		Name:   "sliver",
		Width:  64,
		Height: 64,
		Prim:   triangle(1, 1, 62, 5, 61, 7),
	},
}
