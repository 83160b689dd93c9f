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

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  64,
		Height: 64,
		Prim:   raster.Line{X0: 5, Y0: 10, X1: 58, Y1: 10},
	},
	{
		Name:   "vertical",
		Width:  64,
		Height: 64,
		Prim:   raster.Line{X0: 30, Y0: 60, X1: 30, Y1: 2},
	},
	{
		Name:   "diagonal",
		Width:  64,
		Height: 64,
		Prim:   raster.Line{X0: 0, Y0: 0, X1: 63, Y1: 63},
	},
	{
		Name:   "shallow",
		Width:  64,
		Height: 64,
		Prim:   raster.Line{X0: 2, Y0: 40, X1: 61, Y1: 23},
	},
	{
		Name:   "steep",
		Width:  64,
		Height: 64,
		Prim:   raster.Line{X0: 50, Y0: 3, X1: 41, Y1: 60},
	},
}
