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

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixstat/raster"
)

// TestCase defines a single rasterization scenario.
type TestCase struct {
	Name   string           // lowercase a-z, 0-9 and _ only
	Width  int              // canvas width in pixels
	Height int              // canvas height in pixels
	Prim   raster.Primitive // the shape to draw
}

// Region returns the canvas of the test case, with the origin at the
// top-left corner.
func (tc TestCase) Region() raster.Region {
	return raster.Region{Width: tc.Width, Height: tc.Height}
}

// Render draws the test case and returns the pixels hit.
func (tc TestCase) Render() *raster.Pixels {
	r := raster.NewRasterizer(tc.Region())
	r.Draw(tc.Prim)
	return r.Pixels()
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// regularPolygon returns the vertices of a regular n-gon with the given
// centre and circumradius, rounded to the pixel grid.
func regularPolygon(cx, cy, r float64, n int) raster.Polygon {
	c := pt(cx, cy)
	var p raster.Polygon
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		v := c.Add(pt(math.Cos(angle), math.Sin(angle)).Mul(r))
		p.Xs = append(p.Xs, int(math.Round(v.X)))
		p.Ys = append(p.Ys, int(math.Round(v.Y)))
	}
	return p
}

// triangle builds a triangular polygon.
func triangle(x1, y1, x2, y2, x3, y3 int) raster.Polygon {
	return raster.Polygon{Xs: []int{x1, x2, x3}, Ys: []int{y1, y2, y3}}
}
