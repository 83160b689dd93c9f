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
	"cmp"
	"math"
	"slices"
)

// edge represents a non-horizontal polygon side in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// spanEps widens the scanline spans so that vertices and boundary points
// with integer coordinates are included despite rounding.
const spanEps = 1e-9

// FillPolygon marks all pixels inside or on the boundary of the convex
// polygon with vertices (xs[i], ys[i]).
//
// The polygon is scanned row by row.  For each row, the x-intercepts of the
// active edges are computed from the precomputed inverse slopes and the span
// between the leftmost and rightmost intercept is marked.  Horizontal edges
// are skipped, since the adjacent edges already cover their end points.
//
// Polygons with fewer than three vertices or with zero area mark nothing.
// The result for non-convex polygons is the row-wise convex hull.
func (r *Rasterizer) FillPolygon(xs, ys []int) {
	n := min(len(xs), len(ys))
	if n < 3 || twiceArea(xs[:n], ys[:n]) == 0 {
		return
	}

	b := polygonBox(xs[:n], ys[:n])
	reg := r.region
	if reg.missesBox(b.XMin, b.YMin, b.XMax, b.YMax) {
		return
	}

	r.edges = r.edges[:0]
	for i := range n {
		j := (i + 1) % n
		if ys[i] == ys[j] {
			continue
		}
		x0, y0 := float64(xs[i]), float64(ys[i])
		x1, y1 := float64(xs[j]), float64(ys[j])
		r.edges = append(r.edges, edge{
			x0: x0, y0: y0,
			x1: x1, y1: y1,
			dxdy: (x1 - x0) / (y1 - y0),
		})
	}
	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.activeIdx = r.activeIdx[:0]
	nextEdge := 0
	yLo := max(b.YMin, reg.Y0)
	yHi := min(b.YMax, reg.yMax())
	for y := yLo; y <= yHi; y++ {
		yf := float64(y)

		for nextEdge < len(r.edges) && r.edges[nextEdge].yMin() <= yf {
			r.activeIdx = append(r.activeIdx, nextEdge)
			nextEdge++
		}

		xl := math.Inf(1)
		xr := math.Inf(-1)
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if e.yMax() < yf {
				// Remove from active list (swap with last)
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			x := e.x0 + e.dxdy*(yf-e.y0)
			xl = min(xl, x)
			xr = max(xr, x)
			i++
		}
		if xl > xr {
			continue
		}
		r.setRun(y, int(math.Ceil(xl-spanEps)), int(math.Floor(xr+spanEps)))
	}
}

// Polygon is a convex polygon.
type Polygon struct {
	Xs, Ys []int
}

// Bounds implements the [Shape] interface.
func (p Polygon) Bounds() Box {
	n := min(len(p.Xs), len(p.Ys))
	if n == 0 {
		return Box{XMin: 0, YMin: 0, XMax: -1, YMax: -1}
	}
	return polygonBox(p.Xs[:n], p.Ys[:n])
}

// Contains implements the [Shape] interface.
// The test uses exact integer arithmetic.
func (p Polygon) Contains(px, py int) bool {
	n := min(len(p.Xs), len(p.Ys))
	if n < 3 {
		return false
	}
	area := twiceArea(p.Xs[:n], p.Ys[:n])
	if area == 0 {
		return false
	}
	for i := range n {
		j := (i + 1) % n
		c := (p.Xs[j]-p.Xs[i])*(py-p.Ys[i]) - (p.Ys[j]-p.Ys[i])*(px-p.Xs[i])
		if area > 0 && c < 0 || area < 0 && c > 0 {
			return false
		}
	}
	return true
}

// twiceArea returns twice the signed area of the polygon.
func twiceArea(xs, ys []int) int {
	a := 0
	n := len(xs)
	for i := range n {
		j := (i + 1) % n
		a += xs[i]*ys[j] - xs[j]*ys[i]
	}
	return a
}

func polygonBox(xs, ys []int) Box {
	b := Box{XMin: xs[0], YMin: ys[0], XMax: xs[0], YMax: ys[0]}
	for i := 1; i < len(xs); i++ {
		b.XMin = min(b.XMin, xs[i])
		b.XMax = max(b.XMax, xs[i])
		b.YMin = min(b.YMin, ys[i])
		b.YMax = max(b.YMax, ys[i])
	}
	return b
}
