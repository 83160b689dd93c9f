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

	"gonum.org/v1/gonum/mat"
	"seehuhn.de/go/geom/vec"
)

// Ellipse is a general ellipse with centre (CX, CY) and the two
// semi-axis vectors (AX, AY) and (BX, BY).  The axes need not be
// perpendicular; the ellipse is the image of the unit circle under the
// linear map with columns A and B.
type Ellipse struct {
	CX, CY int
	AX, AY int
	BX, BY int
	Filled bool
}

// quadForm represents the inequality a·dx² + b·dx·dy + c·dy² <= 1.
type quadForm struct {
	a, b, c float64
}

// form returns the quadratic form describing the ellipse relative to its
// centre.  The second return value is false if the ellipse has zero area.
func (e Ellipse) form() (quadForm, bool) {
	if e.AX*e.BY-e.AY*e.BX == 0 {
		return quadForm{}, false
	}

	// Points of the ellipse are d = M·(u,v) with u²+v² <= 1,
	// so the condition is dᵀ·M⁻ᵀ·M⁻¹·d <= 1.
	m := mat.NewDense(2, 2, []float64{
		float64(e.AX), float64(e.BX),
		float64(e.AY), float64(e.BY),
	})
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return quadForm{}, false
	}
	var q mat.Dense
	q.Mul(inv.T(), &inv)

	return quadForm{
		a: q.At(0, 0),
		b: q.At(0, 1) + q.At(1, 0),
		c: q.At(1, 1),
	}, true
}

// radii returns the half-widths of the bounding box of the ellipse.
func (e Ellipse) radii() (int, int) {
	rx := vec.Vec2{X: float64(e.AX), Y: float64(e.BX)}.Length()
	ry := vec.Vec2{X: float64(e.AY), Y: float64(e.BY)}.Length()
	return int(math.Ceil(rx)), int(math.Ceil(ry))
}

// Bounds implements the [Shape] interface.
func (e Ellipse) Bounds() Box {
	rx, ry := e.radii()
	return Box{XMin: e.CX - rx, YMin: e.CY - ry, XMax: e.CX + rx, YMax: e.CY + ry}
}

// Contains implements the [Shape] interface.
// The outline flag is ignored; Contains always describes the filled ellipse.
func (e Ellipse) Contains(px, py int) bool {
	q, ok := e.form()
	if !ok {
		return false
	}
	return q.contains(float64(px-e.CX), float64(py-e.CY))
}

func (q quadForm) contains(dx, dy float64) bool {
	return q.a*dx*dx+q.b*dx*dy+q.c*dy*dy <= 1+containsTolerance
}

// DrawEllipse marks the outline of the ellipse with centre (cx, cy) and
// semi-axis vectors (ax, ay) and (bx, by).
//
// For every column the two intersections with the ellipse are found by
// solving a quadratic equation, and the same is done for every row.
// If the axes are parallel, the ellipse degenerates and the axis segments
// are drawn instead.
func (r *Rasterizer) DrawEllipse(cx, cy, ax, ay, bx, by int) {
	e := Ellipse{CX: cx, CY: cy, AX: ax, AY: ay, BX: bx, BY: by}
	box := e.Bounds()
	reg := r.region
	if reg.missesBox(box.XMin, box.YMin, box.XMax, box.YMax) {
		return
	}

	q, ok := e.form()
	if !ok {
		r.DrawLine(cx-ax, cy-ay, cx+ax, cy+ay)
		r.DrawLine(cx-bx, cy-by, cx+bx, cy+by)
		return
	}

	// columns: c·dy² + b·dx·dy + (a·dx² - 1) = 0
	xLo := max(box.XMin, reg.X0)
	xHi := min(box.XMax, reg.xMax())
	for x := xLo; x <= xHi; x++ {
		dx := float64(x - cx)
		y1, y2, ok := solveQuadratic(q.c, q.b*dx, q.a*dx*dx-1)
		if !ok {
			continue
		}
		r.Set(x, cy+roundHalfUp(y1))
		r.Set(x, cy+roundHalfUp(y2))
	}

	// rows: a·dx² + b·dy·dx + (c·dy² - 1) = 0
	yLo := max(box.YMin, reg.Y0)
	yHi := min(box.YMax, reg.yMax())
	for y := yLo; y <= yHi; y++ {
		dy := float64(y - cy)
		x1, x2, ok := solveQuadratic(q.a, q.b*dy, q.c*dy*dy-1)
		if !ok {
			continue
		}
		r.Set(cx+roundHalfUp(x1), y)
		r.Set(cx+roundHalfUp(x2), y)
	}
}

// FillEllipse marks all pixels inside or on the ellipse with centre
// (cx, cy) and semi-axis vectors (ax, ay) and (bx, by).
// Ellipses with zero area mark nothing.
func (r *Rasterizer) FillEllipse(cx, cy, ax, ay, bx, by int) {
	e := Ellipse{CX: cx, CY: cy, AX: ax, AY: ay, BX: bx, BY: by, Filled: true}
	q, ok := e.form()
	if !ok {
		return
	}

	box := e.Bounds()
	reg := r.region
	xLo := max(box.XMin, reg.X0)
	xHi := min(box.XMax, reg.xMax())
	yLo := max(box.YMin, reg.Y0)
	yHi := min(box.YMax, reg.yMax())
	for y := yLo; y <= yHi; y++ {
		dy := float64(y - cy)
		for x := xLo; x <= xHi; x++ {
			if q.contains(float64(x-cx), dy) {
				r.Set(x, y)
			}
		}
	}
}

// solveQuadratic returns the real solutions of a·t² + b·t + c = 0, for a > 0.
// The last return value is false if the discriminant is negative.
func solveQuadratic(a, b, c float64) (float64, float64, bool) {
	disc := b*b - 4*a*c
	if disc < 0 || a <= 0 {
		return 0, 0, false
	}
	s := math.Sqrt(disc)
	return (-b - s) / (2 * a), (-b + s) / (2 * a), true
}
