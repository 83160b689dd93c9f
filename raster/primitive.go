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

// Primitive is one of the shapes the rasterizer can draw directly:
// [Line], [Rect], [Oval], [Ellipse] or [Polygon].
type Primitive interface {
	isPrimitive()
}

// Line is a line segment between two pixels, both ends included.
type Line struct {
	X0, Y0, X1, Y1 int
}

// Rect is an axis-aligned rectangle.  A filled rectangle covers the pixels
// X <= x < X+W, Y <= y < Y+H; an outline is drawn along the edges of the
// inclusive box [X, X+W] × [Y, Y+H].
type Rect struct {
	X, Y, W, H int
	Filled     bool
}

// Bounds implements the [Shape] interface.
func (r Rect) Bounds() Box {
	return Box{XMin: r.X, YMin: r.Y, XMax: r.X + r.W - 1, YMax: r.Y + r.H - 1}
}

// Contains implements the [Shape] interface.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

func (Line) isPrimitive()    {}
func (Rect) isPrimitive()    {}
func (Oval) isPrimitive()    {}
func (Ellipse) isPrimitive() {}
func (Polygon) isPrimitive() {}

// Draw renders p using the specialised method for its type.
// Polygons are always filled.
func (r *Rasterizer) Draw(p Primitive) {
	switch p := p.(type) {
	case Line:
		r.DrawLine(p.X0, p.Y0, p.X1, p.Y1)
	case Rect:
		if p.Filled {
			r.FillRect(p.X, p.Y, p.W, p.H)
		} else {
			r.DrawRect(p.X, p.Y, p.W, p.H)
		}
	case Oval:
		if p.Filled {
			r.FillOval(p.X, p.Y, p.W, p.H)
		} else {
			r.DrawOval(p.X, p.Y, p.W, p.H)
		}
	case Ellipse:
		if p.Filled {
			r.FillEllipse(p.CX, p.CY, p.AX, p.AY, p.BX, p.BY)
		} else {
			r.DrawEllipse(p.CX, p.CY, p.AX, p.AY, p.BX, p.BY)
		}
	case Polygon:
		r.FillPolygon(p.Xs, p.Ys)
	default:
		panic("raster: unknown primitive")
	}
}

// DrawRect marks the outline of the inclusive box [x, x+w] × [y, y+h].
// Nothing is drawn if w or h is negative.
func (r *Rasterizer) DrawRect(x, y, w, h int) {
	if w < 0 || h < 0 {
		return
	}
	r.setRun(y, x, x+w)
	r.setRun(y+h, x, x+w)
	r.setColumn(x, y, y+h)
	r.setColumn(x+w, y, y+h)
}
