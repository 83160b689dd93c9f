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
// Package shape draws plot markers and error glyphs into a
// [raster.Rasterizer].
//
// Glyphs are given in pixel offsets relative to the data point.  Offsets
// computed from data can be arbitrarily large, so every glyph is clamped to
// an approximate visible size before it reaches the rasterizer.
package shape

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixstat/raster"
)

// Glyph is one of the marker types [Point], [Cross], [Square], [Circle],
// [Triangle], [ErrorBars], [ErrorEllipse] and [Vector].
type Glyph interface {
	isGlyph()
}

// Point marks the single pixel at the data position.
type Point struct{}

// Cross is an upright plus sign whose arms extend Size pixels from the
// centre.
type Cross struct {
	Size int
}

// Square is a square of side 2·Size+1 centred on the data position.
type Square struct {
	Size   int
	Filled bool
}

// Circle is a circle of the given radius.
type Circle struct {
	Radius int
	Filled bool
}

// Triangle is an upward-pointing triangle with apex (0, -Size) and base
// corners (±Size, Size).
type Triangle struct {
	Size   int
	Filled bool
}

// ErrorBars draws a line from the centre to every offset.
// If Cap is positive, a perpendicular bar of half-length Cap is drawn at the
// end of each line which was not shortened by clamping.
type ErrorBars struct {
	Offsets []image.Point
	Cap     int
}

// ErrorEllipse draws the ellipse through four extreme points.
// Offsets[0] and Offsets[1] are the ends of the first axis, Offsets[2] and
// Offsets[3] the ends of the second axis.  If Crosshair is set, both axes
// are drawn as well.
type ErrorEllipse struct {
	Offsets   [4]image.Point
	Filled    bool
	Crosshair bool
}

// Vector is an arrow from the centre to Tip.  If Head is positive, a filled
// arrow head of length Head is drawn at the tip.
type Vector struct {
	Tip  image.Point
	Head int
}

func (Point) isGlyph()        {}
func (Cross) isGlyph()        {}
func (Square) isGlyph()       {}
func (Circle) isGlyph()       {}
func (Triangle) isGlyph()     {}
func (ErrorBars) isGlyph()    {}
func (ErrorEllipse) isGlyph() {}
func (Vector) isGlyph()       {}

// Paint draws g centred on the pixel (x, y).
//
// Offsets longer than [ApproxVisibleSize] of the rasterizer's region are
// shortened first, so the cost of drawing does not depend on how far the
// glyph extends beyond the visible area.
func Paint(r *raster.Rasterizer, x, y int, g Glyph) {
	paint(r, x, y, g, ApproxVisibleSize(r.Region()))
}

// paint draws g centred on (x, y), with offsets clamped to limit.
func paint(r *raster.Rasterizer, x, y int, g Glyph, limit int) {
	switch g := g.(type) {
	case Point:
		r.Set(x, y)

	case Cross:
		s := min(g.Size, limit)
		if s < 0 {
			return
		}
		r.DrawLine(x-s, y, x+s, y)
		r.DrawLine(x, y-s, x, y+s)

	case Square:
		s := min(g.Size, limit)
		if s < 0 {
			return
		}
		if g.Filled {
			r.FillRect(x-s, y-s, 2*s+1, 2*s+1)
		} else {
			r.DrawRect(x-s, y-s, 2*s, 2*s)
		}

	case Circle:
		s := min(g.Radius, limit)
		if g.Filled {
			r.FillOval(x-s, y-s, 2*s, 2*s)
		} else {
			r.DrawOval(x-s, y-s, 2*s, 2*s)
		}

	case Triangle:
		s := min(g.Size, limit)
		if s < 0 {
			return
		}
		xs := []int{x, x + s, x - s}
		ys := []int{y - s, y + s, y + s}
		if g.Filled {
			r.FillPolygon(xs, ys)
		} else {
			drawClosed(r, xs, ys)
		}

	case ErrorBars:
		for _, off := range g.Offsets {
			if off == (image.Point{}) {
				continue
			}
			end, clipped := ClampOffset(off, limit)
			r.DrawLine(x, y, x+end.X, y+end.Y)
			if g.Cap > 0 && !clipped {
				drawCap(r, x+end.X, y+end.Y, end, g.Cap)
			}
		}

	case ErrorEllipse:
		var o [4]image.Point
		for i, off := range g.Offsets {
			o[i], _ = ClampOffset(off, limit)
		}
		paintEllipse(r, x, y, o, g.Filled)
		if g.Crosshair {
			r.DrawLine(x+o[1].X, y+o[1].Y, x+o[0].X, y+o[0].Y)
			r.DrawLine(x+o[3].X, y+o[3].Y, x+o[2].X, y+o[2].Y)
		}

	case Vector:
		if g.Tip == (image.Point{}) {
			r.Set(x, y)
			return
		}
		tip, _ := ClampOffset(g.Tip, limit)
		r.DrawLine(x, y, x+tip.X, y+tip.Y)
		if g.Head > 0 {
			xs, ys := arrowHead(x, y, tip, min(g.Head, limit))
			r.FillPolygon(xs, ys)
		}

	default:
		panic("shape: unknown glyph")
	}
}

// paintEllipse draws the ellipse through the four extreme points o, given
// relative to (x, y).  Axis-aligned ellipses use the oval primitives.
func paintEllipse(r *raster.Rasterizer, x, y int, o [4]image.Point, filled bool) {
	if o[0].Y == 0 && o[1].Y == 0 && o[2].X == 0 && o[3].X == 0 {
		x0 := min(o[0].X, o[1].X)
		y0 := min(o[2].Y, o[3].Y)
		w := abs(o[0].X - o[1].X)
		h := abs(o[2].Y - o[3].Y)
		if filled {
			r.FillOval(x+x0, y+y0, w, h)
		} else {
			r.DrawOval(x+x0, y+y0, w, h)
		}
		return
	}

	cx := x + (o[0].X+o[1].X)/2
	cy := y + (o[0].Y+o[1].Y)/2
	ax := (o[0].X - o[1].X) / 2
	ay := (o[0].Y - o[1].Y) / 2
	bx := (o[2].X - o[3].X) / 2
	by := (o[2].Y - o[3].Y) / 2
	if filled {
		r.FillEllipse(cx, cy, ax, ay, bx, by)
	} else {
		r.DrawEllipse(cx, cy, ax, ay, bx, by)
	}
}

// drawCap draws a bar of half-length c through (x, y), perpendicular to
// the direction d.
func drawCap(r *raster.Rasterizer, x, y int, d image.Point, c int) {
	switch {
	case d.X == 0:
		r.DrawLine(x-c, y, x+c, y)
	case d.Y == 0:
		r.DrawLine(x, y-c, x, y+c)
	default:
		t := toVec(d)
		n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(float64(c) / t.Length())
		dx := int(math.Round(n.X))
		dy := int(math.Round(n.Y))
		r.DrawLine(x-dx, y-dy, x+dx, y+dy)
	}
}

// arrowHead returns the corners of a triangular arrow head of length head,
// with its apex at (x, y) + tip.
func arrowHead(x, y int, tip image.Point, head int) ([]int, []int) {
	t := toVec(tip)
	t = t.Mul(1 / t.Length())
	n := vec.Vec2{X: -t.Y, Y: t.X}

	apex := vec.Vec2{X: float64(x + tip.X), Y: float64(y + tip.Y)}
	base := apex.Sub(t.Mul(float64(head)))
	half := n.Mul(float64(head) / 2)
	left := base.Add(half)
	right := base.Sub(half)

	xs := []int{x + tip.X, int(math.Round(left.X)), int(math.Round(right.X))}
	ys := []int{y + tip.Y, int(math.Round(left.Y)), int(math.Round(right.Y))}
	return xs, ys
}

func drawClosed(r *raster.Rasterizer, xs, ys []int) {
	n := len(xs)
	for i := range n {
		j := (i + 1) % n
		r.DrawLine(xs[i], ys[i], xs[j], ys[j])
	}
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
