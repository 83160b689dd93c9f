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
	"image"
	"image/color"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func collect(p *Pixels) []image.Point {
	return slices.Collect(p.All())
}

func TestDrawLineCount(t *testing.T) {
	cases := []struct {
		x0, y0, x1, y1 int
		want           int
	}{
		{0, 0, 5, 0, 6},
		{5, 0, 0, 0, 6},
		{3, 1, 3, 9, 9},
		{0, 0, 9, 9, 10},
		{0, 0, 9, 4, 10},
		{2, 19, 7, 0, 20},
		{4, 4, 4, 4, 1},
	}
	for _, c := range cases {
		r := NewRasterizer(Region{Width: 20, Height: 20})
		r.DrawLine(c.x0, c.y0, c.x1, c.y1)
		if got := r.Pixels().Len(); got != c.want {
			t.Errorf("DrawLine(%d,%d,%d,%d): %d pixels, want %d",
				c.x0, c.y0, c.x1, c.y1, got, c.want)
		}
	}
}

func TestDrawLineConnected(t *testing.T) {
	lines := [][4]int{
		{0, 0, 39, 13},
		{39, 13, 0, 0},
		{5, 39, 11, 0},
		{0, 20, 39, 19},
		{-50, -10, 90, 50},
	}
	for _, l := range lines {
		r := NewRasterizer(Region{Width: 40, Height: 40})
		r.DrawLine(l[0], l[1], l[2], l[3])
		pix := r.Pixels()
		for p := range pix.All() {
			if pix.Len() > 1 && countNeighbours(pix, p) == 0 {
				t.Errorf("line %v: pixel %v is isolated", l, p)
			}
		}
	}
}

func countNeighbours(pix *Pixels, p image.Point) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && pix.Contains(p.X+dx, p.Y+dy) {
				n++
			}
		}
	}
	return n
}

func TestDrawLineEndpoints(t *testing.T) {
	r := NewRasterizer(Region{Width: 30, Height: 30})
	r.DrawLine(3, 25, 27, 4)
	pix := r.Pixels()
	if !pix.Contains(3, 25) || !pix.Contains(27, 4) {
		t.Error("end points not included")
	}
}

func TestIdempotent(t *testing.T) {
	r := NewRasterizer(Region{Width: 32, Height: 32})
	r.FillOval(2, 2, 20, 14)
	n := r.Pixels().Len()

	r.FillOval(2, 2, 20, 14)
	r.FillRect(5, 5, 3, 3)
	pix := r.Pixels()
	if pix.Len() != n {
		t.Errorf("repeated drawing changed pixel count from %d to %d", n, pix.Len())
	}
	if got := len(collect(pix)); got != pix.Len() {
		t.Errorf("iterator returned %d pixels, Len is %d", got, pix.Len())
	}
}

func TestFillRect(t *testing.T) {
	r := NewRasterizer(Region{X0: 10, Y0: 10, Width: 10, Height: 10})
	r.FillRect(12, 13, 4, 3)
	if got := r.Pixels().Len(); got != 12 {
		t.Errorf("got %d pixels, want 12", got)
	}

	r.Reset(Region{X0: 10, Y0: 10, Width: 10, Height: 10})
	r.FillRect(0, 0, 15, 100)
	if got := r.Pixels().Len(); got != 50 {
		t.Errorf("clipped: got %d pixels, want 50", got)
	}

	r.Reset(Region{Width: 10, Height: 10})
	r.FillRect(2, 2, 0, 5)
	r.FillRect(2, 2, 5, -1)
	if got := r.Pixels().Len(); got != 0 {
		t.Errorf("empty rectangles: got %d pixels", got)
	}
}

func TestDrawRect(t *testing.T) {
	r := NewRasterizer(Region{Width: 20, Height: 20})
	r.DrawRect(2, 3, 5, 4)
	// 2·6 + 2·5 - 4 corners counted twice
	if got := r.Pixels().Len(); got != 18 {
		t.Errorf("got %d pixels, want 18", got)
	}
}

func TestDrawOvalCircle(t *testing.T) {
	r := NewRasterizer(Region{X0: -1, Y0: -1, Width: 23, Height: 23})
	r.DrawOval(0, 0, 20, 20)
	pix := r.Pixels()

	for _, p := range []image.Point{{0, 10}, {20, 10}, {10, 0}, {10, 20}} {
		if !pix.Contains(p.X, p.Y) {
			t.Errorf("extreme point %v missing", p)
		}
	}

	for p := range pix.All() {
		d := math.Hypot(float64(p.X-10), float64(p.Y-10))
		if math.Abs(d-10) >= 1 {
			t.Errorf("pixel %v is %.2f away from the centre", p, d)
		}
		if countNeighbours(pix, p) == 0 {
			t.Errorf("pixel %v is isolated", p)
		}
	}

	// every column is hit in the top and bottom half
	for x := 0; x <= 20; x++ {
		top, bottom := false, false
		for y := 0; y <= 20; y++ {
			if pix.Contains(x, y) {
				top = top || y <= 10
				bottom = bottom || y >= 10
			}
		}
		if !top || !bottom {
			t.Errorf("column %d has a gap", x)
		}
	}
}

func TestDrawOvalDegenerate(t *testing.T) {
	r := NewRasterizer(Region{Width: 20, Height: 20})
	r.DrawOval(3, 7, 10, 0)
	if got := r.Pixels().Len(); got != 11 {
		t.Errorf("flat oval: got %d pixels, want 11", got)
	}

	r.Reset(Region{Width: 20, Height: 20})
	r.DrawOval(3, 7, -1, 4)
	r.FillOval(3, 7, 10, 0)
	if got := r.Pixels().Len(); got != 0 {
		t.Errorf("got %d pixels, want 0", got)
	}
}

func TestFillOvalMatchesShape(t *testing.T) {
	for _, o := range []Oval{
		{X: 0, Y: 0, W: 20, H: 20},
		{X: 3, Y: 5, W: 17, H: 6},
		{X: -7, Y: 2, W: 30, H: 41},
		{X: 4, Y: 4, W: 1, H: 1},
	} {
		reg := Region{X0: -2, Y0: -2, Width: 30, Height: 30}
		a := NewRasterizer(reg)
		a.FillOval(o.X, o.Y, o.W, o.H)
		b := NewRasterizer(reg)
		b.Fill(o)
		if !slices.Equal(collect(a.Pixels()), collect(b.Pixels())) {
			t.Errorf("oval %v: FillOval and Fill differ", o)
		}
	}
}

func TestFillEllipseAxisAligned(t *testing.T) {
	reg := Region{Width: 40, Height: 40}
	a := NewRasterizer(reg)
	a.FillEllipse(20, 18, 12, 0, 0, 7)
	b := NewRasterizer(reg)
	b.FillOval(8, 11, 24, 14)
	if !slices.Equal(collect(a.Pixels()), collect(b.Pixels())) {
		t.Error("axis-aligned ellipse differs from oval")
	}
}

func TestFillEllipseCircle(t *testing.T) {
	r := NewRasterizer(Region{X0: -10, Y0: -10, Width: 21, Height: 21})
	r.FillEllipse(0, 0, 3, 4, -4, 3) // circle of radius 5
	pix := r.Pixels()
	want := 0
	for y := -5; y <= 5; y++ {
		for x := -5; x <= 5; x++ {
			if x*x+y*y <= 25 {
				want++
				if !pix.Contains(x, y) {
					t.Errorf("(%d,%d) missing", x, y)
				}
			}
		}
	}
	if pix.Len() != want {
		t.Errorf("got %d pixels, want %d", pix.Len(), want)
	}
}

func TestDrawEllipseOutline(t *testing.T) {
	e := Ellipse{CX: 30, CY: 30, AX: 20, AY: 12, BX: -6, BY: 10}
	r := NewRasterizer(Region{Width: 60, Height: 60})
	r.DrawEllipse(e.CX, e.CY, e.AX, e.AY, e.BX, e.BY)
	pix := r.Pixels()
	if pix.Len() == 0 {
		t.Fatal("no pixels")
	}

	q, ok := e.form()
	if !ok {
		t.Fatal("ellipse reported as degenerate")
	}
	for p := range pix.All() {
		dx := float64(p.X - e.CX)
		dy := float64(p.Y - e.CY)
		v := q.a*dx*dx + q.b*dx*dy + q.c*dy*dy
		if v < 0.7 || v > 1.4 {
			t.Errorf("pixel %v far from the outline (form value %.3f)", p, v)
		}
		if countNeighbours(pix, p) == 0 {
			t.Errorf("pixel %v is isolated", p)
		}
	}
}

func TestEllipseSingular(t *testing.T) {
	reg := Region{Width: 20, Height: 20}
	r := NewRasterizer(reg)
	r.FillEllipse(10, 10, 4, 2, -2, -1)
	if got := r.Pixels().Len(); got != 0 {
		t.Errorf("singular fill: got %d pixels", got)
	}

	r.DrawEllipse(10, 10, 4, 2, 0, 0)
	ref := NewRasterizer(reg)
	ref.DrawLine(6, 8, 14, 12)
	ref.Set(10, 10)
	if !slices.Equal(collect(r.Pixels()), collect(ref.Pixels())) {
		t.Error("singular outline is not the axis segment")
	}
}

func TestFillPolygon(t *testing.T) {
	cases := []struct {
		name   string
		xs, ys []int
		want   int
	}{
		{"square", []int{0, 4, 4, 0}, []int{0, 0, 4, 4}, 25},
		{"square_cw", []int{0, 0, 4, 4}, []int{0, 4, 4, 0}, 25},
		{"triangle", []int{0, 4, 0}, []int{0, 0, 4}, 15},
		{"diamond", []int{5, 8, 5, 2}, []int{2, 5, 8, 5}, 25},
		{"collinear", []int{0, 2, 4}, []int{0, 2, 4}, 0},
		{"two_points", []int{0, 4}, []int{0, 4}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewRasterizer(Region{Width: 20, Height: 20})
			r.FillPolygon(c.xs, c.ys)
			pix := r.Pixels()
			if pix.Len() != c.want {
				t.Errorf("got %d pixels, want %d", pix.Len(), c.want)
			}

			p := Polygon{Xs: c.xs, Ys: c.ys}
			for pt := range pix.All() {
				if !p.Contains(pt.X, pt.Y) {
					t.Errorf("pixel %v outside polygon", pt)
				}
			}
		})
	}
}

func TestFillPolygonMissesRegion(t *testing.T) {
	r := NewRasterizer(Region{Width: 10, Height: 10})
	r.FillPolygon([]int{20, 30, 25}, []int{0, 0, 8})
	if got := r.Pixels().Len(); got != 0 {
		t.Errorf("got %d pixels", got)
	}
}

func TestClipping(t *testing.T) {
	reg := Region{X0: 5, Y0: -3, Width: 12, Height: 9}
	r := NewRasterizer(reg)
	r.DrawLine(-1000, -1000, 1000, 1000)
	r.DrawOval(0, -10, 30, 30)
	r.FillEllipse(10, 0, 20, 3, 1, 8)
	r.FillPolygon([]int{-5, 40, 3}, []int{-20, 2, 30})
	r.FillRect(-100, -100, 1000, 2)
	r.Set(4, 0)
	r.Set(17, 0)

	for p := range r.Pixels().All() {
		if !reg.Contains(p.X, p.Y) {
			t.Errorf("pixel %v outside region", p)
		}
	}
}

func TestPixelsOrderAndBounds(t *testing.T) {
	r := NewRasterizer(Region{X0: -5, Y0: -5, Width: 70, Height: 10})
	r.Set(60, 2)
	r.Set(-5, -5)
	r.Set(3, 2)
	r.Set(10, 0)

	got := collect(r.Pixels())
	want := []image.Point{{-5, -5}, {10, 0}, {3, 2}, {60, 2}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	b := r.Pixels().Bounds()
	if b != image.Rect(-5, -5, 61, 3) {
		t.Errorf("wrong bounds %v", b)
	}
}

func TestPixelsSnapshot(t *testing.T) {
	r := NewRasterizer(Region{Width: 8, Height: 8})
	r.Set(1, 1)
	pix := r.Pixels()
	r.Set(2, 2)
	if pix.Len() != 1 || pix.Contains(2, 2) {
		t.Error("snapshot changed after drawing")
	}
}

func TestPaint(t *testing.T) {
	r := NewRasterizer(Region{X0: -2, Y0: -2, Width: 10, Height: 10})
	r.FillRect(-2, -2, 4, 4)
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	r.Pixels().Paint(img, color.White)

	n := 0
	for _, v := range img.Pix {
		if v == 255 {
			n++
		}
	}
	if n != 4 {
		t.Errorf("%d pixels painted, want 4", n)
	}
}

func TestReset(t *testing.T) {
	r := NewRasterizer(Region{Width: 100, Height: 100})
	r.FillRect(0, 0, 100, 100)
	r.Reset(Region{Width: 10, Height: 10})
	if got := r.Pixels().Len(); got != 0 {
		t.Errorf("%d pixels after reset", got)
	}

	r.Reset(Region{Width: -3, Height: 10})
	r.FillRect(0, 0, 10, 10)
	if got := r.Pixels().Len(); got != 0 {
		t.Errorf("%d pixels in empty region", got)
	}
}

func TestRegionFromRect(t *testing.T) {
	reg := RegionFromRect(rect.Rect{LLx: 0.5, LLy: -1.2, URx: 10, URy: 3.1})
	want := Region{X0: 0, Y0: -2, Width: 10, Height: 6}
	if reg != want {
		t.Errorf("got %v, want %v", reg, want)
	}
	if c := want.Clip(); c != (rect.Rect{LLx: 0, LLy: -2, URx: 10, URy: 4}) {
		t.Errorf("wrong clip rectangle %v", c)
	}
}
