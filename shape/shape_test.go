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
package shape

import (
	"bytes"
	"image"
	"log/slog"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/pixstat"
	"seehuhn.de/go/pixstat/raster"
)

func TestApproxVisibleSize(t *testing.T) {
	cases := []struct {
		region raster.Region
		want   int
	}{
		{raster.Region{Width: 800, Height: 600}, 800},
		{raster.Region{X0: -10, Y0: 5, Width: 20, Height: 300}, 300},
		{raster.Region{Width: 1, Height: 1}, DummySize},
		{raster.Region{Width: 500, Height: 0}, DummySize},
	}
	for _, c := range cases {
		if got := ApproxVisibleSize(c.region); got != c.want {
			t.Errorf("%v: got %d, want %d", c.region, got, c.want)
		}
	}
}

func TestClampOffset(t *testing.T) {
	cases := []struct {
		in      image.Point
		limit   int
		want    image.Point
		clipped bool
	}{
		{image.Pt(5, 5), 10, image.Pt(5, 5), false},
		{image.Pt(-10, 10), 10, image.Pt(-10, 10), false},
		{image.Pt(100, 0), 10, image.Pt(10, 0), true},
		{image.Pt(-100, 0), 10, image.Pt(-10, 0), true},
		{image.Pt(0, -100), 10, image.Pt(0, -10), true},
		{image.Pt(100, 100), 10, image.Pt(10, 10), true},
		{image.Pt(-300, 400), 10, image.Pt(-8, 11), true},
	}
	for _, c := range cases {
		got, clipped := ClampOffset(c.in, c.limit)
		if got != c.want || clipped != c.clipped {
			t.Errorf("ClampOffset(%v, %d) = %v, %t, want %v, %t",
				c.in, c.limit, got, clipped, c.want, c.clipped)
		}
	}

	in := []image.Point{image.Pt(1, 2), image.Pt(1e9, 0)}
	out := ClampOffsets(in, 50)
	if out[0] != in[0] || out[1] != image.Pt(50, 0) || in[1].X != 1e9 {
		t.Errorf("ClampOffsets: got %v from %v", out, in)
	}
}

func TestClampPreservesDirection(t *testing.T) {
	for _, off := range []image.Point{
		image.Pt(123456, 7890), image.Pt(-5000, 3000), image.Pt(1, -1<<30),
	} {
		c, clipped := ClampOffset(off, 200)
		if !clipped {
			t.Fatalf("%v not clipped", off)
		}
		a0 := math.Atan2(float64(off.Y), float64(off.X))
		a1 := math.Atan2(float64(c.Y), float64(c.X))
		if math.Abs(a0-a1) > 0.01 {
			t.Errorf("%v: direction changed to %v", off, c)
		}
	}
}

func TestPaintCounts(t *testing.T) {
	cases := []struct {
		name string
		g    Glyph
		want int
	}{
		{"point", Point{}, 1},
		{"cross", Cross{Size: 3}, 13},
		{"cross_negative", Cross{Size: -2}, 0},
		{"square", Square{Size: 2}, 16},
		{"square_filled", Square{Size: 2, Filled: true}, 25},
		{"bars", ErrorBars{Offsets: []image.Point{{0, -5}, {0, 5}}}, 11},
		{"bars_capped", ErrorBars{Offsets: []image.Point{{0, -5}, {0, 5}}, Cap: 2}, 19},
		{"bars_zero", ErrorBars{Offsets: []image.Point{{0, 0}}}, 0},
		{"vector_zero", Vector{}, 1},
		{"vector_plain", Vector{Tip: image.Pt(0, 7)}, 8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := raster.NewRasterizer(raster.Region{Width: 50, Height: 50})
			Paint(r, 25, 25, c.g)
			if got := r.Pixels().Len(); got != c.want {
				t.Errorf("got %d pixels, want %d", got, c.want)
			}
		})
	}
}

func TestNegativeSizes(t *testing.T) {
	canvas := raster.Region{Width: 50, Height: 50}
	for _, g := range []Glyph{Cross{Size: -1}, Square{Size: -3}, Triangle{Size: -2}} {
		if n := Coverage(g, canvas).Len(); n != 0 {
			t.Errorf("%#v covers %d pixels", g, n)
		}
	}
}

func TestCircleMatchesRasterizer(t *testing.T) {
	region := raster.Region{Width: 40, Height: 40}
	for _, filled := range []bool{false, true} {
		r1 := raster.NewRasterizer(region)
		Paint(r1, 20, 20, Circle{Radius: 7, Filled: filled})

		r2 := raster.NewRasterizer(region)
		if filled {
			r2.FillOval(13, 13, 14, 14)
		} else {
			r2.DrawOval(13, 13, 14, 14)
		}
		if !samePixels(r1.Pixels(), r2.Pixels()) {
			t.Errorf("filled=%t: circle glyph differs from the oval", filled)
		}
	}
}

func TestErrorEllipse(t *testing.T) {
	canvas := raster.Region{Width: 100, Height: 100}

	aligned := ErrorEllipse{
		Offsets: [4]image.Point{{5, 0}, {-5, 0}, {0, 5}, {0, -5}},
		Filled:  true,
	}
	circle := Circle{Radius: 5, Filled: true}
	if !samePixels(Coverage(aligned, canvas), Coverage(circle, canvas)) {
		t.Error("axis-aligned error ellipse differs from circle")
	}

	rotated := ErrorEllipse{
		Offsets: [4]image.Point{{3, 4}, {-3, -4}, {-4, 3}, {4, -3}},
		Filled:  true,
	}
	p := Coverage(rotated, canvas)
	if p.Len() != Coverage(circle, canvas).Len() {
		t.Errorf("rotated circle has %d pixels", p.Len())
	}
	for pt := range p.All() {
		if pt.X*pt.X+pt.Y*pt.Y > 25 {
			t.Errorf("pixel %v outside the circle", pt)
		}
	}

	cross := rotated
	cross.Filled = false
	cross.Crosshair = true
	p = Coverage(cross, canvas)
	for _, pt := range []image.Point{{0, 0}, {3, 4}, {-4, 3}} {
		if !p.Contains(pt.X, pt.Y) {
			t.Errorf("crosshair misses %v", pt)
		}
	}
}

func TestTriangle(t *testing.T) {
	canvas := raster.Region{Width: 100, Height: 100}
	filled := Coverage(Triangle{Size: 4, Filled: true}, canvas)
	open := Coverage(Triangle{Size: 4}, canvas)
	if !filled.Contains(0, 0) || open.Contains(0, 0) {
		t.Error("wrong interior")
	}
	for pt := range open.All() {
		if pt.X < -4 || pt.X > 4 || pt.Y < -4 || pt.Y > 4 {
			t.Errorf("outline pixel %v outside the bounding box", pt)
		}
	}
	for _, pt := range []image.Point{{0, -4}, {4, 4}, {-4, 4}} {
		if !open.Contains(pt.X, pt.Y) {
			t.Errorf("missing corner %v", pt)
		}
	}
}

func TestVectorHead(t *testing.T) {
	p := Coverage(Vector{Tip: image.Pt(10, 0), Head: 3}, raster.Region{Width: 100, Height: 100})
	for _, pt := range []image.Point{{0, 0}, {10, 0}, {8, 1}, {8, -1}, {7, 2}, {7, -2}} {
		if !p.Contains(pt.X, pt.Y) {
			t.Errorf("missing pixel %v", pt)
		}
	}
	if p.Contains(5, 1) {
		t.Error("arrow shaft is too wide")
	}
}

func TestHugeGlyphs(t *testing.T) {
	canvas := raster.Region{Width: 100, Height: 100}

	bars := ErrorBars{Offsets: []image.Point{{0, 1 << 40}}, Cap: 3}
	p := Coverage(bars, canvas)
	if p.Len() != 101 {
		t.Errorf("clamped bar has %d pixels, want 101", p.Len())
	}
	for pt := range p.All() {
		if pt.X != 0 {
			t.Errorf("unexpected cap pixel %v", pt)
		}
	}

	r := raster.NewRasterizer(canvas)
	Paint(r, 50, 50, Circle{Radius: 1 << 40, Filled: true})
	Paint(r, 50, 50, ErrorEllipse{
		Offsets: [4]image.Point{{1 << 40, 1 << 39}, {-1 << 40, -1 << 39}, {-1 << 39, 1 << 40}, {1 << 39, -1 << 40}},
	})
	Paint(r, 50, 50, Vector{Tip: image.Pt(-1<<50, 1<<45), Head: 1 << 30})
	if r.Pixels().Len() != 100*100 {
		t.Errorf("huge filled circle covers %d pixels", r.Pixels().Len())
	}
}

func TestClampWarning(t *testing.T) {
	defer pixstat.SetLogger(nil)
	buf := &bytes.Buffer{}
	pixstat.SetLogger(slog.New(slog.NewTextHandler(buf, nil)))

	canvas := raster.Region{Width: 100, Height: 100}
	Coverage(Cross{Size: 5}, canvas)
	if buf.Len() != 0 {
		t.Errorf("unexpected log output %q", buf.String())
	}
	Coverage(Cross{Size: 5000}, canvas)
	if !strings.Contains(buf.String(), "glyph clamped") {
		t.Errorf("no warning in %q", buf.String())
	}
}

func TestPaintClipped(t *testing.T) {
	region := raster.Region{X0: 10, Y0: 10, Width: 5, Height: 5}
	r := raster.NewRasterizer(region)
	Paint(r, 10, 10, Square{Size: 3, Filled: true})
	Paint(r, 14, 14, Cross{Size: 10})
	for pt := range r.Pixels().All() {
		if !region.Contains(pt.X, pt.Y) {
			t.Errorf("pixel %v outside the region", pt)
		}
	}
	if r.Pixels().Len() != 25 {
		t.Errorf("got %d pixels", r.Pixels().Len())
	}
}

func samePixels(a, b *raster.Pixels) bool {
	if a.Len() != b.Len() {
		return false
	}
	for pt := range a.All() {
		if !b.Contains(pt.X, pt.Y) {
			return false
		}
	}
	return true
}
