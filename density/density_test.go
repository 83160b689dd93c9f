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
package density

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/floats"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pixstat"
	"seehuhn.de/go/pixstat/bin"
	"seehuhn.de/go/pixstat/grid"
	"seehuhn.de/go/pixstat/kernel"
	"seehuhn.de/go/pixstat/raster"
	"seehuhn.de/go/pixstat/shape"
)

func unitMapper(t *testing.T, width float64) grid.Mapper {
	t.Helper()
	m, err := grid.NewMapper(width, 0, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestHistogramCount(t *testing.T) {
	h := &Histogram{Mapper: unitMapper(t, 1), Lo: 0, Hi: 9.5}
	xs := []float64{0.5, 1.5, 1.5, 9.2, 20, -3, math.NaN()}
	bars, err := h.Compute(xs, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 2, 0, 0, 0, 0, 0, 0, 0, 1}
	if bars.First != 0 || !floats.Equal(bars.Values, want) {
		t.Errorf("got %d, %v, want 0, %v", bars.First, bars.Values, want)
	}
	if lo, hi := bars.Bounds(9); lo != 9 || hi != 10 {
		t.Errorf("bar 9 covers [%g, %g)", lo, hi)
	}
}

func TestHistogramSmoothing(t *testing.T) {
	k, err := kernel.NewFixed(kernel.Linear, 3)
	if err != nil {
		t.Fatal(err)
	}
	h := &Histogram{Mapper: unitMapper(t, 1), Kernel: k, Lo: 0, Hi: 9.5}

	bars, err := h.Compute([]float64{4.5, 4.5, 4.5, 5.5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := floats.Sum(bars.Values); math.Abs(got-4) > 1e-12 {
		t.Errorf("smoothing changed the total to %g", got)
	}
	if len(bars.Values) != 10 {
		t.Errorf("got %d bars", len(bars.Values))
	}

	// Data just outside the visible range leaks into the first bar.
	bars, err = h.Compute([]float64{-0.5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := bars.Values[0]; math.Abs(got-2.0/9) > 1e-12 {
		t.Errorf("edge bar is %g, want 2/9", got)
	}
	h.Kernel = nil
	bars, _ = h.Compute([]float64{-0.5}, nil)
	if bars.Values[0] != 0 {
		t.Errorf("unsmoothed edge bar is %g", bars.Values[0])
	}
}

func TestHistogramCombiners(t *testing.T) {
	h := &Histogram{Mapper: unitMapper(t, 0.5), Combiner: bin.Density, Lo: 0, Hi: 1.9}
	bars, err := h.Compute([]float64{0.1, 0.2, 1.2}, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{4, 0, 2, 0}
	if !floats.EqualApprox(bars.Values, want, 1e-12) {
		t.Errorf("density: got %v, want %v", bars.Values, want)
	}

	h.Combiner = bin.Mean
	bars, err = h.Compute([]float64{0.1, 0.2, 1.2}, []float64{2, 4, 7})
	if err != nil {
		t.Fatal(err)
	}
	if bars.Values[0] != 3 || bars.Values[2] != 7 || !math.IsNaN(bars.Values[1]) {
		t.Errorf("mean: got %v", bars.Values)
	}
}

func TestHistogramErrors(t *testing.T) {
	h := &Histogram{Mapper: unitMapper(t, 1), Lo: 0, Hi: 5}
	if _, err := h.Compute([]float64{1, 2}, []float64{1}); !errors.Is(err, pixstat.ErrInvalidArgument) {
		t.Errorf("length mismatch: got %v", err)
	}

	logMapper, err := grid.NewMapper(2, 0, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	h = &Histogram{Mapper: logMapper, Lo: -1, Hi: 5}
	if _, err := h.Compute(nil, nil); !errors.Is(err, pixstat.ErrInvalidArgument) {
		t.Errorf("negative log range: got %v", err)
	}
}

func TestPixelMap(t *testing.T) {
	p := &PixelMap{Region: raster.Region{Width: 10, Height: 10}}
	xs := []float64{1.2, 1.9, 5, -0.5, math.NaN(), 10}
	ys := []float64{3.7, 3.0, 5, 2, 1, 1}
	im, err := p.Compute(xs, ys, nil)
	if err != nil {
		t.Fatal(err)
	}
	if im.At(1, 3) != 2 || im.At(5, 5) != 1 || !math.IsNaN(im.At(0, 0)) {
		t.Errorf("got %g, %g, %g", im.At(1, 3), im.At(5, 5), im.At(0, 0))
	}
	if im.Result.Len() != 2 {
		t.Errorf("%d populated pixels, want 2", im.Result.Len())
	}
	if !math.IsNaN(im.At(-1, 3)) || im.Count(1, 3) != 2 || im.Count(20, 20) != 0 {
		t.Error("wrong pixel lookup")
	}

	vals := im.Values(0)
	if len(vals) != 100 || vals[3*10+1] != 2 {
		t.Errorf("wrong value export")
	}
}

func TestPixelMapCTM(t *testing.T) {
	p := &PixelMap{
		Region:   raster.Region{X0: 5, Y0: 5, Width: 20, Height: 20},
		CTM:      matrix.Scale(2, 2).Translate(1, 0),
		Combiner: bin.Sum,
	}
	if x, y, ok := p.Pixel(3, 4); !ok || x != 7 || y != 8 {
		t.Fatalf("Pixel(3, 4) = %d, %d, %t", x, y, ok)
	}
	if _, _, ok := p.Pixel(1e300, 0); ok {
		t.Error("huge coordinate has a pixel")
	}

	im, err := p.Compute([]float64{3, 3.2, 0}, []float64{4, 4.1, 0}, []float64{1.5, 2, 7})
	if err != nil {
		t.Fatal(err)
	}
	if im.At(7, 8) != 3.5 {
		t.Errorf("got %g, want 3.5", im.At(7, 8))
	}
	if im.Result.Len() != 1 {
		t.Error("point outside the region was counted")
	}
}

func TestPixelMapParallel(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	n := 5000
	xs := make([]float64, n)
	ys := make([]float64, n)
	vs := make([]float64, n)
	for i := range n {
		xs[i] = rng.NormFloat64()*8 + 16
		ys[i] = rng.NormFloat64()*8 + 16
		vs[i] = rng.Float64()
	}

	q, err := bin.Quantile(0.9)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []bin.Combiner{bin.Count, bin.Mean, bin.Median, q, bin.Max} {
		serial := &PixelMap{Region: raster.Region{Width: 32, Height: 32}, Combiner: c, Workers: 1}
		par := *serial
		par.Workers = 7
		a, err := serial.Compute(xs, ys, vs)
		if err != nil {
			t.Fatal(err)
		}
		b, err := par.Compute(xs, ys, vs)
		if err != nil {
			t.Fatal(err)
		}
		va := a.Values(-1)
		vb := b.Values(-1)
		if !floats.EqualApprox(va, vb, 1e-12) {
			t.Errorf("%s: parallel result differs", c)
		}
	}
}

func TestPixelMapErrors(t *testing.T) {
	p := &PixelMap{Region: raster.Region{Width: 10, Height: 10}}
	if _, err := p.Compute([]float64{1}, []float64{1, 2}, nil); !errors.Is(err, pixstat.ErrInvalidArgument) {
		t.Errorf("length mismatch: got %v", err)
	}
	p.Region = raster.Region{}
	if _, err := p.Compute(nil, nil, nil); !errors.Is(err, pixstat.ErrInvalidArgument) {
		t.Errorf("empty region: got %v", err)
	}
}

func TestShapeCoverage(t *testing.T) {
	s := &ShapeCoverage{
		PixelMap: PixelMap{Region: raster.Region{Width: 20, Height: 20}},
		Glyph:    shape.Cross{Size: 1},
	}
	im, err := s.Compute([]float64{5, 6, 0}, []float64{5, 5, 0}, nil)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		x, y int
		want float64
	}{
		{5, 5, 2},
		{6, 5, 2},
		{4, 5, 1},
		{7, 5, 1},
		{5, 4, 1},
		{6, 6, 1},
		{0, 0, 1},
		{1, 0, 1},
		{0, 1, 1},
	}
	for _, c := range cases {
		if got := im.At(c.x, c.y); got != c.want {
			t.Errorf("pixel (%d, %d): got %g, want %g", c.x, c.y, got, c.want)
		}
	}
	// 5 pixels for each full cross and 3 for the one clipped at the corner,
	// with 2 pixels shared.
	if im.Result.Len() != 5+5-2+3 {
		t.Errorf("%d pixels covered", im.Result.Len())
	}

	s.Glyph = shape.Square{Size: -1}
	im, err = s.Compute([]float64{5}, []float64{5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if im.Result.Len() != 0 {
		t.Error("empty glyph covers pixels")
	}
}

func TestGridMapDense(t *testing.T) {
	gm := &GridMap{
		X: unitMapper(t, 1), Y: unitMapper(t, 1),
		XLo: 0, XHi: 9.5, YLo: -5, YHi: 4.5,
		Combiner: bin.Sum,
	}
	res, err := gm.Compute(
		[]float64{2.5, 2.7, 9, 10, 3},
		[]float64{3.5, 3.2, -5, 0, 5},
		[]float64{1, 2, 4, 8, 16})
	if err != nil {
		t.Fatal(err)
	}
	if res.At(2, 3) != 3 || res.At(9, -5) != 4 || !math.IsNaN(res.At(10, 0)) {
		t.Errorf("got %g, %g, %g", res.At(2, 3), res.At(9, -5), res.At(10, 0))
	}

	var cells []Cell
	for c := range res.Cells() {
		cells = append(cells, c)
	}
	want := []Cell{{9, -5, 4}, {2, 3, 3}}
	if len(cells) != len(want) || cells[0] != want[0] || cells[1] != want[1] {
		t.Errorf("got cells %v, want %v", cells, want)
	}
}

func TestGridMapSparse(t *testing.T) {
	fine := unitMapper(t, 1e-6)
	gm := &GridMap{X: fine, Y: fine, XLo: 0, XHi: 1000, YLo: 0, YHi: 1000}
	xs := []float64{1.5, 1.5, 999.25, 500}
	ys := []float64{2.5, 2.5, 0.125, 500}
	res, err := gm.Compute(xs, ys, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Result.Size() <= bin.DenseLimit {
		t.Fatalf("domain of %d cells is not huge", res.Result.Size())
	}
	if res.Result.Len() != 3 {
		t.Errorf("%d populated cells, want 3", res.Result.Len())
	}
	if got := res.At(fine.IndexOf(1.5), fine.IndexOf(2.5)); got != 2 {
		t.Errorf("got %g, want 2", got)
	}
	// cells are ordered by row, then by column
	order := []int{2, 0, 3}
	n := 0
	for c := range res.Cells() {
		if n >= len(order) {
			t.Fatalf("too many cells")
		}
		k := order[n]
		if c.IX != fine.IndexOf(xs[k]) || c.IY != fine.IndexOf(ys[k]) {
			t.Errorf("cell %d is %v, want point %d", n, c, k)
		}
		n++
	}
	if n != 3 {
		t.Errorf("iterated over %d cells", n)
	}

	tooFine := unitMapper(t, 1e-12)
	gm = &GridMap{X: tooFine, Y: tooFine, XLo: 0, XHi: 1000, YLo: 0, YHi: 1000}
	if _, err := gm.Compute(nil, nil, nil); !errors.Is(err, pixstat.ErrInvalidArgument) {
		t.Errorf("overflowing grid: got %v", err)
	}
}
