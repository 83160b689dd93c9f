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
// Package density turns columns of data into binned and smoothed arrays,
// ready for plotting.
//
// The data flow is always the same: a [grid.Mapper] (or a pixel transform)
// assigns each sample to a bin, a [bin.Accumulator] reduces the samples of
// each bin to a single value, and an optional [kernel.Kernel] smooths the
// result.
package density

import (
	"fmt"
	"math"

	"seehuhn.de/go/pixstat"
	"seehuhn.de/go/pixstat/bin"
	"seehuhn.de/go/pixstat/grid"
	"seehuhn.de/go/pixstat/kernel"
)

// Histogram describes a one-dimensional, optionally smoothed histogram.
type Histogram struct {
	// Mapper assigns data values to bins.
	Mapper grid.Mapper

	// Combiner reduces the weights in each bin.  The zero value is
	// [bin.Count].
	Combiner bin.Combiner

	// Kernel smooths the binned values.  If this is nil, no smoothing is
	// done.
	Kernel *kernel.Kernel

	// Lo and Hi give the visible data range.  Only bins overlapping
	// [Lo, Hi] are returned.
	Lo, Hi float64

	// Workers is the number of goroutines used for binning.
	// If this is zero, GOMAXPROCS is used.
	Workers int
}

// Bars holds the values of consecutive histogram bins.
type Bars struct {
	Mapper grid.Mapper

	// First is the bin index of Values[0].
	First int

	// Values holds one value per bin.  Empty bins are 0 for extensive
	// combiners and NaN otherwise.
	Values []float64
}

// Bounds returns the data range of the k-th bar.
func (b *Bars) Bounds(k int) (lo, hi float64) {
	return b.Mapper.Bounds(b.First + k)
}

// Compute bins the values xs.  Each sample contributes weights[i] to its
// bin, or 1 if weights is nil.
//
// Bins within the kernel extent outside the visible range are accumulated
// as well, so that the smoothed values near the edges of the range see all
// the data which contributes to them.
func (h *Histogram) Compute(xs, weights []float64) (*Bars, error) {
	if weights != nil && len(weights) != len(xs) {
		return nil, fmt.Errorf("%w: %d weights for %d values",
			pixstat.ErrInvalidArgument, len(weights), len(xs))
	}
	ilo, ihi := h.Mapper.Range(h.Lo, h.Hi)
	if ilo == grid.NoIndex {
		return nil, fmt.Errorf("%w: range [%g, %g] not representable on %s",
			pixstat.ErrInvalidArgument, h.Lo, h.Hi, h.Mapper)
	}
	k := h.Kernel
	if k == nil {
		k = kernel.Delta
	}
	c := h.Combiner

	ext := k.Extent()
	first := ilo - ext
	size := int64(ihi-ilo+1) + 2*int64(ext)
	if size > bin.DenseLimit {
		return nil, fmt.Errorf("%w: %d histogram bins", pixstat.ErrInvalidArgument, size)
	}
	pixstat.Logger().Debug("histogram",
		"mapper", h.Mapper.String(),
		"bins", ihi-ilo+1,
		"padding", ext,
		"combiner", c.Name(),
		"kernel", k.String())

	acc := bin.AccumulateParallel(c, size, len(xs), h.Workers,
		func(a *bin.Accumulator, lo, hi int) {
			for i := lo; i < hi; i++ {
				idx := h.Mapper.IndexOf(xs[i])
				if idx == grid.NoIndex {
					continue
				}
				w := 1.0
				if weights != nil {
					w = weights[i]
				}
				a.Submit(int64(idx-first), w)
			}
		})

	typ := c.Type()
	values := acc.Finalize().Values(math.NaN())
	for j, v := range values {
		if math.IsNaN(v) && typ.IsExtensive() {
			v = 0
		}
		if typ == bin.DensityType {
			lo, hi := h.Mapper.Bounds(first + j)
			v *= typ.BinFactor(hi - lo)
		}
		values[j] = v
	}

	return &Bars{
		Mapper: h.Mapper,
		First:  ilo,
		Values: kernel.Unpad(k.Convolve(values), ext),
	}, nil
}
