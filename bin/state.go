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
package bin

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// cell is the running state of one bin.
type cell struct {
	n      int64   // number of accepted submissions
	w      float64 // sum of weights
	s1, s2 float64 // weighted sums of values and squared values
	lo, hi float64 // smallest and largest value

	weighted bool     // whether any weight other than 1 was seen
	samples  []sample // retained values, only for order statistics
}

type sample struct {
	v, w float64
}

// submit adds the value v with weight w to the bin state.
// The caller has already checked that v and w are finite and w != 0.
func submit(c Combiner, s *cell, v, w float64) {
	first := s.n == 0
	s.n++

	switch c.kind {
	case KindCount, KindDensity, KindHit:
		// only the count is needed
	case KindSum, KindWeightedDensity:
		s.s1 += w * v
	case KindMean:
		s.w += w
		s.s1 += w * v
	case KindSampleStdev, KindPopulationStdev:
		s.w += w
		s.s1 += w * v
		s.s2 += w * v * v
	case KindMin:
		if first || v < s.lo {
			s.lo = v
		}
	case KindMax:
		if first || v > s.hi {
			s.hi = v
		}
	case KindMedian, KindQuantile:
		s.samples = append(s.samples, sample{v: v, w: w})
		if w != 1 {
			s.weighted = true
		}
	}
}

// merge adds the state src to dst.
func merge(c Combiner, dst, src *cell) {
	if src.n == 0 {
		return
	}
	first := dst.n == 0
	dst.n += src.n
	dst.w += src.w
	dst.s1 += src.s1
	dst.s2 += src.s2

	switch c.kind {
	case KindMin:
		if first || src.lo < dst.lo {
			dst.lo = src.lo
		}
	case KindMax:
		if first || src.hi > dst.hi {
			dst.hi = src.hi
		}
	case KindMedian, KindQuantile:
		dst.samples = append(dst.samples, src.samples...)
		dst.weighted = dst.weighted || src.weighted
	}
}

// value returns the combined value of a bin, or NaN if the bin is empty
// or the value is undefined.  For order statistics the retained samples
// are sorted in place.
func value(c Combiner, s *cell) float64 {
	if s.n == 0 {
		return math.NaN()
	}

	switch c.kind {
	case KindCount, KindDensity:
		return float64(s.n)
	case KindHit:
		return 1
	case KindSum, KindWeightedDensity:
		return s.s1
	case KindMean:
		if s.w == 0 {
			return math.NaN()
		}
		return s.s1 / s.w
	case KindSampleStdev, KindPopulationStdev:
		return stdev(s.w, s.s1, s.s2, c.kind == KindSampleStdev)
	case KindMin:
		return s.lo
	case KindMax:
		return s.hi
	case KindMedian, KindQuantile:
		return quantile(c, s)
	}
	return math.NaN()
}

// stdev computes the standard deviation from the weighted sums.
// The sample standard deviation needs a total weight above 1.
func stdev(w, s1, s2 float64, sample bool) float64 {
	denom := w
	if sample {
		denom = w - 1
	}
	if !(denom > 0) || !(w > 0) {
		return math.NaN()
	}
	v := (s2 - s1*s1/w) / denom
	return math.Sqrt(max(v, 0))
}

func quantile(c Combiner, s *cell) float64 {
	slices.SortFunc(s.samples, func(a, b sample) int {
		return cmp.Compare(a.v, b.v)
	})
	n := len(s.samples)

	// Unweighted medians average the two middle values.
	if c.kind == KindMedian && !s.weighted {
		if n%2 == 1 {
			return s.samples[n/2].v
		}
		return 0.5 * (s.samples[n/2-1].v + s.samples[n/2].v)
	}

	if c.p <= 0 {
		return s.samples[0].v
	} else if c.p >= 1 {
		return s.samples[n-1].v
	}

	x := make([]float64, n)
	var weights []float64
	if s.weighted {
		weights = make([]float64, n)
	}
	for i, smp := range s.samples {
		x[i] = smp.v
		if weights != nil {
			weights[i] = smp.w
		}
	}
	return stat.Quantile(c.p, stat.Empirical, x, weights)
}
