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
	"iter"
	"math"
	"slices"
	"sort"
)

// Result holds the final bin values of an [Accumulator].
// A Result is immutable and safe for concurrent use.
type Result struct {
	c    Combiner
	size int64

	// Exactly one of the following representations is used.
	// Dense results have one entry per bin, with count zero for empty bins.
	// Sparse results list the populated bins in increasing order.
	values []float64
	counts []int64
	index  []int64 // nil for dense results

	populated int
	lo, hi    float64
}

// Finalize computes the combined value of every populated bin.
// The accumulator can still be used afterwards; later submissions do not
// affect the returned Result.
func (a *Accumulator) Finalize() *Result {
	r := &Result{
		c:    a.c,
		size: a.size,
		lo:   math.Inf(1),
		hi:   math.Inf(-1),
	}

	if a.dense != nil {
		r.values = make([]float64, len(a.dense))
		r.counts = make([]int64, len(a.dense))
		for i := range a.dense {
			s := &a.dense[i]
			r.counts[i] = s.n
			r.values[i] = r.add(s)
		}
	} else {
		r.index = make([]int64, 0, len(a.sparse))
		for i := range a.sparse {
			r.index = append(r.index, i)
		}
		slices.Sort(r.index)
		r.values = make([]float64, len(r.index))
		r.counts = make([]int64, len(r.index))
		for k, i := range r.index {
			s := a.sparse[i]
			r.counts[k] = s.n
			r.values[k] = r.add(s)
		}
	}

	if r.lo > r.hi {
		r.lo, r.hi = math.NaN(), math.NaN()
	}
	return r
}

// add computes the value of one bin and updates the bounds.
func (r *Result) add(s *cell) float64 {
	if s.n == 0 {
		return math.NaN()
	}
	r.populated++
	v := value(r.c, s)
	if !math.IsNaN(v) {
		r.lo = min(r.lo, v)
		r.hi = max(r.hi, v)
	}
	return v
}

// Combiner returns the combiner used to compute the bin values.
func (r *Result) Combiner() Combiner {
	return r.c
}

// Size returns the number of bins in the index domain.
func (r *Result) Size() int64 {
	return r.size
}

// Len returns the number of populated bins.
func (r *Result) Len() int {
	return r.populated
}

// Bounds returns the smallest and largest value over all populated bins.
// Both values are NaN if no bin has a defined value.
func (r *Result) Bounds() (lo, hi float64) {
	return r.lo, r.hi
}

// pos returns the position of bin i in the value slices, or -1.
func (r *Result) pos(i int64) int {
	if i < 0 || i >= r.size {
		return -1
	}
	if r.index == nil {
		return int(i)
	}
	k := sort.Search(len(r.index), func(k int) bool { return r.index[k] >= i })
	if k < len(r.index) && r.index[k] == i {
		return k
	}
	return -1
}

// ValueAt returns the value of bin i.
// The result is NaN for empty bins and for indices outside the domain.
func (r *Result) ValueAt(i int64) float64 {
	k := r.pos(i)
	if k < 0 {
		return math.NaN()
	}
	return r.values[k]
}

// CountAt returns the number of values submitted to bin i.
func (r *Result) CountAt(i int64) int64 {
	k := r.pos(i)
	if k < 0 {
		return 0
	}
	return r.counts[k]
}

// Indices iterates over the populated bins in increasing order.
func (r *Result) Indices() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if r.index != nil {
			for _, i := range r.index {
				if !yield(i) {
					return
				}
			}
			return
		}
		for i, n := range r.counts {
			if n > 0 && !yield(int64(i)) {
				return
			}
		}
	}
}

// All iterates over the populated bins and their values, in increasing
// order of bin index.
func (r *Result) All() iter.Seq2[int64, float64] {
	return func(yield func(int64, float64) bool) {
		for i := range r.Indices() {
			if !yield(i, r.ValueAt(i)) {
				return
			}
		}
	}
}

// Values returns the values of all bins as a slice of length Size().
// Empty bins are set to fill.  Values returns nil if the index domain is
// larger than [DenseLimit].
func (r *Result) Values(fill float64) []float64 {
	if r.size > DenseLimit {
		return nil
	}
	res := make([]float64, r.size)
	if r.index == nil {
		for i, v := range r.values {
			if r.counts[i] == 0 {
				v = fill
			}
			res[i] = v
		}
		return res
	}
	for i := range res {
		res[i] = fill
	}
	for k, i := range r.index {
		res[i] = r.values[k]
	}
	return res
}
