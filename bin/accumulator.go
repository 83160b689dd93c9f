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
	"fmt"
	"math"
)

// Strategy selects how an [Accumulator] stores its bins.
type Strategy uint8

const (
	// Auto uses Dense storage for index domains up to DenseLimit bins,
	// and Sparse storage otherwise.
	Auto Strategy = iota

	// Dense stores all bins in a slice indexed by bin number.
	Dense

	// Sparse stores only the populated bins, in a hash map.
	Sparse
)

func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// DenseLimit is the largest index domain for which [NewAccumulator]
// chooses dense storage.
const DenseLimit = 1 << 22

// Accumulator collects values into the bins 0, ..., size-1.
//
// An Accumulator is not safe for concurrent use.  To process data in
// parallel, use one Accumulator per goroutine and combine them with
// [Accumulator.Merge].
type Accumulator struct {
	c        Combiner
	size     int64
	strategy Strategy

	dense  []cell
	sparse map[int64]*cell
}

// NewAccumulator returns an empty accumulator for bins 0, ..., size-1,
// choosing the storage strategy from the size of the index domain.
func NewAccumulator(c Combiner, size int64) *Accumulator {
	return NewAccumulatorStrategy(c, size, Auto)
}

// NewAccumulatorStrategy is like [NewAccumulator], but uses the given
// storage strategy.
func NewAccumulatorStrategy(c Combiner, size int64, s Strategy) *Accumulator {
	size = max(size, 0)
	if s == Auto {
		if size <= DenseLimit {
			s = Dense
		} else {
			s = Sparse
		}
	}

	a := &Accumulator{c: c, size: size, strategy: s}
	if s == Dense {
		a.dense = make([]cell, size)
	} else {
		a.sparse = make(map[int64]*cell)
	}
	return a
}

// Combiner returns the combiner used by the accumulator.
func (a *Accumulator) Combiner() Combiner {
	return a.c
}

// Size returns the number of bins in the index domain.
func (a *Accumulator) Size() int64 {
	return a.size
}

// Strategy returns the storage strategy, either Dense or Sparse.
func (a *Accumulator) Strategy() Strategy {
	return a.strategy
}

// Submit adds the value v to bin i, with weight 1.
func (a *Accumulator) Submit(i int64, v float64) {
	a.SubmitWeighted(i, v, 1)
}

// SubmitWeighted adds the value v to bin i, with weight w.
//
// Submissions with an index outside the domain, with a non-finite value
// or weight, or with weight zero are ignored.  Median and quantile
// combiners also ignore negative weights.
func (a *Accumulator) SubmitWeighted(i int64, v, w float64) {
	if i < 0 || i >= a.size || !isFinite(v) || !isFinite(w) || w == 0 {
		return
	}
	if w < 0 && a.c.retainsSamples() {
		return
	}
	submit(a.c, a.cell(i), v, w)
}

// cell returns the state of bin i, creating it if needed.
func (a *Accumulator) cell(i int64) *cell {
	if a.dense != nil {
		return &a.dense[i]
	}
	s := a.sparse[i]
	if s == nil {
		s = &cell{}
		a.sparse[i] = s
	}
	return s
}

// Merge adds the contents of other to a.  The two accumulators must use the
// same combiner and the same index domain; otherwise Merge panics.
// Other is not modified, but must not be used concurrently.
//
// Merge is associative and commutative: the order in which partial
// accumulators are merged does not affect the result, up to rounding.
func (a *Accumulator) Merge(other *Accumulator) {
	if a.c != other.c {
		panic(fmt.Sprintf("bin: cannot merge %s accumulator into %s accumulator",
			other.c.Name(), a.c.Name()))
	}
	if a.size != other.size {
		panic(fmt.Sprintf("bin: cannot merge accumulators of size %d and %d",
			other.size, a.size))
	}
	if a == other {
		panic("bin: cannot merge an accumulator into itself")
	}

	switch {
	case a.dense != nil && other.dense != nil:
		for i := range other.dense {
			merge(a.c, &a.dense[i], &other.dense[i])
		}
	case other.dense != nil:
		for i := range other.dense {
			if other.dense[i].n > 0 {
				merge(a.c, a.cell(int64(i)), &other.dense[i])
			}
		}
	default:
		for i, s := range other.sparse {
			merge(a.c, a.cell(i), s)
		}
	}
}

// Populated returns the number of bins which have received values.
func (a *Accumulator) Populated() int {
	if a.dense == nil {
		return len(a.sparse)
	}
	n := 0
	for i := range a.dense {
		if a.dense[i].n > 0 {
			n++
		}
	}
	return n
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
