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
	"seehuhn.de/go/pixstat"
	"seehuhn.de/go/pixstat/internal/parallel"
)

// AccumulateParallel processes the rows 0, ..., n-1 of a data set on up to
// workers goroutines.  The row range is split into contiguous partitions;
// feed is called once per partition with a fresh accumulator and must
// submit the rows lo, ..., hi-1 to it.  The partial accumulators are then
// merged pairwise.  If workers is zero or negative, GOMAXPROCS is used.
//
// feed is called concurrently and must not modify shared state.
func AccumulateParallel(c Combiner, size int64, n, workers int, feed func(a *Accumulator, lo, hi int)) *Accumulator {
	workers = parallel.Workers(workers)
	pixstat.Logger().Debug("accumulate",
		"combiner", c.Name(),
		"size", size,
		"rows", n,
		"workers", workers)

	return parallel.MapReduce(n, workers,
		func(r parallel.Range) *Accumulator {
			a := NewAccumulator(c, size)
			feed(a, r.Lo, r.Hi)
			return a
		},
		func(a, b *Accumulator) *Accumulator {
			a.Merge(b)
			return a
		})
}
