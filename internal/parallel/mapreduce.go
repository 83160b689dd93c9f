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
// Package parallel provides fork-join helpers for batch computations over
// a range of row indices.
package parallel

import (
	"runtime"
	"sync"
)

// Range is the half-open interval [Lo, Hi) of row indices.
type Range struct {
	Lo, Hi int
}

// Len returns the number of rows in the range.
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// Split divides [0, n) into at most parts contiguous ranges of nearly equal
// length.  The ranges are returned in order and cover [0, n) exactly.
// If n is zero, a single empty range is returned.
func Split(n, parts int) []Range {
	if n <= 0 {
		return []Range{{}}
	}
	parts = max(1, min(parts, n))

	res := make([]Range, parts)
	lo := 0
	for i := range parts {
		hi := lo + (n-lo)/(parts-i)
		res[i] = Range{Lo: lo, Hi: hi}
		lo = hi
	}
	return res
}

// Workers returns the number of workers to use for a requested count.
// Zero or negative values mean GOMAXPROCS.
func Workers(requested int) int {
	if requested <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return requested
}

// MapReduce splits [0, n) into partitions, calls mapFn for every partition
// on up to workers goroutines, and combines the partial results pairwise
// in a reduction tree.
//
// reduce must be associative.  It is always called with results of
// adjacent partitions, the earlier one first, so the reduction order is
// deterministic.  Neither mapFn nor reduce may retain references between
// calls to shared mutable state.
func MapReduce[T any](n, workers int, mapFn func(Range) T, reduce func(a, b T) T) T {
	workers = Workers(workers)
	ranges := Split(n, workers)
	if len(ranges) == 1 {
		return mapFn(ranges[0])
	}

	partial := make([]T, len(ranges))
	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for i, r := range ranges {
		go func() {
			defer wg.Done()
			partial[i] = mapFn(r)
		}()
	}
	wg.Wait()

	for len(partial) > 1 {
		next := make([]T, (len(partial)+1)/2)
		var wg sync.WaitGroup
		for i := 0; i+1 < len(partial); i += 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				next[i/2] = reduce(partial[i], partial[i+1])
			}()
		}
		if len(partial)%2 == 1 {
			next[len(next)-1] = partial[len(partial)-1]
		}
		wg.Wait()
		partial = next
	}
	return partial[0]
}
