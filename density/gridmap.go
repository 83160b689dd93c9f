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
	"fmt"
	"iter"
	"math"

	"seehuhn.de/go/pixstat"
	"seehuhn.de/go/pixstat/bin"
	"seehuhn.de/go/pixstat/grid"
)

// GridMap bins two-dimensional data on a grid in data space, given by one
// [grid.Mapper] per axis.
//
// The grid can be far larger than any screen: if the number of cells
// covering the data window exceeds [bin.DenseLimit], only the populated
// cells are stored.
type GridMap struct {
	X, Y grid.Mapper

	// XLo, XHi, YLo and YHi give the data window.  Points outside the
	// window are ignored.
	XLo, XHi float64
	YLo, YHi float64

	// Combiner reduces the values in each cell.  The zero value is
	// [bin.Count].
	Combiner bin.Combiner

	// Workers is the number of goroutines used for binning.
	// If this is zero, GOMAXPROCS is used.
	Workers int
}

// GridResult holds the binned values of a [GridMap].
type GridResult struct {
	X, Y   grid.Mapper
	Result *bin.Result

	ix0, iy0 int
	nx, ny   int64
}

// Compute bins the points (xs[i], ys[i]).  Each point contributes
// values[i] to its cell, or 1 if values is nil.
func (gm *GridMap) Compute(xs, ys, values []float64) (*GridResult, error) {
	if len(ys) != len(xs) || values != nil && len(values) != len(xs) {
		return nil, fmt.Errorf("%w: column lengths %d, %d, %d differ",
			pixstat.ErrInvalidArgument, len(xs), len(ys), len(values))
	}
	ix0, ix1 := gm.X.Range(gm.XLo, gm.XHi)
	iy0, iy1 := gm.Y.Range(gm.YLo, gm.YHi)
	if ix0 == grid.NoIndex || iy0 == grid.NoIndex {
		return nil, fmt.Errorf("%w: data window not representable",
			pixstat.ErrInvalidArgument)
	}
	nx := int64(ix1) - int64(ix0) + 1
	ny := int64(iy1) - int64(iy0) + 1
	if nx > math.MaxInt64/ny {
		return nil, fmt.Errorf("%w: %d×%d grid cells",
			pixstat.ErrInvalidArgument, nx, ny)
	}
	size := nx * ny

	strategy := bin.Dense
	if size > bin.DenseLimit {
		strategy = bin.Sparse
	}
	pixstat.Logger().Debug("grid map",
		"x", gm.X.String(),
		"y", gm.Y.String(),
		"cells", size,
		"strategy", strategy.String(),
		"points", len(xs),
		"combiner", gm.Combiner.Name())

	acc := bin.AccumulateParallel(gm.Combiner, size, len(xs), gm.Workers,
		func(a *bin.Accumulator, lo, hi int) {
			for i := lo; i < hi; i++ {
				ix, okX := gm.X.Lookup(xs[i])
				iy, okY := gm.Y.Lookup(ys[i])
				if !okX || !okY {
					continue
				}
				jx := int64(ix) - int64(ix0)
				jy := int64(iy) - int64(iy0)
				if jx < 0 || jx >= nx || jy < 0 || jy >= ny {
					continue
				}
				v := 1.0
				if values != nil {
					v = values[i]
				}
				a.Submit(jx+nx*jy, v)
			}
		})

	return &GridResult{
		X:      gm.X,
		Y:      gm.Y,
		Result: acc.Finalize(),
		ix0:    ix0,
		iy0:    iy0,
		nx:     nx,
		ny:     ny,
	}, nil
}

// index returns the accumulator index of the cell (ix, iy).
func (r *GridResult) index(ix, iy int) (int64, bool) {
	jx := int64(ix) - int64(r.ix0)
	jy := int64(iy) - int64(r.iy0)
	if jx < 0 || jx >= r.nx || jy < 0 || jy >= r.ny {
		return 0, false
	}
	return jx + r.nx*jy, true
}

// At returns the value of the cell with bin indices (ix, iy), or NaN if the
// cell is empty.
func (r *GridResult) At(ix, iy int) float64 {
	i, ok := r.index(ix, iy)
	if !ok {
		return math.NaN()
	}
	return r.Result.ValueAt(i)
}

// Cell is a populated cell of a [GridResult].
type Cell struct {
	IX, IY int
	Value  float64
}

// Cells iterates over the populated cells, ordered by IY and then IX.
func (r *GridResult) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i, v := range r.Result.All() {
			c := Cell{
				IX:    r.ix0 + int(i%r.nx),
				IY:    r.iy0 + int(i/r.nx),
				Value: v,
			}
			if !yield(c) {
				return
			}
		}
	}
}
