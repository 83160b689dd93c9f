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
package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"seehuhn.de/go/pixstat/bin"
	"seehuhn.de/go/pixstat/density"
	"seehuhn.de/go/pixstat/grid"
	"seehuhn.de/go/pixstat/kernel"
)

type histOptions struct {
	in       string
	column   int
	weight   int
	lo, hi   float64
	bins     int
	width    float64
	phase    float64
	log      bool
	combiner string
	shape    string
	smooth   float64
	knn      float64
	maxWidth int
	workers  int
}

var histOpts histOptions

var histCmd = &cobra.Command{
	Use:   "hist",
	Short: "Print a smoothed histogram of one column",
	Long: `Reads one column (and optionally a weight column) from a CSV file and
prints a histogram as tab-separated lines "lo hi value".  The bins can be
smoothed by a fixed-width kernel, or by an adaptive kernel which widens
where there is little data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHist(&histOpts, cmd.OutOrStdout())
	},
}

func init() {
	f := histCmd.Flags()
	f.StringVar(&histOpts.in, "in", "-", "input CSV file, - for standard input")
	f.IntVar(&histOpts.column, "column", 1, "data column number")
	f.IntVar(&histOpts.weight, "weight", 0, "weight column number (0: none)")
	f.Float64Var(&histOpts.lo, "lo", 0, "lower end of the range (default: data minimum)")
	f.Float64Var(&histOpts.hi, "hi", 0, "upper end of the range (default: data maximum)")
	f.IntVar(&histOpts.bins, "bins", 20, "approximate number of bins")
	f.Float64Var(&histOpts.width, "width", 0, "bin width, or bin factor with --log (default: from --bins)")
	f.Float64Var(&histOpts.phase, "phase", 0, "bin phase, as a fraction of the bin width")
	f.BoolVar(&histOpts.log, "log", false, "use logarithmic bins")
	f.StringVar(&histOpts.combiner, "combiner", "count", "bin combiner")
	f.StringVar(&histOpts.shape, "kernel", "epanechnikov", "smoothing kernel shape")
	f.Float64Var(&histOpts.smooth, "smooth", 0, "kernel width in bins (0: no smoothing)")
	f.Float64Var(&histOpts.knn, "knn", 0, "use an adaptive kernel reaching this many samples")
	f.IntVar(&histOpts.maxWidth, "max-width", 50, "largest width of the adaptive kernel, in bins")
	f.IntVar(&histOpts.workers, "workers", 0, "number of worker goroutines (0: all CPUs)")
	rootCmd.AddCommand(histCmd)
}

func runHist(o *histOptions, w io.Writer) error {
	cols := []int{o.column - 1}
	if o.weight > 0 {
		cols = append(cols, o.weight-1)
	}
	c, err := bin.ParseCombiner(o.combiner)
	if err != nil {
		return err
	}
	k, err := histKernel(o)
	if err != nil {
		return err
	}

	r, err := openInput(o.in)
	if err != nil {
		return err
	}
	data, err := readColumns(r, cols...)
	r.Close()
	if err != nil {
		return err
	}
	xs := data[0]
	var weights []float64
	if len(data) > 1 {
		weights = data[1]
	}

	lo, hi := o.lo, o.hi
	if lo == hi {
		lo, hi = dataRange(xs)
	}
	width := o.width
	if width == 0 {
		width = grid.NiceWidth(lo, hi, o.bins, o.log)
	}
	ref := 0.0
	if o.log {
		ref = 1
	}
	m, err := grid.NewMapper(width, o.phase, ref, o.log)
	if err != nil {
		return err
	}

	h := density.Histogram{
		Mapper:   m,
		Combiner: c,
		Kernel:   k,
		Lo:       lo,
		Hi:       hi,
		Workers:  o.workers,
	}
	bars, err := h.Compute(xs, weights)
	if err != nil {
		return err
	}
	slog.Info("histogram", "mapper", m.String(), "bars", len(bars.Values))

	for i, v := range bars.Values {
		blo, bhi := bars.Bounds(i)
		if _, err := fmt.Fprintf(w, "%g\t%g\t%g\n", blo, bhi, v); err != nil {
			return err
		}
	}
	return nil
}

func histKernel(o *histOptions) (*kernel.Kernel, error) {
	s, err := kernel.ParseShape(o.shape)
	if err != nil {
		return nil, err
	}
	switch {
	case o.knn > 0:
		return kernel.NewKNN(s, o.knn, true, int(o.smooth), o.maxWidth)
	case o.smooth > 0:
		return kernel.NewFixed(s, o.smooth)
	default:
		return kernel.Delta, nil
	}
}
