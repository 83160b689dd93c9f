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
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pixstat"
	"seehuhn.de/go/pixstat/bin"
	"seehuhn.de/go/pixstat/density"
	"seehuhn.de/go/pixstat/raster"
	"seehuhn.de/go/pixstat/shape"
)

type densityOptions struct {
	in       string
	out      string
	columns  string
	width    int
	height   int
	window   []float64
	combiner string
	glyph    string
	size     int
	scale    int
	workers  int
}

var densityOpts densityOptions

var densityCmd = &cobra.Command{
	Use:   "density",
	Short: "Bin x,y points by pixel and write an image",
	Long: `Reads x and y (and optionally a value) from a CSV file, bins the
points by the pixel they fall into, and writes the result as a grey-scale
PNG or PDF image.  The output format is chosen by the file extension.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDensity(&densityOpts)
	},
}

func init() {
	f := densityCmd.Flags()
	f.StringVar(&densityOpts.in, "in", "-", "input CSV file, - for standard input")
	f.StringVar(&densityOpts.out, "out", "density.png", "output file (.png or .pdf)")
	f.StringVar(&densityOpts.columns, "columns", "1,2", "x,y[,value] column numbers")
	f.IntVar(&densityOpts.width, "width", 400, "image width in pixels")
	f.IntVar(&densityOpts.height, "height", 300, "image height in pixels")
	f.Float64SliceVar(&densityOpts.window, "window", nil, "data window xlo,xhi,ylo,yhi (default: data range)")
	f.StringVar(&densityOpts.combiner, "combiner", "count", "bin combiner")
	f.StringVar(&densityOpts.glyph, "glyph", "point", "marker glyph: point, cross, square, circle, triangle")
	f.IntVar(&densityOpts.size, "size", 2, "marker size in pixels")
	f.IntVar(&densityOpts.scale, "scale", 1, "magnification of the PNG output")
	f.IntVar(&densityOpts.workers, "workers", 0, "number of worker goroutines (0: all CPUs)")
	rootCmd.AddCommand(densityCmd)
}

func runDensity(o *densityOptions) error {
	cols, err := parseColumns(o.columns)
	if err != nil {
		return err
	}
	if len(cols) != 2 && len(cols) != 3 {
		return fmt.Errorf("need two or three columns, got %d", len(cols))
	}
	c, err := bin.ParseCombiner(o.combiner)
	if err != nil {
		return err
	}
	g, err := parseGlyph(o.glyph, o.size)
	if err != nil {
		return err
	}
	if o.width <= 0 || o.height <= 0 || o.scale <= 0 {
		return fmt.Errorf("%w: image size %d×%d, scale %d",
			pixstat.ErrInvalidArgument, o.width, o.height, o.scale)
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
	xs, ys := data[0], data[1]
	var values []float64
	if len(data) > 2 {
		values = data[2]
	}

	window := o.window
	if window == nil {
		xlo, xhi := dataRange(xs)
		ylo, yhi := dataRange(ys)
		window = []float64{xlo, xhi, ylo, yhi}
	}
	if len(window) != 4 || !(window[1] > window[0]) || !(window[3] > window[2]) {
		return fmt.Errorf("%w: data window %v", pixstat.ErrInvalidArgument, window)
	}

	pm := density.PixelMap{
		Region:   raster.Region{Width: o.width, Height: o.height},
		CTM:      windowCTM(window, o.width, o.height),
		Combiner: c,
		Workers:  o.workers,
	}
	var im *density.Image
	if _, isPoint := g.(shape.Point); isPoint {
		im, err = pm.Compute(xs, ys, values)
	} else {
		sc := density.ShapeCoverage{PixelMap: pm, Glyph: g}
		im, err = sc.Compute(xs, ys, values)
	}
	if err != nil {
		return err
	}

	lo, hi := im.Result.Bounds()
	slog.Info("binned",
		"points", len(xs),
		"pixels", im.Result.Len(),
		"min", lo,
		"max", hi)

	switch strings.ToLower(filepath.Ext(o.out)) {
	case ".pdf":
		return writeDensityPDF(im, o.out)
	case ".png":
		return writeDensityPNG(im, o.out, o.scale)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(o.out))
	}
}

// windowCTM maps the data window onto a width×height pixel canvas, with y
// increasing upwards in data space and downwards in device space.
func windowCTM(window []float64, width, height int) matrix.Matrix {
	sx := float64(width) / (window[1] - window[0])
	sy := float64(height) / (window[3] - window[2])
	return matrix.Matrix{sx, 0, 0, -sy, -window[0] * sx, window[3] * sy}
}

// dataRange returns the range of the finite values in xs, widened slightly
// so that the extreme values fall inside the outermost pixels.
func dataRange(xs []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		lo = min(lo, x)
		hi = max(hi, x)
	}
	if lo > hi {
		return 0, 1
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	pad := (hi - lo) * 1e-6
	return lo - pad, hi + pad
}

func parseGlyph(name string, size int) (shape.Glyph, error) {
	switch name {
	case "point":
		return shape.Point{}, nil
	case "cross":
		return shape.Cross{Size: size}, nil
	case "square":
		return shape.Square{Size: size, Filled: true}, nil
	case "circle":
		return shape.Circle{Radius: size, Filled: true}, nil
	case "triangle":
		return shape.Triangle{Size: size, Filled: true}, nil
	default:
		return nil, fmt.Errorf("%w: unknown glyph %q", pixstat.ErrInvalidArgument, name)
	}
}
