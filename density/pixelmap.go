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
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pixstat"
	"seehuhn.de/go/pixstat/bin"
	"seehuhn.de/go/pixstat/grid"
	"seehuhn.de/go/pixstat/raster"
)

// PixelMap bins two-dimensional data by device pixel.
type PixelMap struct {
	// Region is the area of device space to bin.  Samples falling
	// outside the region are ignored.
	Region raster.Region

	// CTM maps data coordinates to device coordinates.  The zero matrix is
	// treated as the identity.
	CTM matrix.Matrix

	// Combiner reduces the values in each pixel.  The zero value is
	// [bin.Count].
	Combiner bin.Combiner

	// Workers is the number of goroutines used for binning.
	// If this is zero, GOMAXPROCS is used.
	Workers int
}

// Image holds the binned values of a [PixelMap].
type Image struct {
	Region raster.Region
	Result *bin.Result

	grid grid.Gridder
}

// Pixel returns the device pixel containing the data point (x, y).
// The device point (u, v) belongs to the pixel (floor(u), floor(v)).
// The last return value is false if the point has no pixel.
func (p *PixelMap) Pixel(x, y float64) (int, int, bool) {
	m := p.CTM
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	u := math.Floor(m[0]*x + m[2]*y + m[4])
	v := math.Floor(m[1]*x + m[3]*y + m[5])
	if !(u >= math.MinInt32 && u <= math.MaxInt32 && v >= math.MinInt32 && v <= math.MaxInt32) {
		return 0, 0, false
	}
	return int(u), int(v), true
}

// Compute bins the points (xs[i], ys[i]).  Each point contributes
// values[i] to its pixel, or 1 if values is nil.
func (p *PixelMap) Compute(xs, ys, values []float64) (*Image, error) {
	return p.stamp(xs, ys, values, nil)
}

// stamp is the common implementation of [PixelMap.Compute] and
// [ShapeCoverage.Compute].  Every point contributes to the pixels at the
// given offsets from its own pixel; nil offsets mean only the pixel itself.
func (p *PixelMap) stamp(xs, ys, values []float64, offsets []offset) (*Image, error) {
	if len(ys) != len(xs) || values != nil && len(values) != len(xs) {
		return nil, fmt.Errorf("%w: column lengths %d, %d, %d differ",
			pixstat.ErrInvalidArgument, len(xs), len(ys), len(values))
	}
	if p.Region.Empty() {
		return nil, fmt.Errorf("%w: empty region", pixstat.ErrInvalidArgument)
	}
	if offsets == nil {
		offsets = []offset{{}}
	}

	reg := p.Region
	g := grid.Gridder{NX: reg.Width, NY: reg.Height}
	pixstat.Logger().Debug("pixel map",
		"width", reg.Width,
		"height", reg.Height,
		"points", len(xs),
		"footprint", len(offsets),
		"combiner", p.Combiner.Name())

	acc := bin.AccumulateParallel(p.Combiner, int64(g.Len()), len(xs), p.Workers,
		func(a *bin.Accumulator, lo, hi int) {
			for i := lo; i < hi; i++ {
				px, py, ok := p.Pixel(xs[i], ys[i])
				if !ok {
					continue
				}
				v := 1.0
				if values != nil {
					v = values[i]
				}
				for _, o := range offsets {
					ix := px + o.dx - reg.X0
					iy := py + o.dy - reg.Y0
					if g.Contains(ix, iy) {
						a.Submit(int64(g.Index(ix, iy)), v)
					}
				}
			}
		})

	return &Image{Region: reg, Result: acc.Finalize(), grid: g}, nil
}

// At returns the value of the pixel (x, y), or NaN if no data fell into
// the pixel.
func (im *Image) At(x, y int) float64 {
	ix, iy := x-im.Region.X0, y-im.Region.Y0
	if !im.grid.Contains(ix, iy) {
		return math.NaN()
	}
	return im.Result.ValueAt(int64(im.grid.Index(ix, iy)))
}

// Count returns the number of values which fell into the pixel (x, y).
func (im *Image) Count(x, y int) int64 {
	ix, iy := x-im.Region.X0, y-im.Region.Y0
	if !im.grid.Contains(ix, iy) {
		return 0
	}
	return im.Result.CountAt(int64(im.grid.Index(ix, iy)))
}

// Values returns the pixel values in row-major order, with fill for empty
// pixels.
func (im *Image) Values(fill float64) []float64 {
	return im.Result.Values(fill)
}
