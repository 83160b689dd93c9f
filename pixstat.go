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

// Package pixstat turns large sets of data-space samples into per-pixel
// aggregates for plotting.
//
// The work is split over several sub-packages:
//
//   - [seehuhn.de/go/pixstat/raster] marks the exact set of pixels covered
//     by lines, rectangles, ellipses and convex polygons.
//   - [seehuhn.de/go/pixstat/grid] maps continuous coordinates to bin
//     indices and back, on linear or logarithmic axes.
//   - [seehuhn.de/go/pixstat/bin] accumulates weighted values per bin using
//     a choice of combination rules, with dense or sparse storage.
//   - [seehuhn.de/go/pixstat/kernel] smooths one-dimensional bin arrays
//     with fixed-width or adaptive (k-nearest-neighbour) kernels.
//   - [seehuhn.de/go/pixstat/density] wires these together into
//     histograms and density maps.
//
// All of these are synchronous, CPU-bound transforms.  Only bin
// accumulators are designed for parallel use, by giving each goroutine its
// own accumulator and merging the results afterwards.
package pixstat

import "errors"

// ErrInvalidArgument is wrapped by all errors returned from constructors
// which were given out-of-range parameters.
var ErrInvalidArgument = errors.New("invalid argument")
