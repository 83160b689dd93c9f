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
package kernel

// Pad returns a copy of in with extent copies of fill added at both ends.
//
// Convolution results within [Kernel.Extent] pixels of either end of an
// array are distorted, because the data beyond the ends is unknown.  Where
// the data beyond the visible range is available, callers should include it
// instead of padding.  Pad is for the case where it is not: fill 0 suits
// densities and fill NaN suits mean kernels.
func Pad(in []float64, extent int, fill float64) []float64 {
	extent = max(extent, 0)
	out := make([]float64, len(in)+2*extent)
	for i := range extent {
		out[i] = fill
		out[len(out)-1-i] = fill
	}
	copy(out[extent:], in)
	return out
}

// Unpad removes extent elements from both ends of a padded array.
// The result shares storage with padded.
func Unpad(padded []float64, extent int) []float64 {
	extent = max(extent, 0)
	if 2*extent >= len(padded) {
		return padded[:0]
	}
	return padded[extent : len(padded)-extent]
}
