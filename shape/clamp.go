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
package shape

import (
	"image"
	"math"

	"seehuhn.de/go/pixstat/raster"
)

// DummySize is the visible size assumed for regions which are too small to
// give a useful estimate.
const DummySize = 10000

// ApproxVisibleSize returns an estimate of the size of the visible drawing
// area, in pixels.
//
// The value is used to decide whether an offset is much too long to be worth
// drawing in full.  Erring on the large side is harmless, so degenerate
// regions give [DummySize].
func ApproxVisibleSize(region raster.Region) int {
	if region.Width <= 1 || region.Height <= 1 {
		return DummySize
	}
	return max(region.Width, region.Height)
}

// ClampOffset shortens an offset which extends more than limit pixels along
// either axis.  Axis-parallel offsets are cut to length limit; other offsets
// are scaled to the length of the diagonal of the limit square, keeping
// their direction.  The second return value reports whether the offset was
// changed.
func ClampOffset(off image.Point, limit int) (image.Point, bool) {
	xlo := off.X < -limit
	xhi := off.X > limit
	ylo := off.Y < -limit
	yhi := off.Y > limit
	if !(xlo || xhi || ylo || yhi) {
		return off, false
	}

	switch {
	case off.Y == 0 && xlo:
		off.X = -limit
	case off.Y == 0 && xhi:
		off.X = limit
	case off.X == 0 && ylo:
		off.Y = -limit
	case off.X == 0 && yhi:
		off.Y = limit
	default:
		l := float64(limit)
		shrink := math.Sqrt(2*l*l) / toVec(off).Length()
		off.X = int(math.Round(shrink * float64(off.X)))
		off.Y = int(math.Round(shrink * float64(off.Y)))
	}
	return off, true
}

// ClampOffsets applies [ClampOffset] to every element of offs.
// The result is a new slice; offs is not modified.
func ClampOffsets(offs []image.Point, limit int) []image.Point {
	res := make([]image.Point, len(offs))
	for i, off := range offs {
		res[i], _ = ClampOffset(off, limit)
	}
	return res
}
