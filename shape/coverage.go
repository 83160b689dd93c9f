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

	"seehuhn.de/go/pixstat"
	"seehuhn.de/go/pixstat/raster"
)

// Coverage returns the pixels hit by g when drawn at the origin, so that
// each pixel of the result is an offset from the data position.
// Offsets are clamped as they would be when painting onto canvas.
func Coverage(g Glyph, canvas raster.Region) *raster.Pixels {
	limit := ApproxVisibleSize(canvas)
	e := reach(g, limit)
	if full := reach(g, math.MaxInt32); full > e {
		pixstat.Logger().Warn("glyph clamped",
			"reach", full,
			"limit", e)
	}
	r := raster.NewRasterizer(raster.Region{
		X0:     -e,
		Y0:     -e,
		Width:  2*e + 1,
		Height: 2*e + 1,
	})
	paint(r, 0, 0, g, limit)
	return r.Pixels()
}

// reach returns an upper bound for the distance, along either axis, of the
// pixels of g from the centre, after clamping to limit.
func reach(g Glyph, limit int) int {
	switch g := g.(type) {
	case Cross:
		return max(min(g.Size, limit), 0)
	case Square:
		return max(min(g.Size, limit), 0)
	case Circle:
		return max(min(g.Radius, limit), 0)
	case Triangle:
		return max(min(g.Size, limit), 0)
	case ErrorBars:
		e := 0
		for _, off := range g.Offsets {
			c, _ := ClampOffset(off, limit)
			e = max(e, maxAbs(c))
		}
		return e + max(g.Cap, 0)
	case ErrorEllipse:
		// The centre lies within e of the origin, and both radii of the
		// bounding box are at most sqrt(2)·e.
		e := 0
		for _, off := range g.Offsets {
			c, _ := ClampOffset(off, limit)
			e = max(e, maxAbs(c))
		}
		return 3*e + 1
	case Vector:
		tip, _ := ClampOffset(g.Tip, limit)
		return maxAbs(tip) + max(min(g.Head, limit), 0)
	default:
		return 0
	}
}

func maxAbs(p image.Point) int {
	return max(abs(p.X), abs(p.Y))
}
