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
	"seehuhn.de/go/pixstat/shape"
)

// ShapeCoverage bins two-dimensional data by the pixels covered by a
// marker glyph, rather than by the single pixel under each point.  With
// [bin.Count] this gives the number of markers drawn over every pixel,
// which is used for density shading of scatter plots.
type ShapeCoverage struct {
	PixelMap

	// Glyph is the marker drawn at every point.
	Glyph shape.Glyph
}

type offset struct {
	dx, dy int
}

// Compute bins the points (xs[i], ys[i]).  Each point contributes
// values[i], or 1 if values is nil, to every pixel of its glyph.
// Glyphs without pixels contribute nothing.
func (s *ShapeCoverage) Compute(xs, ys, values []float64) (*Image, error) {
	footprint := shape.Coverage(s.Glyph, s.Region)
	offsets := make([]offset, 0, footprint.Len())
	for pt := range footprint.All() {
		offsets = append(offsets, offset{dx: pt.X, dy: pt.Y})
	}
	return s.stamp(xs, ys, values, offsets)
}
