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
package raster_test

import (
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/pixstat/raster"
	"seehuhn.de/go/pixstat/testcases"
)

func TestCasesInsideRegion(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				pix := tc.Render()
				reg := tc.Region()
				n := 0
				for p := range pix.All() {
					n++
					if !reg.Contains(p.X, p.Y) {
						t.Errorf("pixel %v outside the canvas", p)
					}
				}
				if n != pix.Len() {
					t.Errorf("iterator returned %d pixels, Len is %d", n, pix.Len())
				}
			})
		}
	}
}

// TestFilledMatchesContains checks the specialised fill methods against the
// generic per-pixel test.
func TestFilledMatchesContains(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			s, ok := filledShape(tc.Prim)
			if !ok {
				continue
			}
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				fast := tc.Render()

				r := raster.NewRasterizer(tc.Region())
				r.Fill(s)
				slow := r.Pixels()

				if fast.Len() != slow.Len() {
					t.Errorf("specialised fill has %d pixels, generic fill %d",
						fast.Len(), slow.Len())
				}
				for p := range slow.All() {
					if !fast.Contains(p.X, p.Y) {
						t.Errorf("pixel %v missing", p)
					}
				}
			})
		}
	}
}

func filledShape(p raster.Primitive) (raster.Shape, bool) {
	switch p := p.(type) {
	case raster.Rect:
		return p, p.Filled
	case raster.Oval:
		return p, p.Filled
	case raster.Ellipse:
		return p, p.Filled
	case raster.Polygon:
		return p, true
	}
	return nil, false
}

func TestDegenerateFillsAreEmpty(t *testing.T) {
	for _, tc := range testcases.All["degenerate"] {
		if _, ok := filledShape(tc.Prim); !ok {
			continue
		}
		if n := tc.Render().Len(); n != 0 {
			t.Errorf("%s: %d pixels, want 0", tc.Name, n)
		}
	}
}

// BenchmarkRasteriseAll measures steady-state performance by reusing a single
// Rasterizer across all test cases.
func BenchmarkRasteriseAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	r := raster.NewRasterizer(raster.Region{})

	b.ResetTimer()
	for b.Loop() {
		for _, tc := range cases {
			r.Reset(tc.Region())
			r.Draw(tc.Prim)
		}
	}
}
