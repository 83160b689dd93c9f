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
// Command genpdf writes one PDF per rasterization test case, showing the
// pixels hit as white squares on a black background.  The files are meant
// for visual inspection of the rasterizer.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pixstat/raster"
	"seehuhn.de/go/pixstat/testcases"
)

const outDir = "testdata/pixels"

// scale is the size of one pixel in PDF points.
const scale = 4

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc.Render(), pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(pix *raster.Pixels, pdfPath string) error {
	reg := pix.Region()
	paper := &pdf.Rectangle{
		URx: float64(reg.Width * scale),
		URy: float64(reg.Height * scale),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// PDF origin is bottom-left; pixel rows count from the top.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, paper.URy})
	page.Transform(matrix.Matrix{1, 0, 0, 1, -float64(reg.X0), -float64(reg.Y0)})

	page.SetFillColor(color.DeviceGray(1))
	for p := range pix.All() {
		page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
	}
	if pix.Len() > 0 {
		page.Fill()
	}

	return page.Close()
}
