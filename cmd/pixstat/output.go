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
	"image"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pixstat/density"
)

// pdfScale is the size of one pixel in PDF points.
const pdfScale = 2

// greyLevels maps the pixel values of im to the range [0, 1], with 1 for
// the largest value.  Empty pixels are NaN.
func greyLevels(im *density.Image) []float64 {
	lo, hi := im.Result.Bounds()
	values := im.Values(math.NaN())
	for i, v := range values {
		switch {
		case math.IsNaN(v):
			// empty
		case hi > lo:
			values[i] = (v - lo) / (hi - lo)
		default:
			values[i] = 1
		}
	}
	return values
}

func writeDensityPNG(im *density.Image, path string, scale int) error {
	reg := im.Region
	small := image.NewGray(image.Rect(0, 0, reg.Width, reg.Height))
	for i, v := range greyLevels(im) {
		if math.IsNaN(v) {
			continue
		}
		// Non-empty pixels are never fully black.
		small.Pix[i] = uint8(32 + math.Round(v*223))
	}

	var dst draw.Image = small
	if scale > 1 {
		big := image.NewGray(image.Rect(0, 0, reg.Width*scale, reg.Height*scale))
		draw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), draw.Src, nil)
		dst = big
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(f, dst)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeDensityPDF(im *density.Image, path string) error {
	reg := im.Region
	paper := &pdf.Rectangle{
		URx: float64(reg.Width * pdfScale),
		URy: float64(reg.Height * pdfScale),
	}

	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// PDF origin is bottom-left; pixel rows count from the top.
	page.Transform(matrix.Matrix{pdfScale, 0, 0, -pdfScale, 0, paper.URy})

	for i, v := range greyLevels(im) {
		if math.IsNaN(v) {
			continue
		}
		page.SetFillColor(color.DeviceGray(0.125 + 0.875*v))
		page.Rectangle(float64(i%reg.Width), float64(i/reg.Width), 1, 1)
		page.Fill()
	}

	return page.Close()
}
