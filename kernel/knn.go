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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"seehuhn.de/go/pixstat"
)

// knnParams holds the configuration of an adaptive kernel, together with
// the normalised half-kernel for every width in [minWidth, maxWidth].
type knnParams struct {
	shape     Shape
	k         float64
	symmetric bool
	minWidth  int
	maxWidth  int

	halfWeights [][]float64 // indexed by width - minWidth
	maxExtent   int
}

// NewKNN returns an adaptive kernel.  At each position, the kernel width is
// the smallest distance (clamped to [minWidth, maxWidth]) such that the sum
// of the input values within that distance reaches k.
//
// If symmetric is false, the widths towards lower and higher positions are
// determined independently, and the two half-kernels are joined at the
// centre, where each contributes half its central weight.
//
// If k is zero or the width range contains a single value, NewKNN returns
// the fixed kernel of width minWidth.  Negative values of k or minWidth,
// and minWidth > maxWidth, are errors.
func NewKNN(s Shape, k float64, symmetric bool, minWidth, maxWidth int) (*Kernel, error) {
	switch {
	case !(k >= 0) || math.IsInf(k, 0):
		return nil, fmt.Errorf("%w: knn threshold %g", pixstat.ErrInvalidArgument, k)
	case minWidth < 0:
		return nil, fmt.Errorf("%w: negative minimum width %d", pixstat.ErrInvalidArgument, minWidth)
	case minWidth > maxWidth:
		return nil, fmt.Errorf("%w: minimum width %d exceeds maximum width %d",
			pixstat.ErrInvalidArgument, minWidth, maxWidth)
	case k == 0 || minWidth == maxWidth:
		return NewFixed(s, float64(minWidth))
	}

	p := &knnParams{
		shape:       s,
		k:           k,
		symmetric:   symmetric,
		minWidth:    minWidth,
		maxWidth:    maxWidth,
		halfWeights: make([][]float64, maxWidth-minWidth+1),
	}
	for w := minWidth; w <= maxWidth; w++ {
		p.halfWeights[w-minWidth] = normalisedHalfWeights(s, w)
	}
	fixed, err := NewFixed(s, float64(maxWidth))
	if err != nil {
		return nil, err
	}
	p.maxExtent = fixed.Extent()

	return &Kernel{kind: kindKNN, square: s.IsSquare(), knn: p}, nil
}

// normalisedHalfWeights returns the half-kernel levels for an integer width,
// scaled so that the full symmetric kernel has unit sum.
func normalisedHalfWeights(s Shape, width int) []float64 {
	if width == 0 {
		return []float64{1}
	}
	w := Weights(s, float64(width))
	total := 2*floats.Sum(w) - w[0]
	floats.Scale(1/total, w)
	return w
}

func (p *knnParams) equal(other *knnParams) bool {
	return p.shape == other.shape &&
		p.k == other.k &&
		p.symmetric == other.symmetric &&
		p.minWidth == other.minWidth &&
		p.maxWidth == other.maxWidth
}

func (p *knnParams) convolve(in []float64) []float64 {
	ns := len(in)
	out := make([]float64, ns)
	for is := range in {
		var pw, mw int
		if p.symmetric {
			pw = p.bidirectionalWidth(in, is)
			mw = pw
		} else {
			pw = p.unidirectionalWidth(in, is, +1, min(p.maxWidth, ns-is))
			mw = p.unidirectionalWidth(in, is, -1, min(p.maxWidth, is+1))
		}
		pWeights := p.halfWeights[max(p.minWidth, pw)-p.minWidth]
		mWeights := p.halfWeights[max(p.minWidth, mw)-p.minWidth]

		var sum float64
		if val := in[is]; isFinite(val) {
			sum = 0.5 * (pWeights[0] + mWeights[0]) * val
		}
		pn := min(len(pWeights), ns-is)
		for js := 1; js < pn; js++ {
			if val := in[is+js]; isFinite(val) {
				sum += pWeights[js] * val
			}
		}
		mn := min(len(mWeights), is+1)
		for js := 1; js < mn; js++ {
			if val := in[is-js]; isFinite(val) {
				sum += mWeights[js] * val
			}
		}
		out[is] = sum
	}
	return out
}

// unidirectionalWidth returns the number of steps from position js in the
// given direction until the accumulated input reaches k, or maxWidth if it
// never does.
func (p *knnParams) unidirectionalWidth(data []float64, js, step, maxWidth int) int {
	var sum float64
	for i := range maxWidth {
		sum += definite(data[js])
		if sum >= p.k {
			return i
		}
		js += step
	}
	return maxWidth
}

// bidirectionalWidth returns the half-width of the window around js in
// which the accumulated input first reaches k, or maxWidth if it never does.
func (p *knnParams) bidirectionalWidth(data []float64, js int) int {
	sum := definite(data[js])
	for i := 1; i < p.maxWidth; i++ {
		if ks := js - i; ks >= 0 {
			sum += definite(data[ks])
		}
		if ls := js + i; ls < len(data) {
			sum += definite(data[ls])
		}
		if sum >= p.k {
			return i
		}
	}
	return p.maxWidth
}

func definite(x float64) float64 {
	if !isFinite(x) {
		return 0
	}
	return x
}
