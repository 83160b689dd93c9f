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
	"slices"

	"gonum.org/v1/gonum/floats"

	"seehuhn.de/go/pixstat"
)

type kernelKind uint8

const (
	kindDelta kernelKind = iota
	kindFixed
	kindMean
	kindKNN
)

// Kernel is a one-dimensional smoothing kernel.
// Kernels are immutable and can be shared between goroutines.
type Kernel struct {
	kind   kernelKind
	square bool

	// fixed and mean kernels: the full weight array, centred at offset
	weights []float64
	offset  int

	// adaptive kernels
	knn *knnParams
}

// Delta is the identity kernel.  Convolution with Delta copies the input.
var Delta = &Kernel{kind: kindDelta, square: true}

// NewFixed returns a kernel of the given shape and width, normalised to
// unit sum.  Convolution with this kernel preserves the total of the input
// values, which makes it suitable for densities.
// Missing (NaN) and infinite input values are treated as zero.
//
// A width of zero gives [Delta].  Negative widths are an error.
func NewFixed(s Shape, width float64) (*Kernel, error) {
	levels, err := checkedLevels(s, width)
	if err != nil {
		return nil, err
	} else if levels == nil {
		return Delta, nil
	}
	weights, offset := mirror(levels)
	floats.Scale(1/floats.Sum(weights), weights)
	return &Kernel{kind: kindFixed, square: s.IsSquare(), weights: weights, offset: offset}, nil
}

// NewMean returns a kernel which computes the weighted mean of the input
// values around each position, using weights of the given shape and width.
// Missing (NaN) and infinite input values are excluded from the mean;
// positions without any finite values in range become NaN.
//
// A width of zero gives [Delta].  Negative widths are an error.
func NewMean(s Shape, width float64) (*Kernel, error) {
	levels, err := checkedLevels(s, width)
	if err != nil {
		return nil, err
	} else if levels == nil {
		return Delta, nil
	}
	weights, offset := mirror(levels)
	return &Kernel{kind: kindMean, square: s.IsSquare(), weights: weights, offset: offset}, nil
}

// checkedLevels validates the width and returns the half-kernel levels.
// The result is nil if the kernel degenerates to the identity.
func checkedLevels(s Shape, width float64) ([]float64, error) {
	if math.IsNaN(width) || math.IsInf(width, 0) || width < 0 {
		return nil, fmt.Errorf("%w: kernel width %g", pixstat.ErrInvalidArgument, width)
	}
	if width == 0 {
		return nil, nil
	}
	levels := Weights(s, width)
	if len(levels) <= 1 {
		return nil, nil
	}
	return levels, nil
}

// mirror builds the symmetric weight array from the half-kernel levels.
func mirror(levels []float64) ([]float64, int) {
	offset := len(levels) - 1
	weights := make([]float64, 2*offset+1)
	for i, l := range levels {
		weights[offset+i] = l
		weights[offset-i] = l
	}
	return weights, offset
}

// Extent returns the number of pixels on either side of a position which
// contribute to the smoothed value at that position.  Input values closer
// than this to either end of the array give distorted results; see [Pad].
func (k *Kernel) Extent() int {
	switch k.kind {
	case kindFixed, kindMean:
		return max(k.offset, len(k.weights)-1-k.offset)
	case kindKNN:
		return k.knn.maxExtent
	default:
		return 0
	}
}

// IsSquare reports whether the kernel has a flat profile.
func (k *Kernel) IsSquare() bool {
	return k.square
}

// Equal reports whether k and other perform the same convolution.
func (k *Kernel) Equal(other *Kernel) bool {
	if k == other {
		return true
	}
	if k == nil || other == nil || k.kind != other.kind {
		return false
	}
	switch k.kind {
	case kindFixed, kindMean:
		return k.offset == other.offset && slices.Equal(k.weights, other.weights)
	case kindKNN:
		return k.knn.equal(other.knn)
	default:
		return true
	}
}

// Convolve returns the smoothed version of in.
// The input is not modified, and the result has the same length.
func (k *Kernel) Convolve(in []float64) []float64 {
	switch k.kind {
	case kindFixed:
		return k.convolveFixed(in)
	case kindMean:
		return k.convolveMean(in)
	case kindKNN:
		return k.knn.convolve(in)
	default:
		return slices.Clone(in)
	}
}

// convolveFixed scatters every input value over its neighbourhood.
func (k *Kernel) convolveFixed(in []float64) []float64 {
	ns := len(in)
	nw := len(k.weights)
	out := make([]float64, ns)
	for is, val := range in {
		if !isFinite(val) {
			continue
		}
		iw0 := max(0, k.offset-is)
		iw1 := min(nw, ns+k.offset-is)
		for iw := iw0; iw < iw1; iw++ {
			out[is+iw-k.offset] += k.weights[iw] * val
		}
	}
	return out
}

// convolveMean keeps separate sums of weights and weighted values.
func (k *Kernel) convolveMean(in []float64) []float64 {
	ns := len(in)
	nw := len(k.weights)
	wsums := make([]float64, ns)
	dsums := make([]float64, ns)
	for is, val := range in {
		if !isFinite(val) {
			continue
		}
		iw0 := max(0, k.offset-is)
		iw1 := min(nw, ns+k.offset-is)
		for iw := iw0; iw < iw1; iw++ {
			ix := is + iw - k.offset
			w := k.weights[iw]
			wsums[ix] += w
			dsums[ix] += w * val
		}
	}

	out := dsums
	for i, sw := range wsums {
		if sw == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = dsums[i] / sw
		}
	}
	return out
}

func (k *Kernel) String() string {
	switch k.kind {
	case kindFixed:
		return fmt.Sprintf("fixed(extent=%d)", k.Extent())
	case kindMean:
		return fmt.Sprintf("mean(extent=%d)", k.Extent())
	case kindKNN:
		return fmt.Sprintf("knn(%s, k=%g, width=%d..%d)",
			k.knn.shape, k.knn.k, k.knn.minWidth, k.knn.maxWidth)
	default:
		return "delta"
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
