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
// Package kernel smooths one-dimensional arrays of per-pixel values.
//
// A kernel is built from a [Shape], a function on the normalised offset
// from the kernel centre, sampled at unit pixel offsets.  Three kinds of
// smoothing are available: [NewFixed] preserves the total mass of the
// input, [NewMean] computes a weighted local mean which ignores missing
// (NaN) values, and [NewKNN] adapts the kernel width at every position to
// the amount of input mass nearby.
package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/pixstat"
)

type shapeKind uint8

const (
	shapeSquare shapeKind = iota
	shapeLinear
	shapeEpanechnikov
	shapeCos
	shapeCos2
	shapeGauss
)

// Shape is a kernel profile f(x) for normalised offsets 0 <= x <= NormExtent.
// Shape values are comparable.
type Shape struct {
	kind  shapeKind
	trunc float64 // truncation in units of sigma, for Gaussians
}

// The standard kernel shapes with unit normalised extent.
var (
	// Square is the uniform profile f(x) = 1.
	Square = Shape{kind: shapeSquare}

	// Linear is the triangle profile f(x) = 1-x.
	Linear = Shape{kind: shapeLinear}

	// Epanechnikov is the parabolic profile f(x) = 1-x².
	Epanechnikov = Shape{kind: shapeEpanechnikov}

	// Cos is the cosine profile f(x) = cos(πx/2).
	Cos = Shape{kind: shapeCos}

	// Cos2 is the squared cosine profile f(x) = cos²(πx/2).
	Cos2 = Shape{kind: shapeCos2}
)

// Gauss returns a Gaussian profile f(x) = exp(-x²/2), truncated at
// trunc standard deviations.  The kernel width corresponds to one
// standard deviation.
func Gauss(trunc float64) (Shape, error) {
	if !(trunc > 0) || math.IsInf(trunc, 0) {
		return Shape{}, fmt.Errorf("%w: Gaussian truncation %g", pixstat.ErrInvalidArgument, trunc)
	}
	return Shape{kind: shapeGauss, trunc: trunc}, nil
}

// StandardShapes returns the shapes offered to users by default.
func StandardShapes() []Shape {
	return []Shape{
		Square, Linear, Epanechnikov, Cos, Cos2,
		{kind: shapeGauss, trunc: 3},
		{kind: shapeGauss, trunc: 6},
	}
}

// ParseShape returns the shape with the given name.  Truncated Gaussians
// are named "gauss" followed by the truncation, for example "gauss3".
func ParseShape(name string) (Shape, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, s := range StandardShapes() {
		if strings.ToLower(s.Name()) == lower {
			return s, nil
		}
	}
	if rest, ok := strings.CutPrefix(lower, "gauss"); ok {
		if trunc, err := strconv.ParseFloat(rest, 64); err == nil {
			return Gauss(trunc)
		}
	}
	return Shape{}, fmt.Errorf("%w: unknown kernel shape %q", pixstat.ErrInvalidArgument, name)
}

// Name returns the name of the shape, as accepted by [ParseShape].
func (s Shape) Name() string {
	switch s.kind {
	case shapeSquare:
		return "square"
	case shapeLinear:
		return "linear"
	case shapeEpanechnikov:
		return "Epanechnikov"
	case shapeCos:
		return "cos"
	case shapeCos2:
		return "cos2"
	case shapeGauss:
		return "gauss" + strconv.FormatFloat(s.trunc, 'g', -1, 64)
	default:
		return fmt.Sprintf("shape(%d)", uint8(s.kind))
	}
}

func (s Shape) String() string {
	return s.Name()
}

// Description returns a one-line description of the profile.
func (s Shape) Description() string {
	switch s.kind {
	case shapeSquare:
		return "Uniform value: f(x)=1, |x|=0..1"
	case shapeLinear:
		return "Triangle: f(x)=1-|x|, |x|=0..1"
	case shapeEpanechnikov:
		return "Parabola: f(x)=1-x*x, |x|=0..1"
	case shapeCos:
		return "Cosine: f(x)=cos(x*pi/2), |x|=0..1"
	case shapeCos2:
		return "Cosine squared: f(x)=cos^2(x*pi/2), |x|=0..1"
	case shapeGauss:
		t := strconv.FormatFloat(s.trunc, 'g', -1, 64)
		return "Gaussian truncated at " + t + " sigma: f(x)=exp(-x*x/2), |x|=0.." + t
	default:
		return ""
	}
}

// NormExtent returns the largest normalised offset where the profile is
// defined.
func (s Shape) NormExtent() float64 {
	if s.kind == shapeGauss {
		return s.trunc
	}
	return 1
}

// IsSquare reports whether the profile is flat.  Flat kernels have a
// discontinuity at the edge, which makes them unsuitable for some plots.
func (s Shape) IsSquare() bool {
	return s.kind == shapeSquare
}

// Evaluate returns f(x) for 0 <= x <= NormExtent.
func (s Shape) Evaluate(x float64) float64 {
	switch s.kind {
	case shapeSquare:
		return 1
	case shapeLinear:
		return 1 - x
	case shapeEpanechnikov:
		return 1 - x*x
	case shapeCos:
		return math.Cos(0.5 * math.Pi * x)
	case shapeCos2:
		c := math.Cos(0.5 * math.Pi * x)
		return c * c
	case shapeGauss:
		return math.Exp(-0.5 * x * x)
	default:
		return 0
	}
}

// Weights returns the half-kernel levels of the shape for the given width,
// i.e. the profile sampled at the offsets 0, 1, 2, ... pixels.
// The levels are not normalised.  The result has at least one element for
// width > 0; width must not be negative.
func Weights(s Shape, width float64) []float64 {
	if !(width > 0) {
		return []float64{1}
	}
	normExtent := s.NormExtent()
	ext := normExtent * width
	n := int(math.Ceil(ext))
	if float64(n) == ext && s.Evaluate(normExtent) != 0 {
		n++
	}
	n = max(n, 1)

	levels := make([]float64, n)
	xscale := 1 / width
	for i := range levels {
		levels[i] = s.Evaluate(float64(i) * xscale)
	}
	return levels
}
