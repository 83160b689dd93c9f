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
// Package bin aggregates values into integer-indexed bins.
//
// An [Accumulator] collects (index, value, weight) submissions and reduces
// the values falling into each bin with a [Combiner].  Accumulators built
// from disjoint parts of a data set can be merged, which allows the input to
// be processed in parallel; see [AccumulateParallel].  Once all data has
// been submitted, [Accumulator.Finalize] returns an immutable [Result].
package bin

import (
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/pixstat"
)

// Kind identifies the reduction performed by a [Combiner].
type Kind uint8

// These are the supported kinds of combiner.
const (
	KindCount Kind = iota
	KindDensity
	KindSum
	KindWeightedDensity
	KindMean
	KindMedian
	KindQuantile
	KindSampleStdev
	KindPopulationStdev
	KindMin
	KindMax
	KindHit
)

// Type describes how the bin values of a combiner scale.
type Type uint8

const (
	// Extensive values scale with the number of submissions per bin,
	// like a sum.  An empty bin can be interpreted as zero.
	Extensive Type = iota

	// Intensive values are averages of some kind.  Nothing can be said
	// about the value of an empty bin.
	Intensive

	// DensityType values are like Extensive ones, but must be divided by
	// the bin size before use.
	DensityType
)

// IsExtensive reports whether empty bins can be interpreted as zero.
func (t Type) IsExtensive() bool {
	return t != Intensive
}

// BinFactor returns the factor which bin values must be multiplied by,
// for bins of the given extent.
func (t Type) BinFactor(extent float64) float64 {
	if t == DensityType {
		return 1 / extent
	}
	return 1
}

func (t Type) String() string {
	switch t {
	case Extensive:
		return "extensive"
	case Intensive:
		return "intensive"
	case DensityType:
		return "density"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Combiner selects how the values in a bin are reduced to a single number.
// Combiner values are comparable.
type Combiner struct {
	kind Kind
	p    float64 // quantile level, only for KindQuantile
}

// The predefined combiners.  Use [Quantile] for arbitrary quantiles.
var (
	// Count is the number of values in a bin.  Weights are ignored.
	Count = Combiner{kind: KindCount}

	// Density is the number of values per unit of bin size.
	// Weights are ignored.
	Density = Combiner{kind: KindDensity}

	// Sum is the weighted sum of the values.
	Sum = Combiner{kind: KindSum}

	// WeightedDensity is the weighted sum of the values per unit of
	// bin size.
	WeightedDensity = Combiner{kind: KindWeightedDensity}

	// Mean is the weighted mean of the values.
	Mean = Combiner{kind: KindMean}

	// Median is the weighted median of the values.
	Median = Combiner{kind: KindMedian, p: 0.5}

	// SampleStdev is the sample standard deviation, using the weights as
	// frequency weights.
	SampleStdev = Combiner{kind: KindSampleStdev}

	// PopulationStdev is the population standard deviation, using the
	// weights as frequency weights.
	PopulationStdev = Combiner{kind: KindPopulationStdev}

	// Min is the smallest value.  Weights are ignored.
	Min = Combiner{kind: KindMin}

	// Max is the largest value.  Weights are ignored.
	Max = Combiner{kind: KindMax}

	// Hit is 1 for bins which contain any value.  Weights are ignored.
	Hit = Combiner{kind: KindHit}
)

// Quantile returns a combiner for the p-quantile of the values in a bin.
// The level p must be in the range [0, 1].
func Quantile(p float64) (Combiner, error) {
	if !(p >= 0 && p <= 1) {
		return Combiner{}, fmt.Errorf("%w: quantile level %g", pixstat.ErrInvalidArgument, p)
	}
	return Combiner{kind: KindQuantile, p: p}, nil
}

// All returns the predefined combiners.
func All() []Combiner {
	return []Combiner{
		Sum, WeightedDensity, Count, Density, Mean, Median,
		Min, Max, SampleStdev, PopulationStdev, Hit,
	}
}

// Kind returns the kind of reduction performed.
func (c Combiner) Kind() Kind {
	return c.kind
}

// Level returns the quantile level for median and quantile combiners,
// and zero otherwise.
func (c Combiner) Level() float64 {
	return c.p
}

// Type returns the scaling behaviour of the combined values.
func (c Combiner) Type() Type {
	switch c.kind {
	case KindCount, KindSum, KindHit:
		return Extensive
	case KindDensity, KindWeightedDensity:
		return DensityType
	default:
		return Intensive
	}
}

// retainsSamples reports whether the combiner needs every value submitted.
func (c Combiner) retainsSamples() bool {
	return c.kind == KindMedian || c.kind == KindQuantile
}

// Name returns the name of the combiner, as accepted by [ParseCombiner].
func (c Combiner) Name() string {
	switch c.kind {
	case KindCount:
		return "count"
	case KindDensity:
		return "count-per-unit"
	case KindSum:
		return "sum"
	case KindWeightedDensity:
		return "sum-per-unit"
	case KindMean:
		return "mean"
	case KindMedian:
		return "median"
	case KindQuantile:
		return "q" + strconv.FormatFloat(c.p, 'g', -1, 64)
	case KindSampleStdev:
		return "stdev"
	case KindPopulationStdev:
		return "stdev-pop"
	case KindMin:
		return "min"
	case KindMax:
		return "max"
	case KindHit:
		return "hit"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(c.kind))
	}
}

func (c Combiner) String() string {
	return c.Name()
}

// Description returns a short description of the combined value.
func (c Combiner) Description() string {
	switch c.kind {
	case KindCount:
		return "the number of non-blank values per bin (weight is ignored)"
	case KindDensity:
		return "the number of non-blank values per unit of bin size (weight is ignored)"
	case KindSum:
		return "the sum of all the combined values per bin"
	case KindWeightedDensity:
		return "the sum of all the combined values per unit of bin size"
	case KindMean:
		return "the mean of the combined values"
	case KindMedian:
		return "the median of the combined values"
	case KindQuantile:
		return fmt.Sprintf("the %g quantile of the combined values", c.p)
	case KindSampleStdev:
		return "the sample standard deviation of the combined values"
	case KindPopulationStdev:
		return "the population standard deviation of the combined values"
	case KindMin:
		return "the minimum of all the combined values"
	case KindMax:
		return "the maximum of all the combined values"
	case KindHit:
		return "1 if any values present, NaN otherwise (weight is ignored)"
	default:
		return ""
	}
}

// ParseCombiner returns the combiner with the given name.
// Quantiles are written as "q" followed by the level, for example "q0.9".
func ParseCombiner(name string) (Combiner, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range All() {
		if c.Name() == name {
			return c, nil
		}
	}
	if rest, ok := strings.CutPrefix(name, "q"); ok {
		p, err := strconv.ParseFloat(rest, 64)
		if err == nil {
			return Quantile(p)
		}
	}
	return Combiner{}, fmt.Errorf("%w: unknown combiner %q", pixstat.ErrInvalidArgument, name)
}
