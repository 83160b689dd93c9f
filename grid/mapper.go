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
// Package grid maps continuous coordinates to integer bin indices.
//
// A [Mapper] divides one axis into bins of equal width, either additively
// (linear axes) or multiplicatively (logarithmic axes).  A [Gridder]
// combines two axis indices into a single row-major index.
package grid

import (
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/pixstat"
)

// NoIndex is returned by [Mapper.IndexOf] for values which have no bin,
// like NaN or non-positive values on a logarithmic axis.
const NoIndex = math.MinInt

// Mapper converts between data values and bin indices along one axis.
//
// Bin i covers the half-open interval [lo, hi) returned by [Mapper.Bounds].
// A value on a bin boundary belongs to the higher bin.
//
// Mapper is an immutable value type and can be shared between goroutines.
// Two Mappers are equal (in the sense of ==) if and only if they describe
// the same bins.
type Mapper struct {
	width float64
	phase float64
	ref   float64
	log   bool

	// for logarithmic mappers, the natural logarithm of width
	logWidth float64
}

// NewMapper returns a Mapper for bins of the given width.
//
// For a linear mapper, bin boundaries are at ref + (i+phase)·width.
// For a logarithmic mapper, width is a factor greater than 1, and the
// boundaries are at ref · width^(i+phase).  The phase is normally in [0, 1),
// but any finite value is accepted.
func NewMapper(width, phase, ref float64, log bool) (Mapper, error) {
	switch {
	case math.IsNaN(phase) || math.IsInf(phase, 0):
		return Mapper{}, fmt.Errorf("%w: phase %g", pixstat.ErrInvalidArgument, phase)
	case math.IsNaN(ref) || math.IsInf(ref, 0):
		return Mapper{}, fmt.Errorf("%w: reference value %g", pixstat.ErrInvalidArgument, ref)
	case math.IsInf(width, 0) || !(width > 0):
		return Mapper{}, fmt.Errorf("%w: bin width %g", pixstat.ErrInvalidArgument, width)
	}

	m := Mapper{width: width, phase: phase, ref: ref, log: log}
	if log {
		if !(width > 1) {
			return Mapper{}, fmt.Errorf("%w: logarithmic bin factor %g", pixstat.ErrInvalidArgument, width)
		}
		if !(ref > 0) {
			return Mapper{}, fmt.Errorf("%w: logarithmic reference value %g", pixstat.ErrInvalidArgument, ref)
		}
		m.logWidth = math.Log(width)
	}
	return m, nil
}

// Width returns the bin width, or the bin factor for logarithmic mappers.
func (m Mapper) Width() float64 { return m.width }

// Phase returns the offset of the bin boundaries, in units of bins.
func (m Mapper) Phase() float64 { return m.phase }

// Ref returns the reference value the bin boundaries are anchored to.
func (m Mapper) Ref() float64 { return m.ref }

// IsLog reports whether the mapper is logarithmic.
func (m Mapper) IsLog() bool { return m.log }

// Equal reports whether m and other describe the same bins.
func (m Mapper) Equal(other Mapper) bool {
	return m == other
}

// IndexOf returns the index of the bin containing v.
// If v has no bin, [NoIndex] is returned.
//
// The result agrees exactly with [Mapper.Bounds]: a value equal to a bin
// boundary, like 1000 on an axis with decade bins, belongs to the bin
// starting there.
func (m Mapper) IndexOf(v float64) int {
	x := m.position(v)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return NoIndex
	}
	x = math.Floor(x)
	if x < math.MinInt64/2 || x > math.MaxInt64/2 {
		return NoIndex
	}

	// x is only accurate to a few ulps.  Settle the index against the
	// boundaries themselves.
	i := int(x)
	for range maxSettle {
		if v < m.boundary(i) {
			i--
		} else if v >= m.boundary(i+1) {
			i++
		} else {
			break
		}
	}
	return i
}

// maxSettle bounds the number of boundary comparisons in IndexOf.
const maxSettle = 8

// Lookup is like [Mapper.IndexOf], but reports invalid input using a
// boolean instead of the sentinel value.
func (m Mapper) Lookup(v float64) (int, bool) {
	i := m.IndexOf(v)
	return i, i != NoIndex
}

// position returns v in units of bins, relative to the boundary of bin 0.
func (m Mapper) position(v float64) float64 {
	if m.log {
		if !(v > 0) {
			return math.NaN()
		}
		return math.Log(v/m.ref)/m.logWidth - m.phase
	}
	return (v-m.ref)/m.width - m.phase
}

// Bounds returns the interval [lo, hi) covered by bin i.
//
// The bounds are exact: IndexOf(lo) == i, and hi is the lower bound of
// bin i+1, so that every value below hi and at least lo maps to i.
func (m Mapper) Bounds(i int) (lo, hi float64) {
	return m.boundary(i), m.boundary(i + 1)
}

// boundary returns the lower bound of bin i.
func (m Mapper) boundary(i int) float64 {
	if m.log {
		return tidy(m.ref * math.Pow(m.width, float64(i)+m.phase))
	}
	return tidy(m.ref + (float64(i)+m.phase)*m.width)
}

// tidy replaces x by the nearest number with 15 significant decimal
// digits, if that is at most two ulps away.  This turns results like
// 3·0.1 = 0.30000000000000004 back into 0.3.  tidy is monotonic.
func tidy(x float64) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	short, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', 15, 64), 64)
	if err != nil {
		return x
	}
	a := math.Abs(x)
	ulp := math.Nextafter(a, math.Inf(1)) - a
	if math.Abs(short-x) <= 2*ulp {
		return short
	}
	return x
}

// Range returns the smallest and largest bin index touched by the closed
// interval [lo, hi].  The result is (NoIndex, NoIndex) if either end has
// no bin.
func (m Mapper) Range(lo, hi float64) (int, int) {
	if lo > hi {
		lo, hi = hi, lo
	}
	ilo := m.IndexOf(lo)
	ihi := m.IndexOf(hi)
	if ilo == NoIndex || ihi == NoIndex {
		return NoIndex, NoIndex
	}
	return ilo, ihi
}

// String returns a short description of the mapper.
func (m Mapper) String() string {
	if m.log {
		return fmt.Sprintf("log(factor=%g, phase=%g, ref=%g)", m.width, m.phase, m.ref)
	}
	return fmt.Sprintf("linear(width=%g, phase=%g, ref=%g)", m.width, m.phase, m.ref)
}
