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
package grid

import "math"

// NiceWidth returns a bin width for which roughly nbin bins cover the
// interval [lo, hi].  The width is of the form 1, 2 or 5 times a power of
// ten.  For logarithmic axes the result is a bin factor, chosen so that its
// decimal logarithm has this form.
//
// If no sensible width exists, NiceWidth returns 1 for linear axes and 10
// for logarithmic axes.
func NiceWidth(lo, hi float64, nbin int, log bool) float64 {
	if nbin < 1 {
		nbin = 1
	}
	if log {
		if !(lo > 0 && hi > 0) || lo == hi {
			return 10
		}
		step := math.Abs(math.Log10(hi/lo)) / float64(nbin)
		return math.Pow(10, niceNumber(step))
	}

	span := math.Abs(hi - lo)
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 1
	}
	return niceNumber(span / float64(nbin))
}

// niceNumber rounds x > 0 to the nearest value of the form {1,2,5}·10ⁿ,
// in logarithmic distance.
func niceNumber(x float64) float64 {
	if !(x > 0) || math.IsInf(x, 0) {
		return 1
	}
	exp := math.Floor(math.Log10(x))
	base := math.Pow(10, exp)
	best := base
	for _, f := range []float64{2, 5, 10} {
		c := f * base
		if math.Abs(math.Log(c/x)) < math.Abs(math.Log(best/x)) {
			best = c
		}
	}
	return best
}
