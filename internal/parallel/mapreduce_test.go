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
package parallel

import (
	"slices"
	"testing"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		n, parts int
	}{
		{0, 4}, {1, 4}, {10, 3}, {10, 10}, {10, 20}, {1000, 7}, {5, 0},
	}
	for _, c := range cases {
		ranges := Split(c.n, c.parts)
		if len(ranges) == 0 {
			t.Fatalf("Split(%d, %d): no ranges", c.n, c.parts)
		}
		next := 0
		for _, r := range ranges {
			if r.Lo != next || r.Hi < r.Lo {
				t.Errorf("Split(%d, %d): bad range %v", c.n, c.parts, r)
			}
			if c.n > 0 && r.Len() == 0 {
				t.Errorf("Split(%d, %d): empty range", c.n, c.parts)
			}
			next = r.Hi
		}
		if next != max(c.n, 0) {
			t.Errorf("Split(%d, %d): covers [0, %d)", c.n, c.parts, next)
		}
	}
}

func TestMapReduceSum(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 3, 8, 100} {
		got := MapReduce(1000, workers, func(r Range) int {
			s := 0
			for i := r.Lo; i < r.Hi; i++ {
				s += i
			}
			return s
		}, func(a, b int) int { return a + b })
		if got != 999*1000/2 {
			t.Errorf("workers=%d: got %d", workers, got)
		}
	}
}

func TestMapReduceOrder(t *testing.T) {
	got := MapReduce(17, 5, func(r Range) []int {
		var res []int
		for i := r.Lo; i < r.Hi; i++ {
			res = append(res, i)
		}
		return res
	}, func(a, b []int) []int { return append(slices.Clip(a), b...) })

	for i, v := range got {
		if v != i {
			t.Fatalf("wrong order: %v", got)
		}
	}
	if len(got) != 17 {
		t.Errorf("got %d elements", len(got))
	}
}
