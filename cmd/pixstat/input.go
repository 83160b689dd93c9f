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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// readColumns reads the given columns of a CSV file.  A first row which
// does not parse as numbers is taken to be a header and skipped.  Empty
// fields and fields which are not numbers read as NaN.
func readColumns(r io.Reader, cols ...int) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	res := make([][]float64, len(cols))
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}

		row := make([]float64, len(cols))
		numeric := false
		for k, c := range cols {
			if c < 0 || c >= len(rec) {
				return nil, fmt.Errorf("line %d: no column %d", lineOf(cr), c+1)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[c]), 64)
			if err != nil {
				v = math.NaN()
			} else {
				numeric = true
			}
			row[k] = v
		}
		if first && !numeric {
			first = false
			continue
		}
		first = false
		for k, v := range row {
			res[k] = append(res[k], v)
		}
	}
	return res, nil
}

func lineOf(cr *csv.Reader) int {
	line, _ := cr.FieldPos(0)
	return line
}

// openInput opens the named file, or standard input for "-".
func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// parseColumns parses a comma-separated list of 1-based column numbers.
func parseColumns(list string) ([]int, error) {
	var cols []int
	for _, f := range strings.Split(list, ",") {
		c, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || c < 1 {
			return nil, fmt.Errorf("invalid column %q", f)
		}
		cols = append(cols, c-1)
	}
	return cols, nil
}
