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
	"encoding/json"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/pixstat/testcases"
)

var casesOut string

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Export the rasterization test cases as JSON",
	Long: `Writes every rasterization test case, together with the pixels it
covers, as a JSON array.  The output can be used to compare other
rasterizers with this one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if casesOut == "-" {
			return exportCases(cmd.OutOrStdout())
		}
		f, err := os.Create(casesOut)
		if err != nil {
			return err
		}
		err = exportCases(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return err
	},
}

func init() {
	casesCmd.Flags().StringVar(&casesOut, "out", "-", "output file, - for standard output")
	rootCmd.AddCommand(casesCmd)
}

type exportedCase struct {
	Category string   `json:"category"`
	Name     string   `json:"name"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Pixels   [][2]int `json:"pixels"`
}

func exportCases(w io.Writer) error {
	var out []exportedCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			pix := tc.Render()
			ec := exportedCase{
				Category: category,
				Name:     tc.Name,
				Width:    tc.Width,
				Height:   tc.Height,
				Pixels:   make([][2]int, 0, pix.Len()),
			}
			for p := range pix.All() {
				ec.Pixels = append(ec.Pixels, [2]int{p.X, p.Y})
			}
			out = append(out, ec)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
