// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/filmcalc/spectrum"
)

// SpectrumHeader is the first row written by WriteSpectrumCSV.
var SpectrumHeader = []string{"Wavelength (nm)", "R (%)", "T (%)", "A (%)"}

// WriteSpectrumCSV writes one row per point: the wavelength in its shortest
// exact form, then R, T and A as percentages with four decimals.
func WriteSpectrumCSV(w io.Writer, points []spectrum.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SpectrumHeader); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.WavelengthNm, 'f', -1, 64),
			percent(p.R),
			percent(p.T),
			percent(p.A),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row λ=%g: %w", p.WavelengthNm, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func percent(v float64) string { return strconv.FormatFloat(v*100, 'f', 4, 64) }
