// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/filmcalc/export"
	"github.com/katalvlaran/filmcalc/spectrum"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printSummary(w io.Writer, s spectrum.Summary) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "samples\t%d\n", s.Samples)
	fmt.Fprintf(tw, "peak R\t%.4f %%\tat %g nm\n", s.PeakR.Value*100, s.PeakR.WavelengthNm)
	fmt.Fprintf(tw, "peak T\t%.4f %%\tat %g nm\n", s.PeakT.Value*100, s.PeakT.WavelengthNm)
	fmt.Fprintf(tw, "min R\t%.4f %%\tat %g nm\n", s.MinR.Value*100, s.MinR.WavelengthNm)
	fmt.Fprintf(tw, "avg R %d–%d nm\t%.4f %%\n", spectrum.VisibleStartNm, spectrum.VisibleEndNm, s.AvgRVisible*100)
	fmt.Fprintf(tw, "avg T %d–%d nm\t%.4f %%\n", spectrum.VisibleStartNm, spectrum.VisibleEndNm, s.AvgTVisible*100)

	return tw.Flush()
}

// writeFile creates path and fills it, gzip-compressing when path ends in .gz.
func writeFile(path string, fill func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if export.IsGzipPath(path) {
		return export.Gzip(f, fill)
	}

	return fill(f)
}
