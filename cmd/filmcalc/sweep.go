// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/filmcalc/export"
	"github.com/katalvlaran/filmcalc/spectrum"
	"github.com/katalvlaran/filmcalc/tmm"
)

// sweepOutputs selects what a sweep writes besides its summary.
type sweepOutputs struct {
	csv     string
	chart   string
	diagram string
	points  bool
	workers int
}

func (o *sweepOutputs) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.csv, "csv", "", "write the spectrum as CSV (gzip when the name ends in .gz)")
	f.StringVar(&o.chart, "chart", "", "render an R/T/A chart to this PNG file")
	f.StringVar(&o.diagram, "diagram", "", "render a stack diagram to this PNG file")
	f.BoolVar(&o.points, "points", false, "print every sample, not only the summary")
	f.IntVar(&o.workers, "workers", 0, "goroutines solving samples (default from config)")
}

type sweepReport struct {
	Name    string           `json:"name,omitempty"`
	Range   spectrum.Range   `json:"range"`
	Summary spectrum.Summary `json:"summary"`
	Points  []spectrum.Point `json:"points,omitempty"`
}

func newSweepCmd(a *app) *cobra.Command {
	var (
		sf   stackFlags
		rf   rangeFlags
		outs sweepOutputs
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compute the R/T/A spectrum of a stack over a wavelength range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stack, doc, err := sf.resolve(cmd)
			if err != nil {
				return err
			}
			base, name := a.cfg.Range, ""
			if doc != nil {
				base, name = doc.Range, doc.Name
			}

			return a.runSweep(cmd, name, stack, rf.resolve(cmd, base), outs)
		},
	}
	sf.register(cmd)
	rf.register(cmd)
	outs.register(cmd)

	return cmd
}

func (a *app) runSweep(cmd *cobra.Command, name string, stack tmm.Stack, rng spectrum.Range, outs sweepOutputs) error {
	workers := outs.workers
	if workers < 1 {
		workers = a.cfg.Workers
	}

	start := time.Now()
	pts, err := spectrum.Sweep(a.solver, stack, rng, spectrum.WithWorkers(workers))
	if err != nil {
		return err
	}
	a.log.Info("sweep done", "samples", len(pts), "workers", workers, "elapsed", time.Since(start))

	if outs.csv != "" {
		if err := writeFile(outs.csv, func(w io.Writer) error { return export.WriteSpectrumCSV(w, pts) }); err != nil {
			return err
		}
		a.log.Info("wrote spectrum", "path", outs.csv)
	}
	if outs.chart != "" {
		err := writeFile(outs.chart, func(w io.Writer) error {
			return export.RenderChart(w, pts, export.WithSize(a.cfg.Chart.Width, a.cfg.Chart.Height), export.WithTitle(name))
		})
		if err != nil {
			return err
		}
		a.log.Info("wrote chart", "path", outs.chart)
	}
	if outs.diagram != "" {
		err := writeFile(outs.diagram, func(w io.Writer) error {
			return export.RenderStackDiagram(w, a.reg, stack, export.WithTitle(name))
		})
		if err != nil {
			return err
		}
		a.log.Info("wrote diagram", "path", outs.diagram)
	}

	report := sweepReport{Name: name, Range: rng, Summary: spectrum.Summarize(pts)}
	if outs.points {
		report.Points = pts
	}
	if a.wantJSON() {
		return printJSON(cmd.OutOrStdout(), report)
	}

	w := cmd.OutOrStdout()
	if name != "" {
		fmt.Fprintln(w, name)
	}
	fmt.Fprintf(w, "range %s\n", rng)
	if err := printSummary(w, report.Summary); err != nil {
		return err
	}
	if outs.points {
		tw := newTable(w)
		fmt.Fprintf(tw, "λ (nm)\tR (%%)\tT (%%)\tA (%%)\n")
		for _, p := range pts {
			fmt.Fprintf(tw, "%g\t%.4f\t%.4f\t%.4f\n", p.WavelengthNm, p.R*100, p.T*100, p.A*100)
		}

		return tw.Flush()
	}

	return nil
}
