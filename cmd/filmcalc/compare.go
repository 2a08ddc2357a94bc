// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/filmcalc/project"
	"github.com/katalvlaran/filmcalc/spectrum"
)

type compareReport struct {
	Reference  string              `json:"reference"`
	Candidate  string              `json:"candidate"`
	Range      spectrum.Range      `json:"range"`
	Comparison spectrum.Comparison `json:"comparison"`
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		rf      rangeFlags
		window  int
		penalty float64
	)
	cmd := &cobra.Command{
		Use:   "compare REFERENCE CANDIDATE",
		Short: "Compare the spectra of two design files",
		Long: `Sweep two design files over the reference's range and report the RMS
difference of R and T and a dynamic-time-warping distance between the R
curves. The warping distance forgives small spectral shifts; --window limits
how far (in samples) a feature may move.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if window < 0 || !(penalty >= 0) || math.IsInf(penalty, 1) {
				return errors.New("--window and --penalty must be finite and ≥ 0")
			}
			ref, err := project.Load(args[0])
			if err != nil {
				return err
			}
			got, err := project.Load(args[1])
			if err != nil {
				return err
			}
			rng := rf.resolve(cmd, ref.Range)

			opts := []spectrum.Option{spectrum.WithWorkers(a.cfg.Workers)}
			refPts, err := spectrum.Sweep(a.solver, ref.Stack(), rng, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			gotPts, err := spectrum.Sweep(a.solver, got.Stack(), rng, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
			c, err := spectrum.Compare(refPts, gotPts, spectrum.WithWindow(window), spectrum.WithSlopePenalty(penalty))
			if err != nil {
				return err
			}

			report := compareReport{Reference: args[0], Candidate: args[1], Range: rng, Comparison: c}
			if a.wantJSON() {
				return printJSON(cmd.OutOrStdout(), report)
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "range\t%s\n", rng)
			fmt.Fprintf(tw, "shared samples\t%d\n", c.Shared)
			fmt.Fprintf(tw, "RMSE R\t%.4f %%\n", c.RMSER*100)
			fmt.Fprintf(tw, "RMSE T\t%.4f %%\n", c.RMSET*100)
			fmt.Fprintf(tw, "max |ΔR|\t%.4f %%\n", c.MaxDiffR*100)
			fmt.Fprintf(tw, "warp distance R\t%.6f\n", c.WarpR)

			return tw.Flush()
		},
	}
	rf.register(cmd)
	cmd.Flags().IntVar(&window, "window", 0, "warping band half-width in samples (0 = unconstrained)")
	cmd.Flags().Float64Var(&penalty, "penalty", 0, "cost added to each non-diagonal warping step")

	return cmd
}
