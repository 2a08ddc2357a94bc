// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type solveResult struct {
	WavelengthNm float64  `json:"wavelength"`
	R            float64  `json:"R"`
	T            float64  `json:"T"`
	A            float64  `json:"A"`
	PhaseR       *float64 `json:"phaseR,omitempty"`
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		sf    stackFlags
		at    float64
		phase bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute R, T and A of a stack at one wavelength",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stack, _, err := sf.resolve(cmd)
			if err != nil {
				return err
			}
			res, err := a.solver.Solve(stack, at)
			if err != nil {
				return err
			}
			out := solveResult{WavelengthNm: at, R: res.R, T: res.T, A: res.A}
			if phase {
				amp, err := a.solver.Amplitudes(stack, at)
				if err != nil {
					return err
				}
				p := amp.Phase()
				out.PhaseR = &p
			}
			a.log.Debug("solved", "layers", len(stack.Layers), "wavelength", at)

			if a.wantJSON() {
				return printJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "λ = %g nm\n", at)
			fmt.Fprintf(w, "R = %.4f %%\nT = %.4f %%\nA = %.4f %%\n", res.R*100, res.T*100, res.A*100)
			if out.PhaseR != nil {
				fmt.Fprintf(w, "φr = %.4f rad\n", *out.PhaseR)
			}

			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().Float64Var(&at, "at", 550, "wavelength (nm)")
	cmd.Flags().BoolVar(&phase, "phase", false, "also print the phase of the reflection amplitude")

	return cmd
}
