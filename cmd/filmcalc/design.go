// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/filmcalc/design"
	"github.com/katalvlaran/filmcalc/project"
	"github.com/katalvlaran/filmcalc/tmm"
)

type designReport struct {
	DesignNm    float64   `json:"designWavelength"`
	Stack       tmm.Stack `json:"stack"`
	AnalyticalR float64   `json:"analyticalR"`
	SolvedR     float64   `json:"solvedR"`
	SavedTo     string    `json:"savedTo,omitempty"`
}

func newDesignCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Generate quarter-wave designs and check them against closed forms",
	}
	cmd.AddCommand(newDesignARCmd(a), newDesignHRCmd(a))

	return cmd
}

// realIndex returns n of id at λ unless override is positive.
func (a *app) realIndex(id string, lambdaNm, override float64) (float64, error) {
	if override > 0 {
		return override, nil
	}
	idx, err := a.reg.Index(id, lambdaNm)
	if err != nil {
		return 0, err
	}

	return idx.N, nil
}

func newDesignARCmd(a *app) *cobra.Command {
	var (
		coat, substrate, save string
		at, n                 float64
	)
	cmd := &cobra.Command{
		Use:   "ar",
		Short: "Single-layer quarter-wave anti-reflection coating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nL, err := a.realIndex(coat, at, n)
			if err != nil {
				return err
			}
			nS, err := a.realIndex(substrate, at, 0)
			if err != nil {
				return err
			}
			stack, err := design.QuarterWaveAR(coat, substrate, at, nL)
			if err != nil {
				return err
			}

			return a.reportDesign(cmd, fmt.Sprintf("QW AR %s on %s", coat, substrate), stack, at,
				design.AnalyticalQWReflectance(1, nL, nS), save)
		},
	}
	f := cmd.Flags()
	f.StringVar(&coat, "coat", "MgF2", "coating material id")
	f.StringVar(&substrate, "substrate", "BK7", "substrate material id")
	f.Float64Var(&at, "at", 550, "design wavelength (nm)")
	f.Float64Var(&n, "n", 0, "coating index (default: catalog n at the design wavelength)")
	f.StringVar(&save, "save", "", "save the design to a .json/.yaml/.toml file")

	return cmd
}

func newDesignHRCmd(a *app) *cobra.Command {
	var (
		high, low, substrate, save string
		at, nH, nL                 float64
		pairs                      int
	)
	cmd := &cobra.Command{
		Use:   "hr",
		Short: "Quarter-wave high reflector (H L)^N H",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := a.realIndex(high, at, nH)
			if err != nil {
				return err
			}
			l, err := a.realIndex(low, at, nL)
			if err != nil {
				return err
			}
			s, err := a.realIndex(substrate, at, 0)
			if err != nil {
				return err
			}
			stack, err := design.HighReflectorStack(high, low, substrate, at, h, l, pairs)
			if err != nil {
				return err
			}

			return a.reportDesign(cmd, fmt.Sprintf("HR (%s %s)^%d %s on %s", high, low, pairs, high, substrate), stack, at,
				design.AnalyticalHRReflectance(1, h, l, s, pairs), save)
		},
	}
	f := cmd.Flags()
	f.StringVar(&high, "high", "TiO2", "high-index material id")
	f.StringVar(&low, "low", "SiO2", "low-index material id")
	f.StringVar(&substrate, "substrate", "BK7", "substrate material id")
	f.Float64Var(&at, "at", 550, "design wavelength (nm)")
	f.Float64Var(&nH, "nh", 0, "high index (default: catalog n at the design wavelength)")
	f.Float64Var(&nL, "nl", 0, "low index (default: catalog n at the design wavelength)")
	f.IntVar(&pairs, "pairs", 5, "number of H L pairs")
	f.StringVar(&save, "save", "", "save the design to a .json/.yaml/.toml file")

	return cmd
}

func (a *app) reportDesign(cmd *cobra.Command, name string, stack tmm.Stack, at, analytical float64, save string) error {
	res, err := a.solver.Solve(stack, at)
	if err != nil {
		return err
	}
	report := designReport{DesignNm: at, Stack: stack, AnalyticalR: analytical, SolvedR: res.R}

	if save != "" {
		if err := project.Save(save, project.New(name, stack, a.cfg.Range)); err != nil {
			return err
		}
		report.SavedTo = save
		a.log.Info("saved design", "path", save)
	}
	if a.wantJSON() {
		return printJSON(cmd.OutOrStdout(), report)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, name)
	tw := newTable(w)
	for i, l := range stack.Layers {
		fmt.Fprintf(tw, "%d\t%s\t%.2f nm\n", i+1, l.MaterialID, l.ThicknessNm)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "R at %g nm: %.4f %% (closed form %.4f %%)\n", at, res.R*100, analytical*100)
	if report.SavedTo != "" {
		fmt.Fprintf(w, "saved to %s\n", report.SavedTo)
	}

	return nil
}
