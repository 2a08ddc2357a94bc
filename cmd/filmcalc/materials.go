// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type materialRow struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color string  `json:"color"`
	N     float64 `json:"n"`
	K     float64 `json:"k"`
}

func newMaterialsCmd(a *app) *cobra.Command {
	var at float64
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List registered materials with n and k at one wavelength",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs := a.reg.List()
			rows := make([]materialRow, len(defs))
			for i, d := range defs {
				idx := d.At(at)
				rows[i] = materialRow{ID: d.ID, Name: d.Name, Color: d.Color, N: idx.N, K: idx.K}
			}
			if a.wantJSON() {
				return printJSON(cmd.OutOrStdout(), rows)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "ID\tNAME\tn@%g\tk@%g\n", at, at)
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\n", r.ID, r.Name, r.N, r.K)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().Float64Var(&at, "at", 550, "wavelength (nm) for the n/k columns")

	return cmd
}

type nkPoint struct {
	WavelengthNm float64 `json:"wavelength"`
	N            float64 `json:"n"`
	K            float64 `json:"k"`
}

func newNKCmd(a *app) *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:   "nk MATERIAL",
		Short: "Print the dispersion n(λ), k(λ) of a material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.reg.Get(args[0])
			if err != nil {
				return err
			}
			rng := rf.resolve(cmd, a.cfg.Range)
			if err := rng.Validate(); err != nil {
				return err
			}

			pts := make([]nkPoint, 0, rng.Count())
			for l := range rng.Wavelengths() {
				idx := def.At(l)
				pts = append(pts, nkPoint{WavelengthNm: l, N: idx.N, K: idx.K})
			}
			if a.wantJSON() {
				return printJSON(cmd.OutOrStdout(), pts)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "λ (nm)\tn\tk\n")
			for _, p := range pts {
				fmt.Fprintf(tw, "%g\t%.5f\t%.5f\n", p.WavelengthNm, p.N, p.K)
			}

			return tw.Flush()
		},
	}
	rf.register(cmd)

	return cmd
}
