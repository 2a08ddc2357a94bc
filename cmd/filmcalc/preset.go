// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/filmcalc/design"
)

type presetRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Layers      int    `json:"layers"`
}

func newPresetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Example coatings",
	}
	cmd.AddCommand(newPresetListCmd(a), newPresetRunCmd(a))

	return cmd
}

func newPresetListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List example coatings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ps := design.Presets()
			rows := make([]presetRow, len(ps))
			for i, p := range ps {
				rows[i] = presetRow{ID: p.ID, Name: p.Name, Description: p.Description, Layers: len(p.Stack.Layers)}
			}
			if a.wantJSON() {
				return printJSON(cmd.OutOrStdout(), rows)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "ID\tNAME\tLAYERS\tDESCRIPTION\n")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.ID, r.Name, r.Layers, r.Description)
			}

			return tw.Flush()
		},
	}
}

func newPresetRunCmd(a *app) *cobra.Command {
	var (
		rf   rangeFlags
		outs sweepOutputs
	)
	cmd := &cobra.Command{
		Use:       "run PRESET",
		Short:     "Sweep an example coating over its suggested range",
		Args:      cobra.ExactArgs(1),
		ValidArgs: design.PresetIDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := design.LookupPreset(args[0])
			if err != nil {
				return err
			}

			return a.runSweep(cmd, p.Name, p.Stack, rf.resolve(cmd, p.Range), outs)
		},
	}
	rf.register(cmd)
	outs.register(cmd)

	return cmd
}
