// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/filmcalc/export"
)

func newLayersCmd(a *app) *cobra.Command {
	var (
		sf    stackFlags
		asCSV bool
	)
	cmd := &cobra.Command{
		Use:   "layers",
		Short: "Print the layer table of a stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stack, _, err := sf.resolve(cmd)
			if err != nil {
				return err
			}
			table, err := export.LayerSummary(a.reg, stack)
			if err != nil {
				return err
			}
			switch {
			case asCSV:
				return export.WriteLayerCSV(cmd.OutOrStdout(), table)
			case a.wantJSON():
				return printJSON(cmd.OutOrStdout(), table)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "\t%s\t(incident)\t\n", table.Incident)
			for _, l := range table.Layers {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%g nm\n", l.Index, l.MaterialID, l.MaterialName, l.ThicknessNm)
			}
			fmt.Fprintf(tw, "\t%s\t(substrate)\t\n", table.Substrate)
			fmt.Fprintf(tw, "total\t\t\t%g nm\n", stack.TotalThicknessNm())

			return tw.Flush()
		},
	}
	sf.register(cmd)
	cmd.Flags().BoolVar(&asCSV, "csv", false, "print the table as CSV")

	return cmd
}
