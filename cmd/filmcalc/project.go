// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/filmcalc/project"
)

func newProjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage the design library",
		Long: `Manage saved designs in the SQLite design library.

The library location comes from store.path in the config file or the
FILMCALC_STORE_PATH environment variable.`,
	}
	cmd.AddCommand(
		newProjectSaveCmd(a),
		newProjectShowCmd(a),
		newProjectListCmd(a),
		newProjectDeleteCmd(a),
	)

	return cmd
}

func newProjectSaveCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "save FILE",
		Short: "Validate a design file and add it to the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := project.Load(args[0])
			if err != nil {
				return err
			}
			if name != "" {
				doc.Name = name
			}
			if err := doc.Validate(a.reg); err != nil {
				return err
			}

			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()
			saved, err := st.Put(cmd.Context(), doc)
			if err != nil {
				return err
			}
			if a.wantJSON() {
				return printJSON(cmd.OutOrStdout(), saved)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %q as %s\n", saved.Name, saved.ID)

			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "override the design name")

	return cmd
}

func newProjectShowCmd(a *app) *cobra.Command {
	var as, out string
	cmd := &cobra.Command{
		Use:   "show ID|NAME",
		Short: "Print or export a saved design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()
			doc, err := st.Find(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if out != "" {
				if err := project.Save(out, doc); err != nil {
					return err
				}
				a.log.Info("exported design", "id", doc.ID, "path", out)

				return nil
			}
			format, err := project.ParseFormat(as)
			if err != nil {
				return err
			}
			if a.wantJSON() {
				format = project.JSON
			}
			data, err := project.Marshal(doc, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().StringVar(&as, "as", string(project.YAML), "print format: yaml, toml or json")
	cmd.Flags().StringVar(&out, "out", "", "write to a file instead (format from extension)")

	return cmd
}

func newProjectListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved designs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()
			entries, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if a.wantJSON() {
				return printJSON(cmd.OutOrStdout(), entries)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "ID\tNAME\tSUBSTRATE\tLAYERS\tTOTAL\tUPDATED\n")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%g nm\t%s\n",
					e.ID, e.Name, e.Substrate, e.Layers, e.TotalNm, e.UpdatedAt.Local().Format(time.DateTime))
			}

			return tw.Flush()
		},
	}
}

func newProjectDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID...",
		Short: "Remove saved designs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()
			for _, id := range args {
				if err := st.Delete(cmd.Context(), strings.TrimSpace(id)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			}

			return nil
		},
	}
}
