// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/filmcalc/internal/config"
	"github.com/katalvlaran/filmcalc/internal/logging"
	"github.com/katalvlaran/filmcalc/material"
	"github.com/katalvlaran/filmcalc/store"
	"github.com/katalvlaran/filmcalc/tmm"
)

// app carries the state shared by every subcommand. It is filled by the
// root command's PersistentPreRunE before any subcommand runs.
type app struct {
	configPath    string
	materialsPath string
	verbosity     int
	quiet         bool
	output        string

	cfg    *config.Config
	log    *slog.Logger
	reg    *material.Registry
	solver *tmm.Solver
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "filmcalc",
		Short: "Thin-film optical coating calculator",
		Long: `filmcalc computes reflectance (R), transmittance (T) and absorptance (A)
of thin-film stacks at normal incidence with the transfer-matrix method.

Layers are given incident side first as MATERIAL:THICKNESS_NM, or loaded from
a design file (JSON, YAML or TOML).

Examples:
  filmcalc materials
  filmcalc solve -l MgF2:99.6 --substrate BK7 --at 550
  filmcalc sweep -l SiO2:94.2 -l TiO2:51.9 --start 400 --end 800 --csv vcoat.csv
  filmcalc design hr --high TiO2 --low SiO2 --pairs 5 --at 633
  filmcalc preset run dichroic --chart dichroic.png`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.init(cmd) },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: search filmcalc.{yaml,toml,json})")
	pf.StringVar(&a.materialsPath, "materials", "", "TOML catalog of extra materials")
	pf.CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "suppress all logging")
	pf.StringVarP(&a.output, "output", "o", "text", "output format: text or json")

	root.AddCommand(
		newMaterialsCmd(a),
		newNKCmd(a),
		newSolveCmd(a),
		newSweepCmd(a),
		newLayersCmd(a),
		newDesignCmd(a),
		newPresetCmd(a),
		newProjectCmd(a),
		newCompareCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	switch a.output {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", a.output)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	level := logging.LevelFromVerbosity(logging.LevelFromString(cfg.Log.Level), a.verbosity, a.quiet)
	log, err := logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
	if err != nil {
		return err
	}
	gg.SetLogger(log)

	catalogPath := a.materialsPath
	if catalogPath == "" {
		catalogPath = cfg.MaterialsFile
	}
	var extra []material.Def
	if catalogPath != "" {
		if extra, err = material.LoadCatalogFile(catalogPath); err != nil {
			return err
		}
		log.Info("loaded material catalog", "path", catalogPath, "materials", len(extra))
	}
	reg, err := material.Catalog(extra...)
	if err != nil {
		return err
	}
	solver, err := tmm.NewSolver(reg)
	if err != nil {
		return err
	}

	a.cfg, a.log, a.reg, a.solver = cfg, log, reg, solver

	return nil
}

func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	return store.Open(ctx, a.cfg.Store.Path, a.log)
}

func (a *app) wantJSON() bool { return a.output == "json" }
