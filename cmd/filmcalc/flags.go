// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/filmcalc/project"
	"github.com/katalvlaran/filmcalc/spectrum"
	"github.com/katalvlaran/filmcalc/tmm"
)

var errBadLayer = errors.New("layer must be MATERIAL:THICKNESS_NM")

// parseLayer reads "MgF2:99.6".
func parseLayer(s string) (tmm.Layer, error) {
	id, d, ok := strings.Cut(s, ":")
	if !ok || strings.TrimSpace(id) == "" {
		return tmm.Layer{}, fmt.Errorf("%w: %q", errBadLayer, s)
	}
	thickness, err := strconv.ParseFloat(strings.TrimSpace(d), 64)
	if err != nil {
		return tmm.Layer{}, fmt.Errorf("%w: %q: %w", errBadLayer, s, err)
	}

	return tmm.Layer{MaterialID: strings.TrimSpace(id), ThicknessNm: thickness}, nil
}

// stackFlags describes a stack either inline or through a design file.
type stackFlags struct {
	layers    []string
	substrate string
	incident  string
	file      string
}

func (s *stackFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArrayVarP(&s.layers, "layer", "l", nil, "layer MATERIAL:THICKNESS_NM, incident side first (repeatable)")
	f.StringVar(&s.substrate, "substrate", "BK7", "substrate material id")
	f.StringVar(&s.incident, "incident", "", "incident medium material id (default Air)")
	f.StringVarP(&s.file, "file", "f", "", "design file (.json, .yaml, .toml) instead of --layer flags")
}

// resolve returns the stack and, when loaded from a file, its document.
func (s *stackFlags) resolve(cmd *cobra.Command) (tmm.Stack, *project.Document, error) {
	if s.file != "" {
		if len(s.layers) > 0 {
			return tmm.Stack{}, nil, errors.New("--file and --layer are mutually exclusive")
		}
		doc, err := project.Load(s.file)
		if err != nil {
			return tmm.Stack{}, nil, err
		}
		stack := doc.Stack()
		if cmd.Flags().Changed("substrate") {
			stack.Substrate = s.substrate
		}
		if cmd.Flags().Changed("incident") {
			stack.Incident = s.incident
		}

		return stack, &doc, nil
	}

	stack := tmm.Stack{Incident: s.incident, Substrate: s.substrate}
	for _, raw := range s.layers {
		l, err := parseLayer(raw)
		if err != nil {
			return tmm.Stack{}, nil, err
		}
		stack.Layers = append(stack.Layers, l)
	}

	return stack, nil, nil
}

// rangeFlags overrides individual bounds of a base range.
type rangeFlags struct {
	start, end, step float64
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&r.start, "start", spectrum.DefaultStartNm, "first wavelength (nm)")
	f.Float64Var(&r.end, "end", spectrum.DefaultEndNm, "last wavelength (nm)")
	f.Float64Var(&r.step, "step", spectrum.DefaultStepNm, "wavelength step (nm)")
}

// resolve applies explicitly set flags on top of base.
func (r *rangeFlags) resolve(cmd *cobra.Command, base spectrum.Range) spectrum.Range {
	f := cmd.Flags()
	if f.Changed("start") {
		base.StartNm = r.start
	}
	if f.Changed("end") {
		base.EndNm = r.end
	}
	if f.Changed("step") {
		base.StepNm = r.step
	}

	return base
}
