// SPDX-License-Identifier: MIT

package project

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/filmcalc/material"
	"github.com/katalvlaran/filmcalc/spectrum"
	"github.com/katalvlaran/filmcalc/tmm"
)

// Layer is the stored form of tmm.Layer.
type Layer struct {
	Material  string  `json:"material" yaml:"material" toml:"material"`
	Thickness float64 `json:"thickness" yaml:"thickness" toml:"thickness"`
}

// Document is a saved design.
type Document struct {
	ID          string         `json:"id" yaml:"id" toml:"id"`
	Name        string         `json:"name" yaml:"name" toml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Incident    string         `json:"incident,omitempty" yaml:"incident,omitempty" toml:"incident,omitempty"`
	Substrate   string         `json:"substrate" yaml:"substrate" toml:"substrate"`
	Layers      []Layer        `json:"layers" yaml:"layers" toml:"layers"`
	Range       spectrum.Range `json:"range" yaml:"range" toml:"range"`
}

// New returns a document for stack with a fresh random id. A zero rng
// becomes spectrum.DefaultRange.
func New(name string, stack tmm.Stack, rng spectrum.Range) Document {
	d := FromStack(stack)
	d.ID = uuid.New().String()
	d.Name = name
	d.Range = rng.WithDefaults()

	return d
}

// FromStack copies stack into a document without id, name or range.
func FromStack(stack tmm.Stack) Document {
	d := Document{
		Incident:  stack.Incident,
		Substrate: stack.Substrate,
		Layers:    make([]Layer, len(stack.Layers)),
	}
	for i, l := range stack.Layers {
		d.Layers[i] = Layer{Material: l.MaterialID, Thickness: l.ThicknessNm}
	}

	return d
}

// Stack returns the solver input described by d.
func (d Document) Stack() tmm.Stack {
	s := tmm.Stack{
		Incident:  d.Incident,
		Substrate: d.Substrate,
		Layers:    make([]tmm.Layer, len(d.Layers)),
	}
	for i, l := range d.Layers {
		s.Layers[i] = tmm.Layer{MaterialID: l.Material, ThicknessNm: l.Thickness}
	}

	return s
}

// Validate checks that d can be solved against reg: a name and substrate
// are present, every material is registered, thicknesses are finite and
// positive, and the range is valid. Problems are reported together.
func (d Document) Validate(reg *material.Registry) error {
	var problems []string
	if strings.TrimSpace(d.Name) == "" {
		problems = append(problems, "empty name")
	}
	if d.ID != "" {
		if _, err := uuid.Parse(d.ID); err != nil {
			problems = append(problems, fmt.Sprintf("id %q is not a UUID", d.ID))
		}
	}
	check := func(what, id string) {
		if reg != nil && !reg.Has(id) {
			problems = append(problems, fmt.Sprintf("%s: unknown material %q", what, id))
		}
	}
	if d.Incident != "" {
		check("incident", d.Incident)
	}
	if d.Substrate == "" {
		problems = append(problems, "empty substrate")
	} else {
		check("substrate", d.Substrate)
	}
	for i, l := range d.Layers {
		check(fmt.Sprintf("layer %d", i+1), l.Material)
		if math.IsNaN(l.Thickness) || math.IsInf(l.Thickness, 0) || l.Thickness <= 0 {
			problems = append(problems, fmt.Sprintf("layer %d: thickness %g must be finite and > 0", i+1, l.Thickness))
		}
	}
	if err := d.Range.Validate(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(problems, "; "))
	}

	return nil
}
