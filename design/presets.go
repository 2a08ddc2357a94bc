// SPDX-License-Identifier: MIT

package design

import (
	"fmt"

	"github.com/katalvlaran/filmcalc/material"
	"github.com/katalvlaran/filmcalc/spectrum"
	"github.com/katalvlaran/filmcalc/tmm"
)

// Preset is a named example coating with a suggested sweep range.
type Preset struct {
	ID          string
	Name        string
	Description string
	Stack       tmm.Stack
	Range       spectrum.Range
}

func layer(id string, d float64) tmm.Layer { return tmm.Layer{MaterialID: id, ThicknessNm: d} }

func repeat(n int, ls ...tmm.Layer) []tmm.Layer {
	out := make([]tmm.Layer, 0, n*len(ls))
	for range n {
		out = append(out, ls...)
	}

	return out
}

func onBK7(ls ...tmm.Layer) tmm.Stack {
	return tmm.Stack{Incident: material.AirID, Layers: ls, Substrate: "BK7"}
}

func sweep(start, end float64) spectrum.Range {
	return spectrum.Range{StartNm: start, EndNm: end, StepNm: spectrum.DefaultStepNm}
}

// Presets returns the example designs in display order. Layers are listed
// from the air side to the substrate side. Each call returns fresh values.
func Presets() []Preset {
	return []Preset{
		{
			ID:          "single-ar",
			Name:        "Single-Layer AR (MgF2)",
			Description: "MgF2 quarter-wave on BK7 at 550 nm",
			Stack:       onBK7(layer("MgF2", 99.6)), // 550/(4·1.38)
			Range:       sweep(300, 1100),
		},
		{
			ID:          "vcoat-ar",
			Name:        "V-Coat AR (TiO2/SiO2)",
			Description: "Two-layer V-coat on BK7 centered at 550 nm",
			Stack:       onBK7(layer("SiO2", 94.2), layer("TiO2", 51.9)),
			Range:       sweep(400, 800),
		},
		{
			ID:          "broadband-ar",
			Name:        "Broadband AR (4-Layer)",
			Description: "MgF2/SiO2/TiO2/Al2O3 on BK7, low R across 400–700 nm",
			Stack:       onBK7(layer("MgF2", 92), layer("SiO2", 16), layer("TiO2", 105), layer("Al2O3", 75)),
			Range:       sweep(350, 800),
		},
		{
			ID:          "high-reflector",
			Name:        "High Reflector (6-Layer)",
			Description: "Alternating SiO2/TiO2 quarter-wave stack on BK7 at 633 nm",
			Stack:       onBK7(repeat(3, layer("SiO2", 108.4), layer("TiO2", 59.7))...),
			Range:       sweep(400, 900),
		},
		{
			ID:          "dichroic",
			Name:        "Dichroic Filter (Blue-Reflect)",
			Description: "10-layer SiO2/TiO2 stack, reflects below 500 nm and transmits red",
			Stack:       onBK7(repeat(5, layer("SiO2", 82.2), layer("TiO2", 45.3))...),
			Range:       sweep(350, 800),
		},
	}
}

// PresetIDs returns preset identifiers in display order.
func PresetIDs() []string {
	ps := Presets()
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}

	return ids
}

// LookupPreset returns the preset with the given id, or ErrUnknownPreset.
func LookupPreset(id string) (Preset, error) {
	for _, p := range Presets() {
		if p.ID == id {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
}
