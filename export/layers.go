// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/filmcalc/material"
	"github.com/katalvlaran/filmcalc/tmm"
)

// LayerRow describes one layer of a stack. Index is 1-based from the
// incident side.
type LayerRow struct {
	Index        int     `json:"index"`
	MaterialID   string  `json:"material"`
	MaterialName string  `json:"materialName"`
	ThicknessNm  float64 `json:"thickness"`
}

// LayerTable is the printable summary of a stack.
type LayerTable struct {
	Incident  string     `json:"incident"`
	Substrate string     `json:"substrate"`
	Layers    []LayerRow `json:"layers"`
}

// LayerSummary resolves display names for every layer of stack. An empty
// incident id is reported as Air. Unknown layer materials return
// material.ErrUnknownMaterial.
func LayerSummary(reg *material.Registry, stack tmm.Stack) (LayerTable, error) {
	if reg == nil {
		return LayerTable{}, ErrNilRegistry
	}
	t := LayerTable{
		Incident:  stack.IncidentID(),
		Substrate: stack.Substrate,
		Layers:    make([]LayerRow, len(stack.Layers)),
	}
	for i, l := range stack.Layers {
		def, err := reg.Get(l.MaterialID)
		if err != nil {
			return LayerTable{}, fmt.Errorf("layer %d: %w", i+1, err)
		}
		t.Layers[i] = LayerRow{
			Index:        i + 1,
			MaterialID:   l.MaterialID,
			MaterialName: def.Name,
			ThicknessNm:  l.ThicknessNm,
		}
	}

	return t, nil
}

// WriteLayerCSV writes the layer rows of t under a header row.
func WriteLayerCSV(w io.Writer, t LayerTable) error {
	cw := csv.NewWriter(w)
	rows := make([][]string, 0, len(t.Layers)+1)
	rows = append(rows, []string{"Layer", "Material", "Name", "Thickness (nm)"})
	for _, l := range t.Layers {
		rows = append(rows, []string{
			strconv.Itoa(l.Index),
			l.MaterialID,
			l.MaterialName,
			strconv.FormatFloat(l.ThicknessNm, 'f', -1, 64),
		})
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("export: write layers: %w", err)
	}

	return nil
}
