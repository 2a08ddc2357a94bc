// SPDX-License-Identifier: MIT

package material

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Dispersion kinds accepted in catalog files.
const (
	KindSellmeier = "sellmeier"
	KindCauchy    = "cauchy"
	KindTable     = "table"
	KindConstant  = "constant"
)

// catalogFile is the TOML layout of a user material catalog:
//
//	[[material]]
//	id    = "ITO"
//	name  = "Indium Tin Oxide"
//	color = "#c9ada7"
//	kind  = "cauchy"
//	a = 1.80
//	b = 0.02
//	k = 0.005
//
//	[[material]]
//	id    = "Cr"
//	kind  = "table"
//	table = [[400.0, 2.13, 3.24], [600.0, 3.18, 3.33]]   # λ nm, n, k
type catalogFile struct {
	Materials []catalogEntry `toml:"material"`
}

type catalogEntry struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Color string `toml:"color"`
	Kind  string `toml:"kind"`

	// sellmeier: [[B, C], ...] with C in µm²
	Terms [][]float64 `toml:"terms"`
	// cauchy: A, B, C (µm) and constant K; constant: N and K
	A float64 `toml:"a"`
	B float64 `toml:"b"`
	C float64 `toml:"c"`
	N float64 `toml:"n"`
	K float64 `toml:"k"`
	// table: [[λ nm, n, k], ...]
	Table [][]float64 `toml:"table"`
}

// defaultCatalogColor is used for catalog entries that do not set a color.
const defaultCatalogColor = "#999999"

// LoadCatalogFile reads a TOML material catalog from path.
func LoadCatalogFile(path string) ([]Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read material catalog: %w", err)
	}
	defs, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return defs, nil
}

// ParseCatalog decodes a TOML material catalog.
// The returned definitions keep file order and are not yet registered.
func ParseCatalog(data []byte) ([]Def, error) {
	var f catalogFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("parse material catalog: %w", err)
	}

	defs := make([]Def, 0, len(f.Materials))
	for i, e := range f.Materials {
		d, err := e.toDef()
		if err != nil {
			return nil, fmt.Errorf("material %d (%q): %w", i, e.ID, err)
		}
		defs = append(defs, d)
	}

	return defs, nil
}

func (e catalogEntry) toDef() (Def, error) {
	if e.ID == "" {
		return Def{}, ErrEmptyID
	}
	d := Def{ID: e.ID, Name: e.Name, Color: e.Color}
	if d.Name == "" {
		d.Name = e.ID
	}
	if d.Color == "" {
		d.Color = defaultCatalogColor
	}

	switch e.Kind {
	case KindSellmeier:
		if len(e.Terms) == 0 {
			return Def{}, fmt.Errorf("sellmeier needs at least one term: %w", ErrInvalidIndex)
		}
		s := make(Sellmeier, 0, len(e.Terms))
		for j, t := range e.Terms {
			if len(t) != 2 {
				return Def{}, fmt.Errorf("sellmeier term %d must be [B, C]: %w", j, ErrInvalidIndex)
			}
			if !isFinite(t[0]) || !isFinite(t[1]) {
				return Def{}, fmt.Errorf("sellmeier term %d %v: %w", j, t, ErrInvalidIndex)
			}
			s = append(s, SellmeierTerm{B: t[0], C: t[1]})
		}
		d.Dispersion = s
	case KindCauchy:
		if !allFinite(e.A, e.B, e.C, e.K) || e.A <= 0 || e.K < 0 {
			return Def{}, fmt.Errorf("cauchy A=%g K=%g: %w", e.A, e.K, ErrInvalidIndex)
		}
		d.Dispersion = Cauchy{A: e.A, B: e.B, C: e.C, K: e.K}
	case KindTable:
		samples := make([]Sample, 0, len(e.Table))
		for j, row := range e.Table {
			if len(row) != 3 {
				return Def{}, fmt.Errorf("table row %d must be [λ, n, k]: %w", j, ErrInvalidIndex)
			}
			samples = append(samples, Sample{LambdaNm: row[0], N: row[1], K: row[2]})
		}
		t, err := NewTable(samples)
		if err != nil {
			return Def{}, err
		}
		d.Dispersion = t
	case KindConstant:
		if !allFinite(e.N, e.K) || e.N <= 0 || e.K < 0 {
			return Def{}, fmt.Errorf("constant n=%g k=%g: %w", e.N, e.K, ErrInvalidIndex)
		}
		d.Dispersion = Constant{N: e.N, K: e.K}
	default:
		return Def{}, fmt.Errorf("%q: %w", e.Kind, ErrUnknownKind)
	}

	return d, nil
}

func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if !isFinite(v) {
			return false
		}
	}

	return true
}
