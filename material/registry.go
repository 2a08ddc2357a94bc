// SPDX-License-Identifier: MIT

package material

import "fmt"

// AirID is the default incident medium.
const AirID = "Air"

// Def describes one registered material.
type Def struct {
	ID         string     // registry key, e.g. "SiO2"
	Name       string     // display name, e.g. "SiO2 (Fused Silica)"
	Color      string     // CSS hex color used in stack diagrams
	Dispersion Dispersion // wavelength (nm) → Index
}

// At evaluates the material's dispersion at lambdaNm.
func (d Def) At(lambdaNm float64) Index {
	return d.Dispersion.At(lambdaNm)
}

// Registry is an immutable id → Def mapping that remembers registration order.
//
// A Registry has no mutating methods: once NewRegistry returns, it may be
// shared between goroutines without locking.
type Registry struct {
	byID  map[string]Def
	order []string
}

// NewRegistry builds a registry from defs in the given order.
//
// Errors:
//   - ErrEmptyID           — a definition has no id.
//   - ErrNoDispersion      — a definition has a nil Dispersion.
//   - ErrDuplicateMaterial — two definitions share an id.
func NewRegistry(defs ...Def) (*Registry, error) {
	r := &Registry{
		byID:  make(map[string]Def, len(defs)),
		order: make([]string, 0, len(defs)),
	}
	for i, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("definition %d: %w", i, ErrEmptyID)
		}
		if d.Dispersion == nil {
			return nil, fmt.Errorf("%q: %w", d.ID, ErrNoDispersion)
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("%q: %w", d.ID, ErrDuplicateMaterial)
		}
		if d.Name == "" {
			d.Name = d.ID
		}
		r.byID[d.ID] = d
		r.order = append(r.order, d.ID)
	}

	return r, nil
}

// Get returns the definition registered under id, or an error wrapping
// ErrUnknownMaterial.
func (r *Registry) Get(id string) (Def, error) {
	d, ok := r.byID[id]
	if !ok {
		return Def{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, id)
	}

	return d, nil
}

// Index resolves id and evaluates its dispersion at lambdaNm.
func (r *Registry) Index(id string, lambdaNm float64) (Index, error) {
	d, err := r.Get(id)
	if err != nil {
		return Index{}, err
	}

	return d.At(lambdaNm), nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]

	return ok
}

// Len returns the number of registered materials.
func (r *Registry) Len() int { return len(r.order) }

// IDs returns material ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// List returns material definitions in registration order.
func (r *Registry) List() []Def {
	out := make([]Def, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}

	return out
}
