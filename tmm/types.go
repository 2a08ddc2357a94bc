// SPDX-License-Identifier: MIT

package tmm

import (
	"math"

	"github.com/katalvlaran/filmcalc/cmatrix"
	"github.com/katalvlaran/filmcalc/material"
)

// Layer is one film in a stack.
type Layer struct {
	MaterialID  string  `json:"materialId"`
	ThicknessNm float64 `json:"thickness"`
}

// Stack describes a complete multilayer: incident medium, ordered layers and
// substrate. Layers[0] touches the incident medium; the last layer touches
// the substrate.
type Stack struct {
	// Incident is the incident medium id; empty means material.AirID.
	Incident  string  `json:"incident,omitempty"`
	Layers    []Layer `json:"layers"`
	Substrate string  `json:"substrate"`
}

// IncidentID returns the incident medium id with the Air default applied.
func (s Stack) IncidentID() string {
	if s.Incident == "" {
		return material.AirID
	}

	return s.Incident
}

// TotalThicknessNm sums the physical thickness of all layers.
func (s Stack) TotalThicknessNm() float64 {
	var sum float64
	for _, l := range s.Layers {
		sum += l.ThicknessNm
	}

	return sum
}

// Result holds reflectance, transmittance and absorptance as fractions.
type Result struct {
	R float64 `json:"R"`
	T float64 `json:"T"`
	A float64 `json:"A"`
}

// Sum returns R + T + A.
func (r Result) Sum() float64 { return r.R + r.T + r.A }

// Conserves reports whether R + T + A is within tol of 1. It is false for any
// NaN or Inf component, which is how numerical degeneracy surfaces.
func (r Result) Conserves(tol float64) bool {
	return math.Abs(r.Sum()-1) <= tol
}

// Amplitude holds the complex amplitude coefficients of a stack and the
// media indices they were computed with.
type Amplitude struct {
	R         complex128 // reflection amplitude r
	T         complex128 // transmission amplitude t
	Incident  complex128 // n₀ = n − i·k of the incident medium
	Substrate complex128 // nₛ = n − i·k of the substrate
}

// Reflectance returns |r|².
func (a Amplitude) Reflectance() float64 { return cmatrix.Abs2(a.R) }

// Transmittance returns Re(nₛ)/Re(n₀)·|t|².
func (a Amplitude) Transmittance() float64 {
	return real(a.Substrate) / real(a.Incident) * cmatrix.Abs2(a.T)
}

// Phase returns arg(r) in radians.
func (a Amplitude) Phase() float64 { return math.Atan2(imag(a.R), real(a.R)) }
