// SPDX-License-Identifier: MIT

package tmm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/filmcalc/cmatrix"
	"github.com/katalvlaran/filmcalc/material"
)

// Solver evaluates stacks against an injected material registry.
type Solver struct {
	materials *material.Registry
}

// NewSolver returns a Solver reading indices from reg.
func NewSolver(reg *material.Registry) (*Solver, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	return &Solver{materials: reg}, nil
}

// Materials returns the registry the solver reads from.
func (s *Solver) Materials() *material.Registry { return s.materials }

// SystemMatrix multiplies the characteristic matrices of stack.Layers in
// physical order, incident side first. It returns the identity for a stack
// without layers.
func (s *Solver) SystemMatrix(stack Stack, lambdaNm float64) (cmatrix.Mat2, error) {
	m := cmatrix.Identity()
	for i, l := range stack.Layers {
		lm, err := s.LayerMatrix(l.MaterialID, l.ThicknessNm, lambdaNm)
		if err != nil {
			return cmatrix.Mat2{}, fmt.Errorf("layer %d: %w", i+1, err)
		}
		m = m.Mul(lm)
	}

	return m, nil
}

// Amplitudes returns the complex reflection and transmission amplitudes of
// stack at lambdaNm.
//
// A zero denominator is not special-cased: r and t become Inf/NaN.
func (s *Solver) Amplitudes(stack Stack, lambdaNm float64) (Amplitude, error) {
	if err := checkWavelength(lambdaNm); err != nil {
		return Amplitude{}, err
	}
	inc, err := s.materials.Index(stack.IncidentID(), lambdaNm)
	if err != nil {
		return Amplitude{}, fmt.Errorf("incident medium: %w", err)
	}
	sub, err := s.materials.Index(stack.Substrate, lambdaNm)
	if err != nil {
		return Amplitude{}, fmt.Errorf("substrate: %w", err)
	}
	n0, ns := inc.Complex(), sub.Complex()

	m, err := s.SystemMatrix(stack, lambdaNm)
	if err != nil {
		return Amplitude{}, err
	}
	m11, m12, m21, m22 := m.Entries()

	b := n0*m11 + n0*ns*m12
	c := m21 + ns*m22
	den := b + c

	return Amplitude{
		R:         (b - c) / den,
		T:         2 * n0 / den,
		Incident:  n0,
		Substrate: ns,
	}, nil
}

// Solve returns R, T and A of stack at lambdaNm.
//
// Errors from the registry (material.ErrUnknownMaterial) are returned wrapped
// with the position that failed; errors.Is still matches the sentinel.
func (s *Solver) Solve(stack Stack, lambdaNm float64) (Result, error) {
	amp, err := s.Amplitudes(stack, lambdaNm)
	if err != nil {
		return Result{}, err
	}
	r, t := amp.Reflectance(), amp.Transmittance()

	return Result{R: r, T: t, A: math.Max(0, 1-r-t)}, nil
}
