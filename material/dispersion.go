// SPDX-License-Identifier: MIT

package material

import (
	"fmt"
	"math"
	"sort"
)

// Index is a refractive index n together with its extinction coefficient k.
type Index struct {
	N float64 // real refractive index
	K float64 // extinction coefficient, ≥ 0
}

// Complex returns η = n − i·k.
//
// The negative imaginary part corresponds to an exp(+iωt) time dependence;
// every consumer of the complex index in this module uses the same convention.
func (x Index) Complex() complex128 {
	return complex(x.N, -x.K)
}

// Dispersion evaluates a material's index at a wavelength in nanometers.
// Implementations must be pure and safe for concurrent use.
type Dispersion interface {
	At(lambdaNm float64) Index
}

// DispersionFunc adapts an ordinary function to the Dispersion interface.
type DispersionFunc func(lambdaNm float64) Index

// At calls f(lambdaNm).
func (f DispersionFunc) At(lambdaNm float64) Index { return f(lambdaNm) }

// Constant is a wavelength-independent index.
type Constant Index

// At returns the constant index regardless of wavelength.
func (c Constant) At(float64) Index { return Index(c) }

// Vacuum is the n = 1, k = 0 sentinel used for Air.
var Vacuum = Constant{N: 1, K: 0}

// SellmeierTerm is one resonance of the Sellmeier sum: B·λ²/(λ² − C), C in µm².
type SellmeierTerm struct {
	B float64
	C float64
}

// Sellmeier models a transparent dielectric:
//
//	n² = 1 + Σ Bᵢ·λ²/(λ² − Cᵢ),  λ in µm,  k = 0
//
// Near a pole (λ² ≈ Cᵢ) the sum can turn negative; n² is clamped to 1 so the
// result is never NaN and never below 1.
type Sellmeier []SellmeierTerm

// At evaluates the Sellmeier sum at lambdaNm.
func (s Sellmeier) At(lambdaNm float64) Index {
	l := lambdaNm / 1000
	l2 := l * l
	n2 := 1.0
	for _, term := range s {
		n2 += term.B * l2 / (l2 - term.C)
	}
	// NaN compares false, so the clamp also absorbs 0/0 at an exact pole.
	if !(n2 >= 1) {
		n2 = 1
	}

	return Index{N: math.Sqrt(n2), K: 0}
}

// Cauchy is the empirical n = A + B/λ² + C/λ⁴ law (λ in µm) with a constant
// extinction coefficient K.
type Cauchy struct {
	A, B, C float64
	K       float64
}

// At evaluates the Cauchy law at lambdaNm. n is floored at 1 like Sellmeier.
func (c Cauchy) At(lambdaNm float64) Index {
	l2 := (lambdaNm / 1000) * (lambdaNm / 1000)
	n := c.A + c.B/l2 + c.C/(l2*l2)
	if !(n >= 1) {
		n = 1
	}

	return Index{N: n, K: c.K}
}

// Sample is one tabulated (λ, n, k) point.
type Sample struct {
	LambdaNm float64
	N        float64
	K        float64
}

// Table interpolates tabulated samples linearly. Build it with NewTable so
// the ascending-order invariant holds.
type Table struct {
	samples []Sample
}

// NewTable validates and copies samples.
//
// Errors:
//   - ErrEmptyTable    — no samples.
//   - ErrUnsortedTable — wavelengths not strictly ascending.
//   - ErrInvalidIndex  — non-finite values, n ≤ 0 or k < 0.
func NewTable(samples []Sample) (Table, error) {
	if len(samples) == 0 {
		return Table{}, ErrEmptyTable
	}
	for i, s := range samples {
		if !isFinite(s.LambdaNm) || !isFinite(s.N) || !isFinite(s.K) || s.N <= 0 || s.K < 0 {
			return Table{}, fmt.Errorf("sample %d (λ=%g): %w", i, s.LambdaNm, ErrInvalidIndex)
		}
		if i > 0 && s.LambdaNm <= samples[i-1].LambdaNm {
			return Table{}, fmt.Errorf("sample %d (λ=%g): %w", i, s.LambdaNm, ErrUnsortedTable)
		}
	}
	cp := make([]Sample, len(samples))
	copy(cp, samples)

	return Table{samples: cp}, nil
}

// MustTable is NewTable for compile-time data; it panics on invalid input.
func MustTable(samples []Sample) Table {
	t, err := NewTable(samples)
	if err != nil {
		panic(err)
	}

	return t
}

// At interpolates between the two samples bracketing lambdaNm. At or beyond
// either end of the table the boundary sample is returned unchanged.
// Complexity: O(log n).
func (t Table) At(lambdaNm float64) Index {
	s := t.samples
	if len(s) == 0 {
		return Index{}
	}
	first, last := s[0], s[len(s)-1]
	if lambdaNm <= first.LambdaNm {
		return Index{N: first.N, K: first.K}
	}
	if lambdaNm >= last.LambdaNm {
		return Index{N: last.N, K: last.K}
	}
	// hi is the first sample with λ ≥ lambdaNm; 1 ≤ hi ≤ len(s)-1 here.
	hi := sort.Search(len(s), func(i int) bool { return s[i].LambdaNm >= lambdaNm })
	lo := hi - 1
	f := (lambdaNm - s[lo].LambdaNm) / (s[hi].LambdaNm - s[lo].LambdaNm)

	return Index{
		N: s[lo].N + f*(s[hi].N-s[lo].N),
		K: s[lo].K + f*(s[hi].K-s[lo].K),
	}
}

// Samples returns a copy of the tabulated data.
func (t Table) Samples() []Sample {
	cp := make([]Sample, len(t.samples))
	copy(cp, t.samples)

	return cp
}

// Range returns the wavelength span covered by the table.
func (t Table) Range() (minNm, maxNm float64) {
	if len(t.samples) == 0 {
		return 0, 0
	}

	return t.samples[0].LambdaNm, t.samples[len(t.samples)-1].LambdaNm
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
