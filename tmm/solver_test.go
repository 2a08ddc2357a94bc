// SPDX-License-Identifier: MIT

package tmm_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/filmcalc/cmatrix"
	"github.com/katalvlaran/filmcalc/material"
	"github.com/katalvlaran/filmcalc/tmm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSolver(t testing.TB) *tmm.Solver {
	t.Helper()
	reg, err := material.Catalog()
	require.NoError(t, err)
	s, err := tmm.NewSolver(reg)
	require.NoError(t, err)

	return s
}

func requirePhysical(t *testing.T, res tmm.Result) {
	t.Helper()
	for name, v := range map[string]float64{"R": res.R, "T": res.T, "A": res.A} {
		require.GreaterOrEqual(t, v, 0.0, name)
		require.LessOrEqual(t, v, 1.0, name)
	}
	require.True(t, res.Conserves(1e-4), "R+T+A=%g", res.Sum())
}

func TestNewSolver_NilRegistry(t *testing.T) {
	_, err := tmm.NewSolver(nil)
	require.ErrorIs(t, err, tmm.ErrNilRegistry)
}

// TestSolve_BareSubstrateFresnel checks the zero-layer two-medium limit.
func TestSolve_BareSubstrateFresnel(t *testing.T) {
	s := newSolver(t)
	res, err := s.Solve(tmm.Stack{Substrate: "BK7"}, 550)
	require.NoError(t, err)

	nb, err := s.Materials().Index("BK7", 550)
	require.NoError(t, err)
	fresnel := math.Pow((nb.N-1)/(nb.N+1), 2)

	assert.InDelta(t, 0.0426, res.R, 1e-3)
	assert.InDelta(t, fresnel, res.R, 1e-12)
	assert.InDelta(t, 1-res.R, res.T, 1e-9)
	requirePhysical(t, res)
}

func TestSolve_IdenticalMedia(t *testing.T) {
	s := newSolver(t)
	res, err := s.Solve(tmm.Stack{Incident: "Air", Substrate: "Air"}, 550)
	require.NoError(t, err)
	assert.Less(t, res.R, 1e-6)
	assert.InDelta(t, 1.0, res.T, 1e-6)

	res, err = s.Solve(tmm.Stack{Incident: "BK7", Substrate: "BK7"}, 633)
	require.NoError(t, err)
	assert.Less(t, res.R, 1e-6)
	assert.InDelta(t, 1.0, res.T, 1e-6)
}

func TestSolve_TransparentLayer(t *testing.T) {
	s := newSolver(t)
	stack := tmm.Stack{Layers: []tmm.Layer{{MaterialID: "SiO2", ThicknessNm: 100}}, Substrate: "BK7"}
	res, err := s.Solve(stack, 550)
	require.NoError(t, err)
	requirePhysical(t, res)
	assert.InDelta(t, 0.0283, res.R, 1e-3)
	assert.InDelta(t, 0.0, res.A, 1e-9, "SiO2 does not absorb")
}

func TestSolve_AbsorbingMetal(t *testing.T) {
	s := newSolver(t)

	thin, err := s.Solve(tmm.Stack{Layers: []tmm.Layer{{MaterialID: "Al", ThicknessNm: 20}}, Substrate: "BK7"}, 550)
	require.NoError(t, err)
	requirePhysical(t, thin)
	assert.Greater(t, thin.A, 0.0, "metal absorbs")
	assert.InDelta(t, 0.8824, thin.R, 1e-3)

	thick, err := s.Solve(tmm.Stack{Layers: []tmm.Layer{{MaterialID: "Al", ThicknessNm: 200}}, Substrate: "BK7"}, 550)
	require.NoError(t, err)
	requirePhysical(t, thick)
	assert.Greater(t, thick.R, 0.85)
	assert.Less(t, thick.T, 1e-9, "200 nm of Al is opaque")
}

func TestSolve_QuarterWaveMgF2(t *testing.T) {
	s := newSolver(t)
	d := 550 / (4 * 1.38)
	res, err := s.Solve(tmm.Stack{Layers: []tmm.Layer{{MaterialID: "MgF2", ThicknessNm: d}}, Substrate: "BK7"}, 550)
	require.NoError(t, err)
	assert.Less(t, res.R, 0.02)
	assert.InDelta(t, 0.01247, res.R, 1e-4)
}

// TestSolve_LayerOrderMatters swaps two layers: the physical result changes.
func TestSolve_LayerOrderMatters(t *testing.T) {
	s := newSolver(t)
	a := tmm.Layer{MaterialID: "TiO2", ThicknessNm: 60}
	b := tmm.Layer{MaterialID: "MgF2", ThicknessNm: 100}

	ab, err := s.Solve(tmm.Stack{Layers: []tmm.Layer{a, b}, Substrate: "BK7"}, 550)
	require.NoError(t, err)
	ba, err := s.Solve(tmm.Stack{Layers: []tmm.Layer{b, a}, Substrate: "BK7"}, 550)
	require.NoError(t, err)
	assert.Greater(t, math.Abs(ab.R-ba.R), 1e-3)
}

func TestSolve_AllMaterialsConserveEnergy(t *testing.T) {
	s := newSolver(t)
	for _, id := range s.Materials().IDs() {
		for _, sub := range []string{"BK7", "Air"} {
			stack := tmm.Stack{Layers: []tmm.Layer{{MaterialID: id, ThicknessNm: 37}, {MaterialID: "SiO2", ThicknessNm: 80}}, Substrate: sub}
			for l := 300.0; l <= 1100; l += 100 {
				res, err := s.Solve(stack, l)
				require.NoError(t, err)
				requirePhysical(t, res)
			}
		}
	}
}

func TestSolve_UnknownMaterialPropagates(t *testing.T) {
	s := newSolver(t)
	cases := map[string]tmm.Stack{
		"layer":     {Layers: []tmm.Layer{{MaterialID: "SiO2", ThicknessNm: 10}, {MaterialID: "Kryptonite", ThicknessNm: 10}}, Substrate: "BK7"},
		"incident":  {Incident: "Vacuumish", Substrate: "BK7"},
		"substrate": {Substrate: "Marble"},
		"empty":     {},
	}
	for name, stack := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Solve(stack, 550)
			require.ErrorIs(t, err, material.ErrUnknownMaterial)
		})
	}
}

func TestSolve_InvalidInputs(t *testing.T) {
	s := newSolver(t)
	for _, l := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := s.Solve(tmm.Stack{Substrate: "BK7"}, l)
		require.ErrorIs(t, err, tmm.ErrInvalidWavelength)
	}
	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := s.Solve(tmm.Stack{Layers: []tmm.Layer{{MaterialID: "SiO2", ThicknessNm: d}}, Substrate: "BK7"}, 550)
		require.ErrorIs(t, err, tmm.ErrInvalidThickness)
	}
}

// TestCharacteristicMatrix_Unimodular checks det M = 1 for lossless and lossy layers.
func TestCharacteristicMatrix_Unimodular(t *testing.T) {
	for _, eta := range []complex128{1.46, complex(2.4, 0), complex(0.93, -6.69), complex(0.06, -3.33)} {
		m := tmm.CharacteristicMatrix(eta, 73, 550)
		det := m.Det()
		assert.InDelta(t, 1.0, real(det), 1e-9)
		assert.InDelta(t, 0.0, imag(det), 1e-9)
	}
}

// TestCharacteristicMatrix_HalfWaveIsAbsentee checks that a half-wave layer of
// a lossless material acts like -I.
func TestCharacteristicMatrix_HalfWaveIsAbsentee(t *testing.T) {
	n := 1.38
	m := tmm.CharacteristicMatrix(complex(n, 0), 550/(2*n), 550)
	m11, m12, m21, m22 := m.Entries()
	assert.InDelta(t, -1.0, real(m11), 1e-12)
	assert.InDelta(t, -1.0, real(m22), 1e-12)
	assert.InDelta(t, 0.0, cmplx.Abs(m12), 1e-12)
	assert.InDelta(t, 0.0, cmplx.Abs(m21), 1e-12)
}

func TestCharacteristicMatrix_UsesComplexTrig(t *testing.T) {
	eta := complex(0.93, -6.69)
	m := tmm.CharacteristicMatrix(eta, 20, 550)
	delta := complex(2*math.Pi*20/550, 0) * eta
	assert.InDelta(t, real(cmplx.Cos(delta)), real(m[0][0]), 1e-12)
	assert.InDelta(t, imag(cmplx.Cos(delta)), imag(m[0][0]), 1e-12)
	assert.NotZero(t, imag(m[0][0]))
}

func TestSystemMatrix_EmptyIsIdentity(t *testing.T) {
	s := newSolver(t)
	m, err := s.SystemMatrix(tmm.Stack{Substrate: "BK7"}, 500)
	require.NoError(t, err)
	assert.Equal(t, cmatrix.Identity(), m)
}

func TestSystemMatrix_ComposesInOrder(t *testing.T) {
	s := newSolver(t)
	stack := tmm.Stack{Layers: []tmm.Layer{{MaterialID: "TiO2", ThicknessNm: 50}, {MaterialID: "Au", ThicknessNm: 10}}, Substrate: "BK7"}
	m1, err := s.LayerMatrix("TiO2", 50, 600)
	require.NoError(t, err)
	m2, err := s.LayerMatrix("Au", 10, 600)
	require.NoError(t, err)

	sys, err := s.SystemMatrix(stack, 600)
	require.NoError(t, err)
	assert.Equal(t, m1.Mul(m2), sys)
}

func TestAmplitudes(t *testing.T) {
	s := newSolver(t)
	amp, err := s.Amplitudes(tmm.Stack{Substrate: "BK7"}, 550)
	require.NoError(t, err)
	assert.Less(t, real(amp.R), 0.0, "reflection off a denser medium flips sign")
	assert.InDelta(t, math.Pi, math.Abs(amp.Phase()), 1e-12)
	assert.Equal(t, complex(1, 0), amp.Incident)

	res, err := s.Solve(tmm.Stack{Substrate: "BK7"}, 550)
	require.NoError(t, err)
	assert.Equal(t, res.R, amp.Reflectance())
	assert.Equal(t, res.T, amp.Transmittance())
}

func TestResult_ConservesDetectsDegeneracy(t *testing.T) {
	assert.True(t, tmm.Result{R: 0.3, T: 0.6, A: 0.1}.Conserves(1e-9))
	assert.False(t, tmm.Result{R: math.NaN()}.Conserves(1e-4))
	assert.False(t, tmm.Result{R: math.Inf(1)}.Conserves(1e-4))
}

func TestStack_Helpers(t *testing.T) {
	s := tmm.Stack{Layers: []tmm.Layer{{MaterialID: "A", ThicknessNm: 10}, {MaterialID: "B", ThicknessNm: 2.5}}}
	assert.Equal(t, material.AirID, s.IncidentID())
	assert.Equal(t, 12.5, s.TotalThicknessNm())
	s.Incident = "BK7"
	assert.Equal(t, "BK7", s.IncidentID())
}
