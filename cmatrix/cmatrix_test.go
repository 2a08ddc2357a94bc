// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/filmcalc/cmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func assertComplexNear(t *testing.T, want, got complex128, msg string) {
	t.Helper()
	assert.InDelta(t, real(want), real(got), eps, msg+" (re)")
	assert.InDelta(t, imag(want), imag(got), eps, msg+" (im)")
}

// TestCosSin_MatchStdlib checks the hyperbolic-identity trig against math/cmplx.
func TestCosSin_MatchStdlib(t *testing.T) {
	inputs := []complex128{0, 1, complex(0.7, -0.3), complex(-2.1, 1.5), complex(3.3, -4.2)}
	for _, z := range inputs {
		assertComplexNear(t, cmplx.Cos(z), cmatrix.Cos(z), "cos")
		assertComplexNear(t, cmplx.Sin(z), cmatrix.Sin(z), "sin")
	}
}

// TestCos_RealArgumentHasNoImaginaryPart guards against using real trig
// where absorption makes the argument complex.
func TestCos_RealArgumentHasNoImaginaryPart(t *testing.T) {
	z := cmatrix.Cos(complex(1.2, 0))
	assert.InDelta(t, math.Cos(1.2), real(z), eps)
	assert.Zero(t, imag(z))
}

// TestSqrt_PrincipalBranch verifies the polar-form root and its branch choice.
func TestSqrt_PrincipalBranch(t *testing.T) {
	assertComplexNear(t, 2, cmatrix.Sqrt(4), "sqrt(4)")
	assertComplexNear(t, complex(0, 2), cmatrix.Sqrt(complex(-4, 0)), "sqrt(-4+0i)")
	assertComplexNear(t, complex(0, -2), cmatrix.Sqrt(complex(-4, math.Copysign(0, -1))), "sqrt(-4-0i)")

	for _, z := range []complex128{complex(3, 4), complex(-1, 2), complex(0.5, -7)} {
		root := cmatrix.Sqrt(z)
		assert.GreaterOrEqual(t, real(root), 0.0, "principal root has non-negative real part")
		assertComplexNear(t, z, root*root, "root squared")
		assertComplexNear(t, cmplx.Sqrt(z), root, "matches cmplx.Sqrt")
	}
}

func TestAbs2AndScale(t *testing.T) {
	assert.Equal(t, 25.0, cmatrix.Abs2(complex(3, -4)))
	assert.Equal(t, complex(6, -8), cmatrix.Scale(2, complex(3, -4)))
}

// TestDivisionByZero_PropagatesIEEE documents that zero denominators do not panic.
func TestDivisionByZero_PropagatesIEEE(t *testing.T) {
	var zero complex128
	q := complex(1, 1) / zero
	assert.False(t, cmatrix.IsFinite(q))
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	m := cmatrix.New(complex(1, 2), complex(3, -1), complex(0, 1), complex(-2, 0.5))
	assert.Equal(t, m, cmatrix.Identity().Mul(m))
	assert.Equal(t, m, m.Mul(cmatrix.Identity()))
	assert.Equal(t, cmatrix.Identity(), cmatrix.Product())
}

// TestMul_NonCommutative verifies that order of factors matters.
func TestMul_NonCommutative(t *testing.T) {
	a := cmatrix.New(1, 2, 3, 4)
	b := cmatrix.New(0, 1, 1, 0)

	ab := a.Mul(b)
	ba := b.Mul(a)
	require.Equal(t, cmatrix.New(2, 1, 4, 3), ab)
	require.Equal(t, cmatrix.New(3, 4, 1, 2), ba)
	assert.NotEqual(t, ab, ba)
}

func TestProduct_LeftToRight(t *testing.T) {
	a := cmatrix.New(1, complex(0, 1), 0, 1)
	b := cmatrix.New(2, 0, complex(1, -1), 1)
	c := cmatrix.New(0, 1, -1, 0)

	assert.Equal(t, a.Mul(b).Mul(c), cmatrix.Product(a, b, c))
}

func TestDet(t *testing.T) {
	m := cmatrix.New(complex(2, 1), 3, complex(0, -1), 4)
	m11, m12, m21, m22 := m.Entries()
	assert.Equal(t, m11*m22-m12*m21, m.Det())
	assert.Equal(t, complex128(1), cmatrix.Identity().Det())
}

func TestMat2_IsFinite(t *testing.T) {
	assert.True(t, cmatrix.Identity().IsFinite())
	assert.False(t, cmatrix.New(complex(math.Inf(1), 0), 0, 0, 1).IsFinite())
	assert.False(t, cmatrix.New(1, 0, complex(0, math.NaN()), 1).IsFinite())
}
