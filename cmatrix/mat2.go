// SPDX-License-Identifier: MIT

package cmatrix

import "fmt"

// Mat2 is a 2×2 complex matrix stored row-major:
//
//	[ m[0][0]  m[0][1] ]
//	[ m[1][0]  m[1][1] ]
//
// Mat2 is a value type; every operation returns a new matrix and never
// mutates its receiver.
type Mat2 [2][2]complex128

// Identity returns the multiplicative neutral element I.
// Complexity: O(1).
func Identity() Mat2 {
	return Mat2{
		{1, 0},
		{0, 1},
	}
}

// New builds a matrix from its four entries in row order.
func New(m11, m12, m21, m22 complex128) Mat2 {
	return Mat2{
		{m11, m12},
		{m21, m22},
	}
}

// Mul returns the product m·b using row×column composition.
// Mul is not commutative: m.Mul(b) and b.Mul(m) differ in general.
// Complexity: O(1) (8 complex multiplications).
func (m Mat2) Mul(b Mat2) Mat2 {
	return Mat2{
		{
			m[0][0]*b[0][0] + m[0][1]*b[1][0],
			m[0][0]*b[0][1] + m[0][1]*b[1][1],
		},
		{
			m[1][0]*b[0][0] + m[1][1]*b[1][0],
			m[1][0]*b[0][1] + m[1][1]*b[1][1],
		},
	}
}

// Product multiplies factors left to right: Product(a, b, c) = a·b·c.
// With no factors it returns Identity().
// Complexity: O(len(ms)).
func Product(ms ...Mat2) Mat2 {
	acc := Identity()
	for _, f := range ms {
		acc = acc.Mul(f)
	}

	return acc
}

// Det returns the determinant m11·m22 − m12·m21.
// A lossless or absorbing layer's characteristic matrix is unimodular
// (Det == 1), and so is any product of them.
func (m Mat2) Det() complex128 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Entries returns (m11, m12, m21, m22).
func (m Mat2) Entries() (m11, m12, m21, m22 complex128) {
	return m[0][0], m[0][1], m[1][0], m[1][1]
}

// IsFinite reports whether all four entries are finite.
func (m Mat2) IsFinite() bool {
	return IsFinite(m[0][0]) && IsFinite(m[0][1]) && IsFinite(m[1][0]) && IsFinite(m[1][1])
}

// String implements fmt.Stringer for debugging.
func (m Mat2) String() string {
	return fmt.Sprintf("[%g, %g]\n[%g, %g]\n", m[0][0], m[0][1], m[1][0], m[1][1])
}
