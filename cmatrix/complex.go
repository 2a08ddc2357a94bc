// SPDX-License-Identifier: MIT

package cmatrix

import "math"

// Abs2 returns the squared magnitude |z|² = re² + im².
// Complexity: O(1).
func Abs2(z complex128) float64 {
	re, im := real(z), imag(z)

	return re*re + im*im
}

// Scale multiplies z by the real factor s.
// Complexity: O(1).
func Scale(s float64, z complex128) complex128 {
	return complex(s*real(z), s*imag(z))
}

// Cos returns the complex cosine of z = a + bi:
//
//	cos(a+bi) = cos a·cosh b − i·sin a·sinh b
//
// A non-zero imaginary part (absorption) makes cosh/sinh grow exponentially;
// results stay finite for the phase depths met in thin films.
// Complexity: O(1).
func Cos(z complex128) complex128 {
	a, b := real(z), imag(z)

	return complex(math.Cos(a)*math.Cosh(b), -math.Sin(a)*math.Sinh(b))
}

// Sin returns the complex sine of z = a + bi:
//
//	sin(a+bi) = sin a·cosh b + i·cos a·sinh b
//
// Complexity: O(1).
func Sin(z complex128) complex128 {
	a, b := real(z), imag(z)

	return complex(math.Sin(a)*math.Cosh(b), math.Cos(a)*math.Sinh(b))
}

// Sqrt returns the principal square root of z computed in polar form:
//
//	|√z| = √|z|,  arg √z = atan2(im, re) / 2
//
// The branch cut lies along the negative real axis. On the cut itself the
// result depends on the sign of the (possibly negative) zero imaginary part,
// exactly as math.Atan2 resolves it: Sqrt(-4+0i) = 2i, Sqrt(-4-0i) = -2i.
// Complexity: O(1).
func Sqrt(z complex128) complex128 {
	r := math.Sqrt(math.Hypot(real(z), imag(z)))
	theta := math.Atan2(imag(z), real(z)) / 2

	return complex(r*math.Cos(theta), r*math.Sin(theta))
}

// IsFinite reports whether both components of z are finite.
func IsFinite(z complex128) bool {
	return !math.IsInf(real(z), 0) && !math.IsNaN(real(z)) &&
		!math.IsInf(imag(z), 0) && !math.IsNaN(imag(z))
}
