// SPDX-License-Identifier: MIT

// Package cmatrix provides the complex scalar helpers and the 2×2 complex
// matrix used by the transfer-matrix solver.
//
// Scalars are plain complex128 values: addition, subtraction, multiplication
// and division are Go's built-in operators. Division by a zero-magnitude
// complex number follows IEEE-754 and yields ±Inf/NaN components instead of
// an error; callers detect such degeneracy downstream (see tmm.Result.Conserves).
//
// On top of the operators the package adds:
//
//   - Abs2, Scale         — squared magnitude and scaling by a real factor.
//   - Cos, Sin            — complex trigonometry via hyperbolic identities.
//   - Sqrt                — principal square root via polar form.
//   - Mat2, Identity, Mul — 2×2 complex matrices and their products.
//
// Matrix multiplication is non-commutative. Product(a, b, c) means a·b·c and
// the order of factors encodes the physical order of layers in a stack.
package cmatrix
