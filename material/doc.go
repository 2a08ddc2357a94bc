// SPDX-License-Identifier: MIT

// Package material models wavelength-dependent complex refractive indices.
//
// Every material is a Def binding an identifier to a display name, a
// visualization color and a Dispersion: a pure function wavelength (nm) →
// Index{N, K}. Three families of dispersion are available:
//
//   - Sellmeier — n² = 1 + Σ Bᵢλ²/(λ²−Cᵢ), λ in µm, k = 0 (transparent dielectrics).
//   - Cauchy    — n = A + B/λ² + C/λ⁴, λ in µm, constant k.
//   - Table     — piecewise-linear interpolation of tabulated (λ, n, k) samples,
//     clamped to the boundary samples outside the table range.
//
// plus Constant for wavelength-independent media such as Air.
//
// Definitions are collected into an immutable Registry:
//
//	reg, err := material.Catalog()          // builtin materials
//	idx, err := reg.Index("SiO2", 550)      // {N: ~1.46, K: 0}
//	_, err = reg.Get("Unobtainium")         // errors.Is(err, material.ErrUnknownMaterial)
//
// A Registry has no mutators. Build it once at startup and share it freely;
// concurrent readers need no synchronization.
package material
