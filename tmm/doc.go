// SPDX-License-Identifier: MIT

// Package tmm computes reflectance, transmittance and absorptance of
// thin-film stacks at normal incidence with the optical transfer-matrix method.
//
// Each layer j with complex index ηⱼ = nⱼ − i·kⱼ and physical thickness dⱼ
// contributes a characteristic matrix
//
//	Mⱼ = [ cos δⱼ        i·sin δⱼ / ηⱼ ]     δⱼ = 2π·ηⱼ·dⱼ / λ
//	     [ i·ηⱼ·sin δⱼ   cos δⱼ        ]
//
// The system matrix M = M₁·M₂·…·Mₙ is composed from the incident side to
// the substrate side. With incident index n₀ and substrate index nₛ:
//
//	r = (n₀m₁₁ + n₀nₛm₁₂ − m₂₁ − nₛm₂₂) / (n₀m₁₁ + n₀nₛm₁₂ + m₂₁ + nₛm₂₂)
//	t = 2n₀ / (same denominator)
//	R = |r|²,  T = Re(nₛ)/Re(n₀)·|t|²,  A = max(0, 1 − R − T)
//
// Scope: normal incidence only. There is no angle of incidence and no s/p
// polarization split; every formula above assumes θ = 0.
//
// A Solver holds a read-only *material.Registry and no other state, so a
// single Solver can serve any number of goroutines.
package tmm
