// SPDX-License-Identifier: MIT

// Package filmcalc computes the optical response of thin-film coatings:
// reflectance R, transmittance T and absorptance A of a stack of dielectric
// and metallic layers on a substrate, at normal incidence, with the
// transfer-matrix method.
//
// What is in the module?
//
//	cmatrix/    — complex trig and square root, 2×2 complex matrices
//	material/   — dispersion models (Sellmeier, Cauchy, tabulated n/k) and the
//	              immutable material Registry with the builtin catalog
//	tmm/        — characteristic layer matrices and the stack Solver
//	spectrum/   — wavelength ranges, sweeps (sequential or fanned out),
//	              summaries and spectrum comparison
//	design/     — quarter-wave AR and high-reflector generators, closed-form
//	              reflectances, example presets
//	export/     — CSV, layer tables, PNG charts and stack diagrams
//	project/    — design documents in JSON, YAML or TOML
//	store/      — SQLite design library
//	cmd/filmcalc — the command-line front end
//
// Layers are ordered from the incident medium towards the substrate:
//
//	  Air         (incident)
//	  ─────────
//	  MgF2 99.6 nm
//	  ─────────
//	  BK7         (substrate)
//
// A minimal computation:
//
//	reg, _ := material.Catalog()
//	solver, _ := tmm.NewSolver(reg)
//	stack := tmm.Stack{Layers: []tmm.Layer{{MaterialID: "MgF2", ThicknessNm: 99.6}}, Substrate: "BK7"}
//	res, _ := solver.Solve(stack, 550) // res.R ≈ 0.0125
//
// Scope: coherent, collimated, normally incident light; one isotropic
// complex index per material and wavelength.
package filmcalc
