// SPDX-License-Identifier: MIT

// Package design generates common quarter-wave thin-film designs and the
// closed-form reflectances used to validate the solver against them.
//
// Generators return plain tmm.Stack values; the analytical formulas never
// call the solver, so a test can compare the two independently:
//
//	nL, _ := reg.Index("MgF2", 550)
//	nS, _ := reg.Index("BK7", 550)
//	stack, _ := design.QuarterWaveAR("MgF2", "BK7", 550, nL.N)
//	want := design.AnalyticalQWReflectance(1, nL.N, nS.N)
//	got, _ := solver.Solve(stack, 550) // got.R ≈ want
//
// Presets lists a handful of ready-made coatings (AR, V-coat, broadband AR,
// high reflector, dichroic) with their suggested sweep ranges.
package design
