// SPDX-License-Identifier: MIT

// Package spectrum samples a thin-film stack across a wavelength range and
// reduces the samples to summary statistics.
//
// A sweep is a pure function of (solver, stack, range): every wavelength is
// solved independently, so samples can be evaluated in any order and are
// reassembled by ascending wavelength.
//
//	rng := spectrum.DefaultRange()                      // 300–1100 nm, step 5
//	pts, err := spectrum.Sweep(solver, stack, rng)      // 161 points
//	sum := spectrum.Summarize(pts)                      // peaks + visible averages
//
// For lazy consumption, Points yields the same samples one by one and can be
// ranged over repeatedly:
//
//	for p, err := range spectrum.Points(solver, stack, rng) { ... }
//
// Compare scores one spectrum against another (RMSE on the shared grid and a
// dynamic-time-warping distance between reflectance curves).
package spectrum
