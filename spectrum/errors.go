// SPDX-License-Identifier: MIT

package spectrum

import "errors"

var (
	// ErrInvalidRange indicates a non-positive step, an end before the start,
	// non-finite bounds or too many samples. Ranges are rejected before any
	// sample is solved.
	ErrInvalidRange = errors.New("spectrum: invalid wavelength range")

	// ErrEmptySpectrum indicates a comparison input without samples.
	ErrEmptySpectrum = errors.New("spectrum: empty spectrum")

	// ErrNoOverlap indicates two spectra without a shared wavelength.
	ErrNoOverlap = errors.New("spectrum: spectra share no wavelength")
)
