// SPDX-License-Identifier: MIT

package tmm

import "errors"

var (
	// ErrInvalidWavelength indicates a non-positive or non-finite wavelength.
	ErrInvalidWavelength = errors.New("tmm: wavelength must be finite and > 0")

	// ErrInvalidThickness indicates a non-positive or non-finite layer thickness.
	ErrInvalidThickness = errors.New("tmm: layer thickness must be finite and > 0")

	// ErrNilRegistry indicates a Solver built without a material registry.
	ErrNilRegistry = errors.New("tmm: nil material registry")
)
