// SPDX-License-Identifier: MIT

package design

import "errors"

var (
	// ErrInvalidDesign indicates a non-positive or non-finite wavelength or
	// index, or a negative pair count.
	ErrInvalidDesign = errors.New("design: invalid design parameters")

	// ErrUnknownPreset indicates a lookup of an unregistered preset id.
	ErrUnknownPreset = errors.New("design: unknown preset")
)
