// SPDX-License-Identifier: MIT

package material

import "errors"

// Sentinel errors for the material package. Wrapped errors keep the
// sentinel reachable through errors.Is.
var (
	// ErrUnknownMaterial indicates a lookup of an id that is not registered.
	ErrUnknownMaterial = errors.New("material: unknown material")

	// ErrDuplicateMaterial indicates two definitions share the same id.
	ErrDuplicateMaterial = errors.New("material: duplicate material id")

	// ErrEmptyID indicates a definition without an identifier.
	ErrEmptyID = errors.New("material: empty material id")

	// ErrNoDispersion indicates a definition without a dispersion function.
	ErrNoDispersion = errors.New("material: missing dispersion")

	// ErrEmptyTable indicates a tabulated dispersion without samples.
	ErrEmptyTable = errors.New("material: empty dispersion table")

	// ErrUnsortedTable indicates table wavelengths that are not strictly ascending.
	ErrUnsortedTable = errors.New("material: table wavelengths not strictly ascending")

	// ErrInvalidIndex indicates a non-physical sample (n ≤ 0, k < 0 or non-finite).
	ErrInvalidIndex = errors.New("material: invalid refractive index")

	// ErrUnknownKind indicates a catalog entry with an unsupported dispersion kind.
	ErrUnknownKind = errors.New("material: unknown dispersion kind")
)
