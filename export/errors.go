// SPDX-License-Identifier: MIT

package export

import "errors"

var (
	// ErrNoData indicates an empty spectrum or stack was given to a renderer.
	ErrNoData = errors.New("export: nothing to render")

	// ErrNilRegistry indicates a layer summary without a material registry.
	ErrNilRegistry = errors.New("export: nil material registry")
)
