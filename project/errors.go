// SPDX-License-Identifier: MIT

package project

import "errors"

var (
	// ErrUnknownFormat indicates a file extension or format name that is not
	// json, yaml/yml or toml.
	ErrUnknownFormat = errors.New("project: unknown document format")

	// ErrInvalidDocument indicates a document that cannot describe a
	// solvable stack.
	ErrInvalidDocument = errors.New("project: invalid document")
)
