// SPDX-License-Identifier: MIT

// Package project reads and writes saved coating designs.
//
// A Document is a named stack plus the wavelength range it is meant to be
// swept over. Documents are stored as JSON, YAML or TOML, chosen by file
// extension:
//
//	name = "MgF2 AR"
//	substrate = "BK7"
//
//	[[layers]]
//	material = "MgF2"
//	thickness = 99.6
//
//	[range]
//	startNm = 400
//	endNm = 700
//	stepNm = 5
//
// The optical core never reads documents; callers convert with Stack and
// FromStack.
package project
