// SPDX-License-Identifier: MIT

// Package export writes computed spectra and stack descriptions to files:
// CSV tables, PNG charts and PNG stack diagrams.
//
// Nothing here computes optics; every writer takes already solved data.
//
//	export.WriteSpectrumCSV(w, pts)          // Wavelength (nm),R (%),T (%),A (%)
//	export.RenderChart(w, pts)               // R/T/A versus wavelength
//	export.RenderStackDiagram(w, reg, stack) // layers colored by material
//
// Gzip wraps any writer in a gzip stream for compressed output.
package export
