// SPDX-License-Identifier: MIT

// Command filmcalc computes reflectance, transmittance and absorptance
// spectra of thin-film coatings.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
