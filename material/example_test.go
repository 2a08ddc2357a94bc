// SPDX-License-Identifier: MIT

package material_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/filmcalc/material"
)

// ExampleRegistry_Index looks up refractive indices from the builtin catalog.
func ExampleRegistry_Index() {
	reg, err := material.Catalog()
	if err != nil {
		panic(err)
	}

	sio2, _ := reg.Index("SiO2", 550)
	gold, _ := reg.Index("Au", 600)
	fmt.Printf("SiO2 n=%.3f k=%.0f\n", sio2.N, sio2.K)
	fmt.Printf("Au   n=%.2f k=%.2f\n", gold.N, gold.K)

	_, err = reg.Index("Unobtainium", 550)
	fmt.Println(errors.Is(err, material.ErrUnknownMaterial))
	// Output:
	// SiO2 n=1.460 k=0
	// Au   n=0.17 k=3.07
	// true
}
