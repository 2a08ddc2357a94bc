// SPDX-License-Identifier: MIT

package design_test

import (
	"fmt"

	"github.com/katalvlaran/filmcalc/design"
)

// ExampleHighReflectorStack builds a three-pair quarter-wave mirror and its
// closed-form reflectance.
func ExampleHighReflectorStack() {
	const nH, nL, nSub = 2.35, 1.46, 1.52

	stack, err := design.HighReflectorStack("TiO2", "SiO2", "BK7", 633, nH, nL, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(stack.Layers), "layers")
	fmt.Printf("H=%.1f nm L=%.1f nm\n", stack.Layers[0].ThicknessNm, stack.Layers[1].ThicknessNm)
	fmt.Printf("R=%.3f\n", design.AnalyticalHRReflectance(1, nH, nL, nSub, 3))
	// Output:
	// 7 layers
	// H=67.3 nm L=108.4 nm
	// R=0.939
}
