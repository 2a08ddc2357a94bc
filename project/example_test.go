// SPDX-License-Identifier: MIT

package project_test

import (
	"fmt"

	"github.com/katalvlaran/filmcalc/project"
	"github.com/katalvlaran/filmcalc/spectrum"
	"github.com/katalvlaran/filmcalc/tmm"
)

// ExampleMarshal encodes a design as JSON.
func ExampleMarshal() {
	d := project.FromStack(tmm.Stack{
		Layers:    []tmm.Layer{{MaterialID: "MgF2", ThicknessNm: 99.6}},
		Substrate: "BK7",
	})
	d.Name = "MgF2 AR"
	d.Range = spectrum.Range{StartNm: 400, EndNm: 700, StepNm: 5}

	data, err := project.Marshal(d, project.JSON)
	if err != nil {
		panic(err)
	}
	fmt.Print(string(data))
	// Output:
	// {
	//   "id": "",
	//   "name": "MgF2 AR",
	//   "substrate": "BK7",
	//   "layers": [
	//     {
	//       "material": "MgF2",
	//       "thickness": 99.6
	//     }
	//   ],
	//   "range": {
	//     "startNm": 400,
	//     "endNm": 700,
	//     "stepNm": 5
	//   }
	// }
}
