// SPDX-License-Identifier: MIT

package tmm_test

import (
	"testing"

	"github.com/katalvlaran/filmcalc/tmm"
)

func mirror(pairs int) tmm.Stack {
	layers := make([]tmm.Layer, 0, 2*pairs+1)
	for i := 0; i < pairs; i++ {
		layers = append(layers,
			tmm.Layer{MaterialID: "TiO2", ThicknessNm: 56.7},
			tmm.Layer{MaterialID: "SiO2", ThicknessNm: 94.2},
		)
	}
	layers = append(layers, tmm.Layer{MaterialID: "TiO2", ThicknessNm: 56.7})

	return tmm.Stack{Layers: layers, Substrate: "BK7"}
}

func benchmarkSolve(b *testing.B, stack tmm.Stack) {
	s := newSolver(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(stack, 550); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Bare measures the zero-layer Fresnel path.
func BenchmarkSolve_Bare(b *testing.B) { benchmarkSolve(b, tmm.Stack{Substrate: "BK7"}) }

// BenchmarkSolve_Mirror5 solves an 11-layer quarter-wave mirror.
func BenchmarkSolve_Mirror5(b *testing.B) { benchmarkSolve(b, mirror(5)) }

// BenchmarkSolve_Mirror25 solves a 51-layer stack.
func BenchmarkSolve_Mirror25(b *testing.B) { benchmarkSolve(b, mirror(25)) }

// BenchmarkCharacteristicMatrix builds one absorbing-layer matrix.
func BenchmarkCharacteristicMatrix(b *testing.B) {
	eta := complex(0.06, -3.33)
	for i := 0; i < b.N; i++ {
		_ = tmm.CharacteristicMatrix(eta, 50, 550)
	}
}
