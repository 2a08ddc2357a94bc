// SPDX-License-Identifier: MIT

package spectrum_test

import (
	"testing"

	"github.com/katalvlaran/filmcalc/spectrum"
	"github.com/katalvlaran/filmcalc/tmm"
)

func benchStack() tmm.Stack {
	layers := make([]tmm.Layer, 0, 20)
	for i := 0; i < 10; i++ {
		layers = append(layers,
			tmm.Layer{MaterialID: "TiO2", ThicknessNm: 56.7},
			tmm.Layer{MaterialID: "SiO2", ThicknessNm: 94.2},
		)
	}

	return tmm.Stack{Layers: layers, Substrate: "BK7"}
}

func benchmarkSweep(b *testing.B, opts ...spectrum.Option) {
	s := newSolver(b)
	stack := benchStack()
	rng := spectrum.Range{StartNm: 300, EndNm: 1100, StepNm: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spectrum.Sweep(s, stack, rng, opts...); err != nil {
			b.Fatalf("Sweep failed: %v", err)
		}
	}
}

// BenchmarkSweep_Sequential sweeps a 20-layer mirror over 801 samples.
func BenchmarkSweep_Sequential(b *testing.B) { benchmarkSweep(b) }

// BenchmarkSweep_Workers4 runs the same sweep on four goroutines.
func BenchmarkSweep_Workers4(b *testing.B) { benchmarkSweep(b, spectrum.WithWorkers(4)) }

// BenchmarkCompare_Window10 scores two 801-sample spectra.
func BenchmarkCompare_Window10(b *testing.B) {
	s := newSolver(b)
	rng := spectrum.Range{StartNm: 300, EndNm: 1100, StepNm: 1}
	ref, err := spectrum.Sweep(s, benchStack(), rng)
	if err != nil {
		b.Fatal(err)
	}
	shifted := benchStack()
	shifted.Layers[0].ThicknessNm += 5
	got, err := spectrum.Sweep(s, shifted, rng)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spectrum.Compare(ref, got, spectrum.WithWindow(10)); err != nil {
			b.Fatal(err)
		}
	}
}
