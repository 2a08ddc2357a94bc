// SPDX-License-Identifier: MIT

package spectrum

import (
	"fmt"
	"math"
)

// wavelengthTol matches samples of two spectra as "the same wavelength".
const wavelengthTol = 1e-6

// Comparison scores a spectrum against a reference.
type Comparison struct {
	// Shared is the number of wavelengths present in both spectra.
	Shared int `json:"shared"`
	// RMSER and RMSET are root-mean-square differences on the shared grid.
	RMSER float64 `json:"rmseR"`
	RMSET float64 `json:"rmseT"`
	// MaxDiffR is the largest |ΔR| on the shared grid.
	MaxDiffR float64 `json:"maxDiffR"`
	// WarpR is the dynamic-time-warping distance between the two R curves.
	// Unlike RMSE it tolerates small spectral shifts of features.
	WarpR float64 `json:"warpR"`
}

// CompareOption configures Compare.
type CompareOption func(*compareOptions)

type compareOptions struct {
	window       int
	slopePenalty float64
}

// WithWindow limits the warping path to |i−j| ≤ w samples (Sakoe–Chiba band).
// w = 0 leaves the path unconstrained. It panics if w < 0.
func WithWindow(w int) CompareOption {
	if w < 0 {
		panic(fmt.Sprintf("spectrum: WithWindow(%d): window must be ≥ 0", w))
	}

	return func(o *compareOptions) { o.window = w }
}

// WithSlopePenalty adds p to every non-diagonal warping step.
// It panics if p is negative or non-finite.
func WithSlopePenalty(p float64) CompareOption {
	if !finite(p) || p < 0 {
		panic(fmt.Sprintf("spectrum: WithSlopePenalty(%g): penalty must be finite and ≥ 0", p))
	}

	return func(o *compareOptions) { o.slopePenalty = p }
}

// Compare scores got against ref. Both inputs must be sorted by ascending
// wavelength, as Sweep returns them.
//
// Errors:
//   - ErrEmptySpectrum — either input is empty.
//   - ErrNoOverlap     — the inputs share no wavelength.
func Compare(ref, got []Point, opts ...CompareOption) (Comparison, error) {
	if len(ref) == 0 || len(got) == 0 {
		return Comparison{}, ErrEmptySpectrum
	}
	var o compareOptions
	for _, set := range opts {
		set(&o)
	}

	var c Comparison
	var sqR, sqT float64
	// Merge walk over both ascending grids.
	for i, j := 0, 0; i < len(ref) && j < len(got); {
		d := ref[i].WavelengthNm - got[j].WavelengthNm
		switch {
		case math.Abs(d) <= wavelengthTol:
			dr := got[j].R - ref[i].R
			dt := got[j].T - ref[i].T
			sqR += dr * dr
			sqT += dt * dt
			c.MaxDiffR = math.Max(c.MaxDiffR, math.Abs(dr))
			c.Shared++
			i++
			j++
		case d < 0:
			i++
		default:
			j++
		}
	}
	if c.Shared == 0 {
		return Comparison{}, ErrNoOverlap
	}
	c.RMSER = math.Sqrt(sqR / float64(c.Shared))
	c.RMSET = math.Sqrt(sqT / float64(c.Shared))
	c.WarpR = warpDistance(reflectance(ref), reflectance(got), o)

	return c, nil
}

func reflectance(pts []Point) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.R
	}

	return out
}

// warpDistance is DTW with two rolling rows:
//
//	D[i][j] = |a[i-1] − b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1])
//
// Cells outside the band are +Inf. Memory O(len(b)), time O(len(a)·len(b)).
func warpDistance(a, b []float64, o compareOptions) float64 {
	n, m := len(a), len(b)
	window := o.window
	if window == 0 {
		window = max(n, m)
	}
	// A band narrower than the length difference cannot reach (n, m).
	window = max(window, abs(n-m))

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf
				continue
			}
			best := min(prev[j]+o.slopePenalty, curr[j-1]+o.slopePenalty, prev[j-1])
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
