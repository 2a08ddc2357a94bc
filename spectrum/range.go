// SPDX-License-Identifier: MIT

package spectrum

import (
	"fmt"
	"iter"
	"math"
)

// Default sweep bounds in nanometers.
const (
	DefaultStartNm = 300
	DefaultEndNm   = 1100
	DefaultStepNm  = 5
)

// MaxSamples caps the number of wavelengths a single Range may produce.
const MaxSamples = 10_000_000

// countSlack absorbs floating-point error when the span is an exact
// multiple of the step (e.g. 0.1-nm steps).
const countSlack = 1e-9

// Range is an inclusive wavelength sweep request.
type Range struct {
	StartNm float64 `json:"startNm" yaml:"startNm" toml:"startNm" mapstructure:"startNm"`
	EndNm   float64 `json:"endNm" yaml:"endNm" toml:"endNm" mapstructure:"endNm"`
	StepNm  float64 `json:"stepNm" yaml:"stepNm" toml:"stepNm" mapstructure:"stepNm"`
}

// DefaultRange returns 300–1100 nm in 5-nm steps.
func DefaultRange() Range {
	return Range{StartNm: DefaultStartNm, EndNm: DefaultEndNm, StepNm: DefaultStepNm}
}

// WithDefaults fills zero fields from DefaultRange. Negative or otherwise
// invalid values are kept so Validate can reject them.
func (r Range) WithDefaults() Range {
	d := DefaultRange()
	if r.StartNm == 0 {
		r.StartNm = d.StartNm
	}
	if r.EndNm == 0 {
		r.EndNm = d.EndNm
	}
	if r.StepNm == 0 {
		r.StepNm = d.StepNm
	}

	return r
}

// Validate returns ErrInvalidRange for step ≤ 0, end < start, a
// non-positive start, non-finite bounds, or more than MaxSamples samples.
// Ranges are never repaired.
func (r Range) Validate() error {
	switch {
	case !finite(r.StartNm) || !finite(r.EndNm) || !finite(r.StepNm):
		return fmt.Errorf("%w: non-finite bounds %v", ErrInvalidRange, r)
	case !(r.StepNm > 0):
		return fmt.Errorf("%w: step %g must be > 0", ErrInvalidRange, r.StepNm)
	case r.EndNm < r.StartNm:
		return fmt.Errorf("%w: end %g before start %g", ErrInvalidRange, r.EndNm, r.StartNm)
	case !(r.StartNm > 0):
		return fmt.Errorf("%w: start %g must be > 0", ErrInvalidRange, r.StartNm)
	}
	// Compared as a float so the later int conversion cannot overflow.
	if n := r.intervals(); !finite(n) || n+1 > MaxSamples {
		return fmt.Errorf("%w: too many samples in %v (max %d)", ErrInvalidRange, r, MaxSamples)
	}

	return nil
}

func (r Range) intervals() float64 {
	return math.Floor((r.EndNm-r.StartNm)/r.StepNm + countSlack)
}

// Count returns the number of samples: floor((end − start)/step) + 1,
// at most MaxSamples. It returns 0 for an invalid range.
func (r Range) Count() int {
	if r.Validate() != nil {
		return 0
	}

	return int(r.intervals()) + 1
}

// At returns the i-th sample wavelength, start + i·step.
func (r Range) At(i int) float64 {
	return r.StartNm + float64(i)*r.StepNm
}

// Wavelengths yields start, start+step, … up to the last value ≤ end.
// Each wavelength is computed as start + i·step, so rounding does not
// accumulate across long sweeps. An invalid range yields nothing.
func (r Range) Wavelengths() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		n := r.Count()
		for i := 0; i < n; i++ {
			if !yield(r.At(i)) {
				return
			}
		}
	}
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g] step %g nm", r.StartNm, r.EndNm, r.StepNm)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
