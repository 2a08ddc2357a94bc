// SPDX-License-Identifier: MIT

package spectrum

import (
	"fmt"
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/filmcalc/tmm"
)

// Solver is the single-wavelength computation a sweep samples.
// *tmm.Solver satisfies it.
type Solver interface {
	Solve(stack tmm.Stack, lambdaNm float64) (tmm.Result, error)
}

// Point is one sample of a spectrum.
type Point struct {
	WavelengthNm float64 `json:"wavelength"`
	R            float64 `json:"R"`
	T            float64 `json:"T"`
	A            float64 `json:"A"`
}

// Result returns the sample's R/T/A as a tmm.Result.
func (p Point) Result() tmm.Result { return tmm.Result{R: p.R, T: p.T, A: p.A} }

func newPoint(lambdaNm float64, res tmm.Result) Point {
	return Point{WavelengthNm: lambdaNm, R: res.R, T: res.T, A: res.A}
}

// Points lazily yields one Point per wavelength of rng, in ascending order.
// The sequence is restartable: every range over it re-solves from the start.
// An invalid range yields a single ErrInvalidRange; a solver error is
// yielded once and ends the sequence.
func Points(s Solver, stack tmm.Stack, rng Range) iter.Seq2[Point, error] {
	return func(yield func(Point, error) bool) {
		if err := rng.Validate(); err != nil {
			yield(Point{}, err)
			return
		}
		for l := range rng.Wavelengths() {
			res, err := s.Solve(stack, l)
			if err != nil {
				yield(Point{}, fmt.Errorf("λ=%g nm: %w", l, err))
				return
			}
			if !yield(newPoint(l, res), nil) {
				return
			}
		}
	}
}

// Sweep solves stack at every wavelength of rng and returns the samples in
// ascending wavelength order.
//
// With WithWorkers(n > 1) samples are solved concurrently on at most n
// goroutines; the output is identical to the sequential sweep.
//
// Errors:
//   - ErrInvalidRange — before any sample is solved.
//   - the first solver error (e.g. material.ErrUnknownMaterial), wrapped with
//     the failing wavelength.
func Sweep(s Solver, stack tmm.Stack, rng Range, opts ...Option) ([]Point, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	if o.workers <= 1 {
		pts := make([]Point, 0, rng.Count())
		for p, err := range Points(s, stack, rng) {
			if err != nil {
				return nil, err
			}
			pts = append(pts, p)
		}

		return pts, nil
	}

	// Each goroutine owns one slot, so reassembly is the slice order itself.
	pts := make([]Point, rng.Count())
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := range pts {
		l := rng.At(i)
		g.Go(func() error {
			res, err := s.Solve(stack, l)
			if err != nil {
				return fmt.Errorf("λ=%g nm: %w", l, err)
			}
			pts[i] = newPoint(l, res)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pts, nil
}
