// SPDX-License-Identifier: MIT

package spectrum

import "fmt"

// DefaultWorkers keeps sweeps sequential.
const DefaultWorkers = 1

// Option configures Sweep.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers sets the maximum number of goroutines solving samples.
// It panics if n < 1 (programmer error).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("spectrum: WithWorkers(%d): need at least one worker", n))
	}

	return func(o *options) { o.workers = n }
}

func gatherOptions(user ...Option) options {
	o := options{workers: DefaultWorkers}
	for _, set := range user {
		set(&o) // last writer wins
	}

	return o
}
