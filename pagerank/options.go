// SPDX-License-Identifier: MIT

package pagerank

import "github.com/rs/zerolog"

const panicMaxIterationsInvalid = "pagerank: WithMaxIterations: k must be >= 1"

// Option mutates engine options. Last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxIter      int            // >= 1; DefaultMaxIterations
	conserveMass bool           // dangling teleport (1−p)/n instead of 1/n
	logger       zerolog.Logger // zerolog.Nop() unless WithLogger
}

// WithMaxIterations caps the number of power-method steps.
// Panics when k < 1 (programmer error).
func WithMaxIterations(k int) Option {
	if k < 1 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = k }
}

// WithMassConservingTeleport makes the power-method teleport term of a
// dangling column (1−p)/n instead of 1/n. Every column of A then sums to 1,
// so the iteration keeps Σx constant and converges for graphs with dangling
// pages.
func WithMassConservingTeleport() Option {
	return func(o *Options) { o.conserveMass = true }
}

// WithLogger routes debug events (method, pages, iterations, elapsed) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		maxIter: DefaultMaxIterations,
		logger:  zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
