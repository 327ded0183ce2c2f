// SPDX-License-Identifier: MIT

// Package numtheory: functional configuration for a Sieve.
// WithX constructors validate their argument and panic on nonsensical values
// (programmer error), mirroring the matrix package options.

package numtheory

// MaxInput is the largest value accepted by the kernel (1e15).
const MaxInput int64 = 1_000_000_000_000_000

const panicCeilingInvalid = "numtheory: WithCeiling: ceiling must be in [1, MaxInput]"

// Option mutates internal Sieve options.
type Option func(*Options)

// Options holds the resolved Sieve configuration.
type Options struct {
	ceiling int64 // inclusive upper bound for inputs
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{ceiling: MaxInput}
}

// WithCeiling lowers the inclusive input ceiling. Values outside
// [1, MaxInput] panic.
func WithCeiling(max int64) Option {
	if max < 1 || max > MaxInput {
		panic(panicCeilingInvalid)
	}

	return func(o *Options) { o.ceiling = max }
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
