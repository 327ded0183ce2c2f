// SPDX-License-Identifier: MIT

package poly

// DefaultVariable is the indeterminate used by LaTeX and String.
const DefaultVariable = "x"

const panicVariableEmpty = "poly: WithVariable: name must be non-empty"

// Option configures rendering.
type Option func(*Options)

// Options holds the resolved rendering configuration.
type Options struct {
	variable string
}

// WithVariable renders the indeterminate as name (e.g. "\lambda").
// Panics on an empty name.
func WithVariable(name string) Option {
	if name == "" {
		panic(panicVariableEmpty)
	}

	return func(o *Options) { o.variable = name }
}

func gatherOptions(opts ...Option) Options {
	o := Options{variable: DefaultVariable}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
