// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for LaTeX rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Kernels (elimination, determinant, products) take no options: exact
// arithmetic has no tolerance or numeric policy to configure.
package matrix

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEnvironment is the LaTeX matrix environment.
	DefaultEnvironment = "pmatrix"

	// DefaultMathMode wraps the rendered matrix in $$ … $$.
	DefaultMathMode = true
)

const panicEnvironmentInvalid = "matrix: WithEnvironment: name must be a non-empty letter sequence"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	environment string // DefaultEnvironment
	mathMode    bool   // DefaultMathMode
}

// WithEnvironment selects the LaTeX environment (pmatrix, bmatrix, vmatrix, …).
// Panics when name is empty or contains anything but ASCII letters.
func WithEnvironment(name string) Option {
	if name == "" || strings.TrimLeft(name, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ") != "" {
		panic(panicEnvironmentInvalid)
	}

	return func(o *Options) { o.environment = name }
}

// WithMathMode toggles the surrounding $$ … $$ delimiters.
func WithMathMode(on bool) Option {
	return func(o *Options) { o.mathMode = on }
}

// gatherOptions resolves defaults, then applies user options in order.
func gatherOptions(user ...Option) Options {
	o := Options{environment: DefaultEnvironment, mathMode: DefaultMathMode}
	for _, opt := range user {
		opt(&o)
	}

	return o
}
