// SPDX-License-Identifier: MIT

// Package solver: functional configuration of the pivot policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package solver

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the pivot magnitude at or below which a matrix is
	// reported singular. Absolute unless WithRelativeTolerance is applied.
	DefaultTolerance = 1e-9

	// DefaultRelative selects the absolute threshold policy.
	DefaultRelative = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicToleranceInvalid = "solver: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol      float64 // ≥ 0; DefaultTolerance
	relative bool    // DefaultRelative
}

// WithTolerance sets the singularity tolerance.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Notes:
//   - tol = 0 flags only exact zero pivots; use it with exact fields
//     (algebra.Rational, algebra.PrimeField).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithRelativeTolerance scales the tolerance by the largest element
// magnitude of the coefficient matrix, making the singularity test
// invariant to a uniform rescaling of A.
func WithRelativeTolerance() Option {
	return func(o *Options) { o.relative = true }
}

// WithAbsoluteTolerance restores the default absolute policy.
func WithAbsoluteTolerance() Option {
	return func(o *Options) { o.relative = false }
}

// NewOptions resolves opts over the defaults. Useful for logging or
// asserting the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Tolerance returns the configured tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// Relative reports whether the tolerance scales with max|a_ij|.
func (o Options) Relative() bool { return o.relative }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{tol: DefaultTolerance, relative: DefaultRelative}
}

// gatherOptions applies user options in order over the defaults; later
// options win. nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
