// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric checks.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts behavior and is covered by tests.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the tolerance used when deciding whether a floating
// point entry equals its nearest integer in CheckDomain.
const DefaultEpsilon = 1e-9

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// Epsilon returns the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the rounding tolerance for float domains.
// Panics if eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
	}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
