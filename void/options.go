// SPDX-License-Identifier: MIT
// Package void: functional configuration for the augmentation.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package void

import (
	"math"

	"github.com/karstvern/voidwalk/matrix"
)

// DefaultEpsilon is the symmetry tolerance applied to the base matrix when
// no override is supplied. It mirrors matrix.DefaultEpsilon so the whole
// pipeline shares one numeric policy by default.
const DefaultEpsilon = matrix.DefaultEpsilon

const panicEpsilonInvalid = "void: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	eps float64 // symmetry tolerance for base validation; >= 0
}

// WithEpsilon sets the numeric tolerance used by the base symmetry check.
// Panics with a stable message when eps is NaN, ±Inf, or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// gatherOptions applies user setters on top of documented defaults.
// Last-writer-wins; deterministic for a given setter sequence.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) options {
	o := options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
