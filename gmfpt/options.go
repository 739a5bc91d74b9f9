// SPDX-License-Identifier: MIT
// Package gmfpt: functional configuration for the solver.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package gmfpt

import (
	"math"

	"github.com/karstvern/voidwalk/matrix"
)

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the relative tolerance used both for the input
	// symmetry check and for deciding which eigenvalues count as "zero".
	DefaultEpsilon = matrix.DefaultEpsilon

	// DefaultWeighted keeps actual edge weights in the accumulation formula.
	// false ⇒ the unweighted (step-counting, uniform-start) variant.
	DefaultWeighted = true

	// DefaultWorkers runs the per-node accumulation serially. Values > 1
	// split the node range across goroutines; results are identical because
	// each node's accumulation is independent and summation order per node
	// is unchanged.
	DefaultWorkers = 1

	// DefaultWarnRatio flags retained modes with λ_i ≤ warnRatio·λ_max as
	// numerically fragile (the 1/λ_i term amplifies round-off near the
	// connectivity threshold). Flagged modes are reported, not rejected.
	DefaultWarnRatio = 1e-8
)

// Internal panic messages (no magic strings).
const (
	panicEpsilonInvalid = "gmfpt: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid = "gmfpt: WithWorkers: k must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	eps      float64 // numeric tolerance; >= 0
	weighted bool    // accumulation variant
	workers  int     // per-node accumulation parallelism; >= 1
}

// WithEpsilon sets the numeric tolerance used by the symmetry check and the
// zero-eigenvalue classification. Panics on NaN/Inf/negative eps.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithUnweighted selects the unweighted accumulation variant
// (T_j scaled by N/(N−1); suited to binary adjacency matrices).
// Complexity: O(1).
func WithUnweighted() Option {
	return func(o *options) { o.weighted = false }
}

// WithWeighted selects the weighted accumulation variant (the default).
// Complexity: O(1).
func WithWeighted() Option {
	return func(o *options) { o.weighted = true }
}

// WithWorkers sets the number of goroutines for the per-node accumulation.
// k = 1 is strictly serial. Panics on k < 1.
// Complexity: O(1) to set; the accumulation itself is O(n²/k) per worker.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = k }
}

// gatherOptions applies user setters on top of documented defaults.
// Last-writer-wins; deterministic for a given setter sequence.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) options {
	o := options{
		eps:      DefaultEpsilon,
		weighted: DefaultWeighted,
		workers:  DefaultWorkers,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
