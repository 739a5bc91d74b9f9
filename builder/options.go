// SPDX-License-Identifier: MIT
// Package builder: functional configuration for matrix factories.
//
// Design goals:
//   - Deterministic behavior: no global state; noise is seeded explicitly.
//   - No dead switches: each knob impacts output and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public factories consume ...Option.

package builder

import "math"

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultWeight is the base edge weight applied by the regular
	// topologies and as the w0 prefactor of the decay profile.
	DefaultWeight = 1.0

	// DefaultNoiseSigma disables synthetic noise. Values > 0 modulate each
	// edge weight by (1 + sigma·η) with η ∈ [−1,1] sampled from a smooth
	// OpenSimplex field, clamped so weights stay non-negative.
	DefaultNoiseSigma = 0.0

	// DefaultSeed feeds the OpenSimplex generator when noise is enabled.
	DefaultSeed = int64(1)
)

// Internal panic messages (no magic strings).
const (
	panicWeightInvalid = "builder: WithWeight: w0 must be finite, > 0"
	panicNoiseInvalid  = "builder: WithNoise: sigma must be finite, >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	weight float64 // base edge weight; finite, > 0
	sigma  float64 // noise amplitude; 0 disables
	seed   int64   // OpenSimplex seed
}

// WithWeight sets the base edge weight w0. Panics on NaN/Inf/non-positive w0.
// Complexity: O(1).
func WithWeight(w0 float64) Option {
	if math.IsNaN(w0) || math.IsInf(w0, 0) || w0 <= 0 {
		panic(panicWeightInvalid)
	}

	return func(o *options) { o.weight = w0 }
}

// WithNoise enables smooth multiplicative noise of amplitude sigma.
// sigma = 0 keeps the factory exact. Panics on NaN/Inf/negative sigma.
// Complexity: O(1).
func WithNoise(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		panic(panicNoiseInvalid)
	}

	return func(o *options) { o.sigma = sigma }
}

// WithSeed fixes the OpenSimplex seed so noisy outputs are reproducible.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// gatherOptions applies user setters on top of documented defaults.
// Last-writer-wins; deterministic for a given setter sequence.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) options {
	o := options{
		weight: DefaultWeight,
		sigma:  DefaultNoiseSigma,
		seed:   DefaultSeed,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
