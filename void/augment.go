// SPDX-License-Identifier: MIT
// Package void: degree-preserving bulk-reservoir embedding.
//
// augment.go — Augment and LeakWeights.
//
// Contract:
//   - base must be square, symmetric (within eps), finite, non-negative.
//   - pVoid strictly inside (0,1); endpoints rejected with ErrProbability.
//   - Output is (N+1)×(N+1); top-left N×N block equals base exactly; last
//     row/column carry the leak weights; corner [N,N] is 0.
//   - Symmetric by construction; no renormalization of internal weights.
//   - Pure function: base is copied, never aliased or mutated.

package void

import (
	"fmt"

	"github.com/karstvern/voidwalk/matrix"
)

// File-local constants for method tagging.
const (
	methodAugment     = "Augment"
	methodLeakWeights = "LeakWeights"
)

// LeakWeights returns the void-coupling vector λ with
// λ_i = pVoid · degree(i) / (1 − pVoid).
//
// Stage 1 (Validate): structural checks on base, range check on pVoid.
// Stage 2 (Execute): one pass over the degree vector.
//
// Errors: matrix sentinels for structural violations; ErrProbability for
// pVoid ∉ (0,1).
// Complexity: O(n²) time (degree computation), O(n) space.
func LeakWeights(base *matrix.Dense, pVoid float64, opts ...Option) ([]float64, error) {
	cfg := gatherOptions(opts...)

	// Full WeightedGraph precondition: nil/square/finite/non-negative/symmetric.
	if err := matrix.ValidateWeightedGraph(base, cfg.eps); err != nil {
		return nil, fmt.Errorf("%s: %w", methodLeakWeights, err)
	}
	// pVoid is an open-interval probability; both endpoints are degenerate.
	if !(pVoid > 0 && pVoid < 1) {
		return nil, fmt.Errorf("%s: p_void=%g: %w", methodLeakWeights, pVoid, ErrProbability)
	}

	// Degree vector of the validated base.
	d, err := matrix.Degrees(base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLeakWeights, err)
	}

	// λ = pVoid/(1−pVoid) · d, element-wise. The ratio is computed once.
	ratio := pVoid / (1 - pVoid)
	lambda := make([]float64, len(d))
	for i, di := range d {
		lambda[i] = ratio * di
	}

	return lambda, nil
}

// Augment embeds the void node into base and returns the (N+1)×(N+1)
// augmented weight matrix.
//
// Stage 1 (Validate): delegated to LeakWeights (base structure + pVoid range).
// Stage 2 (Prepare): allocate the (N+1)² result.
// Stage 3 (Execute): copy the base block, mirror λ into the last row/column,
// leave the [N,N] corner at zero.
//
// Guarantees:
//   - Output is symmetric by construction.
//   - Degree of the void node equals pVoid/(1−pVoid) · 2E(base).
//   - base is never mutated; the block is a deep copy.
//
// Complexity: O(n²) time and space.
func Augment(base *matrix.Dense, pVoid float64, opts ...Option) (*matrix.Dense, error) {
	// LeakWeights performs every validation this transform needs.
	lambda, err := LeakWeights(base, pVoid, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodAugment, err)
	}

	n := base.Rows()
	out, err := matrix.NewDense(n+1, n+1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodAugment, err)
	}

	// Copy the internal block unchanged; deterministic i→j order.
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = base.At(i, j)   // bounds guaranteed by validation
			_ = out.Set(i, j, v)   // writes stay inside the block
		}
	}

	// Mirror the leak weights into the border; corner stays zero.
	for i = 0; i < n; i++ {
		_ = out.Set(i, n, lambda[i])
		_ = out.Set(n, i, lambda[i])
	}

	return out, nil
}
