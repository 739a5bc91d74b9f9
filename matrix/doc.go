// SPDX-License-Identifier: MIT

// Package matrix provides the dense weight-matrix primitive shared by the
// voidwalk solvers, together with the validators and derived quantities the
// spectral machinery relies on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and
//     deep Clone — the canonical WeightedGraph representation.
//   - Centralized validators (square, symmetric-within-eps, finite,
//     non-negative) returning sentinel errors matched via errors.Is.
//   - Derived quantities: per-node Degrees (row sums), TotalWeight
//     (E = Σ entries / 2), the graph Laplacian diag(d) − W, and Scale.
//
// All operations are pure: inputs are never mutated and every result is a
// freshly allocated value, so callers may freely reuse base matrices across
// augmentation and solving.
package matrix
