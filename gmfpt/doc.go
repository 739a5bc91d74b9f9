// SPDX-License-Identifier: MIT

// Package gmfpt computes Global Mean First Passage Times for random walks on
// symmetric, non-negative weight matrices via Laplacian eigendecomposition.
//
// The GMFPT of node j is the expected time for a walker launched from the
// stationary distribution to first reach j. It is evaluated in closed form
// from the eigenpairs (λ_i, v_i) of L = diag(d) − W, sorted ascending, with
// the trivial zero mode (λ_0 ≈ 0, v_0 ∝ 1) excluded:
//
//	unweighted: T_j = N/(N−1) · Σ_{i≥1} (1/λ_i)(2E·v_ij² − v_ij·⟨v_i,d⟩)
//	weighted:   T_j = 1/(2E) · Σ_{i≥1} (1/λ_i)((2E)²·v_ij² − 4E·v_ij·⟨v_i,d⟩ − ⟨v_i,d⟩²)
//
// where d is the degree vector, E the total edge weight, and ⟨v_i,d⟩ the
// projection of the degree vector onto eigenvector i (computed once per mode
// and reused across nodes). The weighted variant is the default, matching
// walks whose step propensities follow the edge weights.
//
// Numeric policy (strict, fail-fast):
//
//   - Inputs are validated up front: square, symmetric within eps, finite,
//     non-negative. No silent symmetrization, no NaN propagation.
//   - The smallest eigenvalue must be ≈ 0. A second near-zero eigenvalue
//     means the graph is disconnected and the formula is undefined; Solve
//     fails with ErrDegenerateSpectrum rather than dividing by ≈0.
//   - Retained modes whose eigenvalue sits close to the tolerance boundary
//     amplify round-off through the 1/λ_i term; Analyze reports them in
//     Result.NearZeroModes so callers can flag shaky inputs.
//
// The eigendecomposition itself is delegated to gonum's mat.EigenSym; the
// per-node accumulation is optionally parallelized with WithWorkers (the
// modes are shared read-only, output slots are disjoint).
//
// Both accumulation variants are invariant under uniform weight rescaling
// W → c·W: the walk is a discrete-time process, so times count steps and
// carry no rate unit; the c in the numerator cancels against the c in λ_i.
package gmfpt
