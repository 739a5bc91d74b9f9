// SPDX-License-Identifier: MIT

// Package void embeds an unstructured bulk ("void") reservoir node into a
// weighted graph.
//
// The augmentation models escape-to-bulk kinetics: a walker on the graph may
// leak into a structureless reservoir coupled to every node and return later.
// Given a base N×N weight matrix W and an escape probability pVoid ∈ (0,1),
// Augment produces the (N+1)×(N+1) matrix
//
//	⎡ W        λ ⎤            pVoid
//	⎣ λᵀ       0 ⎦ ,   λ_i = ────────── · degree(i)
//	                          1 − pVoid
//
// The top-left block equals W exactly — the augmentation never rescales the
// internal connectivity, so each node's relative outgoing weight distribution
// is preserved and pVoid keeps its designed physical meaning: the void node's
// degree equals pVoid/(1−pVoid)·2E(W), which ties pVoid directly to the
// stationary fraction of time spent in bulk.
//
// Augment is a pure transform: the base matrix is copied, never aliased, so
// callers may reuse it for non-augmented solves. The resulting matrix feeds
// straight into gmfpt.Solve.
package void
