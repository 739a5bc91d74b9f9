// SPDX-License-Identifier: MIT

// Package builder produces deterministic weight matrices for the voidwalk
// solvers: regular topologies (chain, ring, complete), an exponential decay
// contact profile, and block-domain ("TAD"-like) structures, with optional
// smooth synthetic noise for demonstrations.
//
// Every factory:
//
//   - Validates parameters early and returns sentinel errors (no panics).
//   - Emits a square, symmetric, non-negative, finite matrix — the exact
//     precondition of void.Augment and gmfpt.Solve — in a fixed element
//     order, so equal inputs always yield identical matrices.
//   - Resolves functional options per call (WithWeight, WithNoise, WithSeed);
//     noise is OpenSimplex-based and fully deterministic per seed.
//
// The factories are demonstration/input collaborators: the solvers accept
// any matrix satisfying the precondition, from these builders or elsewhere.
package builder
