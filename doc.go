// Package voidwalk computes first-passage-time statistics for random walks
// on weighted graphs extended with an auxiliary "void" (bulk) state.
//
// 🚀 What is voidwalk?
//
//	A small, deterministic numerical library that brings together:
//		• matrix/  — dense symmetric weight matrices, validators, Laplacian helpers
//		• gmfpt/   — spectral Global Mean First Passage Time solver (Lin formula)
//		• void/    — degree-preserving embedding of a bulk reservoir node
//		• builder/ — deterministic matrix generators (chain, ring, complete,
//		             decay profile, block domains) with optional smooth noise
//
// The intended flow mirrors diffusion modelling practice (e.g. transcription
// factor search on chromatin-like contact maps):
//
//	base := builder.Chain(10)            // a weight matrix from any source
//	aug  := void.Augment(base, 0.3)      // embed the bulk reservoir
//	times := gmfpt.Solve(aug)            // per-node global mean FPT
//
// ✨ Design guarantees
//
//   - Pure computations – inputs are never mutated, results are fresh values
//   - Sentinel errors – branch with errors.Is, no panics at runtime
//   - Deterministic – fixed loop orders; the only nondeterminism is the
//     floating-point tolerance inherent to eigensolvers
//   - Mature numerics – the symmetric eigendecomposition is delegated to
//     gonum rather than hand-rolled
//
// A thin CLI lives under cmd/voidwalk for quick exploration and CSV export.
//
//	go get github.com/karstvern/voidwalk
package voidwalk
