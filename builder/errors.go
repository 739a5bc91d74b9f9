// SPDX-License-Identifier: MIT
// Package builder: sentinel errors.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context using %w.
//   - Factories MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates that the requested node count is smaller than the
// minimum for the factory (chain ≥ 2, ring ≥ 3, complete ≥ 2, decay ≥ 2,
// every block ≥ 1).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: node count too small")

// ErrBadDecay indicates a non-positive or non-finite decay rate alpha for
// the exponential contact profile.
// Usage: if errors.Is(err, ErrBadDecay) { /* fix alpha */ }.
var ErrBadDecay = errors.New("builder: decay rate must be finite and > 0")

// ErrBadBlocks indicates an invalid block size list: empty, or containing a
// non-positive entry.
// Usage: if errors.Is(err, ErrBadBlocks) { /* fix sizes */ }.
var ErrBadBlocks = errors.New("builder: invalid block specification")

// ErrBadWeight indicates an invalid explicit weight argument, e.g. block
// intra/inter weights violating inW > outW ≥ 0 or a non-finite value.
// Usage: if errors.Is(err, ErrBadWeight) { /* fix weights */ }.
var ErrBadWeight = errors.New("builder: invalid weight argument")
