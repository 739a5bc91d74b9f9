// SPDX-License-Identifier: MIT
// Package gmfpt: sentinel errors.
//
// Error policy:
//   - Only sentinel variables are exposed; callers MUST use errors.Is.
//   - Structural violations of the input matrix surface the matrix package
//     sentinels wrapped with solver context.
//   - The solver never panics at runtime; panics are confined to option
//     constructors (WithX) on programmer error.

package gmfpt

import "errors"

// ErrTooFewNodes indicates the input graph has fewer than two nodes; the
// GMFPT normalization N/(N−1) and the notion of "reaching another node" are
// undefined below that.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* supply a larger graph */ }.
var ErrTooFewNodes = errors.New("gmfpt: graph needs at least 2 nodes")

// ErrDegenerateSpectrum indicates more than one eigenvalue of the Laplacian
// is numerically ≈ 0: the graph is disconnected (or effectively so within
// tolerance) and the closed-form GMFPT is undefined. The solver fails fast
// instead of dividing by a near-zero mode.
// Usage: if errors.Is(err, ErrDegenerateSpectrum) { /* connect components */ }.
var ErrDegenerateSpectrum = errors.New("gmfpt: degenerate spectrum (graph disconnected)")

// ErrSpectrumFailed indicates the underlying symmetric eigendecomposition
// did not converge. This is not expected for valid inputs; it is surfaced
// rather than swallowed so callers never receive silent garbage.
var ErrSpectrumFailed = errors.New("gmfpt: eigendecomposition failed")
