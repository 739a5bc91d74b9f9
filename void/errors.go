// SPDX-License-Identifier: MIT
// Package void: sentinel errors.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Structural violations of the base matrix surface the matrix package
//     sentinels (ErrNilMatrix, ErrNonSquare, ErrNegativeWeight, ErrNaNInf,
//     ErrAsymmetry) wrapped with Augment context.
//   - Augment never panics; option constructors may panic on programmer error.

package void

import "errors"

// ErrProbability indicates that pVoid lies outside the open interval (0,1).
// pVoid = 0 would isolate the void node (degenerate coupling) and pVoid = 1
// is undefined (division by zero in the leak-weight formula), so both
// endpoints are rejected.
// Usage: if errors.Is(err, ErrProbability) { /* correct pVoid */ }.
var ErrProbability = errors.New("void: p_void must lie strictly inside (0,1)")
