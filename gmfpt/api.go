// SPDX-License-Identifier: MIT
// Package gmfpt: thin public entry-points.
//
// api.go — public facades over the internal kernels.
//
// Design contract (strict):
//   - Facades resolve functional options once and delegate to the kernels in
//     impl_spectrum.go / impl_solve.go (single place to read docs).
//   - Determinism: same matrix and options ⇒ identical output up to the
//     floating-point tolerance inherent to the eigensolver.
//   - Safety: never panic at runtime; sentinel errors via errors.Is.

package gmfpt

import (
	"fmt"

	"github.com/karstvern/voidwalk/matrix"
)

// Solve computes the GMFPT vector for every node of the weight matrix w.
// The weighted accumulation variant is the default; select the unweighted
// one with WithUnweighted().
//
// Inputs:
//   - w: square, symmetric (within eps), finite, non-negative weight matrix;
//     typically a builder output or a void.Augment result.
//   - opts: WithEpsilon, WithUnweighted/WithWeighted, WithWorkers.
//
// Returns:
//   - []float64: non-negative finite times, same node ordering as w.
//
// Errors:
//   - matrix sentinels (ErrNilMatrix, ErrNonSquare, ErrNaNInf,
//     ErrNegativeWeight, ErrAsymmetry) for structural violations;
//   - ErrTooFewNodes, ErrDegenerateSpectrum, ErrSpectrumFailed.
//
// Complexity: O(n³) time, O(n²) space — the eigensolve dominates.
func Solve(w *matrix.Dense, opts ...Option) ([]float64, error) {
	res, err := analyze(w, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}

	return res.Times, nil
}

// Analyze is Solve plus spectral diagnostics: the ascending eigenvalue list
// and the indices of retained modes close enough to zero to amplify
// round-off (see Result). Use it when inputs may sit near the connectivity
// threshold and the caller wants to surface warnings.
func Analyze(w *matrix.Dense, opts ...Option) (*Result, error) {
	return analyze(w, gatherOptions(opts...))
}

// Spectrum returns the eigenvalues and eigenvectors of the Laplacian of w,
// sorted ascending; column i of the returned matrix is the eigenvector
// paired with eigenvalue i. Exposed for callers building their own spectral
// statistics on top of the validated pipeline.
//
// Errors: matrix sentinels for structural violations; ErrSpectrumFailed.
// Complexity: O(n³) time, O(n²) space.
func Spectrum(w *matrix.Dense, opts ...Option) ([]float64, *matrix.Dense, error) {
	cfg := gatherOptions(opts...)
	if err := matrix.ValidateWeightedGraph(w, cfg.eps); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodSpectrum, err)
	}

	return spectrum(w)
}
