// SPDX-License-Identifier: MIT
// Package gmfpt: Laplacian eigendecomposition kernel.
//
// impl_spectrum.go — spectrum of L = diag(d) − W, delegated to gonum.
//
// Contract:
//   - Input is assumed pre-validated (square, symmetric, finite, non-negative).
//   - Eigenpairs are returned sorted ascending by eigenvalue; column i of the
//     eigenvector matrix pairs with eigenvalue i.
//   - The sort is enforced here rather than assumed from the backend, so the
//     index-0 = trivial-mode convention holds regardless of library behavior.
//   - Tie order among degenerate eigenvalues is arbitrary; the GMFPT summation
//     is invariant to it as long as the eigenvectors stay orthonormal.

package gmfpt

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/karstvern/voidwalk/matrix"
)

const methodSpectrum = "Spectrum"

// spectrum computes the eigenvalues and eigenvectors of the Laplacian of w.
// Stage 1 (Prepare): build L and mirror it into a gonum SymDense.
// Stage 2 (Execute): symmetric eigendecomposition (mat.EigenSym).
// Stage 3 (Finalize): sort ascending, re-permute eigenvector columns to match.
// Complexity: O(n³) time (eigensolve dominates), O(n²) space.
func spectrum(w *matrix.Dense) ([]float64, *matrix.Dense, error) {
	n := w.Rows()

	// Build the Laplacian; validation already happened at the facade.
	lap, err := matrix.Laplacian(w)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodSpectrum, err)
	}

	// Mirror the upper triangle into gonum's symmetric storage.
	sym := mat.NewSymDense(n, nil)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v, _ = lap.At(i, j) // bounds guaranteed: lap is n×n
			sym.SetSym(i, j, v)
		}
	}

	// Symmetric real eigendecomposition: all eigenvalues real, eigenvectors
	// real and orthonormal. Failure here is surfaced, never swallowed.
	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, nil, fmt.Errorf("%s: %w", methodSpectrum, ErrSpectrumFailed)
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Enforce ascending order explicitly with a stable index permutation.
	perm := make([]int, n)
	for i = range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return vals[perm[a]] < vals[perm[b]] })

	// Materialize sorted eigenvalues and column-permuted eigenvectors.
	sortedVals := make([]float64, n)
	sortedVecs, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodSpectrum, err)
	}
	for i = 0; i < n; i++ {
		sortedVals[i] = vals[perm[i]]
		for j = 0; j < n; j++ {
			_ = sortedVecs.Set(j, i, vecs.At(j, perm[i])) // column i ← column perm[i]
		}
	}

	return sortedVals, sortedVecs, nil
}

// zeroThreshold returns the absolute tolerance below which an eigenvalue is
// treated as zero: relative to the spectral radius with a floor of eps.
func zeroThreshold(eps, lambdaMax float64) float64 {
	if lambdaMax > 1 {
		return eps * lambdaMax
	}

	return eps
}
