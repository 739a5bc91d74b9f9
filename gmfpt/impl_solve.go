// SPDX-License-Identifier: MIT
// Package gmfpt: GMFPT accumulation kernel.
//
// impl_solve.go — closed-form per-node summation over the retained modes.
//
// Contract:
//   - The trivial mode (index 0 after ascending sort) is always excluded.
//   - Per-mode degree projections ⟨v_i,d⟩ are computed once and reused
//     across all nodes.
//   - The accumulation is embarrassingly parallel across nodes: workers read
//     the shared spectrum and write disjoint output slots, so WithWorkers
//     changes wall time, never values.

package gmfpt

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/karstvern/voidwalk/matrix"
)

const methodSolve = "Solve"

// Result carries the solved GMFPT vector together with the spectral
// diagnostics callers need to judge numerical trust.
type Result struct {
	// Times holds the per-node GMFPT in input node order (index N is the
	// void node when the input was augmented).
	Times []float64

	// Eigenvalues is the ascending Laplacian spectrum, index 0 the trivial
	// mode. Exposed for inspection; never mutated by the solver afterwards.
	Eigenvalues []float64

	// NearZeroModes lists retained mode indices (≥ 1) whose eigenvalue sits
	// within DefaultWarnRatio of zero relative to the spectral radius. Such
	// modes amplify round-off through the 1/λ term: the result is still
	// returned, but these inputs deserve scrutiny.
	NearZeroModes []int
}

// analyze is the single internal entry point behind Solve and Analyze.
// Stage 1 (Validate): full WeightedGraph precondition, minimum order.
// Stage 2 (Spectrum): eigendecomposition, connectivity classification.
// Stage 3 (Accumulate): per-node summation over retained modes.
// Complexity: O(n³) time (eigensolve), O(n²) space.
func analyze(w *matrix.Dense, cfg options) (*Result, error) {
	// Fail fast on structural violations; no partial computation.
	if err := matrix.ValidateWeightedGraph(w, cfg.eps); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}
	n := w.Rows()
	if n < 2 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodSolve, n, ErrTooFewNodes)
	}

	// Degree vector and total weight 2E. Validation already passed.
	d, err := matrix.Degrees(w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}
	twoE := floats.Sum(d) // Σ d = 2E by the handshake identity

	// An all-zero matrix has no edges: every node is its own component.
	if twoE == 0 {
		return nil, fmt.Errorf("%s: empty graph: %w", methodSolve, ErrDegenerateSpectrum)
	}

	// Eigenpairs sorted ascending; column i of vecs pairs with vals[i].
	vals, vecs, err := spectrum(w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}

	// Classify zero modes. Exactly one is required (connected graph); a
	// second near-zero eigenvalue means disconnection and an ill-defined
	// 1/λ term, so we fail instead of dividing.
	zeroTol := zeroThreshold(cfg.eps, vals[n-1])
	if vals[1] <= zeroTol {
		return nil, fmt.Errorf("%s: second eigenvalue %g below tolerance %g: %w",
			methodSolve, vals[1], zeroTol, ErrDegenerateSpectrum)
	}

	// Flag retained modes close enough to zero to amplify round-off.
	warnTol := DefaultWarnRatio * vals[n-1]
	var nearZero []int
	for i := 1; i < n; i++ {
		if vals[i] <= warnTol {
			nearZero = append(nearZero, i)
		}
	}

	// Per-mode degree projections dv[i] = ⟨v_i, d⟩, computed once.
	dv := make([]float64, n)
	var i, k int
	var vk float64
	for i = 1; i < n; i++ {
		var sum float64
		for k = 0; k < n; k++ {
			vk, _ = vecs.At(k, i) // component k of eigenvector i
			sum += vk * d[k]
		}
		dv[i] = sum
	}

	// Accumulate per node; split across workers when configured.
	times := make([]float64, n)
	accumulate := func(j0, j1 int) {
		var j, m int
		var vij, term float64
		for j = j0; j < j1; j++ { // disjoint output slots
			var t float64
			for m = 1; m < n; m++ { // retained modes only
				vij, _ = vecs.At(j, m)
				if cfg.weighted {
					term = twoE*twoE*vij*vij - 2*twoE*vij*dv[m] - dv[m]*dv[m]
				} else {
					term = twoE*vij*vij - vij*dv[m]
				}
				t += term / vals[m]
			}
			times[j] = t
		}
	}

	if cfg.workers <= 1 || n < 2*cfg.workers {
		accumulate(0, n)
	} else {
		// Even chunking; the last chunk absorbs the remainder.
		chunk := (n + cfg.workers - 1) / cfg.workers
		var wg sync.WaitGroup
		for j0 := 0; j0 < n; j0 += chunk {
			j1 := j0 + chunk
			if j1 > n {
				j1 = n
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				accumulate(lo, hi)
			}(j0, j1)
		}
		wg.Wait()
	}

	// Final normalization per variant.
	if cfg.weighted {
		floats.Scale(1/twoE, times)
	} else {
		floats.Scale(float64(n)/float64(n-1), times)
	}

	return &Result{Times: times, Eigenvalues: vals, NearZeroModes: nearZero}, nil
}
