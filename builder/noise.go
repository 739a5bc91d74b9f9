// SPDX-License-Identifier: MIT
// Package builder: deterministic synthetic noise.
//
// noise.go — smooth multiplicative perturbation of a weight matrix.
//
// Contract:
//   - Noise multiplies existing edges only; structural zeros stay zero, so
//     topology is preserved.
//   - The same factor is applied to (i,j) and (j,i): symmetry survives.
//   - Factors are clamped at zero so weights never turn negative.
//   - Fully deterministic for a fixed (sigma, seed) pair.

package builder

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/karstvern/voidwalk/matrix"
)

// noiseCoordStep spaces the OpenSimplex sample lattice. A sub-unit step keeps
// neighboring edges correlated (smooth field) instead of independent jitter.
const noiseCoordStep = 0.37

// applyNoise perturbs m in place (m is factory-owned at this point, never a
// caller matrix). No-op when sigma = 0.
// Complexity: O(n²) time, O(1) extra space.
func applyNoise(m *matrix.Dense, cfg options) {
	if cfg.sigma == 0 {
		return
	}

	field := opensimplex.New(cfg.seed)
	n := m.Rows()

	var i, j int
	var w, factor float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // upper triangle, mirrored below
			w, _ = m.At(i, j)
			if w == 0 {
				continue // keep structural zeros structural
			}
			// Sample the smooth field at the (unordered) edge coordinate.
			factor = 1 + cfg.sigma*field.Eval2(float64(i)*noiseCoordStep, float64(j)*noiseCoordStep)
			if factor < 0 {
				factor = 0 // non-negativity clamp
			}
			_ = m.Set(i, j, w*factor)
			_ = m.Set(j, i, w*factor)
		}
	}
}
