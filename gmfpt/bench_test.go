// SPDX-License-Identifier: MIT
// Package gmfpt_test: benchmarks for the solver hot path.
package gmfpt_test

import (
	"testing"

	"github.com/karstvern/voidwalk/gmfpt"
	"github.com/karstvern/voidwalk/matrix"
)

// benchRing builds a unit-weight ring of n nodes.
func benchRing(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, (i+1)%n, 1)
		_ = m.Set((i+1)%n, i, 1)
	}
	return m
}

// BenchmarkSolve measures the full pipeline (validation + eigensolve +
// accumulation) on rings of increasing order.
func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{16, 64, 128} {
		w := benchRing(b, n)
		b.Run(map[int]string{16: "n16", 64: "n64", 128: "n128"}[n], func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := gmfpt.Solve(w); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSolveParallel compares serial and 4-way accumulation.
func BenchmarkSolveParallel(b *testing.B) {
	w := benchRing(b, 128)
	b.Run("serial", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := gmfpt.Solve(w); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("workers4", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := gmfpt.Solve(w, gmfpt.WithWorkers(4)); err != nil {
				b.Fatal(err)
			}
		}
	})
}
