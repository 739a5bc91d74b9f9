// SPDX-License-Identifier: MIT
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karstvern/voidwalk/builder"
	"github.com/karstvern/voidwalk/gmfpt"
	"github.com/karstvern/voidwalk/void"
)

// TestPipeline_ChainVoidSolve drives the full pipeline: build a 10-node
// chain, embed the bulk reservoir at p = 0.3, and solve for the mean first
// passage times on the augmented system.
func TestPipeline_ChainVoidSolve(t *testing.T) {
	base, err := builder.Chain(10)
	require.NoError(t, err)

	aug, err := void.Augment(base, 0.3)
	require.NoError(t, err)
	require.Equal(t, 11, aug.Rows())

	times, err := gmfpt.Solve(aug)
	require.NoError(t, err)
	require.Len(t, times, 11)

	for i, ti := range times {
		require.False(t, math.IsNaN(ti) || math.IsInf(ti, 0), "node %d", i)
		require.Greater(t, ti, 0.0, "node %d", i)
	}

	// The chain is mirror symmetric and the reservoir couples by degree, so
	// the augmented system inherits the i ↔ 9−i symmetry exactly.
	for i := 0; i < 5; i++ {
		require.InDelta(t, times[9-i], times[i], 1e-9, "mirror pair %d/%d", i, 9-i)
	}
}

// TestPipeline_VoidLowersRemoteTimes checks the qualitative effect of the
// reservoir: on a long chain the far endpoint becomes easier to reach once
// every node can shortcut through the bulk.
func TestPipeline_VoidLowersRemoteTimes(t *testing.T) {
	base, err := builder.Chain(20)
	require.NoError(t, err)

	bare, err := gmfpt.Solve(base)
	require.NoError(t, err)

	aug, err := void.Augment(base, 0.5)
	require.NoError(t, err)
	withVoid, err := gmfpt.Solve(aug)
	require.NoError(t, err)

	// Endpoint of the bare chain vs the same node in the augmented system.
	require.Less(t, withVoid[0], bare[0])
}
