package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solrune/incdbscan/core"
	"github.com/solrune/incdbscan/traverse"
)

func TestSplitFrontiers_SeedNotCore(t *testing.T) {
	g := buildGraph(t, [][2]core.ObjectID{{1, 2}}, []core.ObjectID{1, 2})
	isCore := func(id core.ObjectID) bool { return id == 1 }
	_, err := traverse.SplitFrontiers(g, isCore, []core.ObjectID{1, 2})
	require.ErrorIs(t, err, traverse.ErrSeedNotCore)
}

func TestSplitFrontiers_SingleSeedIsTrivial(t *testing.T) {
	g := buildGraph(t, [][2]core.ObjectID{{1, 2}}, []core.ObjectID{1, 2})
	isCore := func(core.ObjectID) bool { return true }
	result, err := traverse.SplitFrontiers(g, isCore, []core.ObjectID{1})
	require.NoError(t, err)
	require.False(t, result.Split, "single seed must never report a split")
}

func TestSplitFrontiers_IntactChain(t *testing.T) {
	// 1-2-3-4-5, all core: seeding the two ends must reach each other and
	// report no split.
	edges := [][2]core.ObjectID{{1, 2}, {2, 3}, {3, 4}, {4, 5}}
	nodes := []core.ObjectID{1, 2, 3, 4, 5}
	g := buildGraph(t, edges, nodes)
	isCore := func(core.ObjectID) bool { return true }

	result, err := traverse.SplitFrontiers(g, isCore, []core.ObjectID{1, 5})
	require.NoError(t, err)
	require.False(t, result.Split, "intact chain reported as split: %+v", result.Components)
	require.Len(t, result.Components, 1)
	require.Equal(t, []core.ObjectID{1, 2, 3, 4, 5}, result.Components[0].Cores)
}

func TestSplitFrontiers_DetectsSplitWithBorders(t *testing.T) {
	// Two disconnected core chains: {1,2,3} and {4,5,6}, plus a border on
	// each end (7 off of 1, 8 off of 6). Seeding the two far ends (1 and 6)
	// must report a genuine split, equal-sized fragments.
	edges := [][2]core.ObjectID{
		{1, 2}, {2, 3},
		{4, 5}, {5, 6},
		{1, 7}, {6, 8},
	}
	nodes := []core.ObjectID{1, 2, 3, 4, 5, 6, 7, 8}
	g := buildGraph(t, edges, nodes)

	cores := map[core.ObjectID]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true}
	isCore := func(id core.ObjectID) bool { return cores[id] }

	result, err := traverse.SplitFrontiers(g, isCore, []core.ObjectID{1, 6})
	require.NoError(t, err)
	require.True(t, result.Split, "want a detected split")
	require.Len(t, result.Components, 2)

	seen := make(map[core.ObjectID]bool)
	for _, comp := range result.Components {
		for _, c := range comp.Cores {
			require.False(t, seen[c], "core %d assigned to more than one fragment", c)
			seen[c] = true
		}
	}
	for _, id := range []core.ObjectID{1, 2, 3, 4, 5, 6} {
		require.True(t, seen[id], "core %d missing from every fragment", id)
	}

	// Every fragment must be internally connected and carry exactly the
	// border hanging off its own end.
	byFirst := map[core.ObjectID]traverse.Component{}
	for _, comp := range result.Components {
		byFirst[comp.Cores[0]] = comp
	}
	left, ok := byFirst[1]
	require.True(t, ok, "no fragment rooted at 1; components=%+v", result.Components)
	require.Equal(t, []core.ObjectID{1, 2, 3}, left.Cores)
	require.Equal(t, []core.ObjectID{7}, left.Borders)

	right, ok := byFirst[4]
	require.True(t, ok, "no fragment rooted at 4; components=%+v", result.Components)
	require.Equal(t, []core.ObjectID{4, 5, 6}, right.Cores)
	require.Equal(t, []core.ObjectID{8}, right.Borders)
}
