package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcannood/incgraph/network"
)

func TestConstructionAndBasicQueries(t *testing.T) {
	// S2: N=4, edges {(1,2),(2,3),(1,4)}.
	f, err := network.NewFromEdges([][2]int{{1, 2}, {2, 3}, {1, 4}})
	require.NoError(t, err)
	require.Equal(t, 4, f.N())

	require.True(t, f.Contains(1, 2))
	require.False(t, f.Contains(3, 4))
	require.Equal(t, []int{2, 4}, f.GetNeighbours(1))
	require.Equal(t, []int{1, 3}, f.GetNeighbours(2))
}

func TestEmptyGraphOrbitCounts(t *testing.T) {
	// S1: N=4, no edges.
	f, err := network.New(4)
	require.NoError(t, err)

	counts, err := f.CalculateOrbitCounts()
	require.NoError(t, err)
	require.Len(t, counts, 4)
	for _, row := range counts {
		for _, v := range row {
			require.EqualValues(t, 0, v)
		}
	}
	require.Empty(t, f.NetworkAsMatrix())
}

func TestFlipSelfRejected(t *testing.T) {
	f, err := network.New(3)
	require.NoError(t, err)
	err = f.Flip(2, 2)
	require.ErrorIs(t, err, network.ErrInvalidNodeID)
}

func TestFlipInvolution(t *testing.T) {
	f, err := network.New(3)
	require.NoError(t, err)

	require.NoError(t, f.Flip(1, 2))
	require.True(t, f.Contains(1, 2))
	require.NoError(t, f.Flip(1, 2))
	require.False(t, f.Contains(1, 2))
}

func TestRoundTripWithBulkLoad(t *testing.T) {
	f, err := network.NewFromEdges([][2]int{{1, 2}, {2, 3}, {1, 3}})
	require.NoError(t, err)

	before := f.NetworkAsMatrix()
	require.NoError(t, f.SetNetwork(before))
	after := f.NetworkAsMatrix()
	require.Equal(t, before, after)
}

func TestDeltaThenFlipMatchesScratchRecount(t *testing.T) {
	f, err := network.NewFromEdges([][2]int{{1, 2}, {2, 3}, {1, 3}})
	require.NoError(t, err)

	before, err := f.CalculateOrbitCounts()
	require.NoError(t, err)

	res, err := f.CalculateDelta(1, 3)
	require.NoError(t, err)
	require.NoError(t, f.Flip(1, 3))

	after, err := f.CalculateOrbitCounts()
	require.NoError(t, err)

	for node := 0; node < f.N(); node++ {
		for o := 0; o < len(before[node]); o++ {
			want := before[node][o] + res.Add[node][o] - res.Rem[node][o]
			require.EqualValues(t, want, after[node][o], "node %d orbit %d", node, o)
		}
	}
}
