package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcannood/incgraph/graph"
)

func TestNewRejectsNonPositiveCount(t *testing.T) {
	_, err := graph.New(0)
	require.ErrorIs(t, err, graph.ErrInvalidNodeCount)

	_, err = graph.New(-1)
	require.ErrorIs(t, err, graph.ErrInvalidNodeCount)
}

func TestFlipIsAnInvolution(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	require.False(t, g.Contains(0, 1))
	require.NoError(t, g.Flip(0, 1))
	require.True(t, g.Contains(0, 1))
	require.True(t, g.Contains(1, 0))
	require.NoError(t, g.Flip(0, 1))
	require.False(t, g.Contains(0, 1))
}

func TestFlipRejectsSelfLoopsAndOutOfRange(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	require.ErrorIs(t, g.Flip(1, 1), graph.ErrInvalidNodeID)
	require.ErrorIs(t, g.Flip(-1, 0), graph.ErrInvalidNodeID)
	require.ErrorIs(t, g.Flip(0, 3), graph.ErrInvalidNodeID)
}

func TestNeighboursAreSortedAndIndependentOfInsertionOrder(t *testing.T) {
	g, err := graph.New(5)
	require.NoError(t, err)

	require.NoError(t, g.Flip(0, 4))
	require.NoError(t, g.Flip(0, 1))
	require.NoError(t, g.Flip(0, 2))

	require.Equal(t, []int{1, 2, 4}, g.Neighbours(0))
	require.Equal(t, 3, g.Degree(0))
}

func TestNeighboursReturnsACopy(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.Flip(0, 1))

	nbrs := g.Neighbours(0)
	nbrs[0] = 99
	require.Equal(t, []int{1}, g.Neighbours(0))
}

func TestCommonNeighbours(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.SetNetwork([][2]int{{0, 2}, {1, 2}, {0, 3}, {1, 3}}))

	require.Equal(t, []int{2, 3}, g.CommonNeighbours(0, 1))
}

func TestSetNetworkRejectsDuplicateEdges(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	err = g.SetNetwork([][2]int{{0, 1}, {1, 0}})
	require.ErrorIs(t, err, graph.ErrInvalidInput)
	// A failed SetNetwork leaves the store empty, not partially loaded.
	require.False(t, g.Contains(0, 1))
}

func TestSetNetworkRejectsSelfLoopsAndOutOfRange(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	require.ErrorIs(t, g.SetNetwork([][2]int{{0, 0}}), graph.ErrInvalidInput)
	require.ErrorIs(t, g.SetNetwork([][2]int{{0, 5}}), graph.ErrInvalidInput)
}

func TestEdgeListIsCanonicalAndAscending(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.SetNetwork([][2]int{{3, 1}, {0, 2}}))

	require.Equal(t, [][2]int{{0, 2}, {1, 3}}, g.EdgeList())
}

func TestStats(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.SetNetwork([][2]int{{0, 1}, {0, 2}, {0, 3}}))

	st := g.Stats()
	require.Equal(t, 4, st.NodeCount)
	require.Equal(t, 3, st.EdgeCount)
	require.Equal(t, 3, st.MaxDegree)
}

func TestResetPreservesNodeCount(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.Flip(0, 1))

	g.Reset()
	require.Equal(t, 3, g.N())
	require.False(t, g.Contains(0, 1))
}
