package delta_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcannood/incgraph/delta"
	"github.com/rcannood/incgraph/graph"
	"github.com/rcannood/incgraph/graphgen"
	"github.com/rcannood/incgraph/orbit"
)

func sumMatrix(m [][]int64) int64 {
	var total int64
	for _, row := range m {
		for _, v := range row {
			total += v
		}
	}
	return total
}

func TestComputeRejectsInvalidEndpoints(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	_, err = delta.Compute(g, 0, 0)
	require.ErrorIs(t, err, graph.ErrInvalidNodeID)

	_, err = delta.Compute(g, 0, 5)
	require.ErrorIs(t, err, graph.ErrInvalidNodeID)
}

func TestComputeBareEdgeToggle(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)

	res, err := delta.Compute(g, 0, 1)
	require.NoError(t, err)

	edgeMask := orbit.MaskFromEdges(2, func(a, b int) bool { return true })
	edgeOrbit := orbit.OrbitID(2, edgeMask, 0)

	require.EqualValues(t, 1, res.Add[0][edgeOrbit])
	require.EqualValues(t, 1, res.Add[1][edgeOrbit])
	require.EqualValues(t, int64(0), sumMatrix(res.Rem))
}

// TestComputeTriangleChord mirrors the triangle scenario: toggling one edge
// of a triangle turns it into a path, so the 3-node graphlet at that vertex
// set is reclassified rather than simply destroyed or created, and the
// 2-node graphlet on the toggled pair is removed outright.
func TestComputeTriangleChord(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetNetwork([][2]int{{0, 1}, {1, 2}, {0, 2}}))

	res, err := delta.Compute(g, 0, 2)
	require.NoError(t, err)

	edgeMask := orbit.MaskFromEdges(2, func(a, b int) bool { return true })
	edgeOrbit := orbit.OrbitID(2, edgeMask, 0)

	triMask := orbit.MaskFromEdges(3, func(a, b int) bool { return true })
	triOrbit := orbit.OrbitID(3, triMask, 0)

	pathMask := orbit.MaskFromEdges(3, func(a, b int) bool {
		return (a == 0 && b == 1) || (a == 1 && b == 2)
	})
	endOrbit := orbit.OrbitID(3, pathMask, 0)
	midOrbit := orbit.OrbitID(3, pathMask, 1)

	require.EqualValues(t, 1, res.Rem[0][edgeOrbit])
	require.EqualValues(t, 1, res.Rem[2][edgeOrbit])
	require.EqualValues(t, 1, res.Rem[0][triOrbit])
	require.EqualValues(t, 1, res.Rem[1][triOrbit])
	require.EqualValues(t, 1, res.Rem[2][triOrbit])

	require.EqualValues(t, 1, res.Add[0][endOrbit])
	require.EqualValues(t, 1, res.Add[2][endOrbit])
	require.EqualValues(t, 1, res.Add[1][midOrbit])

	require.EqualValues(t, 5, sumMatrix(res.Rem))
	require.EqualValues(t, 3, sumMatrix(res.Add))

	require.ElementsMatch(t, []int{0, 1, 2}, res.NonZeroNodes())
}

func TestComputeIsLocal(t *testing.T) {
	edges, err := graphgen.Path(10)
	require.NoError(t, err)
	g, err := graph.New(10)
	require.NoError(t, err)
	require.NoError(t, g.SetNetwork(edges))

	res, err := delta.Compute(g, 0, 1)
	require.NoError(t, err)

	// Node 9 sits at graph-distance 8 from the toggled edge; far beyond the
	// distance-4 locality bound, so its row must be untouched.
	require.EqualValues(t, int64(0), sumMatrix([][]int64{res.Add[9]}))
	require.EqualValues(t, int64(0), sumMatrix([][]int64{res.Rem[9]}))
}
