// engine.go implements Compute, walking exactly the induced subgraphs
// whose membership in a connected graphlet can change when {u,v} toggles.

package delta

import (
	"github.com/rcannood/incgraph/graph"
	"github.com/rcannood/incgraph/orbit"
)

// Result holds the per-node, per-orbit counts of graphlet instances
// destroyed (Rem) and created (Add) by one edge toggle.
type Result struct {
	N   int
	Add [][]int64
	Rem [][]int64
}

func newResult(n int) *Result {
	add := make([][]int64, n)
	rem := make([][]int64, n)
	for i := 0; i < n; i++ {
		add[i] = make([]int64, orbit.NumOrbits)
		rem[i] = make([]int64, orbit.NumOrbits)
	}
	return &Result{N: n, Add: add, Rem: rem}
}

// NonZeroNodes returns, ascending, every node index with at least one
// non-zero entry in either matrix — the locality property (spec property
// 5) guarantees this set is confined to the toggle's extended neighbourhood.
// Complexity: O(N * orbit.NumOrbits).
func (r *Result) NonZeroNodes() []int {
	var out []int
	for i := 0; i < r.N; i++ {
		if rowHasNonZero(r.Add[i]) || rowHasNonZero(r.Rem[i]) {
			out = append(out, i)
		}
	}
	return out
}

func rowHasNonZero(row []int64) bool {
	for _, v := range row {
		if v != 0 {
			return true
		}
	}
	return false
}

// Compute enumerates every induced subgraph containing both u and v that
// is connected before or after {u,v} is toggled in g, and returns the
// resulting per-node orbit deltas. g is read only; it is never mutated.
//
// Enumeration grows a set seeded at {u,v} one vertex at a time using the
// same exclusive-neighbourhood discipline scratch's ESU counter uses
// (see scratch/counter.go): a vertex freshly added to the set can only
// pull in neighbours not already reachable from the set as it stood
// before that vertex joined, which guarantees every vertex set is
// discovered along exactly one growth path. Unlike a single-vertex ESU
// anchor, this seed already contains two fixed vertices, so there is no
// sweep over candidate anchors to de-duplicate against — a numeric
// ordering between the newly-added vertices is neither needed nor
// correct here, since it would arbitrarily exclude sets whose vertex
// closest to {u,v} happens to have the larger id.
// Complexity: O(d̄^4) where d̄ bounds the degree of vertices within
// distance 2 of {u,v}.
func Compute(g *graph.AdjacencyStore, u, v int) (*Result, error) {
	if u < 0 || u >= g.N() || v < 0 || v >= g.N() || u == v {
		return nil, graph.ErrInvalidNodeID
	}

	res := newResult(g.N())

	credit := func(verts []int) {
		k := len(verts)
		hasBefore := func(a, b int) bool { return g.Contains(verts[a], verts[b]) }
		hasAfter := func(a, b int) bool {
			ga, gb := verts[a], verts[b]
			present := g.Contains(ga, gb)
			if (ga == u && gb == v) || (ga == v && gb == u) {
				return !present
			}
			return present
		}

		maskBefore := orbit.MaskFromEdges(k, hasBefore)
		if orbit.IsConnected(k, maskBefore) {
			for f := 0; f < k; f++ {
				o := orbit.OrbitID(k, maskBefore, f)
				res.Rem[verts[f]][o]++
			}
		}

		maskAfter := orbit.MaskFromEdges(k, hasAfter)
		if orbit.IsConnected(k, maskAfter) {
			for f := 0; f < k; f++ {
				o := orbit.OrbitID(k, maskAfter, f)
				res.Add[verts[f]][o]++
			}
		}
	}

	nuv := excluding(unionSorted(g.Neighbours(u), g.Neighbours(v)), u, v)

	var extend func(sub []int, ext []int)
	extend = func(sub []int, ext []int) {
		credit(sub)
		if len(sub) == maxGraphletSize {
			return
		}
		for i := 0; i < len(ext); i++ {
			w := ext[i]
			rest := make([]int, len(ext)-i-1)
			copy(rest, ext[i+1:])
			next := append(rest, exclusiveNeighbours(g, w, sub)...)

			grown := make([]int, len(sub)+1)
			copy(grown, sub)
			grown[len(sub)] = w
			extend(grown, next)
		}
	}
	extend([]int{u, v}, nuv)

	return res, nil
}

const maxGraphletSize = 5

// exclusiveNeighbours returns w's neighbours that are not already in sub
// and not already adjacent to any vertex in sub — the set that can only
// be reached by extending through w, not through an earlier member.
func exclusiveNeighbours(g *graph.AdjacencyStore, w int, sub []int) []int {
	forbidden := make(map[int]bool, len(sub)*4)
	for _, s := range sub {
		forbidden[s] = true
		for _, nb := range g.Neighbours(s) {
			forbidden[nb] = true
		}
	}
	var out []int
	for _, z := range g.Neighbours(w) {
		if !forbidden[z] {
			out = append(out, z)
		}
	}
	return out
}

// unionSorted merges two ascending, duplicate-free slices into one.
func unionSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// excluding returns a with x and y removed, preserving order.
func excluding(a []int, x, y int) []int {
	out := a[:0:0]
	for _, v := range a {
		if v == x || v == y {
			continue
		}
		out = append(out, v)
	}
	return out
}
