// counter.go implements the ESU enumeration and per-graphlet crediting
// that together produce a full N×orbit.NumOrbits orbit-count matrix.

package scratch

import (
	"github.com/rcannood/incgraph/graph"
	"github.com/rcannood/incgraph/orbit"
)

const maxGraphletSize = 5

// Counter recounts a graph's orbit matrix from scratch.
type Counter interface {
	Count(g *graph.AdjacencyStore) ([][]int64, error)
}

// BruteForceCounter counts via ESU subgraph enumeration.
type BruteForceCounter struct{}

// Count returns an N×orbit.NumOrbits matrix; row i holds node i's counts
// across all 73 orbits.
// Complexity: O(N * d^4) where d bounds vertex degree, matching the
// classic combinatorial graphlet-counting bound this component stands in
// for at the systems level.
func (BruteForceCounter) Count(g *graph.AdjacencyStore) ([][]int64, error) {
	n := g.N()
	counts := make([][]int64, n)
	for i := range counts {
		counts[i] = make([]int64, orbit.NumOrbits)
	}

	e := &enumerator{g: g, counts: counts}
	for v := 0; v < n; v++ {
		var ext []int
		for _, u := range g.Neighbours(v) {
			if u > v {
				ext = append(ext, u)
			}
		}
		e.extend([]int{v}, ext, v)
	}
	return counts, nil
}

// Count runs BruteForceCounter over g.
func Count(g *graph.AdjacencyStore) ([][]int64, error) {
	return BruteForceCounter{}.Count(g)
}

type enumerator struct {
	g      *graph.AdjacencyStore
	counts [][]int64
}

// extend implements one level of ESU's recursive expansion: sub is the
// connected vertex set built so far (anchored at sub[0]==anchor), ext
// holds candidate vertices greater than anchor available for extension.
func (e *enumerator) extend(sub []int, ext []int, anchor int) {
	if len(sub) >= 2 {
		e.credit(sub)
	}
	if len(sub) == maxGraphletSize {
		return
	}
	for i := 0; i < len(ext); i++ {
		w := ext[i]
		// Remaining unprocessed candidates: ext[i+1:], copied so the
		// upcoming append cannot alias and corrupt ext's backing array.
		rest := make([]int, len(ext)-i-1)
		copy(rest, ext[i+1:])
		next := append(rest, e.exclusiveNeighbours(w, sub, anchor)...)
		e.extend(append(sub, w), next, anchor)
	}
}

// exclusiveNeighbours returns w's neighbours greater than anchor that are
// not already in sub and not already adjacent to any vertex in sub —
// the set ESU uses to guarantee each final vertex set is reached exactly
// once regardless of insertion order.
func (e *enumerator) exclusiveNeighbours(w int, sub []int, anchor int) []int {
	forbidden := make(map[int]bool, len(sub)*4)
	for _, s := range sub {
		forbidden[s] = true
		for _, nb := range e.g.Neighbours(s) {
			forbidden[nb] = true
		}
	}
	var out []int
	for _, u := range e.g.Neighbours(w) {
		if u > anchor && !forbidden[u] {
			out = append(out, u)
		}
	}
	return out
}

// credit classifies the induced subgraph on sub and increments each
// vertex's orbit count.
func (e *enumerator) credit(sub []int) {
	k := len(sub)
	mask := orbit.MaskFromEdges(k, func(a, b int) bool {
		return e.g.Contains(sub[a], sub[b])
	})
	if !orbit.IsConnected(k, mask) {
		return
	}
	for f := 0; f < k; f++ {
		o := orbit.OrbitID(k, mask, f)
		e.counts[sub[f]][o]++
	}
}
