// api.go exposes Facade operations that delegate to a collaborator
// package wholesale rather than translating ids over AdjacencyStore.

package network

import (
	"github.com/rcannood/incgraph/graph"
	"github.com/rcannood/incgraph/scratch"
)

// CalculateOrbitCounts delegates to the scratch package for a full
// from-scratch recount of the current adjacency's orbit matrix.
func (f *Facade) CalculateOrbitCounts() ([][]int64, error) {
	return scratch.Count(f.store)
}

// Stats reports a size snapshot of the underlying store.
func (f *Facade) Stats() graph.Stats {
	return f.store.Stats()
}
