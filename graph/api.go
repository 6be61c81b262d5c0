// File: api.go
// Role: thin read-only diagnostics on top of AdjacencyStore, kept
// separate from types.go/methods.go the way the teacher separates its
// public facade (core/api.go) from core state and mutators.

package graph

// Stats is a deterministic snapshot of a store's size, grounded on the
// teacher's GraphStats (core/api.go): a cheap admission/diagnostic view
// rather than a scan callers must assemble themselves.
type Stats struct {
	NodeCount int
	EdgeCount int
	MaxDegree int
}

// Stats computes NodeCount, EdgeCount and MaxDegree in one pass.
// Complexity: O(N).
func (s *AdjacencyStore) Stats() Stats {
	st := Stats{NodeCount: s.n}
	for i := 0; i < s.n; i++ {
		d := len(s.adj[i])
		st.EdgeCount += d
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}
	st.EdgeCount /= 2
	return st
}
