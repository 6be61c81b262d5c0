// This file implements AdjacencyStore's mutators and edge-existence
// queries. Each adj[i] is a sorted []int; Contains binary-searches it,
// Flip splices into or out of it in place.

package graph

import "sort"

// search returns the index where j would sit in the sorted adj[i], and
// whether it is already present there.
func (s *AdjacencyStore) search(i, j int) (idx int, found bool) {
	nbrs := s.adj[i]
	idx = sort.SearchInts(nbrs, j)
	found = idx < len(nbrs) && nbrs[idx] == j
	return idx, found
}

// Contains reports whether {i,j} is an edge. i==j always returns false.
// Complexity: O(log deg(i)).
func (s *AdjacencyStore) Contains(i, j int) bool {
	if !s.validID(i) || !s.validID(j) || i == j {
		return false
	}
	_, found := s.search(i, j)
	return found
}

// Degree returns |adj[i]|.
// Complexity: O(1).
func (s *AdjacencyStore) Degree(i int) int {
	if !s.validID(i) {
		return 0
	}
	return len(s.adj[i])
}

// Flip toggles the presence of edge {i,j}: inserts it if absent, removes
// it if present. Fails only on an invalid id or i==j.
// Complexity: O(deg(i) + deg(j)) for the slice splice.
func (s *AdjacencyStore) Flip(i, j int) error {
	if !s.validID(i) || !s.validID(j) || i == j {
		return ErrInvalidNodeID
	}
	if idx, found := s.search(i, j); found {
		s.adj[i] = append(s.adj[i][:idx], s.adj[i][idx+1:]...)
	} else {
		s.adj[i] = insertAt(s.adj[i], idx, j)
	}
	if idx, found := s.search(j, i); found {
		s.adj[j] = append(s.adj[j][:idx], s.adj[j][idx+1:]...)
	} else {
		s.adj[j] = insertAt(s.adj[j], idx, i)
	}
	return nil
}

func insertAt(nbrs []int, idx, v int) []int {
	nbrs = append(nbrs, 0)
	copy(nbrs[idx+1:], nbrs[idx:])
	nbrs[idx] = v
	return nbrs
}

// Reset empties every adjacency set, preserving N.
// Complexity: O(N + E).
func (s *AdjacencyStore) Reset() {
	for i := range s.adj {
		s.adj[i] = nil
	}
}

// SetNetwork validates edges in full before mutating anything, then
// resets and loads them. On any validation failure the store is left
// reset (empty), never partially loaded and never in its pre-call
// state — this matches the documented "reset then load" semantics.
// Duplicate unordered pairs are rejected rather than silently
// deduplicated, per SPEC_FULL.md §9's resolution of the corresponding
// open question.
// Complexity: O(E log E).
func (s *AdjacencyStore) SetNetwork(edges [][2]int) error {
	seen := make(map[[2]int]struct{}, len(edges))
	for _, e := range edges {
		a, b := e[0], e[1]
		if !s.validID(a) || !s.validID(b) || a == b {
			s.Reset()
			return ErrInvalidInput
		}
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if _, dup := seen[key]; dup {
			s.Reset()
			return ErrInvalidInput
		}
		seen[key] = struct{}{}
	}

	s.Reset()
	for _, e := range edges {
		// Validated above: distinct in-range endpoints, no duplicates,
		// so every Flip here is a pure insertion.
		_ = s.Flip(e[0], e[1])
	}
	return nil
}

// EdgeList returns every edge as (min,max), lexicographically ascending.
// Complexity: O(N + E).
func (s *AdjacencyStore) EdgeList() [][2]int {
	var out [][2]int
	for i := 0; i < s.n; i++ {
		for _, j := range s.adj[i] {
			if j > i {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}
