// impl_path.go — implementation of Path(n).
//
// Contract:
//   - n >= MinPathNodes, else ErrTooFewVertices.
//   - Emits edges (i-1, i) for i=1..n-1, in ascending order.
//
// Complexity: O(n) time, O(n) space.

package graphgen

import "fmt"

// Path returns the edge list of the n-vertex simple path P_n.
func Path(n int) ([][2]int, error) {
	if n < MinPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, minMax(i-1, i))
	}
	return edges, nil
}
