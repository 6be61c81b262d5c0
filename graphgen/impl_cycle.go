// impl_cycle.go — implementation of Cycle(n).
//
// Contract:
//   - n >= MinCycleNodes, else ErrTooFewVertices.
//   - Emits the ring 0-1-2-...-(n-1)-0 as (min,max) pairs in ascending
//     order: (0,1), (0,n-1), then (i,i+1) for i=1..n-2.
//
// Complexity: O(n) time, O(n) space for the returned edge list.

package graphgen

import "fmt"

// Cycle returns the edge list of the n-vertex simple cycle C_n.
func Cycle(n int) ([][2]int, error) {
	if n < MinCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n)
	edges = append(edges, [2]int{0, 1}, [2]int{0, n - 1})
	for i := 1; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	return edges, nil
}
