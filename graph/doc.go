// Package graph provides AdjacencyStore, a fixed-size, 0-based,
// undirected simple graph with a minimal API surface tuned for one
// consumer: the delta package's flip enumeration.
//
// AdjacencyStore G = (V,E) is a plain adjacency-set representation:
//
//   - V = [0,N), fixed at construction.
//   - Per-node ascending sorted neighbour slices — O(log deg) Contains,
//     O(deg) Neighbours, O(deg(i)+deg(j)) CommonNeighbours.
//   - No directedness, no weights, no multi-edges, no self-loops: all
//     four are non-goals of the system this package serves.
//   - No locking: exactly one goroutine may mutate and read one store at
//     a time; neither this package nor the network facade enforces it.
//
// Methods:
//
//	New(n int) (*AdjacencyStore, error)                 // O(n)
//	Contains(i, j int) bool                             // O(log deg(i))
//	Neighbours(i int) []int                             // O(deg(i))
//	CommonNeighbours(i, j int) []int                    // O(deg(i)+deg(j))
//	Degree(i int) int                                   // O(1)
//	Flip(i, j int) error                                // O(deg(i)+deg(j))
//	Reset()                                             // O(N+E)
//	SetNetwork(edges [][2]int) error                    // O(E log E)
//	EdgeList() [][2]int                                 // O(N+E)
//	Stats() Stats                                       // O(N)
//
// Errors:
//
//	ErrInvalidNodeCount — n < 1 at construction
//	ErrInvalidNodeID    — id outside [0,N), or i == j where distinct ids are required
//	ErrInvalidInput     — malformed edge list passed to SetNetwork
package graph
