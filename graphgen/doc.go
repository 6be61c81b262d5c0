// Package graphgen produces deterministic edge-list fixtures used by the
// validate package's consistency scenarios and by unit tests across the
// module. Every generator returns a plain [][2]int over node ids [0,n),
// ascending (min,max), with no weights or direction — the domain this
// module works over never needs either.
//
//   - Cycle(n)               — C_n ring.
//   - Path(n)                — P_n path.
//   - Complete(n)            — K_n complete graph.
//   - RandomSparse(n,p,seed) — Erdős–Rényi-like sparse graph, seeded.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability); callers
// branch with errors.Is.
package graphgen
