// Package orbit provides the static, process-wide classification tables
// mapping an induced subgraph on k∈{2..5} labelled vertices, plus a
// designated focus vertex, to one of 73 automorphism orbits.
//
// Rather than transcribe the published Hočevar–Demšar orbit numbering by
// hand — a 73-row, largely unverifiable lookup table that a single digit
// transposition would silently corrupt — this package computes the tables
// at init() time from first principles: brute-force permutation search
// over each k-vertex labelling (k! ≤ 120), grouping induced edge-masks
// into isomorphism classes (graphlets) and partitioning each graphlet's
// vertices into automorphism orbits via union-find. The numbering that
// results is internally consistent (delta.Compute and scratch.Counter
// agree, because both consult these same tables) but does not claim to
// match any published orbit-index assignment.
//
// Every induced subgraph on k labelled vertices is encoded as a uint16
// edge mask: bit pairIndex(a,b,k) is set iff {a,b} is an edge, using the
// canonical triangular pair ordering (0,1),(0,2),...,(0,k-1),(1,2),....
package orbit
