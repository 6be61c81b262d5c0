// Package scratch provides a from-scratch exact orbit counter, used to
// seed a network's running orbit matrix and to cross-check the delta
// package's incremental output against a full recount.
//
// Counting uses ESU (Wernicke 2006, "Efficient Detection of Network
// Motifs"): anchored at each vertex v in ascending order, it grows
// connected vertex sets one exclusive-neighbourhood vertex at a time so
// every connected induced subgraph on 2..5 vertices is visited exactly
// once, with no combinatorial subset enumeration and no double counting.
package scratch
