// Package delta implements the incremental orbit-count delta engine: given
// the adjacency of a graph before a single edge toggle and that edge's two
// endpoints, it enumerates every induced 2-, 3-, 4- and 5-vertex subgraph
// whose induced edge set differs before vs after the toggle, classifies
// each occurrence (via the orbit package) into a per-vertex orbit both
// before and after, and accumulates the difference into two N×orbit.NumOrbits
// matrices: graphlet instances that disappeared (Rem) and ones that
// appeared (Add).
//
// Only subgraphs containing both toggle endpoints can change, so the
// engine restricts itself to vertex sets reachable from {u,v} within the
// extended neighbourhood the orbit size bounds — it never walks vertices
// outside that neighbourhood.
package delta
