// Package incgraph is an incremental graphlet orbit-count delta engine
// for undirected simple graphs.
//
// A graph's 73-orbit profile — how many times each of the 30 connected
// graphlets on 2 to 5 vertices touches each vertex, broken down by
// automorphism orbit — is expensive to compute from scratch after every
// edit. incgraph keeps that profile current one edge flip at a time by
// enumerating only the bounded neighbourhood the flip can possibly
// affect, and exposes both the incremental path and a from-scratch
// recount so the two can be cross-checked.
//
// Subpackages:
//
//	graph      — the adjacency-list store: node/edge mutation, degree and neighbour queries
//	orbit      — the 30-graphlet/73-orbit classification tables, built once at init time
//	delta      — computes the orbit-count delta a single edge toggle would produce
//	scratch    — a from-scratch orbit-count recount via subgraph enumeration
//	network    — the 1-based public facade tying graph, delta and scratch together
//	graphgen   — deterministic fixture generators (cycle, path, complete, random sparse)
//	validate   — a harness that cross-checks incremental deltas against scratch recounts
//	internal/xlog — structured logging setup shared across the packages above
//	cmd/incgraph  — a CLI exposing the delta and full-recount operations
package incgraph
