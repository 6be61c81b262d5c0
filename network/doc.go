// Package network exposes Facade, the stateful handle applications hold: a
// 1-based view over a graph.AdjacencyStore, wired to the delta and scratch
// packages. All node ids crossing this package's boundary are 1-based;
// the internal store stays 0-based, and Facade owns the translation.
package network
