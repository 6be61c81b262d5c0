// methods.go implements Facade's mutators and queries, translating every
// externally-visible id from 1-based to the store's 0-based space and
// back. Translation is arithmetic only: out-of-range or equal ids are
// still rejected by the underlying AdjacencyStore, so no duplicate
// validation is needed here.

package network

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rcannood/incgraph/delta"
)

// Reset empties the graph, preserving N.
func (f *Facade) Reset() {
	f.store.Reset()
	f.log.Debug("reset", zap.Int("n", f.store.N()))
}

// Flip toggles edge {i,j} (1-based).
func (f *Facade) Flip(i, j int) error {
	if err := f.store.Flip(i-1, j-1); err != nil {
		return errors.Wrapf(err, "flip(%d,%d)", i, j)
	}
	f.log.Debug("flip", zap.Int("i", i), zap.Int("j", j))
	return nil
}

// SetNetwork resets the graph then loads edges (1-based pairs).
func (f *Facade) SetNetwork(edges [][2]int) error {
	zeroBased := make([][2]int, len(edges))
	for k, e := range edges {
		zeroBased[k] = [2]int{e[0] - 1, e[1] - 1}
	}
	if err := f.store.SetNetwork(zeroBased); err != nil {
		return errors.Wrapf(err, "set_network(%d edges)", len(edges))
	}
	f.log.Debug("set_network", zap.Int("edges", len(edges)))
	return nil
}

// Contains reports whether {i,j} is an edge (1-based ids).
func (f *Facade) Contains(i, j int) bool {
	return f.store.Contains(i-1, j-1)
}

// GetNeighbours returns node i's neighbours, ascending, 1-based.
func (f *Facade) GetNeighbours(i int) []int {
	nbrs := f.store.Neighbours(i - 1)
	out := make([]int, len(nbrs))
	for k, v := range nbrs {
		out[k] = v + 1
	}
	return out
}

// NetworkAsMatrix returns every edge as (min,max), 1-based, ascending.
func (f *Facade) NetworkAsMatrix() [][2]int {
	edges := f.store.EdgeList()
	out := make([][2]int, len(edges))
	for k, e := range edges {
		out[k] = [2]int{e[0] + 1, e[1] + 1}
	}
	return out
}

// CalculateDelta runs the delta engine on the current adjacency for the
// pair {i,j} (1-based). It does not mutate the graph; callers apply the
// result themselves.
func (f *Facade) CalculateDelta(i, j int) (*delta.Result, error) {
	res, err := delta.Compute(f.store, i-1, j-1)
	if err != nil {
		return nil, errors.Wrapf(err, "calculate_delta(%d,%d)", i, j)
	}
	f.log.Debug("calculate_delta", zap.Int("i", i), zap.Int("j", j))
	return res, nil
}
