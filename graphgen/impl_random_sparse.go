// impl_random_sparse.go — implementation of RandomSparse(n, p, seed).
//
// Erdős–Rényi-like generator: each unordered pair {i,j}, i<j, is included
// independently with probability p, sampled from a seeded RNG so the same
// (n, p, seed) always yields the same edge list.
//
// Contract:
//   - n >= 1, else ErrTooFewVertices.
//   - 0 <= p <= 1, else ErrInvalidProbability.
//   - Trial order is fixed: i ascending, then j ascending (j > i).
//
// Complexity: O(n^2) Bernoulli trials.

package graphgen

import (
	"fmt"
	"math/rand"
)

// RandomSparse returns the edge list of a random sparse graph sampled with
// per-pair probability p, deterministic for a given seed.
func RandomSparse(n int, p float64, seed int64) ([][2]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, 1, ErrTooFewVertices)
	}
	if p < MinProbability || p > MaxProbability {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	rng := rand.New(rand.NewSource(seed))
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges, nil
}
