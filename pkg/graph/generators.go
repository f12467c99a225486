package graph

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vertex-lab/hyperwalk/pkg/combinatorics"
	"github.com/vertex-lab/hyperwalk/pkg/models"
)

// vertexSet returns the set {1, ..., n}
func vertexSet(n uint32) mapset.Set[uint32] {
	V := mapset.NewThreadUnsafeSetWithSize[uint32](int(n))
	for v := uint32(1); v <= n; v++ {
		V.Add(v)
	}
	return V
}

// mustGraph panics if the edges are not valid. Use only for edges that are valid by construction.
func mustGraph(n uint32, edges [][]uint32) *Graph {
	G, err := NewGraph(n, edges)
	if err != nil {
		panic(err)
	}
	return G
}

// CompleteGraph() returns the graph on n vertices where every pair of distinct vertices is an edge.
func CompleteGraph(n uint32) *Graph {
	edges, err := combinatorics.ChooseSet(vertexSet(n), 2)
	if err != nil {
		panic(err)
	}
	return mustGraph(n, edges)
}

// CycleGraph() returns the cycle 1 - 2 - ... - n - 1. When n < 3 there is no
// cycle: the graph on two vertices has the single edge {1, 2}, smaller ones have no edges.
func CycleGraph(n uint32) *Graph {
	edges := make([][]uint32, 0, n)
	for v := uint32(1); v < n; v++ {
		edges = append(edges, []uint32{v, v + 1})
	}

	if n >= 3 {
		edges = append(edges, []uint32{n, 1})
	}

	return mustGraph(n, edges)
}

/*
RandomGraph() returns an Erdős–Rényi random graph G(n, p), where each of the
C(n, 2) possible edges is present independently with probability p.

It accepts a random number generator for reproducibility in tests; if rng is nil,
a new one is seeded with the current time.
*/
func RandomGraph(n uint32, p float64, rng *rand.Rand) (*Graph, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p = %v", models.ErrInvalidProbability, p)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	edges := [][]uint32{}
	for u := uint32(1); u < n; u++ {
		for v := u + 1; v <= n; v++ {
			if rng.Float64() < p {
				edges = append(edges, []uint32{u, v})
			}
		}
	}

	return NewGraph(n, edges)
}
