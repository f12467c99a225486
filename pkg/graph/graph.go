// The graph package defines immutable hypergraphs and (simple) graphs on the
// vertices {1, ..., n}, and some notable graphs to walk on.
package graph

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vertex-lab/hyperwalk/pkg/models"
	"github.com/vertex-lab/hyperwalk/pkg/utils/sliceutils"
)

// Edge is a set of vertices, stored sorted in ascending order without duplicates.
type Edge []uint32

// NewEdge() returns the edge made of the specified vertices. Repeated vertices are counted once.
func NewEdge(vertices ...uint32) Edge {
	return Edge(sliceutils.Unique(vertices))
}

// Contains() returns whether vertex belongs to the edge.
func (e Edge) Contains(vertex uint32) bool {
	_, found := slices.BinarySearch(e, vertex)
	return found
}

func (e Edge) String() string {
	strVals := make([]string, len(e))
	for i, v := range e {
		strVals[i] = strconv.FormatUint(uint64(v), 10)
	}
	return "{" + strings.Join(strVals, ", ") + "}"
}

// key returns a string that uniquely identifies the edge.
func (e Edge) key() string {
	strVals := make([]string, len(e))
	for i, v := range e {
		strVals[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(strVals, ",")
}

/*
Hypergraph is a pair (V, E), where the vertex set V is always {1, ..., n} and the
edge set E is a set of subsets of V. A Hypergraph never changes after construction,
hence it can be shared among goroutines.
*/
type Hypergraph struct {
	n uint32

	// the edges, sorted lexicographically
	edges []Edge

	// the keys of the edges, for membership tests
	keys map[string]struct{}

	// a map vertex --> positions; for each pos in positions, edges[pos] contains vertex
	incidence map[uint32][]int
}

// Graph is a Hypergraph whose edges all have exactly two vertices.
type Graph struct {
	*Hypergraph
}

// NewHypergraph() returns a Hypergraph on the vertices {1, ..., n}, with the specified edges.
// Repeated edges are counted once. It returns ErrInvalidEdge if an edge is not a subset of V.
func NewHypergraph(n uint32, edges [][]uint32) (*Hypergraph, error) {
	return newHypergraph(n, edges, 0)
}

// NewGraph() returns a Graph on the vertices {1, ..., n}, with the specified edges.
// It returns ErrInvalidEdge if an edge is not a subset of V, or if it doesn't have exactly two vertices.
func NewGraph(n uint32, edges [][]uint32) (*Graph, error) {
	H, err := newHypergraph(n, edges, 2)
	if err != nil {
		return nil, err
	}
	return &Graph{Hypergraph: H}, nil
}

// newHypergraph validates and indexes the edges. If rank is positive, every edge must have exactly rank vertices.
func newHypergraph(n uint32, edges [][]uint32, rank int) (*Hypergraph, error) {

	H := &Hypergraph{
		n:         n,
		edges:     make([]Edge, 0, len(edges)),
		keys:      make(map[string]struct{}, len(edges)),
		incidence: make(map[uint32][]int, n),
	}

	for _, vertices := range edges {
		edge := NewEdge(vertices...)
		if !H.isLegal(edge, rank) {
			return nil, fmt.Errorf("%w: %v", models.ErrInvalidEdge, Edge(vertices))
		}

		key := edge.key()
		if _, exists := H.keys[key]; exists {
			continue
		}

		H.keys[key] = struct{}{}
		H.edges = append(H.edges, edge)
	}

	slices.SortFunc(H.edges, func(e1, e2 Edge) int {
		return sliceutils.Compare(e1, e2)
	})

	for pos, edge := range H.edges {
		for _, v := range edge {
			H.incidence[v] = append(H.incidence[v], pos)
		}
	}

	return H, nil
}

// isLegal returns whether the edge is a subset of V and, if rank is positive, has exactly rank vertices.
func (H *Hypergraph) isLegal(edge Edge, rank int) bool {
	if rank > 0 && len(edge) != rank {
		return false
	}

	for _, v := range edge {
		if !H.ContainsVertex(v) {
			return false
		}
	}
	return true
}

// Order() returns the number of vertices.
func (H *Hypergraph) Order() uint32 {
	if H == nil {
		return 0
	}
	return H.n
}

// Size() returns the number of edges.
func (H *Hypergraph) Size() int {
	if H == nil {
		return 0
	}
	return len(H.edges)
}

// Vertices() returns the vertices 1..n in ascending order.
func (H *Hypergraph) Vertices() []uint32 {
	vertices := make([]uint32, H.Order())
	for i := range vertices {
		vertices[i] = uint32(i + 1)
	}
	return vertices
}

// VertexSet() returns a new set containing the vertices 1..n.
func (H *Hypergraph) VertexSet() mapset.Set[uint32] {
	return mapset.NewThreadUnsafeSet(H.Vertices()...)
}

// ContainsVertex() returns whether vertex is in {1, ..., n}.
func (H *Hypergraph) ContainsVertex(vertex uint32) bool {
	return vertex >= 1 && vertex <= H.Order()
}

// ContainsEdge() returns whether the edge made of the specified vertices is in the edge set.
func (H *Hypergraph) ContainsEdge(vertices ...uint32) bool {
	if H == nil {
		return false
	}

	_, exists := H.keys[NewEdge(vertices...).key()]
	return exists
}

// Edges() returns a copy of the edges, sorted lexicographically.
func (H *Hypergraph) Edges() []Edge {
	if H == nil {
		return []Edge{}
	}

	edges := make([]Edge, len(H.edges))
	for i, edge := range H.edges {
		edges[i] = slices.Clone(edge)
	}
	return edges
}

// validateVertex returns the appropriate error if H is nil or doesn't contain vertex.
func (H *Hypergraph) validateVertex(vertex uint32) error {
	if H == nil {
		return models.ErrNilGraph
	}

	if !H.ContainsVertex(vertex) {
		return fmt.Errorf("%w: %d is not in {1, ..., %d}", models.ErrNotAMember, vertex, H.n)
	}
	return nil
}

// IncidentEdges() returns a copy of the edges that contain vertex.
// It returns ErrNotAMember if vertex is not in the graph.
func (H *Hypergraph) IncidentEdges(vertex uint32) ([]Edge, error) {
	if err := H.validateVertex(vertex); err != nil {
		return nil, err
	}

	positions := H.incidence[vertex]
	edges := make([]Edge, len(positions))
	for i, pos := range positions {
		edges[i] = slices.Clone(H.edges[pos])
	}
	return edges, nil
}

/*
Neighbours() returns the vertices that appear together with vertex in one of its
incident edges, excluding vertex itself. A neighbour is repeated once for each
incident edge it shares with vertex, so a random choice among the neighbours
favours vertices that share many edges. It returns ErrNotAMember if vertex is
not in the graph.
*/
func (H *Hypergraph) Neighbours(vertex uint32) ([]uint32, error) {
	if err := H.validateVertex(vertex); err != nil {
		return nil, err
	}

	neighbours := []uint32{}
	for _, pos := range H.incidence[vertex] {
		for _, v := range H.edges[pos] {
			if v != vertex {
				neighbours = append(neighbours, v)
			}
		}
	}
	return neighbours, nil
}

// Degree() returns the number of edges that contain vertex.
// It returns ErrNotAMember if vertex is not in the graph.
func (H *Hypergraph) Degree(vertex uint32) (int, error) {
	if err := H.validateVertex(vertex); err != nil {
		return 0, err
	}
	return len(H.incidence[vertex]), nil
}
