/*
The models package defines the fundamental interfaces and errors used in this project.
Interfaces:

Graph:
The Graph interface abstracts the read-only queries a random walk needs from a
(hyper)graph, so that walks don't depend on a specific container.

Walker:
The Walker interface abstracts an entity that lives on a vertex and decides
where to go next.

Database:
The Database interface abstracts a source of edge lists, from which graphs are built.
*/
package models

// Graph is a finite (hyper)graph on the vertices {1, ..., n}.
type Graph interface {
	// Order() returns n, the number of vertices.
	Order() uint32

	// Vertices() returns the vertices 1..n in ascending order.
	Vertices() []uint32

	// ContainsVertex() returns whether vertex is in {1, ..., n}.
	ContainsVertex(vertex uint32) bool

	// Neighbours() returns the vertices that share an edge with vertex,
	// one entry for each incident edge they share.
	Neighbours(vertex uint32) ([]uint32, error)
}

// Walker is anything that can be moved around by a walk. Implementations must
// be comparable (e.g. pointers), since walkers have no identity other than themselves.
type Walker interface {
	// Location() returns the vertex the walker is currently on.
	Location() uint32

	// SetLocation() tells the walker where it is.
	SetLocation(vertex uint32)

	// Step() returns the vertex the walker wants to move to. It must not
	// change the walker.
	Step(G Graph) (uint32, error)
}
