package models

import (
	"context"
	"errors"
)

// The Database interface abstracts a store of edge lists. A graph is fully
// described by its order n and its edges.
type Database interface {
	// Validate() returns the appropriate error if the DB is nil or unusable.
	Validate() error

	// Order() returns the number of vertices of the stored graph.
	Order(ctx context.Context) (uint32, error)

	// Edges() returns all the stored edges, each sorted in ascending order.
	Edges(ctx context.Context) ([][]uint32, error)

	// AddEdge() stores the edge made of the specified vertices.
	AddEdge(ctx context.Context, vertices ...uint32) error
}

//--------------------------ERROR-CODES--------------------------

// combinatorics errors
var ErrInvalidArgument = errors.New("choose is defined on nonnegative integers only")
var ErrOverflow = errors.New("binomial coefficient overflows uint64")

// graph errors
var ErrInvalidEdge = errors.New("illegal edge")
var ErrNotAMember = errors.New("vertex is not in the graph")
var ErrInvalidProbability = errors.New("probability should be a number between 0 and 1")
var ErrNilGraph = errors.New("graph is nil")
var ErrEmptyGraph = errors.New("graph has no vertices")

// walk errors
var ErrInvalidWalker = errors.New("invalid walker")
var ErrInvalidCover = errors.New("cover should be greater than zero")
var ErrMaxSteps = errors.New("walk reached the maximum number of steps")

// database errors
var ErrNilDB = errors.New("database pointer is nil")
var ErrNilClient = errors.New("nil client pointer")
var ErrEmptyDB = errors.New("database is empty")

// config errors
var ErrInvalidConfig = errors.New("invalid configuration")
