// The mock database package allows for testing that are decoupled from a
// particular database implementation.
package mock

import (
	"context"

	"github.com/vertex-lab/hyperwalk/pkg/models"
	"github.com/vertex-lab/hyperwalk/pkg/utils/redisutils"
	"github.com/vertex-lab/hyperwalk/pkg/utils/sliceutils"
)

// simulates a simple edge-list database for testing.
type Database struct {

	// the number of vertices of the graph
	N uint32

	// a map that associates the formatted edge with the edge
	EdgeIndex map[string][]uint32
}

// NewDatabase() creates and returns a new Database instance for a graph on n vertices.
func NewDatabase(n uint32) *Database {
	return &Database{
		N:         n,
		EdgeIndex: make(map[string][]uint32),
	}
}

// Validate() returns an error if the DB is nil
func (DB *Database) Validate() error {
	if DB == nil {
		return models.ErrNilDB
	}

	return nil
}

// Order() returns the number of vertices. It returns ErrEmptyDB if there are none.
func (DB *Database) Order(ctx context.Context) (uint32, error) {
	_ = ctx
	if err := DB.Validate(); err != nil {
		return 0, err
	}

	if DB.N == 0 {
		return 0, models.ErrEmptyDB
	}

	return DB.N, nil
}

// Edges() returns the edges sorted lexicographically.
func (DB *Database) Edges(ctx context.Context) ([][]uint32, error) {
	_ = ctx
	if err := DB.Validate(); err != nil {
		return nil, err
	}

	edges := make([][]uint32, 0, len(DB.EdgeIndex))
	for _, edge := range DB.EdgeIndex {
		edges = append(edges, append([]uint32{}, edge...))
	}

	return sliceutils.SortLex(edges), nil
}

// AddEdge() adds the edge made of vertices. Adding an edge twice has no effect.
func (DB *Database) AddEdge(ctx context.Context, vertices ...uint32) error {
	_ = ctx
	if err := DB.Validate(); err != nil {
		return err
	}

	edge := sliceutils.Unique(vertices)
	DB.EdgeIndex[redisutils.FormatEdge(edge)] = edge
	return nil
}

// ------------------------------------HELPERS----------------------------------

// SetupDB() returns a DB setup based on the DBType
func SetupDB(DBType string) *Database {
	switch DBType {

	case "nil":
		return nil

	case "empty":
		return NewDatabase(0)

	case "one-vertex":
		return NewDatabase(1)

	case "triangle":
		DB := NewDatabase(3)
		DB.AddEdge(context.Background(), 1, 2)
		DB.AddEdge(context.Background(), 2, 3)
		DB.AddEdge(context.Background(), 3, 1)
		return DB

	case "hyper":
		DB := NewDatabase(4)
		DB.AddEdge(context.Background(), 1, 2, 3)
		DB.AddEdge(context.Background(), 3, 4)
		return DB

	case "invalid":
		DB := NewDatabase(3)
		DB.AddEdge(context.Background(), 1, 4)
		return DB

	default:
		return nil // Default to nil for unrecognized scenarios
	}
}
