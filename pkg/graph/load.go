package graph

import (
	"context"
	"fmt"

	"github.com/vertex-lab/hyperwalk/pkg/models"
)

// fetch reads the order and the edges from the database.
func fetch(ctx context.Context, DB models.Database) (uint32, [][]uint32, error) {
	if DB == nil {
		return 0, nil, models.ErrNilDB
	}

	if err := DB.Validate(); err != nil {
		return 0, nil, err
	}

	n, err := DB.Order(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to fetch the order: %w", err)
	}

	edges, err := DB.Edges(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to fetch the edges: %w", err)
	}

	return n, edges, nil
}

// Load() builds a Hypergraph from the order and edges stored in the database.
func Load(ctx context.Context, DB models.Database) (*Hypergraph, error) {
	n, edges, err := fetch(ctx, DB)
	if err != nil {
		return nil, err
	}
	return NewHypergraph(n, edges)
}

// LoadGraph() builds a Graph from the order and edges stored in the database.
// It returns ErrInvalidEdge if one of the stored edges doesn't have exactly two vertices.
func LoadGraph(ctx context.Context, DB models.Database) (*Graph, error) {
	n, edges, err := fetch(ctx, DB)
	if err != nil {
		return nil, err
	}
	return NewGraph(n, edges)
}
