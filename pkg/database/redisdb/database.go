// The redisdb package defines a Redis database that fulfills the Database interface in models.
package redisdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/vertex-lab/hyperwalk/pkg/models"
	"github.com/vertex-lab/hyperwalk/pkg/utils/redisutils"
	"github.com/vertex-lab/hyperwalk/pkg/utils/sliceutils"
)

const (
	KeyGraph string = "graph"
	KeyOrder string = "order"
	KeyEdges string = "edges"
)

// Database fulfills the Database interface defined in models
type Database struct {
	client *redis.Client
}

// DatabaseFields are the fields of the graph hash in Redis. This struct is used for serialize and deserialize.
type DatabaseFields struct {
	Order uint32 `redis:"order"`
}

// NewDatabase() creates a new Database for a graph on n vertices, overwriting
// the order stored in Redis. Edges already stored are kept.
func NewDatabase(ctx context.Context, cl *redis.Client, n uint32) (*Database, error) {
	if cl == nil {
		return nil, models.ErrNilClient
	}

	fields := DatabaseFields{Order: n}
	if err := cl.HSet(ctx, KeyGraph, fields).Err(); err != nil {
		return nil, fmt.Errorf("failed to store the order: %w", err)
	}

	return &Database{client: cl}, nil
}

// LoadDatabase() loads the Database already stored in Redis. It returns ErrEmptyDB if there is none.
func LoadDatabase(ctx context.Context, cl *redis.Client) (*Database, error) {
	if cl == nil {
		return nil, models.ErrNilClient
	}

	cmdReturn := cl.HMGet(ctx, KeyGraph, KeyOrder)
	if cmdReturn.Err() != nil {
		return nil, cmdReturn.Err()
	}

	// Handle the empty DB case
	vals := cmdReturn.Val()
	if vals[0] == nil {
		return nil, models.ErrEmptyDB
	}

	var fields DatabaseFields
	if err := cmdReturn.Scan(&fields); err != nil {
		return nil, fmt.Errorf("failed to parse the graph fields: %w", err)
	}

	return &Database{client: cl}, nil
}

// Validate() check if DB and client are nil and returns the appropriare error
func (DB *Database) Validate() error {
	if DB == nil {
		return models.ErrNilDB
	}

	if DB.client == nil {
		return models.ErrNilClient
	}

	return nil
}

// Order() returns the number of vertices. It returns ErrEmptyDB if there are none.
func (DB *Database) Order(ctx context.Context) (uint32, error) {
	if err := DB.Validate(); err != nil {
		return 0, err
	}

	strOrder, err := DB.client.HGet(ctx, KeyGraph, KeyOrder).Result()
	if errors.Is(err, redis.Nil) {
		return 0, models.ErrEmptyDB
	}
	if err != nil {
		return 0, err
	}

	n, err := redisutils.ParseID(strOrder)
	if err != nil {
		return 0, fmt.Errorf("failed to parse the order \"%s\": %w", strOrder, err)
	}

	if n == 0 {
		return 0, models.ErrEmptyDB
	}

	return n, nil
}

// Edges() returns the edges sorted lexicographically.
func (DB *Database) Edges(ctx context.Context) ([][]uint32, error) {
	if err := DB.Validate(); err != nil {
		return nil, err
	}

	strEdges, err := DB.client.SMembers(ctx, KeyEdges).Result()
	if err != nil {
		return nil, err
	}

	edges, err := redisutils.ParseEdges(strEdges)
	if err != nil {
		return nil, err
	}

	return sliceutils.SortLex(edges), nil
}

// AddEdge() adds the edge made of vertices. Adding an edge twice has no effect.
func (DB *Database) AddEdge(ctx context.Context, vertices ...uint32) error {
	if err := DB.Validate(); err != nil {
		return err
	}

	edge := sliceutils.Unique(vertices)
	return DB.client.SAdd(ctx, KeyEdges, redisutils.FormatEdge(edge)).Err()
}
