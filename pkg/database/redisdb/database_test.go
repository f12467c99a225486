package redisdb

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/vertex-lab/hyperwalk/pkg/graph"
	"github.com/vertex-lab/hyperwalk/pkg/models"
	"github.com/vertex-lab/hyperwalk/pkg/utils/redisutils"
)

// setupClient() returns a client connected to an in-process Redis that is closed when the test ends.
func setupClient(t *testing.T) *redis.Client {
	t.Helper()
	server := miniredis.RunT(t)
	cl := redisutils.SetupClient(server.Addr())
	t.Cleanup(func() { cl.Close() })
	return cl
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name          string
		DB            *Database
		expectedError error
	}{
		{
			name:          "nil DB",
			DB:            nil,
			expectedError: models.ErrNilDB,
		},
		{
			name:          "nil client",
			DB:            &Database{},
			expectedError: models.ErrNilClient,
		},
		{
			name:          "valid DB",
			DB:            &Database{client: redis.NewClient(&redis.Options{})},
			expectedError: nil,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			err := test.DB.Validate()
			if !errors.Is(err, test.expectedError) {
				t.Fatalf("Validate(): expected %v, got %v", test.expectedError, err)
			}
		})
	}
}

func TestNewDatabase(t *testing.T) {
	ctx := context.Background()

	if _, err := NewDatabase(ctx, nil, 3); !errors.Is(err, models.ErrNilClient) {
		t.Fatalf("NewDatabase(): expected %v, got %v", models.ErrNilClient, err)
	}

	cl := setupClient(t)
	DB, err := NewDatabase(ctx, cl, 3)
	if err != nil {
		t.Fatalf("NewDatabase(): expected nil, got %v", err)
	}

	n, err := DB.Order(ctx)
	if err != nil {
		t.Fatalf("Order(): expected nil, got %v", err)
	}

	if n != 3 {
		t.Errorf("Order(): expected 3, got %v", n)
	}
}

func TestLoadDatabase(t *testing.T) {
	ctx := context.Background()
	cl := setupClient(t)

	if _, err := LoadDatabase(ctx, cl); !errors.Is(err, models.ErrEmptyDB) {
		t.Fatalf("LoadDatabase(): expected %v, got %v", models.ErrEmptyDB, err)
	}

	if _, err := NewDatabase(ctx, cl, 5); err != nil {
		t.Fatalf("NewDatabase(): expected nil, got %v", err)
	}

	DB, err := LoadDatabase(ctx, cl)
	if err != nil {
		t.Fatalf("LoadDatabase(): expected nil, got %v", err)
	}

	n, _ := DB.Order(ctx)
	if n != 5 {
		t.Errorf("Order(): expected 5, got %v", n)
	}
}

func TestOrderEmpty(t *testing.T) {
	ctx := context.Background()
	cl := setupClient(t)

	DB := &Database{client: cl}
	if _, err := DB.Order(ctx); !errors.Is(err, models.ErrEmptyDB) {
		t.Fatalf("Order(): expected %v, got %v", models.ErrEmptyDB, err)
	}

	DB, _ = NewDatabase(ctx, cl, 0)
	if _, err := DB.Order(ctx); !errors.Is(err, models.ErrEmptyDB) {
		t.Fatalf("Order(): expected %v, got %v", models.ErrEmptyDB, err)
	}
}

func TestAddEdge(t *testing.T) {
	ctx := context.Background()
	cl := setupClient(t)

	DB, err := NewDatabase(ctx, cl, 4)
	if err != nil {
		t.Fatalf("NewDatabase(): expected nil, got %v", err)
	}

	for _, edge := range [][]uint32{{3, 4}, {2, 1, 3}, {4, 3}} {
		if err := DB.AddEdge(ctx, edge...); err != nil {
			t.Fatalf("AddEdge(%v): expected nil, got %v", edge, err)
		}
	}

	members, err := cl.SMembers(ctx, KeyEdges).Result()
	if err != nil {
		t.Fatalf("SMembers(): expected nil, got %v", err)
	}

	if len(members) != 2 {
		t.Fatalf("AddEdge(): expected 2 edges stored, got %v", members)
	}

	edges, err := DB.Edges(ctx)
	if err != nil {
		t.Fatalf("Edges(): expected nil, got %v", err)
	}

	expected := [][]uint32{{1, 2, 3}, {3, 4}}
	if !reflect.DeepEqual(edges, expected) {
		t.Errorf("Edges(): expected %v, got %v", expected, edges)
	}
}

func TestEdgesCorrupted(t *testing.T) {
	ctx := context.Background()
	cl := setupClient(t)

	DB, _ := NewDatabase(ctx, cl, 2)
	cl.SAdd(ctx, KeyEdges, "1,x")

	if _, err := DB.Edges(ctx); err == nil {
		t.Fatalf("Edges(): expected error, got nil")
	}
}

func TestLoadGraph(t *testing.T) {
	ctx := context.Background()
	cl := setupClient(t)

	DB, _ := NewDatabase(ctx, cl, 3)
	DB.AddEdge(ctx, 1, 2)
	DB.AddEdge(ctx, 2, 3)

	G, err := graph.LoadGraph(ctx, DB)
	if err != nil {
		t.Fatalf("LoadGraph(): expected nil, got %v", err)
	}

	if G.Order() != 3 || G.Size() != 2 {
		t.Fatalf("LoadGraph(): expected order 3 and size 2, got %d and %d", G.Order(), G.Size())
	}

	neighbours, err := G.Neighbours(2)
	if err != nil {
		t.Fatalf("Neighbours(): expected nil, got %v", err)
	}

	if !reflect.DeepEqual(neighbours, []uint32{1, 3}) {
		t.Errorf("Neighbours(): expected %v, got %v", []uint32{1, 3}, neighbours)
	}
}
