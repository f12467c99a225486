/*
The walks package simulates random walks on (hyper)graphs. A Walk keeps track of
where its walkers are, and advances them in synchronous rounds (ticks) according
to a Policy, until the walk is stopped.
*/
package walks

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vertex-lab/hyperwalk/pkg/models"
)

// StartVertex is where all the walkers of a new walk are placed.
const StartVertex uint32 = 1

// WalkerSet is the set of walkers that are on the same vertex.
type WalkerSet mapset.Set[models.Walker]

/*
Walk moves walkers on a graph. A walker knows where it is, and the walk knows
which walkers are on each vertex: every walker is in the WalkerSet of its
location, and in no other.

A Walk is not safe for concurrent use, with the exception of Stop and Running,
which can be called from other goroutines to end a Start loop.
*/
type Walk struct {
	graph  models.Graph
	policy Policy

	// the walkers, in the order they were added to the walk
	walkers []models.Walker

	// a map vertex --> walkers on that vertex. Vertices without walkers are not in the map
	locations map[uint32]WalkerSet

	// the number of ticks since the walk was created
	time int

	running atomic.Bool
}

/*
New() returns a Walk on G, where all walkers are placed on the StartVertex.
If policy is nil, BasePolicy is used.

It returns ErrNilGraph or ErrEmptyGraph if G is nil or has no vertices, and
ErrInvalidWalker if one of the walkers is nil, not comparable, or repeated.
*/
func New(G models.Graph, walkers []models.Walker, policy Policy) (*Walk, error) {
	if G == nil {
		return nil, models.ErrNilGraph
	}

	if G.Order() == 0 {
		return nil, models.ErrEmptyGraph
	}

	if policy == nil {
		policy = BasePolicy{}
	}

	W := &Walk{
		graph:     G,
		policy:    policy,
		walkers:   make([]models.Walker, 0, len(walkers)),
		locations: make(map[uint32]WalkerSet),
	}

	if err := W.locate(walkers); err != nil {
		return nil, err
	}

	W.policy.AfterLocating(W)
	W.notify()
	return W, nil
}

// locate places the walkers on the StartVertex.
func (W *Walk) locate(walkers []models.Walker) error {
	seen := mapset.NewThreadUnsafeSetWithSize[models.Walker](len(walkers))

	for i, walker := range walkers {
		if walker == nil {
			return fmt.Errorf("%w: walker %d is nil", models.ErrInvalidWalker, i)
		}

		if !reflect.TypeOf(walker).Comparable() {
			return fmt.Errorf("%w: walker %d of type %T is not comparable", models.ErrInvalidWalker, i, walker)
		}

		if !seen.Add(walker) {
			return fmt.Errorf("%w: walker %d is repeated", models.ErrInvalidWalker, i)
		}

		W.add(walker, StartVertex)
		W.walkers = append(W.walkers, walker)
	}

	return nil
}

// notify tells each walker where it is.
func (W *Walk) notify() {
	for vertex, walkers := range W.locations {
		for walker := range walkers.Iter() {
			walker.SetLocation(vertex)
		}
	}
}

func (W *Walk) add(walker models.Walker, vertex uint32) {
	walkers, exists := W.locations[vertex]
	if !exists {
		walkers = mapset.NewThreadUnsafeSet[models.Walker]()
		W.locations[vertex] = walkers
	}
	walkers.Add(walker)
}

func (W *Walk) remove(walker models.Walker, vertex uint32) {
	walkers, exists := W.locations[vertex]
	if !exists {
		return
	}

	walkers.Remove(walker)
	if walkers.Cardinality() == 0 {
		delete(W.locations, vertex)
	}
}

/*
Step() advances the walk by one tick: the walkers selected by the policy move
one after the other, then the time is incremented and the policy's AfterStep runs.

If a walker fails to step, or wants to move outside the graph (ErrNotAMember),
the error is returned and that walker stays where it was. The tick is left
partial: the walkers before it have already moved and their AfterWalkerStep
hooks have run, but the time is not incremented and AfterStep does not run.
*/
func (W *Walk) Step() error {
	for _, walker := range W.policy.Next(W) {
		if err := W.walkerStep(walker); err != nil {
			return err
		}
	}

	W.time++
	W.policy.AfterStep(W)
	return nil
}

// walkerStep moves the walker to the vertex it chooses.
func (W *Walk) walkerStep(walker models.Walker) error {
	if walker == nil {
		return fmt.Errorf("%w: nil walker", models.ErrInvalidWalker)
	}

	from := walker.Location()
	if walkers, exists := W.locations[from]; !exists || !walkers.Contains(walker) {
		return fmt.Errorf("%w: walker is not on vertex %d of this walk", models.ErrInvalidWalker, from)
	}

	to, err := walker.Step(W.graph)
	if err != nil {
		return fmt.Errorf("walker on vertex %d failed to step: %w", from, err)
	}

	if !W.graph.ContainsVertex(to) {
		return fmt.Errorf("%w: walker on vertex %d stepped to %d", models.ErrNotAMember, from, to)
	}

	W.remove(walker, from)
	W.add(walker, to)
	walker.SetLocation(to)

	W.policy.AfterWalkerStep(W, walker, from, to)
	return nil
}

/*
Start() runs the walk, tick after tick, until it is stopped. Stop takes effect
only between ticks: a tick in progress is always completed.

Start returns the first error returned by Step, or the context error if the
context is done before the walk is stopped.
*/
func (W *Walk) Start(ctx context.Context) error {
	W.running.Store(true)
	defer W.running.Store(false)

	W.policy.AfterStart(W)

	for W.running.Load() {
		// check if the context is done before a tick
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := W.Step(); err != nil {
			return err
		}
	}

	return nil
}

// Stop() ends the Start loop before the next tick.
func (W *Walk) Stop() {
	W.running.Store(false)
}

// Running() returns whether the walk is inside the Start loop and hasn't been stopped.
func (W *Walk) Running() bool {
	return W.running.Load()
}

// Steps() advances the walk by exactly L ticks, regardless of Stop.
func (W *Walk) Steps(L int) error {
	for i := 0; i < L; i++ {
		if err := W.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Time() returns the number of ticks since the walk was created.
func (W *Walk) Time() int {
	return W.time
}

// Graph() returns the graph the walk is on.
func (W *Walk) Graph() models.Graph {
	return W.graph
}

// Walkers() returns the walkers, in the order they were added to the walk.
func (W *Walk) Walkers() []models.Walker {
	return slices.Clone(W.walkers)
}

// WalkersAt() returns the walkers on vertex, in the order they were added to the walk.
func (W *Walk) WalkersAt(vertex uint32) []models.Walker {
	walkers, exists := W.locations[vertex]
	if !exists {
		return []models.Walker{}
	}

	result := make([]models.Walker, 0, walkers.Cardinality())
	for _, walker := range W.walkers {
		if walkers.Contains(walker) {
			result = append(result, walker)
		}
	}
	return result
}

// Occupied() returns the vertices with at least one walker, in ascending order.
func (W *Walk) Occupied() []uint32 {
	vertices := make([]uint32, 0, len(W.locations))
	for vertex := range W.locations {
		vertices = append(vertices, vertex)
	}

	slices.Sort(vertices)
	return vertices
}
