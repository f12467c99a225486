package walks

import (
	"fmt"
	"math/rand"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vertex-lab/hyperwalk/pkg/models"
	"github.com/vertex-lab/hyperwalk/pkg/utils/sliceutils"
)

/*
SimpleRandomWalk is the walk of a single SimpleWalker that starts on vertex 1.
It records the range (the set of visited vertices), how many times each vertex
has been visited and which steps have been taken (the trace).

The walk stops by itself when the graph has been covered `cover` times, meaning
that every vertex has been visited at least `cover` times. A visit is a tick
spent on a vertex, including the one at time 0. With cover = 1 the walk stops as
soon as the range is the whole vertex set, and the final time is the cover time.
*/
type SimpleRandomWalk struct {
	*Walk
	walker *SimpleWalker
	cover  int

	visited mapset.Set[uint32]
	visits  map[uint32]int

	// a map step --> number of times it was taken. A step {u, v} is stored with u < v.
	trace map[[2]uint32]int
}

// NewSimpleRandomWalk() returns the SimpleRandomWalk on G that stops when every vertex has been visited.
func NewSimpleRandomWalk(G models.Graph, rng *rand.Rand) (*SimpleRandomWalk, error) {
	return NewCoverWalk(G, 1, rng)
}

// NewCoverWalk() returns the SimpleRandomWalk on G that stops when every vertex
// has been visited at least cover times. It returns ErrInvalidCover if cover < 1.
func NewCoverWalk(G models.Graph, cover int, rng *rand.Rand) (*SimpleRandomWalk, error) {
	if cover < 1 {
		return nil, fmt.Errorf("%w: cover = %d", models.ErrInvalidCover, cover)
	}

	SRW := &SimpleRandomWalk{
		walker: NewSimpleWalker(rng),
		cover:  cover,
		trace:  make(map[[2]uint32]int),
	}

	W, err := New(G, []models.Walker{SRW.walker}, SRW)
	if err != nil {
		return nil, err
	}

	SRW.Walk = W
	return SRW, nil
}

// Next() moves all the walkers, which for a SimpleRandomWalk is just one.
func (SRW *SimpleRandomWalk) Next(W *Walk) []models.Walker {
	return W.Walkers()
}

// AfterLocating() lets the range include the starting point.
func (SRW *SimpleRandomWalk) AfterLocating(W *Walk) {
	occupied := W.Occupied()
	SRW.visited = mapset.NewThreadUnsafeSet(occupied...)
	SRW.visits = make(map[uint32]int, W.Graph().Order())
	for _, v := range occupied {
		SRW.visits[v] = len(W.WalkersAt(v))
	}
}

func (SRW *SimpleRandomWalk) AfterWalkerStep(W *Walk, walker models.Walker, from, to uint32) {
	SRW.visited.Add(to)
	SRW.visits[to]++

	if from != to {
		SRW.trace[step(from, to)]++
	}
}

func (SRW *SimpleRandomWalk) AfterStep(W *Walk) {
	if SRW.covered(W) {
		W.Stop()
	}
}

func (SRW *SimpleRandomWalk) AfterStart(W *Walk) {
	if SRW.covered(W) {
		W.Stop()
	}
}

// covered returns whether every vertex of W's graph has been visited at least SRW.cover times.
func (SRW *SimpleRandomWalk) covered(W *Walk) bool {
	if SRW.cover == 1 {
		return SRW.visited.Cardinality() == int(W.Graph().Order())
	}
	return SRW.coverNumber(W) >= SRW.cover
}

func (SRW *SimpleRandomWalk) coverNumber(W *Walk) int {
	c := W.Time() + 1
	for _, v := range W.Graph().Vertices() {
		c = min(c, SRW.visits[v])
	}
	return c
}

// Covered() returns whether the walk has reached its stopping condition.
func (SRW *SimpleRandomWalk) Covered() bool {
	return SRW.covered(SRW.Walk)
}

// CoverNumber() returns how many times the graph has been covered, that is the
// minimum number of visits among all vertices.
func (SRW *SimpleRandomWalk) CoverNumber() int {
	return SRW.coverNumber(SRW.Walk)
}

// Cover() returns how many times the graph must be covered before the walk stops.
func (SRW *SimpleRandomWalk) Cover() int {
	return SRW.cover
}

// Location() returns the current location of the walker.
func (SRW *SimpleRandomWalk) Location() uint32 {
	return SRW.walker.Location()
}

// Range() returns the visited vertices in ascending order.
func (SRW *SimpleRandomWalk) Range() []uint32 {
	visited := SRW.visited.ToSlice()
	slices.Sort(visited)
	return visited
}

// Unvisited() returns the vertices that haven't been visited yet, in ascending order.
func (SRW *SimpleRandomWalk) Unvisited() []uint32 {
	return sliceutils.Difference(SRW.Graph().Vertices(), SRW.Range())
}

// Visits() returns the number of ticks the walker has spent on vertex.
func (SRW *SimpleRandomWalk) Visits(vertex uint32) int {
	return SRW.visits[vertex]
}

// TraceSize() returns the number of distinct steps {u, v} taken by the walker.
func (SRW *SimpleRandomWalk) TraceSize() int {
	return len(SRW.trace)
}

// TraceCount() returns how many times the walker stepped between u and v, in either direction.
func (SRW *SimpleRandomWalk) TraceCount(u, v uint32) int {
	return SRW.trace[step(u, v)]
}

func step(u, v uint32) [2]uint32 {
	if u > v {
		return [2]uint32{v, u}
	}
	return [2]uint32{u, v}
}
