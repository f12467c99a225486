package walks

import (
	"math/rand"
	"time"

	"github.com/vertex-lab/hyperwalk/pkg/models"
)

/*
performs a walk step from the current vertex to one of its neighbours, chosen
uniformly at random. If there are no neighbours, the walker stays where it is.

A neighbour that appears k times in neighbours is k times more likely to be chosen.
*/
func WalkStep(current uint32, neighbours []uint32, rng *rand.Rand) uint32 {

	// if it is an isolated vertex, stay
	size := len(neighbours)
	if size == 0 {
		return current
	}

	return neighbours[rng.Intn(size)]
}

// SimpleWalker moves to a random neighbour of its location at each step.
type SimpleWalker struct {
	location uint32
	rng      *rand.Rand
}

// NewSimpleWalker() returns a SimpleWalker that uses rng for its choices.
// If rng is nil, a new one is seeded with the current time.
func NewSimpleWalker(rng *rand.Rand) *SimpleWalker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &SimpleWalker{rng: rng}
}

func (w *SimpleWalker) Location() uint32 {
	return w.location
}

func (w *SimpleWalker) SetLocation(vertex uint32) {
	w.location = vertex
}

// Step() returns a random neighbour of the current location, or the location
// itself if it has no neighbours.
func (w *SimpleWalker) Step(G models.Graph) (uint32, error) {
	neighbours, err := G.Neighbours(w.location)
	if err != nil {
		return w.location, err
	}

	return WalkStep(w.location, neighbours, w.rng), nil
}
