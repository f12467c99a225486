package walks

import "github.com/vertex-lab/hyperwalk/pkg/models"

/*
Policy customizes a Walk. It decides which walkers move at each tick, and it is
notified at fixed moments of the walk's lifecycle:

- AfterLocating: once, when the walkers have been placed on the start vertex.

- AfterWalkerStep: every time a walker moves from one vertex to another.

- AfterStep: at the end of every tick, after the time has been incremented.

- AfterStart: once, when Start is called and before the first tick.

Any of them may call W.Stop(). Embed BasePolicy to only implement the methods you need.
*/
type Policy interface {
	// Next() returns the walkers that move in this tick. They move one after the other,
	// in the returned order, but within the same tick.
	Next(W *Walk) []models.Walker

	AfterLocating(W *Walk)
	AfterWalkerStep(W *Walk, walker models.Walker, from, to uint32)
	AfterStep(W *Walk)
	AfterStart(W *Walk)
}

// BasePolicy is the Policy where nobody moves and nothing happens.
type BasePolicy struct{}

func (BasePolicy) Next(W *Walk) []models.Walker                                   { return nil }
func (BasePolicy) AfterLocating(W *Walk)                                          {}
func (BasePolicy) AfterWalkerStep(W *Walk, walker models.Walker, from, to uint32) {}
func (BasePolicy) AfterStep(W *Walk)                                              {}
func (BasePolicy) AfterStart(W *Walk)                                             {}

// AllWalkers is the Policy where all walkers move at every tick, in the order they were added to the walk.
type AllWalkers struct {
	BasePolicy
}

func (AllWalkers) Next(W *Walk) []models.Walker {
	return W.Walkers()
}
