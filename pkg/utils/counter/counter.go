// The package counter defines minimalistic atomic counters for aggregating
// results across goroutines.
package counter

import (
	"math"
	"sync/atomic"
)

const defaultScale float64 = 1000000

// Float is a floating point counter with fixed precision. The value of the
// counter is counter.Load() / scale.
type Float struct {
	scale   float64
	counter atomic.Int64
}

// NewFloatCounter() returns a new Float counter with a precision of six decimal places.
func NewFloatCounter() *Float {
	return &Float{scale: defaultScale}
}

// Add() increases the counter by delta and returns the current value.
func (c *Float) Add(delta float64) float64 {
	if c == nil {
		return 0
	}

	return float64(c.counter.Add(c.scaled(delta))) / c.scale
}

// Load() returns the current value.
func (c *Float) Load() float64 {
	if c == nil {
		return 0
	}
	return float64(c.counter.Load()) / c.scale
}

// Store() overwrites the current value with val.
func (c *Float) Store(val float64) {
	if c == nil {
		return
	}
	c.counter.Store(c.scaled(val))
}

func (c *Float) scaled(val float64) int64 {
	return int64(math.Round(val * c.scale))
}

// Range tracks the minimum and maximum of the observed values.
// It must be created with NewRange.
type Range struct {
	count atomic.Int64
	min   atomic.Int64
	max   atomic.Int64
}

// NewRange() returns a Range that has observed nothing.
func NewRange() *Range {
	r := &Range{}
	r.min.Store(math.MaxInt64)
	r.max.Store(math.MinInt64)
	return r
}

// Observe() records val.
func (r *Range) Observe(val int64) {
	if r == nil {
		return
	}

	r.count.Add(1)
	for {
		cur := r.min.Load()
		if val >= cur || r.min.CompareAndSwap(cur, val) {
			break
		}
	}

	for {
		cur := r.max.Load()
		if val <= cur || r.max.CompareAndSwap(cur, val) {
			break
		}
	}
}

// Count() returns the number of observed values.
func (r *Range) Count() int64 {
	if r == nil {
		return 0
	}
	return r.count.Load()
}

// Min() returns the smallest observed value, or 0 if nothing was observed.
func (r *Range) Min() int64 {
	if r.Count() == 0 {
		return 0
	}
	return r.min.Load()
}

// Max() returns the biggest observed value, or 0 if nothing was observed.
func (r *Range) Max() int64 {
	if r.Count() == 0 {
		return 0
	}
	return r.max.Load()
}
