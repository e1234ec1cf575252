// Package cell provides a build-once value holder for deferred compilation.
//
// A Cell starts empty and is filled by the first successful build. Failed
// builds leave the Cell empty, so the next caller builds again. Once filled,
// a Cell never empties.
package cell

import (
	"sync"
	"sync/atomic"
)

// Cell holds a value of type T that is built on first use.
//
// The zero Cell is empty and ready to use. A Cell must not be copied after
// first use.
type Cell[T any] struct {
	mu    sync.Mutex
	value atomic.Pointer[box[T]]

	attempts atomic.Uint64
	failures atomic.Uint64
}

type box[T any] struct {
	v T
}

// Get returns the stored value, calling build if the Cell is empty.
//
// Concurrent callers that find the Cell empty are serialized: build runs at
// most once at a time, and callers that were waiting observe the value
// stored by the winner without building again. An error from build is
// returned to its caller only and is not stored.
func (c *Cell[T]) Get(build func() (T, error)) (T, error) {
	if b := c.value.Load(); b != nil {
		return b.v, nil
	}
	return c.slow(build)
}

func (c *Cell[T]) slow(build func() (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b := c.value.Load(); b != nil {
		return b.v, nil
	}

	c.attempts.Add(1)
	v, err := build()
	if err != nil {
		c.failures.Add(1)
		var zero T
		return zero, err
	}
	c.value.Store(&box[T]{v: v})
	return v, nil
}

// Filled reports whether a build has succeeded.
func (c *Cell[T]) Filled() bool {
	return c.value.Load() != nil
}

// Attempts returns the number of times build has been called.
func (c *Cell[T]) Attempts() uint64 {
	return c.attempts.Load()
}

// Failures returns the number of builds that returned an error.
func (c *Cell[T]) Failures() uint64 {
	return c.failures.Load()
}
