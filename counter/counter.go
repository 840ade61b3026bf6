// File: counter/counter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex-backed and atomic shared counters.

package counter

import (
	"sync"
	"sync/atomic"
)

// Mutex is an integer guarded by a blocking lock. Lock acquisition may
// suspend the calling goroutine instead of spinning, which makes this
// the correct-by-construction baseline under any contention level.
type Mutex struct {
	mu sync.Mutex
	n  int64
}

// Inc adds one to the counter inside the critical section.
func (c *Mutex) Inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

// Add adds delta inside the critical section.
func (c *Mutex) Add(delta int64) {
	c.mu.Lock()
	c.n += delta
	c.mu.Unlock()
}

// Value returns the current count.
func (c *Mutex) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// Atomic is a fetch-add counter. No lock, no critical section: the
// read-modify-write is a single atomic instruction.
type Atomic struct {
	n atomic.Int64
}

// Inc adds one.
func (c *Atomic) Inc() {
	c.n.Add(1)
}

// Add adds delta.
func (c *Atomic) Add(delta int64) {
	c.n.Add(delta)
}

// Value returns the current count.
func (c *Atomic) Value() int64 {
	return c.n.Load()
}
