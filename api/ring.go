// File: api/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free ring buffer for cross-thread producer/consumer handoff.

package api

// Ring is a bounded single-producer/single-consumer ring buffer contract.
//
// Exactly one goroutine may call Enqueue and exactly one may call
// Dequeue over the lifetime of the ring; the implementations rely on
// this single-writer-per-index invariant instead of compare-and-swap.
// Full and empty are transient states, not errors.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full. Producer-only.
	Enqueue(item T) bool
	// Dequeue removes the oldest item, ok==false if empty. Consumer-only.
	Dequeue() (T, bool)
	// Len returns the current number of items.
	Len() int
	// Cap returns the allocated slot count. One slot is always kept
	// empty to disambiguate full from empty, so at most Cap()-1 items
	// are ever held.
	Cap() int
}
