// File: ring/spsc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free single-producer/single-consumer ring buffer.
//
// The producer is the only writer of head, the consumer the only
// writer of tail. That single-writer-per-index invariant is the whole
// safety argument: each index needs one atomic store by its owner and
// one atomic load by the other side per handoff, no compare-and-swap
// anywhere. It does not generalize to multiple producers or consumers.
//
// Head and tail live on separate cache lines. Sharing a line would
// make every producer store invalidate the consumer's cached copy and
// vice versa, serializing two logically independent indices purely
// through coherence traffic.

package ring

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-sync/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*SPSC[any])(nil)

// SPSC is a fixed-capacity circular buffer for exactly one producer
// goroutine and one consumer goroutine.
type SPSC[T any] struct {
	data []T
	mask uint64

	_    cpu.CacheLinePad
	head atomic.Uint64 // next write slot, producer-owned
	_    cpu.CacheLinePad
	tail atomic.Uint64 // next read slot, consumer-owned
	_    cpu.CacheLinePad
}

// New allocates an SPSC ring. Capacity must be a power of two >= 2;
// index arithmetic is a bitmask AND. One slot stays empty, so the ring
// holds at most capacity-1 items.
func New[T any](capacity uint64) (*SPSC[T], error) {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		return nil, api.ErrInvalidCapacity
	}
	return &SPSC[T]{
		data: make([]T, capacity),
		mask: capacity - 1,
	}, nil
}

// Enqueue adds an item; returns false if the ring is full. Full is a
// transient state, not an error: the caller chooses the retry policy.
// Must only ever be called from the single producer goroutine.
func (r *SPSC[T]) Enqueue(item T) bool {
	head := r.head.Load() // own index, no cross-goroutine concern
	next := (head + 1) & r.mask
	if next == r.tail.Load() { // observe consumer's freed slots
		return false
	}
	r.data[head] = item
	r.head.Store(next) // publish: slot write precedes index update
	return true
}

// Dequeue removes the oldest item; ok==false if empty. Must only ever
// be called from the single consumer goroutine.
func (r *SPSC[T]) Dequeue() (item T, ok bool) {
	tail := r.tail.Load()      // own index
	if tail == r.head.Load() { // observe producer's published slots
		return item, false
	}
	item = r.data[tail]
	var zero T
	r.data[tail] = zero               // drop the reference so the GC can reclaim it
	r.tail.Store((tail + 1) & r.mask) // free the slot for the producer
	return item, true
}

// Len returns the number of items currently buffered. Exact only when
// called from the producer or consumer goroutine; otherwise a snapshot.
func (r *SPSC[T]) Len() int {
	head := r.head.Load()
	tail := r.tail.Load()
	return int((head - tail) & r.mask)
}

// Cap returns the allocated slot count (usable capacity is Cap()-1).
func (r *SPSC[T]) Cap() int {
	return len(r.data)
}
