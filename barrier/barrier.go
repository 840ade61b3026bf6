// File: barrier/barrier.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reusable generational barrier built from a mutex, a condition
// variable and a generation counter. The generation is what makes the
// barrier safely reusable: a waiter is only entitled to respond to the
// broadcast of its own phase, so a goroutine that races ahead into the
// next phase's fill cannot be released by a stale wakeup.

package barrier

import (
	"sync"

	"github.com/momentics/hioload-sync/api"
)

var _ api.Barrier = (*Barrier)(nil)

// Barrier synchronizes exactly threshold goroutines per phase, across
// an unlimited number of phases.
type Barrier struct {
	mu        sync.Mutex
	cond      *sync.Cond
	count     int
	threshold int
	gen       uint64
}

// New creates a barrier for a fixed party of threshold goroutines.
func New(threshold int) (*Barrier, error) {
	if threshold < 1 {
		return nil, api.ErrInvalidThreshold
	}
	b := &Barrier{threshold: threshold}
	b.cond = sync.NewCond(&b.mu)
	return b, nil
}

// Wait blocks until all threshold parties of the current phase have
// arrived. The last arrival resets the count, advances the generation
// and wakes everyone; it returns true, all others false.
//
// Each phase must see exactly threshold Wait calls; a surplus caller
// joins the next phase and stalls it until that phase also fills.
func (b *Barrier) Wait() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen := b.gen
	b.count++
	if b.count == b.threshold {
		b.count = 0
		b.gen++
		b.cond.Broadcast()
		return true
	}
	// Re-check on every wakeup: Broadcast for a later phase, or a
	// spurious wakeup, must not release a waiter early.
	for gen == b.gen {
		b.cond.Wait()
	}
	return false
}

// Generation reports how many phases have completed.
func (b *Barrier) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gen
}

// Threshold returns the fixed party size.
func (b *Barrier) Threshold() int {
	return b.threshold
}
