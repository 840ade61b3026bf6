// File: spin/backoff.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Exponential-backoff spinlock.

package spin

import (
	"sync/atomic"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/pause"
)

var _ api.SpinLock = (*Backoff)(nil)

// Backoff delay bounds, in spin-hint iterations. The delay doubles on
// every failed attempt up to backoffMax and resets to backoffMin at
// the start of each Acquire call.
const (
	backoffMin = 4
	backoffMax = 1024
)

// Backoff is a TTAS spinlock whose failed attempts wait exponentially
// longer before retrying. Scales better than plain TTAS under heavy
// contention at the cost of worse first-retry latency when the lock is
// lightly held.
type Backoff struct {
	locked atomic.Bool
}

// Acquire busy-polls with exponentially growing spin-hint delays.
func (l *Backoff) Acquire() {
	delay := uint32(backoffMin)
	for {
		if !l.locked.Load() && l.locked.CompareAndSwap(false, true) {
			return
		}
		pause.SpinN(delay)
		if delay < backoffMax {
			delay *= 2
		}
	}
}

// Release clears the flag. Caller must hold the lock.
func (l *Backoff) Release() {
	l.locked.Store(false)
}

// TryAcquire tests once, then attempts a single compare-and-swap.
func (l *Backoff) TryAcquire() bool {
	return !l.locked.Load() && l.locked.CompareAndSwap(false, true)
}
