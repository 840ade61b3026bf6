// File: spin/spin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// TAS and TTAS spinlock implementations.

package spin

import (
	"sync/atomic"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/pause"
)

// Ensure compile-time interface compliance.
var (
	_ api.SpinLock = (*TAS)(nil)
	_ api.SpinLock = (*TTAS)(nil)
	_ api.SpinLock = (*TTASHint)(nil)
)

// TAS is a test-and-set spinlock. Every poll iteration performs an
// atomic exchange, so every failed attempt is a coherence-invalidating
// write. Worst contention behavior of the family; kept as the baseline.
type TAS struct {
	locked atomic.Bool
}

// Acquire busy-polls until the flag is won.
func (l *TAS) Acquire() {
	for l.locked.Swap(true) {
	}
}

// Release clears the flag. Caller must hold the lock.
func (l *TAS) Release() {
	l.locked.Store(false)
}

// TryAcquire performs a single exchange attempt.
func (l *TAS) TryAcquire() bool {
	return !l.locked.Swap(true)
}

// TTAS is a test-test-and-set spinlock. Failed polls are plain reads
// of the locally cached line; the exchange is attempted only after a
// read observes the lock free, which keeps contended spinning off the
// coherence bus.
type TTAS struct {
	locked atomic.Bool
}

// Acquire busy-polls, reading before attempting the swap.
func (l *TTAS) Acquire() {
	for {
		if !l.locked.Load() && l.locked.CompareAndSwap(false, true) {
			return
		}
	}
}

// Release clears the flag. Caller must hold the lock.
func (l *TTAS) Release() {
	l.locked.Store(false)
}

// TryAcquire tests once, then attempts a single compare-and-swap.
func (l *TTAS) TryAcquire() bool {
	return !l.locked.Load() && l.locked.CompareAndSwap(false, true)
}

// TTASHint is TTAS with a spin-wait hint after each failed poll.
// The hint delays the pipeline instead of hammering the cache line,
// improving hyper-thread fairness and power draw under contention.
type TTASHint struct {
	locked atomic.Bool
}

// Acquire busy-polls with a CPU hint between attempts.
func (l *TTASHint) Acquire() {
	for {
		if !l.locked.Load() && l.locked.CompareAndSwap(false, true) {
			return
		}
		pause.Spin()
	}
}

// Release clears the flag. Caller must hold the lock.
func (l *TTASHint) Release() {
	l.locked.Store(false)
}

// TryAcquire tests once, then attempts a single compare-and-swap.
func (l *TTASHint) TryAcquire() bool {
	return !l.locked.Load() && l.locked.CompareAndSwap(false, true)
}
