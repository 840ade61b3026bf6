// File: counter/perworker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Padded per-worker counters merged after all workers join.

package counter

import (
	"golang.org/x/sys/cpu"
)

// slot is one worker's private counter on its own cache line. Without
// the padding, neighboring workers' increments would invalidate each
// other's lines on every write (false sharing) even though no slot is
// ever shared.
type slot struct {
	n int64
	_ cpu.CacheLinePad
}

// PerWorker holds one padded counter per worker. Each worker mutates
// only its own slot with plain stores; Total must be called only after
// every worker has finished (joining the workers is the caller's
// synchronization point).
type PerWorker struct {
	slots []slot
}

// NewPerWorker allocates padded counters for n workers.
func NewPerWorker(n int) *PerWorker {
	return &PerWorker{slots: make([]slot, n)}
}

// Inc adds one to worker w's private counter.
func (p *PerWorker) Inc(w int) {
	p.slots[w].n++
}

// Add adds delta to worker w's private counter.
func (p *PerWorker) Add(w int, delta int64) {
	p.slots[w].n += delta
}

// Workers returns the number of slots.
func (p *PerWorker) Workers() int {
	return len(p.slots)
}

// Total sums all slots. Callers must have joined every worker first.
func (p *PerWorker) Total() int64 {
	var sum int64
	for i := range p.slots {
		sum += p.slots[i].n
	}
	return sum
}
