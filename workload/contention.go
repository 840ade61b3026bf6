// File: workload/contention.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared-counter contention driver: N workers each perform K
// protected increments; the final value must be exactly N*K.

package workload

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/momentics/hioload-sync/affinity"
	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/counter"
)

// CounterContention drives N workers through K protected increments
// each. Make supplies a fresh counter per Run so repetitions do not
// observe each other's state.
type CounterContention struct {
	Label      string
	Workers    int
	Iterations int
	// Pin binds each worker to a distinct CPU. Ignored on platforms
	// without affinity support.
	Pin bool
	// Make returns the increment operation and the final-value reader
	// for a freshly constructed shared counter.
	Make func() (inc func(), value func() int64)
}

var _ api.Workload = (*CounterContention)(nil)

// Name identifies the workload in reports.
func (c *CounterContention) Name() string {
	return c.Label
}

// Run spawns the workers on a goroutine pool, releases them together
// through a start gate, joins them and checks for lost updates.
func (c *CounterContention) Run() error {
	if c.Workers < 1 || c.Iterations < 1 {
		return api.ErrInvalidWorkerCount
	}
	inc, value := c.Make()

	pool, err := ants.NewPool(c.Workers)
	if err != nil {
		return fmt.Errorf("workload %s: %w", c.Label, err)
	}
	defer pool.Release()

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(c.Workers)
	for w := 0; w < c.Workers; w++ {
		w := w
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if c.Pin {
				if err := affinity.Pin(w); err == nil {
					defer affinity.Unpin()
				}
			}
			<-start
			for i := 0; i < c.Iterations; i++ {
				inc()
			}
		})
		if submitErr != nil {
			return fmt.Errorf("workload %s: %w", c.Label, submitErr)
		}
	}
	close(start)
	wg.Wait()

	want := int64(c.Workers) * int64(c.Iterations)
	if got := value(); got != want {
		return fmt.Errorf("workload %s: lost updates: counter = %d, want %d", c.Label, got, want)
	}
	return nil
}

// SpinCounter builds a contention workload over a spinlock-guarded
// plain integer.
func SpinCounter(label string, newLock func() api.SpinLock, workers, iterations int) *CounterContention {
	return &CounterContention{
		Label:      label,
		Workers:    workers,
		Iterations: iterations,
		Make: func() (func(), func() int64) {
			lock := newLock()
			var n int64
			inc := func() {
				lock.Acquire()
				n++
				lock.Release()
			}
			return inc, func() int64 { return n }
		},
	}
}

// MutexCounter builds the blocking-mutex baseline workload.
func MutexCounter(label string, workers, iterations int) *CounterContention {
	return &CounterContention{
		Label:      label,
		Workers:    workers,
		Iterations: iterations,
		Make: func() (func(), func() int64) {
			var c counter.Mutex
			return c.Inc, c.Value
		},
	}
}

// AtomicCounter builds the fetch-add workload.
func AtomicCounter(label string, workers, iterations int) *CounterContention {
	return &CounterContention{
		Label:      label,
		Workers:    workers,
		Iterations: iterations,
		Make: func() (func(), func() int64) {
			var c counter.Atomic
			return c.Inc, c.Value
		},
	}
}
