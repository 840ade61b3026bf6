// File: bench/runner.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Workload runner: executes registered workloads in FIFO order,
// aggregates per-workload timing statistics and publishes snapshots
// into the control-plane metrics registry.

package bench

import (
	"fmt"
	"sync"

	"github.com/eapache/queue"
	"github.com/sugawarayuuta/sonnet"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/control"
)

// Runner runs workloads sequentially, each repeated Repeats times.
// A fresh Runner is cheap; unrelated benchmark runs should use
// separate Runner instances rather than sharing one.
type Runner struct {
	mu      sync.Mutex
	pending *queue.Queue // of api.Workload
	results []Snapshot
	metrics *control.MetricsRegistry
	repeats int
	closed  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithRepeats sets how many times each workload runs (default 5).
func WithRepeats(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.repeats = n
		}
	}
}

// WithMetrics publishes per-workload snapshots into reg.
func WithMetrics(reg *control.MetricsRegistry) Option {
	return func(r *Runner) {
		r.metrics = reg
	}
}

// NewRunner creates an empty runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		pending: queue.New(),
		repeats: 5,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register queues a workload for the next Run call.
func (r *Runner) Register(w api.Workload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return api.ErrRunnerClosed
	}
	r.pending.Add(w)
	return nil
}

// Run drains the pending queue, executing each workload repeats times.
// The first invariant violation aborts the run; timing of failed
// repetitions is discarded.
func (r *Runner) Run() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return api.ErrRunnerClosed
	}
	for r.pending.Length() > 0 {
		w := r.pending.Remove().(api.Workload)
		var stats Stats
		for rep := 0; rep < r.repeats; rep++ {
			var runErr error
			elapsed := Time(func() { runErr = w.Run() })
			if runErr != nil {
				return fmt.Errorf("workload %s, repetition %d: %w", w.Name(), rep, runErr)
			}
			stats.AddDuration(elapsed)
		}
		snap := stats.Snapshot(w.Name())
		r.results = append(r.results, snap)
		if r.metrics != nil {
			r.metrics.Set("bench."+w.Name(), snap)
		}
	}
	return nil
}

// Results returns snapshots of all completed workloads, in run order.
func (r *Runner) Results() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Snapshot, len(r.results))
	copy(out, r.results)
	return out
}

// Report encodes the completed results as JSON.
func (r *Runner) Report() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sonnet.Marshal(r.results)
}

// Close rejects further Register/Run calls.
func (r *Runner) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}
