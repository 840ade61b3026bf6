// File: workload/pipeline.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SPSC pipeline driver: one producer streams 1..M through a ring,
// one consumer drains and sums. Order and sum are both checked, so a
// lost, duplicated or reordered slot handoff cannot go unnoticed.

package workload

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/pause"
	"github.com/momentics/hioload-sync/ring"
)

// Pipeline streams Messages values through a fresh SPSC ring per Run.
type Pipeline struct {
	Label    string
	Messages uint64
	Capacity uint64
}

var _ api.Workload = (*Pipeline)(nil)

// Name identifies the workload in reports.
func (p *Pipeline) Name() string {
	return p.Label
}

// Run executes the producer and consumer and verifies the exchanged
// sequence. Full and empty are transient: both sides spin-hint first
// and escalate to a scheduler yield when the other side falls behind.
func (p *Pipeline) Run() error {
	if p.Messages < 1 {
		return fmt.Errorf("workload %s: message count must be positive", p.Label)
	}
	r, err := ring.New[uint64](p.Capacity)
	if err != nil {
		return fmt.Errorf("workload %s: %w", p.Label, err)
	}

	var g errgroup.Group
	g.Go(func() error {
		for v := uint64(1); v <= p.Messages; v++ {
			spins := 0
			for !r.Enqueue(v) {
				spins = backoff(spins)
			}
		}
		return nil
	})
	g.Go(func() error {
		var sum, next uint64
		next = 1
		for received := uint64(0); received < p.Messages; received++ {
			spins := 0
			for {
				v, ok := r.Dequeue()
				if !ok {
					spins = backoff(spins)
					continue
				}
				if v != next {
					return fmt.Errorf("workload %s: out of order: got %d, want %d", p.Label, v, next)
				}
				sum += v
				next++
				break
			}
		}
		if want := p.Messages * (p.Messages + 1) / 2; sum != want {
			return fmt.Errorf("workload %s: sum = %d, want %d", p.Label, sum, want)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if got := r.Len(); got != 0 {
		return fmt.Errorf("workload %s: ring not drained, Len = %d", p.Label, got)
	}
	return nil
}

// backoff escalates from spin hints to scheduler yields once the same
// transient state has been observed for a while.
func backoff(spins int) int {
	if spins < 64 {
		pause.Spin()
		return spins + 1
	}
	pause.Yield()
	return spins
}
