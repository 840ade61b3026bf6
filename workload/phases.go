// File: workload/phases.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Barrier phase driver: T tasks cross one barrier P times, stamping
// the wall clock immediately before and after each crossing. The
// post-hoc check is the barrier's defining property: no task leaves
// phase p before every task has arrived at phase p.

package workload

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/barrier"
)

// Phases drives Parties goroutines through PhaseCount barrier phases.
type Phases struct {
	Label      string
	Parties    int
	PhaseCount int
}

var _ api.Workload = (*Phases)(nil)

// Name identifies the workload in reports.
func (p *Phases) Name() string {
	return p.Label
}

// Run crosses the barrier PhaseCount times with Parties goroutines and
// verifies the recorded stamps phase by phase.
func (p *Phases) Run() error {
	if p.PhaseCount < 1 {
		return fmt.Errorf("workload %s: phase count must be positive", p.Label)
	}
	b, err := barrier.New(p.Parties)
	if err != nil {
		return fmt.Errorf("workload %s: %w", p.Label, err)
	}

	type stamps struct {
		before, after []time.Time
	}
	perTask := make([]stamps, p.Parties)

	var g errgroup.Group
	for task := 0; task < p.Parties; task++ {
		task := task
		perTask[task] = stamps{
			before: make([]time.Time, p.PhaseCount),
			after:  make([]time.Time, p.PhaseCount),
		}
		g.Go(func() error {
			for phase := 0; phase < p.PhaseCount; phase++ {
				perTask[task].before[phase] = time.Now()
				b.Wait()
				perTask[task].after[phase] = time.Now()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Every after-stamp of phase p must follow every before-stamp of
	// phase p: a task released early would violate this.
	for phase := 0; phase < p.PhaseCount; phase++ {
		latestBefore := perTask[0].before[phase]
		for t := 1; t < p.Parties; t++ {
			if perTask[t].before[phase].After(latestBefore) {
				latestBefore = perTask[t].before[phase]
			}
		}
		for t := 0; t < p.Parties; t++ {
			if perTask[t].after[phase].Before(latestBefore) {
				return fmt.Errorf("workload %s: task %d left phase %d before all parties arrived",
					p.Label, t, phase)
			}
		}
	}
	if got := b.Generation(); got != uint64(p.PhaseCount) {
		return fmt.Errorf("workload %s: generation = %d, want %d", p.Label, got, p.PhaseCount)
	}
	return nil
}
