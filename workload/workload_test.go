// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// workload_test.go — Driver-level correctness runs with small sizes.
package workload_test

import (
	"testing"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/spin"
	"github.com/momentics/hioload-sync/workload"
)

func TestSpinCounterWorkloads(t *testing.T) {
	flavors := map[string]func() api.SpinLock{
		"tas":       func() api.SpinLock { return &spin.TAS{} },
		"ttas":      func() api.SpinLock { return &spin.TTAS{} },
		"ttas_hint": func() api.SpinLock { return &spin.TTASHint{} },
		"backoff":   func() api.SpinLock { return &spin.Backoff{} },
	}
	for name, newLock := range flavors {
		newLock := newLock
		t.Run(name, func(t *testing.T) {
			w := workload.SpinCounter(name, newLock, 4, 10000)
			if err := w.Run(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestMutexAndAtomicCounterWorkloads(t *testing.T) {
	if err := workload.MutexCounter("mutex", 4, 10000).Run(); err != nil {
		t.Error(err)
	}
	if err := workload.AtomicCounter("atomic", 4, 10000).Run(); err != nil {
		t.Error(err)
	}
}

func TestCounterContentionRejectsBadConfig(t *testing.T) {
	w := workload.MutexCounter("bad", 0, 100)
	if err := w.Run(); err == nil {
		t.Error("zero workers must be rejected")
	}
}

func TestPipelineWorkload(t *testing.T) {
	for _, capacity := range []uint64{2, 64, 1024} {
		w := &workload.Pipeline{Label: "pipeline", Messages: 100000, Capacity: capacity}
		if err := w.Run(); err != nil {
			t.Errorf("capacity %d: %v", capacity, err)
		}
	}
}

func TestPipelineRejectsBadCapacity(t *testing.T) {
	w := &workload.Pipeline{Label: "bad", Messages: 10, Capacity: 3}
	if err := w.Run(); err == nil {
		t.Error("non-power-of-two capacity must be rejected")
	}
}

func TestPhasesWorkload(t *testing.T) {
	w := &workload.Phases{Label: "phases", Parties: 4, PhaseCount: 3}
	if err := w.Run(); err != nil {
		t.Error(err)
	}
}

func TestReadersWritersWorkload(t *testing.T) {
	w := &workload.ReadersWriters{Label: "rw", Readers: 6, Writers: 2, Ops: 5000}
	if err := w.Run(); err != nil {
		t.Error(err)
	}
}

// TestWorkloadsAreRepeatable runs the same driver twice; fresh state
// per Run means the second pass must also hold the invariant.
func TestWorkloadsAreRepeatable(t *testing.T) {
	w := workload.MutexCounter("repeat", 2, 1000)
	for i := 0; i < 2; i++ {
		if err := w.Run(); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
}
