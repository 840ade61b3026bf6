// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// barrier_test.go — Reusability and phase-isolation checks.
package barrier_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/barrier"
)

func TestNewRejectsBadThreshold(t *testing.T) {
	for _, threshold := range []int{0, -1} {
		if _, err := barrier.New(threshold); !errors.Is(err, api.ErrInvalidThreshold) {
			t.Errorf("New(%d): err = %v, want ErrInvalidThreshold", threshold, err)
		}
	}
}

func TestSingleParty(t *testing.T) {
	b, err := barrier.New(1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if !b.Wait() {
			t.Fatal("sole party must always be the leader")
		}
	}
	if got := b.Generation(); got != 5 {
		t.Errorf("generation = %d, want 5", got)
	}
}

// TestPhaseIsolation drives T goroutines through P phases and asserts
// no goroutine observes phase p+1 before every goroutine has arrived
// at phase p.
func TestPhaseIsolation(t *testing.T) {
	const (
		parties = 4
		phases  = 3
	)
	b, err := barrier.New(parties)
	if err != nil {
		t.Fatal(err)
	}

	var arrived [phases]atomic.Int32
	var wg sync.WaitGroup
	wg.Add(parties)
	for p := 0; p < parties; p++ {
		go func() {
			defer wg.Done()
			for phase := 0; phase < phases; phase++ {
				arrived[phase].Add(1)
				b.Wait()
				// After the barrier returns, every party must have
				// registered its arrival for this phase.
				if got := arrived[phase].Load(); got != parties {
					t.Errorf("phase %d released with %d/%d arrivals", phase, got, parties)
					return
				}
			}
		}()
	}
	wg.Wait()

	if got := b.Generation(); got != phases {
		t.Errorf("generation = %d, want %d", got, phases)
	}
}

// TestOneLeaderPerPhase checks that Wait returns true exactly once per
// phase.
func TestOneLeaderPerPhase(t *testing.T) {
	const (
		parties = 8
		phases  = 50
	)
	b, err := barrier.New(parties)
	if err != nil {
		t.Fatal(err)
	}

	var leaders atomic.Int64
	var wg sync.WaitGroup
	wg.Add(parties)
	for p := 0; p < parties; p++ {
		go func() {
			defer wg.Done()
			for phase := 0; phase < phases; phase++ {
				if b.Wait() {
					leaders.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	if got := leaders.Load(); got != phases {
		t.Errorf("leader count = %d, want %d", got, phases)
	}
}
