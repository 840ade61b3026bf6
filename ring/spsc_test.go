// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// spsc_test.go — Order preservation, boundary conditions and
// randomized invariants for the SPSC ring.
package ring_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/pause"
	"github.com/momentics/hioload-sync/ring"
)

func TestNewRejectsBadCapacity(t *testing.T) {
	for _, capacity := range []uint64{0, 1, 3, 6, 100} {
		if _, err := ring.New[int](capacity); !errors.Is(err, api.ErrInvalidCapacity) {
			t.Errorf("New(%d): err = %v, want ErrInvalidCapacity", capacity, err)
		}
	}
	for _, capacity := range []uint64{2, 4, 64, 1024} {
		if _, err := ring.New[int](capacity); err != nil {
			t.Errorf("New(%d): unexpected err %v", capacity, err)
		}
	}
}

// TestFullEmptyBoundary checks that Enqueue fails exactly when the
// ring holds capacity-1 items and Dequeue fails exactly when empty.
func TestFullEmptyBoundary(t *testing.T) {
	const capacity = 8
	r, err := ring.New[int](capacity)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := r.Dequeue(); ok {
		t.Fatal("Dequeue succeeded on an empty ring")
	}
	for i := 0; i < capacity-1; i++ {
		if !r.Enqueue(i) {
			t.Fatalf("Enqueue failed at %d items, below capacity-1", i)
		}
	}
	if r.Enqueue(99) {
		t.Fatal("Enqueue succeeded on a full ring")
	}
	if got := r.Len(); got != capacity-1 {
		t.Fatalf("Len = %d, want %d", got, capacity-1)
	}

	// Draining one slot makes room for exactly one more.
	if v, ok := r.Dequeue(); !ok || v != 0 {
		t.Fatalf("Dequeue = (%d, %v), want (0, true)", v, ok)
	}
	if !r.Enqueue(99) {
		t.Fatal("Enqueue failed after one slot was freed")
	}
	if r.Enqueue(100) {
		t.Fatal("Enqueue succeeded past capacity-1")
	}
}

// TestSequencePreserved streams 0..M-1 through the ring with a
// concurrent producer and consumer and asserts the consumer sees
// exactly that sequence, in order, for several capacities.
func TestSequencePreserved(t *testing.T) {
	const messages = 200000
	for _, capacity := range []uint64{2, 4, 64, 1024} {
		r, err := ring.New[int](capacity)
		if err != nil {
			t.Fatal(err)
		}

		done := make(chan error, 1)
		go func() {
			next := 0
			for next < messages {
				v, ok := r.Dequeue()
				if !ok {
					pause.Spin()
					continue
				}
				if v != next {
					done <- fmt.Errorf("capacity %d: got %d, want %d", capacity, v, next)
					return
				}
				next++
			}
			done <- nil
		}()

		for i := 0; i < messages; i++ {
			for !r.Enqueue(i) {
				pause.Spin()
			}
		}
		if err := <-done; err != nil {
			t.Fatal(err)
		}
		if got := r.Len(); got != 0 {
			t.Errorf("capacity %d: ring not drained, Len = %d", capacity, got)
		}
	}
}

// TestWrapAround pushes the indices through several full revolutions.
func TestWrapAround(t *testing.T) {
	r, err := ring.New[int](4)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if !r.Enqueue(i) {
			t.Fatalf("Enqueue(%d) failed on a non-full ring", i)
		}
		v, ok := r.Dequeue()
		if !ok || v != i {
			t.Fatalf("Dequeue = (%d, %v), want (%d, true)", v, ok, i)
		}
	}
}

// TestRandomizedInvariants performs random single-goroutine operations
// and tracks the expected size.
func TestRandomizedInvariants(t *testing.T) {
	const capacity = 64
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		r, err := ring.New[int](capacity)
		if err != nil {
			t.Fatal(err)
		}

		size := 0
		for i := 0; i < 5000; i++ {
			if rng.Intn(2) == 0 {
				if r.Enqueue(rng.Intn(100000)) {
					size++
				} else if size != capacity-1 {
					t.Fatalf("Enqueue refused at size %d", size)
				}
			} else {
				if _, ok := r.Dequeue(); ok {
					size--
				} else if size != 0 {
					t.Fatalf("Dequeue refused at size %d", size)
				}
			}
			if size != r.Len() {
				t.Fatalf("size mismatch: expected %d, got %d", size, r.Len())
			}
		}
	}
}
