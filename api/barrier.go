// File: api/barrier.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Phase synchronization contract.

package api

// Barrier synchronizes a fixed party of goroutines at phase boundaries.
// A barrier is reusable: after all parties pass Wait, the next round of
// Wait calls belongs to the following phase with no reinitialization.
type Barrier interface {
	// Wait blocks until all parties of the current phase have arrived.
	// Returns true for exactly one caller per phase: the last arrival,
	// which trips the barrier.
	Wait() bool
	// Generation reports the number of completed phases.
	Generation() uint64
	// Threshold returns the fixed party size.
	Threshold() int
}
