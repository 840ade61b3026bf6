// File: api/workload.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Benchmark workload contract consumed by the bench runner.

package api

// Workload is a single benchmarkable scenario: it exercises a primitive
// under contention and checks its own correctness invariant before
// returning. A non-nil error means the invariant was violated (lost
// update, lost message, phase-order breach), never a transient state.
type Workload interface {
	// Name identifies the workload in reports and metrics.
	Name() string
	// Run executes one full iteration of the scenario and validates
	// the final shared state.
	Run() error
}
