// File: bench/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Measurement harness for the synchronization primitives: wall-clock
// timing, streaming statistics (mean/stddev/min/max), cache-aligned
// allocation, and a runner that executes registered workloads
// repeatedly, validates their invariants and publishes aggregated
// results.
package bench
