// File: workload/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Workload drivers: the thread functions that exercise each primitive
// under contention and validate the final shared state. Every driver
// implements api.Workload, builds fresh primitive state per Run (so a
// bench.Runner can repeat it), launches its workers behind a ready
// gate, and reports an invariant violation as a non-nil error.
package workload
