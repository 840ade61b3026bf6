// File: counter/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared-counter protection strategies: the blocking mutex baseline,
// a fetch-add atomic counter, a read/write-locked value, an
// address-ordered two-lock transfer pair, and padded per-worker
// counters for contention-free accumulation. The mutex counter is the
// "slow but always correct" reference the lock-free benchmarks are
// measured against.
package counter
