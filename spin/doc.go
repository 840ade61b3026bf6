// File: spin/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Busy-waiting spinlocks built on sync/atomic, from the naive
// test-and-set variant to test-test-and-set with spin hints and
// exponential backoff. All four implement api.SpinLock; they differ
// only in how a failed acquisition attempt behaves under contention,
// which is exactly what the benchmarks package measures.
//
// None of the locks is reentrant and none tracks ownership: releasing
// a lock you do not hold corrupts it silently.
package spin
