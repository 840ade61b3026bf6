// File: counter/rwvalue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reader/writer-locked shared value.

package counter

import "sync"

// RWValue guards an int64 with a reader/writer lock: any number of
// concurrent readers, writers exclusive. Best when reads vastly
// outnumber writes; under write-heavy load it degrades to a plain
// mutex with extra bookkeeping.
type RWValue struct {
	mu sync.RWMutex
	n  int64
}

// Read returns the current value under a shared lock.
func (v *RWValue) Read() int64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.n
}

// Write replaces the value under the exclusive lock.
func (v *RWValue) Write(n int64) {
	v.mu.Lock()
	v.n = n
	v.mu.Unlock()
}

// Update applies fn to the value under the exclusive lock and returns
// the result.
func (v *RWValue) Update(fn func(int64) int64) int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.n = fn(v.n)
	return v.n
}
