// File: bench/align.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cache-aligned allocation for benchmark working sets.

package bench

import "unsafe"

// CacheLineSize is the coherence granularity assumed throughout the
// harness. 64 bytes matches x86-64 and most shipping arm64 parts.
const CacheLineSize = 64

// AlignedBytes returns a byte slice of length n whose first element
// sits on a cache-line boundary. The Go allocator gives no alignment
// guarantee beyond the type's own, so over-allocate and slice forward
// to the next boundary.
func AlignedBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	raw := make([]byte, n+CacheLineSize-1)
	off := 0
	if rem := uintptr(unsafe.Pointer(&raw[0])) & (CacheLineSize - 1); rem != 0 {
		off = CacheLineSize - int(rem)
	}
	return raw[off : off+n : off+n]
}
