// File: api/lock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Busy-waiting mutual exclusion contract.

package api

// SpinLock is a busy-waiting mutual exclusion lock.
//
// Acquire never deschedules the caller through the OS; it polls until
// ownership is obtained. Release must be called exactly once per
// successful Acquire, by the owning goroutine. Double release and
// release without acquire are caller errors and are not detected.
type SpinLock interface {
	// Acquire blocks by busy-polling until the lock is held.
	Acquire()
	// Release relinquishes ownership. Caller must hold the lock.
	Release()
	// TryAcquire attempts a single acquisition without polling.
	TryAcquire() bool
}
