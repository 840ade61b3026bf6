// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific
// implementations are located in separate files (affinity_linux.go,
// affinity_stub.go) guarded by build tags.
//
// Pinning benchmark workers to distinct cores keeps the contention
// measurements stable: without it the scheduler may stack two spinning
// workers on one core and the numbers stop meaning anything.

package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that
// thread to the given logical CPU. Callers must pair it with Unpin.
// Returns api.ErrAffinityNotSupported on platforms without support.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Unpin releases the thread lock taken by Pin. The OS-level CPU mask
// is left for the scheduler to reassign.
func Unpin() {
	runtime.UnlockOSThread()
}
