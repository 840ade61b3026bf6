// File: internal/pause/pause.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cross-platform spin-wait hint. Callers only depend on Spin/Yield
// existing; the per-architecture hint width is selected at compile
// time via the pause_*.go files.

package pause

import (
	_ "unsafe" // for go:linkname
)

// Spin issues a short CPU spin-wait hint (PAUSE on x86, YIELD on arm).
// It keeps the OS thread running; use it inside busy-poll loops to
// reduce power draw and contention on shared execution resources.
func Spin() {
	procyield(spinCycles)
}

// SpinN issues n consecutive spin-wait hints. Used by backoff loops
// that scale the delay rather than the call count.
func SpinN(n uint32) {
	procyield(n * spinCycles)
}

// Yield deschedules the current thread for one scheduler quantum.
// Strictly heavier than Spin; reach for it only after spinning has
// failed for a while.
func Yield() {
	osyield()
}

//go:linkname procyield runtime.procyield
func procyield(cycles uint32)

//go:linkname osyield runtime.osyield
func osyield()
