// File: internal/pause/pause_arm64.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build arm64

package pause

// YIELD is close to a no-op on most ARM cores; spin longer per hint.
const spinCycles = 30
