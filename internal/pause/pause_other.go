// File: internal/pause/pause_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build !amd64 && !arm64

package pause

const spinCycles = 20
