// File: internal/pause/pause_amd64.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build amd64

package pause

// PAUSE latency on post-Skylake parts is ~140 cycles, so a single
// runtime procyield iteration is already a meaningful delay.
const spinCycles = 10
