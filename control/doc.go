// File: control/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime control plane for benchmark runs: a thread-safe config
// store seeded from the environment (worker counts, iteration counts)
// and a metrics registry the bench runner publishes result snapshots
// into.
package control
