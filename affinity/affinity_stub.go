//go:build !linux

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback for platforms without an affinity backend.

package affinity

import "github.com/momentics/hioload-sync/api"

func setAffinityPlatform(cpuID int) error {
	return api.ErrAffinityNotSupported
}
