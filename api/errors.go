// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error values shared across hioload-sync packages.

package api

import "errors"

// Common errors used across the library.
var (
	// ErrInvalidCapacity indicates a ring capacity that is not a power of two >= 2.
	ErrInvalidCapacity = errors.New("capacity must be a power of two >= 2")

	// ErrInvalidThreshold indicates a barrier party size < 1.
	ErrInvalidThreshold = errors.New("barrier threshold must be positive")

	// ErrInvalidWorkerCount indicates invalid worker count configuration.
	ErrInvalidWorkerCount = errors.New("invalid worker count")

	// ErrAffinityNotSupported indicates CPU affinity is not supported on this platform.
	ErrAffinityNotSupported = errors.New("CPU affinity not supported")

	// ErrRunnerClosed indicates the bench runner has been shut down.
	ErrRunnerClosed = errors.New("runner is closed")
)
