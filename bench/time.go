// File: bench/time.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Wall-clock timing helper.

package bench

import "time"

// Time measures the wall-clock duration of fn.
func Time(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
