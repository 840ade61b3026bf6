// File: workload/readers.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Readers/writers driver over the RWMutex-guarded value.

package workload

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/counter"
)

// ReadersWriters runs concurrent readers against incrementing writers
// on a counter.RWValue. Readers check monotonicity (a reader may never
// observe the value going backwards); the final value must equal
// Writers*Ops.
type ReadersWriters struct {
	Label   string
	Readers int
	Writers int
	Ops     int
}

var _ api.Workload = (*ReadersWriters)(nil)

// Name identifies the workload in reports.
func (rw *ReadersWriters) Name() string {
	return rw.Label
}

// Run launches the readers and writers and validates the final state.
func (rw *ReadersWriters) Run() error {
	if rw.Readers < 1 || rw.Writers < 1 {
		return api.ErrInvalidWorkerCount
	}
	var v counter.RWValue

	var g errgroup.Group
	for r := 0; r < rw.Readers; r++ {
		g.Go(func() error {
			var last int64
			for i := 0; i < rw.Ops; i++ {
				got := v.Read()
				if got < last {
					return fmt.Errorf("workload %s: value went backwards: %d after %d", rw.Label, got, last)
				}
				last = got
			}
			return nil
		})
	}
	for w := 0; w < rw.Writers; w++ {
		g.Go(func() error {
			for i := 0; i < rw.Ops; i++ {
				v.Update(func(n int64) int64 { return n + 1 })
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	want := int64(rw.Writers) * int64(rw.Ops)
	if got := v.Read(); got != want {
		return fmt.Errorf("workload %s: final value = %d, want %d", rw.Label, got, want)
	}
	return nil
}
