// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public contracts for hioload-sync: spinlocks, barriers, lock-free
// rings, and benchmark workloads. All implementations live in the
// sibling packages; api holds only interfaces and shared error values
// so unrelated benchmark runs can be composed without import cycles.
package api
