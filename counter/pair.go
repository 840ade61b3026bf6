// File: counter/pair.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Two independently locked accounts with deadlock-free transfer.

package counter

import (
	"sync"
	"unsafe"
)

// Account is a mutex-guarded balance.
type Account struct {
	mu      sync.Mutex
	balance int64
}

// NewAccount creates an account with an initial balance.
func NewAccount(initial int64) *Account {
	return &Account{balance: initial}
}

// Balance returns the current balance.
func (a *Account) Balance() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount int64) {
	a.mu.Lock()
	a.balance += amount
	a.mu.Unlock()
}

// Transfer moves amount from one account to another atomically with
// respect to both locks. Both locks are always taken in a globally
// consistent order (lower address first), so two concurrent opposite
// transfers cannot deadlock.
func Transfer(from, to *Account, amount int64) {
	first, second := from, to
	if uintptr(unsafe.Pointer(second)) < uintptr(unsafe.Pointer(first)) {
		first, second = second, first
	}
	first.mu.Lock()
	second.mu.Lock()
	from.balance -= amount
	to.balance += amount
	second.mu.Unlock()
	first.mu.Unlock()
}
