// File: control/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread-safe configuration store with environment seeding and
// reload propagation.

package control

import (
	"os"
	"strconv"
	"sync"
)

// Environment variables recognized by SeedFromEnv.
const (
	EnvWorkers    = "HIOLOAD_SYNC_WORKERS"
	EnvIterations = "HIOLOAD_SYNC_ITERATIONS"
	EnvRepeats    = "HIOLOAD_SYNC_REPEATS"
)

// ConfigStore is a dynamic key/value map with atomic snapshot and
// listener support. Workload drivers read their defaults from it;
// tests override per-key.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a config store with library defaults.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config: map[string]any{
			"workers":    4,
			"iterations": 100000,
			"repeats":    5,
		},
	}
}

// SeedFromEnv overrides defaults from the process environment.
// Unparseable values are ignored.
func (cs *ConfigStore) SeedFromEnv() {
	overrides := map[string]string{
		"workers":    os.Getenv(EnvWorkers),
		"iterations": os.Getenv(EnvIterations),
		"repeats":    os.Getenv(EnvRepeats),
	}
	merged := make(map[string]any)
	for key, raw := range overrides {
		if raw == "" {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			merged[key] = n
		}
	}
	if len(merged) > 0 {
		cs.SetConfig(merged)
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// GetInt returns an integer config value, or fallback when missing.
func (cs *ConfigStore) GetInt(key string, fallback int) int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if n, ok := cs.config[key].(int); ok {
		return n
	}
	return fallback
}

// SetConfig merges new values and dispatches reload listeners.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	listeners := append([]func(){}, cs.listeners...)
	cs.mu.Unlock()
	for _, fn := range listeners {
		go fn()
	}
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
