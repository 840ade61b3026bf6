// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// control_test.go — Config store and metrics registry behavior.
package control_test

import (
	"testing"

	"github.com/momentics/hioload-sync/control"
)

func TestConfigDefaultsAndOverride(t *testing.T) {
	cfg := control.NewConfigStore()
	if got := cfg.GetInt("workers", 0); got != 4 {
		t.Errorf("default workers = %d, want 4", got)
	}
	cfg.SetConfig(map[string]any{"workers": 16})
	if got := cfg.GetInt("workers", 0); got != 16 {
		t.Errorf("overridden workers = %d, want 16", got)
	}
	if got := cfg.GetInt("missing", 7); got != 7 {
		t.Errorf("fallback = %d, want 7", got)
	}
}

func TestSeedFromEnv(t *testing.T) {
	t.Setenv(control.EnvWorkers, "12")
	t.Setenv(control.EnvIterations, "not-a-number")

	cfg := control.NewConfigStore()
	cfg.SeedFromEnv()
	if got := cfg.GetInt("workers", 0); got != 12 {
		t.Errorf("env workers = %d, want 12", got)
	}
	// Unparseable values keep the default.
	if got := cfg.GetInt("iterations", 0); got != 100000 {
		t.Errorf("iterations = %d, want default 100000", got)
	}
}

func TestMetricsSnapshotIsolation(t *testing.T) {
	reg := control.NewMetricsRegistry()
	reg.Set("a", 1)
	snap := reg.GetSnapshot()
	snap["a"] = 99
	if v, _ := reg.Get("a"); v != 1 {
		t.Error("snapshot mutation leaked into registry")
	}
	if reg.LastUpdated().IsZero() {
		t.Error("LastUpdated not set after write")
	}
}
