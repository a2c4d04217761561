// Package testsupport provides shared constructors for tests: temp-dir
// configs, silent loggers, and preloaded workflow services.
package testsupport

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"importflow/internal/config"
	"importflow/internal/store"
	"importflow/internal/workflow"
)

// NewConfig returns a validated config rooted in a temp directory.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.LogDir = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	return &cfg
}

// SilentLogger returns a logger that discards all output.
func SilentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewService builds a workflow service over an in-memory store with a
// pinned clock. The service starts on the seed collection.
func NewService(t *testing.T, now time.Time) (*workflow.Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc, err := workflow.NewService(NewConfig(t), mem, SilentLogger(),
		workflow.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc, mem
}
