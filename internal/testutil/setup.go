// Package testutil provides common testing utilities and setup functions for terrain
// engine tests: log capture, deterministic seeds, and shared helpers for table-driven
// coverage across the services packages.
package testutil

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/VoidMesh/terrain/internal/logging"
)

// TestConfig holds configuration for test setup
type TestConfig struct {
	// EnableLogCapture controls whether log output should be captured for testing
	EnableLogCapture bool
}

// DefaultTestConfig returns a default test configuration suitable for most tests
func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		EnableLogCapture: false, // Disable by default for cleaner test output
	}
}

// SetupTest initializes the test environment with the provided configuration.
// This should be called at the beginning of test functions or in TestMain.
//
// Usage:
//
//	func TestMyFunction(t *testing.T) {
//	    cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
//	    defer cleanup()
//	    // ... test code
//	}
func SetupTest(t *testing.T, config *TestConfig) func() {
	t.Helper()

	originalLogger := logging.Logger

	if config.EnableLogCapture {
		// Create test logger that outputs to testing.T
		testLogger := log.New(testWriter{t: t})
		testLogger.SetLevel(log.DebugLevel)
		logging.Logger = testLogger
	} else {
		// Disable logging output during tests to reduce noise
		logging.Logger = log.New(io.Discard)
	}

	return func() {
		logging.Logger = originalLogger
	}
}

// testWriter adapts testing.T to implement io.Writer for log output
type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (n int, err error) {
	tw.t.Helper()
	tw.t.Log(string(p))
	return len(p), nil
}

// SkipIfShort skips the test if testing.Short() is true.
// This should be used for tests that are slow or require external resources.
func SkipIfShort(t *testing.T, reason string) {
	t.Helper()

	if testing.Short() {
		if reason == "" {
			reason = "skipping test in short mode"
		}
		t.Skip(reason)
	}
}
