// Package testutil provides shared helpers for package tests.
package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/goleak"

	"github.com/lexiconlabs/tiebreak/internal/logging"
)

// NewTestContext returns a context carrying a debug-level logger writing to
// an in-memory buffer, plus a func to read everything logged so far. The
// writer is race-safe so parallel subtests can share the context.
func NewTestContext(t *testing.T) (ctx context.Context, logOutput func() string) {
	t.Helper()

	var buf strings.Builder
	writer := zerolog.SyncWriter(&buf)

	ctx, err := logging.New(context.Background(), nil, logging.Config{
		Writer: writer,
		Level:  zerolog.DebugLevel,
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}

	return ctx, buf.String
}

// VerifyTestMain wraps goleak's leak detection for packages whose tests
// spawn goroutines.
func VerifyTestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
