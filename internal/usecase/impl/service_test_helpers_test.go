package impl

import (
	"io"
	"log/slog"
	"time"
)

// newDiscardLogger creates a logger that discards all output for testing.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// kickoffText renders a time in the "hh:mm dd.mm.yyyy" form the upstream
// scanner emits.
func kickoffText(ts time.Time) string {
	return ts.Format("15:04 2.1.2006")
}
