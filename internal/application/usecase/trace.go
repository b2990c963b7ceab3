package usecase

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/xabank/time-deposit/pkg/observability"
)

// NewTraceID returns a fresh correlation token. Every invocation, scheduled or on demand,
// gets its own.
func NewTraceID() string {
	return uuid.NewString()
}

// validateTraceID rejects an empty correlation token before any I/O happens.
func validateTraceID(logger *slog.Logger, traceID string) error {
	if traceID == "" {
		observability.WithTrace(logger, "", observability.SourceService).Error("trace id is null or empty")
		return ErrInvalidTraceID
	}
	return nil
}
