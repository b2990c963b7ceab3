package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Sources identify the layer a log record was emitted from.
const (
	SourceService    = "service"
	SourceController = "controller"
	SourceScheduler  = "scheduler"
)

// missingTraceID is logged when a call arrives without a correlation token.
const missingTraceID = "N/A"

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json", "text"
}

// InitLogger initializes a structured slog.Logger writing to stdout and installs it as the default.
func InitLogger(cfg LogConfig) *slog.Logger {
	logger := NewLogger(os.Stdout, cfg)
	slog.SetDefault(logger)
	return logger
}

// NewLogger builds a logger for the given writer without touching the process default.
func NewLogger(w io.Writer, cfg LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// WithTrace returns a child logger that stamps every record with the trace id and source layer.
func WithTrace(logger *slog.Logger, traceID, source string) *slog.Logger {
	if traceID == "" {
		traceID = missingTraceID
	}
	return logger.With("trace_id", traceID, "source", source)
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
