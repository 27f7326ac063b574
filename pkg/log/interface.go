// Package log provides a structured logging interface for foldwise evaluation runs.
//
// This package defines a minimal, slog-compatible logging interface that allows for
// flexible implementation switching while providing structured logging for
// cross-validation workloads. The interface is designed to integrate seamlessly
// with Go's standard log/slog package and libraries like zerolog.
//
// Key features:
//   - slog-compatible interface for future-proofing
//   - Standard structured attributes for folds, candidates and scores
//   - Context-aware logging with field chaining
//   - Test-friendly with an in-memory capture logger
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ModelNameKey, "LookupClassifier",
//	)
//	logger.Info("Evaluation started",
//	    log.OperationKey, log.OperationEvaluate,
//	    log.FoldsKey, 5,
//	    log.CandidatesKey, 3,
//	)
package log

import (
	"context"
	"log/slog"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// This interface provides the core logging methods with structured field support.
// It's designed to be implementation-agnostic, enabling easy switching between
// different logging backends while maintaining a consistent API.
//
// The interface supports method chaining through the With method, allowing
// for creation of contextual loggers with pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If an error value is provided as a field, stack trace information
	// may be automatically included.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// This can be used to avoid expensive attribute construction for records
	// that would be discarded.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// slogLogger adapts the process-wide slog default logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// GetLogger returns a Logger backed by the default slog logger.
// Call SetupLogger first to configure the output format and level.
func GetLogger() Logger {
	return &slogLogger{logger: slog.Default()}
}

// GetLoggerWithName returns a Logger with the component field pre-populated.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With(ComponentKey, name)
}

func (s *slogLogger) Debug(msg string, fields ...any) {
	s.logger.Debug(msg, fields...)
}

func (s *slogLogger) Info(msg string, fields ...any) {
	s.logger.Info(msg, fields...)
}

func (s *slogLogger) Warn(msg string, fields ...any) {
	s.logger.Warn(msg, fields...)
}

func (s *slogLogger) Error(msg string, fields ...any) {
	s.logger.Error(msg, fields...)
}

func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: s.logger.With(fields...)}
}

func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, slog.Level(level))
}
