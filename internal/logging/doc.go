// Package logging provides structured logging for cmd/berdump and any
// caller embedding internal/ber that wants its TraceEvents logged.
//
// # Overview
//
// The logging package provides a structured logging interface with
// support for:
//
//   - Multiple log levels (debug, info, warn, error)
//   - Text and JSON output formats
//   - Per-cursor correlation id tracking (see ber.TraceEvent.Correlation)
//   - Field-based contextual logging
//
// # Creating a logger
//
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stderr",
//	})
//
// Or use defaults:
//
//	logger := logging.NewDefault() // Info level, text format, stdout
//
// For testing, use a no-op logger:
//
//	logger := logging.NewNop()
//
// # Log levels
//
//	logger.Debug("detailed debugging info", "key", "value")
//	logger.Info("informational message", "key", "value")
//	logger.Warn("warning message", "key", "value")
//	logger.Error("error message", "key", "value")
//
// # Correlation tracking
//
// Every Cursor stamps its TraceEvents with a github.com/google/uuid
// correlation id; a TraceSink built on this logger attaches it the same
// way request ids were attached to HTTP logs:
//
//	connLogger := logger.WithRequestID(cursorID.String())
//	connLogger.Info("script step", "op", ev.Op, "offset", ev.Offset)
//
// # Contextual fields
//
//	connLogger := logger.WithFields("input", path)
//	connLogger.Info("decode started")
//	connLogger.Info("decode finished")
package logging
