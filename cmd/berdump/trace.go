package main

import (
	"github.com/oba-ldap/lber/internal/ber"
	"github.com/oba-ldap/lber/internal/logging"
)

// loggingTraceSink adapts a logging.Logger to ber.TraceSink, forwarding
// each TraceEvent as a structured log line correlated by the event's
// Correlation id (see internal/logging's doc.go for the convention this
// follows).
type loggingTraceSink struct {
	logger logging.Logger
}

// newLoggingTraceSink returns a ber.TraceSink backed by logger.
func newLoggingTraceSink(logger logging.Logger) ber.TraceSink {
	return &loggingTraceSink{logger: logger}
}

// Trace implements ber.TraceSink.
func (s *loggingTraceSink) Trace(ev ber.TraceEvent) {
	connLogger := s.logger.WithRequestID(ev.Correlation.String())
	if ev.Ok {
		connLogger.Debug("ber step", "op", ev.Op, "offset", ev.Offset)
		return
	}
	connLogger.Warn("ber step failed", "op", ev.Op, "offset", ev.Offset, "err", ev.Err)
}
