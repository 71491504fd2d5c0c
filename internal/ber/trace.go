package ber

import "github.com/google/uuid"

// TraceEvent is a single structured diagnostic record emitted at a reader
// or opcode boundary when a Cursor has a non-nil TraceSink (spec.md §7:
// "diagnostics go to a trace/debug sink if configured").
type TraceEvent struct {
	// Correlation identifies every event emitted by one decode session;
	// it is drawn once per NewCursor call.
	Correlation uuid.UUID
	// Op names the opcode or reader that produced this event (e.g. "i",
	// "skip_tag", "script:a").
	Op string
	// Offset is the cursor offset at the moment this event was recorded.
	Offset int
	// Ok is false when the operation failed.
	Ok bool
	// Err is the error the operation returned, if any.
	Err error
}

// TraceSink receives TraceEvents. NewCursor installs NopSink unless
// WithTraceSink is given, and a zero-value Cursor (nil sink) emits
// nothing, so tracing has no cost unless a caller opts in.
type TraceSink interface {
	Trace(TraceEvent)
}

// NopSink discards every TraceEvent.
type NopSink struct{}

// Trace implements TraceSink.
func (NopSink) Trace(TraceEvent) {}

// FuncSink adapts a plain function to TraceSink.
type FuncSink func(TraceEvent)

// Trace implements TraceSink.
func (f FuncSink) Trace(e TraceEvent) { f(e) }
