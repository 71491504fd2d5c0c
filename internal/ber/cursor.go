package ber

import "github.com/google/uuid"

// options holds the decoder options a Cursor was constructed with
// (spec.md §3: "a set of decoder options (currently only: apply
// string-translation hook to decoded strings)").
type options struct {
	translateStrings bool
}

// Cursor is the live decoding state: an input buffer, a read offset, and
// the pluggable collaborators (allocator, trace sink, translation hook)
// every reader in this package consults. A Cursor has no internal
// synchronization; concurrent use of the same Cursor from multiple
// goroutines is forbidden, though distinct Cursors over distinct buffers
// may be used concurrently (spec.md §5).
type Cursor struct {
	data  []byte
	pos   int
	opts  options
	alloc Allocator
	sink  TraceSink
	hook  *TranslationHook

	failed bool // true once any read has returned an error (spec.md §7)

	// correlation identifies every TraceEvent this cursor emits.
	correlation uuid.UUID
}

// Option configures a Cursor at construction time.
type Option func(*Cursor)

// WithAllocator installs a non-default Allocator.
func WithAllocator(a Allocator) Option {
	return func(c *Cursor) { c.alloc = a }
}

// WithTraceSink installs a non-default TraceSink.
func WithTraceSink(s TraceSink) Option {
	return func(c *Cursor) { c.sink = s }
}

// WithTranslationHook registers a TranslationHook and implicitly enables
// the string-translation option.
func WithTranslationHook(h *TranslationHook) Option {
	return func(c *Cursor) {
		c.hook = h
		c.opts.translateStrings = true
	}
}

// WithStringTranslation explicitly toggles the string-translation option
// independent of whether a hook is registered (a hook with the option off
// is never invoked; the option with no hook registered is a no-op).
func WithStringTranslation(enabled bool) Option {
	return func(c *Cursor) { c.opts.translateStrings = enabled }
}

// NewCursor constructs a Cursor over buf. buf is borrowed, not copied;
// the caller must not mutate it while the Cursor is in use.
func NewCursor(buf []byte, opts ...Option) *Cursor {
	c := &Cursor{
		data:        buf,
		alloc:       HeapAllocator{},
		sink:        NopSink{},
		correlation: uuid.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// allocator returns the configured Allocator, defaulting to HeapAllocator
// if none was set (should not happen via NewCursor, but kept defensive
// for zero-value Cursors built in tests).
func (c *Cursor) allocator() Allocator {
	if c.alloc == nil {
		return HeapAllocator{}
	}
	return c.alloc
}

// Offset reports the cursor's current read position.
func (c *Cursor) Offset() int { return c.pos }

// Len reports the total length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.data) }

// Remaining reports the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Failed reports whether this cursor has already returned one failure; a
// failed cursor is consumed and must not be used for further decoding
// (spec.md §7).
func (c *Cursor) Failed() bool { return c.failed }

// Snapshot is a cheap, non-owning look-ahead view: a copy of the cursor's
// offset plus a reference to the same underlying buffer (spec.md §4.1's
// peek_snapshot). Taking a Snapshot never advances the live cursor, and a
// Snapshot shares the buffer rather than cloning it (spec.md §9).
type Snapshot struct {
	data []byte
	pos  int
}

// Snapshot returns a look-ahead view of c's current state. PeekTag is
// implemented in terms of the same pure tag/length decoding functions a
// Snapshot would use, so the two never disagree.
func (c *Cursor) Snapshot() Snapshot {
	return Snapshot{data: c.data, pos: c.pos}
}

// Offset reports the position a Snapshot was taken at.
func (s Snapshot) Offset() int { return s.pos }

// trace emits a TraceEvent to the cursor's configured sink, if any.
func (c *Cursor) trace(op string, offset int, err error) {
	if c.sink == nil {
		return
	}
	c.sink.Trace(TraceEvent{
		Correlation: c.correlation,
		Op:          op,
		Offset:      offset,
		Ok:          err == nil,
		Err:         err,
	})
}

// fail marks the cursor as failed and forwards to trace; every public
// reader funnels its error return through fail so Failed() becomes true
// exactly once a caller has observed one error.
func (c *Cursor) fail(op string, offset int, err error) error {
	c.failed = true
	c.trace(op, offset, err)
	return err
}

// ok is the success-path counterpart of fail: the typed readers and
// container entry points call it once per successful read. The Script
// Engine does not use it; Run emits its own per-opcode events via trace.
func (c *Cursor) ok(op string, offset int) {
	c.trace(op, offset, nil)
}

// read copies the next n bytes and advances pos by n. It fails if fewer
// than n bytes remain (spec.md §4.1: the cursor never signals "end of
// input" distinctly from "short read").
func (c *Cursor) read(n int) ([]byte, error) {
	if c.failed {
		return nil, c.fail("read", c.pos, ErrCursorFailed)
	}
	if n < 0 || c.pos+n > len(c.data) {
		return nil, c.fail("read", c.pos, NewDecodeError(c.pos, "short read", ErrUnexpectedEOF))
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadRaw copies and returns the next n bytes without interpreting them
// as any particular BER type, advancing pos by n. Unlike the typed
// readers it makes a defensive copy via make/copy rather than the
// configured Allocator, since its result is not part of the Script
// Engine's rollback accounting (spec.md §4.8: a message-envelope
// consumer may need an operation's raw, still-tagged bytes).
func (c *Cursor) ReadRaw(n int) ([]byte, error) {
	content, err := c.read(n)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	copy(buf, content)
	return buf, nil
}

// skip advances pos by n without copying. It fails if fewer than n bytes
// remain.
func (c *Cursor) skip(n int) error {
	if c.failed {
		return c.fail("skip", c.pos, ErrCursorFailed)
	}
	if n < 0 || c.pos+n > len(c.data) {
		return c.fail("skip", c.pos, NewDecodeError(c.pos, "short skip", ErrUnexpectedEOF))
	}
	c.pos += n
	return nil
}
