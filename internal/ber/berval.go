package ber

// Berval is a (byte slice, length) pair, used whenever a decoded value may
// legitimately contain zero bytes and so cannot be represented as a bare
// NUL-terminated string (spec.md §3, §GLOSSARY). Value is owned storage
// from the Cursor's Allocator once a decode that populates a Berval
// succeeds; Len is kept alongside Value rather than derived from
// len(Value) so a caller can tell an allocator-padded terminator byte from
// the logical content length.
type Berval struct {
	Value []byte
	Len   int
}

// reset clears bv to its null state without freeing Value; callers that
// own bv's backing store must Free it themselves first.
func (bv *Berval) reset() {
	bv.Value = nil
	bv.Len = 0
}
