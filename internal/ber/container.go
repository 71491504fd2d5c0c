package ber

// Container bounds iteration over the content of a constructed SEQUENCE
// or SET: a container shares its parent Cursor rather than wrapping a
// sub-decoder over a copied slice, so nested containers simply nest
// their end offsets over the same monotonically advancing position
// (spec.md §4.4: "a container is a (cursor, end) pair, not a
// sub-buffer"). Every read made through the shared Cursor while a
// Container is open, whether by another Container or by a primitive
// reader, advances the same position.
type Container struct {
	c   *Cursor
	end int
}

// EnterSequence validates and consumes a SEQUENCE tag+length header
// (universal, constructed, tag number 0x10) and returns a Container
// bounding its content.
func (c *Cursor) EnterSequence() (*Container, error) {
	return c.enterContainer("{", TagSequence)
}

// EnterSet validates and consumes a SET tag+length header (universal,
// constructed, tag number 0x11) and returns a Container bounding its
// content.
func (c *Cursor) EnterSet() (*Container, error) {
	return c.enterContainer("[", TagSet)
}

func (c *Cursor) enterContainer(op string, wantNumber int) (*Container, error) {
	return c.EnterTagged(op, ClassUniversal, wantNumber)
}

// EnterTagged validates and consumes a constructed tag+length header of
// an arbitrary class and number — used directly for constructed
// context- or application-tagged fields (e.g. an LDAPMessage's [0]
// Controls) that EnterSequence/EnterSet cannot express since they are
// pinned to the universal class.
func (c *Cursor) EnterTagged(op string, wantClass Class, wantNumber int) (*Container, error) {
	if c.failed {
		return nil, c.fail(op, c.pos, ErrCursorFailed)
	}
	start := c.pos
	tag, length, err := c.SkipTag()
	if err != nil {
		return nil, err
	}
	if tag.Class() != wantClass || !tag.Constructed() || tag.Number() != wantNumber {
		return nil, c.fail(op, start, &TagMismatchError{
			Offset:         start,
			ExpectedClass:  wantClass,
			ExpectedNumber: wantNumber,
			ActualClass:    tag.Class(),
			ActualNumber:   tag.Number(),
			ActualConstr:   tag.Constructed(),
		})
	}
	end := c.pos + length
	if end > len(c.data) {
		return nil, c.fail(op, start, NewDecodeError(start, "truncated container content", ErrUnexpectedEOF))
	}
	c.ok(op, c.pos)
	return &Container{c: c, end: end}, nil
}

// enterAnyAggregate consumes a constructed element's tag+length header
// without constraining its class or tag number, used by the Script
// Engine's `v`/`V` array opcodes: LDAP wraps repeated attribute values
// under constructed tags of varying class (universal SET OF, but also
// context- and application-tagged equivalents), so the walker only
// requires the constructed bit.
func (c *Cursor) enterAnyAggregate(op string) (*Container, error) {
	if c.failed {
		return nil, c.fail(op, c.pos, ErrCursorFailed)
	}
	start := c.pos
	tag, length, err := c.SkipTag()
	if err != nil {
		return nil, err
	}
	if !tag.Constructed() {
		return nil, c.fail(op, start, NewDecodeError(start, "expected a constructed element", ErrTagMismatch))
	}
	end := c.pos + length
	if end > len(c.data) {
		return nil, c.fail(op, start, NewDecodeError(start, "truncated container content", ErrUnexpectedEOF))
	}
	c.ok(op, c.pos)
	return &Container{c: c, end: end}, nil
}

// More reports whether unread content remains in the container; it is
// the boolean loop condition a caller uses for both the first and every
// subsequent element, in the idiom of bufio.Scanner.Scan (spec.md
// §4.4's FirstElement/NextElement collapse naturally into one predicate
// once the container no longer owns a sub-buffer).
func (ct *Container) More() bool {
	return ct.c.pos < ct.end
}

// End reports the container's end offset in the shared Cursor's buffer.
func (ct *Container) End() int { return ct.end }

// Close verifies that decoding consumed exactly the container's
// declared content, neither stopping short nor overrunning into a
// sibling element (spec.md §8 invariant: containers must be consumed
// exactly).
func (ct *Container) Close() error {
	if ct.c.pos == ct.end {
		return nil
	}
	return ct.c.fail("}", ct.end, NewDecodeError(ct.end, "container not fully consumed", ErrInvalidLength))
}
