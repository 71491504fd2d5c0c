package ber

// ReadOctetStringOwned decodes a primitive OCTET STRING (universal tag
// 0x04) into a freshly allocated, NUL-terminated buffer (the `a` script
// opcode). The returned slice has length+1 bytes: length content bytes
// followed by a trailing 0x00 that is not counted in the reported length.
// On failure any partial allocation is released and nil is returned.
func (c *Cursor) ReadOctetStringOwned() (buf []byte, err error) {
	return c.readOctetStringAllocated("a", -1)
}

// ReadOctetStringFixed decodes an OCTET STRING into the caller-supplied
// buffer dst (the `s` script opcode). It requires the content length to
// be at most len(dst)-1, reserving one byte for a trailing terminator,
// and returns the number of content bytes written (excluding the
// terminator).
func (c *Cursor) ReadOctetStringFixed(dst []byte) (n int, err error) {
	if c.failed {
		return 0, c.fail("s", c.pos, ErrCursorFailed)
	}
	start := c.pos
	_, length, err := c.SkipTag()
	if err != nil {
		return 0, err
	}
	if length > len(dst)-1 {
		return 0, c.fail("s", start, NewDecodeError(start, "destination buffer too small", ErrBufferTooSmall))
	}
	content, err := c.read(length)
	if err != nil {
		return 0, err
	}
	copy(dst, content)
	dst[length] = 0

	buf := dst[:length]
	tlen := length
	if terr := c.applyTranslation(&buf, &tlen, len(dst)-1); terr != nil {
		return 0, c.fail("s", start, terr)
	}
	copy(dst[:tlen], buf)
	dst[tlen] = 0
	length = tlen
	c.ok("s", c.pos)
	return length, nil
}

// ReadOctetStringBerval decodes an OCTET STRING into an owned Berval
// pair (the `O` script opcode): the value buffer is allocated via the
// cursor's Allocator; the Berval header itself is an ordinary Go value.
func (c *Cursor) ReadOctetStringBerval() (*Berval, error) {
	buf, err := c.readOctetStringAllocated("O", -1)
	if err != nil {
		return nil, err
	}
	return &Berval{Value: buf, Len: len(buf) - 1}, nil
}

// ReadOctetStringInto decodes an OCTET STRING into the value field of a
// caller-supplied Berval (the `o` script opcode): only the value bytes
// are allocated, and the length field is set from the decoded content
// length once the read succeeds (no separate peek is made). On failure bv
// is reset.
func (c *Cursor) ReadOctetStringInto(bv *Berval) error {
	buf, err := c.readOctetStringAllocated("o", -1)
	if err != nil {
		bv.reset()
		return err
	}
	bv.Value = buf
	bv.Len = len(buf) - 1
	return nil
}

// readOctetStringAllocated is the shared implementation behind the `a`,
// `O`, and `o` allocation flavors: allocate length+1 bytes, copy the
// content, append the terminator, and run the translation hook.
func (c *Cursor) readOctetStringAllocated(op string, _ int) ([]byte, error) {
	if c.failed {
		return nil, c.fail(op, c.pos, ErrCursorFailed)
	}
	start := c.pos
	_, length, err := c.SkipTag()
	if err != nil {
		return nil, err
	}
	content, err := c.read(length)
	if err != nil {
		return nil, err
	}

	buf, aerr := c.allocator().Allocate(length + 1)
	if aerr != nil {
		return nil, c.fail(op, start, NewDecodeError(start, "allocation failed", ErrAllocation))
	}
	copy(buf, content)
	buf[length] = 0

	totalLen := length + 1
	if terr := c.applyTranslation(&buf, &totalLen, -1); terr != nil {
		return nil, c.fail(op, start, terr)
	}
	c.ok(op, c.pos)
	return buf, nil
}
