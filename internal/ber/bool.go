package ber

// ReadBoolean decodes a primitive BOOLEAN (universal tag 0x01) via the
// same two's-complement integer path as INTEGER/ENUMERATED, matching the
// original ber_get_boolean, which calls ber_get_int directly and imposes
// no length restriction of its own (spec.md/SPEC_FULL.md §4.3: "decoded
// as an integer; any nonzero byte pattern is truthy" — any length the
// integer reader accepts, including zero, is a valid boolean). Per X.690,
// FALSE is the all-zero encoding and TRUE is any non-zero byte pattern;
// this decoder preserves that raw wire value rather than normalizing it
// to 0/0xFF, matching the source design's documented open question
// (spec.md §9): a caller needing strict DER-style booleans must compare
// the decoded value against 0 itself.
func (c *Cursor) ReadBoolean() (raw int64, err error) {
	return c.readSignedInteger("b")
}

// ReadBool is ReadBoolean with the script engine's `b` opcode convention:
// any non-zero decoded value maps to true.
func (c *Cursor) ReadBool() (bool, error) {
	raw, err := c.ReadBoolean()
	if err != nil {
		return false, err
	}
	return raw != 0, nil
}
