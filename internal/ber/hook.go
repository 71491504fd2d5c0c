package ber

// TranslationHook is the registration point for an optional, externally
// implemented string-translation transform (spec.md §1, §4.3, §6). The
// decoder core only ever calls Decode; Encode exists solely so a single
// registration carries both directions for a caller that also encodes.
//
// Decode may replace *buf with a newly allocated translated buffer (via
// the owning Cursor's Allocator) and update *length to the translated
// length, including any trailing terminator the original form carried. If
// freeRequested is true, Decode is responsible for releasing the
// passed-in *buf (via the same Allocator) once it has produced its
// replacement. A non-nil return is a hook failure (ErrHookFailed).
type TranslationHook struct {
	Encode func(buf *[]byte, length *int, freeRequested bool) error
	Decode func(buf *[]byte, length *int, freeRequested bool) error
}

// applyTranslation runs the cursor's registered hook (if any, and if the
// string-translation option is enabled) against a freshly decoded string
// buffer. capLimit is the destination capacity for fixed-buffer (s-form)
// reads, or -1 for allocating forms that have no fixed capacity.
func (c *Cursor) applyTranslation(buf *[]byte, length *int, capLimit int) error {
	if !c.opts.translateStrings || c.hook == nil || c.hook.Decode == nil {
		return nil
	}
	// capLimit >= 0 means dst is a caller-owned fixed buffer (the
	// s-form): the hook must not free it. The allocating forms (a/O/o)
	// pass capLimit -1 for an Allocator-owned buffer the hook may free,
	// mirroring ber_get_stringb's free_flag=0 vs ber_get_stringa/
	// ber_get_stringal's free_flag=1 in the original C.
	freeRequested := capLimit < 0
	orig := *buf
	if err := c.hook.Decode(buf, length, freeRequested); err != nil {
		if freeRequested {
			c.allocator().Free(*buf)
		}
		*buf = nil
		*length = 0
		return NewDecodeError(c.pos, "string translation hook failed", ErrHookFailed)
	}
	if capLimit >= 0 && *length > capLimit {
		// Only a replacement buffer the hook produced is released; the
		// s-form's caller-owned buffer never is.
		replaced := len(*buf) > 0 && (cap(orig) == 0 || &(*buf)[:1][0] != &orig[:1][0])
		if freeRequested || replaced {
			c.allocator().Free(*buf)
		}
		*buf = nil
		*length = 0
		return NewDecodeError(c.pos, "translated string exceeds destination capacity", ErrBufferTooSmall)
	}
	return nil
}
