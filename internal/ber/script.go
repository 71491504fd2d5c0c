package ber

import "golang.org/x/exp/slices"

// Op is one step of a script: a decode action bound to caller-supplied
// output slots. Scripts are built from the constructor functions below
// (OpBoolean, OpInteger, OpOctetStringOwned, ...) rather than a
// format-string-plus-variadic-arguments pair; spec.md §9 calls that
// original liblber shape a footgun ("fragile to keep slots aligned with
// format characters by hand") and recommends a tagged-variant list
// instead, which is what Op is.
type Op struct {
	// code names the script opcode this step corresponds to, kept only
	// for tracing and error messages (spec.md §4.5's opcode table).
	code string
	run  func(c *Cursor) (undo func(), err error)
}

// rollbackStep is one entry of the engine's undo stack: a closure that
// releases exactly the allocation (if any) its forward step made.
// go-stackage's generic Stack type would be the thematically obvious
// home for this (DESIGN.md), but no source for it is present in the
// corpus to ground a call against, so a plain slice stands in.
type rollbackStep struct {
	undo func()
}

// Run executes ops against c in order. If any step fails, every step
// executed so far has its undo closure invoked in reverse order (LIFO)
// before the error is returned, releasing every allocation this
// invocation made and resetting the corresponding slots to a null
// state. A successful Run leaves no rollback state behind.
func Run(c *Cursor, ops ...Op) error {
	steps := make([]rollbackStep, 0, len(ops))
	for _, op := range ops {
		undo, err := op.run(c)
		if err != nil {
			c.trace("script:"+op.code, c.pos, err)
			for i := len(steps) - 1; i >= 0; i-- {
				steps[i].undo()
			}
			return err
		}
		c.trace("script:"+op.code, c.pos, nil)
		if undo != nil {
			steps = append(steps, rollbackStep{undo: undo})
		}
	}
	return nil
}

// OpCallback invokes fn(c, ctx, false) on the forward pass and
// fn(c, ctx, true) if this script later rolls back, letting external
// code participate in the atomic-rollback contract (the `!` opcode).
func OpCallback(fn func(c *Cursor, ctx any, isError bool) error, ctx any) Op {
	return Op{code: "!", run: func(c *Cursor) (func(), error) {
		if err := fn(c, ctx, false); err != nil {
			return nil, err
		}
		return func() { _ = fn(c, ctx, true) }, nil
	}}
}

// OpBoolean decodes a BOOLEAN into out (the `b` opcode).
func OpBoolean(out *bool) Op {
	return Op{code: "b", run: func(c *Cursor) (func(), error) {
		v, err := c.ReadBool()
		if err != nil {
			return nil, err
		}
		*out = v
		return nil, nil
	}}
}

// OpInteger decodes an INTEGER into out (the `i` opcode).
func OpInteger(out *int64) Op {
	return Op{code: "i", run: func(c *Cursor) (func(), error) {
		v, err := c.ReadInteger()
		if err != nil {
			return nil, err
		}
		*out = v
		return nil, nil
	}}
}

// OpEnumerated decodes an ENUMERATED into out (the `e` opcode).
func OpEnumerated(out *int64) Op {
	return Op{code: "e", run: func(c *Cursor) (func(), error) {
		v, err := c.ReadEnumerated()
		if err != nil {
			return nil, err
		}
		*out = v
		return nil, nil
	}}
}

// OpNull decodes a NULL, discarding it (the `n` opcode).
func OpNull() Op {
	return Op{code: "n", run: func(c *Cursor) (func(), error) {
		return nil, c.ReadNull()
	}}
}

// OpLength peeks the next element's length into out without consuming
// it (the `l` opcode).
func OpLength(out *int) Op {
	return Op{code: "l", run: func(c *Cursor) (func(), error) {
		_, length, err := c.PeekTag()
		if err != nil {
			return nil, err
		}
		*out = length
		return nil, nil
	}}
}

// OpPeekTag peeks the next element's tag into out without consuming it
// (the `t` opcode).
func OpPeekTag(out *Tag) Op {
	return Op{code: "t", run: func(c *Cursor) (func(), error) {
		tag, _, err := c.PeekTag()
		if err != nil {
			return nil, err
		}
		*out = tag
		return nil, nil
	}}
}

// OpSkipTag consumes the next element's tag+length preamble (but not
// its contents), writing the tag into out (the `T` opcode).
func OpSkipTag(out *Tag) Op {
	return Op{code: "T", run: func(c *Cursor) (func(), error) {
		tag, _, err := c.SkipTag()
		if err != nil {
			return nil, err
		}
		*out = tag
		return nil, nil
	}}
}

// OpSkipElement skips exactly one full element: tag, length, and
// contents (the `x` opcode).
func OpSkipElement() Op {
	return Op{code: "x", run: func(c *Cursor) (func(), error) {
		return nil, c.skipElement()
	}}
}

// OpBeginSequence consumes a SEQUENCE's own tag+length preamble (the
// `{` opcode). Omit it when the very next opcode is OpArrayBytes or
// OpArrayBerval, which consume their container's preamble themselves
// (spec.md §4.5).
func OpBeginSequence() Op {
	return Op{code: "{", run: func(c *Cursor) (func(), error) {
		_, err := c.EnterSequence()
		return nil, err
	}}
}

// OpBeginSet consumes a SET's own tag+length preamble (the `[` opcode).
// Omit it when the very next opcode is OpArrayBytes or OpArrayBerval,
// for the same reason as OpBeginSequence.
func OpBeginSet() Op {
	return Op{code: "[", run: func(c *Cursor) (func(), error) {
		_, err := c.EnterSet()
		return nil, err
	}}
}

// OpEndContainer is purely structural (the `}`/`]` opcodes): it has no
// decode side effect. Scripts include it only so the opcode sequence
// visibly matches the wire shape being decoded.
func OpEndContainer() Op {
	return Op{code: "}", run: func(c *Cursor) (func(), error) {
		return nil, nil
	}}
}

// OpOctetStringOwned decodes an OCTET STRING into a freshly allocated
// buffer (the `a` opcode). On rollback the buffer is released and out
// is reset to nil.
func OpOctetStringOwned(out *[]byte) Op {
	return Op{code: "a", run: func(c *Cursor) (func(), error) {
		buf, err := c.ReadOctetStringOwned()
		if err != nil {
			return nil, err
		}
		*out = buf
		return func() {
			c.allocator().Free(*out)
			*out = nil
		}, nil
	}}
}

// OpOctetStringFixed decodes an OCTET STRING into the caller-owned
// buffer dst, writing the content length into outLen (the `s` opcode).
// dst is never allocator-owned, so this step pushes no rollback action.
func OpOctetStringFixed(dst []byte, outLen *int) Op {
	return Op{code: "s", run: func(c *Cursor) (func(), error) {
		n, err := c.ReadOctetStringFixed(dst)
		if err != nil {
			return nil, err
		}
		*outLen = n
		return nil, nil
	}}
}

// OpBervalOwned decodes an OCTET STRING into a freshly allocated Berval
// (the `O` opcode). On rollback the Berval's value buffer is released
// and out is reset to nil.
func OpBervalOwned(out **Berval) Op {
	return Op{code: "O", run: func(c *Cursor) (func(), error) {
		bv, err := c.ReadOctetStringBerval()
		if err != nil {
			return nil, err
		}
		*out = bv
		return func() {
			c.allocator().Free(bv.Value)
			*out = nil
		}, nil
	}}
}

// OpBervalInto decodes an OCTET STRING into bv's Value field and sets
// bv's Len field to the content length (the `o` opcode).
// On rollback bv's value buffer is released and bv is reset.
func OpBervalInto(bv *Berval) Op {
	return Op{code: "o", run: func(c *Cursor) (func(), error) {
		if err := c.ReadOctetStringInto(bv); err != nil {
			return nil, err
		}
		return func() {
			c.allocator().Free(bv.Value)
			bv.reset()
		}, nil
	}}
}

// OpBitString decodes a BIT STRING into a freshly allocated buffer,
// writing the payload into outBuf and the bit count into outBits (the
// `B` opcode). On rollback the buffer is released and both slots are
// zeroed.
func OpBitString(outBuf *[]byte, outBits *int) Op {
	return Op{code: "B", run: func(c *Cursor) (func(), error) {
		buf, bits, err := c.ReadBitString()
		if err != nil {
			return nil, err
		}
		*outBuf = buf
		*outBits = bits
		return func() {
			c.allocator().Free(*outBuf)
			*outBuf = nil
			*outBits = 0
		}, nil
	}}
}

// OpArrayBytes walks a constructed container, decoding every child as
// an `a`-form octet string, and writes the resulting owned slice into
// out (the `v` opcode). An empty container yields a nil out, which
// callers must treat as zero elements. On rollback every collected
// buffer is released and out is reset to nil.
func OpArrayBytes(out *[][]byte) Op {
	return Op{code: "v", run: func(c *Cursor) (func(), error) {
		ct, err := c.enterAnyAggregate("v")
		if err != nil {
			return nil, err
		}
		var collected [][]byte
		for ct.More() {
			buf, err := c.ReadOctetStringOwned()
			if err != nil {
				freeAll(c, collected)
				return nil, err
			}
			collected = append(collected, buf)
		}
		if len(collected) == 0 {
			*out = nil
			return nil, nil
		}
		*out = slices.Clone(collected)
		return func() {
			freeAll(c, *out)
			*out = nil
		}, nil
	}}
}

// OpArrayBerval walks a constructed container, decoding every child as
// an `O`-form owned Berval, and writes the resulting owned slice into
// out (the `V` opcode). An empty container yields a nil out. On
// rollback every collected Berval's value buffer is released and out
// is reset to nil.
func OpArrayBerval(out *[]*Berval) Op {
	return Op{code: "V", run: func(c *Cursor) (func(), error) {
		ct, err := c.enterAnyAggregate("V")
		if err != nil {
			return nil, err
		}
		var collected []*Berval
		for ct.More() {
			bv, err := c.ReadOctetStringBerval()
			if err != nil {
				freeAllBerval(c, collected)
				return nil, err
			}
			collected = append(collected, bv)
		}
		if len(collected) == 0 {
			*out = nil
			return nil, nil
		}
		*out = slices.Clone(collected)
		return func() {
			freeAllBerval(c, *out)
			*out = nil
		}, nil
	}}
}

func freeAll(c *Cursor, bufs [][]byte) {
	for _, b := range bufs {
		c.allocator().Free(b)
	}
}

func freeAllBerval(c *Cursor, bvs []*Berval) {
	for _, bv := range bvs {
		c.allocator().Free(bv.Value)
	}
}

// skipElement consumes a full (tag, length, contents) element without
// interpreting its contents (backs the `x` opcode).
func (c *Cursor) skipElement() error {
	if c.failed {
		return c.fail("x", c.pos, ErrCursorFailed)
	}
	start := c.pos
	_, length, err := c.SkipTag()
	if err != nil {
		return err
	}
	if err := c.skip(length); err != nil {
		return err
	}
	c.ok("x", start)
	return nil
}
