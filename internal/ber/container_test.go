package ber

import (
	"errors"
	"testing"
)

func TestContainer_SequenceIteratesAndCloses(t *testing.T) {
	// SEQUENCE { INTEGER 1, INTEGER 2 }
	data := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	c := NewCursor(data)
	seq, err := c.EnterSequence()
	if err != nil {
		t.Fatalf("EnterSequence failed: %v", err)
	}
	var got []int64
	for seq.More() {
		v, err := c.ReadInteger()
		if err != nil {
			t.Fatalf("ReadInteger failed: %v", err)
		}
		got = append(got, v)
	}
	if err := seq.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestContainer_NestedSequencesShareCursor(t *testing.T) {
	// SEQUENCE { SEQUENCE { INTEGER 9 }, INTEGER 3 }
	data := []byte{
		0x30, 0x09,
		0x30, 0x03, 0x02, 0x01, 0x09,
		0x02, 0x01, 0x03,
	}
	c := NewCursor(data)
	outer, err := c.EnterSequence()
	if err != nil {
		t.Fatalf("EnterSequence outer failed: %v", err)
	}
	inner, err := c.EnterSequence()
	if err != nil {
		t.Fatalf("EnterSequence inner failed: %v", err)
	}
	v, err := c.ReadInteger()
	if err != nil || v != 9 {
		t.Fatalf("ReadInteger inner = %d, %v", v, err)
	}
	if err := inner.Close(); err != nil {
		t.Fatalf("inner Close failed: %v", err)
	}
	v2, err := c.ReadInteger()
	if err != nil || v2 != 3 {
		t.Fatalf("ReadInteger outer = %d, %v", v2, err)
	}
	if err := outer.Close(); err != nil {
		t.Fatalf("outer Close failed: %v", err)
	}
}

func TestContainer_CloseFailsOnShortConsumption(t *testing.T) {
	data := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	c := NewCursor(data)
	seq, err := c.EnterSequence()
	if err != nil {
		t.Fatalf("EnterSequence failed: %v", err)
	}
	if _, err := c.ReadInteger(); err != nil {
		t.Fatalf("ReadInteger failed: %v", err)
	}
	if err := seq.Close(); err == nil {
		t.Fatal("expected Close to fail on partial consumption")
	}
}

func TestEnterSequence_WrongTag(t *testing.T) {
	data := []byte{0x31, 0x00} // SET, not SEQUENCE
	c := NewCursor(data)
	_, err := c.EnterSequence()
	var mismatch *TagMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *TagMismatchError, got %v", err)
	}
}

func TestEnterTagged_ContextSpecific(t *testing.T) {
	// [0] { INTEGER 1 }, a context-specific constructed tag 0.
	data := []byte{0xA0, 0x03, 0x02, 0x01, 0x01}
	c := NewCursor(data)
	ct, err := c.EnterTagged("[0]", ClassContextSpecific, 0)
	if err != nil {
		t.Fatalf("EnterTagged failed: %v", err)
	}
	v, err := c.ReadInteger()
	if err != nil || v != 1 {
		t.Fatalf("ReadInteger = %d, %v", v, err)
	}
	if err := ct.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestEnterTagged_TruncatedContent(t *testing.T) {
	// Header claims 10 content bytes but only 1 is present.
	data := []byte{0x30, 0x0A, 0x02}
	c := NewCursor(data)
	if _, err := c.EnterSequence(); err == nil {
		t.Fatal("expected truncated-container error")
	}
}
