package ber

import (
	"errors"
	"testing"
)

func TestReadNull_Valid(t *testing.T) {
	c := NewCursor([]byte{0x05, 0x00})
	if err := c.ReadNull(); err != nil {
		t.Fatalf("ReadNull failed: %v", err)
	}
	if c.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", c.Offset())
	}
}

func TestReadNull_NonZeroLength(t *testing.T) {
	c := NewCursor([]byte{0x05, 0x01, 0x00})
	err := c.ReadNull()
	if !errors.Is(err, ErrInvalidNull) {
		t.Fatalf("expected ErrInvalidNull, got %v", err)
	}
	if !c.Failed() {
		t.Error("cursor should be marked failed after an invalid null")
	}
}
