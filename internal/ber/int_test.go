package ber

import (
	"errors"
	"testing"
)

func TestReadInteger_Table(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want int64
	}{
		{"zero length", []byte{0x02, 0x00}, 0},
		{"positive single byte", []byte{0x02, 0x01, 0x7F}, 127},
		{"negative single byte", []byte{0x02, 0x01, 0xFF}, -1},
		{"positive multi-byte", []byte{0x02, 0x02, 0x01, 0x00}, 256},
		{"negative multi-byte", []byte{0x02, 0x02, 0xFF, 0x01}, -255},
		{
			"max width eight bytes",
			[]byte{0x02, 0x08, 0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			9223372036854775807,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.data)
			got, err := c.ReadInteger()
			if err != nil {
				t.Fatalf("ReadInteger failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadInteger() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReadInteger_TooWide(t *testing.T) {
	data := []byte{0x02, 0x09, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	c := NewCursor(data)
	_, err := c.ReadInteger()
	if !errors.Is(err, ErrInvalidInteger) {
		t.Fatalf("expected ErrInvalidInteger, got %v", err)
	}
	if !c.Failed() {
		t.Error("cursor should be marked failed after an oversized integer")
	}
}

func TestReadEnumerated(t *testing.T) {
	c := NewCursor([]byte{0x0A, 0x01, 0x05})
	got, err := c.ReadEnumerated()
	if err != nil {
		t.Fatalf("ReadEnumerated failed: %v", err)
	}
	if got != 5 {
		t.Errorf("ReadEnumerated() = %d, want 5", got)
	}
}

func TestCursor_FailedIsSticky(t *testing.T) {
	c := NewCursor([]byte{0x02, 0x09, 0, 0, 0, 0, 0, 0, 0, 0, 1})
	if _, err := c.ReadInteger(); err == nil {
		t.Fatal("expected first read to fail")
	}
	if !c.Failed() {
		t.Fatal("cursor should report Failed after the first error")
	}
	if _, err := c.ReadInteger(); !errors.Is(err, ErrCursorFailed) {
		t.Fatalf("expected ErrCursorFailed on reuse, got %v", err)
	}
}
