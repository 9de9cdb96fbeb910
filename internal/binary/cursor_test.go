package binary

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/simonhull/mediameta/internal/source"
	"github.com/simonhull/mediameta/internal/types"
)

func cursorOver(b []byte) *Cursor {
	return NewCursor(source.NewBytes(b))
}

func TestCursor_SequentialAdvance(t *testing.T) {
	c := cursorOver([]byte{0x00, 0x01, 0x7F, 0xFF, 0xAA, 0xBB, 0xCC, 0xDD})

	v16, err := c.Uint16()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v16 != 0x0001 {
		t.Errorf("expected 0x0001, got 0x%04x", v16)
	}
	if c.Position() != 2 {
		t.Errorf("expected position 2, got %d", c.Position())
	}

	v32, err := c.Uint32()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v32 != 0x7FFFAABB {
		t.Errorf("expected 0x7FFFAABB, got 0x%08x", v32)
	}
	if c.Position() != 6 {
		t.Errorf("expected position 6, got %d", c.Position())
	}
}

func TestCursor_ExplicitReadDoesNotAdvance(t *testing.T) {
	c := cursorOver([]byte{0x11, 0x22, 0x33, 0x44})

	if _, err := c.Uint8(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := c.Position()

	v, err := c.Uint16At(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x3344 {
		t.Errorf("expected 0x3344, got 0x%04x", v)
	}
	if c.Position() != before {
		t.Errorf("explicit read moved position: %d -> %d", before, c.Position())
	}
}

func TestCursor_BoundsViolationFields(t *testing.T) {
	data := make([]byte, 4)
	c := cursorOver(data)

	// Sequential read past the end.
	if err := c.Skip(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := c.Uint8()
	var be *types.BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("expected BoundsError, got %v", err)
	}
	if be.Offset != 4 || be.Count != 1 || be.MaxValid != 3 {
		t.Errorf("unexpected error fields: %+v", be)
	}

	// Explicit read at index N.
	_, err = c.Uint8At(4)
	if !errors.As(err, &be) {
		t.Fatalf("expected BoundsError, got %v", err)
	}
	if be.Offset != 4 || be.MaxValid != 3 {
		t.Errorf("unexpected error fields: %+v", be)
	}
}

func TestCursor_FailedReadDoesNotAdvance(t *testing.T) {
	c := cursorOver([]byte{0x01, 0x02})

	if _, err := c.Uint8(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Uint32(); err == nil {
		t.Fatal("expected bounds error")
	}
	if c.Position() != 1 {
		t.Errorf("failed read moved position to %d", c.Position())
	}
}

func TestCursor_EndiannessRoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0x7F, 0xFF}

	be := cursorOver(data)
	a, _ := be.Uint16()
	b, _ := be.Uint16()
	if a != 0x0001 || b != 0x7FFF {
		t.Errorf("big-endian: expected 0x0001, 0x7FFF; got 0x%04x, 0x%04x", a, b)
	}

	le := cursorOver(data)
	le.SetByteOrder(LittleEndian)
	a, _ = le.Uint16()
	b, _ = le.Uint16()
	if a != 0x0100 || b != 0xFF7F {
		t.Errorf("little-endian: expected 0x0100, 0xFF7F; got 0x%04x, 0x%04x", a, b)
	}
}

func TestCursor_Uint24Widening(t *testing.T) {
	c := cursorOver([]byte{0xFF, 0x00, 0x01})

	v, err := c.Uint24()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0xFF0001 {
		t.Errorf("expected 0xFF0001, got 0x%06x", v)
	}

	c = cursorOver([]byte{0xFF, 0x00, 0x01})
	c.SetByteOrder(LittleEndian)
	v, _ = c.Uint24()
	if v != 0x0100FF {
		t.Errorf("expected 0x0100FF, got 0x%06x", v)
	}
}

func TestCursor_Fixed1616(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want float64
	}{
		{"one", []byte{0x00, 0x01, 0x00, 0x00}, 1.0},
		{"one and a half", []byte{0x00, 0x01, 0x80, 0x00}, 1.5},
		{"negative one", []byte{0xFF, 0xFF, 0x00, 0x00}, -1.0},
		{"zero", []byte{0x00, 0x00, 0x00, 0x00}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cursorOver(tt.data)
			got, err := c.Fixed1616()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCursor_Float32(t *testing.T) {
	// 1.0 as IEEE binary32 big-endian.
	c := cursorOver([]byte{0x3F, 0x80, 0x00, 0x00})
	v, err := c.Float32()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1.0 {
		t.Errorf("expected 1.0, got %v", v)
	}
}

func TestCursor_Bit(t *testing.T) {
	c := cursorOver([]byte{0b0000_0101, 0b1000_0000})

	tests := []struct {
		index int64
		want  bool
	}{
		{0, true},
		{1, false},
		{2, true},
		{3, false},
		{15, true},
		{8, false},
	}

	for _, tt := range tests {
		got, err := c.Bit(tt.index)
		if err != nil {
			t.Fatalf("bit %d: unexpected error: %v", tt.index, err)
		}
		if got != tt.want {
			t.Errorf("bit %d: expected %v, got %v", tt.index, got, tt.want)
		}
	}

	if c.Position() != 0 {
		t.Errorf("Bit moved position to %d", c.Position())
	}
}

func TestCursor_StartsWith(t *testing.T) {
	c := cursorOver([]byte{'f', 't', 'y', 'p', 0x00})

	if _, err := c.Uint16(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Anchored at view start regardless of position.
	if !c.StartsWith([]byte("ftyp")) {
		t.Error("expected match at view start")
	}
	if c.StartsWith([]byte("moov")) {
		t.Error("unexpected match")
	}
	// Pattern longer than the view: false, no error.
	if c.StartsWith(make([]byte, 10)) {
		t.Error("expected false for pattern longer than view")
	}
	if c.Position() != 2 {
		t.Errorf("StartsWith moved position to %d", c.Position())
	}
}

func TestCursor_SkipClampsBackward(t *testing.T) {
	c := cursorOver([]byte{1, 2, 3, 4})

	if err := c.Skip(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Skip(-10); err != nil {
		t.Fatalf("backward skip should clamp, got error: %v", err)
	}
	if c.Position() != 0 {
		t.Errorf("expected position 0 after clamped skip, got %d", c.Position())
	}
}

func TestCursor_SkipForwardPastEnd(t *testing.T) {
	c := cursorOver([]byte{1, 2, 3, 4})

	if c.TrySkip(10) {
		t.Error("expected forward skip past end to fail")
	}
	if !c.TrySkip(4) {
		t.Error("expected skip to exact end to succeed")
	}
}

func TestCursor_SkipForwardWraps(t *testing.T) {
	// A forward delta big enough to wrap the int64 target is a bounds
	// violation, never a silent rewind to zero.
	c := cursorOver([]byte{1, 2, 3, 4})
	if err := c.Skip(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := c.Skip(math.MaxInt64)
	var be *types.BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BoundsError, got %v", err)
	}
	if c.Position() != 2 {
		t.Errorf("failed skip must not move the position, got %d", c.Position())
	}
}

func TestCursor_NegativeCount(t *testing.T) {
	c := cursorOver([]byte{1, 2, 3, 4})

	for name, read := range map[string]func() error{
		"Bytes":   func() error { _, err := c.Bytes(-1); return err },
		"BytesAt": func() error { _, err := c.BytesAt(0, -1); return err },
		"String":  func() error { _, err := c.String(-1, nil); return err },
		"ToArray": func() error { _, err := c.ToArray(0, -1); return err },
	} {
		t.Run(name, func(t *testing.T) {
			err := read()
			var be *types.BoundsError
			if !errors.As(err, &be) {
				t.Fatalf("expected *BoundsError, got %v", err)
			}
			if be.Count != -1 {
				t.Errorf("expected count -1 in the error, got %d", be.Count)
			}
		})
	}
	if c.Position() != 0 {
		t.Errorf("failed reads must not move the position, got %d", c.Position())
	}
}

func TestCursor_IsNearEnd(t *testing.T) {
	c := cursorOver([]byte{1, 2, 3, 4})

	if c.IsNearEnd(4) {
		t.Error("4 bytes remain, not near end for n=4")
	}
	if !c.IsNearEnd(5) {
		t.Error("fewer than 5 bytes remain")
	}
}

func TestCursor_Clone(t *testing.T) {
	c := cursorOver([]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55})

	if err := c.Skip(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	child := c.Clone(1, 2, false)
	if child.Start() != 3 {
		t.Errorf("expected child start 3, got %d", child.Start())
	}
	if child.Length() != 2 {
		t.Errorf("expected child length 2, got %d", child.Length())
	}

	v, err := child.Uint16()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x3344 {
		t.Errorf("expected 0x3344, got 0x%04x", v)
	}

	// Child is capped: reading past its length fails even though the
	// source has more bytes.
	if _, err := child.Uint8(); err == nil {
		t.Error("expected bounds error past child view")
	}

	// Parent position is untouched by child reads.
	if c.Position() != 2 {
		t.Errorf("parent position moved to %d", c.Position())
	}
}

func TestCursor_CloneFlipsByteOrder(t *testing.T) {
	c := cursorOver([]byte{0x01, 0x02})

	flipped := c.Clone(0, -1, true)
	if flipped.ByteOrder() != LittleEndian {
		t.Errorf("expected little-endian, got %v", flipped.ByteOrder())
	}

	v, _ := flipped.Uint16()
	if v != 0x0201 {
		t.Errorf("expected 0x0201, got 0x%04x", v)
	}

	inherited := c.Clone(0, -1, false)
	if inherited.ByteOrder() != BigEndian {
		t.Errorf("expected big-endian, got %v", inherited.ByteOrder())
	}
}

func TestCursor_EmptyBufferRead(t *testing.T) {
	c := cursorOver(nil)

	_, err := c.Uint8()
	var be *types.BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("expected BoundsError, got %v", err)
	}
	if be.MaxValid != -1 {
		t.Errorf("expected MaxValid -1 for empty buffer, got %d", be.MaxValid)
	}
}

func TestCursor_StreamSource(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02}
	c := NewCursor(source.NewStream(bytes.NewReader(data), 0))

	v, err := c.Uint32()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0xDEADBEEF {
		t.Errorf("expected 0xDEADBEEF, got 0x%08x", v)
	}

	// Explicit re-read of an already-buffered region.
	v8, err := c.Uint8At(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v8 != 0xDE {
		t.Errorf("expected 0xDE, got 0x%02x", v8)
	}
}
