package binary

import (
	"bytes"
	"testing"

	"github.com/simonhull/mediameta/internal/source"
)

func TestWriter_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := Write[uint32](w, 0x12345678); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Write[uint16](w, 0xABCD); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.WriteUint24(0x0001FF); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.WriteString("ftyp"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Offset() != 13 {
		t.Errorf("expected offset 13, got %d", w.Offset())
	}

	c := NewCursor(source.NewBytes(buf.Bytes()))
	v32, _ := c.Uint32()
	v16, _ := c.Uint16()
	v24, _ := c.Uint24()
	s, _ := c.String(4, nil)

	if v32 != 0x12345678 || v16 != 0xABCD || v24 != 0x0001FF || s != "ftyp" {
		t.Errorf("round trip mismatch: %08x %04x %06x %q", v32, v16, v24, s)
	}
}

func TestWriter_LittleEndian(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.SetByteOrder(LittleEndian)

	if err := Write[uint16](w, 0x0102); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x02, 0x01}) {
		t.Errorf("expected [02 01], got %v", buf.Bytes())
	}
}
