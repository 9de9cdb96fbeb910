package binary

import (
	"encoding/binary"
	"io"
)

// Writer wraps io.Writer with position tracking and endian-aware numeric
// writes. It is the counterpart of Cursor used to synthesize box
// structures (fixtures, round-trip checks, the dump tool's demo mode).
type Writer struct {
	w      io.Writer
	offset int64
	order  Endianness
}

// NewWriter creates a big-endian Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, order: BigEndian}
}

// SetByteOrder changes the writer's byte order.
func (w *Writer) SetByteOrder(order Endianness) { w.order = order }

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int64 { return w.offset }

// WriteBytes writes raw bytes.
func (w *Writer) WriteBytes(b []byte) error {
	n, err := w.w.Write(b)
	w.offset += int64(n)
	return err
}

// WriteString writes a string as raw bytes.
func (w *Writer) WriteString(s string) error {
	return w.WriteBytes([]byte(s))
}

// WriteZeros writes n zero bytes.
func (w *Writer) WriteZeros(n int) error {
	return w.WriteBytes(make([]byte, n))
}

// Write writes a numeric value of type T in the writer's byte order.
// T must be uint8, uint16, uint32, or uint64.
func Write[T uint8 | uint16 | uint32 | uint64](w *Writer, val T) error {
	var buf []byte

	var zero T
	switch any(zero).(type) {
	case uint8:
		buf = []byte{byte(val)}
	case uint16:
		buf = make([]byte, 2)
		if w.order == LittleEndian {
			binary.LittleEndian.PutUint16(buf, uint16(val))
		} else {
			binary.BigEndian.PutUint16(buf, uint16(val))
		}
	case uint32:
		buf = make([]byte, 4)
		if w.order == LittleEndian {
			binary.LittleEndian.PutUint32(buf, uint32(val))
		} else {
			binary.BigEndian.PutUint32(buf, uint32(val))
		}
	case uint64:
		buf = make([]byte, 8)
		if w.order == LittleEndian {
			binary.LittleEndian.PutUint64(buf, uint64(val))
		} else {
			binary.BigEndian.PutUint64(buf, uint64(val))
		}
	}

	return w.WriteBytes(buf)
}

// WriteUint24 writes the low 24 bits of val in the writer's byte order.
func (w *Writer) WriteUint24(val uint32) error {
	buf := make([]byte, 3)
	if w.order == LittleEndian {
		buf[0] = byte(val)
		buf[1] = byte(val >> 8)
		buf[2] = byte(val >> 16)
	} else {
		buf[0] = byte(val >> 16)
		buf[1] = byte(val >> 8)
		buf[2] = byte(val)
	}
	return w.WriteBytes(buf)
}
