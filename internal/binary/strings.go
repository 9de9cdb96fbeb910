package binary

import (
	"fmt"

	"golang.org/x/text/encoding"
)

// decode converts raw bytes to a string using the given text encoding.
// A nil encoding means the bytes are already UTF-8.
func decode(b []byte, enc encoding.Encoding) (string, error) {
	if enc == nil {
		return string(b), nil
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode string: %w", err)
	}
	return string(out), nil
}

// String reads count bytes sequentially and decodes them with the given
// text encoding. A nil encoding means UTF-8.
func (c *Cursor) String(count int64, enc encoding.Encoding) (string, error) {
	b, err := c.next(count, "string")
	if err != nil {
		return "", err
	}
	return decode(b, enc)
}

// StringAt reads count bytes at the given offset and decodes them with
// the given text encoding, without moving the sequential position.
func (c *Cursor) StringAt(off, count int64, enc encoding.Encoding) (string, error) {
	b, err := c.read(off, count, "string")
	if err != nil {
		return "", err
	}
	return decode(b, enc)
}

// CString reads a null-terminated string of at most maxLen bytes
// sequentially. The bytes before the first zero byte are decoded with the
// given encoding (nil means UTF-8); the terminator is consumed but not
// included. Hitting maxLen or the view's end before a terminator is not
// an error: the bytes accumulated so far are returned.
func (c *Cursor) CString(maxLen int64, enc encoding.Encoding) (string, error) {
	raw := make([]byte, 0, min(max(maxLen, 0), 32))
	for int64(len(raw)) < maxLen {
		b, err := c.next(1, "string")
		if err != nil {
			break
		}
		if b[0] == 0 {
			break
		}
		raw = append(raw, b[0])
	}
	return decode(raw, enc)
}

// Line reads bytes up to the next CR, LF, or the view's end. A CR
// followed by LF consumes both; a lone CR pushes the peeked byte back by
// rewinding the sequential position. The second return value is false
// only when zero bytes were accumulated and the view was already
// exhausted.
func (c *Cursor) Line() (string, bool) {
	var raw []byte
	for {
		b, err := c.next(1, "line")
		if err != nil {
			if len(raw) == 0 {
				return "", false
			}
			return string(raw), true
		}
		switch b[0] {
		case '\n':
			return string(raw), true
		case '\r':
			peek, err := c.next(1, "line")
			if err == nil && peek[0] != '\n' {
				c.pos--
			}
			return string(raw), true
		default:
			raw = append(raw, b[0])
		}
	}
}
