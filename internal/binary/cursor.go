// Package binary provides type-safe binary reading primitives with bounds checking
package binary

import (
	"bytes"

	"github.com/simonhull/mediameta/internal/source"
	"github.com/simonhull/mediameta/internal/types"
)

// Cursor is a positioned, byte-order-aware view over a byte source.
//
// A Cursor is a view, not an owner: many cursors may share one source.
// Each view has its own zero point (start), sequential position, optional
// length cap, and byte order.
//
// Every typed accessor comes in two families:
//
//   - Sequential (Uint16, Float64, Bytes, ...): reads at the current
//     position and advances it by the decoded width. The position moves
//     only on success.
//   - Explicit (Uint16At, Float64At, BytesAt, ...): reads at an offset
//     relative to the view's zero and never moves the position.
//
// Deriving a child view over a sub-range (a box payload, for example) is
// done with Clone.
type Cursor struct {
	src    source.Source
	start  int64 // absolute offset of the view's zero
	pos    int64 // sequential position, relative to start
	length int64 // view length cap; -1 = to end of source
	order  Endianness
}

// NewCursor creates a big-endian cursor over an entire source.
func NewCursor(src source.Source) *Cursor {
	return &Cursor{src: src, length: -1, order: BigEndian}
}

// NewCursorRange creates a big-endian cursor over a sub-range of a source.
// A negative length means "to the end of the source".
func NewCursorRange(src source.Source, start, length int64) *Cursor {
	if length < 0 {
		length = -1
	}
	return &Cursor{src: src, start: start, length: length, order: BigEndian}
}

// ByteOrder returns the cursor's byte order.
func (c *Cursor) ByteOrder() Endianness { return c.order }

// SetByteOrder changes the cursor's byte order.
func (c *Cursor) SetByteOrder(order Endianness) { c.order = order }

// Position returns the sequential position, relative to the view's zero.
func (c *Cursor) Position() int64 { return c.pos }

// Start returns the absolute offset of the view's zero in the source.
func (c *Cursor) Start() int64 { return c.start }

// Length returns the view's length cap, or -1 when the view extends to
// the end of the source.
func (c *Cursor) Length() int64 { return c.length }

// ViewLen returns the view's total length and whether it is actually
// known. The length is known when the view carries an explicit cap or the
// source's true length is known; otherwise the high-water mark stands in
// and the second return value is false.
func (c *Cursor) ViewLen() (int64, bool) {
	if c.length >= 0 {
		return c.length, true
	}
	return c.src.Len() - c.start, c.src.LengthKnown()
}

// Drain buffers a forward-only source through to its end and returns the
// source's total length. For sources whose length is already known it
// returns immediately.
func (c *Cursor) Drain() (int64, error) {
	buf := make([]byte, 32*1024)
	for !c.src.LengthKnown() {
		n, err := c.src.ReadAt(buf, c.src.Len(), true)
		if err != nil {
			return 0, err
		}
		if n == 0 && !c.src.LengthKnown() {
			break
		}
	}
	return c.src.Len(), nil
}

// Remaining returns how many bytes remain between the sequential position
// and the view's end. For an uncapped view over a forward-only source this
// is measured against the high-water mark, not the true stream length.
func (c *Cursor) Remaining() int64 {
	end := c.length
	if end < 0 {
		end = c.src.Len() - c.start
	}
	r := end - c.pos
	if r < 0 {
		return 0
	}
	return r
}

// IsNearEnd reports whether fewer than n bytes remain in the view.
// Parsers use this to decide whether reading further fields is even worth
// attempting.
func (c *Cursor) IsNearEnd(n int64) bool {
	return c.Remaining() < n
}

// read materializes count bytes at the given view-relative offset.
// It validates the range before allocating so doomed reads cost nothing.
func (c *Cursor) read(off, count int64, what string) ([]byte, error) {
	if off < 0 || count < 0 {
		return nil, &types.BoundsError{What: what, Offset: c.start + off, Count: count, MaxValid: c.maxValid()}
	}
	// Written as a subtraction so an absurd off+count cannot wrap int64.
	if c.length >= 0 && count > c.length-off {
		return nil, &types.BoundsError{What: what, Offset: c.start + off, Count: count, MaxValid: c.maxValid()}
	}
	abs := c.start + off
	avail, err := c.src.ValidateRange(abs, count)
	if err != nil {
		return nil, err
	}
	if avail < count {
		return nil, &types.BoundsError{What: what, Offset: abs, Count: count, MaxValid: c.maxValid()}
	}
	buf := make([]byte, count)
	if _, err := c.src.ReadAt(buf, abs, false); err != nil {
		return nil, err
	}
	return buf, nil
}

// maxValid returns the highest valid absolute offset of the view.
func (c *Cursor) maxValid() int64 {
	if c.length >= 0 {
		end := c.start + c.length
		if srcEnd := c.src.Len(); c.src.LengthKnown() && srcEnd < end {
			end = srcEnd
		}
		return end - 1
	}
	return c.src.Len() - 1
}

// next reads count bytes at the sequential position and advances it.
// The position moves only when the read succeeds.
func (c *Cursor) next(count int64, what string) ([]byte, error) {
	buf, err := c.read(c.pos, count, what)
	if err != nil {
		return nil, err
	}
	c.pos += count
	return buf, nil
}

// Bytes reads count raw bytes sequentially.
func (c *Cursor) Bytes(count int64) ([]byte, error) {
	return c.next(count, "bytes")
}

// BytesAt reads count raw bytes at the given offset without moving the
// sequential position.
func (c *Cursor) BytesAt(off, count int64) ([]byte, error) {
	return c.read(off, count, "bytes")
}

// Bit reads byte off/8 and tests bit off%8, counted from the
// least-significant end of that byte. The sequential position is not
// moved.
func (c *Cursor) Bit(off int64) (bool, error) {
	b, err := c.read(off/8, 1, "bit")
	if err != nil {
		return false, err
	}
	return b[0]>>(off%8)&1 == 1, nil
}

// StartsWith reports whether the view begins with the given pattern.
// The comparison is anchored at the view's zero, not the sequential
// position, and the position is not disturbed. A view shorter than the
// pattern yields false without attempting the read.
func (c *Cursor) StartsWith(pattern []byte) bool {
	n := int64(len(pattern))
	if n == 0 {
		return true
	}
	avail, err := c.src.ValidateRange(c.start, n)
	if err != nil || avail < n {
		return false
	}
	if c.length >= 0 && n > c.length {
		return false
	}
	b, err := c.read(0, n, "pattern")
	if err != nil {
		return false
	}
	return bytes.Equal(b, pattern)
}

// Skip moves the sequential position by delta bytes. Negative deltas clamp
// at the view's zero rather than failing. Forward skips delegate to the
// source for any necessary buffering and fail when the target is past the
// available data of a bounded view.
func (c *Cursor) Skip(delta int64) error {
	target := c.pos + delta
	if delta < 0 {
		if target < 0 {
			target = 0
		}
		c.pos = target
		return nil
	}
	if target < 0 {
		// A forward delta large enough to wrap int64 cannot name a real
		// offset; it is a bounds violation, not a rewind.
		return &types.BoundsError{What: "skip", Offset: c.start + c.pos, Count: delta, MaxValid: c.maxValid()}
	}
	if c.length >= 0 && target > c.length {
		return &types.BoundsError{What: "skip", Offset: c.start + c.pos, Count: delta, MaxValid: c.maxValid()}
	}
	if target > c.pos {
		// One-byte probe at the last skipped offset forces a forward-only
		// source to buffer through the skipped region.
		if _, err := c.read(target-1, 1, "skip"); err != nil {
			return err
		}
	}
	c.pos = target
	return nil
}

// TrySkip is the non-failing variant of Skip, reporting success as a value.
func (c *Cursor) TrySkip(delta int64) bool {
	return c.Skip(delta) == nil
}

// Clone derives a new cursor whose zero is the current absolute position
// plus off. A negative length means "everything remaining from there";
// flip inverts the byte order, otherwise it is inherited. The derived
// cursor shares the source but has fully independent position state.
func (c *Cursor) Clone(off, length int64, flip bool) *Cursor {
	start := c.start + c.pos + off
	if length < 0 {
		if c.length >= 0 {
			length = c.length - (c.pos + off)
			if length < 0 {
				length = 0
			}
		} else {
			length = -1
		}
	}
	order := c.order
	if flip {
		order = order.Flip()
	}
	return &Cursor{src: c.src, start: start, length: length, order: order}
}

// ToArray materializes the byte range [start, start+count) of the view.
func (c *Cursor) ToArray(start, count int64) ([]byte, error) {
	return c.read(start, count, "range")
}
