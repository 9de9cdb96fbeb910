package binary

import (
	"encoding/binary"
	"math"
)

// u16 assembles two bytes per the cursor's byte order.
func (c *Cursor) u16(b []byte) uint16 {
	if c.order == LittleEndian {
		return binary.LittleEndian.Uint16(b)
	}
	return binary.BigEndian.Uint16(b)
}

// u24 assembles three bytes per the cursor's byte order, widened as
// unsigned into a uint32.
func (c *Cursor) u24(b []byte) uint32 {
	if c.order == LittleEndian {
		return uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// u32 assembles four bytes per the cursor's byte order.
func (c *Cursor) u32(b []byte) uint32 {
	if c.order == LittleEndian {
		return binary.LittleEndian.Uint32(b)
	}
	return binary.BigEndian.Uint32(b)
}

// u64 assembles eight bytes per the cursor's byte order.
func (c *Cursor) u64(b []byte) uint64 {
	if c.order == LittleEndian {
		return binary.LittleEndian.Uint64(b)
	}
	return binary.BigEndian.Uint64(b)
}

// Uint8 reads one byte sequentially.
func (c *Cursor) Uint8() (uint8, error) {
	b, err := c.next(1, "uint8")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint8At reads one byte at the given offset.
func (c *Cursor) Uint8At(off int64) (uint8, error) {
	b, err := c.read(off, 1, "uint8")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Int8 reads one signed byte sequentially.
func (c *Cursor) Int8() (int8, error) {
	v, err := c.Uint8()
	return int8(v), err
}

// Int8At reads one signed byte at the given offset.
func (c *Cursor) Int8At(off int64) (int8, error) {
	v, err := c.Uint8At(off)
	return int8(v), err
}

// Uint16 reads a 16-bit unsigned integer sequentially.
func (c *Cursor) Uint16() (uint16, error) {
	b, err := c.next(2, "uint16")
	if err != nil {
		return 0, err
	}
	return c.u16(b), nil
}

// Uint16At reads a 16-bit unsigned integer at the given offset.
func (c *Cursor) Uint16At(off int64) (uint16, error) {
	b, err := c.read(off, 2, "uint16")
	if err != nil {
		return 0, err
	}
	return c.u16(b), nil
}

// Int16 reads a 16-bit signed integer sequentially.
func (c *Cursor) Int16() (int16, error) {
	v, err := c.Uint16()
	return int16(v), err
}

// Int16At reads a 16-bit signed integer at the given offset.
func (c *Cursor) Int16At(off int64) (int16, error) {
	v, err := c.Uint16At(off)
	return int16(v), err
}

// Uint24 reads a 24-bit unsigned integer sequentially, widened into a
// uint32.
func (c *Cursor) Uint24() (uint32, error) {
	b, err := c.next(3, "uint24")
	if err != nil {
		return 0, err
	}
	return c.u24(b), nil
}

// Uint24At reads a 24-bit unsigned integer at the given offset.
func (c *Cursor) Uint24At(off int64) (uint32, error) {
	b, err := c.read(off, 3, "uint24")
	if err != nil {
		return 0, err
	}
	return c.u24(b), nil
}

// Int24 reads a 24-bit value sequentially, widened as unsigned into an
// int32 (no sign extension).
func (c *Cursor) Int24() (int32, error) {
	v, err := c.Uint24()
	return int32(v), err
}

// Int24At reads a 24-bit value at the given offset, widened as unsigned.
func (c *Cursor) Int24At(off int64) (int32, error) {
	v, err := c.Uint24At(off)
	return int32(v), err
}

// Uint32 reads a 32-bit unsigned integer sequentially.
func (c *Cursor) Uint32() (uint32, error) {
	b, err := c.next(4, "uint32")
	if err != nil {
		return 0, err
	}
	return c.u32(b), nil
}

// Uint32At reads a 32-bit unsigned integer at the given offset.
func (c *Cursor) Uint32At(off int64) (uint32, error) {
	b, err := c.read(off, 4, "uint32")
	if err != nil {
		return 0, err
	}
	return c.u32(b), nil
}

// Int32 reads a 32-bit signed integer sequentially.
func (c *Cursor) Int32() (int32, error) {
	v, err := c.Uint32()
	return int32(v), err
}

// Int32At reads a 32-bit signed integer at the given offset.
func (c *Cursor) Int32At(off int64) (int32, error) {
	v, err := c.Uint32At(off)
	return int32(v), err
}

// Uint64 reads a 64-bit unsigned integer sequentially.
func (c *Cursor) Uint64() (uint64, error) {
	b, err := c.next(8, "uint64")
	if err != nil {
		return 0, err
	}
	return c.u64(b), nil
}

// Uint64At reads a 64-bit unsigned integer at the given offset.
func (c *Cursor) Uint64At(off int64) (uint64, error) {
	b, err := c.read(off, 8, "uint64")
	if err != nil {
		return 0, err
	}
	return c.u64(b), nil
}

// Int64 reads a 64-bit signed integer sequentially.
func (c *Cursor) Int64() (int64, error) {
	v, err := c.Uint64()
	return int64(v), err
}

// Int64At reads a 64-bit signed integer at the given offset.
func (c *Cursor) Int64At(off int64) (int64, error) {
	v, err := c.Uint64At(off)
	return int64(v), err
}

// Fixed1616 reads a signed 15.16 fixed-point value sequentially: one sign
// bit, 15 integer bits, 16 fractional bits, decoded as a 32-bit field and
// converted to a float.
func (c *Cursor) Fixed1616() (float64, error) {
	v, err := c.Int32()
	if err != nil {
		return 0, err
	}
	return float64(v) / 65536.0, nil
}

// Fixed1616At reads a signed 15.16 fixed-point value at the given offset.
func (c *Cursor) Fixed1616At(off int64) (float64, error) {
	v, err := c.Int32At(off)
	if err != nil {
		return 0, err
	}
	return float64(v) / 65536.0, nil
}

// Float32 reads an IEEE binary32 value sequentially. The byte order
// applies to the bit pattern, not the float value.
func (c *Cursor) Float32() (float32, error) {
	v, err := c.Uint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// Float32At reads an IEEE binary32 value at the given offset.
func (c *Cursor) Float32At(off int64) (float32, error) {
	v, err := c.Uint32At(off)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// Float64 reads an IEEE binary64 value sequentially.
func (c *Cursor) Float64() (float64, error) {
	v, err := c.Uint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// Float64At reads an IEEE binary64 value at the given offset.
func (c *Cursor) Float64At(off int64) (float64, error) {
	v, err := c.Uint64At(off)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
