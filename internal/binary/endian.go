package binary

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: ISO-BMFF box headers, most network protocols. The default
	// for every new cursor.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: some vendor payloads embedded inside boxes (e.g. Exif with
	// an "II" byte-order mark).
	LittleEndian
)

// Flip returns the opposite byte order.
func (e Endianness) Flip() Endianness {
	if e == BigEndian {
		return LittleEndian
	}
	return BigEndian
}

// String returns a human-readable name for the byte order.
func (e Endianness) String() string {
	if e == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}
