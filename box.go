package mediameta

import (
	"github.com/simonhull/mediameta/internal/binary"
	"github.com/simonhull/mediameta/internal/bmff"
)

// Box is an alias to bmff.Box, one decoded node of the box tree.
// Re-exporting from internal/bmff to keep the public API in one package.
type Box = bmff.Box

// BoxType is an alias to bmff.BoxType, a 4-byte box type identifier.
type BoxType = bmff.BoxType

// TypeOf builds a BoxType from a 4-character string.
func TypeOf(s string) BoxType {
	return bmff.TypeOf(s)
}

// Cursor is an alias to binary.Cursor, the positioned byte-order-aware
// view handed out by Box.Payload. Custom box parsers pull typed fields
// from it.
type Cursor = binary.Cursor

// Endianness is an alias to binary.Endianness.
type Endianness = binary.Endianness

// Byte order constants for Cursor views.
const (
	BigEndian    = binary.BigEndian
	LittleEndian = binary.LittleEndian
)

// Decoder is an alias to bmff.Decoder, passed to custom box parsers.
type Decoder = bmff.Decoder

// ParseFunc is an alias to bmff.ParseFunc, the signature of a box payload
// parser registered with WithBoxParser.
type ParseFunc = bmff.ParseFunc

// Typed payload details produced by the built-in parsers.
type (
	// Ftyp is the decoded payload of an 'ftyp' box.
	Ftyp = bmff.Ftyp
	// Hdlr is the decoded payload of a 'hdlr' box.
	Hdlr = bmff.Hdlr
	// Pitm is the decoded payload of a 'pitm' box.
	Pitm = bmff.Pitm
	// Infe is the decoded payload of an 'infe' box.
	Infe = bmff.Infe
	// ItemReference is one decoded entry of an 'iref' box.
	ItemReference = bmff.ItemReference
)
