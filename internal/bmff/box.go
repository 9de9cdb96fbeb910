// Package bmff decodes ISO Base Media File Format box trees: the nested,
// length-prefixed containers underlying HEIF, MP4, and related formats.
package bmff

import (
	"github.com/simonhull/mediameta/internal/binary"
)

// BoxType is a 4-byte box type identifier.
type BoxType [4]byte

// TypeOf builds a BoxType from a 4-character string.
func TypeOf(s string) BoxType {
	var t BoxType
	copy(t[:], s)
	return t
}

func (t BoxType) String() string {
	return string(t[:])
}

// Known box types.
var (
	TypeFtyp = TypeOf("ftyp")
	TypeMeta = TypeOf("meta")
	TypeHdlr = TypeOf("hdlr")
	TypePitm = TypeOf("pitm")
	TypeIinf = TypeOf("iinf")
	TypeInfe = TypeOf("infe")
	TypeIref = TypeOf("iref")
	TypeIloc = TypeOf("iloc")
	TypeIprp = TypeOf("iprp")
	TypeIpco = TypeOf("ipco")
	TypeMoov = TypeOf("moov")
	TypeTrak = TypeOf("trak")
	TypeMdia = TypeOf("mdia")
	TypeMinf = TypeOf("minf")
	TypeStbl = TypeOf("stbl")
	TypeDinf = TypeOf("dinf")
	TypeEdts = TypeOf("edts")
	TypeUdta = TypeOf("udta")
	TypeMdat = TypeOf("mdat")
	TypeFree = TypeOf("free")
	TypeSkip = TypeOf("skip")
	TypeUUID = TypeOf("uuid")
)

// IsContainer returns true if the box type holds child boxes.
func IsContainer(t BoxType) bool {
	switch t {
	case TypeMeta, TypeMoov, TypeTrak, TypeMdia, TypeMinf,
		TypeStbl, TypeDinf, TypeEdts, TypeUdta, TypeIinf,
		TypeIprp, TypeIpco:
		return true
	}
	return false
}

// IsFullBox returns true if the box type carries a version byte and 24
// flag bits after its type field.
func IsFullBox(t BoxType) bool {
	switch t {
	case TypeMeta, TypeHdlr, TypePitm, TypeIinf, TypeInfe,
		TypeIref, TypeIloc:
		return true
	}
	return false
}

// Box is one decoded node of the box tree.
//
// A Box exclusively owns its children; leaf payloads are not copied out of
// the source — Payload derives a cursor scoped exactly to the payload
// bytes for on-demand typed field extraction.
type Box struct {
	// Type is the 4-byte type code.
	Type BoxType

	// Extent is the byte range of the whole box, header included.
	Extent Extent

	// HeaderLen is the number of header bytes: size + type, plus large
	// size, extended type, and version/flags fields when present.
	HeaderLen int64

	// Extended is true when the 64-bit large-size field was present.
	Extended bool

	// OpenEnded is true when the declared size was zero, meaning the box
	// runs to the end of its enclosing extent. Extent.Length holds the
	// resolved length.
	OpenEnded bool

	// UUID is the 16-byte extended type, present only when Type is the
	// reserved 'uuid' code.
	UUID    [16]byte
	HasUUID bool

	// Version and Flags are set for full boxes.
	Version uint8
	Flags   uint32

	// Children holds decoded child boxes for container types, in stream
	// order.
	Children []*Box

	// Detail holds the typed result of a registered payload parser
	// (*Ftyp, *Hdlr, *ItemReferences, ...), nil for opaque boxes.
	Detail any

	payload *binary.Cursor // pristine view over the payload, position 0
}

// PayloadLen returns the payload length in bytes.
func (b *Box) PayloadLen() int64 {
	return b.Extent.Length - b.HeaderLen
}

// Payload returns a fresh cursor scoped exactly to the box's payload.
// Each call derives an independent view; callers may read it in any order
// without affecting the box or one another.
func (b *Box) Payload() *binary.Cursor {
	return b.payload.Clone(0, -1, false)
}

// RawHeader materializes the box's header bytes.
func (b *Box) RawHeader() ([]byte, error) {
	return b.payload.Clone(-b.HeaderLen, b.HeaderLen, false).ToArray(0, b.HeaderLen)
}

// RawPayload materializes the box's payload bytes.
func (b *Box) RawPayload() ([]byte, error) {
	return b.payload.ToArray(0, b.PayloadLen())
}
