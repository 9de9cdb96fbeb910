package bmff

import (
	"github.com/simonhull/mediameta/internal/binary"
)

// Hdlr is the decoded payload of a 'hdlr' box: which kind of metadata the
// enclosing 'meta' box carries ("pict" for HEIF images) plus an optional
// human-readable name.
type Hdlr struct {
	HandlerType string
	Name        string
}

// ParseHdlr decodes a 'hdlr' payload.
func ParseHdlr(d *Decoder, b *Box, depth int) error {
	p := b.Payload()

	// pre_defined
	if err := p.Skip(4); err != nil {
		return err
	}
	handler, err := p.String(4, nil)
	if err != nil {
		return err
	}
	// three reserved 32-bit words
	if err := p.Skip(12); err != nil {
		return err
	}
	name, err := p.CString(p.Remaining(), nil)
	if err != nil {
		return err
	}

	b.Detail = &Hdlr{HandlerType: handler, Name: name}
	return nil
}

// Pitm is the decoded payload of a 'pitm' box: the ID of the primary item.
type Pitm struct {
	ItemID uint32
}

// ParsePitm decodes a 'pitm' payload. The ID width depends on the box
// version: 16 bits for version 0, 32 bits from version 1 on.
func ParsePitm(d *Decoder, b *Box, depth int) error {
	p := b.Payload()

	id, err := readItemID(p, b.Version == 0)
	if err != nil {
		return err
	}
	b.Detail = &Pitm{ItemID: id}
	return nil
}

// Infe is the decoded payload of an 'infe' (item info entry) box.
type Infe struct {
	ItemID          uint32
	ProtectionIndex uint16
	ItemType        string // present from version 2 on
	ItemName        string
}

// ParseInfe decodes an 'infe' payload. Versions 2 and 3 carry a 4-byte
// item type; earlier versions go straight from the protection index to
// the name.
func ParseInfe(d *Decoder, b *Box, depth int) error {
	p := b.Payload()

	info := &Infe{}

	id, err := readItemID(p, b.Version < 3)
	if err != nil {
		return err
	}
	info.ItemID = id

	if info.ProtectionIndex, err = p.Uint16(); err != nil {
		return err
	}
	if b.Version >= 2 {
		if info.ItemType, err = p.String(4, nil); err != nil {
			return err
		}
	}
	if info.ItemName, err = p.CString(p.Remaining(), nil); err != nil {
		return err
	}

	b.Detail = info
	return nil
}

// readItemID reads a 16-bit or 32-bit item ID, widened to uint32.
func readItemID(p *binary.Cursor, narrow bool) (uint32, error) {
	if narrow {
		v, err := p.Uint16()
		return uint32(v), err
	}
	return p.Uint32()
}
