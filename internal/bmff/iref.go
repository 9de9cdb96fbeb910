package bmff

// ItemReference is the decoded payload of one reference entry inside an
// 'iref' box: a typed link from one item to one or more others (for HEIF:
// 'thmb' thumbnail-of, 'cdsc' content-describes, 'dimg' derived-image).
type ItemReference struct {
	ReferenceType string
	FromItemID    uint32
	ToItemIDs     []uint32
}

// ParseIref decodes an 'iref' payload: a homogeneous list of
// SingleItemTypeReference child boxes, repeated until the parent extent
// is exhausted.
//
// The ID width of every child depends on the parent's version (16-bit for
// version 0, 32-bit from version 1), so the version is passed through to
// child decoding. A malformed child stops further list growth; the
// children decoded before it are kept.
func ParseIref(d *Decoder, b *Box, depth int) error {
	p := b.Payload()
	ext := Extent{Start: p.Start(), Length: b.PayloadLen()}

	for {
		pos := p.Start() + p.Position()
		if ext.Done(pos) {
			break
		}
		if ext.Remaining(pos) < minHeaderLen {
			d.warn("children", pos, "%d trailing bytes are too short for a reference entry",
				ext.Remaining(pos))
			break
		}

		size32, err := p.Uint32()
		if err != nil {
			d.warn("children", pos, "truncated reference entry: %v", err)
			break
		}
		refType, err := p.String(4, nil)
		if err != nil {
			d.warn("children", pos, "truncated reference entry: %v", err)
			break
		}

		child := &Box{
			Type:      TypeOf(refType),
			Extent:    Extent{Start: pos, Length: int64(size32)},
			HeaderLen: minHeaderLen,
			Version:   b.Version,
			Flags:     b.Flags,
		}
		if int64(size32) < minHeaderLen || child.Extent.End() > ext.End() {
			d.warn("children", pos, "'%s' reference entry size %d is inconsistent with its parent",
				refType, size32)
			break
		}
		child.payload = p.Clone(0, child.PayloadLen(), false)

		ref := &ItemReference{ReferenceType: refType}
		cp := child.Payload()

		if ref.FromItemID, err = readItemID(cp, b.Version == 0); err != nil {
			d.warn("children", pos, "'%s' reference entry: %v", refType, err)
			break
		}
		count, err := cp.Uint16()
		if err != nil {
			d.warn("children", pos, "'%s' reference entry: %v", refType, err)
			break
		}
		ok := true
		for i := 0; i < int(count); i++ {
			to, err := readItemID(cp, b.Version == 0)
			if err != nil {
				d.warn("children", pos, "'%s' reference entry: %v", refType, err)
				ok = false
				break
			}
			ref.ToItemIDs = append(ref.ToItemIDs, to)
		}
		if !ok {
			break
		}

		child.Detail = ref
		b.Children = append(b.Children, child)

		if !p.TrySkip(child.PayloadLen()) {
			d.warn("children", pos, "'%s' reference entry payload truncated", refType)
			break
		}
	}
	return nil
}
