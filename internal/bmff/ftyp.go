package bmff

// Ftyp is the decoded payload of an 'ftyp' box: the file's major brand,
// minor version, and compatible brand list.
type Ftyp struct {
	MajorBrand   string
	MinorVersion uint32
	Compatible   []string
}

// ParseFtyp decodes an 'ftyp' payload.
func ParseFtyp(d *Decoder, b *Box, depth int) error {
	p := b.Payload()

	major, err := p.String(4, nil)
	if err != nil {
		return err
	}
	minor, err := p.Uint32()
	if err != nil {
		return err
	}

	ftyp := &Ftyp{MajorBrand: major, MinorVersion: minor}
	for !p.IsNearEnd(4) {
		brand, err := p.String(4, nil)
		if err != nil {
			return err
		}
		ftyp.Compatible = append(ftyp.Compatible, brand)
	}
	b.Detail = ftyp
	return nil
}
