package bmff

// Extent is the declared byte range a box or payload is confined to.
// Offsets are absolute within the source.
type Extent struct {
	Start  int64
	Length int64
}

// End returns the first offset past the extent.
func (e Extent) End() int64 {
	return e.Start + e.Length
}

// Remaining returns how many bytes remain between the given absolute
// position and the extent's end, never negative.
func (e Extent) Remaining(pos int64) int64 {
	r := e.End() - pos
	if r < 0 {
		return 0
	}
	return r
}

// Done reports whether the given absolute position has reached the
// extent's end. Decoding must stop exactly here.
func (e Extent) Done(pos int64) bool {
	return pos >= e.End()
}

// Contains reports whether the child extent lies fully inside e.
func (e Extent) Contains(child Extent) bool {
	return child.Start >= e.Start && child.End() <= e.End()
}
