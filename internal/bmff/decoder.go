package bmff

import (
	"fmt"
	"math"

	"github.com/simonhull/mediameta/internal/binary"
	"github.com/simonhull/mediameta/internal/types"
)

// DefaultMaxDepth bounds box nesting. Real containers nest shallowly;
// inputs deeper than this are treated as malformed.
const DefaultMaxDepth = 64

// minHeaderLen is the smallest possible box header: 32-bit size + type.
const minHeaderLen = 8

// Decoder walks a cursor and produces a tree of Box records.
//
// Decoding is a single linear pass: sibling boxes decode in stream order,
// containers recurse into their payloads, and unknown types fall back to
// opaque leaves. Structural problems never abort the walk as a whole —
// the malformed box is reported as a warning, the tree built so far is
// preserved, and siblings continue whenever the failing box's length
// could be independently determined.
type Decoder struct {
	reg      *Registry
	maxDepth int
	warnings []types.Warning
}

// NewDecoder creates a Decoder. A nil registry selects DefaultRegistry;
// maxDepth <= 0 selects DefaultMaxDepth.
func NewDecoder(reg *Registry, maxDepth int) *Decoder {
	if reg == nil {
		reg = DefaultRegistry()
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Decoder{reg: reg, maxDepth: maxDepth}
}

// Warnings returns the non-fatal issues collected during decoding.
func (d *Decoder) Warnings() []types.Warning {
	return d.warnings
}

func (d *Decoder) warn(stage string, offset int64, format string, args ...any) {
	d.warnings = append(d.warnings, types.Warning{
		Stage:   stage,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
	})
}

// Decode decodes the sequence of top-level boxes the cursor is positioned
// at, until the cursor's view is exhausted.
func (d *Decoder) Decode(c *binary.Cursor) []*Box {
	ext := Extent{Start: c.Start() + c.Position(), Length: -1}
	if viewLen, known := c.ViewLen(); known {
		ext.Length = viewLen - c.Position()
	}
	return d.decodeChildren(c, ext, 1)
}

// decodeChildren repeats single-box decoding until the enclosing extent
// is exhausted. ext.Length < 0 means the end is unknown (forward-only
// source, not yet drained): decoding continues until the data runs out.
func (d *Decoder) decodeChildren(c *binary.Cursor, ext Extent, depth int) []*Box {
	var out []*Box
	for {
		pos := c.Start() + c.Position()
		if ext.Length >= 0 {
			rem := ext.Remaining(pos)
			if rem == 0 {
				break
			}
			if rem < minHeaderLen {
				d.warn("children", pos, "%d trailing bytes are too short for a box header", rem)
				break
			}
		}
		box, cont := d.decodeBox(c, ext, depth)
		if box != nil {
			out = append(out, box)
		}
		if !cont {
			break
		}
	}
	return out
}

// decodeBox decodes one box: header, dispatch, payload skip. It returns
// the decoded box (nil when the box was malformed and omitted) and
// whether sibling decoding can continue.
func (d *Decoder) decodeBox(c *binary.Cursor, parent Extent, depth int) (*Box, bool) {
	start := c.Start() + c.Position()

	size32, err := c.Uint32()
	if err != nil {
		// A clean end of an unbounded extent is not an error: the read
		// failed with zero bytes consumed at a box boundary.
		if parent.Length >= 0 || c.Remaining() > 0 {
			d.warn("header", start, "truncated box header: %v", err)
		}
		return nil, false
	}
	typeBytes, err := c.Bytes(4)
	if err != nil {
		d.warn("header", start, "truncated box header: %v", err)
		return nil, false
	}

	box := &Box{HeaderLen: minHeaderLen}
	copy(box.Type[:], typeBytes)

	size := int64(size32)
	switch size32 {
	case 1:
		// 64-bit large size follows; it covers the whole box including
		// the 16 header bytes consumed so far.
		large, err := c.Uint64()
		if err != nil {
			d.warn("header", start, "truncated large-size field: %v", err)
			return nil, false
		}
		box.HeaderLen = 16
		box.Extended = true
		size = int64(large)
	case 0:
		// The box runs to the end of the enclosing extent and is by
		// construction the last one decoded within it.
		box.OpenEnded = true
		if parent.Length >= 0 {
			size = parent.End() - start
		} else {
			srcLen, err := c.Drain()
			if err != nil {
				d.warn("header", start, "draining open-ended box: %v", err)
				return nil, false
			}
			size = srcLen - start
		}
	}

	if size < box.HeaderLen {
		d.warn("header", start, "'%s' box declares size %d, smaller than its %d header bytes",
			box.Type, size, box.HeaderLen)
		return nil, false
	}
	// A size that overflows start+size cannot describe a real extent, and
	// the wrapped end offset would defeat every downstream range check.
	if size > math.MaxInt64-start {
		d.warn("header", start, "'%s' box declares size %d, overflowing its offset %d",
			box.Type, size, start)
		return nil, false
	}
	box.Extent = Extent{Start: start, Length: size}

	if box.Type == TypeUUID {
		if size < box.HeaderLen+16 {
			d.warn("header", start, "'uuid' box too small for its 16-byte extended type")
			return nil, d.skipTo(c, box.Extent)
		}
		ext, err := c.Bytes(16)
		if err != nil {
			d.warn("header", start, "truncated extended type: %v", err)
			return nil, false
		}
		copy(box.UUID[:], ext)
		box.HasUUID = true
		box.HeaderLen += 16
	}

	if IsFullBox(box.Type) {
		if size < box.HeaderLen+4 {
			d.warn("header", start, "'%s' box declares size %d, too small for its version and flags",
				box.Type, size)
			return nil, d.skipTo(c, box.Extent)
		}
		version, err := c.Uint8()
		if err != nil {
			d.warn("header", start, "truncated full-box header: %v", err)
			return nil, false
		}
		flags, err := c.Uint24()
		if err != nil {
			d.warn("header", start, "truncated full-box header: %v", err)
			return nil, false
		}
		box.Version = version
		box.Flags = flags
		box.HeaderLen += 4
	}

	// A child extending past its parent is a failure for that child, not
	// a crash; nothing after it is reachable.
	if parent.Length >= 0 && box.Extent.End() > parent.End() {
		d.warn("header", start, "'%s' box end %d exceeds parent extent end %d",
			box.Type, box.Extent.End(), parent.End())
		return nil, false
	}

	payloadLen := size - box.HeaderLen
	box.payload = c.Clone(0, payloadLen, false)

	if fn := d.reg.Get(box.Type); fn != nil {
		if err := fn(d, box, depth); err != nil {
			d.warn("payload", start, "'%s' box payload: %v", box.Type, err)
		}
	}

	// Advance past the payload regardless of how it was interpreted.
	if err := c.Skip(payloadLen); err != nil {
		d.warn("payload", start, "'%s' box payload truncated: %v", box.Type, err)
		return box, false
	}
	return box, true
}

// skipTo advances the cursor to the end of the given extent so sibling
// decoding can continue after a malformed box of known length. Returns
// whether the skip succeeded.
func (d *Decoder) skipTo(c *binary.Cursor, ext Extent) bool {
	pos := c.Start() + c.Position()
	return c.TrySkip(ext.End() - pos)
}

// ParseContainer decodes a container box's payload as a sequence of child
// boxes bounded by the payload extent. It is the registered parser for
// every known container type.
func ParseContainer(d *Decoder, b *Box, depth int) error {
	if depth >= d.maxDepth {
		return &types.MalformedBoxError{
			Type:   b.Type.String(),
			Offset: b.Extent.Start,
			Reason: fmt.Sprintf("nesting depth exceeds limit %d", d.maxDepth),
		}
	}
	p := b.Payload()
	ext := Extent{Start: p.Start(), Length: b.PayloadLen()}
	b.Children = d.decodeChildren(p, ext, depth+1)
	return nil
}
