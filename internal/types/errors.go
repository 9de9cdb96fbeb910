package types

import "fmt"

// BoundsError is returned when a read or skip would exceed available data.
//
// Every typed accessor reports bounds failures with this single shape, so
// callers can present the same diagnostic no matter which accessor tripped:
// the absolute offset requested, the number of bytes wanted, and the highest
// valid offset in the underlying data.
type BoundsError struct {
	What     string // context for the failed read ("box size", "iref child", ...)
	Offset   int64  // requested absolute offset
	Count    int64  // requested byte count
	MaxValid int64  // highest valid offset (-1 when the source is empty)
}

func (e *BoundsError) Error() string {
	if e.Offset > e.MaxValid {
		return fmt.Sprintf("offset %d out of bounds (max valid offset: %d) while reading %s",
			e.Offset, e.MaxValid, e.What)
	}
	return fmt.Sprintf("read of %d bytes at offset %d would exceed max valid offset %d while reading %s",
		e.Count, e.Offset, e.MaxValid, e.What)
}

// MalformedBoxError is returned when a box's declared structure is
// inconsistent: a size smaller than its mandatory header fields, a child
// extending past its parent's extent, or nesting past the depth guard.
type MalformedBoxError struct {
	Type   string // 4-character box type, empty if unknown
	Offset int64  // file offset of the box header
	Reason string
}

func (e *MalformedBoxError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("malformed '%s' box at offset %d: %s", e.Type, e.Offset, e.Reason)
	}
	return fmt.Sprintf("malformed box at offset %d: %s", e.Offset, e.Reason)
}

// UnsupportedFormatError is returned when the input is not an ISO-BMFF file.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unsupported format: %s", e.Reason)
	}
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// Warning represents a non-fatal issue encountered during decoding.
//
// Warnings indicate problems that don't prevent building the box tree but
// mark parts of it as incomplete. Examples include:
//   - A child box whose declared length exceeds its parent's extent
//   - A truncated trailing box
//   - A full-box header that cannot fit in its declared size
//
// Warnings are collected in File.Warnings during decoding; the tree built
// up to the point of failure is always preserved.
type Warning struct {
	// Stage where the warning occurred: "header", "payload", "children"
	Stage string

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
