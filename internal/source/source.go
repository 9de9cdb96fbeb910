// Package source provides byte sources for container decoding: in-memory
// buffers, seekable readers, and forward-only streams with incremental
// buffering.
package source

import (
	"github.com/simonhull/mediameta/internal/types"
)

// Source answers randomly-addressed byte requests over raw input.
//
// A Source is created once per input and shared (read-only) by every cursor
// derived during a decode session. Implementations backed by forward-only
// streams buffer incrementally; see Stream for the sharing rules that apply
// in that case.
type Source interface {
	// ReadAt reads len(p) bytes at the given offset. When allowPartial is
	// true and the source is exhausted before len(p) bytes, it returns the
	// bytes that do exist with no error; otherwise a short range is a
	// *types.BoundsError.
	ReadAt(p []byte, off int64, allowPartial bool) (int, error)

	// ValidateRange reports how many of the requested bytes exist without
	// materializing them. A negative offset is a bounds failure. For a
	// forward-only source that has not been exhausted, the answer for
	// ranges past the high-water mark is optimistic (the requested count);
	// the subsequent ReadAt performs the authoritative check.
	ValidateRange(off, count int64) (int64, error)

	// Len returns the total length when known. For a forward-only source
	// it returns the high-water mark of bytes buffered so far until the
	// underlying stream has been drained; use LengthKnown to distinguish.
	Len() int64

	// LengthKnown reports whether Len is the true total length.
	LengthKnown() bool

	// ToArray materializes an exact byte range, failing if the range is
	// not fully available.
	ToArray(start, count int64) ([]byte, error)
}

// boundsErr builds the uniform bounds failure for a source of the given
// length. maxValid is length-1, or -1 for an empty source.
func boundsErr(what string, off, count, length int64) *types.BoundsError {
	return &types.BoundsError{
		What:     what,
		Offset:   off,
		Count:    count,
		MaxValid: length - 1,
	}
}
