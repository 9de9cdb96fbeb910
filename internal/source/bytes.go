package source

import "io"

// BytesSource serves reads from an in-memory byte slice.
//
// The slice is not copied; callers must not mutate it while a decode
// session references this source.
type BytesSource struct {
	data []byte
}

// NewBytes creates a Source over an in-memory buffer.
func NewBytes(data []byte) *BytesSource {
	return &BytesSource{data: data}
}

// ReadAt reads bytes at the given offset.
func (s *BytesSource) ReadAt(p []byte, off int64, allowPartial bool) (int, error) {
	if off < 0 || off > int64(len(s.data)) {
		return 0, boundsErr("bytes", off, int64(len(p)), int64(len(s.data)))
	}
	avail := int64(len(s.data)) - off
	if avail < int64(len(p)) && !allowPartial {
		return 0, boundsErr("bytes", off, int64(len(p)), int64(len(s.data)))
	}
	n := copy(p, s.data[off:])
	return n, nil
}

// ValidateRange reports how many of the requested bytes exist.
func (s *BytesSource) ValidateRange(off, count int64) (int64, error) {
	if off < 0 || count < 0 {
		return 0, boundsErr("range", off, count, int64(len(s.data)))
	}
	avail := int64(len(s.data)) - off
	if avail < 0 {
		return 0, nil
	}
	return min(avail, count), nil
}

// Len returns the buffer length.
func (s *BytesSource) Len() int64 { return int64(len(s.data)) }

// LengthKnown always reports true for in-memory sources.
func (s *BytesSource) LengthKnown() bool { return true }

// ToArray materializes an exact byte range.
func (s *BytesSource) ToArray(start, count int64) ([]byte, error) {
	if start < 0 || count < 0 || start+count > int64(len(s.data)) {
		return nil, boundsErr("range", start, count, int64(len(s.data)))
	}
	out := make([]byte, count)
	copy(out, s.data[start:start+count])
	return out, nil
}

// ReaderAtSource serves reads from seekable storage via io.ReaderAt.
//
// The size must be the total length of the underlying storage; reads are
// bounds-checked against it before touching the reader.
type ReaderAtSource struct {
	r    io.ReaderAt
	size int64
}

// NewReaderAt creates a Source over seekable storage of a known size.
func NewReaderAt(r io.ReaderAt, size int64) *ReaderAtSource {
	return &ReaderAtSource{r: r, size: size}
}

// ReadAt reads bytes at the given offset directly from the underlying
// reader.
func (s *ReaderAtSource) ReadAt(p []byte, off int64, allowPartial bool) (int, error) {
	if off < 0 || off > s.size {
		return 0, boundsErr("bytes", off, int64(len(p)), s.size)
	}
	want := int64(len(p))
	avail := s.size - off
	if avail < want {
		if !allowPartial {
			return 0, boundsErr("bytes", off, want, s.size)
		}
		p = p[:avail]
	}
	n, err := s.r.ReadAt(p, off)
	if err != nil && err != io.EOF {
		return n, err
	}
	if int64(n) < int64(len(p)) {
		return n, boundsErr("bytes", off, want, off+int64(n))
	}
	return n, nil
}

// ValidateRange reports how many of the requested bytes exist.
func (s *ReaderAtSource) ValidateRange(off, count int64) (int64, error) {
	if off < 0 || count < 0 {
		return 0, boundsErr("range", off, count, s.size)
	}
	avail := s.size - off
	if avail < 0 {
		return 0, nil
	}
	return min(avail, count), nil
}

// Len returns the declared storage size.
func (s *ReaderAtSource) Len() int64 { return s.size }

// LengthKnown always reports true for seekable sources.
func (s *ReaderAtSource) LengthKnown() bool { return true }

// ToArray materializes an exact byte range.
func (s *ReaderAtSource) ToArray(start, count int64) ([]byte, error) {
	if start < 0 || count < 0 || start+count > s.size {
		return nil, boundsErr("range", start, count, s.size)
	}
	out := make([]byte, count)
	if _, err := s.ReadAt(out, start, false); err != nil {
		return nil, err
	}
	return out, nil
}
