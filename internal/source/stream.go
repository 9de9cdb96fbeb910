package source

import (
	"io"
)

// readChunk is the granularity of pulls from the underlying stream.
const readChunk = 32 * 1024

// StreamSource serves random-access reads over a forward-only stream by
// buffering incrementally.
//
// Bytes pulled from the stream are appended to an internal buffer and never
// discarded or re-fetched, so any range below the high-water mark can be
// re-read freely. Reads past the high-water mark pull more data from the
// stream; the stream itself is never seeked backward.
//
// Sharing rules: multiple cursors may read already-buffered regions of the
// same StreamSource concurrently, but only one logical consumer may trigger
// forward buffering at a time. The decoder's single linear walk satisfies
// this; independent goroutines racing past the high-water mark do not.
type StreamSource struct {
	r         io.Reader
	buf       []byte
	exhausted bool
	maxBuffer int64 // 0 = unlimited
}

// NewStream creates a Source over a forward-only stream.
//
// maxBuffer caps how many bytes may be buffered from the stream; 0 means
// unlimited. Reads that would grow the buffer past the cap fail with a
// bounds error rather than buffering without limit.
func NewStream(r io.Reader, maxBuffer int64) *StreamSource {
	return &StreamSource{r: r, maxBuffer: maxBuffer}
}

// buffer ensures at least want total bytes are buffered, or the stream is
// exhausted, whichever comes first. Callers clamp want to the buffer cap.
func (s *StreamSource) buffer(want int64) error {
	for int64(len(s.buf)) < want && !s.exhausted {
		need := want - int64(len(s.buf))
		chunk := int64(readChunk)
		if need > chunk {
			chunk = need
		}
		if s.maxBuffer > 0 && int64(len(s.buf))+chunk > s.maxBuffer {
			chunk = s.maxBuffer - int64(len(s.buf))
		}
		tmp := make([]byte, chunk)
		n, err := s.r.Read(tmp)
		if n > 0 {
			s.buf = append(s.buf, tmp[:n]...)
		}
		if err == io.EOF {
			s.exhausted = true
			break
		}
		if err != nil {
			return err
		}
		if n == 0 {
			// A reader returning (0, nil) forever would spin; treat it
			// as exhausted.
			s.exhausted = true
			break
		}
	}
	return nil
}

// ReadAt reads bytes at the given offset, buffering forward from the
// stream as needed.
func (s *StreamSource) ReadAt(p []byte, off int64, allowPartial bool) (int, error) {
	if off < 0 {
		return 0, boundsErr("bytes", off, int64(len(p)), int64(len(s.buf)))
	}
	want := off + int64(len(p))
	if s.maxBuffer > 0 && want > s.maxBuffer {
		// Growing past the cap is the same failure as reading past the end
		// of a bounded source: the cap is the highest offset that exists.
		if !allowPartial {
			return 0, boundsErr("bytes", off, int64(len(p)), s.maxBuffer)
		}
		want = s.maxBuffer
	}
	if err := s.buffer(want); err != nil {
		return 0, err
	}
	if off > int64(len(s.buf)) {
		return 0, boundsErr("bytes", off, int64(len(p)), int64(len(s.buf)))
	}
	avail := int64(len(s.buf)) - off
	if avail < int64(len(p)) && !allowPartial {
		return 0, boundsErr("bytes", off, int64(len(p)), int64(len(s.buf)))
	}
	n := copy(p, s.buf[off:])
	return n, nil
}

// ValidateRange reports how many of the requested bytes exist. For ranges
// past the high-water mark of a non-exhausted stream the answer is
// optimistic (the requested count); the subsequent ReadAt performs the
// authoritative check.
func (s *StreamSource) ValidateRange(off, count int64) (int64, error) {
	if off < 0 || count < 0 {
		return 0, boundsErr("range", off, count, int64(len(s.buf)))
	}
	if !s.exhausted {
		return count, nil
	}
	avail := int64(len(s.buf)) - off
	if avail < 0 {
		return 0, nil
	}
	return min(avail, count), nil
}

// Len returns the high-water mark of bytes buffered so far. Only after the
// stream has been drained (LengthKnown reports true) is this the true
// total length.
func (s *StreamSource) Len() int64 { return int64(len(s.buf)) }

// LengthKnown reports whether the stream has been fully drained.
func (s *StreamSource) LengthKnown() bool { return s.exhausted }

// ToArray materializes an exact byte range, buffering forward as needed.
func (s *StreamSource) ToArray(start, count int64) ([]byte, error) {
	if start < 0 || count < 0 {
		return nil, boundsErr("range", start, count, int64(len(s.buf)))
	}
	out := make([]byte, count)
	if _, err := s.ReadAt(out, start, false); err != nil {
		return nil, err
	}
	return out, nil
}
