package mediameta

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/mediameta/internal/binary"
	"github.com/simonhull/mediameta/internal/bmff"
	"github.com/simonhull/mediameta/internal/source"
)

// File represents an opened media file with its decoded box tree.
//
// Opening a file decodes box headers and registered payloads but leaves
// everything else in place: leaf payloads (sample data, item data) stay
// on disk and are pulled on demand through Box.Payload cursors.
//
// Always call Close() when done to release file resources:
//
//	file, err := mediameta.Open("photo.heic")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
type File struct {
	// Path to the media file ("" when opened from memory or a stream)
	Path string

	// Detected format, derived from the 'ftyp' major brand
	Format Format

	// Input size in bytes. For forward-only streams this is the number
	// of bytes buffered by the decode walk, not necessarily the full
	// stream length.
	Size int64

	// Boxes holds the decoded top-level boxes in stream order.
	Boxes []*Box

	// Warnings encountered during decoding (non-fatal issues)
	Warnings []Warning

	// Internal state (unexported)
	reader io.ReaderAt // File handle, closed by Close when it is an io.Closer
}

// Open opens a media file and decodes its box tree.
//
// Supported containers: the ISO base media family (HEIC/HEIF, AVIF,
// MP4/M4A, QuickTime). Decoding is structural: unknown box types are kept
// as opaque leaves, so any ISO-BMFF flavor produces a usable tree.
//
// If the file contains malformed boxes, Open returns the tree built up to
// each failure point with warnings instead of an error. Check
// File.Warnings for details.
//
// Example:
//
//	file, err := mediameta.Open("photo.heic")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//	fmt.Println(file.Format)
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	file, err := decodeSource(source.NewReaderAt(f, stat.Size()), options)
	if err != nil {
		f.Close()
		return nil, err
	}
	file.Path = path
	file.Size = stat.Size()
	file.reader = f
	return file, nil
}

// OpenBytes decodes a box tree from an in-memory buffer.
//
// The buffer is not copied; it must stay unmodified while the File and
// any payload cursors derived from it are in use.
func OpenBytes(data []byte, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	file, err := decodeSource(source.NewBytes(data), options)
	if err != nil {
		return nil, err
	}
	file.Size = int64(len(data))
	return file, nil
}

// OpenReaderAt decodes a box tree from seekable storage of a known size.
func OpenReaderAt(r io.ReaderAt, size int64, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	file, err := decodeSource(source.NewReaderAt(r, size), options)
	if err != nil {
		return nil, err
	}
	file.Size = size
	return file, nil
}

// OpenStream decodes a box tree from a forward-only stream.
//
// Bytes are buffered incrementally as the decode walk advances and never
// re-fetched; the stream is never seeked backward. Use WithMaxBufferSize
// to bound memory on untrusted or unbounded inputs. The single decode
// walk is the only consumer allowed to pull the stream forward; payload
// cursors may re-read already-buffered regions freely afterward.
func OpenStream(r io.Reader, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	src := source.NewStream(r, options.maxBuffer)
	file, err := decodeSource(src, options)
	if err != nil {
		return nil, err
	}
	file.Size = src.Len()
	return file, nil
}

// decodeSource runs the box tree decode over a source and assembles the
// File, applying warning policy.
func decodeSource(src source.Source, options *openOptions) (*File, error) {
	reg := bmff.DefaultRegistry()
	if len(options.parsers) > 0 {
		reg = reg.Clone()
		for t, fn := range options.parsers {
			reg.Register(t, fn)
		}
	}

	dec := bmff.NewDecoder(reg, options.maxDepth)
	boxes := dec.Decode(binary.NewCursor(src))
	if len(boxes) == 0 {
		reason := "no boxes found"
		if ws := dec.Warnings(); len(ws) > 0 {
			reason = ws[0].Message
		}
		return nil, &UnsupportedFormatError{Reason: reason}
	}

	file := &File{
		Format:   detectFormat(boxes),
		Boxes:    boxes,
		Warnings: dec.Warnings(),
	}

	if options.strictParsing && len(file.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", file.Warnings[0].Message)
	}
	if options.ignoreWarnings {
		file.Warnings = nil
	}
	return file, nil
}

// Close releases resources held by the file.
//
// After Close is called, the File and any cursors derived from its boxes
// should not be used.
func (f *File) Close() error {
	if closer, ok := f.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// FindBox returns the first box matching a slash-separated type path,
// searching the tree top-down.
//
// Example:
//
//	hdlr := file.FindBox("meta/hdlr")
//	iref := file.FindBox("meta/iref")
//
// Returns nil when no box matches.
func (f *File) FindBox(path string) *Box {
	return findBox(f.Boxes, path)
}

func findBox(boxes []*Box, path string) *Box {
	head, rest, _ := strings.Cut(path, "/")
	want := TypeOf(head)
	for _, b := range boxes {
		if b.Type != want {
			continue
		}
		if rest == "" {
			return b
		}
		if found := findBox(b.Children, rest); found != nil {
			return found
		}
	}
	return nil
}

// Walk performs a pre-order traversal of the box tree.
//
// The callback is called for each box. Return an error from the callback
// to stop traversal; that error is returned from Walk.
//
// Example:
//
//	err := file.Walk(func(b *mediameta.Box) error {
//	    fmt.Printf("%s (%d bytes)\n", b.Type, b.Extent.Length)
//	    return nil
//	})
func (f *File) Walk(fn func(*Box) error) error {
	return walkBoxes(f.Boxes, fn)
}

func walkBoxes(boxes []*Box, fn func(*Box) error) error {
	for _, b := range boxes {
		if err := fn(b); err != nil {
			return err
		}
		if err := walkBoxes(b.Children, fn); err != nil {
			return err
		}
	}
	return nil
}

// OpenContext opens a file with context support for cancellation.
//
// This is a thin wrapper around Open() that checks context before
// starting. Streaming decode paths honor the context at the I/O boundary
// supplied by the caller.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple media files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to open, all successfully opened files are closed and an error
// is returned.
//
// Example:
//
//	files, err := mediameta.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, f := range files {
//			f.Close()
//		}
//	}()
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, file := range results {
			if file != nil {
				file.Close()
			}
		}
		return nil, err
	}
	return results, nil
}
