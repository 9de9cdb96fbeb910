// Package mediameta extracts structured metadata from ISO base media
// containers.
//
// mediameta decodes the nested, length-prefixed "box" structure shared by
// HEIF/HEIC, AVIF, MP4/M4A, and QuickTime files into a typed tree, and
// gives on-demand, bounds-checked access to every payload byte through
// byte-order-aware cursors.
//
// # Quick Start
//
// Decoding a file's box tree:
//
//	file, err := mediameta.Open("photo.heic")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	fmt.Println("Format:", file.Format)
//	file.Walk(func(b *mediameta.Box) error {
//		fmt.Printf("%s (%d bytes)\n", b.Type, b.Extent.Length)
//		return nil
//	})
//
// # Inputs
//
//   - Open: files on disk (seekable, decoded in place)
//   - OpenBytes: in-memory buffers
//   - OpenReaderAt: any seekable storage of known size
//   - OpenStream: forward-only streams, buffered incrementally and never
//     seeked backward
//
// # Philosophy
//
// mediameta embodies three core principles:
//
// 1. Graceful Degradation: malformed boxes produce warnings and a partial
// tree, not errors. The structure decoded before a failure is always
// preserved.
//
// 2. Structural, not semantic: every ISO-BMFF flavor decodes. Box types
// without a registered parser become opaque leaves whose payloads remain
// fully accessible through cursors.
//
// 3. Lazy access: payload bytes stay in the source until a cursor pulls
// them. Decoding a tree reads headers plus registered payloads, nothing
// more.
//
// # Extending
//
// Custom box types decode by registering a parser:
//
//	file, err := mediameta.Open("clip.mp4",
//	    mediameta.WithBoxParser("mvhd", func(d *mediameta.Decoder, b *mediameta.Box, depth int) error {
//	        p := b.Payload()
//	        // pull typed fields from p
//	        return nil
//	    }),
//	)
//
// # Error Handling
//
// mediameta distinguishes between fatal errors and warnings:
//
//   - Fatal errors prevent decoding entirely (file not found, no boxes at all)
//   - Warnings mark malformed boxes inside an otherwise decodable tree
//
// Always check file.Warnings when input quality matters:
//
//	if len(file.Warnings) > 0 {
//		for _, w := range file.Warnings {
//			log.Printf("Warning: %s", w)
//		}
//	}
//
// Every out-of-range read, from any typed accessor, reports a
// *BoundsError carrying the requested offset, the requested byte count,
// and the highest valid offset.
package mediameta
