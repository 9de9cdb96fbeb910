package mediameta

import (
	"github.com/simonhull/mediameta/internal/bmff"
	"github.com/simonhull/mediameta/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to keep the public API in one package.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown   = types.FormatUnknown
	FormatHEIC      = types.FormatHEIC
	FormatHEIF      = types.FormatHEIF
	FormatAVIF      = types.FormatAVIF
	FormatMP4       = types.FormatMP4
	FormatM4A       = types.FormatM4A
	FormatQuickTime = types.FormatQuickTime
)

// detectFormat derives the container flavor from the first 'ftyp' box in
// the decoded top-level sequence. Files without an 'ftyp' box report
// FormatUnknown; the box tree is still usable.
func detectFormat(boxes []*bmff.Box) Format {
	for _, b := range boxes {
		if b.Type != bmff.TypeFtyp {
			continue
		}
		if ftyp, ok := b.Detail.(*bmff.Ftyp); ok {
			return types.FormatForBrand(ftyp.MajorBrand, ftyp.Compatible)
		}
	}
	return types.FormatUnknown
}
