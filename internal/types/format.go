package types

// Format represents the detected container flavor, derived from the
// 'ftyp' major brand.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported container.
	FormatUnknown Format = iota
	// FormatHEIC represents HEIC still images (HEVC in HEIF).
	FormatHEIC
	// FormatHEIF represents generic HEIF images.
	FormatHEIF
	// FormatAVIF represents AVIF images (AV1 in HEIF).
	FormatAVIF
	// FormatMP4 represents ISO MP4 movies.
	FormatMP4
	// FormatM4A represents MPEG-4 audio.
	FormatM4A
	// FormatQuickTime represents Apple QuickTime movies.
	FormatQuickTime
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatHEIC:
		return "HEIC"
	case FormatHEIF:
		return "HEIF"
	case FormatAVIF:
		return "AVIF"
	case FormatMP4:
		return "MP4"
	case FormatM4A:
		return "M4A"
	case FormatQuickTime:
		return "QuickTime"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatHEIC:
		return []string{".heic"}
	case FormatHEIF:
		return []string{".heif"}
	case FormatAVIF:
		return []string{".avif"}
	case FormatMP4:
		return []string{".mp4", ".m4v"}
	case FormatM4A:
		return []string{".m4a", ".m4b"}
	case FormatQuickTime:
		return []string{".mov", ".qt"}
	default:
		return nil
	}
}

// brandFormats maps 'ftyp' major brands to formats.
var brandFormats = map[string]Format{
	"heic": FormatHEIC,
	"heix": FormatHEIC,
	"hevc": FormatHEIC,
	"mif1": FormatHEIF,
	"msf1": FormatHEIF,
	"avif": FormatAVIF,
	"avis": FormatAVIF,
	"isom": FormatMP4,
	"iso2": FormatMP4,
	"mp41": FormatMP4,
	"mp42": FormatMP4,
	"M4A ": FormatM4A,
	"M4B ": FormatM4A,
	"qt  ": FormatQuickTime,
}

// FormatForBrand returns the format for an 'ftyp' major brand, falling
// back to the compatible brand list when the major brand is unrecognized.
func FormatForBrand(major string, compatible []string) Format {
	if f, ok := brandFormats[major]; ok {
		return f
	}
	for _, brand := range compatible {
		if f, ok := brandFormats[brand]; ok {
			return f
		}
	}
	return FormatUnknown
}
