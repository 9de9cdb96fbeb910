package mediameta

import (
	"github.com/simonhull/mediameta/internal/types"
)

// BoundsError is an alias to types.BoundsError.
// Re-exporting from internal/types to keep the public API in one package.
type BoundsError = types.BoundsError

// MalformedBoxError is an alias to types.MalformedBoxError.
// Re-exporting from internal/types to keep the public API in one package.
type MalformedBoxError = types.MalformedBoxError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to keep the public API in one package.
type UnsupportedFormatError = types.UnsupportedFormatError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to keep the public API in one package.
type Warning = types.Warning
