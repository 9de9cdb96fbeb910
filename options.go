package mediameta

// Option configures behavior when opening media files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := mediameta.Open("photo.heic",
//	    mediameta.WithStrictParsing(),
//	    mediameta.WithMaxDepth(16),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing  bool                 // Fail on any warning
	ignoreWarnings bool                 // Suppress all warnings
	maxDepth       int                  // Box nesting limit (0 = default)
	maxBuffer      int64                // Stream buffering cap in bytes (0 = unlimited)
	parsers        map[BoxType]ParseFunc // Caller-registered box parsers
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, mediameta keeps decoding when it encounters malformed
// boxes, returning the tree built so far alongside warnings. With strict
// parsing enabled, any warning becomes a fatal error.
//
// Example:
//
//	file, err := mediameta.Open("photo.heic", mediameta.WithStrictParsing())
//	// err != nil if ANY structural issue is encountered
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, warnings about malformed boxes are collected in
// File.Warnings. This option discards them.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxDepth caps box nesting. Inputs nested deeper are treated as
// malformed containers.
//
// The default is 64, far beyond anything a real container produces. Lower it when decoding untrusted input under tight
// resource budgets.
func WithMaxDepth(n int) Option {
	return func(o *openOptions) {
		o.maxDepth = n
	}
}

// WithMaxBufferSize caps how many bytes OpenStream may buffer from a
// forward-only stream. Reads past the cap fail instead of buffering
// without limit.
//
// Default is 0 (unlimited).
func WithMaxBufferSize(bytes int64) Option {
	return func(o *openOptions) {
		o.maxBuffer = bytes
	}
}

// WithBoxParser registers a payload parser for a box type, on top of the
// built-in set. The parser receives the box with its header decoded and
// pulls typed fields from box.Payload().
//
// Example:
//
//	file, err := mediameta.Open("clip.mp4",
//	    mediameta.WithBoxParser("mvhd", parseMovieHeader),
//	)
func WithBoxParser(boxType string, fn ParseFunc) Option {
	return func(o *openOptions) {
		if o.parsers == nil {
			o.parsers = make(map[BoxType]ParseFunc)
		}
		o.parsers[TypeOf(boxType)] = fn
	}
}
