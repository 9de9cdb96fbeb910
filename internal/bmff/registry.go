package bmff

// ParseFunc decodes one box's payload. The box arrives with its header
// fields populated and its payload cursor positioned at payload start;
// the parser fills Children or Detail. depth is the box's nesting depth,
// passed back into decodeChildren by container parsers.
type ParseFunc func(d *Decoder, b *Box, depth int) error

// Registry maps box type codes to payload parsers.
//
// A type without a registered parser decodes as an opaque leaf: its
// payload is skipped without interpretation. Callers extend decoding by
// registering their own parsers; the registry is consulted per box during
// the tree walk.
type Registry struct {
	parsers map[BoxType]ParseFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[BoxType]ParseFunc)}
}

// Register registers a parser for a box type, replacing any previous one.
func (r *Registry) Register(t BoxType, fn ParseFunc) {
	r.parsers[t] = fn
}

// Get returns the parser for a box type, or nil if none is registered.
func (r *Registry) Get(t BoxType) ParseFunc {
	return r.parsers[t]
}

// Clone returns an independent copy of the registry. Used when a caller
// extends the default set without mutating it.
func (r *Registry) Clone() *Registry {
	out := NewRegistry()
	for t, fn := range r.parsers {
		out.parsers[t] = fn
	}
	return out
}

// DefaultRegistry returns a registry with the built-in parsers: container
// recursion for the known container types plus ftyp, hdlr, pitm, infe,
// and iref payload decoding.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, t := range []BoxType{
		TypeMeta, TypeMoov, TypeTrak, TypeMdia, TypeMinf,
		TypeStbl, TypeDinf, TypeEdts, TypeUdta, TypeIinf,
		TypeIprp, TypeIpco,
	} {
		r.Register(t, ParseContainer)
	}
	r.Register(TypeFtyp, ParseFtyp)
	r.Register(TypeHdlr, ParseHdlr)
	r.Register(TypePitm, ParsePitm)
	r.Register(TypeInfe, ParseInfe)
	r.Register(TypeIref, ParseIref)
	return r
}
