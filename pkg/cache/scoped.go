package cache

// ScopedKeyer wraps a Keyer with a prefix. The CLI scopes keys by build
// version so a new release never reads artifacts produced by an older one.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ConversionKey generates a prefixed conversion key.
func (k *ScopedKeyer) ConversionKey(format string, svg []byte, opts ConversionKeyOpts) string {
	return k.prefix + k.inner.ConversionKey(format, svg, opts)
}
