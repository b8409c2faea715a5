package cache

import "fmt"

// Keyer builds cache keys.
type Keyer interface {
	// ConversionKey returns the key for converting svg to format at scale.
	ConversionKey(format string, svg []byte, opts ConversionKeyOpts) string
}

// ConversionKeyOpts holds the settings that change a conversion's output.
type ConversionKeyOpts struct {
	Scale float64 `json:"scale,omitempty"`
	Tool  string  `json:"tool,omitempty"`
}

// DefaultKeyer hashes content and options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ConversionKey returns "convert:<format>:<sha256>".
func (DefaultKeyer) ConversionKey(format string, svg []byte, opts ConversionKeyOpts) string {
	return hashKey(fmt.Sprintf("convert:%s", format), Hash(svg), opts)
}

var _ Keyer = DefaultKeyer{}
