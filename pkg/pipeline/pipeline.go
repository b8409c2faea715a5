// Package pipeline renders a drawable scene into output artifacts.
//
// This package implements the record → bound → encode pipeline used by every
// CLI command that writes files. By centralizing this logic, the render,
// connect and explore commands produce identical output for the same scene.
//
// # Architecture
//
// A run has three stages:
//
//  1. Record: draw the scene once into a recording surface
//  2. Bound: compute the area covered by the recorded primitives plus padding
//  3. Encode: replay the recording into each requested format
//
// SVG is written natively. PNG is rasterised natively by default or converted
// from the SVG with rsvg-convert. PDF always goes through rsvg-convert, and
// conversions are memoised in a [cache.Cache]. The "dot" and "overview"
// formats describe topology and require the scene to implement
// [nodelink.Topology].
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Render(ctx, g, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"image/color"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultScale is the pixel density of raster output.
	DefaultScale = 2.0

	// DefaultPadding is the margin added around the drawing, in scene units.
	DefaultPadding = 20.0

	// DefaultStrokeWidth is the width of node and socket outlines.
	DefaultStrokeWidth = 1.0
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"
	FormatPNG      = "png"
	FormatPDF      = "pdf"
	FormatDOT      = "dot"
	FormatOverview = "overview"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatPNG:      true,
	FormatPDF:      true,
	FormatDOT:      true,
	FormatOverview: true,
}

// Extension returns the file extension written for format.
func Extension(format string) string {
	if format == FormatOverview {
		return "overview.svg"
	}
	return format
}

// =============================================================================
// Options
// =============================================================================

// Options configures a render run.
type Options struct {
	// Formats lists the artifacts to produce. Defaults to svg.
	Formats []string

	// Scale is the raster pixel density. Defaults to DefaultScale.
	Scale float64

	// Padding is added on every side of the drawing bounds.
	// Negative values are rejected; zero means DefaultPadding unless
	// NoPadding is set.
	Padding   float64
	NoPadding bool

	// StrokeWidth is the outline width for vector and raster output.
	StrokeWidth float64

	// Background fills the canvas. The zero value leaves it transparent.
	Background color.NRGBA

	// Title is embedded in SVG output.
	Title string

	// UseRSVG converts PNG from the SVG with rsvg-convert instead of the
	// native rasteriser.
	UseRSVG bool

	// Refresh bypasses cached conversions.
	Refresh bool

	// Label names nodes in topology formats.
	Label func(id int) string

	// Logger receives progress output. Defaults to a discarding logger.
	Logger *log.Logger

	validated bool
}

// Result contains the outputs of a render run.
type Result struct {
	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Bounds is the drawn area before padding. It is the zero Rect for an
	// empty scene.
	Bounds geom.Rect

	// Viewport is the exported area, Bounds grown by the padding.
	Viewport geom.Rect

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo lists formats served from the conversion cache.
	CacheInfo CacheInfo
}

// Stats contains render statistics.
type Stats struct {
	Primitives int
	DrawTime   time.Duration
	EncodeTime time.Duration
}

// CacheInfo tracks which conversions hit the cache.
type CacheInfo struct {
	Hits []string
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(formatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

func formatNames() []string {
	return []string{FormatSVG, FormatPNG, FormatPDF, FormatDOT, FormatOverview}
}

// ParseFormats splits a comma separated list, trims blanks and drops
// duplicates while keeping order.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks options and fills in defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if err := errors.ValidatePositive("scale", o.Scale); err != nil {
		return err
	}
	if o.Padding == 0 && !o.NoPadding {
		o.Padding = DefaultPadding
	}
	if err := errors.ValidateNonNegative("padding", o.Padding); err != nil {
		return err
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = DefaultStrokeWidth
	}
	if err := errors.ValidatePositive("stroke width", o.StrokeWidth); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// wants reports whether format was requested.
func (o *Options) wants(format string) bool { return slices.Contains(o.Formats, format) }
