// Package raster implements a render.Surface that paints into an in-memory
// image with fogleman/gg and encodes it as PNG.
//
// Unlike the SVG-to-PNG path in package render, this needs no external tools.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/render"
)

// maxPixels caps the canvas so a stray huge coordinate cannot exhaust memory.
const maxPixels = 64 << 20

// Option configures a Surface.
type Option func(*Surface)

// WithBackground clears the canvas to c (default transparent).
func WithBackground(c color.NRGBA) Option { return func(s *Surface) { s.background = &c } }

// WithStrokeWidth sets the width of rectangle and circle outlines (default 1).
func WithStrokeWidth(w float64) Option { return func(s *Surface) { s.strokeWidth = w } }

// Surface paints primitives onto a gg context. Coordinates inside viewport
// map to pixels, multiplied by the scale factor.
type Surface struct {
	dc          *gg.Context
	origin      geom.Point
	scale       float64
	strokeWidth float64
	background  *color.NRGBA
}

var _ render.Surface = (*Surface)(nil)

// New allocates a canvas covering viewport at the given scale.
func New(viewport geom.Rect, scale float64, opts ...Option) (*Surface, error) {
	if err := errors.ValidatePositive("scale", scale); err != nil {
		return nil, err
	}
	fw := math.Ceil(viewport.Width() * scale)
	fh := math.Ceil(viewport.Height() * scale)
	if !(fw > 0 && fh > 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty viewport %v", viewport)
	}
	// Compare in float space: the int product overflows for huge viewports.
	if fw*fh > maxPixels {
		return nil, errors.New(errors.ErrCodeInvalidInput, "canvas %.0fx%.0f exceeds pixel limit", fw, fh)
	}
	w, h := int(fw), int(fh)

	s := &Surface{
		dc:          gg.NewContext(w, h),
		origin:      viewport.Min,
		scale:       scale,
		strokeWidth: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.background != nil {
		s.dc.SetColor(*s.background)
		s.dc.Clear()
	}
	return s, nil
}

func (s *Surface) pt(p geom.Point) (float64, float64) {
	return (p.X - s.origin.X) * s.scale, (p.Y - s.origin.Y) * s.scale
}

func (s *Surface) rect(min, max geom.Point, radius float64) {
	x, y := s.pt(min)
	w, h := (max.X-min.X)*s.scale, (max.Y-min.Y)*s.scale
	if radius > 0 {
		s.dc.DrawRoundedRectangle(x, y, w, h, radius*s.scale)
		return
	}
	s.dc.DrawRectangle(x, y, w, h)
}

func (s *Surface) FillRect(min, max geom.Point, c color.NRGBA, radius float64) {
	s.rect(min, max, radius)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *Surface) StrokeRect(min, max geom.Point, c color.NRGBA, radius float64) {
	s.rect(min, max, radius)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(s.strokeWidth * s.scale)
	s.dc.Stroke()
}

func (s *Surface) FillCircle(center geom.Point, radius float64, c color.NRGBA) {
	x, y := s.pt(center)
	s.dc.DrawCircle(x, y, radius*s.scale)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *Surface) StrokeCircle(center geom.Point, radius float64, c color.NRGBA) {
	x, y := s.pt(center)
	s.dc.DrawCircle(x, y, radius*s.scale)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(s.strokeWidth * s.scale)
	s.dc.Stroke()
}

func (s *Surface) CubicBezier(p0, a, b, p1 geom.Point, c color.NRGBA, width float64) {
	x0, y0 := s.pt(p0)
	ax, ay := s.pt(a)
	bx, by := s.pt(b)
	x1, y1 := s.pt(p1)
	s.dc.MoveTo(x0, y0)
	s.dc.CubicTo(ax, ay, bx, by, x1, y1)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width * s.scale)
	s.dc.Stroke()
}

// Image returns the painted canvas.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the canvas as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PNG returns the canvas encoded as PNG bytes.
func (s *Surface) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
