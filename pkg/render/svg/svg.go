// Package svg implements a render.Surface that produces an SVG document.
//
// Elements are written in call order, so later primitives paint over
// earlier ones exactly as they would on an immediate-mode surface.
//
//	doc := svg.New(geom.Rect{Max: geom.Pt(800, 600)})
//	g.Draw(doc)
//	os.WriteFile("graph.svg", doc.Bytes(), 0644)
package svg

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/render"
)

// Option configures a Document.
type Option func(*Document)

// WithBackground fills the viewport with c before any primitive.
func WithBackground(c color.NRGBA) Option { return func(d *Document) { d.background = &c } }

// WithStrokeWidth sets the width of rectangle and circle outlines (default 1).
func WithStrokeWidth(w float64) Option { return func(d *Document) { d.strokeWidth = w } }

// WithTitle adds a <title> element.
func WithTitle(s string) Option { return func(d *Document) { d.title = s } }

// Document accumulates SVG elements for one frame.
type Document struct {
	viewport    geom.Rect
	background  *color.NRGBA
	strokeWidth float64
	title       string
	body        bytes.Buffer
}

var _ render.Surface = (*Document)(nil)

// New creates a document whose viewBox is viewport.
func New(viewport geom.Rect, opts ...Option) *Document {
	d := &Document{viewport: viewport, strokeWidth: 1}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Document) FillRect(min, max geom.Point, c color.NRGBA, radius float64) {
	fmt.Fprintf(&d.body, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" %s/>`+"\n",
		min.X, min.Y, max.X-min.X, max.Y-min.Y, radius, paint("fill", c))
}

func (d *Document) StrokeRect(min, max geom.Point, c color.NRGBA, radius float64) {
	fmt.Fprintf(&d.body, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill="none" %s stroke-width="%.2f"/>`+"\n",
		min.X, min.Y, max.X-min.X, max.Y-min.Y, radius, paint("stroke", c), d.strokeWidth)
}

func (d *Document) FillCircle(center geom.Point, radius float64, c color.NRGBA) {
	fmt.Fprintf(&d.body, `  <circle cx="%.2f" cy="%.2f" r="%.2f" %s/>`+"\n",
		center.X, center.Y, radius, paint("fill", c))
}

func (d *Document) StrokeCircle(center geom.Point, radius float64, c color.NRGBA) {
	fmt.Fprintf(&d.body, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" %s stroke-width="%.2f"/>`+"\n",
		center.X, center.Y, radius, paint("stroke", c), d.strokeWidth)
}

func (d *Document) CubicBezier(p0, a, b, p1 geom.Point, c color.NRGBA, width float64) {
	fmt.Fprintf(&d.body, `  <path d="M %.2f %.2f C %.2f %.2f, %.2f %.2f, %.2f %.2f" fill="none" %s stroke-width="%.2f"/>`+"\n",
		p0.X, p0.Y, a.X, a.Y, b.X, b.Y, p1.X, p1.Y, paint("stroke", c), width)
}

// Bytes returns the complete SVG document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	d.writeTo(&buf)
	return buf.Bytes()
}

// WriteTo writes the complete SVG document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	d.writeTo(&buf)
	return buf.WriteTo(w)
}

func (d *Document) writeTo(buf *bytes.Buffer) {
	v := d.viewport
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		v.Min.X, v.Min.Y, v.Width(), v.Height(), v.Width(), v.Height())
	if d.title != "" {
		fmt.Fprintf(buf, "  <title>%s</title>\n", escape(d.title))
	}
	if d.background != nil {
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" %s/>`+"\n",
			v.Min.X, v.Min.Y, v.Width(), v.Height(), paint("fill", *d.background))
	}
	buf.Write(d.body.Bytes())
	buf.WriteString("</svg>\n")
}

// paint renders a fill or stroke attribute, adding an opacity attribute for
// translucent colors.
func paint(attr string, c color.NRGBA) string {
	s := fmt.Sprintf(`%s="#%02x%02x%02x"`, attr, c.R, c.G, c.B)
	if c.A != 255 {
		s += fmt.Sprintf(` %s-opacity="%.3f"`, attr, float64(c.A)/255)
	}
	return s
}
