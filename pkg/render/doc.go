// Package render defines the drawing contract between the node graph and
// whatever paints it.
//
// # Overview
//
// The graph core knows nothing about windows or image formats. It draws onto
// a [Surface], a five-primitive interface (filled and stroked rectangles,
// filled and stroked circles, cubic Bezier curves). Implementations live in
// subpackages:
//
//   - [record]: captures the primitive stream for tests, bounds and replay
//   - [svg]: writes an SVG document
//   - [raster]: paints a PNG with fogleman/gg
//   - [nodelink]: a Graphviz overview of the graph's topology
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	doc := svg.New(bounds)
//	g.Draw(doc)
//	pdf, err := render.ToPDF(doc.Bytes())
//
// # Lifetime
//
// A Surface is scoped to one frame. Scenes must not retain it after Draw
// returns.
//
// [record]: github.com/matzehuels/socketgraph/pkg/render/record
// [svg]: github.com/matzehuels/socketgraph/pkg/render/svg
// [raster]: github.com/matzehuels/socketgraph/pkg/render/raster
// [nodelink]: github.com/matzehuels/socketgraph/pkg/render/nodelink
package render
