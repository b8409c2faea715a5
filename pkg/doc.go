// Package pkg provides the core libraries for Socketgraph node graphs.
//
// # Overview
//
// Socketgraph models a visual node graph: boxes with input and output
// sockets, directed connections drawn as Bezier curves between sockets, and
// hit-testing that maps a pointer position to the socket under it. The pkg
// directory is organized into three areas:
//
//  1. Model - geometry, theme and the graph itself
//  2. Rendering - the drawing surface and its SVG, raster and Graphviz backends
//  3. Infrastructure - pipeline orchestration, caching and observability
//
// # Architecture
//
// The typical data flow:
//
//	theme + nodes + connections
//	         ↓
//	    [graph] package (model, layout, hit-testing)
//	         ↓
//	    [render/record] (one frame of draw commands)
//	         ↓
//	    [render/svg], [render/raster], [render/nodelink]
//	         ↓
//	    SVG/PNG/PDF/DOT output
//
// # Quick Start
//
//	g := graph.New[string]()
//	a := g.AddNode(graph.NewNode(geom.Pt(100, 100), "source", 0, 1))
//	b := g.AddNode(graph.NewNode(geom.Pt(350, 100), "sink", 1, 0))
//	g.AddConnection(graph.Endpoint{Node: a}, graph.Endpoint{Node: b})
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), cache.NewDefaultKeyer(), nil)
//	result, _ := runner.Render(ctx, g, pipeline.Options{Formats: []string{"svg"}})
//
// # Main Packages
//
// ## Model
//
// [geom] - Points and axis-aligned rectangles.
//
// [theme] - Node size, socket spacing, colors; TOML load and save.
//
// [graph] - Nodes, sockets, composites, connections, hit-testing and drawing.
//
// [arrange] - Column layering and crossing reduction for automatic placement.
//
// ## Rendering
//
// [render] - The Surface interface and SVG to PDF/PNG conversion.
//
//   - [render/record]: Records draw calls and measures their bounds
//   - [render/svg]: SVG document surface
//   - [render/raster]: Native PNG surface
//   - [render/nodelink]: Graphviz DOT of the wiring
//
// ## Infrastructure
//
// [pipeline] - Record, bound and encode a scene in one or more formats.
//
// [cache] - File and null caches for converted output.
//
// [observability] - Hooks for render, cache and interaction events.
//
// [errors] - Coded errors shared by every package.
//
// [buildinfo] - Version information set at build time.
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/geom
// [theme]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/theme
// [graph]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/graph
// [arrange]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/arrange
// [render]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/render
// [render/record]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/render/record
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/render/svg
// [render/raster]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/render/raster
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/socketgraph/pkg/buildinfo
package pkg
