// Package nodelink renders the topology of a socket graph as a Graphviz
// node-link overview.
//
// # Overview
//
// The drawing produced by [graph.Graph.Draw] is positional: nodes sit where
// the caller put them and connections are plain curves. For large graphs it
// is often easier to read the wiring from an automatically laid-out diagram.
// This package converts any [Topology] into DOT source in which each node is a
// record with one port per socket, and every connection is an edge from an
// output port to an input port.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: label every port with its socket index
//   - Label: custom node titles (defaults to "node N")
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG output goes through [render.ToPDF] and [render.ToPNG].
package nodelink
