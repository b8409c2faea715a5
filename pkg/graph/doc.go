// Package graph is the node-graph model: boxes with input and output
// sockets, directed connections between sockets, two-child composite
// layouts, pointer hit-testing and per-frame drawing.
//
// # Identity
//
// A node is identified by its index in the [Graph] (its id), assigned by
// [Graph.AddNode] and stable for the graph's lifetime. A socket is addressed
// by (node id, [Side], index); indices are dense, 0..count-1 per side.
//
// # Geometry
//
// All nodes share the size, socket radius and socket spacing of the graph's
// [theme.Theme]. Input socket i sits on the left edge at
// position + (0, spacing*i). Output socket i sits at position + size +
// (0, spacing*i), so outputs start at the bottom-right corner and run
// downward:
//
//	in0 o-----------+
//	    |           |
//	in1 o           |
//	    |           |
//	    +-----------o out0
//	                o out1
//
// Connection curves resolve socket positions with the same formula, so they
// always end on the rendered glyphs.
//
// # Drawing
//
// [Graph.Draw] emits, in order, every node (body, outline, input sockets,
// output sockets) by id and then one cubic Bezier per connection in
// insertion order. The output is a pure function of graph state and theme.
//
// # Hit-testing
//
// [Graph.FindSocket] scans nodes by id and returns the first socket whose
// hit zone contains the point:
//
//	g := graph.New[string]()
//	a := g.AddNode(graph.NewNode(geom.Pt(100, 100), "src", 0, 1))
//	b := g.AddNode(graph.NewNode(geom.Pt(300, 100), "dst", 1, 0))
//	if _, err := g.AddConnection(graph.Endpoint{Node: a}, graph.Endpoint{Node: b}); err != nil {
//	    // INVALID_REFERENCE: the graph is unchanged
//	}
//	hit, ok := g.FindSocket(geom.Pt(301, 102)) // {Node: b, Side: Input, Socket: 0}, true
//
// # Concurrency
//
// A Graph is owned by a single frame loop. It performs no locking.
package graph
