// Package geom provides the 2D value types used by the node graph.
//
// [Point] doubles as a position and as an offset or size, so all geometry in
// the graph is expressed with a single type:
//
//	size := geom.Pt(150, 100)
//	r := geom.RectAt(geom.Pt(100, 100), size)
//	r.Contains(geom.Pt(250, 200)) // true, edges are inclusive
//
// Both types are immutable values; methods return new values.
package geom
