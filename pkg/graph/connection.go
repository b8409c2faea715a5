package graph

import (
	"fmt"

	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/render"
	"github.com/matzehuels/socketgraph/pkg/theme"
)

// Endpoint names one socket on one node. Which side it refers to is implied
// by its role in a Connection.
type Endpoint struct {
	Node   int
	Socket int
}

// Connection links an output socket (Source) to an input socket (Target).
type Connection struct {
	Source Endpoint
	Target Endpoint
}

// Touches reports whether node id is the source or the target.
func (c Connection) Touches(id int) bool {
	return c.Source.Node == id || c.Target.Node == id
}

func (c Connection) String() string {
	return fmt.Sprintf("%d:%d -> %d:%d", c.Source.Node, c.Source.Socket, c.Target.Node, c.Target.Socket)
}

// ConnectionSet stores connections in insertion order, indexed by source
// node and by target node. Duplicates are allowed and kept separately. The
// zero value is ready to use.
type ConnectionSet[T any] struct {
	conns    []Connection
	bySource map[int][]int
	byTarget map[int][]int
}

// Add appends c without validating it.
func (cs *ConnectionSet[T]) Add(c Connection) {
	if cs.bySource == nil {
		cs.bySource = make(map[int][]int)
		cs.byTarget = make(map[int][]int)
	}
	i := len(cs.conns)
	cs.conns = append(cs.conns, c)
	cs.bySource[c.Source.Node] = append(cs.bySource[c.Source.Node], i)
	cs.byTarget[c.Target.Node] = append(cs.byTarget[c.Target.Node], i)
}

// Len returns the number of connections.
func (cs *ConnectionSet[T]) Len() int { return len(cs.conns) }

// All returns every connection in insertion order.
func (cs *ConnectionSet[T]) All() []Connection {
	out := make([]Connection, len(cs.conns))
	copy(out, cs.conns)
	return out
}

// From returns connections whose source is node id, in insertion order.
func (cs *ConnectionSet[T]) From(id int) []Connection { return cs.pick(cs.bySource[id]) }

// To returns connections whose target is node id, in insertion order.
func (cs *ConnectionSet[T]) To(id int) []Connection { return cs.pick(cs.byTarget[id]) }

// Touching returns connections where node id is source or target, in
// insertion order. A connection from a node to itself appears once.
func (cs *ConnectionSet[T]) Touching(id int) []Connection {
	src, dst := cs.bySource[id], cs.byTarget[id]
	merged := make([]int, 0, len(src)+len(dst))
	i, j := 0, 0
	for i < len(src) || j < len(dst) {
		switch {
		case j == len(dst) || (i < len(src) && src[i] < dst[j]):
			merged = append(merged, src[i])
			i++
		case i == len(src) || dst[j] < src[i]:
			merged = append(merged, dst[j])
			j++
		default: // same connection on both sides
			merged = append(merged, src[i])
			i++
			j++
		}
	}
	return cs.pick(merged)
}

func (cs *ConnectionSet[T]) pick(idx []int) []Connection {
	out := make([]Connection, len(idx))
	for k, i := range idx {
		out[k] = cs.conns[i]
	}
	return out
}

// Validate checks that c's source is an existing output socket and its
// target an existing input socket of nodes.
func Validate[T any](c Connection, nodes []Node[T]) error {
	if err := checkEndpoint(c.Source, Output, nodes); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidReference, err, "connection %v source", c)
	}
	if err := checkEndpoint(c.Target, Input, nodes); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidReference, err, "connection %v target", c)
	}
	return nil
}

func checkEndpoint[T any](e Endpoint, side Side, nodes []Node[T]) error {
	if e.Node < 0 || e.Node >= len(nodes) {
		return errors.New(errors.ErrCodeInvalidReference, "node %d does not exist (graph has %d)", e.Node, len(nodes))
	}
	_, err := nodes[e.Node].Socket(side, e.Socket)
	return err
}

// Curve returns the Bezier for c: endpoints at the resolved socket centers,
// control points pushed horizontally outward by the theme's control offset.
func Curve[T any](c Connection, nodes []Node[T], th theme.Theme) (p0, a, b, p1 geom.Point) {
	p0 = nodes[c.Source.Node].SocketPosition(Output, c.Source.Socket, th)
	p1 = nodes[c.Target.Node].SocketPosition(Input, c.Target.Socket, th)
	a = p0.Add(geom.Pt(th.CurveControlOffset, 0))
	b = p1.Add(geom.Pt(-th.CurveControlOffset, 0))
	return p0, a, b, p1
}

// Draw emits one curve per connection. Every connection is validated against
// nodes first; on failure nothing is drawn.
func (cs *ConnectionSet[T]) Draw(s render.Surface, nodes []Node[T], th theme.Theme) error {
	for _, c := range cs.conns {
		if err := Validate(c, nodes); err != nil {
			return err
		}
	}
	for _, c := range cs.conns {
		p0, a, b, p1 := Curve(c, nodes, th)
		s.CubicBezier(p0, a, b, p1, th.CurveColor, th.CurveWidth)
	}
	return nil
}
