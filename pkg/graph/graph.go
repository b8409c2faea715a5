package graph

import (
	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/render"
	"github.com/matzehuels/socketgraph/pkg/theme"
)

// Option configures a Graph.
type Option func(*options)

type options struct {
	theme theme.Theme
}

// WithTheme sets the theme used for drawing, layout and hit-testing.
func WithTheme(th theme.Theme) Option { return func(o *options) { o.theme = th } }

// Graph owns an ordered list of nodes and the connections between their
// sockets. Node ids are indices into that list.
type Graph[T any] struct {
	theme theme.Theme
	nodes []Node[T]
	conns ConnectionSet[T]
}

var _ render.Scene = (*Graph[struct{}])(nil)

// New returns an empty graph using theme.Default unless overridden.
func New[T any](opts ...Option) *Graph[T] {
	o := options{theme: theme.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Graph[T]{theme: o.theme}
}

// Theme returns the graph's theme.
func (g *Graph[T]) Theme() theme.Theme { return g.theme }

// Len returns the number of nodes.
func (g *Graph[T]) Len() int { return len(g.nodes) }

// AddNode appends a copy of n and returns its id.
func (g *Graph[T]) AddNode(n Node[T]) int {
	g.nodes = append(g.nodes, n.clone())
	return len(g.nodes) - 1
}

// AddComposite resolves c and appends its children, anchor first. It
// returns the ids of Child1 and Child2.
func (g *Graph[T]) AddComposite(c Composite[T]) (first, second int, err error) {
	if err := c.Resolve(g.theme); err != nil {
		return 0, 0, err
	}
	first = g.AddNode(c.Child1)
	second = g.AddNode(c.Child2)
	return first, second, nil
}

// Node returns a copy of node id.
func (g *Graph[T]) Node(id int) (Node[T], error) {
	if err := g.checkNode(id); err != nil {
		return Node[T]{}, err
	}
	return g.nodes[id].clone(), nil
}

// Nodes returns copies of all nodes in id order.
func (g *Graph[T]) Nodes() []Node[T] {
	out := make([]Node[T], len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.clone()
	}
	return out
}

// SocketCounts returns the number of input and output sockets of node id,
// or zeros if it does not exist.
func (g *Graph[T]) SocketCounts(id int) (inputs, outputs int) {
	if id < 0 || id >= len(g.nodes) {
		return 0, 0
	}
	return len(g.nodes[id].Inputs), len(g.nodes[id].Outputs)
}

// SocketPosition returns the center of a socket as drawn.
func (g *Graph[T]) SocketPosition(id int, side Side, index int) (geom.Point, error) {
	if err := g.checkNode(id); err != nil {
		return geom.Point{}, err
	}
	n := g.nodes[id]
	if _, err := n.Socket(side, index); err != nil {
		return geom.Point{}, err
	}
	return n.SocketPosition(side, index, g.theme), nil
}

// AddConnection links output socket source to input socket target. Both
// endpoints must exist now; otherwise INVALID_REFERENCE is returned and the
// graph is unchanged. Duplicate connections are allowed.
func (g *Graph[T]) AddConnection(source, target Endpoint) (Connection, error) {
	c := Connection{Source: source, Target: target}
	if err := Validate(c, g.nodes); err != nil {
		return Connection{}, err
	}
	g.conns.Add(c)
	return c, nil
}

// Connections returns every connection in insertion order.
func (g *Graph[T]) Connections() []Connection { return g.conns.All() }

// ConnectionsTouching returns the connections where node id is source or
// target, in insertion order.
func (g *Graph[T]) ConnectionsTouching(id int) ([]Connection, error) {
	if err := g.checkNode(id); err != nil {
		return nil, err
	}
	return g.conns.Touching(id), nil
}

// Bounds returns the area covered by a drawn frame: node bodies, socket
// glyphs and the control polygons of connection curves. It is the zero Rect
// for an empty graph.
func (g *Graph[T]) Bounds() geom.Rect {
	var b geom.Rect
	first := true
	add := func(r geom.Rect) {
		if first {
			b, first = r, false
			return
		}
		b = b.Union(r)
	}

	th := g.theme
	for _, n := range g.nodes {
		add(n.Rect(th))
		for _, side := range [...]Side{Input, Output} {
			for i := range n.SocketCount(side) {
				p := n.SocketPosition(side, i, th)
				add(geom.Rect{Min: p, Max: p}.Inset(-th.SocketRadius))
			}
		}
	}
	for _, c := range g.conns.conns {
		p0, a, bb, p1 := Curve(c, g.nodes, th)
		add(geom.Rect{Min: p0, Max: p0}.Extend(a).Extend(bb).Extend(p1).Inset(-th.CurveWidth / 2))
	}
	return b
}

// Draw renders one frame: every node in id order, then every connection.
func (g *Graph[T]) Draw(s render.Surface) error {
	for _, n := range g.nodes {
		n.Draw(s, g.theme)
	}
	return g.conns.Draw(s, g.nodes, g.theme)
}

func (g *Graph[T]) checkNode(id int) error {
	if id < 0 || id >= len(g.nodes) {
		return errors.New(errors.ErrCodeInvalidReference, "node %d does not exist (graph has %d)", id, len(g.nodes))
	}
	return nil
}
