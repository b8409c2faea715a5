package graph

import (
	"slices"

	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/render"
	"github.com/matzehuels/socketgraph/pkg/theme"
)

// Socket is one connection slot on a node. Its identity is its index.
type Socket struct {
	Name string // optional display name
}

// Sockets builds a socket list from names.
func Sockets(names ...string) []Socket {
	out := make([]Socket, len(names))
	for i, n := range names {
		out[i] = Socket{Name: n}
	}
	return out
}

// Node is a positioned box with ordered input and output sockets and an
// opaque payload. The core never inspects Payload.
type Node[T any] struct {
	Position geom.Point // top-left corner
	Payload  T
	Inputs   []Socket
	Outputs  []Socket
}

// NewNode returns a node at pos with the given number of unnamed sockets.
func NewNode[T any](pos geom.Point, payload T, inputs, outputs int) Node[T] {
	return Node[T]{
		Position: pos,
		Payload:  payload,
		Inputs:   make([]Socket, max(inputs, 0)),
		Outputs:  make([]Socket, max(outputs, 0)),
	}
}

// clone returns a copy that shares no slices with n.
func (n Node[T]) clone() Node[T] {
	n.Inputs = slices.Clone(n.Inputs)
	n.Outputs = slices.Clone(n.Outputs)
	return n
}

// Rect returns the node's bounding rectangle.
func (n Node[T]) Rect(th theme.Theme) geom.Rect {
	return geom.RectAt(n.Position, th.NodeSize)
}

// SocketCount returns the number of sockets on side.
func (n Node[T]) SocketCount(side Side) int {
	if side == Output {
		return len(n.Outputs)
	}
	return len(n.Inputs)
}

// Socket returns socket index on side, or INVALID_REFERENCE.
func (n Node[T]) Socket(side Side, index int) (Socket, error) {
	list := n.Inputs
	if side == Output {
		list = n.Outputs
	}
	if index < 0 || index >= len(list) {
		return Socket{}, errors.New(errors.ErrCodeInvalidReference,
			"%s socket %d out of bounds (node has %d)", side, index, len(list))
	}
	return list[index], nil
}

// SocketPosition returns the center of socket index on side. It does not
// check that the socket exists.
func (n Node[T]) SocketPosition(side Side, index int, th theme.Theme) geom.Point {
	origin := n.Position
	if side == Output {
		origin = origin.Add(th.NodeSize)
	}
	return origin.Add(geom.Pt(0, th.SocketSpacing*float64(index)))
}

// Draw emits the body, the outline, then a filled and outlined circle per
// input socket followed by the same per output socket.
func (n Node[T]) Draw(s render.Surface, th theme.Theme) {
	r := n.Rect(th)
	s.FillRect(r.Min, r.Max, th.NodeFill, th.NodeRounding)
	s.StrokeRect(r.Min, r.Max, th.NodeOutline, th.NodeRounding)

	for _, side := range [...]Side{Input, Output} {
		for i := range n.SocketCount(side) {
			p := n.SocketPosition(side, i, th)
			s.FillCircle(p, th.SocketRadius, th.SocketFill)
			s.StrokeCircle(p, th.SocketRadius, th.SocketOutline)
		}
	}
}
