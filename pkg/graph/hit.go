package graph

import (
	"fmt"
	"math"

	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/theme"
)

// Hit identifies the socket under a point.
type Hit struct {
	Node   int
	Side   Side
	Socket int
}

func (h Hit) String() string {
	return fmt.Sprintf("node %d %s socket %d", h.Node, h.Side, h.Socket)
}

// Endpoint returns the hit as a connection endpoint.
func (h Hit) Endpoint() Endpoint { return Endpoint{Node: h.Node, Socket: h.Socket} }

// FindSocket returns the socket whose hit zone contains p.
//
// Nodes are scanned in id order and the first match wins. Within a node's
// rectangle (edges inclusive) a point closer than the socket radius to the
// left edge is on the input side, otherwise closer than the radius to the
// right edge is on the output side. The socket index is
// floor((p.y - top) / spacing) and must name an existing socket on that side;
// if not, scanning continues with the next node.
func (g *Graph[T]) FindSocket(p geom.Point) (Hit, bool) {
	th := g.theme
	for id, n := range g.nodes {
		r := n.Rect(th)
		if !r.Contains(p) {
			continue
		}
		side, ok := edgeSide(p, r, th)
		if !ok {
			continue
		}
		idx, err := socketIndex(p, r, n.SocketCount(side), th)
		if err != nil {
			continue
		}
		return Hit{Node: id, Side: side, Socket: idx}, true
	}
	return Hit{}, false
}

func edgeSide(p geom.Point, r geom.Rect, th theme.Theme) (Side, bool) {
	switch {
	case p.X-r.Min.X < th.SocketRadius:
		return Input, true
	case r.Max.X-p.X < th.SocketRadius:
		return Output, true
	}
	return 0, false
}

// socketIndex maps p to a socket slot, reporting OUT_OF_RANGE when the slot
// is past the last socket.
func socketIndex(p geom.Point, r geom.Rect, count int, th theme.Theme) (int, error) {
	f := math.Floor((p.Y - r.Min.Y) / th.SocketSpacing)
	if math.IsNaN(f) || f < 0 || f >= float64(count) {
		return 0, errors.New(errors.ErrCodeOutOfRange, "socket slot %v outside [0,%d)", f, count)
	}
	return int(f), nil
}
