// Package demo builds the example graph shown by the CLI.
package demo

import (
	"fmt"

	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/graph"
	"github.com/matzehuels/socketgraph/pkg/theme"
)

// Stage is the payload carried by every demo node.
type Stage struct {
	Name string
}

// Graph is the demo graph type.
type Graph = graph.Graph[Stage]

// Build returns a small image-processing graph: a source feeding a
// blur/sharpen composite laid out with policy, a mixer and an output.
func Build(th theme.Theme, policy graph.Policy) (*Graph, error) {
	g := graph.New[Stage](graph.WithTheme(th))
	w, h := th.NodeSize.X, th.NodeSize.Y
	gap := w * 2 / 3

	source := g.AddNode(graph.Node[Stage]{
		Position: geom.Pt(0, 0),
		Payload:  Stage{Name: "source"},
		Outputs:  graph.Sockets("image", "mask"),
	})

	blur, sharpen, err := g.AddComposite(graph.NewComposite(policy,
		graph.Node[Stage]{
			Position: geom.Pt(w+gap, h/2),
			Payload:  Stage{Name: "blur"},
			Inputs:   graph.Sockets("image", "radius"),
			Outputs:  graph.Sockets("image"),
		},
		graph.Node[Stage]{
			Payload: Stage{Name: "sharpen"},
			Inputs:  graph.Sockets("image"),
			Outputs: graph.Sockets("image"),
		},
	))
	if err != nil {
		return nil, fmt.Errorf("layout filters: %w", err)
	}

	// Place the mixer right of whatever the composite occupies.
	pair, err := g.Node(sharpen)
	if err != nil {
		return nil, fmt.Errorf("locate sharpen: %w", err)
	}
	mixX := max(pair.Position.X, w+gap) + w + gap
	mix := g.AddNode(graph.Node[Stage]{
		Position: geom.Pt(mixX, 0),
		Payload:  Stage{Name: "mix"},
		Inputs:   graph.Sockets("a", "b", "mask"),
		Outputs:  graph.Sockets("image"),
	})
	out := g.AddNode(graph.Node[Stage]{
		Position: geom.Pt(mixX+w+gap, h/2),
		Payload:  Stage{Name: "output"},
		Inputs:   graph.Sockets("image"),
	})

	links := []struct{ src, srcSocket, dst, dstSocket int }{
		{source, 0, blur, 0},
		{source, 0, sharpen, 0},
		{blur, 0, mix, 0},
		{sharpen, 0, mix, 1},
		{source, 1, mix, 2},
		{mix, 0, out, 0},
	}
	for _, l := range links {
		if _, err := g.AddConnection(
			graph.Endpoint{Node: l.src, Socket: l.srcSocket},
			graph.Endpoint{Node: l.dst, Socket: l.dstSocket},
		); err != nil {
			return nil, fmt.Errorf("wire demo: %w", err)
		}
	}
	return g, nil
}

// Label returns a function naming node ids of g by their stage.
func Label(g *Graph) func(id int) string {
	return func(id int) string {
		n, err := g.Node(id)
		if err != nil {
			return fmt.Sprintf("node %d", id)
		}
		return n.Payload.Name
	}
}

// SocketName returns "stage.socket" for a socket of g, falling back to
// indices when either is unnamed or missing.
func SocketName(g *Graph, id int, side graph.Side, index int) string {
	n, err := g.Node(id)
	if err != nil {
		return fmt.Sprintf("%d.%d", id, index)
	}
	s, err := n.Socket(side, index)
	if err != nil || s.Name == "" {
		return fmt.Sprintf("%s.%d", n.Payload.Name, index)
	}
	return n.Payload.Name + "." + s.Name
}
