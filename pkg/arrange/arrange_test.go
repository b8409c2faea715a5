package arrange

import (
	"slices"
	"testing"

	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/graph"
	"github.com/matzehuels/socketgraph/pkg/theme"
)

// wired builds a graph of n nodes with one input and one output socket each
// plus the given node-to-node connections on socket 0.
func wired(t *testing.T, n int, edges ...[2]int) *graph.Graph[string] {
	t.Helper()
	g := graph.New[string]()
	for i := range n {
		g.AddNode(graph.NewNode(geom.Pt(float64(i)*7, 0), "", 1, 1))
	}
	for _, e := range edges {
		if _, err := g.AddConnection(graph.Endpoint{Node: e[0]}, graph.Endpoint{Node: e[1]}); err != nil {
			t.Fatalf("AddConnection %v: %v", e, err)
		}
	}
	return g
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][2]int
		want  []int
	}{
		{"empty", 0, nil, []int{}},
		{"isolated", 3, nil, []int{0, 0, 0}},
		{"chain", 3, [][2]int{{0, 1}, {1, 2}}, []int{0, 1, 2}},
		{"reverse ids", 3, [][2]int{{2, 1}, {1, 0}}, []int{2, 1, 0}},
		{"longest path wins", 4, [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}}, []int{0, 1, 2, 3}},
		{"self connection", 2, [][2]int{{0, 0}, {0, 1}}, []int{0, 1}},
		{"repeated pair", 2, [][2]int{{0, 1}, {0, 1}}, []int{0, 1}},
		{"cycle", 3, [][2]int{{0, 1}, {1, 2}, {2, 1}}, []int{0, 1, 2}},
		{"closed cycle", 2, [][2]int{{0, 1}, {1, 0}}, []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Columns(wired(t, tt.n, tt.edges...))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Columns = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColumnsRespectConnections(t *testing.T) {
	g := wired(t, 6, [2]int{0, 3}, [2]int{1, 3}, [2]int{3, 4}, [2]int{2, 4}, [2]int{4, 5}, [2]int{0, 5})
	cols := Columns(g)
	for _, c := range g.Connections() {
		if cols[c.Source.Node] >= cols[c.Target.Node] {
			t.Errorf("connection %s goes from column %d to %d", c, cols[c.Source.Node], cols[c.Target.Node])
		}
	}
}

func TestLayerCrossings(t *testing.T) {
	children := [][]int{{3}, {2}, nil, nil}

	if got := layerCrossings(children, []int{0, 1}, []int{2, 3}); got != 1 {
		t.Errorf("crossed = %d, want 1", got)
	}
	if got := layerCrossings(children, []int{0, 1}, []int{3, 2}); got != 0 {
		t.Errorf("uncrossed = %d, want 0", got)
	}
	if got := layerCrossings(children, nil, []int{2, 3}); got != 0 {
		t.Errorf("empty = %d, want 0", got)
	}

	// complete bipartite 3x3: every pair of edges with distinct ends crosses once
	full := [][]int{{3, 4, 5}, {3, 4, 5}, {3, 4, 5}, nil, nil, nil}
	if got := layerCrossings(full, []int{0, 1, 2}, []int{3, 4, 5}); got != 9 {
		t.Errorf("K3,3 = %d, want 9", got)
	}
}

func TestComputeRemovesCrossing(t *testing.T) {
	// 0 -> 3 and 1 -> 2 cross in id order
	g := wired(t, 4, [2]int{0, 3}, [2]int{1, 2})
	th := theme.Default()

	res, err := Compute(g, th, WithGap(50, 10))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.Crossings != 0 {
		t.Errorf("Crossings = %d, want 0", res.Crossings)
	}
	if want := [][]int{{0, 1}, {3, 2}}; !slices.EqualFunc(res.Order, want, slices.Equal) {
		t.Errorf("Order = %v, want %v", res.Order, want)
	}

	want := []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(0, 110),
		geom.Pt(200, 110),
		geom.Pt(200, 0),
	}
	if !slices.Equal(res.Positions, want) {
		t.Errorf("Positions = %v, want %v", res.Positions, want)
	}

	unsorted, err := Compute(g, th, WithSweeps(0))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if unsorted.Crossings != 1 {
		t.Errorf("Crossings without sweeps = %d, want 1", unsorted.Crossings)
	}
}

func TestComputeCentresColumns(t *testing.T) {
	g := wired(t, 4, [2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3})
	res, err := Compute(g, theme.Default(), WithGap(0, 0))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// three nodes 100 high in column 0, the sink centred against them
	if got := res.Positions[3]; got != geom.Pt(150, 100) {
		t.Errorf("sink at %v, want (150,100)", got)
	}
}

func TestComputeDefaultGap(t *testing.T) {
	g := wired(t, 2, [2]int{0, 1})
	res, err := Compute(g, theme.Default())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := res.Positions[1]; got != geom.Pt(250, 0) {
		t.Errorf("Positions[1] = %v, want (250,0)", got)
	}
}

func TestComputeErrors(t *testing.T) {
	g := wired(t, 1)
	tests := []struct {
		name string
		opt  Option
	}{
		{"negative gap", WithGap(-1, 0)},
		{"negative sweeps", WithSweeps(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(g, theme.Default(), tt.opt)
			if !errors.Is(err, errors.ErrCodeInvalidLayout) {
				t.Errorf("error = %v, want INVALID_LAYOUT", err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	g := wired(t, 3, [2]int{2, 1}, [2]int{1, 0})
	before := g.Nodes()

	out, res, err := Apply(g)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Len() != g.Len() || len(out.Connections()) != len(g.Connections()) {
		t.Fatalf("Apply changed size: %d nodes, %d connections", out.Len(), len(out.Connections()))
	}
	for id, n := range out.Nodes() {
		if n.Position != res.Positions[id] {
			t.Errorf("node %d at %v, want %v", id, n.Position, res.Positions[id])
		}
	}
	if !slices.Equal(out.Connections(), g.Connections()) {
		t.Errorf("connections = %v, want %v", out.Connections(), g.Connections())
	}

	// the source graph is untouched
	for id, n := range g.Nodes() {
		if n.Position != before[id].Position {
			t.Errorf("source node %d moved to %v", id, n.Position)
		}
	}
}

func TestApplyKeepsSocketsReachable(t *testing.T) {
	g := wired(t, 3, [2]int{0, 1}, [2]int{0, 2})
	out, _, err := Apply(g)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	th := out.Theme()
	for id, n := range out.Nodes() {
		p := n.Position.Add(geom.Pt(1, th.SocketSpacing/2))
		h, ok := out.FindSocket(p)
		if !ok || h != (graph.Hit{Node: id, Side: graph.Input, Socket: 0}) {
			t.Errorf("node %d input: hit %v (%v)", id, h, ok)
		}
	}
}
