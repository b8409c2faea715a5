package arrange

import (
	"fmt"
	"math"

	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/graph"
	"github.com/matzehuels/socketgraph/pkg/theme"
)

// DefaultSweeps is the number of barycenter passes when none is set.
const DefaultSweeps = 8

// Option configures an arrangement.
type Option func(*options)

type options struct {
	gap    geom.Point // horizontal and vertical space between nodes
	hasGap bool
	sweeps int
}

// WithGap sets the space between columns (x) and between nodes in a column
// (y). Without it the gap is derived from the theme's node size.
func WithGap(x, y float64) Option {
	return func(o *options) {
		o.gap = geom.Pt(x, y)
		o.hasGap = true
	}
}

// WithSweeps sets the number of barycenter passes. Zero keeps id order.
func WithSweeps(n int) Option { return func(o *options) { o.sweeps = n } }

// Result is a computed arrangement.
type Result struct {
	Columns   []int        // column of each node id
	Order     [][]int      // node ids of each column, top to bottom
	Positions []geom.Point // top-left corner of each node id
	Crossings int          // crossings between adjacent columns
}

// Compute arranges the nodes of t. Columns are placed left to right, one
// node width plus the horizontal gap apart; each column is centred
// vertically against the tallest one.
func Compute(t Topology, th theme.Theme, opts ...Option) (Result, error) {
	o := options{sweeps: DefaultSweeps}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasGap {
		o.gap = geom.Pt(math.Round(th.NodeSize.X*2/3), math.Round(th.NodeSize.Y/2))
	}
	if o.gap.X < 0 || o.gap.Y < 0 || math.IsNaN(o.gap.X) || math.IsNaN(o.gap.Y) {
		return Result{}, errors.New(errors.ErrCodeInvalidLayout, "gap %v must not be negative", o.gap)
	}
	if o.sweeps < 0 {
		return Result{}, errors.New(errors.ErrCodeInvalidLayout, "sweeps %d must not be negative", o.sweeps)
	}

	children, parents := links(t)
	cols := Columns(t)
	ord, crossings := order(children, parents, cols, o.sweeps)

	tallest := 0
	for _, col := range ord {
		tallest = max(tallest, len(col))
	}
	step := th.NodeSize.Add(o.gap)
	pos := make([]geom.Point, len(cols))
	for c, col := range ord {
		offset := float64(tallest-len(col)) * step.Y / 2
		for row, id := range col {
			pos[id] = geom.Pt(float64(c)*step.X, offset+float64(row)*step.Y)
		}
	}

	return Result{Columns: cols, Order: ord, Positions: pos, Crossings: crossings}, nil
}

// Apply returns a copy of g with every node moved to its arranged position.
// Node ids, payloads, sockets and connections are unchanged.
func Apply[T any](g *graph.Graph[T], opts ...Option) (*graph.Graph[T], Result, error) {
	res, err := Compute(g, g.Theme(), opts...)
	if err != nil {
		return nil, Result{}, err
	}

	out := graph.New[T](graph.WithTheme(g.Theme()))
	for id, n := range g.Nodes() {
		n.Position = res.Positions[id]
		out.AddNode(n)
	}
	for _, c := range g.Connections() {
		if _, err := out.AddConnection(c.Source, c.Target); err != nil {
			return nil, Result{}, fmt.Errorf("copy connection %s: %w", c, err)
		}
	}
	return out, res, nil
}
