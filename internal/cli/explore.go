package cli

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/socketgraph/internal/demo"
	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/graph"
	"github.com/matzehuels/socketgraph/pkg/observability"
	"github.com/matzehuels/socketgraph/pkg/pipeline"
)

// Pointer step sizes in scene units.
const (
	stepSmall = 5
	stepLarge = 20
)

// Minimap size in terminal cells.
const (
	mapCols = 64
	mapRows = 16
)

var (
	mapNodeStyle    = lipgloss.NewStyle().Foreground(colorGray)
	mapPointerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	mapSourceStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
)

// snapshotFunc writes the current graph somewhere and returns the path.
type snapshotFunc func(ctx context.Context, g *demo.Graph) (string, error)

// exploreCommand creates the interactive explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		scene sceneFlags
		dir   string
	)

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore the demo graph interactively",
		Long: `Move a pointer over the demo graph and connect sockets from the terminal.

Keys:
  arrows          move the pointer (shift: faster)
  tab, shift+tab  jump between sockets
  space           pick an output socket, then drop on an input socket
  esc             cancel the pending connection
  w               write an SVG snapshot
  q               quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := scene.loadScene(ctx)
			if err != nil {
				return err
			}

			m := newExploreModel(ctx, g, c.snapshotter(dir))
			final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(exploreModel); ok && fm.added > 0 {
				printSuccess("Added %d connection(s)", fm.added)
			}
			return nil
		},
	}

	scene.register(cmd)
	cmd.Flags().StringVar(&dir, "snapshot-dir", ".", "directory for snapshots written with w")
	return cmd
}

// snapshotter returns a snapshotFunc writing numbered SVG files into dir.
// The conversion cache is not used since SVG output needs no conversion.
func (c *CLI) snapshotter(dir string) snapshotFunc {
	n := 0
	return func(ctx context.Context, g *demo.Graph) (string, error) {
		runner, err := c.newRunner(true)
		if err != nil {
			return "", err
		}
		defer runner.Close()

		opts := pipeline.Options{
			Formats:     []string{pipeline.FormatSVG},
			StrokeWidth: g.Theme().OutlineWidth,
			Label:       demo.Label(g),
		}
		result, err := runner.Render(ctx, g, opts)
		if err != nil {
			return "", err
		}
		n++
		paths, err := writeArtifacts(result, opts.Formats, filepath.Join(dir, fmt.Sprintf("snapshot-%d.svg", n)))
		if err != nil {
			return "", err
		}
		return paths[0], nil
	}
}

// exploreModel is the bubbletea model of the explore command.
type exploreModel struct {
	ctx      context.Context
	g        *demo.Graph
	snapshot snapshotFunc

	pointer geom.Point
	hit     graph.Hit
	onHit   bool
	source  *graph.Hit // pending connection start

	anchors []graph.Hit
	anchor  int

	added  int
	status string
}

func newExploreModel(ctx context.Context, g *demo.Graph, snap snapshotFunc) exploreModel {
	m := exploreModel{
		ctx:      ctx,
		g:        g,
		snapshot: snap,
		anchors:  socketAnchors(g),
		anchor:   -1,
	}
	if len(m.anchors) > 0 {
		m.anchor = 0
		m.pointer = anchorPoint(g, m.anchors[0])
	}
	m.locate()
	return m
}

// socketAnchors lists every socket that can be reached by hit-testing its
// anchor point, in node then side then index order.
func socketAnchors(g *demo.Graph) []graph.Hit {
	var out []graph.Hit
	for id, n := range g.Nodes() {
		for _, side := range []graph.Side{graph.Input, graph.Output} {
			for i := range n.SocketCount(side) {
				want := graph.Hit{Node: id, Side: side, Socket: i}
				if got, ok := g.FindSocket(anchorPoint(g, want)); ok && got == want {
					out = append(out, want)
				}
			}
		}
	}
	return out
}

// anchorPoint is the centre of a socket's hit zone.
func anchorPoint(g *demo.Graph, h graph.Hit) geom.Point {
	th := g.Theme()
	n, err := g.Node(h.Node)
	if err != nil {
		return geom.Point{}
	}
	r := n.Rect(th)
	x := r.Min.X + th.SocketRadius/2
	if h.Side == graph.Output {
		x = r.Max.X - th.SocketRadius/2
	}
	y := r.Min.Y + th.SocketSpacing*(float64(h.Socket)+0.5)
	return geom.Pt(x, math.Min(y, r.Max.Y))
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left":
		m.move(-stepSmall, 0)
	case "right":
		m.move(stepSmall, 0)
	case "up":
		m.move(0, -stepSmall)
	case "down":
		m.move(0, stepSmall)
	case "shift+left":
		m.move(-stepLarge, 0)
	case "shift+right":
		m.move(stepLarge, 0)
	case "shift+up":
		m.move(0, -stepLarge)
	case "shift+down":
		m.move(0, stepLarge)
	case "tab":
		m.cycle(1)
	case "shift+tab":
		m.cycle(-1)
	case " ", "space":
		m.pick()
	case "esc":
		if m.source != nil {
			m.source = nil
			m.status = "connection canceled"
		}
	case "w":
		m.write()
	}
	return m, nil
}

func (m *exploreModel) move(dx, dy float64) {
	m.pointer = m.pointer.Add(geom.Pt(dx, dy))
	m.locate()
}

func (m *exploreModel) cycle(dir int) {
	if len(m.anchors) == 0 {
		return
	}
	m.anchor = (m.anchor + dir + len(m.anchors)) % len(m.anchors)
	m.pointer = anchorPoint(m.g, m.anchors[m.anchor])
	m.locate()
}

// locate hit-tests the pointer.
func (m *exploreModel) locate() {
	m.hit, m.onHit = m.g.FindSocket(m.pointer)
	observability.Interaction().OnSocketHit(m.ctx, m.hit.Node, m.hit.Side.String(), m.hit.Socket, m.onHit)
}

// pick starts a connection on an output socket or finishes one on an input
// socket. Picking empty space cancels a pending connection.
func (m *exploreModel) pick() {
	switch {
	case !m.onHit:
		if m.source != nil {
			m.source = nil
			m.status = "connection canceled"
		}
	case m.hit.Side == graph.Output:
		h := m.hit
		m.source = &h
		m.status = "connecting from " + demo.SocketName(m.g, h.Node, h.Side, h.Socket)
	case m.source == nil:
		m.status = "start a connection on an output socket"
	default:
		src, dst := m.source.Endpoint(), m.hit.Endpoint()
		m.source = nil
		c, err := connect(m.ctx, m.g, src, dst)
		if err != nil {
			m.status = "connect failed: " + err.Error()
			return
		}
		m.added++
		m.status = fmt.Sprintf("connected %s → %s (%s)",
			demo.SocketName(m.g, src.Node, graph.Output, src.Socket),
			demo.SocketName(m.g, dst.Node, graph.Input, dst.Socket), c)
	}
}

func (m *exploreModel) write() {
	if m.snapshot == nil {
		return
	}
	path, err := m.snapshot(m.ctx, m.g)
	if err != nil {
		m.status = "snapshot failed: " + err.Error()
		return
	}
	m.status = "wrote " + path
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("arrows move  tab socket  space connect  esc cancel  w snapshot  q quit"))
	b.WriteString("\n\n")
	b.WriteString(m.minimap())
	b.WriteString("\n\n")

	b.WriteString(StyleDim.Render("pointer ") + StyleValue.Render(m.pointer.String()))
	b.WriteString("\n")
	if m.onHit {
		b.WriteString(StyleDim.Render("socket  ") + StyleHighlight.Render(describeHit(m.g, m.hit, true)))
	} else {
		b.WriteString(StyleDim.Render("socket  none"))
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(StyleDim.Render("status  ") + StyleValue.Render(m.status))
		b.WriteString("\n")
	}

	if m.onHit {
		if conns, err := m.g.ConnectionsTouching(m.hit.Node); err == nil && len(conns) > 0 {
			b.WriteString("\n")
			b.WriteString(connectionsTable(m.g, conns).Render())
			b.WriteString("\n")
		}
	}
	return b.String()
}

// minimap draws node outlines and the pointer scaled into a fixed grid.
func (m exploreModel) minimap() string {
	th := m.g.Theme()
	bounds := m.g.Bounds().Extend(m.pointer)
	if bounds.Empty() {
		return StyleDim.Render("(empty graph)")
	}

	cell := func(p geom.Point) (int, int) {
		c := int((p.X - bounds.Min.X) / bounds.Width() * (mapCols - 1))
		r := int((p.Y - bounds.Min.Y) / bounds.Height() * (mapRows - 1))
		return c, r
	}

	grid := make([][]rune, mapRows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", mapCols))
	}
	for id, n := range m.g.Nodes() {
		box := n.Rect(th)
		c0, r0 := cell(box.Min)
		c1, r1 := cell(box.Max)
		for c := c0; c <= c1; c++ {
			grid[r0][c], grid[r1][c] = '─', '─'
		}
		for r := r0; r <= r1; r++ {
			grid[r][c0], grid[r][c1] = '│', '│'
		}
		grid[r0][c0], grid[r0][c1], grid[r1][c0], grid[r1][c1] = '┌', '┐', '└', '┘'
		label := []rune(fmt.Sprint(id))
		mc, mr := (c0+c1)/2, (r0+r1)/2
		for i, ch := range label {
			if mc+i < c1 {
				grid[mr][mc+i] = ch
			}
		}
	}

	pc, pr := cell(m.pointer)
	sc, sr := -1, -1
	if m.source != nil {
		sc, sr = cell(anchorPoint(m.g, *m.source))
	}

	var b strings.Builder
	for r, row := range grid {
		for c, ch := range row {
			switch {
			case r == pr && c == pc:
				b.WriteString(mapPointerStyle.Render("+"))
			case r == sr && c == sc:
				b.WriteString(mapSourceStyle.Render("●"))
			default:
				b.WriteString(mapNodeStyle.Render(string(ch)))
			}
		}
		if r < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
