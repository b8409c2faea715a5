package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/socketgraph/internal/demo"
	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/graph"
	"github.com/matzehuels/socketgraph/pkg/observability"
)

// connectCommand creates the connect command that wires two sockets of the
// demo graph.
func (c *CLI) connectCommand() *cobra.Command {
	var (
		scene sceneFlags
		out   renderFlags
	)

	cmd := &cobra.Command{
		Use:   "connect SRC_NODE SRC_SOCKET DST_NODE DST_SOCKET",
		Short: "Connect an output socket to an input socket",
		Long: `Connect output socket SRC_SOCKET of node SRC_NODE to input socket
DST_SOCKET of node DST_NODE in the demo graph, then list every connection
touching the source node.

Both endpoints must exist; otherwise the graph is left unchanged and an
INVALID_REFERENCE error is reported. With -o the resulting graph is rendered.`,
		Example: `  socketgraph connect 0 1 4 0
  socketgraph connect 3 0 4 0 -o wired.svg`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseInts(args)
			if err != nil {
				return err
			}
			g, err := scene.loadScene(cmd.Context())
			if err != nil {
				return err
			}

			src := graph.Endpoint{Node: ids[0], Socket: ids[1]}
			dst := graph.Endpoint{Node: ids[2], Socket: ids[3]}
			conn, err := connect(cmd.Context(), g, src, dst)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("connected",
				"from", demo.SocketName(g, src.Node, graph.Output, src.Socket),
				"to", demo.SocketName(g, dst.Node, graph.Input, dst.Socket),
				"connection", conn)

			touching, err := g.ConnectionsTouching(src.Node)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), connectionsTable(g, touching).Render())

			if out.output == "" {
				return nil
			}
			return c.runRender(cmd.Context(), g, out)
		},
	}

	scene.register(cmd)
	out.register(cmd, "")
	return cmd
}

// connect adds a connection and reports the attempt to interaction hooks.
func connect(ctx context.Context, g *demo.Graph, src, dst graph.Endpoint) (graph.Connection, error) {
	c, err := g.AddConnection(src, dst)
	observability.Interaction().OnConnect(ctx, src.Node, src.Socket, dst.Node, dst.Socket, err)
	return c, err
}

// parseInts parses node and socket indices.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%q is not an integer index", a)
		}
		out[i] = v
	}
	return out, nil
}

// connectionsTable lists connections with named endpoints.
func connectionsTable(g *demo.Graph, conns []graph.Connection) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, len(conns))
	for i, c := range conns {
		rows[i] = []string{
			strconv.Itoa(i),
			c.String(),
			demo.SocketName(g, c.Source.Node, graph.Output, c.Source.Socket),
			demo.SocketName(g, c.Target.Node, graph.Input, c.Target.Socket),
		}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Connection", "From", "To").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
}
