package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/socketgraph/internal/demo"
	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/graph"
	"github.com/matzehuels/socketgraph/pkg/observability"
)

// hitCommand creates the hit command that reports the socket under a point.
func (c *CLI) hitCommand() *cobra.Command {
	var scene sceneFlags

	cmd := &cobra.Command{
		Use:   "hit X Y",
		Short: "Report the socket under a point",
		Long: `Hit-test the demo graph at scene coordinates X Y.

Prints "node N input|output socket S" for the first node (in id order) whose
socket hit zone contains the point, or "no socket" otherwise.`,
		Example: `  socketgraph hit 0 25
  socketgraph hit 149 5 --layout side-by-side`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			g, err := scene.loadScene(cmd.Context())
			if err != nil {
				return err
			}

			h, ok := g.FindSocket(p)
			observability.Interaction().OnSocketHit(cmd.Context(), h.Node, h.Side.String(), h.Socket, ok)
			fmt.Fprintln(cmd.OutOrStdout(), describeHit(g, h, ok))
			return nil
		},
	}

	scene.register(cmd)
	return cmd
}

// parsePoint parses scene coordinates.
func parsePoint(xs, ys string) (geom.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "x coordinate %q is not a number", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "y coordinate %q is not a number", ys)
	}
	return geom.Pt(x, y), nil
}

// describeHit formats a hit-test result with the socket's name when known.
func describeHit(g *demo.Graph, h graph.Hit, ok bool) string {
	if !ok {
		return "no socket"
	}
	return fmt.Sprintf("%s (%s)", h, demo.SocketName(g, h.Node, h.Side, h.Socket))
}
