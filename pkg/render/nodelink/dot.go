package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/socketgraph/pkg/graph"
)

// Topology is the read-only view of a graph needed to draw its wiring.
// [graph.Graph] satisfies it for any payload type.
type Topology interface {
	Len() int
	SocketCounts(id int) (inputs, outputs int)
	Connections() []graph.Connection
}

var _ Topology = (*graph.Graph[struct{}])(nil)

// Options configures the DOT output.
type Options struct {
	// Detailed labels every port with its socket index. When false, ports
	// are drawn as empty cells.
	Detailed bool

	// Label returns the title for node id. Nil means "node N".
	Label func(id int) string
}

// ToDOT converts t to Graphviz DOT source with left-to-right flow: inputs on
// the left of each record, outputs on the right.
func ToDOT(t Topology, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=Mrecord, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [arrowsize=0.6];\n")
	buf.WriteString("\n")

	for id := range t.Len() {
		in, out := t.SocketCounts(id)
		fmt.Fprintf(&buf, "  %s [label=\"%s\"];\n", nodeName(id), quoteEscaper.Replace(fmtLabel(id, in, out, opts)))
	}

	buf.WriteString("\n")
	for _, c := range t.Connections() {
		fmt.Fprintf(&buf, "  %s:o%d:e -> %s:i%d:w;\n",
			nodeName(c.Source.Node), c.Source.Socket, nodeName(c.Target.Node), c.Target.Socket)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(id int) string { return "n" + strconv.Itoa(id) }

// fmtLabel builds a record label of the form "{<i0>|<i1>}|title|{<o0>}".
func fmtLabel(id, inputs, outputs int, opts Options) string {
	title := fmt.Sprintf("node %d", id)
	if opts.Label != nil {
		title = opts.Label(id)
	}
	return fmtPorts("i", inputs, opts.Detailed) + "|" + escapeRecord(title) + "|" + fmtPorts("o", outputs, opts.Detailed)
}

func fmtPorts(prefix string, n int, detailed bool) string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = fmt.Sprintf("<%s%d>", prefix, i)
		if detailed {
			cells[i] += strconv.Itoa(i)
		}
	}
	return "{" + strings.Join(cells, "|") + "}"
}

// quoteEscaper escapes only double quotes so record escapes survive intact.
var quoteEscaper = strings.NewReplacer(`"`, `\"`)

var recordReplacer = strings.NewReplacer(
	`\`, `\\`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func escapeRecord(s string) string { return recordReplacer.Replace(s) }

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with a
// zero-origin viewBox and pixel size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
