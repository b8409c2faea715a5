package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/socketgraph/internal/demo"
	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/pipeline"
	"github.com/matzehuels/socketgraph/pkg/render"
	"github.com/matzehuels/socketgraph/pkg/theme"
)

// defaultBase is the output base name when -o is not given.
const defaultBase = "graph"

// renderFlags holds the output flags shared by render and connect.
type renderFlags struct {
	output     string  // output file (single format) or base path
	formats    string  // comma-separated formats
	scale      float64 // raster scale
	padding    float64 // margin around the drawing
	background string  // canvas color, "" or "none" for transparent
	title      string  // svg title
	noCache    bool    // disable the conversion cache
	refresh    bool    // ignore cached conversions
	rsvg       bool    // rasterise png with rsvg-convert
}

func (f *renderFlags) register(cmd *cobra.Command, output string) {
	cmd.Flags().StringVarP(&f.output, "output", "o", output, "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", pipeline.FormatSVG, "output format(s): svg, png, pdf, dot, overview (comma-separated)")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "pixel density for png output")
	cmd.Flags().Float64Var(&f.padding, "padding", pipeline.DefaultPadding, "margin around the drawing")
	cmd.Flags().StringVar(&f.background, "background", defaultBackground, "canvas color as #rrggbb, or none")
	cmd.Flags().StringVar(&f.title, "title", "", "title embedded in svg output")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "reconvert even if a cached result exists")
	cmd.Flags().BoolVar(&f.rsvg, "rsvg", false, "rasterise png with rsvg-convert instead of the built-in renderer")
}

// options converts the flags into pipeline options.
func (f *renderFlags) options(g *demo.Graph) (pipeline.Options, error) {
	opts := pipeline.Options{
		Formats:     pipeline.ParseFormats(f.formats),
		Scale:       f.scale,
		Padding:     f.padding,
		NoPadding:   f.padding == 0,
		StrokeWidth: g.Theme().OutlineWidth,
		Title:       f.title,
		UseRSVG:     f.rsvg,
		Refresh:     f.refresh,
		Label:       demo.Label(g),
	}
	if bg := strings.ToLower(f.background); bg != "" && bg != "none" {
		c, err := theme.ParseColor(f.background)
		if err != nil {
			return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "background")
		}
		opts.Background = c
	}
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		scene sceneFlags
		out   renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo graph",
		Long: `Render the demo graph to one or more files.

Nodes, sockets and connections are drawn once and written as SVG and PNG
natively. PDF and --rsvg PNG output are converted from the SVG with
rsvg-convert and cached locally. The dot format writes Graphviz source of the
graph's wiring and overview renders that source with Graphviz.`,
		Example: `  socketgraph render
  socketgraph render -f svg,png --scale 3 -o out/graph
  socketgraph render --layout side-by-side --theme my-theme.toml -f pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := scene.loadScene(cmd.Context())
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), g, out)
		},
	}

	scene.register(cmd)
	out.register(cmd, "")
	return cmd
}

// runRender renders g with the given flags and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, g *demo.Graph, f renderFlags) error {
	opts, err := f.options(g)
	if err != nil {
		return err
	}
	opts.Logger = loggerFromContext(ctx)

	if needsConverter(opts) && !render.ConverterAvailable() {
		printWarning("rsvg-convert not found on PATH; uncached conversions will fail")
	}

	runner, err := c.newRunner(f.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spin := startSpinner(ctx, os.Stderr, renderMessage(opts.Formats))
	prog := newProgress(opts.Logger)
	result, err := runner.Render(ctx, g, opts)
	if err != nil {
		spin.Fail("Render")
		return err
	}

	spin.Update("Writing files...")
	paths, err := writeArtifacts(result, opts.Formats, f.output)
	if err != nil {
		spin.Fail("Write")
		return err
	}
	spin.Stop()
	prog.done(fmt.Sprintf("Rendered %d primitives", result.Stats.Primitives))
	printSuccess("Rendered %d file(s)", len(paths))
	for _, p := range paths {
		printFile(p)
	}
	printStats(g.Len(), len(g.Connections()), result.Stats.Primitives, result.CacheInfo.Hits)
	return nil
}

// needsConverter reports whether opts requests output produced by
// rsvg-convert.
func needsConverter(opts pipeline.Options) bool {
	for _, f := range opts.Formats {
		if f == pipeline.FormatPDF || (f == pipeline.FormatPNG && opts.UseRSVG) {
			return true
		}
	}
	return false
}

// outputPaths maps each format to the file it is written to. A single format
// goes to output verbatim; several formats share output as a base name with a
// known extension stripped.
func outputPaths(formats []string, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output)
	for _, f := range formats {
		paths[f] = base + "." + pipeline.Extension(f)
	}
	return paths
}

// basePath strips a known format extension from output, defaulting to
// defaultBase.
func basePath(output string) string {
	if output == "" {
		return defaultBase
	}
	output = strings.TrimSuffix(output, ".overview.svg")
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes each requested format to disk and returns the paths
// in format order.
func writeArtifacts(result *pipeline.Result, formats []string, output string) ([]string, error) {
	targets := outputPaths(formats, output)
	written := make([]string, 0, len(formats))
	for _, f := range formats {
		path := targets[f]
		if err := errors.ValidateOutputPath(path); err != nil {
			return written, err
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return written, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, result.Artifacts[f], 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
