package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/socketgraph/internal/demo"
	"github.com/matzehuels/socketgraph/pkg/arrange"
	"github.com/matzehuels/socketgraph/pkg/buildinfo"
	"github.com/matzehuels/socketgraph/pkg/cache"
	"github.com/matzehuels/socketgraph/pkg/graph"
	"github.com/matzehuels/socketgraph/pkg/observability"
	"github.com/matzehuels/socketgraph/pkg/pipeline"
	"github.com/matzehuels/socketgraph/pkg/theme"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "socketgraph"

	// defaultBackground is the canvas color of the interactive editor.
	defaultBackground = "#738c99"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Socketgraph draws and edits socket-based node graphs",
		Long:         `Socketgraph is a CLI for a visual node graph: nodes with input and output sockets, connections drawn as curves, and hit-testing that maps a pointer to the socket under it.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.registerHooks()
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.hitCommand())
	root.AddCommand(c.connectCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// registerHooks routes observability events to the debug log.
func (c *CLI) registerHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
	observability.SetInteractionHooks(h)
}

// =============================================================================
// Scene Loading
// =============================================================================

// sceneFlags are shared by every command that builds the demo graph.
type sceneFlags struct {
	themePath string
	layout    string
	arrange   bool
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.themePath, "theme", "", "theme file (default: "+filepath.Join("$XDG_CONFIG_HOME", appName, theme.FileName)+" if present)")
	cmd.Flags().StringVar(&f.layout, "layout", graph.Stacked.String(), "composite layout: stacked, side-by-side")
	cmd.Flags().BoolVar(&f.arrange, "arrange", false, "re-place nodes in columns following their connections")
}

// loadScene resolves the theme and layout policy and builds the demo graph.
func (f *sceneFlags) loadScene(ctx context.Context) (*demo.Graph, error) {
	logger := loggerFromContext(ctx)

	policy, err := graph.ParsePolicy(f.layout)
	if err != nil {
		return nil, err
	}
	th, source, err := theme.Resolve(f.themePath)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved theme", "source", source)

	g, err := demo.Build(th, policy)
	if err != nil {
		return nil, err
	}
	logger.Debug("built graph", "nodes", g.Len(), "connections", len(g.Connections()), "layout", policy)

	if !f.arrange {
		return g, nil
	}
	arranged, res, err := arrange.Apply(g)
	if err != nil {
		return nil, err
	}
	logger.Debug("arranged graph", "columns", len(res.Order), "crossings", res.Crossings)
	return arranged, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped by
// build version.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cc, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/socketgraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
