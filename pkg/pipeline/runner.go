package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/socketgraph/pkg/cache"
	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/observability"
	"github.com/matzehuels/socketgraph/pkg/render"
	"github.com/matzehuels/socketgraph/pkg/render/nodelink"
	"github.com/matzehuels/socketgraph/pkg/render/record"
)

// Runner encapsulates pipeline execution with conversion caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options, provided
// their scenes are not mutated concurrently.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Render draws scene once and encodes the recording in every requested
// format. Nothing is returned on error; a failing format fails the run.
func (r *Runner) Render(ctx context.Context, scene render.Scene, opts Options) (result *Result, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	topo, isTopology := scene.(nodelink.Topology)
	if (opts.wants(FormatDOT) || opts.wants(FormatOverview)) && !isTopology {
		return nil, errors.New(errors.ErrCodeUnsupported, "scene %T has no graph topology for dot output", scene)
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Formats)
	defer func() {
		observability.Render().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	// Stage 1: Record
	rec := record.New()
	if err := scene.Draw(rec); err != nil {
		return nil, fmt.Errorf("draw: %w", err)
	}
	result = &Result{Artifacts: make(map[string][]byte)}
	result.Stats.Primitives = rec.Len()
	result.Stats.DrawTime = time.Since(start)
	observability.Render().OnFrame(ctx, rec.Len(), result.Stats.DrawTime)

	// Stage 2: Bound
	if b, ok := rec.Bounds(); ok {
		result.Bounds = b
	}
	result.Viewport = result.Bounds.Inset(-opts.Padding)

	opts.Logger.Debug("recorded frame",
		"primitives", rec.Len(),
		"bounds", result.Bounds,
		"duration", result.Stats.DrawTime)

	// Stage 3: Encode
	encodeStart := time.Now()
	enc := encoder{runner: r, rec: rec, viewport: result.Viewport, opts: &opts, topo: topo}
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, hit, err := enc.encode(ctx, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		if hit {
			result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
		}
		result.Artifacts[format] = data
		opts.Logger.Debug("encoded artifact", "format", format, "bytes", len(data), "cached", hit)
	}
	result.Stats.EncodeTime = time.Since(encodeStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"primitives", result.Stats.Primitives,
		"duration", time.Since(start))

	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
