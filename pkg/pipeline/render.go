package pipeline

import (
	"context"

	"github.com/matzehuels/socketgraph/pkg/cache"
	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/render"
	"github.com/matzehuels/socketgraph/pkg/render/nodelink"
	"github.com/matzehuels/socketgraph/pkg/render/raster"
	"github.com/matzehuels/socketgraph/pkg/render/record"
	"github.com/matzehuels/socketgraph/pkg/render/svg"
)

// Converter functions. Tests replace them to avoid depending on librsvg.
var (
	toPDF = render.ToPDF
	toPNG = render.ToPNG
)

// encoder produces artifacts from one recorded frame. The SVG document is
// built at most once and shared by the formats converted from it.
type encoder struct {
	runner   *Runner
	rec      *record.Recorder
	viewport geom.Rect
	opts     *Options
	topo     nodelink.Topology

	svg []byte
	dot string
}

func (e *encoder) encode(ctx context.Context, format string) (data []byte, hit bool, err error) {
	switch format {
	case FormatSVG:
		return e.vector(), false, nil
	case FormatPNG:
		if e.opts.UseRSVG {
			return e.convert(ctx, FormatPNG)
		}
		data, err = e.raster()
		return data, false, err
	case FormatPDF:
		return e.convert(ctx, FormatPDF)
	case FormatDOT:
		return []byte(e.topology()), false, nil
	case FormatOverview:
		data, err = nodelink.RenderSVG(ctx, e.topology())
		return data, false, err
	default:
		return nil, false, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

func (e *encoder) vector() []byte {
	if e.svg != nil {
		return e.svg
	}
	opts := []svg.Option{svg.WithStrokeWidth(e.opts.StrokeWidth)}
	if e.opts.Background.A > 0 {
		opts = append(opts, svg.WithBackground(e.opts.Background))
	}
	if e.opts.Title != "" {
		opts = append(opts, svg.WithTitle(e.opts.Title))
	}
	doc := svg.New(e.viewport, opts...)
	e.rec.Replay(doc)
	e.svg = doc.Bytes()
	return e.svg
}

func (e *encoder) raster() ([]byte, error) {
	opts := []raster.Option{raster.WithStrokeWidth(e.opts.StrokeWidth)}
	if e.opts.Background.A > 0 {
		opts = append(opts, raster.WithBackground(e.opts.Background))
	}
	s, err := raster.New(e.viewport, e.opts.Scale, opts...)
	if err != nil {
		return nil, err
	}
	e.rec.Replay(s)
	return s.PNG()
}

// convert runs the SVG through rsvg-convert, memoised by content.
func (e *encoder) convert(ctx context.Context, format string) ([]byte, bool, error) {
	src := e.vector()
	keyOpts := cache.ConversionKeyOpts{Tool: "rsvg-convert"}
	if format == FormatPNG {
		keyOpts.Scale = e.opts.Scale
	}
	run := func() ([]byte, error) {
		if format == FormatPNG {
			return toPNG(ctx, src, e.opts.Scale)
		}
		return toPDF(ctx, src)
	}

	if e.opts.Refresh {
		data, err := run()
		return data, false, err
	}
	key := e.runner.Keyer.ConversionKey(format, src, keyOpts)
	return cache.Fetch(ctx, e.runner.Cache, key, format, cache.TTLConversion, run)
}

func (e *encoder) topology() string {
	if e.dot == "" {
		e.dot = nodelink.ToDOT(e.topo, nodelink.Options{Detailed: true, Label: e.opts.Label})
	}
	return e.dot
}
