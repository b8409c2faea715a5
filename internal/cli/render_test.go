package cli

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/socketgraph/internal/demo"
	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/graph"
	"github.com/matzehuels/socketgraph/pkg/pipeline"
	"github.com/matzehuels/socketgraph/pkg/theme"
)

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		output  string
		want    map[string]string
	}{
		{"single default", []string{"svg"}, "", map[string]string{"svg": "graph.svg"}},
		{"single verbatim", []string{"png"}, "out/picture.img", map[string]string{"png": "out/picture.img"}},
		{"multiple base", []string{"svg", "pdf"}, "out/g", map[string]string{"svg": "out/g.svg", "pdf": "out/g.pdf"}},
		{"multiple strips extension", []string{"svg", "png"}, "g.svg", map[string]string{"svg": "g.svg", "png": "g.png"}},
		{"overview", []string{"dot", "overview"}, "", map[string]string{"dot": "graph.dot", "overview": "graph.overview.svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.formats, tt.output)
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths = %v, want %v", got, tt.want)
			}
			for f, p := range tt.want {
				if got[f] != p {
					t.Errorf("%s -> %q, want %q", f, got[f], p)
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", defaultBase},
		{"a/b", "a/b"},
		{"a/b.png", "a/b"},
		{"a/b.overview.svg", "a/b"},
		{"a/b.txt", "a/b.txt"},
	}
	for _, tt := range tests {
		if got := basePath(tt.in); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderFlagsOptions(t *testing.T) {
	g, err := demo.Build(theme.Default(), graph.Stacked)
	if err != nil {
		t.Fatal(err)
	}

	f := renderFlags{formats: "SVG, png", scale: 3, padding: 0, background: "#ff0000"}
	opts, err := f.options(g)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(opts.Formats) != 2 || opts.Formats[0] != pipeline.FormatSVG || opts.Formats[1] != pipeline.FormatPNG {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if !opts.NoPadding {
		t.Error("zero padding should set NoPadding")
	}
	if opts.Background != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("Background = %v", opts.Background)
	}
	if opts.Label(0) != "source" {
		t.Errorf("Label(0) = %q", opts.Label(0))
	}

	f.background = "none"
	opts, err = f.options(g)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Background != (color.NRGBA{}) {
		t.Errorf("none background = %v", opts.Background)
	}

	f.formats = "svg,jpeg"
	if _, err := f.options(g); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	result := &pipeline.Result{Artifacts: map[string][]byte{
		"svg": []byte("<svg/>"),
		"dot": []byte("digraph {}"),
	}}

	paths, err := writeArtifacts(result, []string{"svg", "dot"}, filepath.Join(dir, "sub", "g"))
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	want := []string{filepath.Join(dir, "sub", "g.svg"), filepath.Join(dir, "sub", "g.dot")}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], p)
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s not written: %v", p, err)
		}
	}

	if _, err := writeArtifacts(result, []string{"svg"}, "bad\x00name.svg"); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("control character path error = %v", err)
	}
}
