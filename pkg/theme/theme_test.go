package theme

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
)

func TestDefault(t *testing.T) {
	th := Default()

	if th.NodeSize != geom.Pt(150, 100) {
		t.Errorf("NodeSize = %v, want (150,100)", th.NodeSize)
	}
	if th.SocketRadius != 4 || th.SocketSpacing != 20 {
		t.Errorf("socket radius/spacing = %v/%v, want 4/20", th.SocketRadius, th.SocketSpacing)
	}
	if th.CurveControlOffset != 50 || th.CurveWidth != 2 {
		t.Errorf("curve offset/width = %v/%v, want 50/2", th.CurveControlOffset, th.CurveWidth)
	}
	if err := th.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Theme)
	}{
		{"zero width", func(th *Theme) { th.NodeSize.X = 0 }},
		{"negative height", func(th *Theme) { th.NodeSize.Y = -1 }},
		{"zero spacing", func(th *Theme) { th.SocketSpacing = 0 }},
		{"zero radius", func(th *Theme) { th.SocketRadius = 0 }},
		{"negative rounding", func(th *Theme) { th.NodeRounding = -2 }},
		{"zero curve width", func(th *Theme) { th.CurveWidth = 0 }},
		{"zero outline width", func(th *Theme) { th.OutlineWidth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := Default()
			tt.modify(&th)
			err := th.Validate()
			if !errors.Is(err, errors.ErrCodeInvalidTheme) {
				t.Errorf("Validate() = %v, want %s", err, errors.ErrCodeInvalidTheme)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ffffff", color.NRGBA{255, 255, 255, 255}, false},
		{"#666666", color.NRGBA{102, 102, 102, 255}, false},
		{"#fff", color.NRGBA{255, 255, 255, 255}, false},
		{" #000000 ", color.NRGBA{0, 0, 0, 255}, false},
		{"#ff000080", color.NRGBA{255, 0, 0, 128}, false},
		{"white", color.NRGBA{}, true},
		{"#ff0000zz", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.NRGBA{204, 204, 204, 255}); got != "#cccccc" {
		t.Errorf("Hex = %q, want #cccccc", got)
	}
	if got := Hex(color.NRGBA{255, 0, 0, 128}); got != "#ff000080" {
		t.Errorf("Hex = %q, want #ff000080", got)
	}
}

func TestEncodeDecodeKeepsDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Default()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, key := range []string{"[node]", "[socket]", "[curve]", "control_offset"} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("encoded theme missing %q:\n%s", key, buf.String())
		}
	}

	got, err := Decode(&buf, Theme{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != Default() {
		t.Errorf("Decode(Encode(Default())) = %+v", got)
	}
}

func TestDecodePartial(t *testing.T) {
	input := `
[socket]
spacing = 30

[curve]
color = "#ff0000"
`
	got, err := Decode(strings.NewReader(input), Default())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.SocketSpacing != 30 {
		t.Errorf("SocketSpacing = %v, want 30", got.SocketSpacing)
	}
	if got.CurveColor != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("CurveColor = %v", got.CurveColor)
	}
	if got.NodeSize != Default().NodeSize {
		t.Errorf("NodeSize = %v, want default", got.NodeSize)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", "[node\nwidth = 1"},
		{"unknown key", "[node]\ncolour = \"#fff\""},
		{"bad color", "[node]\nfill = \"blue\""},
		{"invalid size", "[node]\nwidth = 0"},
		{"zero outline width", "[node]\noutline_width = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), Default())
			if !errors.Is(err, errors.ErrCodeInvalidTheme) {
				t.Errorf("Decode() = %v, want %s", err, errors.ErrCodeInvalidTheme)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	th := Default()
	th.NodeSize = geom.Pt(200, 120)
	if err := Save(path, th); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != th {
		t.Errorf("Load = %+v, want %+v", got, th)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	th, src, err := Resolve("")
	if err != nil || src != "default" || th != Default() {
		t.Fatalf("Resolve without file = %+v, %q, %v", th, src, err)
	}

	custom := Default()
	custom.SocketRadius = 6
	path := filepath.Join(dir, "socketgraph", FileName)
	if err := Save(path, custom); err != nil {
		t.Fatalf("Save: %v", err)
	}

	th, src, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if src != path || th.SocketRadius != 6 {
		t.Errorf("Resolve = radius %v from %q", th.SocketRadius, src)
	}

	explicit := filepath.Join(t.TempDir(), "explicit.toml")
	if err := os.WriteFile(explicit, []byte("[node]\nwidth = 90\n"), 0644); err != nil {
		t.Fatal(err)
	}
	th, src, err = Resolve(explicit)
	if err != nil || src != explicit || th.NodeSize.X != 90 {
		t.Errorf("Resolve(explicit) = %v, %q, %v", th.NodeSize, src, err)
	}
}
