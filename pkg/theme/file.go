package theme

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
)

// FileName is the theme file looked up in the config directory.
const FileName = "theme.toml"

// file is the on-disk TOML shape of a Theme.
type file struct {
	Node   nodeSection   `toml:"node"`
	Socket socketSection `toml:"socket"`
	Curve  curveSection  `toml:"curve"`
}

type nodeSection struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	Rounding     float64 `toml:"rounding"`
	Fill         string  `toml:"fill"`
	Outline      string  `toml:"outline"`
	OutlineWidth float64 `toml:"outline_width"`
}

type socketSection struct {
	Radius  float64 `toml:"radius"`
	Spacing float64 `toml:"spacing"`
	Fill    string  `toml:"fill"`
	Outline string  `toml:"outline"`
}

type curveSection struct {
	Width         float64 `toml:"width"`
	ControlOffset float64 `toml:"control_offset"`
	Color         string  `toml:"color"`
}

func toFile(t Theme) file {
	return file{
		Node: nodeSection{
			Width:        t.NodeSize.X,
			Height:       t.NodeSize.Y,
			Rounding:     t.NodeRounding,
			Fill:         Hex(t.NodeFill),
			Outline:      Hex(t.NodeOutline),
			OutlineWidth: t.OutlineWidth,
		},
		Socket: socketSection{
			Radius:  t.SocketRadius,
			Spacing: t.SocketSpacing,
			Fill:    Hex(t.SocketFill),
			Outline: Hex(t.SocketOutline),
		},
		Curve: curveSection{
			Width:         t.CurveWidth,
			ControlOffset: t.CurveControlOffset,
			Color:         Hex(t.CurveColor),
		},
	}
}

func (f file) theme() (Theme, error) {
	t := Theme{
		NodeSize:           geom.Pt(f.Node.Width, f.Node.Height),
		NodeRounding:       f.Node.Rounding,
		OutlineWidth:       f.Node.OutlineWidth,
		SocketRadius:       f.Socket.Radius,
		SocketSpacing:      f.Socket.Spacing,
		CurveWidth:         f.Curve.Width,
		CurveControlOffset: f.Curve.ControlOffset,
	}

	colors := []struct {
		key string
		src string
		dst *color.NRGBA
	}{
		{"node.fill", f.Node.Fill, &t.NodeFill},
		{"node.outline", f.Node.Outline, &t.NodeOutline},
		{"socket.fill", f.Socket.Fill, &t.SocketFill},
		{"socket.outline", f.Socket.Outline, &t.SocketOutline},
		{"curve.color", f.Curve.Color, &t.CurveColor},
	}
	for _, c := range colors {
		v, err := ParseColor(c.src)
		if err != nil {
			return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "%s", c.key)
		}
		*c.dst = v
	}

	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Decode reads a TOML theme from r. Keys absent from the input keep their
// values from base; unknown keys are rejected.
func Decode(r io.Reader, base Theme) (Theme, error) {
	f := toFile(base)
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "decode theme")
	}
	if err := checkUndecoded(md); err != nil {
		return Theme{}, err
	}
	return f.theme()
}

// Load reads the theme file at path on top of [Default].
func Load(path string) (Theme, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Theme{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme %s", path)
	}
	if err != nil {
		return Theme{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Decode(f, Default())
	if err != nil {
		return Theme{}, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// Encode writes t as TOML.
func Encode(w io.Writer, t Theme) error {
	if err := toml.NewEncoder(w).Encode(toFile(t)); err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	return nil
}

// Save writes t to path, creating parent directories as needed.
func Save(path string, t Theme) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Encode(f, t)
}

// ConfigDir returns the socketgraph config directory, honoring
// XDG_CONFIG_HOME and falling back to ~/.config/socketgraph.
func ConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "socketgraph"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "socketgraph"), nil
}

// Resolve picks the theme for a run: the explicit path if given, otherwise
// the config directory file if it exists, otherwise [Default]. The second
// return value names the source ("default" or a path).
func Resolve(path string) (Theme, string, error) {
	if path != "" {
		t, err := Load(path)
		return t, path, err
	}

	dir, err := ConfigDir()
	if err != nil {
		return Default(), "default", nil
	}
	candidate := filepath.Join(dir, FileName)
	if _, err := os.Stat(candidate); err != nil {
		return Default(), "default", nil
	}
	t, err := Load(candidate)
	return t, candidate, err
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return errors.New(errors.ErrCodeInvalidTheme, "unknown theme keys: %s", strings.Join(keys, ", "))
}
