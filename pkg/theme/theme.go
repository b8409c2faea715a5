// Package theme holds the visual constants shared by every node, socket and
// curve in a graph.
//
// A [Theme] is a plain value: copy it, tweak it, pass it along. The graph core
// never reads process-wide globals, so several graphs with different themes
// can be drawn side by side.
//
// Themes can be stored as TOML:
//
//	[node]
//	width = 150
//	height = 100
//	fill = "#ffffff"
//
//	[socket]
//	radius = 4
//	spacing = 20
//
// Keys missing from a file keep their [Default] values.
package theme

import (
	"image/color"

	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
)

// Theme describes how nodes, sockets and connection curves look and where
// sockets sit. Hit-testing relies on the same values, so a graph must draw
// and hit-test with one Theme.
type Theme struct {
	NodeSize     geom.Point // shared width and height of every node
	NodeRounding float64    // corner radius of node bodies
	NodeFill     color.NRGBA
	NodeOutline  color.NRGBA

	SocketRadius  float64 // glyph radius, also the hit zone width
	SocketSpacing float64 // vertical distance between consecutive sockets
	SocketFill    color.NRGBA
	SocketOutline color.NRGBA

	OutlineWidth float64 // stroke width for node and socket outlines

	CurveWidth         float64
	CurveControlOffset float64 // horizontal distance of Bezier control points
	CurveColor         color.NRGBA
}

// Default returns the stock theme: 150x100 white nodes with grey outlines,
// light grey sockets every 20 units and 2-unit light grey curves.
func Default() Theme {
	return Theme{
		NodeSize:     geom.Pt(150, 100),
		NodeRounding: 4,
		NodeFill:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		NodeOutline:  color.NRGBA{R: 102, G: 102, B: 102, A: 255},

		SocketRadius:  4,
		SocketSpacing: 20,
		SocketFill:    color.NRGBA{R: 204, G: 204, B: 204, A: 255},
		SocketOutline: color.NRGBA{A: 255},

		OutlineWidth: 1,

		CurveWidth:         2,
		CurveControlOffset: 50,
		CurveColor:         color.NRGBA{R: 204, G: 204, B: 204, A: 255},
	}
}

// Validate reports the first measurement that cannot produce a usable
// drawing. Colors are not checked; any NRGBA value is drawable.
func (t Theme) Validate() error {
	checks := []struct {
		name     string
		v        float64
		positive bool
	}{
		{"node width", t.NodeSize.X, true},
		{"node height", t.NodeSize.Y, true},
		{"node rounding", t.NodeRounding, false},
		{"socket radius", t.SocketRadius, true},
		{"socket spacing", t.SocketSpacing, true},
		{"outline width", t.OutlineWidth, true},
		{"curve width", t.CurveWidth, true},
		{"curve control offset", t.CurveControlOffset, false},
	}
	for _, c := range checks {
		var err error
		if c.positive {
			err = errors.ValidatePositive(c.name, c.v)
		} else {
			err = errors.ValidateNonNegative(c.name, c.v)
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTheme, err, "invalid theme")
		}
	}
	return nil
}
