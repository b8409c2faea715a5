package render

import (
	"image/color"

	"github.com/matzehuels/socketgraph/pkg/geom"
)

// Surface receives drawing primitives for one frame.
type Surface interface {
	// FillRect fills the rectangle spanning min to max, rounding corners by radius.
	FillRect(min, max geom.Point, c color.NRGBA, radius float64)
	// StrokeRect outlines the rectangle spanning min to max.
	StrokeRect(min, max geom.Point, c color.NRGBA, radius float64)
	// FillCircle fills a circle.
	FillCircle(center geom.Point, radius float64, c color.NRGBA)
	// StrokeCircle outlines a circle.
	StrokeCircle(center geom.Point, radius float64, c color.NRGBA)
	// CubicBezier strokes the curve from p0 to p1 with control points a and b.
	CubicBezier(p0, a, b, p1 geom.Point, c color.NRGBA, width float64)
}

// Scene is anything that can paint itself onto a Surface.
type Scene interface {
	Draw(s Surface) error
}

// SceneFunc adapts a function to the Scene interface.
type SceneFunc func(s Surface) error

// Draw calls f(s).
func (f SceneFunc) Draw(s Surface) error { return f(s) }
