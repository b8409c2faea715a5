package geom

import "fmt"

// Point is a 2D coordinate or offset.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p multiplied by s on both axes.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// String formats the point as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }
