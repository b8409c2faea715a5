package geom

import "math"

// Rect is an axis-aligned rectangle spanning Min to Max.
type Rect struct {
	Min, Max Point
}

// RectAt returns the rectangle with top-left corner at pos and the given size.
func RectAt(pos, size Point) Rect { return Rect{Min: pos, Max: pos.Add(size)} }

// Width returns Max.X - Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the width and height as a Point.
func (r Rect) Size() Point { return r.Max.Sub(r.Min) }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// Contains reports whether p lies within r. All four edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.Y >= r.Min.Y && p.X <= r.Max.X && p.Y <= r.Max.Y
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, s.Min.X), math.Min(r.Min.Y, s.Min.Y)},
		Max: Point{math.Max(r.Max.X, s.Max.X), math.Max(r.Max.Y, s.Max.Y)},
	}
}

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}

// Inset shrinks r by n on every side. A negative n grows it.
func (r Rect) Inset(n float64) Rect {
	return Rect{
		Min: Point{r.Min.X + n, r.Min.Y + n},
		Max: Point{r.Max.X - n, r.Max.Y - n},
	}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}
