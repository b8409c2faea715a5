// Package record provides a Surface that remembers what was drawn.
//
// A [Recorder] is the test double for the graph core and the first stage of
// file rendering: the pipeline records a frame once, measures it with
// [Recorder.Bounds], then replays it into the real output surface.
package record

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/render"
)

// Kind identifies a drawing primitive.
type Kind int

const (
	FillRect Kind = iota
	StrokeRect
	FillCircle
	StrokeCircle
	CubicBezier
)

var kindNames = [...]string{"FillRect", "StrokeRect", "FillCircle", "StrokeCircle", "CubicBezier"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Op is one recorded primitive. Only the fields relevant to Kind are set:
// rectangles use Min, Max and Radius; circles use Center and Radius; curves
// use P0, A, B, P1 and Width.
type Op struct {
	Kind   Kind
	Color  color.NRGBA
	Min    geom.Point
	Max    geom.Point
	Center geom.Point
	Radius float64
	P0     geom.Point
	A      geom.Point
	B      geom.Point
	P1     geom.Point
	Width  float64
}

// Recorder is a Surface that appends every call to an in-memory list.
type Recorder struct {
	ops []Op
}

var _ render.Surface = (*Recorder)(nil)

// New returns an empty Recorder.
func New() *Recorder { return &Recorder{} }

func (r *Recorder) FillRect(min, max geom.Point, c color.NRGBA, radius float64) {
	r.ops = append(r.ops, Op{Kind: FillRect, Min: min, Max: max, Color: c, Radius: radius})
}

func (r *Recorder) StrokeRect(min, max geom.Point, c color.NRGBA, radius float64) {
	r.ops = append(r.ops, Op{Kind: StrokeRect, Min: min, Max: max, Color: c, Radius: radius})
}

func (r *Recorder) FillCircle(center geom.Point, radius float64, c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: FillCircle, Center: center, Radius: radius, Color: c})
}

func (r *Recorder) StrokeCircle(center geom.Point, radius float64, c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: StrokeCircle, Center: center, Radius: radius, Color: c})
}

func (r *Recorder) CubicBezier(p0, a, b, p1 geom.Point, c color.NRGBA, width float64) {
	r.ops = append(r.ops, Op{Kind: CubicBezier, P0: p0, A: a, B: b, P1: p1, Color: c, Width: width})
}

// Ops returns the recorded primitives in call order. The slice is shared;
// callers must not modify it.
func (r *Recorder) Ops() []Op { return r.ops }

// Len returns the number of recorded primitives.
func (r *Recorder) Len() int { return len(r.ops) }

// Reset discards everything recorded so far.
func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// Filter returns the recorded primitives of the given kind, in call order.
func (r *Recorder) Filter(k Kind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many primitives of kind k were recorded.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Bounds returns the smallest rectangle enclosing every recorded primitive.
// Curves are bounded by their control polygon. ok is false when nothing has
// been recorded.
func (r *Recorder) Bounds() (b geom.Rect, ok bool) {
	for _, op := range r.ops {
		ob := op.bounds()
		if !ok {
			b, ok = ob, true
			continue
		}
		b = b.Union(ob)
	}
	return b, ok
}

func (op Op) bounds() geom.Rect {
	switch op.Kind {
	case FillRect, StrokeRect:
		return geom.Rect{Min: op.Min, Max: op.Max}
	case FillCircle, StrokeCircle:
		return geom.Rect{Min: op.Center, Max: op.Center}.Inset(-op.Radius)
	default:
		b := geom.Rect{Min: op.P0, Max: op.P0}.Extend(op.A).Extend(op.B).Extend(op.P1)
		return b.Inset(-op.Width / 2)
	}
}

// Replay issues every recorded primitive to s in the original order.
func (r *Recorder) Replay(s render.Surface) {
	r.ReplayOffset(s, geom.Point{})
}

// ReplayOffset is like Replay but translates every coordinate by d.
func (r *Recorder) ReplayOffset(s render.Surface, d geom.Point) {
	for _, op := range r.ops {
		switch op.Kind {
		case FillRect:
			s.FillRect(op.Min.Add(d), op.Max.Add(d), op.Color, op.Radius)
		case StrokeRect:
			s.StrokeRect(op.Min.Add(d), op.Max.Add(d), op.Color, op.Radius)
		case FillCircle:
			s.FillCircle(op.Center.Add(d), op.Radius, op.Color)
		case StrokeCircle:
			s.StrokeCircle(op.Center.Add(d), op.Radius, op.Color)
		case CubicBezier:
			s.CubicBezier(op.P0.Add(d), op.A.Add(d), op.B.Add(d), op.P1.Add(d), op.Color, op.Width)
		}
	}
}
