package graph

import (
	"fmt"
	"strings"

	"github.com/matzehuels/socketgraph/pkg/errors"
	"github.com/matzehuels/socketgraph/pkg/geom"
	"github.com/matzehuels/socketgraph/pkg/render"
	"github.com/matzehuels/socketgraph/pkg/theme"
)

// Policy arranges the two children of a Composite.
type Policy int

const (
	// Stacked puts the second child directly below the first.
	Stacked Policy = iota
	// SideBySide puts the second child directly right of the first.
	SideBySide
)

func (p Policy) String() string {
	switch p {
	case Stacked:
		return "stacked"
	case SideBySide:
		return "side-by-side"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts "stacked" (alias "parallel") and "side-by-side"
// (aliases "sidebyside", "sequential").
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stacked", "parallel":
		return Stacked, nil
	case "side-by-side", "sidebyside", "sequential":
		return SideBySide, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidLayout, "unknown layout policy %q", s)
}

// Composite groups two nodes. Child1 is the anchor and never moves; Child2 is
// placed against it by Policy. Composition is purely geometric; no sockets
// are connected.
type Composite[T any] struct {
	Policy Policy
	Child1 Node[T]
	Child2 Node[T]
}

// NewComposite returns a composite owning copies of both children.
func NewComposite[T any](p Policy, child1, child2 Node[T]) Composite[T] {
	return Composite[T]{Policy: p, Child1: child1.clone(), Child2: child2.clone()}
}

// Resolve repositions Child2 from Child1's position and the node size.
// Both axes are rebased from the anchor: Stacked keeps x and adds the node
// height to y; SideBySide adds the node width to x and keeps y.
func (c *Composite[T]) Resolve(th theme.Theme) error {
	anchor := c.Child1.Position
	switch c.Policy {
	case Stacked:
		c.Child2.Position = anchor.Add(geom.Pt(0, th.NodeSize.Y))
	case SideBySide:
		c.Child2.Position = anchor.Add(geom.Pt(th.NodeSize.X, 0))
	default:
		return errors.New(errors.ErrCodeInvalidLayout, "unknown layout policy %v", c.Policy)
	}
	return nil
}

// Bounds returns the rectangle covering both children as currently placed.
func (c *Composite[T]) Bounds(th theme.Theme) geom.Rect {
	return c.Child1.Rect(th).Union(c.Child2.Rect(th))
}

// Draw resolves the layout and draws Child1 then Child2.
func (c *Composite[T]) Draw(s render.Surface, th theme.Theme) error {
	if err := c.Resolve(th); err != nil {
		return err
	}
	c.Child1.Draw(s, th)
	c.Child2.Draw(s, th)
	return nil
}
