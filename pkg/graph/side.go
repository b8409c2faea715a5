package graph

import "fmt"

// Side selects the input or output sockets of a node.
type Side int

const (
	Input Side = iota
	Output
)

func (s Side) String() string {
	switch s {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}
