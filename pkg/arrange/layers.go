package arrange

import "github.com/matzehuels/socketgraph/pkg/graph"

// Topology is the wiring an arrangement is computed from. *graph.Graph
// satisfies it.
type Topology interface {
	Len() int
	Connections() []graph.Connection
}

var _ Topology = (*graph.Graph[struct{}])(nil)

// links returns the distinct node-to-node edges of t, children and parents
// indexed by node id, in connection order.
func links(t Topology) (children, parents [][]int) {
	n := t.Len()
	children = make([][]int, n)
	parents = make([][]int, n)
	seen := make(map[[2]int]bool)
	for _, c := range t.Connections() {
		s, d := c.Source.Node, c.Target.Node
		if s == d || s < 0 || d < 0 || s >= n || d >= n || seen[[2]int{s, d}] {
			continue
		}
		seen[[2]int{s, d}] = true
		children[s] = append(children[s], d)
		parents[d] = append(parents[d], s)
	}
	return children, parents
}

// Columns returns the column of every node: 0 for nodes nothing connects
// into, otherwise one more than the deepest placed parent.
func Columns(t Topology) []int {
	children, parents := links(t)
	n := len(children)

	cols := make([]int, n)
	inDegree := make([]int, n)
	queued := make([]bool, n)
	queue := make([]int, 0, n)
	for id := range n {
		inDegree[id] = len(parents[id])
		if inDegree[id] == 0 {
			queue = append(queue, id)
			queued[id] = true
		}
	}

	next := 0
	for processed := 0; processed < n; processed++ {
		if len(queue) == 0 {
			// every remaining node sits on a cycle or behind one
			for queued[next] {
				next++
			}
			queue = append(queue, next)
			queued[next] = true
		}
		curr := queue[0]
		queue = queue[1:]

		for _, child := range children[curr] {
			if queued[child] {
				continue
			}
			if col := cols[curr] + 1; col > cols[child] {
				cols[child] = col
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
				queued[child] = true
			}
		}
	}
	return cols
}
