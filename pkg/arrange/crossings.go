package arrange

import (
	"cmp"
	"slices"
)

// layerCrossings counts crossings between the connections joining two
// adjacent columns. Two edges (u1,v1) and (u2,v2) cross when u1 is above u2
// and v1 is below v2, so the count is the number of inversions in the target
// positions once edges are sorted by source position.
func layerCrossings(children [][]int, upper, lower []int) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}
	lowerPos := posMap(lower)

	type edge struct{ upper, lower int }
	var edges []edge
	for i, id := range upper {
		for _, child := range children[id] {
			if pos, ok := lowerPos[child]; ok {
				edges = append(edges, edge{i, pos})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}

	slices.SortFunc(edges, func(a, b edge) int {
		if c := cmp.Compare(a.upper, b.upper); c != 0 {
			return c
		}
		return cmp.Compare(a.lower, b.lower)
	})

	fenwick := make([]int, len(lower)+1)
	crossings, total := 0, 0
	for _, e := range edges {
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += total - lessOrEqual

		total++
		for idx := e.lower + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}

// countCrossings sums crossings over every pair of adjacent columns.
func countCrossings(children [][]int, order [][]int) int {
	crossings := 0
	for c := 0; c+1 < len(order); c++ {
		crossings += layerCrossings(children, order[c], order[c+1])
	}
	return crossings
}

// posMap maps node ids to their index in order.
func posMap(order []int) map[int]int {
	m := make(map[int]int, len(order))
	for i, id := range order {
		m[id] = i
	}
	return m
}

// sortByBarycenter reorders col by the mean position of each node's
// neighbours in adj. Nodes without neighbours there keep their current
// position as their key. The sort is stable so ties keep their order.
func sortByBarycenter(col []int, neighbours [][]int, adj []int) {
	adjPos := posMap(adj)
	keys := make(map[int]float64, len(col))
	for i, id := range col {
		sum, n := 0, 0
		for _, nb := range neighbours[id] {
			if p, ok := adjPos[nb]; ok {
				sum += p
				n++
			}
		}
		if n == 0 {
			keys[id] = float64(i)
			continue
		}
		keys[id] = float64(sum) / float64(n)
	}
	slices.SortStableFunc(col, func(a, b int) int {
		return cmp.Compare(keys[a], keys[b])
	})
}

// order groups nodes by column in id order and improves the grouping with
// sweeps alternating left-to-right and right-to-left passes, returning the
// ordering with the fewest crossings.
func order(children, parents [][]int, cols []int, sweeps int) ([][]int, int) {
	width := 0
	for _, c := range cols {
		width = max(width, c+1)
	}
	cur := make([][]int, width)
	for id, c := range cols {
		cur[c] = append(cur[c], id)
	}

	best := clone(cur)
	bestCrossings := countCrossings(children, cur)
	for i := 0; i < sweeps && bestCrossings > 0; i++ {
		if i%2 == 0 {
			for c := 1; c < width; c++ {
				sortByBarycenter(cur[c], parents, cur[c-1])
			}
		} else {
			for c := width - 2; c >= 0; c-- {
				sortByBarycenter(cur[c], children, cur[c+1])
			}
		}
		if n := countCrossings(children, cur); n < bestCrossings {
			best, bestCrossings = clone(cur), n
		}
	}
	return best, bestCrossings
}

func clone(order [][]int) [][]int {
	out := make([][]int, len(order))
	for i, col := range order {
		out[i] = slices.Clone(col)
	}
	return out
}
