// Package arrange computes a left-to-right layered placement for the nodes
// of a graph from its connections alone.
//
// # Columns
//
// [Columns] assigns each node the length of the longest connection path
// reaching it (Kahn's algorithm), so every connection runs from a lower
// column to a higher one. Self connections and repeated node pairs are
// ignored. Cycles are broken by taking the lowest unplaced node id whenever
// no node is free; connections back into already placed nodes are then
// skipped.
//
// # Ordering
//
// Within a column nodes start in id order and are reordered by barycenter
// sweeps: each node moves toward the mean position of its neighbours in the
// adjacent column. Crossings between adjacent columns are counted with a
// Fenwick tree after every sweep and the best ordering seen is kept.
// Connections spanning more than one column do not take part in ordering.
//
// # Placement
//
// [Compute] turns columns and orderings into node positions and [Apply]
// copies a graph with those positions:
//
//	arranged, res, err := arrange.Apply(g)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Crossings)
package arrange
