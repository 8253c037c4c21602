// Package incdbscan maintains a DBSCAN clustering incrementally under a
// stream of point insertions and deletions, producing exactly the
// partition a full batch DBSCAN run over the current live point set would
// produce, without ever re-running the batch algorithm.
//
// An Engine is built from three cooperating packages:
//
//	core/      — the data model: ObjectStore, SpatialIndex, NeighborGraph,
//	             LabelRegistry, and the Minkowski Metric they share.
//	traverse/  — iterative BFS over the neighbor graph: plain core-connected
//	             reachability and the bounded multi-source traversal used to
//	             detect a cluster split on deletion.
//	update/    — the Inserter and Deleter state machines that keep the data
//	             model's invariants intact after every mutation.
//
// Usage:
//
//	e, err := incdbscan.New(incdbscan.WithEps(1.5), incdbscan.WithMinPts(3))
//	if err != nil {
//		log.Fatal(err)
//	}
//	id, err := e.Insert([]float64{0, 0})
//	label, live := e.LabelOf(id)
//	removed, err := e.Delete([]float64{0, 0})
//
// Every exported method maintains the clustering's invariants before
// returning — there is no separate "recompute" step and no background
// goroutine; an Engine is a plain, single-writer value.
//
//	go get github.com/solrune/incdbscan
package incdbscan
