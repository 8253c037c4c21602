// Package traverse implements the iterative, heap-allocated-queue graph
// walks used by the update package: plain core-connected reachability (for
// Inserter's cluster-creation case) and the bounded multi-source frontier
// expansion that detects cluster splits on deletion (the hardest case in
// this module).
//
// Nothing here recurses on graph size; every traversal is a loop over an
// explicit, heap-allocated slice-backed queue, with enqueue/dequeue/visit
// kept as distinct steps, never a recursive call stack proportional to
// component size.
//
//	go get github.com/solrune/incdbscan/traverse
package traverse
