// Package update implements the two state machines that keep a DBSCAN
// clustering correct under streaming mutation: Inserter and Deleter. Both
// operate on a shared Stores bundle — the
// SpatialIndex, ObjectStore, NeighborGraph and LabelRegistry from package
// core — and lean on package traverse for the core-connected-component and
// split-detection traversals.
//
//	go get github.com/solrune/incdbscan/update
package update
