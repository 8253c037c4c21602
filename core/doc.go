// Package core holds the data model shared by every other package in this
// module.
//
//	Five pieces cooperate to maintain one DBSCAN clustering:
//
//	  • Distance      — Minkowski distance family, specialised for p=2
//	  • SpatialIndex  — append-only live point set, brute-force range query
//	  • ObjectStore   — per-id record: coordinates, duplicate count, core flag
//	  • NeighborGraph — undirected eps-graph over live points
//	  • LabelRegistry — bidirectional id <-> cluster label map
//
// None of these hold a reference to another object's memory: objects refer
// to each other only by ObjectID. Higher-level state machines (package
// update) read and mutate all five through their exported methods; this
// package guarantees only that each store is internally consistent, not
// the cross-store invariants — those belong to update.Insert and
// update.Delete.
//
//	go get github.com/solrune/incdbscan/core
package core
