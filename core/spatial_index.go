// File: spatial_index.go
// Role: Append-only live point set with brute-force range queries.
//
// Rationale (kept from the design notes): the competing approach rebuilds
// a spatial tree on every insertion. Amortised over a streaming workload,
// brute force dominates below the sizes at which the DBSCAN maintenance
// work itself becomes the bottleneck. Swap-with-last removal keeps both
// insert and remove O(1) amortised, and the interface below is narrow
// enough that a grid or VP-tree could replace this file without touching
// any other package.
package core

import (
	"fmt"
	"math"
)

type indexRecord struct {
	id     ObjectID
	coords []float64
}

// SpatialIndex is an append-only container of live points supporting range
// queries and exact-coordinate lookup. It is not safe for concurrent
// mutation, matching the engine's single-writer contract.
type SpatialIndex struct {
	records []indexRecord
	pos     map[ObjectID]int // id -> index into records
}

// NewSpatialIndex returns an empty index.
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{pos: make(map[ObjectID]int)}
}

// Len reports the number of live points.
func (s *SpatialIndex) Len() int { return len(s.records) }

// Insert appends a new live point under id. The caller is responsible for
// having already established, via Lookup, that coords has no bit-exact
// duplicate in the index; Insert does not check this itself.
//
// Complexity: O(1) amortised.
func (s *SpatialIndex) Insert(id ObjectID, coords []float64) {
	s.pos[id] = len(s.records)
	cp := make([]float64, len(coords))
	copy(cp, coords)
	s.records = append(s.records, indexRecord{id: id, coords: cp})
}

// Remove drops id from the index via swap-with-last, returning false if id
// was not present.
//
// Complexity: O(1) amortised.
func (s *SpatialIndex) Remove(id ObjectID) bool {
	i, ok := s.pos[id]
	if !ok {
		return false
	}
	last := len(s.records) - 1
	if i != last {
		s.records[i] = s.records[last]
		s.pos[s.records[i].id] = i
	}
	s.records = s.records[:last]
	delete(s.pos, id)

	return true
}

// Get returns the live coordinates for id.
func (s *SpatialIndex) Get(id ObjectID) ([]float64, bool) {
	i, ok := s.pos[id]
	if !ok {
		return nil, false
	}
	return s.records[i].coords, true
}

// Lookup performs the duplicate-coordinate check: it scans the live set for
// a bit-exact match of coords (per spec, two coordinates are equal iff
// their IEEE-754 bit patterns match, so +0.0 and -0.0 are distinct) and
// returns its id if found.
//
// Complexity: O(n).
func (s *SpatialIndex) Lookup(coords []float64) (ObjectID, bool) {
	for _, r := range s.records {
		if coordinatesEqual(r.coords, coords) {
			return r.id, true
		}
	}
	return 0, false
}

// Neighbors returns every live id within metric's eps of coords, in
// ascending id order for deterministic downstream processing (border
// tie-breaks are "first encountered, ordering of cores by ascending id").
//
// Complexity: O(n * d).
func (s *SpatialIndex) Neighbors(coords []float64, m *Metric) ([]ObjectID, error) {
	var out []ObjectID
	for _, r := range s.records {
		within, err := m.Within(coords, r.coords)
		if err != nil {
			return nil, fmt.Errorf("spatial index: neighbors of id=%v: %w", r.id, err)
		}
		if within {
			out = append(out, r.id)
		}
	}
	sortObjectIDs(out)

	return out, nil
}

// coordinatesEqual reports bit-exact equality of two equal-length vectors.
func coordinatesEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}
	return true
}

// sortObjectIDs sorts ids ascending in place (insertion sort: neighbor sets
// are small relative to typical min_pts, so this avoids sort.Slice's
// interface-boxing overhead on the hot path).
func sortObjectIDs(ids []ObjectID) {
	for i := 1; i < len(ids); i++ {
		v := ids[i]
		j := i - 1
		for j >= 0 && ids[j] > v {
			ids[j+1] = ids[j]
			j--
		}
		ids[j+1] = v
	}
}
