// File: object_store.go
// Role: Per-id ObjectRecord storage and the monotonic id allocator.
package core

// ObjectStore owns the authoritative ObjectRecord for every live id and the
// monotonic counter that allocates new ids. It maintains
// IsCore == (NeighborCount >= minPts) internally on every call that changes
// NeighborCount, so callers never need to recompute it by hand.
type ObjectStore struct {
	minPts  int
	nextID  ObjectID
	records map[ObjectID]*ObjectRecord
}

// NewObjectStore returns an empty store with the given min_pts threshold.
func NewObjectStore(minPts int) *ObjectStore {
	return &ObjectStore{minPts: minPts, records: make(map[ObjectID]*ObjectRecord)}
}

// Create allocates a fresh id for coords with Count=1 and NeighborCount=1
// (a point is always its own neighbor), returning the new id and its
// record.
func (s *ObjectStore) Create(coords []float64) (ObjectID, *ObjectRecord) {
	id := s.nextID
	s.nextID++
	cp := make([]float64, len(coords))
	copy(cp, coords)
	rec := &ObjectRecord{Coordinates: cp, Count: 1, NeighborCount: 1, IsCore: 1 >= s.minPts}
	s.records[id] = rec

	return id, rec
}

// Destroy removes id's record entirely. Called when the last duplicate of
// a coordinate is removed.
func (s *ObjectStore) Destroy(id ObjectID) {
	delete(s.records, id)
}

// Get returns id's live record, or (nil, false) if id is not live.
func (s *ObjectStore) Get(id ObjectID) (*ObjectRecord, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

// Len reports the number of live ids.
func (s *ObjectStore) Len() int { return len(s.records) }

// MinPts returns the configured core-point threshold.
func (s *ObjectStore) MinPts() int { return s.minPts }

// AddCount adjusts id's duplicate Count by delta (delta may be negative to
// decrement). It does not touch NeighborCount; callers update that
// separately, since the two change at different points of the Inserter and
// Deleter state machines.
func (s *ObjectStore) AddCount(id ObjectID, delta int) {
	if rec, ok := s.records[id]; ok {
		rec.Count += delta
	}
}

// AddNeighborCount adjusts id's NeighborCount by delta and re-derives
// IsCore from the new value. Returns the record's IsCore state before and
// after the adjustment so callers can detect a core-status transition
// without a second lookup.
func (s *ObjectStore) AddNeighborCount(id ObjectID, delta int) (before, after bool) {
	rec, ok := s.records[id]
	if !ok {
		return false, false
	}
	before = rec.IsCore
	rec.NeighborCount += delta
	rec.IsCore = rec.NeighborCount >= s.minPts
	after = rec.IsCore

	return before, after
}

// SetCore forces id's IsCore flag directly, bypassing the
// NeighborCount-derived computation. Nothing in this module calls it; the
// Inserter/Deleter state machines use AddNeighborCount.
func (s *ObjectStore) SetCore(id ObjectID, isCore bool) {
	if rec, ok := s.records[id]; ok {
		rec.IsCore = isCore
	}
}

// IDs returns every live id, unordered. Callers that need determinism sort
// the result themselves.
func (s *ObjectStore) IDs() []ObjectID {
	out := make([]ObjectID, 0, len(s.records))
	for id := range s.records {
		out = append(out, id)
	}
	return out
}
