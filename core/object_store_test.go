package core_test

import (
	"testing"

	"github.com/solrune/incdbscan/core"
)

func TestObjectStore_CreateAssignsMonotonicIDs(t *testing.T) {
	s := core.NewObjectStore(3)
	id1, rec1 := s.Create([]float64{0, 0})
	id2, _ := s.Create([]float64{1, 1})
	if id2 != id1+1 {
		t.Fatalf("ids must be monotonic: id1=%v id2=%v", id1, id2)
	}
	if rec1.Count != 1 || rec1.NeighborCount != 1 {
		t.Fatalf("fresh record must start at Count=1, NeighborCount=1, got %+v", rec1)
	}
	if rec1.IsCore {
		t.Fatalf("NeighborCount=1 < minPts=3 should not be core")
	}
}

func TestObjectStore_AddNeighborCountTogglesIsCore(t *testing.T) {
	s := core.NewObjectStore(3)
	id, _ := s.Create([]float64{0, 0})

	before, after := s.AddNeighborCount(id, 1) // NeighborCount: 1 -> 2
	if before || after {
		t.Fatalf("2 < minPts=3, should still be non-core: before=%v after=%v", before, after)
	}

	before, after = s.AddNeighborCount(id, 1) // NeighborCount: 2 -> 3
	if before || !after {
		t.Fatalf("expected a false->true IsCore transition, got before=%v after=%v", before, after)
	}

	rec, ok := s.Get(id)
	if !ok || !rec.IsCore {
		t.Fatalf("record should report IsCore=true after transition, got %+v", rec)
	}

	before, after = s.AddNeighborCount(id, -2) // NeighborCount: 3 -> 1
	if !before || after {
		t.Fatalf("expected a true->false IsCore transition, got before=%v after=%v", before, after)
	}
}

func TestObjectStore_DestroyRemovesRecord(t *testing.T) {
	s := core.NewObjectStore(1)
	id, _ := s.Create([]float64{0})
	s.Destroy(id)
	if _, ok := s.Get(id); ok {
		t.Fatalf("destroyed id should not be retrievable")
	}
	if s.Len() != 0 {
		t.Fatalf("want len 0 after destroy, got %d", s.Len())
	}
}

func TestObjectStore_AddCountIsIndependentOfNeighborCount(t *testing.T) {
	s := core.NewObjectStore(2)
	id, _ := s.Create([]float64{0})
	s.AddCount(id, 1)
	rec, _ := s.Get(id)
	if rec.Count != 2 {
		t.Fatalf("want Count=2, got %d", rec.Count)
	}
	if rec.NeighborCount != 1 {
		t.Fatalf("AddCount must not touch NeighborCount, got %d", rec.NeighborCount)
	}
}
