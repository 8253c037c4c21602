package core_test

import (
	"testing"

	"github.com/solrune/incdbscan/core"
)

func TestSpatialIndex_InsertLookupRemove(t *testing.T) {
	idx := core.NewSpatialIndex()
	idx.Insert(1, []float64{0, 0})
	idx.Insert(2, []float64{1, 0})
	idx.Insert(3, []float64{0, 1})

	if idx.Len() != 3 {
		t.Fatalf("want len 3, got %d", idx.Len())
	}

	id, ok := idx.Lookup([]float64{1, 0})
	if !ok || id != 2 {
		t.Fatalf("want lookup to find id=2, got id=%v ok=%v", id, ok)
	}

	if _, ok := idx.Lookup([]float64{9, 9}); ok {
		t.Fatalf("lookup of absent coordinate should miss")
	}

	if !idx.Remove(2) {
		t.Fatalf("remove of live id should succeed")
	}
	if idx.Remove(2) {
		t.Fatalf("remove of already-removed id should fail")
	}
	if idx.Len() != 2 {
		t.Fatalf("want len 2 after remove, got %d", idx.Len())
	}
	if _, ok := idx.Lookup([]float64{1, 0}); ok {
		t.Fatalf("removed coordinate should no longer be found")
	}
	// Swap-with-last must preserve remaining entries.
	if _, ok := idx.Get(1); !ok {
		t.Fatalf("id=1 should survive removal of id=2")
	}
	if _, ok := idx.Get(3); !ok {
		t.Fatalf("id=3 should survive removal of id=2")
	}
}

func TestSpatialIndex_Lookup_BitExact(t *testing.T) {
	idx := core.NewSpatialIndex()
	idx.Insert(1, []float64{0.0})
	// -0.0 and +0.0 compare equal with ==, but their bit patterns differ;
	// spec mandates bit-exact equality, so this must miss.
	if _, ok := idx.Lookup([]float64{negZero()}); ok {
		t.Fatalf("bit-exact policy should distinguish +0.0 from -0.0")
	}
}

func negZero() float64 {
	var z float64
	return -z
}

func TestSpatialIndex_Neighbors_SortedAscending(t *testing.T) {
	m, err := core.NewMetric(2, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	idx := core.NewSpatialIndex()
	idx.Insert(5, []float64{0, 0})
	idx.Insert(2, []float64{1, 0})
	idx.Insert(8, []float64{10, 10})
	idx.Insert(3, []float64{0, 1})

	nbrs, err := idx.Neighbors([]float64{0, 0}, m)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.ObjectID{2, 3, 5}
	if len(nbrs) != len(want) {
		t.Fatalf("want %v, got %v", want, nbrs)
	}
	for i := range want {
		if nbrs[i] != want[i] {
			t.Fatalf("want %v, got %v", want, nbrs)
		}
	}
}
