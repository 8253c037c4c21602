// File: insert.go
// Role: the Inserter state machine: classify a newly inserted point as a
// duplicate, noise, border, a fresh cluster, an absorption into one
// existing cluster, or a merge of several.
package update

import (
	"fmt"

	"github.com/solrune/incdbscan/core"
	"github.com/solrune/incdbscan/traverse"
)

// Insert adds coords to the clustering and returns the id it was assigned
// (a fresh id for a new coordinate, or the existing id if coords is a
// bit-exact duplicate of a live point).
//
// Every point touched by this call — the inserted point, every other point
// that crosses the min_pts threshold because of it, and every border whose
// nearest core may have changed — is processed before Insert returns,
// maintaining I-PARTITION for the next call.
func Insert(st *Stores, coords []float64) (core.ObjectID, error) {
	if err := core.ValidateCoordinates(coords); err != nil {
		return 0, err
	}
	if st.Dim == 0 {
		st.Dim = len(coords)
	} else if len(coords) != st.Dim {
		return 0, fmt.Errorf("%w: store holds %d-dimensional points, got %d", core.ErrDimensionMismatch, st.Dim, len(coords))
	}

	if existing, ok := st.Index.Lookup(coords); ok {
		return existing, insertDuplicate(st, existing)
	}

	return insertFresh(st, coords)
}

// insertDuplicate handles a bit-exact repeat of a live coordinate: Count
// goes up by one, and every point within eps of it (including itself) gains
// one unit of NeighborCount, which may push some of them over the min_pts
// threshold.
func insertDuplicate(st *Stores, id core.ObjectID) error {
	st.Objects.AddCount(id, 1)

	touched := append([]core.ObjectID{id}, st.Graph.Neighbors(id)...)
	for _, n := range touched {
		before, after := st.Objects.AddNeighborCount(n, 1)
		if !before && after {
			if err := handleNewCore(st, n); err != nil {
				return err
			}
		}
	}

	return nil
}

// insertFresh handles a coordinate never seen before: it gets a new id, is
// wired into the spatial index and neighbor graph, and is classified.
func insertFresh(st *Stores, coords []float64) (core.ObjectID, error) {
	id, rec := st.Objects.Create(coords)
	st.Index.Insert(id, coords)
	st.Graph.AddNode(id)

	neighborIDs, err := st.Index.Neighbors(coords, st.Metric)
	if err != nil {
		return 0, err
	}

	var others []core.ObjectID
	selfGain := 0
	for _, n := range neighborIDs {
		if n == id {
			continue
		}
		others = append(others, n)
		if nrec, ok := st.Objects.Get(n); ok {
			selfGain += nrec.Count
		}
	}
	for _, n := range others {
		st.Graph.AddEdge(id, n)
	}

	// rec already carries NeighborCount=1 for counting itself (core.Create).
	st.Objects.AddNeighborCount(id, selfGain)
	idIsCore := st.isCore(id)

	for _, n := range others {
		before, after := st.Objects.AddNeighborCount(n, rec.Count)
		if !before && after {
			if err := handleNewCore(st, n); err != nil {
				return 0, err
			}
		}
	}

	if idIsCore {
		if err := handleNewCore(st, id); err != nil {
			return 0, err
		}
	} else {
		st.assignBorderLabel(id)
	}

	return id, nil
}

// handleNewCore runs whenever id just crossed the min_pts threshold (or is
// a brand-new point that already qualifies). It decides which of the three
// remaining Inserter cases applies — create, absorb, or merge — purely
// from the labels already carried by id's core neighbors, which is always
// enough: every core neighbor of id has either held its label since before
// this Insert call, or was itself classified earlier in this same call
// (insertFresh/insertDuplicate always process a point's core neighbors
// before the point itself), so no deeper graph walk is needed to decide the
// label. traverse.CoreComponent is still used afterward to sweep id's whole
// core-connected component and its border fringe, which keeps this
// correct even if a future caller feeds handleNewCore a point whose
// neighbors were not fully processed first.
func handleNewCore(st *Stores, id core.ObjectID) error {
	labelSet := make(map[core.ClusterLabel]struct{})
	for _, n := range st.Graph.Neighbors(id) {
		if !st.isCore(n) {
			continue
		}
		l := st.Labels.Get(n)
		if l != core.Noise && l != core.Unclassified {
			labelSet[l] = struct{}{}
		}
	}

	winner := pickWinner(st, labelSet)
	st.Labels.Set(id, winner)

	comp, err := traverse.CoreComponent(st.Graph, st.isCore, []core.ObjectID{id})
	if err != nil {
		return err
	}
	for _, c := range comp.Cores {
		st.Labels.Set(c, winner)
	}
	for _, b := range comp.Borders {
		st.assignBorderLabel(b)
	}

	return nil
}

// pickWinner implements the merge tie-break: the label with the largest
// current membership wins, ties broken by the smaller label value. A fresh
// label is allocated if no core neighbor carries a real cluster label yet.
func pickWinner(st *Stores, labelSet map[core.ClusterLabel]struct{}) core.ClusterLabel {
	if len(labelSet) == 0 {
		return st.Labels.FreshLabel()
	}

	labels := make([]core.ClusterLabel, 0, len(labelSet))
	for l := range labelSet {
		labels = append(labels, l)
	}
	sortLabels(labels)

	winner := labels[0]
	best := st.Labels.MemberCount(winner)
	for _, l := range labels[1:] {
		if c := st.Labels.MemberCount(l); c > best {
			best, winner = c, l
		}
	}
	for _, l := range labels {
		if l != winner {
			st.Labels.ChangeLabel(l, winner)
		}
	}

	return winner
}

func sortLabels(labels []core.ClusterLabel) {
	for i := 1; i < len(labels); i++ {
		v := labels[i]
		j := i - 1
		for j >= 0 && labels[j] > v {
			labels[j+1] = labels[j]
			j--
		}
		labels[j+1] = v
	}
}
