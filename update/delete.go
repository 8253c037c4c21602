// File: delete.go
// Role: the Deleter state machine: remove a point (or one duplicate of
// it), demote whatever falls below min_pts, detect multi-way cluster
// splits, and reassign every border whose connectivity changed.
package update

import (
	"fmt"

	"github.com/solrune/incdbscan/core"
)

// Delete removes one occurrence of coords. It returns false (with a nil
// error) if coords has no live occurrence; true otherwise. A point with
// more than one live duplicate loses one copy and stays otherwise
// unchanged in the spatial index and graph; the last copy's removal tears
// the id down entirely and may demote neighbors, split its cluster, or
// leave orphaned borders that need relabeling.
func Delete(st *Stores, coords []float64) (bool, error) {
	if err := core.ValidateCoordinates(coords); err != nil {
		return false, err
	}

	id, ok := st.Index.Lookup(coords)
	if !ok {
		return false, nil
	}

	rec, ok := st.Objects.Get(id)
	if !ok {
		return false, fmt.Errorf("update: %w: id=%d present in index but not in object store", core.ErrObjectNotFound, id)
	}

	if rec.Count > 1 {
		return true, deleteDuplicate(st, id)
	}

	return true, deleteLast(st, id, rec)
}

// deleteDuplicate removes one copy of a point that has others left live:
// the graph and spatial index are untouched, only NeighborCount drops by
// one across the point and its neighbors, which may demote some of them.
func deleteDuplicate(st *Stores, id core.ObjectID) error {
	st.Objects.AddCount(id, -1)

	touched := append([]core.ObjectID{id}, st.Graph.Neighbors(id)...)
	var exCores []core.ObjectID
	for _, n := range touched {
		before, after := st.Objects.AddNeighborCount(n, -1)
		if before && !after {
			exCores = append(exCores, n)
		}
	}

	return st.relabelExCores(exCores)
}

// deleteLast tears down the last live copy of a point entirely: it is
// removed from every store, its former neighbors lose the NeighborCount
// weight it contributed, and — if it was itself core — its still-core
// former neighbors become split-check seeds, since the point being removed
// may have been the sole bridge holding them in one cluster.
func deleteLast(st *Stores, id core.ObjectID, rec *core.ObjectRecord) error {
	wasCore := rec.IsCore
	deletedWeight := rec.Count
	formerNeighbors := st.Graph.Neighbors(id)

	st.Index.Remove(id)
	st.Graph.RemoveNode(id)
	st.Objects.Destroy(id)
	st.Labels.Forget(id)

	var exCores []core.ObjectID
	var bridgeSeeds []core.ObjectID
	var orphanBorders []core.ObjectID

	for _, n := range formerNeighbors {
		before, after := st.Objects.AddNeighborCount(n, -deletedWeight)
		switch {
		case before && !after:
			exCores = append(exCores, n)
		case after && wasCore:
			bridgeSeeds = append(bridgeSeeds, n)
		case !before && wasCore:
			// n was never core; it may have depended on the deleted point
			// as its only core neighbor.
			orphanBorders = append(orphanBorders, n)
		}
	}

	if err := st.runSplitCheck(bridgeSeeds); err != nil {
		return err
	}
	if err := st.relabelExCores(exCores); err != nil {
		return err
	}
	for _, n := range orphanBorders {
		st.assignBorderLabel(n)
	}

	return nil
}
