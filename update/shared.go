// File: shared.go
// Role: the Stores bundle both state machines operate on, plus the
// border-label tie-break and split-check helpers they share.
package update

import (
	"sort"

	"github.com/solrune/incdbscan/core"
	"github.com/solrune/incdbscan/traverse"
)

// Stores bundles the five core components an Inserter/Deleter call needs.
// The Engine owns exactly one Stores for its lifetime; nothing here is safe
// for concurrent use, matching the engine's single-writer contract.
type Stores struct {
	Metric  *core.Metric
	Index   *core.SpatialIndex
	Objects *core.ObjectStore
	Graph   *core.NeighborGraph
	Labels  *core.LabelRegistry

	// Dim is the fixed coordinate dimensionality, established by the first
	// insertion and enforced on every insertion after. Zero means "not yet
	// established".
	Dim int
}

func (st *Stores) isCore(id core.ObjectID) bool {
	rec, ok := st.Objects.Get(id)
	return ok && rec.IsCore
}

// assignBorderLabel recomputes id's label from scratch under the tie-break
// rule "a non-core point takes the label of its lowest-id core neighbor, or
// Noise if it has none". id must not itself be core; a no-op otherwise,
// since a core point's label is decided by handleNewCore/the merge winner,
// never by this rule.
func (st *Stores) assignBorderLabel(id core.ObjectID) {
	if st.isCore(id) {
		return
	}
	for _, n := range st.Graph.Neighbors(id) { // ascending order
		if st.isCore(n) {
			st.Labels.Set(id, st.Labels.Get(n))
			return
		}
	}
	st.Labels.Set(id, core.Noise)
}

// runSplitCheck groups seeds by their current label (a deletion can touch
// more than one cluster in the same call) and, for every group of two or
// more, runs traverse.SplitFrontiers to determine whether that cluster is
// still one core-connected component. On a detected split, every fragment
// but the surviving one (SplitResult.Components[0]) gets a fresh label and
// its borders are recomputed; the surviving fragment keeps the group's
// label and the borders it reached are recomputed too, since a border may
// have been reachable only through a now-detached core.
func (st *Stores) runSplitCheck(seeds []core.ObjectID) error {
	byLabel := make(map[core.ClusterLabel][]core.ObjectID)
	for _, s := range seeds {
		l := st.Labels.Get(s)
		byLabel[l] = append(byLabel[l], s)
	}

	for _, group := range byLabel {
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool { return group[i] < group[j] })

		result, err := traverse.SplitFrontiers(st.Graph, st.isCore, group)
		if err != nil {
			return err
		}
		if !result.Split {
			continue
		}

		survivor := result.Components[0]
		for _, b := range survivor.Borders {
			st.assignBorderLabel(b)
		}
		for _, comp := range result.Components[1:] {
			fresh := st.Labels.FreshLabel()
			for _, c := range comp.Cores {
				st.Labels.Set(c, fresh)
			}
			for _, b := range comp.Borders {
				st.assignBorderLabel(b)
			}
		}
	}

	return nil
}

// relabelExCores handles every point that just transitioned from core to
// non-core: it may have bridged two of its own other core neighbors, so
// those neighbors become split-check seeds; the
// ex-core itself and every non-core neighbor of it are then recomputed
// under the border tie-break, since they may have depended on it.
func (st *Stores) relabelExCores(exCores []core.ObjectID) error {
	seedSet := make(map[core.ObjectID]struct{})
	for _, n := range exCores {
		for _, m := range st.Graph.Neighbors(n) {
			if st.isCore(m) {
				seedSet[m] = struct{}{}
			}
		}
	}
	seeds := make([]core.ObjectID, 0, len(seedSet))
	for s := range seedSet {
		seeds = append(seeds, s)
	}
	if err := st.runSplitCheck(seeds); err != nil {
		return err
	}

	for _, n := range exCores {
		st.assignBorderLabel(n)
		for _, m := range st.Graph.Neighbors(n) {
			if !st.isCore(m) {
				st.assignBorderLabel(m)
			}
		}
	}

	return nil
}
