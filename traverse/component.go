// File: component.go
// Role: single-frontier core-connected reachability, used by the
// Inserter's cluster-creation case to find every id reachable through
// the core-connected component of a set of seeds.
package traverse

import (
	"sort"

	"github.com/solrune/incdbscan/core"
)

// Component is a core-connected piece of the graph: Cores is the set of
// core ids reachable from the seeds purely through core-to-core edges;
// Borders is every non-core id directly adjacent to one of those cores
// (a one-hop leaf that does not itself propagate the frontier).
type Component struct {
	Cores   []core.ObjectID
	Borders []core.ObjectID
}

// CoreComponent runs an iterative, queue-based BFS from seeds over
// core-to-core edges only, and separately collects every non-core
// neighbor encountered along the way. All seeds must be core ids (per
// ErrSeedNotCore); the returned Component merges all seeds into one
// traversal, since a single cluster's core-connected component is by
// definition the union of everything reachable from any of its core
// points.
//
// Complexity: O(V + E) over the explored region; never recurses.
func CoreComponent(g *core.NeighborGraph, isCore func(core.ObjectID) bool, seeds []core.ObjectID) (*Component, error) {
	visitedCore := make(map[core.ObjectID]struct{}, len(seeds))
	borders := make(map[core.ObjectID]struct{})
	queue := make([]core.ObjectID, 0, len(seeds))

	for _, s := range seeds {
		if !isCore(s) {
			return nil, ErrSeedNotCore
		}
		if _, ok := visitedCore[s]; ok {
			continue
		}
		visitedCore[s] = struct{}{}
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			if isCore(v) {
				if _, ok := visitedCore[v]; ok {
					continue
				}
				visitedCore[v] = struct{}{}
				queue = append(queue, v)
			} else {
				borders[v] = struct{}{}
			}
		}
	}

	return &Component{Cores: sortedKeys(visitedCore), Borders: sortedKeys(borders)}, nil
}

func sortedKeys(m map[core.ObjectID]struct{}) []core.ObjectID {
	out := make([]core.ObjectID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
