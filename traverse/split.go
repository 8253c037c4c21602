// File: split.go
// Role: bounded multi-source traversal that detects a multi-way cluster
// split on deletion, the hardest case this module implements.
//
// One frontier is seeded per candidate core point. All live frontiers
// expand one BFS layer at a time, round-robin; whenever two frontiers'
// layers touch the same core node, they are the same component and are
// merged (union-find by visited-set size, smaller into larger). Whenever a
// frontier's next layer comes up empty, that frontier has fully explored
// its component and is retired in the order it finished. The process stops
// once a single frontier remains live: that frontier is the surviving
// component and keeps the original cluster label; it is not explored to the
// end. Every frontier retired before it is a detached component and is
// assigned a fresh label by the caller. Retirement order follows BFS depth
// from the seed, not component size, so the survivor is not necessarily the
// component with the most points. If every frontier exhausts in the same
// round, the last one to exhaust is the survivor.
//
// This bounds total work to the size of the traversed region, not the
// whole graph, and never recurses: every frontier is an explicit
// heap-allocated queue.
package traverse

import (
	"sort"

	"github.com/solrune/incdbscan/core"
)

type unionFrontier struct {
	cores   map[core.ObjectID]struct{}
	borders map[core.ObjectID]struct{}
	layer   []core.ObjectID
	alive   bool
}

// SplitResult is the outcome of SplitFrontiers: Split is false when a
// single BFS from any one seed reaches every other seed (the cluster is
// intact); otherwise Components holds one entry per resulting fragment,
// Components[0] being the surviving frontier (it keeps the original label;
// its Cores and Borders hold only what it reached before the traversal
// stopped) and the rest needing a fresh label each, in the order their
// frontier exhausted (shallowest BFS first, regardless of size).
type SplitResult struct {
	Split      bool
	Components []Component
}

// SplitFrontiers runs the bounded multi-source traversal described above,
// seeded at seeds (which must all be distinct core ids already known to
// share a cluster label).
//
// Complexity: O(V' + E') where V'/E' are the vertices/edges of the
// traversed region, never the whole graph; never recurses.
func SplitFrontiers(g *core.NeighborGraph, isCore func(core.ObjectID) bool, seeds []core.ObjectID) (*SplitResult, error) {
	dedup := make(map[core.ObjectID]struct{}, len(seeds))
	var ordered []core.ObjectID
	for _, s := range seeds {
		if !isCore(s) {
			return nil, ErrSeedNotCore
		}
		if _, ok := dedup[s]; ok {
			continue
		}
		dedup[s] = struct{}{}
		ordered = append(ordered, s)
	}

	n := len(ordered)
	if n <= 1 {
		// Zero or one seed: trivially intact, nothing to detect.
		comp, err := CoreComponent(g, isCore, ordered)
		if err != nil {
			return nil, err
		}
		return &SplitResult{Split: false, Components: []Component{*comp}}, nil
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	frontiers := make([]*unionFrontier, n)
	owner := make(map[core.ObjectID]int, n) // core id -> frontier root index (re-resolve via find)
	for i, s := range ordered {
		frontiers[i] = &unionFrontier{
			cores:   map[core.ObjectID]struct{}{s: {}},
			borders: make(map[core.ObjectID]struct{}),
			layer:   []core.ObjectID{s},
			alive:   true,
		}
		owner[s] = i
	}

	var finishOrder []int // root indices, in the order their frontier exhausted

	union := func(a, b int) int {
		ra, rb := find(a), find(b)
		if ra == rb {
			return ra
		}
		fa, fb := frontiers[ra], frontiers[rb]
		// Merge smaller into larger to bound total work.
		if len(fa.cores) < len(fb.cores) {
			ra, rb = rb, ra
			fa, fb = fb, fa
		}
		for id := range fb.cores {
			fa.cores[id] = struct{}{}
			owner[id] = ra
		}
		for id := range fb.borders {
			fa.borders[id] = struct{}{}
		}
		fa.layer = append(fa.layer, fb.layer...)
		frontiers[rb] = nil
		parent[rb] = ra

		return ra
	}

	liveRoots := func() []int {
		seen := make(map[int]bool, n)
		var out []int
		for i := 0; i < n; i++ {
			r := find(i)
			if frontiers[r] != nil && frontiers[r].alive && !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
		sort.Ints(out)
		return out
	}

	for {
		roots := liveRoots()
		if len(roots) <= 1 {
			break
		}
		for _, r := range roots {
			cur := find(r)
			fr := frontiers[cur]
			if fr == nil || !fr.alive {
				continue // merged away earlier this same round
			}

			layer := fr.layer
			fr.layer = nil
			var next []core.ObjectID
			for _, u := range layer {
				for _, v := range g.Neighbors(u) {
					if !isCore(v) {
						fr.borders[v] = struct{}{}
						continue
					}
					if existingOwner, ok := owner[v]; ok {
						if find(existingOwner) != cur {
							cur = union(cur, existingOwner)
							fr = frontiers[cur]
						}
						continue // already visited (by this frontier or the one just merged in)
					}
					owner[v] = cur
					fr.cores[v] = struct{}{}
					next = append(next, v)
				}
			}
			fr.layer = append(fr.layer, next...)

			if len(fr.layer) == 0 {
				fr.alive = false
				finishOrder = append(finishOrder, cur)
			}
		}
	}

	remaining := liveRoots()
	var survivorRoot int
	switch {
	case len(remaining) == 1:
		survivorRoot = remaining[0]
	case len(finishOrder) > 0:
		// All frontiers exhausted in the same pass: the last to finish is
		// the (arbitrary, but deterministic) survivor.
		survivorRoot = finishOrder[len(finishOrder)-1]
		finishOrder = finishOrder[:len(finishOrder)-1]
	default:
		survivorRoot = 0
	}

	if len(finishOrder) == 0 {
		// Every seed ended up in the same frontier: intact, no split.
		comp := toComponent(frontiers[survivorRoot])
		return &SplitResult{Split: false, Components: []Component{comp}}, nil
	}

	components := make([]Component, 0, len(finishOrder)+1)
	components = append(components, toComponent(frontiers[survivorRoot]))
	for _, r := range finishOrder {
		components = append(components, toComponent(frontiers[r]))
	}

	return &SplitResult{Split: true, Components: components}, nil
}

func toComponent(fr *unionFrontier) Component {
	return Component{Cores: sortedKeys(fr.cores), Borders: sortedKeys(fr.borders)}
}
