package incdbscan_test

import "math"

// batchDBSCAN is a reference, from-scratch DBSCAN run over a fixed point
// set, grounded on the classic expand-seed-set formulation (see
// _examples/other_examples' goccmack/godsp dbscan.Histogram): every point
// starts undefined, points below min_pts are noise, and a cluster's seed
// set grows by absorbing every core point's own neighbors as it's
// processed. It exists purely so engine_test.go can assert the engine's
// incremental result is the same *partition* a full recomputation would
// produce — it does not need to agree on label *numbers*, only on which
// points share a label and which don't.
//
// labels[i] is the assigned cluster (0-based, in first-seen order) or -1
// for noise. Complexity: O(n^2), fine for the small fixtures tests use.
func batchDBSCAN(points [][]float64, eps, minPts float64) []int {
	n := len(points)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -2 // undefined
	}

	neighbors := func(p int) []int {
		var out []int
		for q := 0; q < n; q++ {
			if euclid(points[p], points[q]) <= eps {
				out = append(out, q)
			}
		}
		return out
	}

	next := 0
	for p := 0; p < n; p++ {
		if labels[p] != -2 {
			continue
		}
		nbrs := neighbors(p)
		if float64(len(nbrs)) < minPts {
			labels[p] = -1
			continue
		}

		c := next
		next++
		labels[p] = c
		seeds := append([]int{}, nbrs...)
		for i := 0; i < len(seeds); i++ {
			q := seeds[i]
			if labels[q] == -1 {
				labels[q] = c
			}
			if labels[q] != -2 {
				continue
			}
			labels[q] = c
			qn := neighbors(q)
			if float64(len(qn)) >= minPts {
				seeds = append(seeds, qn...)
			}
		}
	}

	return labels
}

func euclid(a, b []float64) float64 {
	var acc float64
	for i := range a {
		d := a[i] - b[i]
		acc += d * d
	}
	return math.Sqrt(acc)
}

// samePartition reports whether two label slices induce the same grouping
// of indices: same points share a label in a iff they share a label in b,
// and noise (negative) aligns exactly. Label *numbers* need not match.
func samePartition(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	aToB := make(map[int]int)
	bToA := make(map[int]int)
	for i := range a {
		la, lb := a[i], b[i]
		if (la < 0) != (lb < 0) {
			return false
		}
		if la < 0 {
			continue // both noise, fine
		}
		if mapped, ok := aToB[la]; ok {
			if mapped != lb {
				return false
			}
		} else {
			aToB[la] = lb
		}
		if mapped, ok := bToA[lb]; ok {
			if mapped != la {
				return false
			}
		} else {
			bToA[lb] = la
		}
	}
	return true
}
