package distmap

import "sort"

// argsort fills perm with the ascending-sort permutation of vals.
//
// The sort is stable: equal distances keep their ascending retained-column
// order. Callers may rely on this tie order.
func argsort(vals []float32, perm []int32) {
	for i := range perm {
		perm[i] = int32(i)
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return vals[perm[a]] < vals[perm[b]]
	})
}
