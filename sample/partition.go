package sample

import (
	"sort"

	"github.com/parsortlab/parsort"
)

// PartitionByPivots splits sorted into len(pivots)+1 contiguous buckets:
// bucket[i] holds the keys k with pivots[i-1] <= k < pivots[i] (with the
// implicit sentinels pivots[-1] = -inf and pivots[len(pivots)] = +inf).
// pivots must be non-decreasing; sorted must already be sorted. Each
// bucket boundary is found by a strict lower_bound binary search against
// pivots, so every key is assigned to exactly one bucket and duplicate
// keys land deterministically.
func PartitionByPivots(sorted parsort.LocalBlock, pivots parsort.LocalBlock) []parsort.LocalBlock {
	buckets := make([]parsort.LocalBlock, len(pivots)+1)
	start := 0
	for i, p := range pivots {
		end := lowerBound(sorted, start, p)
		buckets[i] = sorted[start:end]
		start = end
	}
	buckets[len(pivots)] = sorted[start:]
	return buckets
}

// lowerBound returns the index of the first element in sorted[from:] that
// is >= key, or len(sorted) if none is.
func lowerBound(sorted parsort.LocalBlock, from int, key parsort.Key) int {
	return from + sort.Search(len(sorted)-from, func(i int) bool {
		return sorted[from+i] >= key
	})
}
