package sort

import (
	gosort "sort"

	"github.com/parsortlab/parsort"
	"github.com/parsortlab/parsort/sequential"
)

// KeySlice attaches the methods of sort.Interface, SequentialSorter, and
// Sorter to parsort.LocalBlock, sorting in increasing order. It lets the
// kernels' local-sort stage reuse this package's parallel Sort instead of
// hand-rolling a sort over int32.
type KeySlice parsort.LocalBlock

// SequentialSort implements the method of the SequentialSorter interface.
func (s KeySlice) SequentialSort(i, j int) {
	gosort.Slice(s[i:j], func(a, b int) bool { return s[i+a] < s[i+b] })
}

func (s KeySlice) Len() int { return len(s) }

func (s KeySlice) Less(i, j int) bool { return s[i] < s[j] }

func (s KeySlice) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// NewTemp implements the method of the StableSorter interface.
func (s KeySlice) NewTemp() StableSorter {
	return KeySlice(make(parsort.LocalBlock, len(s)))
}

// Assign implements the method of the StableSorter interface.
func (s KeySlice) Assign(source StableSorter) func(i, j, len int) {
	dst, src := s, source.(KeySlice)
	return func(i, j, len int) {
		copy(dst[i:i+len], src[j:j+len])
	}
}

// mergeSortCutover is the local block length at or above which SortKeys prefers
// the parallel merge sort (StableSort) over quicksort (Sort): mergesort.go
// documents StableSort as the better fit for large core counts and large
// collection sizes, at the cost of a shallow temporary copy.
const mergeSortCutover = 1 << 20

// SortKeys sorts block in place, picking the parallel quicksort or
// mergesort in this package according to block's length, each of which
// falls back to a sequential sort for small enough ranges on its own.
func SortKeys(block parsort.LocalBlock) {
	if len(block) >= mergeSortCutover {
		StableSort(KeySlice(block))
		return
	}
	Sort(KeySlice(block))
}

// KeysAreSorted reports whether block is non-decreasing using this
// package's speculative, early-terminating IsSorted rather than a plain
// scan. It gives the PSRS kernel's tests a second, differently grounded
// check to run alongside their plain element-by-element scan.
func KeysAreSorted(block parsort.LocalBlock) bool {
	return IsSorted(KeySlice(block))
}

// IsSortedReference reports whether block is non-decreasing, using the
// sequential package's divide-and-conquer RangeAnd rather than this
// package's own (possibly buggy in the same way) parallel primitives. It
// exists so tests have an independent way to check a sort's result.
func IsSortedReference(block parsort.LocalBlock) bool {
	if len(block) < 2 {
		return true
	}
	ok, _ := sequential.RangeAnd(1, len(block), 0, func(low, high int) (bool, error) {
		for i := low; i < high; i++ {
			if block[i] < block[i-1] {
				return false, nil
			}
		}
		return true, nil
	})
	return ok
}
