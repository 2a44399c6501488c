package sort

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/parsortlab/parsort"
)

func TestSortKeysSmall(t *testing.T) {
	block := parsort.LocalBlock{5, 3, 1, 4, 2}
	SortKeys(block)
	want := parsort.LocalBlock{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(block, want) {
		t.Fatalf("SortKeys = %v, want %v", block, want)
	}
}

func TestSortKeysLarge(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	block := make(parsort.LocalBlock, qsortGrainSize*3)
	for i := range block {
		block[i] = parsort.Key(r.Int31n(1000))
	}
	SortKeys(block)
	if !IsSortedReference(block) {
		t.Fatalf("SortKeys produced an unsorted block")
	}
}

func TestSortKeysEmptyAndSingle(t *testing.T) {
	empty := parsort.LocalBlock{}
	SortKeys(empty)
	if len(empty) != 0 {
		t.Fatalf("SortKeys(empty) changed length")
	}
	single := parsort.LocalBlock{9}
	SortKeys(single)
	if single[0] != 9 {
		t.Fatalf("SortKeys(single) = %v, want [9]", single)
	}
}

// Exercises StableSort directly, above msortGrainSize so the parallel
// merge path (not its sequential fallback) runs.
func TestStableSortKeysLarge(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	block := make(parsort.LocalBlock, msortGrainSize*3)
	for i := range block {
		block[i] = parsort.Key(r.Int31n(1000))
	}
	before := append(parsort.LocalBlock(nil), block...)
	StableSort(KeySlice(block))
	if !IsSortedReference(block) {
		t.Fatalf("StableSort produced an unsorted block")
	}
	if len(block) != len(before) {
		t.Fatalf("StableSort changed length: got %d, want %d", len(block), len(before))
	}
}

func TestIsSortedSmallAndLarge(t *testing.T) {
	if !IsSorted(KeySlice(parsort.LocalBlock{1, 2, 3})) {
		t.Fatal("IsSorted(sorted small) = false, want true")
	}
	if IsSorted(KeySlice(parsort.LocalBlock{3, 2, 1})) {
		t.Fatal("IsSorted(reversed small) = true, want false")
	}

	large := make(parsort.LocalBlock, qsortGrainSize*2)
	for i := range large {
		large[i] = parsort.Key(i)
	}
	if !IsSorted(KeySlice(large)) {
		t.Fatal("IsSorted(sorted large) = false, want true")
	}
	large[len(large)-1] = 0
	if IsSorted(KeySlice(large)) {
		t.Fatal("IsSorted(large with trailing violation) = true, want false")
	}
}
