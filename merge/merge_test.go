package merge

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/parsortlab/parsort"
)

func TestKeepLow(t *testing.T) {
	cases := []struct {
		own, other, want parsort.LocalBlock
	}{
		{[]int32{1, 3, 5}, []int32{2, 4, 6}, []int32{1, 2, 3}},
		{[]int32{}, []int32{1, 2}, []int32{}},
		{[]int32{1, 2}, []int32{}, []int32{1, 2}},
		{[]int32{5, 5}, []int32{5, 5}, []int32{5, 5}},
	}
	for _, c := range cases {
		got := KeepLow(c.own, c.other)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("KeepLow(%v, %v) = %v, want %v", c.own, c.other, got, c.want)
		}
	}
}

func TestKeepHigh(t *testing.T) {
	cases := []struct {
		own, other, want parsort.LocalBlock
	}{
		{[]int32{1, 3, 5}, []int32{2, 4, 6}, []int32{4, 5, 6}},
		{[]int32{}, []int32{1, 2}, []int32{}},
		{[]int32{1, 2}, []int32{}, []int32{1, 2}},
	}
	for _, c := range cases {
		got := KeepHigh(c.own, c.other)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("KeepHigh(%v, %v) = %v, want %v", c.own, c.other, got, c.want)
		}
	}
}

func TestKeepLowHighPreserveMultisetAndLength(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		own := randomSorted(r, r.Intn(20))
		other := randomSorted(r, r.Intn(20))

		// As in a compare-exchange: own's side keeps the low part and
		// other's side keeps the high part of the same merged pair.
		low := KeepLow(append(parsort.LocalBlock{}, own...), other)
		high := KeepHigh(append(parsort.LocalBlock{}, other...), own)

		if len(low) != len(own) {
			t.Fatalf("KeepLow changed length: got %d want %d", len(low), len(own))
		}
		if len(high) != len(other) {
			t.Fatalf("KeepHigh changed length: got %d want %d", len(high), len(other))
		}
		if !sort.IsSorted(int32Slice(low)) {
			t.Fatalf("KeepLow result not sorted: %v", low)
		}
		if !sort.IsSorted(int32Slice(high)) {
			t.Fatalf("KeepHigh result not sorted: %v", high)
		}

		combined := append(append(parsort.LocalBlock{}, low...), high...)
		want := append(append(parsort.LocalBlock{}, own...), other...)
		if !multisetEqual(combined, want) {
			t.Fatalf("KeepLow+KeepHigh lost or duplicated elements:\nlow+high=%v\nown+other=%v", combined, want)
		}
	}
}

func TestKWayMerge(t *testing.T) {
	runs := []parsort.LocalBlock{
		{1, 4, 7},
		{2, 2, 9},
		{},
		{0, 100},
	}
	got := KWayMerge(runs)
	want := []int32{0, 1, 2, 2, 4, 7, 9, 100}
	if !reflect.DeepEqual([]int32(got), want) {
		t.Errorf("KWayMerge(%v) = %v, want %v", runs, got, want)
	}
}

func TestKWayMergeRandom(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		nRuns := r.Intn(8) + 1
		runs := make([]parsort.LocalBlock, nRuns)
		var want parsort.LocalBlock
		for i := range runs {
			runs[i] = randomSorted(r, r.Intn(15))
			want = append(want, runs[i]...)
		}
		got := KWayMerge(runs)
		if !sort.IsSorted(int32Slice(got)) {
			t.Fatalf("KWayMerge result not sorted: %v", got)
		}
		if !multisetEqual(got, want) {
			t.Fatalf("KWayMerge lost or duplicated elements:\ngot=%v\nwant multiset of=%v", got, want)
		}
	}
}

type int32Slice []int32

func (s int32Slice) Len() int           { return len(s) }
func (s int32Slice) Less(i, j int) bool { return s[i] < s[j] }
func (s int32Slice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func randomSorted(r *rand.Rand, n int) parsort.LocalBlock {
	out := make(parsort.LocalBlock, n)
	for i := range out {
		out[i] = int32(r.Intn(20))
	}
	sort.Sort(int32Slice(out))
	return out
}

func multisetEqual(a, b parsort.LocalBlock) bool {
	if len(a) != len(b) {
		return false
	}
	ca, cb := append(parsort.LocalBlock{}, a...), append(parsort.LocalBlock{}, b...)
	sort.Sort(int32Slice(ca))
	sort.Sort(int32Slice(cb))
	return reflect.DeepEqual(ca, cb)
}
