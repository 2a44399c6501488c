package sample

import (
	"reflect"
	"testing"

	"github.com/parsortlab/parsort"
)

func TestSelectRegular(t *testing.T) {
	cases := []struct {
		in   parsort.LocalBlock
		w    int
		want parsort.LocalBlock
	}{
		{[]int32{1, 2, 3, 4, 5, 6, 7, 8}, 4, []int32{1, 3, 5, 7}},
		{[]int32{}, 3, []int32{0, 0, 0}},
		{[]int32{9}, 4, []int32{9, 9, 9, 9}},
	}
	for _, c := range cases {
		got := SelectRegular(c.in, c.w)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("SelectRegular(%v, %d) = %v, want %v", c.in, c.w, got, c.want)
		}
	}
}

func TestPartitionByPivots(t *testing.T) {
	sorted := parsort.LocalBlock{1, 2, 2, 3, 5, 5, 8, 9}
	pivots := parsort.LocalBlock{3, 5, 8}
	got := PartitionByPivots(sorted, pivots)
	want := []parsort.LocalBlock{
		{1, 2, 2},
		{3},
		{5, 5},
		{8, 9},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(got), len(want))
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("bucket[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPartitionByPivotsCoverage(t *testing.T) {
	sorted := parsort.LocalBlock{1, 1, 1, 1}
	pivots := parsort.LocalBlock{1, 1}
	got := PartitionByPivots(sorted, pivots)
	total := 0
	for _, b := range got {
		total += len(b)
	}
	if total != len(sorted) {
		t.Fatalf("partition coverage = %d, want %d", total, len(sorted))
	}
	if len(got[0]) != 0 {
		t.Fatalf("strict lower_bound should put equal-to-pivot keys in the upper bucket, got %v in bucket 0", got[0])
	}
}

func TestPartitionByPivotsEmpty(t *testing.T) {
	got := PartitionByPivots(nil, parsort.LocalBlock{1, 2, 3})
	for i, b := range got {
		if len(b) != 0 {
			t.Errorf("bucket[%d] = %v, want empty", i, b)
		}
	}
}
