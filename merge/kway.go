package merge

import (
	"container/heap"

	"github.com/parsortlab/parsort"
)

// item is one candidate in the k-way merge's minimum-heap: the next
// unconsumed value of a run, together with enough to break ties
// deterministically (run index, then position within the run).
type item struct {
	value parsort.Key
	run   int
	pos   int
}

type itemHeap []item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.value != b.value {
		return a.value < b.value
	}
	if a.run != b.run {
		return a.run < b.run
	}
	return a.pos < b.pos
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) { *h = append(*h, x.(item)) }

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// KWayMerge merges runs, a slice of sorted runs, into a single sequence
// equal to their concatenation as a multiset. It runs in O(N log k)
// comparisons, N = sum of run lengths, using a minimum-heap seeded with one
// entry per non-empty run; ties break by run index then position, so the
// output is deterministic for a given input ordering of runs.
func KWayMerge(runs []parsort.LocalBlock) parsort.LocalBlock {
	total := 0
	for _, r := range runs {
		total += len(r)
	}
	out := make(parsort.LocalBlock, 0, total)

	h := make(itemHeap, 0, len(runs))
	for i, r := range runs {
		if len(r) > 0 {
			h = append(h, item{value: r[0], run: i, pos: 0})
		}
	}
	heap.Init(&h)

	for h.Len() > 0 {
		top := heap.Pop(&h).(item)
		out = append(out, top.value)
		next := top.pos + 1
		if next < len(runs[top.run]) {
			heap.Push(&h, item{value: runs[top.run][next], run: top.run, pos: next})
		}
	}
	return out
}
