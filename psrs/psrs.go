package psrs

import (
	"context"

	"github.com/parsortlab/parsort"
	"github.com/parsortlab/parsort/merge"
	"github.com/parsortlab/parsort/sample"
	sortutil "github.com/parsortlab/parsort/sort"
	"github.com/parsortlab/parsort/timing"
	"github.com/parsortlab/parsort/transport"
	"github.com/pkg/errors"
)

// Sort mutates *block in place, redistributing keys across every rank
// participating in tr so that the concatenation of all ranks' blocks, in
// rank order, is globally non-decreasing. Local block size may change: the
// receive side of the final all-to-all-v determines the new length. rec
// accumulates the time spent in each stage; the caller owns rec and Sort
// never resets it.
func Sort(ctx context.Context, tr transport.Transport, block *parsort.LocalBlock, rec *timing.Record) error {
	rank, size := tr.Rank(), tr.Size()

	var total timing.Timer
	total.Start()
	defer rec.AddTotal(total.Stop())

	var localTimer timing.Timer
	localTimer.Start()
	sortutil.SortKeys(*block)
	rec.AddLocalSort(localTimer.Stop())

	if size == 1 {
		return nil
	}

	var commTimer timing.Timer
	commTimer.Start()

	samples := sample.SelectRegular(*block, size)
	gathered, err := tr.Gather(ctx, 0, samples)
	if err != nil {
		return errors.Wrapf(err, "psrs: rank %d: gather samples", rank)
	}

	var pivots parsort.LocalBlock
	if rank == 0 {
		pivots = choosePivots(gathered, size)
	}
	pivots, err = tr.Broadcast(ctx, 0, pivots)
	if err != nil {
		return errors.Wrapf(err, "psrs: rank %d: broadcast pivots", rank)
	}

	buckets := sample.PartitionByPivots(*block, pivots)
	sendBuf, sendCounts, sendDispls := flatten(buckets)

	recvBuf, recvCounts, recvDispls, err := tr.AllToAllV(ctx, sendBuf, sendCounts, sendDispls)
	if err != nil {
		return errors.Wrapf(err, "psrs: rank %d: all-to-all-v exchange", rank)
	}
	rec.AddCommunication(commTimer.Stop())

	var mergeTimer timing.Timer
	mergeTimer.Start()
	runs := make([]parsort.LocalBlock, size)
	for j := range runs {
		runs[j] = recvBuf[recvDispls[j] : recvDispls[j]+recvCounts[j]]
	}
	*block = merge.KWayMerge(runs)
	rec.AddMerge(mergeTimer.Stop())

	return nil
}

// choosePivots implements the PSRS pivot-selection rule: concatenate the
// gathered samples (rank 0 already receives them concatenated in rank
// order), sort them, and pick pivots[i] = sorted[(i+1)*size] for
// i in [0, size-1), clamping the index to the last element.
func choosePivots(gathered parsort.LocalBlock, size int) parsort.LocalBlock {
	sorted := append(parsort.LocalBlock(nil), gathered...)
	sortutil.SortKeys(sorted)

	pivots := make(parsort.LocalBlock, size-1)
	for i := 0; i < size-1; i++ {
		idx := (i + 1) * size
		if idx >= len(sorted) {
			idx = len(sorted) - 1
		}
		pivots[i] = sorted[idx]
	}
	return pivots
}

// flatten concatenates buckets in rank order into a single send buffer,
// returning the per-destination counts and displacements all_to_all_v
// needs.
func flatten(buckets []parsort.LocalBlock) (buf parsort.LocalBlock, counts, displs []int) {
	counts = make([]int, len(buckets))
	displs = make([]int, len(buckets))
	total := 0
	for i, b := range buckets {
		counts[i] = len(b)
		displs[i] = total
		total += len(b)
	}
	buf = make(parsort.LocalBlock, total)
	for i, b := range buckets {
		copy(buf[displs[i]:displs[i]+counts[i]], b)
	}
	return buf, counts, displs
}
