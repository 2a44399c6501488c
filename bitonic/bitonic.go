package bitonic

import (
	"context"
	"log"
	"math/bits"

	"github.com/parsortlab/parsort"
	"github.com/parsortlab/parsort/merge"
	sortutil "github.com/parsortlab/parsort/sort"
	"github.com/parsortlab/parsort/timing"
	"github.com/parsortlab/parsort/transport"
	"github.com/pkg/errors"
)

// Sort mutates *block in place into its position in the bitonic merge
// network. Block length is preserved across the whole algorithm: only the
// PSRS kernel changes per-rank sizes. rec accumulates the time spent in
// each stage; the caller owns rec and Sort never resets it.
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
	if rank == 0 && !isPowerOfTwo(size) {
		log.Printf("bitonic: world size %d is not a power of two; proceeding best-effort, correctness is not guaranteed", size)
	}

	stages := ceilLog2(size)
	for s := 0; s < stages; s++ {
		stageSize := 1 << (s + 1)
		ascending := ((rank / stageSize) % 2) == 0
		for t := s; t >= 0; t-- {
			partner := rank ^ (1 << t)
			if partner >= size {
				continue
			}
			keepSmall := ascending
			if rank >= partner {
				keepSmall = !ascending
			}

			var commTimer timing.Timer
			commTimer.Start()
			other, err := tr.PairwiseExchange(ctx, partner, *block)
			rec.AddCommunication(commTimer.Stop())
			if err != nil {
				return errors.Wrapf(err, "bitonic: rank %d: exchange with %d at stage %d step %d", rank, partner, s, t)
			}

			var mergeTimer timing.Timer
			mergeTimer.Start()
			if keepSmall {
				*block = merge.KeepLow(*block, other)
			} else {
				*block = merge.KeepHigh(*block, other)
			}
			rec.AddMerge(mergeTimer.Stop())
		}
	}
	return nil
}

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// ceilLog2 returns the smallest D such that 1<<D >= n, for n >= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
