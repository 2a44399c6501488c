package verify

import (
	"context"

	"github.com/parsortlab/parsort"
	"github.com/parsortlab/parsort/transport"
	"github.com/pkg/errors"
)

// Failure is the sentinel wrapped around a verification-stage error:
// either the transport failed while exchanging boundary elements, or the
// global reduction itself could not complete. It is distinct from a
// verdict of "not sorted", which Sorted reports as (false, nil).
var Failure = errors.New("verify: verification could not complete")

// Sorted reports whether block is non-decreasing and, combined across
// every rank, forms a single non-decreasing sequence: rank r sends its
// last element to rank r+1, which checks it against its own first element;
// a logical-and reduction across all ranks yields the single system-wide
// verdict returned to every rank. An empty block trivially satisfies both
// the local and boundary checks.
func Sorted(ctx context.Context, tr transport.Transport, block parsort.LocalBlock) (bool, error) {
	local := isLocallyNonDecreasing(block)

	rank, size := tr.Rank(), tr.Size()
	boundaryOK := true

	if rank < size-1 {
		var send parsort.LocalBlock
		if len(block) > 0 {
			send = parsort.LocalBlock{block[len(block)-1]}
		}
		if _, err := tr.PairwiseExchange(ctx, rank+1, send); err != nil {
			return false, errors.Wrap(Failure, err.Error())
		}
	}
	if rank > 0 {
		recv, err := tr.PairwiseExchange(ctx, rank-1, nil)
		if err != nil {
			return false, errors.Wrap(Failure, err.Error())
		}
		if len(recv) > 0 && len(block) > 0 {
			boundaryOK = recv[0] <= block[0]
		}
	}

	verdict, err := tr.AllreduceAnd(ctx, local && boundaryOK)
	if err != nil {
		return false, errors.Wrap(Failure, err.Error())
	}
	return verdict, nil
}

func isLocallyNonDecreasing(block parsort.LocalBlock) bool {
	for i := 1; i < len(block); i++ {
		if block[i] < block[i-1] {
			return false
		}
	}
	return true
}
