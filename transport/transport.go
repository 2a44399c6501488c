package transport

import (
	"context"

	"github.com/parsortlab/parsort"
	"github.com/pkg/errors"
)

// LocalBlock is an alias for parsort.LocalBlock, repeated here so callers
// that only need transport need not import the root package themselves.
type LocalBlock = parsort.LocalBlock

// TransportFailure is the sentinel wrapped around any error surfaced by a
// Transport implementation. The adapter makes no attempt at recovery: a
// transport failure is fatal to the rank that observes it.
var TransportFailure = errors.New("transport: collective failed")

// ReduceOp names the reduction applied by Transport.Reduce.
type ReduceOp int

const (
	// Sum reduces by addition.
	Sum ReduceOp = iota
	// Max reduces by maximum.
	Max
)

// Transport is the Collective Transport Adapter: the only contact point
// between a kernel and whatever substrate carries bytes between ranks.
// Every method blocks from the caller's perspective — it returns only once
// the local rank's participation in the collective is complete — and every
// method participating in the same collective must be called, in the same
// order, by every rank in the world; violating that produces a deadlock or
// a TransportFailure, never a partial result.
type Transport interface {
	// Rank returns this process's identity in [0, Size()).
	Rank() int

	// Size returns the number of cooperating ranks.
	Size() int

	// Barrier blocks until every rank has called Barrier.
	Barrier(ctx context.Context) error

	// PairwiseExchange sends send to partner and returns what partner sent
	// to this rank. Both ranks of the pair must call PairwiseExchange with
	// each other as partner. Implemented as a size handshake followed by a
	// data exchange, so the caller never sizes its own receive buffer.
	PairwiseExchange(ctx context.Context, partner int, send LocalBlock) (LocalBlock, error)

	// Broadcast distributes buf from root to every rank. Only root's buf
	// is significant; every rank, including root, receives the returned
	// value.
	Broadcast(ctx context.Context, root int, buf LocalBlock) (LocalBlock, error)

	// Gather concatenates local, contributed by every rank in rank order,
	// at root. Non-root ranks receive a nil slice.
	Gather(ctx context.Context, root int, local LocalBlock) (LocalBlock, error)

	// AllToAllCounts exchanges counts: sendCounts[j] is what this rank
	// intends to send to rank j; the result's [j] is what rank j intends
	// to send to this rank.
	AllToAllCounts(ctx context.Context, sendCounts []int) ([]int, error)

	// AllToAllV exchanges variable-size segments of sendBuf, sliced by
	// sendCounts/sendDispls, with every other rank, returning the
	// concatenated receive buffer along with the receive counts and
	// displacements describing its layout.
	AllToAllV(ctx context.Context, sendBuf LocalBlock, sendCounts, sendDispls []int) (recvBuf LocalBlock, recvCounts, recvDispls []int, err error)

	// AllreduceAnd reduces value with logical AND across every rank and
	// returns the result to every rank.
	AllreduceAnd(ctx context.Context, value bool) (bool, error)

	// Reduce reduces value with op across every rank, returning the
	// result at root. The value returned to non-root ranks is unspecified.
	Reduce(ctx context.Context, root int, op ReduceOp, value float64) (float64, error)
}
