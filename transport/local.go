package transport

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// mesh holds one unbuffered channel per ordered (sender, receiver) pair for
// a given message kind. Every collective gets its own mesh so that, for
// instance, a pending broadcast can never be mistaken for a pairwise
// exchange's size handshake.
type mesh[T any] struct {
	ch [][]chan T
}

func newMesh[T any](size int) *mesh[T] {
	m := &mesh[T]{ch: make([][]chan T, size)}
	for i := range m.ch {
		m.ch[i] = make([]chan T, size)
		for j := range m.ch[i] {
			m.ch[i][j] = make(chan T)
		}
	}
	return m
}

func send[T any](ctx context.Context, ch chan<- T, v T) error {
	select {
	case ch <- v:
		return nil
	case <-ctx.Done():
		return errors.Wrap(TransportFailure, ctx.Err().Error())
	}
}

func recv[T any](ctx context.Context, ch <-chan T) (T, error) {
	var zero T
	select {
	case v := <-ch:
		return v, nil
	case <-ctx.Done():
		return zero, errors.Wrap(TransportFailure, ctx.Err().Error())
	}
}

// hub is the shared state of one in-process world: every Local transport
// handed out by NewLocalWorld points at the same hub, each with a distinct
// rank.
type hub struct {
	size int

	sizeTag *mesh[int]        // tag 0 of PairwiseExchange
	dataTag *mesh[LocalBlock] // tag 1 of PairwiseExchange
	bcast   *mesh[LocalBlock] // root -> every rank
	gather  *mesh[LocalBlock] // rank -> root
	counts  *mesh[int]        // AllToAllCounts transpose
	a2a     *mesh[LocalBlock] // AllToAllV segments
	andIn   *mesh[bool]       // rank -> rank 0
	andOut  *mesh[bool]       // rank 0 -> rank
	reduceIn *mesh[float64]   // rank -> root

	mu      sync.Mutex
	cond    *sync.Cond
	arrived int
	gen     int
}

func newHub(size int) *hub {
	h := &hub{
		size:      size,
		sizeTag:   newMesh[int](size),
		dataTag:   newMesh[LocalBlock](size),
		bcast:     newMesh[LocalBlock](size),
		gather:    newMesh[LocalBlock](size),
		counts:    newMesh[int](size),
		a2a:       newMesh[LocalBlock](size),
		andIn:     newMesh[bool](size),
		andOut:    newMesh[bool](size),
		reduceIn:  newMesh[float64](size),
	}
	h.cond = sync.NewCond(&h.mu)
	return h
}

// Local is an in-process Transport implementation: ranks are goroutines in
// the same process, communicating over the channel meshes of a shared hub.
// It is suitable both for tests and for running a full SPMD program within
// a single binary, which is how cmd/parsortbench drives it.
type Local struct {
	hub  *hub
	rank int
}

// NewLocalWorld builds size Local transports, one per rank, all sharing the
// same in-process substrate.
func NewLocalWorld(size int) []*Local {
	if size <= 0 {
		panic("transport: world size must be positive")
	}
	h := newHub(size)
	world := make([]*Local, size)
	for r := range world {
		world[r] = &Local{hub: h, rank: r}
	}
	return world
}

func (t *Local) Rank() int { return t.rank }
func (t *Local) Size() int { return t.hub.size }

func (t *Local) Barrier(ctx context.Context) error {
	h := t.hub
	h.mu.Lock()
	gen := h.gen
	h.arrived++
	if h.arrived == h.size {
		h.arrived = 0
		h.gen++
		h.cond.Broadcast()
		h.mu.Unlock()
		return nil
	}
	for h.gen == gen {
		h.cond.Wait()
	}
	h.mu.Unlock()
	return nil
}

func (t *Local) PairwiseExchange(ctx context.Context, partner int, buf LocalBlock) (LocalBlock, error) {
	if partner == t.rank {
		return nil, errors.Errorf("transport: rank %d cannot exchange with itself", t.rank)
	}
	errc := make(chan error, 1)
	go func() {
		errc <- send(ctx, t.hub.sizeTag.ch[t.rank][partner], len(buf))
	}()
	peerLen, err := recv(ctx, t.hub.sizeTag.ch[partner][t.rank])
	if err != nil {
		return nil, errors.Wrapf(err, "rank %d: size handshake with %d", t.rank, partner)
	}
	if err := <-errc; err != nil {
		return nil, errors.Wrapf(err, "rank %d: size handshake with %d", t.rank, partner)
	}

	go func() {
		errc <- send(ctx, t.hub.dataTag.ch[t.rank][partner], buf)
	}()
	peer, err := recv(ctx, t.hub.dataTag.ch[partner][t.rank])
	if err != nil {
		return nil, errors.Wrapf(err, "rank %d: data exchange with %d", t.rank, partner)
	}
	if err := <-errc; err != nil {
		return nil, errors.Wrapf(err, "rank %d: data exchange with %d", t.rank, partner)
	}
	if len(peer) != peerLen {
		return nil, errors.Errorf("transport: rank %d received %d elements from %d, handshake promised %d", t.rank, len(peer), partner, peerLen)
	}
	return peer, nil
}

func (t *Local) Broadcast(ctx context.Context, root int, buf LocalBlock) (LocalBlock, error) {
	if t.rank == root {
		out := make(chan error, t.hub.size-1)
		for j := 0; j < t.hub.size; j++ {
			if j == root {
				continue
			}
			j := j
			cp := append(LocalBlock(nil), buf...)
			go func() { out <- send(ctx, t.hub.bcast.ch[root][j], cp) }()
		}
		for j := 0; j < t.hub.size-1; j++ {
			if err := <-out; err != nil {
				return nil, errors.Wrapf(err, "rank %d: broadcast to peers", t.rank)
			}
		}
		return buf, nil
	}
	v, err := recv(ctx, t.hub.bcast.ch[root][t.rank])
	if err != nil {
		return nil, errors.Wrapf(err, "rank %d: broadcast from root %d", t.rank, root)
	}
	return v, nil
}

func (t *Local) Gather(ctx context.Context, root int, local LocalBlock) (LocalBlock, error) {
	cp := append(LocalBlock(nil), local...)
	if t.rank != root {
		if err := send(ctx, t.hub.gather.ch[t.rank][root], cp); err != nil {
			return nil, errors.Wrapf(err, "rank %d: gather to root %d", t.rank, root)
		}
		return nil, nil
	}
	result := make(LocalBlock, 0)
	for j := 0; j < t.hub.size; j++ {
		if j == root {
			result = append(result, cp...)
			continue
		}
		seg, err := recv(ctx, t.hub.gather.ch[j][root])
		if err != nil {
			return nil, errors.Wrapf(err, "root %d: gather from %d", root, j)
		}
		result = append(result, seg...)
	}
	return result, nil
}

func (t *Local) AllToAllCounts(ctx context.Context, sendCounts []int) ([]int, error) {
	if len(sendCounts) != t.hub.size {
		return nil, errors.Errorf("transport: AllToAllCounts needs %d counts, got %d", t.hub.size, len(sendCounts))
	}
	recvCounts := make([]int, t.hub.size)
	errc := make(chan error, t.hub.size-1)
	for j := 0; j < t.hub.size; j++ {
		if j == t.rank {
			continue
		}
		j := j
		go func() { errc <- send(ctx, t.hub.counts.ch[t.rank][j], sendCounts[j]) }()
	}
	for j := 0; j < t.hub.size; j++ {
		if j == t.rank {
			recvCounts[j] = sendCounts[j]
			continue
		}
		v, err := recv(ctx, t.hub.counts.ch[j][t.rank])
		if err != nil {
			return nil, errors.Wrapf(err, "rank %d: counts from %d", t.rank, j)
		}
		recvCounts[j] = v
	}
	for j := 0; j < t.hub.size-1; j++ {
		if err := <-errc; err != nil {
			return nil, errors.Wrapf(err, "rank %d: counts to peers", t.rank)
		}
	}
	return recvCounts, nil
}

func (t *Local) AllToAllV(ctx context.Context, sendBuf LocalBlock, sendCounts, sendDispls []int) (LocalBlock, []int, []int, error) {
	size := t.hub.size
	recvCounts, err := t.AllToAllCounts(ctx, sendCounts)
	if err != nil {
		return nil, nil, nil, err
	}
	recvDispls := make([]int, size)
	total := 0
	for j := 0; j < size; j++ {
		recvDispls[j] = total
		total += recvCounts[j]
	}

	recvBuf := make(LocalBlock, total)
	errc := make(chan error, size-1)
	for j := 0; j < size; j++ {
		if j == t.rank {
			continue
		}
		j := j
		seg := sendBuf[sendDispls[j] : sendDispls[j]+sendCounts[j]]
		go func() { errc <- send(ctx, t.hub.a2a.ch[t.rank][j], append(LocalBlock(nil), seg...)) }()
	}
	for j := 0; j < size; j++ {
		if j == t.rank {
			copy(recvBuf[recvDispls[j]:recvDispls[j]+recvCounts[j]], sendBuf[sendDispls[j]:sendDispls[j]+sendCounts[j]])
			continue
		}
		seg, err := recv(ctx, t.hub.a2a.ch[j][t.rank])
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "rank %d: all-to-all-v from %d", t.rank, j)
		}
		copy(recvBuf[recvDispls[j]:recvDispls[j]+recvCounts[j]], seg)
	}
	for j := 0; j < size-1; j++ {
		if err := <-errc; err != nil {
			return nil, nil, nil, errors.Wrapf(err, "rank %d: all-to-all-v to peers", t.rank)
		}
	}
	return recvBuf, recvCounts, recvDispls, nil
}

func (t *Local) AllreduceAnd(ctx context.Context, value bool) (bool, error) {
	const root = 0
	if t.rank != root {
		if err := send(ctx, t.hub.andIn.ch[t.rank][root], value); err != nil {
			return false, errors.Wrapf(err, "rank %d: allreduce send", t.rank)
		}
	}
	result := value
	if t.rank == root {
		for j := 0; j < t.hub.size; j++ {
			if j == root {
				continue
			}
			v, err := recv(ctx, t.hub.andIn.ch[j][root])
			if err != nil {
				return false, errors.Wrapf(err, "root: allreduce recv from %d", j)
			}
			result = result && v
		}
	}
	out := make(chan error, t.hub.size-1)
	if t.rank == root {
		for j := 0; j < t.hub.size; j++ {
			if j == root {
				continue
			}
			j := j
			go func() { out <- send(ctx, t.hub.andOut.ch[root][j], result) }()
		}
		for j := 0; j < t.hub.size-1; j++ {
			if err := <-out; err != nil {
				return false, errors.Wrap(err, "root: allreduce broadcast")
			}
		}
		return result, nil
	}
	v, err := recv(ctx, t.hub.andOut.ch[root][t.rank])
	if err != nil {
		return false, errors.Wrapf(err, "rank %d: allreduce result", t.rank)
	}
	return v, nil
}

func (t *Local) Reduce(ctx context.Context, root int, op ReduceOp, value float64) (float64, error) {
	if t.rank != root {
		if err := send(ctx, t.hub.reduceIn.ch[t.rank][root], value); err != nil {
			return 0, errors.Wrapf(err, "rank %d: reduce send", t.rank)
		}
		return 0, nil
	}
	result := value
	for j := 0; j < t.hub.size; j++ {
		if j == root {
			continue
		}
		v, err := recv(ctx, t.hub.reduceIn.ch[j][root])
		if err != nil {
			return 0, errors.Wrapf(err, "root: reduce recv from %d", j)
		}
		switch op {
		case Sum:
			result += v
		case Max:
			if v > result {
				result = v
			}
		default:
			return 0, errors.Errorf("transport: unknown reduce op %v", op)
		}
	}
	return result, nil
}
