package coordinator

import (
	"context"
	"fmt"
)

// taskRequest is one worker asking the master for its next task.
type taskRequest struct {
	rank int
	val  int
}

// InProcessNetwork is a set of Transport handles, one per rank, that
// communicate over Go channels within a single process. It is the only
// Transport implementation this repository ships: see the package doc
// for why (no MPI binding exists anywhere in the example corpus).
type InProcessNetwork struct {
	size      int
	requests  chan taskRequest
	responses []chan int
	reduceIn  chan int64
}

// NewInProcessNetwork builds a network of size ranks and returns one
// Transport handle per rank, indexed by rank.
func NewInProcessNetwork(size int) []Transport {
	net := &InProcessNetwork{
		size:      size,
		requests:  make(chan taskRequest, size),
		responses: make([]chan int, size),
		reduceIn:  make(chan int64, size),
	}
	for i := range net.responses {
		net.responses[i] = make(chan int, 1)
	}

	handles := make([]Transport, size)
	for r := 0; r < size; r++ {
		handles[r] = &inProcessHandle{rank: r, net: net}
	}
	return handles
}

type inProcessHandle struct {
	rank int
	net  *InProcessNetwork
}

func (h *inProcessHandle) Rank() int { return h.rank }
func (h *inProcessHandle) Size() int { return h.net.size }

// Send implements the two roles the coordinator needs: a worker sending
// its rank to the master (dst == 0, the master's request queue) and the
// master sending a task index to a worker (dst == worker's rank, its
// response channel).
func (h *inProcessHandle) Send(ctx context.Context, dst int, val int) error {
	if h.rank == 0 && dst != 0 {
		select {
		case h.net.responses[dst] <- val:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	select {
	case h.net.requests <- taskRequest{rank: h.rank, val: val}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *inProcessHandle) Recv(ctx context.Context, src int) (int, error) {
	if h.rank == 0 {
		return 0, fmt.Errorf("master must use RecvAny, not Recv(%d)", src)
	}
	select {
	case val := <-h.net.responses[h.rank]:
		return val, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (h *inProcessHandle) RecvAny(ctx context.Context) (int, int, error) {
	if h.rank != 0 {
		return 0, 0, fmt.Errorf("only the master may RecvAny")
	}
	select {
	case req := <-h.net.requests:
		return req.rank, req.val, nil
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	}
}

// Reduce sums local across every rank. Each rank posts its value; rank 0
// drains exactly size values and returns the sum, matching an MPI
// sum-reduction to the root.
func (h *inProcessHandle) Reduce(ctx context.Context, local int64) (int64, error) {
	select {
	case h.net.reduceIn <- local:
	case <-ctx.Done():
		return 0, ctx.Err()
	}

	if h.rank != 0 {
		return 0, nil
	}

	var total int64
	for i := 0; i < h.net.size; i++ {
		select {
		case v := <-h.net.reduceIn:
			total += v
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	return total, nil
}
