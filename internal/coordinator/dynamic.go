package coordinator

import (
	"context"

	"github.com/adampetrovic/ttpcount/internal/core/models"
	"github.com/adampetrovic/ttpcount/internal/core/search"
)

// noMoreTasks is the sentinel the master sends to tell a worker to exit.
const noMoreTasks = -1

// RunMaster implements the master side of the dynamic (pull) protocol: it
// owns no tasks. It receives a request from any worker, replies with the
// next unassigned task index (or the sentinel once all are assigned), and
// terminates after issuing len(tasks) valid responses and size-1
// sentinels — one per worker. All communication uses a single
// request/response exchange; any failure is fatal, per §7.
func RunMaster(ctx context.Context, transport Transport, tasks []models.WorkItem) (global int64, err error) {
	size := transport.Size()
	next := 0
	sentinelsSent := 0

	for sentinelsSent < size-1 {
		requester, _, err := transport.RecvAny(ctx)
		if err != nil {
			return 0, &ErrCommunication{Rank: transport.Rank(), Op: "recv_any", Err: err}
		}

		reply := noMoreTasks
		if next < len(tasks) {
			reply = next
			next++
		} else {
			sentinelsSent++
		}

		if err := transport.Send(ctx, requester, reply); err != nil {
			return 0, &ErrCommunication{Rank: transport.Rank(), Op: "send", Err: err}
		}
	}

	global, err = transport.Reduce(ctx, 0)
	if err != nil {
		return 0, &ErrCommunication{Rank: transport.Rank(), Op: "reduce", Err: err}
	}
	return global, nil
}

// RunWorker implements the worker side of the dynamic protocol: request a
// task index, process it with the recursive enumerator (Strategy R) if
// one was granted, and loop. A worker that finishes a task always
// requests another before exiting; a sentinel ends the loop.
func RunWorker(ctx context.Context, transport Transport, tasks []models.WorkItem, enumerator *search.Enumerator, max int64, progress func(localCount int64, taskIndex int)) (local int64, global int64, err error) {
	rank := transport.Rank()

	for {
		if err := transport.Send(ctx, 0, rank); err != nil {
			return local, 0, &ErrCommunication{Rank: rank, Op: "send_request", Err: err}
		}
		taskIndex, err := transport.Recv(ctx, 0)
		if err != nil {
			return local, 0, &ErrCommunication{Rank: rank, Op: "recv_assignment", Err: err}
		}
		if taskIndex == noMoreTasks {
			break
		}

		local += enumerator.CountRecursive(tasks[taskIndex], max-local)
		if progress != nil {
			progress(local, taskIndex)
		}
	}

	global, err = transport.Reduce(ctx, local)
	if err != nil {
		return local, 0, &ErrCommunication{Rank: rank, Op: "reduce", Err: err}
	}
	return local, global, nil
}
