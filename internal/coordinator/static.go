package coordinator

import (
	"context"

	"github.com/adampetrovic/ttpcount/internal/core/models"
	"github.com/adampetrovic/ttpcount/internal/core/search"
)

// StaticSlice returns the half-open index range of tasks rank r processes
// out of a frontier of size total, spread as evenly as possible across w
// nodes: node r gets tasks [r*floor(T/W) + min(r, T mod W),
// (r+1)*floor(T/W) + min(r+1, T mod W)).
func StaticSlice(total, w, r int) (start, end int) {
	base := total / w
	rem := total % w
	minInt := func(a, b int) int {
		if a < b {
			return a
		}
		return b
	}
	start = r*base + minInt(r, rem)
	end = (r+1)*base + minInt(r+1, rem)
	return start, end
}

// RunStatic executes the static-mode coordinator for one node: every node
// has already independently recomputed the identical frontier (the
// builder is deterministic), so it slices out its own range and processes
// it sequentially, index-ascending, via the recursive enumerator. The
// local count is then summed into a global total on rank 0. Once ctx is
// done, no further task is started and ctx's error is returned.
func RunStatic(ctx context.Context, transport Transport, tasks []models.WorkItem, enumerator *search.Enumerator, max int64, progress func(localCount int64, taskIndex int)) (local int64, global int64, err error) {
	rank, size := transport.Rank(), transport.Size()
	start, end := StaticSlice(len(tasks), size, rank)

	for i := start; i < end && local < max; i++ {
		if err := ctx.Err(); err != nil {
			return local, 0, err
		}
		local += enumerator.CountRecursive(tasks[i], max-local)
		if progress != nil {
			progress(local, i)
		}
	}

	global, err = transport.Reduce(ctx, local)
	if err != nil {
		return local, 0, &ErrCommunication{Rank: rank, Op: "reduce", Err: err}
	}
	return local, global, nil
}
