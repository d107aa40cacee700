package coordinator

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/adampetrovic/ttpcount/internal/core/oracle"
	"github.com/adampetrovic/ttpcount/internal/core/search"
)

// Unbounded is the sentinel for "no cap": a Plan.Max this large is never
// reached before the search exhausts itself. Mirrors the reference
// implementation's MAX_COUNT (the maximum long long int).
const Unbounded int64 = math.MaxInt64

// Mode selects how the frontier is divided across nodes.
type Mode string

const (
	// ModeStatic partitions the frontier by index range up front.
	ModeStatic Mode = "static"
	// ModeDynamic uses the master/worker pull protocol.
	ModeDynamic Mode = "dynamic"
)

// Plan is everything the coordinator needs to run a count: the problem
// size, the BFS ply bound, the per-node leaf cap, and how many nodes to
// simulate.
type Plan struct {
	N       int
	K       int
	Max     int64
	Workers int
	Mode    Mode
	Optimal bool // use the optimized oracle (C1-C6) instead of the basic one (C1-C4)
}

// RankResult is one simulated node's contribution to a run.
type RankResult struct {
	Rank  int
	Local int64
}

// Result is the outcome of a full coordinator run.
type Result struct {
	Total          int64
	PerRank        []RankResult
	FrontierLeaves int64
	TaskCount      int
}

// Progress is reported as a run proceeds, for the job manager/broadcaster
// to relay onward. It carries no guarantee about ordering across ranks.
type Progress struct {
	Rank      int
	Local     int64
	TaskIndex int
}

// Run builds the symmetry-broken root, expands the frontier, and executes
// plan.Workers simulated nodes against it using an in-process network,
// per plan.Mode. onProgress may be nil.
func Run(ctx context.Context, plan Plan, onProgress func(Progress)) (Result, error) {
	if plan.Workers < 1 {
		return Result{}, fmt.Errorf("workers must be at least 1, got %d", plan.Workers)
	}
	if plan.Mode == ModeDynamic && plan.Workers < 2 {
		return Result{}, fmt.Errorf("dynamic mode requires at least 2 nodes (1 master + workers), got %d", plan.Workers)
	}
	if plan.Max <= 0 {
		plan.Max = Unbounded
	}

	root, err := search.NewRoot(plan.N)
	if err != nil {
		return Result{}, fmt.Errorf("building root: %w", err)
	}
	root = search.ApplyFirstRoundSymmetry(root)

	var eng *oracle.Oracle
	if plan.Optimal {
		eng = oracle.NewOptimizedOracle()
	} else {
		eng = oracle.NewBasicOracle()
	}

	frontier := search.BuildFrontier(root, plan.K, eng)
	enumerator := search.NewEnumerator(eng)

	transports := NewInProcessNetwork(plan.Workers)
	group, gctx := errgroup.WithContext(ctx)

	results := make([]RankResult, plan.Workers)
	var reducedGlobal int64
	var errMu sync.Mutex
	var rankErrs *multierror.Error

	progressFor := func(rank int) func(int64, int) {
		if onProgress == nil {
			return nil
		}
		return func(local int64, taskIndex int) {
			onProgress(Progress{Rank: rank, Local: local, TaskIndex: taskIndex})
		}
	}

	for rank := 0; rank < plan.Workers; rank++ {
		rank := rank
		transport := transports[rank]

		group.Go(func() error {
			var err error
			switch plan.Mode {
			case ModeStatic:
				var local, global int64
				local, global, err = RunStatic(gctx, transport, frontier.Tasks, enumerator, plan.Max, progressFor(rank))
				results[rank] = RankResult{Rank: rank, Local: local}
				if rank == 0 {
					reducedGlobal = global
				}
			case ModeDynamic:
				if rank == 0 {
					var global int64
					global, err = RunMaster(gctx, transport, frontier.Tasks)
					results[rank] = RankResult{Rank: rank, Local: 0}
					reducedGlobal = global
				} else {
					var local int64
					local, _, err = RunWorker(gctx, transport, frontier.Tasks, enumerator, plan.Max, progressFor(rank))
					results[rank] = RankResult{Rank: rank, Local: local}
				}
			default:
				err = fmt.Errorf("unknown coordinator mode %q", plan.Mode)
			}

			if err != nil {
				errMu.Lock()
				rankErrs = multierror.Append(rankErrs, fmt.Errorf("rank %d: %w", rank, err))
				errMu.Unlock()
			}
			return err
		})
	}

	group.Wait()
	if rankErrs != nil {
		return Result{}, rankErrs.ErrorOrNil()
	}

	return Result{
		Total:          frontier.LeafCount + reducedGlobal,
		PerRank:        results,
		FrontierLeaves: frontier.LeafCount,
		TaskCount:      len(frontier.Tasks),
	}, nil
}
