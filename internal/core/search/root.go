// Package search implements the Sequential Enumerator (recursive and
// explicit-stack strategies) and the Frontier Builder: the depth-first and
// bounded breadth-first walks over the search tree of partial double
// round-robin schedules.
package search

import (
	"fmt"

	"github.com/adampetrovic/ttpcount/internal/core/models"
	"github.com/adampetrovic/ttpcount/internal/core/streak"
)

// NewRoot builds the root work item for n teams: the full matchup
// universe, an empty schedule, and zeroed streak state.
func NewRoot(n int) (models.WorkItem, error) {
	universe, err := models.Universe(n)
	if err != nil {
		return models.WorkItem{}, fmt.Errorf("building root work item: %w", err)
	}
	return models.WorkItem{
		N:         n,
		Remaining: universe,
		Schedule:  make([]models.Matchup, 0, n*(n-1)),
		States:    models.NewTeamStates(n),
	}, nil
}

// ApplyFirstRoundSymmetry fixes the first round of the schedule to the
// canonical matching (0,1), (2,3), ..., (N-2, N-1), removes those
// matchups from the remaining set, and applies the streak tracker for
// each. This collapses the first round's rotational/relabeling symmetry;
// callers wanting the un-normalized count must multiply back in the
// appropriate combinatorial factor.
func ApplyFirstRoundSymmetry(root models.WorkItem) models.WorkItem {
	canonical := make([]models.Matchup, 0, root.N/2)
	for i := 0; i < root.N; i += 2 {
		canonical = append(canonical, models.Matchup{Home: i, Away: i + 1})
	}

	remaining := make([]models.Matchup, 0, len(root.Remaining)-len(canonical))
	fixed := make(map[models.Matchup]bool, len(canonical))
	for _, m := range canonical {
		fixed[m] = true
	}
	for _, m := range root.Remaining {
		if !fixed[m] {
			remaining = append(remaining, m)
		}
	}

	states := streak.Copy(root.States)
	schedule := make([]models.Matchup, 0, len(root.Schedule)+len(canonical))
	schedule = append(schedule, root.Schedule...)
	for _, m := range canonical {
		streak.Apply(states, m)
		schedule = append(schedule, m)
	}

	return models.WorkItem{
		N:         root.N,
		Remaining: remaining,
		Schedule:  schedule,
		States:    states,
	}
}
