package search

import (
	"github.com/adampetrovic/ttpcount/internal/core/models"
	"github.com/adampetrovic/ttpcount/internal/core/oracle"
	"github.com/adampetrovic/ttpcount/internal/core/streak"
)

// Enumerator walks the search tree rooted at a work item, counting leaves
// (fully-built, feasible schedules). It offers two strategies with
// identical extensional behavior: CountRecursive (Strategy R) and
// CountStack (Strategy S).
type Enumerator struct {
	Oracle *oracle.Oracle
}

// NewEnumerator creates an enumerator that rejects candidates using o.
func NewEnumerator(o *oracle.Oracle) *Enumerator {
	return &Enumerator{Oracle: o}
}

// CountRecursive is Strategy R: recursive depth-first search that mutates
// the work item in place and undoes each step via snapshot/restore on
// backtrack. It stops as soon as the local counter reaches max.
func (e *Enumerator) CountRecursive(root models.WorkItem, max int64) int64 {
	item := root.Clone()
	var count int64
	e.recurse(&item, &count, max)
	return count
}

func (e *Enumerator) recurse(item *models.WorkItem, count *int64, max int64) {
	if *count >= max {
		return
	}
	if item.IsLeaf() {
		*count++
		return
	}

	remaining := item.Remaining
	for i, candidate := range remaining {
		if *count >= max {
			return
		}
		if e.Oracle.Reject(*item, candidate) {
			continue
		}

		item.Remaining = without(remaining, i)
		item.Schedule = append(item.Schedule, candidate)
		snap := streak.SaveAndApply(item.States, candidate)

		e.recurse(item, count, max)

		streak.Restore(item.States, snap)
		item.Schedule = item.Schedule[:len(item.Schedule)-1]
		item.Remaining = remaining
	}
}

// without returns a copy of s with the element at index i removed,
// preserving the relative order of the rest.
func without(s []models.Matchup, i int) []models.Matchup {
	out := make([]models.Matchup, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}
