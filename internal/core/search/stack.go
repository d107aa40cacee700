package search

import (
	"github.com/adampetrovic/ttpcount/internal/core/models"
	"github.com/adampetrovic/ttpcount/internal/core/streak"
)

// CountStack is Strategy S: explicit-stack depth-first search. Unlike
// CountRecursive it copies rather than undoes — each accepted candidate
// pushes a freshly cloned child work item — trading memory for simpler
// control flow. It must enumerate the same leaf set as CountRecursive for
// the same root.
func (e *Enumerator) CountStack(root models.WorkItem, max int64) int64 {
	var count int64
	stack := []models.WorkItem{root.Clone()}

	for len(stack) > 0 {
		if count >= max {
			return count
		}

		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if item.IsLeaf() {
			count++
			continue
		}

		for i, candidate := range item.Remaining {
			if e.Oracle.Reject(item, candidate) {
				continue
			}
			child := applyCandidate(item, i, candidate)
			stack = append(stack, child)
		}
	}

	return count
}

// applyCandidate returns a child work item with the i-th remaining
// matchup removed, appended to the schedule, and the streak tracker
// applied — built as a copy so the parent item is left untouched.
func applyCandidate(parent models.WorkItem, i int, candidate models.Matchup) models.WorkItem {
	child := parent.Clone()
	child.Remaining = without(parent.Remaining, i)
	child.Schedule = append(child.Schedule, candidate)
	streak.Apply(child.States, candidate)
	return child
}
