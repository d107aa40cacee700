package search

import (
	"github.com/adampetrovic/ttpcount/internal/core/models"
	"github.com/adampetrovic/ttpcount/internal/core/oracle"
)

// Frontier is the result of a bounded breadth-first expansion: the task
// list to hand to the distributed coordinator, plus any leaves discovered
// along the way (which must be added to the global total, since a K large
// enough to reach terminal nodes would otherwise lose their count).
type Frontier struct {
	Tasks     []models.WorkItem
	LeafCount int64
}

// BuildFrontier expands root breadth-first for k plies, oracle-filtering
// candidates at each step, and returns the resulting task list. K shapes
// the parallelization grain: too small yields few coarse tasks and load
// imbalance, too large yields many fine tasks and dispatch overhead.
func BuildFrontier(root models.WorkItem, k int, o *oracle.Oracle) Frontier {
	frontier := Frontier{Tasks: []models.WorkItem{root}}

	for ply := 0; ply < k; ply++ {
		next := make([]models.WorkItem, 0, len(frontier.Tasks))
		for _, item := range frontier.Tasks {
			if item.IsLeaf() {
				frontier.LeafCount++
				continue
			}
			for i, candidate := range item.Remaining {
				if o.Reject(item, candidate) {
					continue
				}
				next = append(next, applyCandidate(item, i, candidate))
			}
		}
		frontier.Tasks = next
	}

	return frontier
}
