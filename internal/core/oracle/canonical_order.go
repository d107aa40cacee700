package oracle

import "github.com/adampetrovic/ttpcount/internal/core/models"

// CanonicalOrderRule implements C2: within a single round, matchups are
// appended in non-decreasing order of their home team's id. This is a
// symmetry-breaking device: it eliminates the (N/2)! permutations of a
// round's matchups, so every round is listed in exactly one canonical
// order.
type CanonicalOrderRule struct{}

func (CanonicalOrderRule) Name() string { return "canonical_order" }

func (CanonicalOrderRule) Reject(w models.WorkItem, candidate models.Matchup) bool {
	suffix := w.CurrentRoundSuffix()
	if len(suffix) == 0 {
		return false
	}
	last := suffix[len(suffix)-1]
	return candidate.Home < last.Home
}
