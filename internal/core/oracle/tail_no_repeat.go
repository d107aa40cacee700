package oracle

import "github.com/adampetrovic/ttpcount/internal/core/models"

// TwoRoundTailRule implements C6: the instant the schedule built so far
// has exactly two rounds left to fill (i.e. before placing the first
// matchup of the second-to-last round), the remaining matchup pool
// cannot legally place a mirrored pair (x,y) and (y,x) across those last
// two rounds without repeating a pairing within them. The check fires
// once, at that exact schedule length, regardless of which candidate is
// under consideration.
type TwoRoundTailRule struct{}

func (TwoRoundTailRule) Name() string { return "two_round_tail" }

func (TwoRoundTailRule) Reject(w models.WorkItem, candidate models.Matchup) bool {
	roundSize := w.RoundSize()
	totalRounds := 2 * (w.N - 1)
	maxSize := roundSize * totalRounds

	if len(w.Schedule) != maxSize-2*roundSize {
		return false
	}

	seen := make(map[models.Matchup]bool, len(w.Remaining))
	for _, m := range w.Remaining {
		seen[m] = true
	}

	for m := range seen {
		if seen[m.Reverse()] {
			return true
		}
	}
	return false
}
