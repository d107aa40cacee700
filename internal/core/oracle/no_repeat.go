package oracle

import "github.com/adampetrovic/ttpcount/internal/core/models"

// NoRepeatAcrossRoundsRule implements C3: two teams that just played may
// not play each other again in the immediately next round. If the
// schedule has a completed round before the one currently being filled,
// reject a candidate that mirrors a matchup from that immediately
// preceding round.
type NoRepeatAcrossRoundsRule struct{}

func (NoRepeatAcrossRoundsRule) Name() string { return "no_repeat_across_rounds" }

func (NoRepeatAcrossRoundsRule) Reject(w models.WorkItem, candidate models.Matchup) bool {
	prev := w.PreviousRound()
	if prev == nil {
		return false
	}
	mirror := candidate.Reverse()
	for _, p := range prev {
		if p == mirror {
			return true
		}
	}
	return false
}
