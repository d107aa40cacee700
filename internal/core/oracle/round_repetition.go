package oracle

import "github.com/adampetrovic/ttpcount/internal/core/models"

// RoundRepetitionRule implements C1: within the round currently being
// filled, no team may appear twice.
type RoundRepetitionRule struct{}

func (RoundRepetitionRule) Name() string { return "round_repetition" }

func (RoundRepetitionRule) Reject(w models.WorkItem, candidate models.Matchup) bool {
	for _, played := range w.CurrentRoundSuffix() {
		if played.Involves(candidate.Home) || played.Involves(candidate.Away) {
			return true
		}
	}
	return false
}
