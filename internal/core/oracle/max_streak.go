package oracle

import "github.com/adampetrovic/ttpcount/internal/core/models"

// MaxStreakRule implements C4: no team may play four games in a row at
// the same location. Reject if appending the candidate would extend
// either team's current streak to four.
type MaxStreakRule struct{}

func (MaxStreakRule) Name() string { return "max_streak" }

func (MaxStreakRule) Reject(w models.WorkItem, candidate models.Matchup) bool {
	home := w.States[candidate.Home]
	if home.Streak.Length == 3 && home.Streak.LastLocation == models.Home {
		return true
	}
	away := w.States[candidate.Away]
	if away.Streak.Length == 3 && away.Streak.LastLocation == models.Away {
		return true
	}
	return false
}
