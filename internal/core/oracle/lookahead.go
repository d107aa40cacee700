package oracle

import "github.com/adampetrovic/ttpcount/internal/core/models"

// FutureStreakInfeasibleRule implements C5: a strengthened lookahead on
// top of MaxStreakRule. For either team in the candidate, look at its
// remaining home/away counts after hypothetically accepting the
// candidate. Let x be the larger of the two, y the smaller. s, the
// "debt" already accumulated toward x, is the team's current streak
// length, but only when that streak runs in the direction the team just
// played AND that direction is also the majority one; any other
// combination contributes nothing. At least ceil((x+s)/3) - 1 breaks in
// the majority location are required before the schedule can close, and
// only y+1 opportunities to break remain; reject if the required breaks
// exceed the available ones.
type FutureStreakInfeasibleRule struct{}

func (FutureStreakInfeasibleRule) Name() string { return "future_streak_infeasible" }

func (FutureStreakInfeasibleRule) Reject(w models.WorkItem, candidate models.Matchup) bool {
	return teamInfeasible(w.States[candidate.Home], models.Home) ||
		teamInfeasible(w.States[candidate.Away], models.Away)
}

func teamInfeasible(state models.TeamState, playedLocation models.Location) bool {
	homeRemaining, awayRemaining := state.HomeRemaining, state.AwayRemaining
	if playedLocation == models.Home {
		homeRemaining--
	} else {
		awayRemaining--
	}

	x, y := homeRemaining, awayRemaining
	majorityIsPlayedLocation := homeRemaining != awayRemaining
	if playedLocation == models.Home {
		majorityIsPlayedLocation = homeRemaining > awayRemaining
	} else {
		majorityIsPlayedLocation = awayRemaining > homeRemaining
	}
	if awayRemaining > homeRemaining {
		x, y = awayRemaining, homeRemaining
	}

	s := 0
	if majorityIsPlayedLocation && state.Streak.LastLocation == playedLocation {
		s = state.Streak.Length
	}

	return (x+s)/3 > y+1
}
