package models

// Location identifies where a team played a game.
type Location bool

const (
	Home Location = false
	Away Location = true
)

func (l Location) String() string {
	if l == Away {
		return "away"
	}
	return "home"
}

// Streak is a team's run of consecutive games played at the same location.
type Streak struct {
	Length       int
	LastLocation Location
}

// TeamState is the per-team bookkeeping carried alongside a partial schedule:
// how many home/away games remain to be placed, and the active streak.
type TeamState struct {
	HomeRemaining int
	AwayRemaining int
	Streak        Streak
}

// NewTeamStates returns the zeroed streak state for n teams at the root of
// the search: each team has n-1 home games and n-1 away games remaining,
// and no streak yet established.
func NewTeamStates(n int) []TeamState {
	states := make([]TeamState, n)
	for i := range states {
		states[i] = TeamState{
			HomeRemaining: n - 1,
			AwayRemaining: n - 1,
		}
	}
	return states
}

// Remaining returns the remaining count for the given location.
func (s TeamState) Remaining(loc Location) int {
	if loc == Away {
		return s.AwayRemaining
	}
	return s.HomeRemaining
}
