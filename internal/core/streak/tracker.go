// Package streak implements the reversible per-team streak bookkeeping
// that backs the search: home/away counts remaining and the current
// consecutive-location run, updated as matchups are appended to a partial
// schedule and undone as the search backtracks.
package streak

import "github.com/adampetrovic/ttpcount/internal/core/models"

// Snapshot is the minimal state needed to undo one Apply: the prior team
// states for the two teams a single matchup touches.
type Snapshot struct {
	HomeTeam, AwayTeam int
	HomeState          models.TeamState
	AwayState          models.TeamState
}

// Apply mutates states in place to reflect team a having just played home
// and team b having just played away in matchup m.
func Apply(states []models.TeamState, m models.Matchup) {
	a, b := m.Home, m.Away

	home := states[a]
	if home.Streak.LastLocation == models.Home {
		home.Streak.Length++
	} else {
		home.Streak.Length = 1
	}
	home.Streak.LastLocation = models.Home
	home.HomeRemaining--
	states[a] = home

	away := states[b]
	if away.Streak.LastLocation == models.Away {
		away.Streak.Length++
	} else {
		away.Streak.Length = 1
	}
	away.Streak.LastLocation = models.Away
	away.AwayRemaining--
	states[b] = away
}

// SaveAndApply captures the prior state of both teams in m, then applies m.
// Restore(states, snapshot) undoes exactly this call.
func SaveAndApply(states []models.TeamState, m models.Matchup) Snapshot {
	snap := Snapshot{
		HomeTeam:  m.Home,
		AwayTeam:  m.Away,
		HomeState: states[m.Home],
		AwayState: states[m.Away],
	}
	Apply(states, m)
	return snap
}

// Restore writes a snapshot's captured entries back into states, undoing
// the Apply that produced it. Apply followed by Restore is a no-op on
// states, pointwise.
func Restore(states []models.TeamState, snap Snapshot) {
	states[snap.HomeTeam] = snap.HomeState
	states[snap.AwayTeam] = snap.AwayState
}

// Copy returns a deep copy of states, used by the copy-apply strategies
// (the explicit-stack enumerator, the frontier builder) instead of
// snapshot/restore.
func Copy(states []models.TeamState) []models.TeamState {
	out := make([]models.TeamState, len(states))
	copy(out, states)
	return out
}
