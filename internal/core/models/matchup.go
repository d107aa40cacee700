package models

import "fmt"

// Matchup is an ordered pair of distinct teams: one plays home, the other away.
type Matchup struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Reverse returns the mirror matchup (away, home).
func (m Matchup) Reverse() Matchup {
	return Matchup{Home: m.Away, Away: m.Home}
}

// Involves reports whether team participates in this matchup, either home or away.
func (m Matchup) Involves(team int) bool {
	return m.Home == team || m.Away == team
}

func (m Matchup) String() string {
	return fmt.Sprintf("(%d,%d)", m.Home, m.Away)
}

// Universe returns every ordered pair of distinct teams in [0, n), i.e. the
// full double round-robin matchup set. n must be even and at least 2.
func Universe(n int) ([]Matchup, error) {
	if n < 2 {
		return nil, fmt.Errorf("team count must be at least 2, got %d", n)
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("team count must be even, got %d", n)
	}

	matchups := make([]Matchup, 0, n*(n-1))
	for home := 0; home < n; home++ {
		for away := 0; away < n; away++ {
			if home == away {
				continue
			}
			matchups = append(matchups, Matchup{Home: home, Away: away})
		}
	}
	return matchups, nil
}
