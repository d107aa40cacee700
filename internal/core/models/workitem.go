package models

// WorkItem is the complete state at one node of the search tree: the
// matchups not yet scheduled, the partial schedule built so far (the flat
// concatenation of rounds), and the per-team streak state.
type WorkItem struct {
	N         int
	Remaining []Matchup
	Schedule  []Matchup
	States    []TeamState
}

// RoundSize is N/2, the number of matchups in one round.
func (w WorkItem) RoundSize() int {
	return w.N / 2
}

// IsLeaf reports whether this work item has no matchups left to place,
// i.e. represents one fully-built, feasible schedule.
func (w WorkItem) IsLeaf() bool {
	return len(w.Remaining) == 0
}

// CurrentRoundSuffix returns the matchups already appended to the round
// that is currently being filled (the tail of Schedule whose length is
// len(Schedule) mod RoundSize()).
func (w WorkItem) CurrentRoundSuffix() []Matchup {
	roundSize := w.RoundSize()
	inRound := len(w.Schedule) % roundSize
	if inRound == 0 {
		return nil
	}
	return w.Schedule[len(w.Schedule)-inRound:]
}

// PreviousRound returns the round immediately preceding the one currently
// being filled, or nil if fewer than one round has completed.
func (w WorkItem) PreviousRound() []Matchup {
	roundSize := w.RoundSize()
	inRound := len(w.Schedule) % roundSize
	completed := len(w.Schedule) - inRound
	if completed < roundSize {
		return nil
	}
	return w.Schedule[completed-roundSize : completed]
}

// Clone returns a deep copy of the work item: a fresh Remaining slice,
// Schedule slice, and States slice, so the copy can be mutated without
// aliasing the original. Used by the copy-apply strategies (explicit-stack
// enumerator, frontier builder).
func (w WorkItem) Clone() WorkItem {
	clone := WorkItem{
		N:         w.N,
		Remaining: make([]Matchup, len(w.Remaining)),
		Schedule:  make([]Matchup, len(w.Schedule), len(w.Schedule)+1),
		States:    make([]TeamState, len(w.States)),
	}
	copy(clone.Remaining, w.Remaining)
	copy(clone.Schedule, w.Schedule)
	copy(clone.States, w.States)
	return clone
}
