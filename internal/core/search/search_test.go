package search

import (
	"testing"

	"github.com/adampetrovic/ttpcount/internal/core/models"
	"github.com/adampetrovic/ttpcount/internal/core/oracle"
)

func TestNewRoot(t *testing.T) {
	root, err := NewRoot(4)
	if err != nil {
		t.Fatalf("NewRoot(4) error: %v", err)
	}
	if len(root.Remaining) != 12 {
		t.Errorf("len(Remaining) = %d, want 12", len(root.Remaining))
	}
	if len(root.Schedule) != 0 {
		t.Errorf("len(Schedule) = %d, want 0", len(root.Schedule))
	}
	if len(root.States) != 4 {
		t.Errorf("len(States) = %d, want 4", len(root.States))
	}

	if _, err := NewRoot(3); err == nil {
		t.Error("NewRoot(3) expected error for odd team count")
	}
}

func TestApplyFirstRoundSymmetry(t *testing.T) {
	root, err := NewRoot(4)
	if err != nil {
		t.Fatalf("NewRoot(4) error: %v", err)
	}
	fixed := ApplyFirstRoundSymmetry(root)

	want := []models.Matchup{{Home: 0, Away: 1}, {Home: 2, Away: 3}}
	if len(fixed.Schedule) != len(want) {
		t.Fatalf("len(Schedule) = %d, want %d", len(fixed.Schedule), len(want))
	}
	for i := range want {
		if fixed.Schedule[i] != want[i] {
			t.Errorf("Schedule[%d] = %v, want %v", i, fixed.Schedule[i], want[i])
		}
	}
	if len(fixed.Remaining) != len(root.Remaining)-len(want) {
		t.Errorf("len(Remaining) = %d, want %d", len(fixed.Remaining), len(root.Remaining)-len(want))
	}
	for _, m := range want {
		for _, r := range fixed.Remaining {
			if r == m {
				t.Errorf("canonical matchup %v should not remain in Remaining", m)
			}
		}
	}
	if fixed.States[0].HomeRemaining != root.States[0].HomeRemaining-1 {
		t.Error("ApplyFirstRoundSymmetry did not update streak state for team 0")
	}
	if len(root.Remaining) != 12 {
		t.Error("ApplyFirstRoundSymmetry mutated the original root's Remaining slice")
	}
}

func TestCountRecursive_AndCountStack_Agree(t *testing.T) {
	root, err := NewRoot(4)
	if err != nil {
		t.Fatalf("NewRoot(4) error: %v", err)
	}
	root = ApplyFirstRoundSymmetry(root)

	basic := NewEnumerator(oracle.NewBasicOracle())
	optimized := NewEnumerator(oracle.NewOptimizedOracle())

	const cap = 1000
	rCount := basic.CountRecursive(root, cap)
	sCount := basic.CountStack(root, cap)
	if rCount != sCount {
		t.Errorf("CountRecursive = %d, CountStack = %d; strategies disagree", rCount, sCount)
	}

	optCount := optimized.CountRecursive(root, cap)
	if optCount != rCount {
		t.Errorf("optimized oracle count = %d, basic oracle count = %d; pruning changed the feasible set", optCount, rCount)
	}
}

func TestCountRecursive_RespectsMax(t *testing.T) {
	root, err := NewRoot(6)
	if err != nil {
		t.Fatalf("NewRoot(6) error: %v", err)
	}
	root = ApplyFirstRoundSymmetry(root)

	e := NewEnumerator(oracle.NewBasicOracle())
	got := e.CountRecursive(root, 3)
	if got > 3 {
		t.Errorf("CountRecursive with max=3 returned %d, want <= 3", got)
	}
}

func TestBuildFrontier_LeavesPlusTaskCountsAreConsistent(t *testing.T) {
	root, err := NewRoot(4)
	if err != nil {
		t.Fatalf("NewRoot(4) error: %v", err)
	}
	root = ApplyFirstRoundSymmetry(root)
	o := oracle.NewBasicOracle()

	full := NewEnumerator(o).CountRecursive(root, 1000)

	frontier := BuildFrontier(root, 2, o)
	var fromFrontier int64
	e := NewEnumerator(o)
	for _, task := range frontier.Tasks {
		fromFrontier += e.CountRecursive(task, 1000)
	}
	total := frontier.LeafCount + fromFrontier

	if total != full {
		t.Errorf("frontier leaves(%d) + task counts(%d) = %d, want %d (full recursive count)",
			frontier.LeafCount, fromFrontier, total, full)
	}
}

func TestBuildFrontier_ZeroPlyIsJustRoot(t *testing.T) {
	root, err := NewRoot(4)
	if err != nil {
		t.Fatalf("NewRoot(4) error: %v", err)
	}
	root = ApplyFirstRoundSymmetry(root)
	frontier := BuildFrontier(root, 0, oracle.NewBasicOracle())

	if len(frontier.Tasks) != 1 {
		t.Fatalf("len(Tasks) = %d, want 1", len(frontier.Tasks))
	}
	if frontier.LeafCount != 0 {
		t.Errorf("LeafCount = %d, want 0", frontier.LeafCount)
	}
}
