package search

import (
	"testing"

	"github.com/adampetrovic/ttpcount/internal/core/oracle"
)

func BenchmarkCountRecursive_SixTeams(b *testing.B) {
	root, err := NewRoot(6)
	if err != nil {
		b.Fatalf("NewRoot(6) error: %v", err)
	}
	root = ApplyFirstRoundSymmetry(root)
	e := NewEnumerator(oracle.NewOptimizedOracle())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.CountRecursive(root, 1<<30)
	}
}

func BenchmarkCountStack_SixTeams(b *testing.B) {
	root, err := NewRoot(6)
	if err != nil {
		b.Fatalf("NewRoot(6) error: %v", err)
	}
	root = ApplyFirstRoundSymmetry(root)
	e := NewEnumerator(oracle.NewOptimizedOracle())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.CountStack(root, 1<<30)
	}
}

func BenchmarkBuildFrontier_SixTeams(b *testing.B) {
	root, err := NewRoot(6)
	if err != nil {
		b.Fatalf("NewRoot(6) error: %v", err)
	}
	root = ApplyFirstRoundSymmetry(root)
	o := oracle.NewOptimizedOracle()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildFrontier(root, 3, o)
	}
}
