// Package oracle implements the Constraint Oracle: stateless predicates
// over a partial schedule and a candidate matchup that decide whether
// appending the candidate would violate a structural constraint.
package oracle

import "github.com/adampetrovic/ttpcount/internal/core/models"

// Rule is one rejection predicate the oracle evaluates. Reject returns
// true when appending candidate to w would violate the rule.
type Rule interface {
	Reject(w models.WorkItem, candidate models.Matchup) bool
	Name() string
}

// BaseRule gives rules a name without repeating the boilerplate.
type BaseRule struct {
	name string
}

// NewBaseRule creates a base rule carrying just a name.
func NewBaseRule(name string) BaseRule {
	return BaseRule{name: name}
}

// Name returns the rule's name.
func (b BaseRule) Name() string {
	return b.name
}

// Oracle evaluates a candidate matchup against an ordered set of rules.
// It is pure: it reads w but never mutates it.
type Oracle struct {
	rules []Rule
}

// Reject returns true iff any configured rule rejects the candidate.
func (o *Oracle) Reject(w models.WorkItem, candidate models.Matchup) bool {
	for _, rule := range o.rules {
		if rule.Reject(w, candidate) {
			return true
		}
	}
	return false
}

// Rules returns the configured rules, in evaluation order.
func (o *Oracle) Rules() []Rule {
	return o.rules
}

// NewBasicOracle builds the oracle with the four structural rules C1-C4:
// round repetition, canonical intra-round ordering, no-repeat across
// consecutive rounds, and the max-streak-of-three cap.
func NewBasicOracle() *Oracle {
	return &Oracle{
		rules: []Rule{
			RoundRepetitionRule{},
			CanonicalOrderRule{},
			NoRepeatAcrossRoundsRule{},
			MaxStreakRule{},
		},
	}
}

// NewOptimizedOracle builds the oracle with the basic rules plus the two
// lookahead-pruning rules C5-C6, which reject branches that are feasible
// right now but provably dead a few plies down.
func NewOptimizedOracle() *Oracle {
	basic := NewBasicOracle()
	basic.rules = append(basic.rules, FutureStreakInfeasibleRule{}, TwoRoundTailRule{})
	return basic
}
