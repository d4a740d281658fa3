package reports

import (
	"slices"
)

// Rule is a single safety check over a report's levels.
type Rule interface {
	Evaluate(levels []int) bool
}

// RuleFunc adapts an ordinary function to the Rule interface.
type RuleFunc func(levels []int) bool

// Evaluate calls f(levels).
func (f RuleFunc) Evaluate(levels []int) bool {
	return f(levels)
}

// MonotonicRule accepts levels that are entirely ascending or entirely
// descending. Equal neighbours do not break monotonicity; SlopeRule
// rejects them.
type MonotonicRule struct{}

// Evaluate reports whether levels equal their own ascending or
// descending sort.
func (MonotonicRule) Evaluate(levels []int) bool {
	return slices.IsSorted(levels) || isSortedDesc(levels)
}

func isSortedDesc(levels []int) bool {
	for i := 1; i < len(levels); i++ {
		if levels[i] > levels[i-1] {
			return false
		}
	}

	return true
}

// Default slope bounds.
const (
	DefaultMinSlope = 1
	DefaultMaxSlope = 3
)

// SlopeRule accepts levels whose adjacent absolute differences all lie
// within [Min, Max].
type SlopeRule struct {
	Min, Max int
}

// DefaultSlopeRule returns a SlopeRule with bounds [1, 3].
func DefaultSlopeRule() SlopeRule {
	return SlopeRule{Min: DefaultMinSlope, Max: DefaultMaxSlope}
}

// Evaluate reports whether every adjacent pair rises or falls by at least
// Min and at most Max.
func (r SlopeRule) Evaluate(levels []int) bool {
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if d < 0 {
			d = -d
		}
		if d < r.Min || d > r.Max {
			return false
		}
	}

	return true
}

// DefaultRules returns the rule set used for reactor reports.
func DefaultRules() []Rule {
	return []Rule{MonotonicRule{}, DefaultSlopeRule()}
}
