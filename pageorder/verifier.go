package pageorder

import (
	"fmt"
	"slices"
)

// Verifier holds ordering rules indexed by page.
// It is immutable once built.
type Verifier struct {
	rules  []Rule
	byPage map[int][]Rule
}

// NewVerifier indexes each rule under both of its pages.
func NewVerifier(rules []Rule) *Verifier {
	v := &Verifier{
		rules:  slices.Clone(rules),
		byPage: make(map[int][]Rule, len(rules)),
	}
	for _, r := range rules {
		v.byPage[r.Before] = append(v.byPage[r.Before], r)
		if r.After != r.Before {
			v.byPage[r.After] = append(v.byPage[r.After], r)
		}
	}

	return v
}

// Rules returns the rules in the order they were given.
func (v *Verifier) Rules() []Rule {
	return slices.Clone(v.rules)
}

// RulesFor returns the rules that mention page.
func (v *Verifier) RulesFor(page int) []Rule {
	return slices.Clone(v.byPage[page])
}

// Verify reports whether update respects every rule whose two pages both
// appear in it. Positions are taken from the first occurrence of a page.
func (v *Verifier) Verify(update []int) bool {
	for _, page := range update {
		for _, r := range v.byPage[page] {
			bi := slices.Index(update, r.Before)
			ai := slices.Index(update, r.After)
			if bi < 0 || ai < 0 {
				continue
			}
			if bi > ai {
				return false
			}
		}
	}

	return true
}

// MiddlePage returns the middle element of an odd-length update.
// It returns false for empty or even-length updates.
func MiddlePage(update []int) (int, bool) {
	if len(update)%2 == 0 {
		return 0, false
	}

	return update[len(update)/2], true
}

// SumValidMiddles adds up the middle pages of the updates v accepts.
// A valid update without a middle page yields ErrNoMiddlePage.
func SumValidMiddles(v *Verifier, updates [][]int) (int, error) {
	sum := 0
	for i, u := range updates {
		if !v.Verify(u) {
			continue
		}
		mid, ok := MiddlePage(u)
		if !ok {
			return 0, fmt.Errorf("%w: update %d has %d pages", ErrNoMiddlePage, i+1, len(u))
		}
		sum += mid
	}

	return sum, nil
}

// SumReorderedMiddles reorders every update v rejects and adds up the
// middle pages of the results.
func SumReorderedMiddles(v *Verifier, updates [][]int) (int, error) {
	sum := 0
	for i, u := range updates {
		if v.Verify(u) {
			continue
		}
		fixed, err := v.Reorder(u)
		if err != nil {
			return 0, fmt.Errorf("update %d: %w", i+1, err)
		}
		mid, ok := MiddlePage(fixed)
		if !ok {
			return 0, fmt.Errorf("%w: update %d has %d pages", ErrNoMiddlePage, i+1, len(u))
		}
		sum += mid
	}

	return sum, nil
}
