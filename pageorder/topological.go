package pageorder

import (
	"fmt"
)

// topoSorter encapsulates state for ordering one update.
type topoSorter struct {
	after map[int][]int // page -> pages that must follow it, in update order
	state map[int]int   // visitation state: white, gray, black
	order []int         // recorded post-order sequence
}

// Reorder returns the pages of update arranged so that every rule among
// them holds. Only rules whose two pages are both in the update are used.
// Roots and successors are visited in update order, so the result is
// deterministic; an update that already verifies is returned unchanged
// when its rules fully order it.
// Returns ErrDuplicatePage if a page repeats, ErrCycleDetected if the
// applicable rules contradict each other.
// Complexity: O(P + E) time, O(P) memory.
func (v *Verifier) Reorder(update []int) ([]int, error) {
	// 1. Index positions, rejecting duplicates
	pos := make(map[int]int, len(update))
	for i, p := range update {
		if _, dup := pos[p]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePage, p)
		}
		pos[p] = i
	}
	// 2. Collect edges among the update's pages, ordered by position of the target
	t := &topoSorter{
		after: make(map[int][]int, len(update)),
		state: make(map[int]int, len(update)),
		order: make([]int, 0, len(update)),
	}
	for _, p := range update {
		for _, r := range v.byPage[p] {
			if r.Before != p || r.After == p {
				continue
			}
			if _, ok := pos[r.After]; !ok {
				continue
			}
			t.after[p] = append(t.after[p], r.After)
		}
	}
	for p, next := range t.after {
		t.after[p] = sortByPosition(dedupe(next), pos)
	}
	// 3. DFS from every unvisited page, right to left so that the reversed
	// post-order keeps unconstrained pages in their original order
	for i := len(update) - 1; i >= 0; i-- {
		if t.state[update[i]] == white {
			if err := t.visit(update[i]); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order to produce the final order
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// visit performs a DFS from page, marking states and detecting cycles.
func (t *topoSorter) visit(page int) error {
	// Gray means page is already on the current path: a back-edge
	if t.state[page] == gray {
		return fmt.Errorf("%w: at page %d", ErrCycleDetected, page)
	}
	if t.state[page] == black {
		return nil
	}
	t.state[page] = gray

	// Successors are explored right to left, mirroring the root loop
	next := t.after[page]
	for i := len(next) - 1; i >= 0; i-- {
		if err := t.visit(next[i]); err != nil {
			return err
		}
	}

	t.state[page] = black
	t.order = append(t.order, page)

	return nil
}

// dedupe drops repeated pages, keeping first occurrences.
func dedupe(pages []int) []int {
	seen := make(map[int]bool, len(pages))
	out := pages[:0]
	for _, p := range pages {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}

	return out
}

// sortByPosition orders pages by their index in the update (insertion sort,
// successor lists are short).
func sortByPosition(pages []int, pos map[int]int) []int {
	for i := 1; i < len(pages); i++ {
		for j := i; j > 0 && pos[pages[j]] < pos[pages[j-1]]; j-- {
			pages[j], pages[j-1] = pages[j-1], pages[j]
		}
	}

	return pages
}
