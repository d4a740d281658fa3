package pageorder

import "errors"

// Sentinel errors for pageorder operations.
var (
	// ErrMalformedRule indicates a rule line that is not "X|Y".
	ErrMalformedRule = errors.New("pageorder: rule must be two pages separated by '|'")
	// ErrMalformedUpdate indicates an update line that is not comma-separated pages.
	ErrMalformedUpdate = errors.New("pageorder: update must be comma-separated pages")
	// ErrMissingSection indicates input without a blank line between rules and updates.
	ErrMissingSection = errors.New("pageorder: input must hold rules, a blank line, then updates")
	// ErrNoMiddlePage indicates an update with an even number of pages.
	ErrNoMiddlePage = errors.New("pageorder: update has no middle page")
	// ErrCycleDetected indicates the rules among an update's pages form a cycle.
	ErrCycleDetected = errors.New("pageorder: cycle detected")
	// ErrDuplicatePage indicates an update that lists a page more than once.
	ErrDuplicatePage = errors.New("pageorder: page listed twice in update")
)

// Rule requires Before to be printed ahead of After.
type Rule struct {
	Before, After int
}

// Visitation states used by the topological sort.
const (
	white = iota // not visited
	gray         // on the current DFS path
	black        // fully explored
)
