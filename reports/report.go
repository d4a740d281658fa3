package reports

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpuzzle/puzzleio"
)

// ErrMalformedReport indicates a report line holding a non-integer field.
var ErrMalformedReport = errors.New("reports: levels must be integers")

// Report is one line of readings plus the rules it is judged by.
type Report struct {
	Levels []int
	Rules  []Rule
}

// ParseReport builds a rule-less Report from a line such as "7 6 4 2 1".
func ParseReport(line string) (*Report, error) {
	fields := strings.Fields(line)
	levels := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedReport, f)
		}
		levels = append(levels, n)
	}

	return &Report{Levels: levels}, nil
}

// Parse reads one report per non-blank line.
func Parse(text string) ([]*Report, error) {
	var out []*Report
	for i, line := range puzzleio.Lines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseReport(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, r)
	}

	return out, nil
}

// AddRule appends rule to the report's rule list.
func (r *Report) AddRule(rule Rule) {
	r.Rules = append(r.Rules, rule)
}

// IsSafe reports whether every rule accepts the levels.
// A report with no rules is safe.
func (r *Report) IsSafe() bool {
	for _, rule := range r.Rules {
		if !rule.Evaluate(r.Levels) {
			return false
		}
	}

	return true
}

// String renders the levels separated by single spaces.
func (r *Report) String() string {
	parts := make([]string, len(r.Levels))
	for i, lvl := range r.Levels {
		parts[i] = strconv.Itoa(lvl)
	}

	return strings.Join(parts, " ")
}

// CountSafe attaches rules to every report and counts the safe ones.
func CountSafe(reports []*Report, rules ...Rule) int {
	safe := 0
	for _, r := range reports {
		for _, rule := range rules {
			r.AddRule(rule)
		}
		if r.IsSafe() {
			safe++
		}
	}

	return safe
}
