package pageorder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpuzzle/puzzleio"
)

// Parse splits input on its first blank line into rules and updates.
func Parse(text string) ([]Rule, [][]int, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	ruleText, updateText, ok := strings.Cut(text, "\n\n")
	if !ok {
		return nil, nil, ErrMissingSection
	}
	rules, err := ParseRules(ruleText)
	if err != nil {
		return nil, nil, err
	}
	updates, err := ParseUpdates(updateText)
	if err != nil {
		return nil, nil, err
	}

	return rules, updates, nil
}

// ParseRules reads one "X|Y" rule per non-blank line.
func ParseRules(text string) ([]Rule, error) {
	var rules []Rule
	for i, line := range puzzleio.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		left, right, ok := strings.Cut(line, "|")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedRule, i+1, line)
		}
		before, err1 := strconv.Atoi(strings.TrimSpace(left))
		after, err2 := strconv.Atoi(strings.TrimSpace(right))
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedRule, i+1, line)
		}
		rules = append(rules, Rule{Before: before, After: after})
	}

	return rules, nil
}

// ParseUpdates reads one comma-separated update per non-blank line.
func ParseUpdates(text string) ([][]int, error) {
	var updates [][]int
	for i, line := range puzzleio.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		pages := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedUpdate, i+1, line)
			}
			pages = append(pages, n)
		}
		updates = append(updates, pages)
	}

	return updates, nil
}
