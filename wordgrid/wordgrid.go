package wordgrid

import (
	"strings"
)

// New builds a Grid from rows, stored verbatim.
// Rows are not checked for equal length; out-of-range reads simply
// report absence.
func New(rows []string) *Grid {
	stored := make([]string, len(rows))
	copy(stored, rows)

	return &Grid{rows: stored}
}

// Parse splits text into rows on '\n' and builds a Grid.
// A single trailing newline and '\r' line endings are dropped.
func Parse(text string) *Grid {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return New(lines)
}

// Rows returns a copy of the grid rows.
func (g *Grid) Rows() []string {
	out := make([]string, len(g.rows))
	copy(out, g.rows)

	return out
}

// Height reports the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	return strings.Join(g.rows, "\n")
}

// CharAt returns the character at p and true, or (0, false) when p lies
// outside the grid: a negative coordinate, a row past the last one, or a
// column past the end of its row.
// Complexity: O(1).
func (g *Grid) CharAt(p Position) (byte, bool) {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g.rows) {
		return 0, false
	}
	row := g.rows[p.Y]
	if p.X >= len(row) {
		return 0, false
	}

	return row[p.X], true
}

// CountMatchesFrom counts the directions in which word reads starting at
// origin. For each direction it walks len(word) steps (step 0 is origin),
// concatenates the characters that are present and compares the result
// with word. Absent cells are skipped, never replaced.
// The result is always within [0, 8].
// Returns ErrEmptyWord if word is empty.
// Complexity: O(8·L).
func (g *Grid) CountMatchesFrom(origin Position, word string) (int, error) {
	if word == "" {
		return 0, ErrEmptyWord
	}

	return g.countFrom(origin, word, make([]byte, 0, len(word))), nil
}

// countFrom is CountMatchesFrom without the precondition check.
// buf is reused between directions and origins.
func (g *Grid) countFrom(origin Position, word string, buf []byte) int {
	matches := 0
	for _, d := range Directions {
		buf = buf[:0]
		for i := 0; i < len(word); i++ {
			if c, ok := g.CharAt(origin.Step(d, i)); ok {
				buf = append(buf, c)
			}
		}
		if string(buf) == word {
			matches++
		}
	}

	return matches
}

// CountAllMatches scans every cell and, wherever the cell holds the first
// letter of word, adds CountMatchesFrom at that cell. A single origin may
// contribute up to 8. The scan holds no state, so repeated calls return
// the same total.
// Returns ErrEmptyWord if word is empty.
// Complexity: O(W·H·8·L) time, O(L) memory.
func (g *Grid) CountAllMatches(word string) (int, error) {
	if word == "" {
		return 0, ErrEmptyWord
	}

	first := word[0]
	buf := make([]byte, 0, len(word))
	total := 0
	for y, row := range g.rows {
		for x := 0; x < len(row); x++ {
			if row[x] != first {
				continue
			}
			total += g.countFrom(Position{X: x, Y: y}, word, buf)
		}
	}

	return total, nil
}
