// Package wordgrid defines core types, directions, and sentinel errors
// for word-search grids.
package wordgrid

import (
	"errors"
)

// ErrEmptyWord indicates the target word has no characters.
var ErrEmptyWord = errors.New("wordgrid: target word must not be empty")

// Position addresses a cell by column (X) and row (Y).
// Positions are not bounded; validity is decided by lookup.
type Position struct {
	X, Y int
}

// Step returns the position reached by moving n times along d.
func (p Position) Step(d Direction, n int) Position {
	return Position{X: p.X + d.DX*n, Y: p.Y + d.DY*n}
}

// Direction is a unit step over {-1,0,1}×{-1,0,1}, excluding (0,0).
// DY grows downward, matching row order.
type Direction struct {
	DX, DY int
}

// Directions lists all eight neighbours: N, NE, E, SE, S, SW, W, NW.
var Directions = [8]Direction{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Grid is a read-only word-search puzzle. It is immutable once built.
// rows[y][x] holds the character at column x of row y.
type Grid struct {
	rows []string
}
