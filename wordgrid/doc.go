// Package wordgrid treats a word-search puzzle as a grid of ASCII characters
// and counts how often a target word can be read from it.
//
// What:
//
//   - Grid wraps the puzzle rows verbatim; rows may be ragged.
//   - CharAt answers point lookups; a position outside the grid is reported
//     as absent rather than as an error.
//   - CountMatchesFrom counts the directions (0..8) in which the word reads
//     from one origin.
//   - CountAllMatches sums CountMatchesFrom over every origin holding the
//     word's first letter.
//
// Directions:
//
//   - All eight neighbours: N, NE, E, SE, S, SW, W, NW. A word may read
//     forwards, backwards, vertically or diagonally.
//
// Absent cells:
//
//   - While walking a direction, cells outside the grid are skipped and the
//     characters that were found are concatenated. The collected string must
//     equal the word exactly, so a walk that runs off the grid is shorter than
//     the word and never matches.
//
// Complexity:
//
//   - CharAt:           O(1).
//   - CountMatchesFrom: O(8·L), L = len(word).
//   - CountAllMatches:  O(W·H·8·L), Memory: O(L).
//
// Errors:
//
//   - ErrEmptyWord: the target word has no characters.
package wordgrid
