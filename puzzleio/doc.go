// Package puzzleio reads puzzle input files.
//
// A Reader resolves file names against a data directory ("data" by
// default) and returns the whole file as text. Solvers receive that text
// and do their own splitting; Lines covers the common line-oriented case.
//
// Errors:
//
//   - ErrEmptyName: no file name was given.
//   - Any failure to open or read the file is wrapped, so
//     errors.Is(err, fs.ErrNotExist) works for missing inputs.
package puzzleio
