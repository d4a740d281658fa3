// Package lvpuzzle is a small collection of puzzle solvers, one package per
// puzzle, each turning a text input into a single number.
//
// Under the hood, everything is organized as flat subpackages:
//
//	puzzleio/  — reads puzzle inputs from a data directory
//	listdist/  — day 1: distance between two sorted ID columns
//	reports/   — day 2: reactor reports judged by pluggable rules
//	memscan/   — day 3: mul(X,Y) instructions recovered from corrupted memory
//	wordgrid/  — day 4: eight-direction word search over a character grid
//	pageorder/ — day 5: page-ordering rules, verification and reordering
//	cmd/aoc/   — command-line runner tying a day to its input file
//
// Quick ASCII example (wordgrid):
//
//	X M A S
//	M M . .
//	A . A .
//	S . . S
//
// holds XMAS three times: across, down and along the diagonal.
//
// Every solver is pure and single-threaded; the only I/O is the one file
// read performed by puzzleio on behalf of cmd/aoc.
package lvpuzzle
