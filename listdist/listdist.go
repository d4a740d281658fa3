// Package listdist reconciles two columns of location IDs.
//
// Both columns are sorted ascending and paired by rank; the answer is the
// sum of the absolute differences of each pair.
//
// Complexity: O(n log n) time, O(n) memory.
package listdist

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvpuzzle/puzzleio"
)

var (
	// ErrMalformedLine indicates a line without exactly two integer fields.
	ErrMalformedLine = errors.New("listdist: line must hold two integers")
	// ErrLengthMismatch indicates the two columns differ in length.
	ErrLengthMismatch = errors.New("listdist: columns differ in length")
)

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Parse reads two whitespace-separated columns, one pair per line.
// Blank lines are ignored.
func Parse(text string) (left, right []int, err error) {
	for i, line := range puzzleio.Lines(text) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, i+1, line)
		}
		l, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, i+1, err)
		}
		r, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, i+1, err)
		}
		left = append(left, l)
		right = append(right, r)
	}

	return left, right, nil
}

// TotalDistance pairs the smallest left with the smallest right, the
// second smallest with the second smallest and so on, and sums the
// distances. The inputs are not modified.
func TotalDistance(left, right []int) (int, error) {
	if len(left) != len(right) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(left), len(right))
	}
	l := slices.Clone(left)
	r := slices.Clone(right)
	slices.Sort(l)
	slices.Sort(r)

	total := 0
	for i := range l {
		total += Abs(l[i] - r[i])
	}

	return total, nil
}
