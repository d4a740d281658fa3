// Package memscan recovers multiply instructions from corrupted memory.
//
// Only literal instructions of the form mul(X,Y), where X and Y are 1-3
// digit numbers, are valid. Everything else in memory is noise.
package memscan

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidInstruction indicates text that is not a single mul(X,Y).
var ErrInvalidInstruction = errors.New("memscan: not a mul(X,Y) instruction")

var (
	instrRx   = regexp.MustCompile(`mul\([0-9]{1,3},[0-9]{1,3}\)`)
	operandRx = regexp.MustCompile(`^mul\(([0-9]{1,3}),([0-9]{1,3})\)$`)
)

// Program is a memory dump and the instructions found in it.
type Program struct {
	memory       string
	instructions []string
}

// NewProgram scans memory for valid instructions, left to right.
func NewProgram(memory string) *Program {
	return &Program{
		memory:       memory,
		instructions: instrRx.FindAllString(memory, -1),
	}
}

// Memory returns the raw memory text.
func (p *Program) Memory() string {
	return p.memory
}

// Instructions returns the valid instructions in memory order.
func (p *Program) Instructions() []string {
	out := make([]string, len(p.instructions))
	copy(out, p.instructions)

	return out
}

// Execute returns the product of the operands of instr.
func Execute(instr string) (int, error) {
	m := operandRx.FindStringSubmatch(instr)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInstruction, instr)
	}
	// The pattern guarantees 1-3 digits, so Atoi cannot fail.
	x, _ := strconv.Atoi(m[1])
	y, _ := strconv.Atoi(m[2])

	return x * y, nil
}

// ExecuteAll runs every instruction and returns the results in order.
func (p *Program) ExecuteAll() []int {
	out := make([]int, 0, len(p.instructions))
	for _, instr := range p.instructions {
		v, _ := Execute(instr) // matched by instrRx, always valid
		out = append(out, v)
	}

	return out
}

// Sum returns the total of all instruction results.
func (p *Program) Sum() int {
	total := 0
	for _, v := range p.ExecuteAll() {
		total += v
	}

	return total
}
