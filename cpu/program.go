package cpu

import (
	"iter"
	"slices"
)

// Program is the source of bus values: the sequence of switch settings
// an operator would enter, one after each read of the bus.
type Program struct {
	values []Nibble
	cursor int
}

// NewProgram creates a program from an ordered list of values.
// Each value is truncated to 4 bits. An empty list is an error.
func NewProgram(values ...Nibble) (prog *Program, err error) {
	if len(values) == 0 {
		err = ErrProgramEmpty
		return
	}

	prog = &Program{
		values: make([]Nibble, len(values)),
	}
	for n, value := range values {
		prog.values[n] = MakeNibble(uint(value))
	}

	return
}

// MustProgram is NewProgram that panics on error.
func MustProgram(values ...Nibble) *Program {
	prog, err := NewProgram(values...)
	if err != nil {
		panic(err)
	}
	return prog
}

// First returns the value at index 0, without moving the cursor.
func (prog *Program) First() Nibble {
	return prog.values[0]
}

// Next advances the cursor and returns the value it now points to.
// When the cursor runs off the end it restarts at index 0 and wrapped is true.
func (prog *Program) Next() (value Nibble, wrapped bool) {
	if prog.cursor < len(prog.values)-1 {
		prog.cursor++
	} else {
		prog.cursor = 0
		wrapped = true
	}

	value = prog.values[prog.cursor]
	return
}

// Rewind moves the cursor back to index 0.
func (prog *Program) Rewind() {
	prog.cursor = 0
}

// Cursor returns the index of the value most recently placed on the bus.
func (prog *Program) Cursor() int {
	return prog.cursor
}

// Len returns the number of values in the program.
func (prog *Program) Len() int {
	return len(prog.values)
}

// Values returns an iterator over the program values and their indexes.
func (prog *Program) Values() iter.Seq2[int, Nibble] {
	return slices.All(prog.values)
}
