// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Cycle is the modulo-8 clock phase counter.
type Cycle uint8

const CYCLE_COUNT = 8 // Number of clock phases per instruction.

//go:generate go tool stringer -linecomment -type=Cycle
const (
	CYCLE_SETTLED      = Cycle(0) // settled
	CYCLE_FETCH_OPCODE = Cycle(1) // opcode
	CYCLE_IDLE_2       = Cycle(2) // idle
	CYCLE_FETCH_A      = Cycle(3) // operand_a
	CYCLE_FETCH_B      = Cycle(4) // operand_b
	CYCLE_IDLE_5       = Cycle(5) // idle
	CYCLE_IDLE_6       = Cycle(6) // idle
	CYCLE_EXECUTE      = Cycle(7) // execute
)

// MakeCycle reduces a value modulo CYCLE_COUNT.
func MakeCycle(value uint) Cycle {
	return Cycle(value % CYCLE_COUNT)
}

// Next returns the following clock phase, wrapping after CYCLE_EXECUTE.
func (c Cycle) Next() Cycle {
	return MakeCycle(uint(c) + 1)
}

// Bit returns bit n (0 or 1) of the counter.
func (c Cycle) Bit(bit int) int {
	return readBit(uint(c), bit)
}

// Binary returns the counter as four binary digits, MSB first.
func (c Cycle) Binary() string {
	return binary(uint(c), NIBBLE_BITS)
}

// Latches returns true if the phase latches a register from the bus,
// and therefore refills the bus from the program.
func (c Cycle) Latches() bool {
	switch c {
	case CYCLE_FETCH_OPCODE, CYCLE_FETCH_A, CYCLE_FETCH_B:
		return true
	}
	return false
}
