// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

const (
	NIBBLE_BITS  = 4    // Native word size of the CPU.
	NIBBLE_MASK  = 0x0f // Mask of a native word.
	RESULT_BITS  = 5    // Native word plus carry.
	RESULT_MASK  = 0x1f // Mask of a result word.
	RESULT_CARRY = 0x10 // Carry bit of a result word.
)

// Nibble is a 4-bit native CPU word.
// Values wider than 4 bits are truncated by MakeNibble; nothing else
// in this package produces a Nibble with the upper bits set.
type Nibble uint8

// MakeNibble truncates a value to the low 4 bits.
func MakeNibble(value uint) Nibble {
	return Nibble(value & NIBBLE_MASK)
}

// Bit returns bit n (0 or 1) of the nibble.
func (n Nibble) Bit(bit int) int {
	return readBit(uint(n), bit)
}

// Binary returns the nibble as four binary digits, MSB first.
func (n Nibble) Binary() string {
	return binary(uint(n), NIBBLE_BITS)
}

func (n Nibble) String() string {
	return fmt.Sprintf("0x%x", uint8(n))
}

// Result is the 5-bit ALU output: bit 4 is the carry, bits 3..0 the value.
type Result uint8

// MakeResult truncates a value to the low 5 bits.
func MakeResult(value uint) Result {
	return Result(value & RESULT_MASK)
}

// Carry returns true if the carry bit is set.
func (r Result) Carry() bool {
	return (r & RESULT_CARRY) != 0
}

// Value returns the low 4 bits of the result.
func (r Result) Value() Nibble {
	return MakeNibble(uint(r))
}

// Bit returns bit n (0 or 1) of the result, including the carry at bit 4.
func (r Result) Bit(bit int) int {
	return readBit(uint(r), bit)
}

// Binary returns the 4-bit value as binary digits, without the carry.
func (r Result) Binary() string {
	return binary(uint(r), NIBBLE_BITS)
}

func (r Result) String() string {
	return fmt.Sprintf("0x%x (carry %d)", uint8(r.Value()), r.Bit(NIBBLE_BITS))
}

// readBit shifts, then masks.
func readBit(value uint, bit int) int {
	if bit < 0 {
		return 0
	}
	return int((value >> bit) & 1)
}

func binary(value uint, width int) (text string) {
	for bit := width - 1; bit >= 0; bit-- {
		text += fmt.Sprintf("%d", readBit(value, bit))
	}
	return
}
