// Package cpu implements the design project CPU and its program assembler.
//
// The CPU has a 4-bit bus, opcode and operand registers, a 5-bit result
// register (4 bits plus carry), and a modulo-8 clock phase counter. Each
// clock phase either latches a register from the bus, runs the ALU, or
// does nothing. Registers that latch from the bus cause the next program
// value to be loaded onto the bus, as an operator flipping switches would.
//
// The assembler turns a small text listing (mnemonics, numbers, equates,
// macros and compile-time expressions) into the stream of 4-bit values
// the CPU reads from the bus.
package cpu
