package cpu

import (
	"fmt"
)

// Registers is the visible state of the CPU.
//
// The zero value is the power-on reset state. The clock driver owns the
// single instance; nothing here is safe for concurrent use.
type Registers struct {
	Bus      Nibble // Value currently on the bus.
	Opcode   Nibble // Latched operation selector.
	OperandA Nibble // Latched ALU input A.
	OperandB Nibble // Latched ALU input B.
	Result   Result // ALU output, with carry in bit 4.
	Cycle    Cycle  // Current clock phase.
}

// Reset returns the registers to the power-on state.
func (regs *Registers) Reset() {
	*regs = Registers{}
}

// Normalize masks every register to its native width.
func (regs *Registers) Normalize() {
	regs.Bus = MakeNibble(uint(regs.Bus))
	regs.Opcode = MakeNibble(uint(regs.Opcode))
	regs.OperandA = MakeNibble(uint(regs.OperandA))
	regs.OperandB = MakeNibble(uint(regs.OperandB))
	regs.Result = MakeResult(uint(regs.Result))
	regs.Cycle = MakeCycle(uint(regs.Cycle))
}

// String returns the register state as a string.
func (regs *Registers) String() (text string) {
	names := []string{"cycle", "bus", "opcode", "a", "b", "result"}
	for _, name := range names {
		var strval string
		switch name {
		case "cycle":
			strval = fmt.Sprintf("%d (%v)", uint8(regs.Cycle), regs.Cycle)
		case "bus":
			strval = regs.Bus.Binary()
		case "opcode":
			strval = fmt.Sprintf("%v %v", regs.Opcode.Binary(), AluOp(regs.Opcode))
		case "a":
			strval = regs.OperandA.Binary()
		case "b":
			strval = regs.OperandB.Binary()
		case "result":
			strval = fmt.Sprintf("%d_%v", regs.Result.Bit(NIBBLE_BITS), regs.Result.Binary())
		}
		text += fmt.Sprintf("% 6s: %v\n", name, strval)
	}

	return
}
