package cpu

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

// AluOp is the operation selector latched into the opcode register.
type AluOp Nibble

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_OR  = AluOp(0x4) // or
	ALU_OP_AND = AluOp(0x6) // and
	ALU_OP_XOR = AluOp(0x7) // xor
	ALU_OP_ADD = AluOp(0xa) // add
)

// aluOps lists every opcode the ALU recognizes.
var aluOps = []AluOp{ALU_OP_OR, ALU_OP_AND, ALU_OP_XOR, ALU_OP_ADD}

// Recognized returns true if the ALU implements the opcode.
// All other opcode values leave the result register untouched.
func (op AluOp) Recognized() bool {
	switch op {
	case ALU_OP_OR, ALU_OP_AND, ALU_OP_XOR, ALU_OP_ADD:
		return true
	}
	return false
}

// Nibble returns the opcode as it appears on the bus.
func (op AluOp) Nibble() Nibble {
	return MakeNibble(uint(op))
}

// LookupAluOp finds an opcode by mnemonic, ignoring case.
func LookupAluOp(name string) (op AluOp, ok bool) {
	name = strings.ToLower(name)
	for _, op = range aluOps {
		if op.String() == name {
			ok = true
			return
		}
	}

	op = 0
	return
}

var _cpu_defines = map[string]string{
	"CYCLES": fmt.Sprintf("%v", CYCLE_COUNT),
}

func init() {
	for _, op := range aluOps {
		_cpu_defines[strings.ToUpper(op.String())] = fmt.Sprintf("0x%x", uint8(op))
	}
}

// Defines returns the predefined equates for the CPU: opcode names and
// the number of clock phases.
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}
