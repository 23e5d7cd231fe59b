// Package report renders emulator status for a human at a console.
package report

import (
	"io"

	"github.com/ezrec/nybble/cpu"
	"github.com/ezrec/nybble/emulator"
	"github.com/ezrec/nybble/translate"
)

// Text writes the register file bit-by-bit after every tick.
//
// The full layout is the design project status block. Compact writes a
// single line per tick instead.
type Text struct {
	Output  io.Writer
	Compact bool
}

var _ emulator.Reporter = (*Text)(nil)

// Report renders one status.
func (tr *Text) Report(status emulator.Status) (err error) {
	p := translate.Printer()

	if status.Wrapped {
		_, err = p.Fprintf(tr.Output, "program restarting\n")
		if err != nil {
			return
		}
	}

	regs := &status.Registers

	if tr.Compact {
		_, err = p.Fprintf(tr.Output, "%6d: cycle %s (%v) bus %s opcode %s a %s b %s result %d_%s\n",
			status.Ticks,
			regs.Cycle.Binary(), regs.Cycle,
			regs.Bus.Binary(),
			regs.Opcode.Binary(),
			regs.OperandA.Binary(),
			regs.OperandB.Binary(),
			regs.Result.Bit(cpu.NIBBLE_BITS), regs.Result.Binary())
		return
	}

	_, err = p.Fprintf(tr.Output, "Design project CPU status:\n\ncounter: %s, in decimal: %d\n",
		regs.Cycle.Binary(), uint8(regs.Cycle))
	if err != nil {
		return
	}

	lines := []struct {
		name  string
		value cpu.Nibble
	}{
		{"bus state", regs.Bus},
		{"opcode register", regs.Opcode},
		{"operand a register", regs.OperandA},
		{"operand b register", regs.OperandB},
	}
	for _, line := range lines {
		_, err = p.Fprintf(tr.Output, "%s %s, in decimal: %d\n", line.name, line.value.Binary(), uint8(line.value))
		if err != nil {
			return
		}
	}

	_, err = p.Fprintf(tr.Output, "result register (carry: %d)%s, in decimal: %d\n",
		regs.Result.Bit(cpu.NIBBLE_BITS), regs.Result.Binary(), uint8(regs.Result))

	return
}
