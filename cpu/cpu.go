// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"log"
)

// Step performs the action for the current clock phase of regs, then returns.
//
// The phase is never advanced here; that is the clock driver's job.
//
//	cycle 0     settled, no action
//	cycle 1     opcode := bus, then refill the bus
//	cycle 2     idle
//	cycle 3     operand A := bus, then refill the bus
//	cycle 4     operand B := bus, then refill the bus
//	cycle 5, 6  idle
//	cycle 7     result := ALU(opcode, A, B); the bus is not refilled
//
// A register latches the value that was on the bus when the phase began;
// the refilled value is only visible to the next latching phase.
//
// If the latched opcode is not recognized at cycle 7, the result register
// keeps its previous value. From the outside this is indistinguishable
// from an ALU that has not settled yet.
//
// wrapped is true if a bus refill ran off the end of the program and
// restarted it. It is informational only.
func Step(regs *Registers, prog *Program) (wrapped bool) {
	switch MakeCycle(uint(regs.Cycle)) {
	case CYCLE_FETCH_OPCODE:
		regs.Opcode = MakeNibble(uint(regs.Bus))
		regs.Bus, wrapped = prog.Next()
	case CYCLE_FETCH_A:
		regs.OperandA = MakeNibble(uint(regs.Bus))
		regs.Bus, wrapped = prog.Next()
	case CYCLE_FETCH_B:
		regs.OperandB = MakeNibble(uint(regs.Bus))
		regs.Bus, wrapped = prog.Next()
	case CYCLE_EXECUTE:
		result, ok := Compute(AluOp(regs.Opcode), regs.OperandA, regs.OperandB)
		if ok {
			regs.Result = result
		}
	default:
		// CYCLE_SETTLED and the idle phases.
	}

	return
}

// Cpu is the simulation context for the design project CPU: one register
// file and the program feeding its bus.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers          // Visible CPU state.
	Program   *Program // Source of bus values.

	Ticks int // Clock ticks since reset.
	Wraps int // Program restarts since reset.
}

// NewCpu creates a new CPU attached to a program, in the reset state.
func NewCpu(prog *Program) (cpu *Cpu) {
	cpu = &Cpu{
		Program: prog,
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears the registers, as if the reset button was pressed.
// - Rewinds the program.
// - Loads the first program value onto the bus.
// - Zeros statistics counters.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Program.Rewind()
	cpu.Bus = cpu.Program.First()
	cpu.Ticks = 0
	cpu.Wraps = 0
}

// Execute performs the action for the current clock phase, without
// advancing the clock.
func (cpu *Cpu) Execute() (wrapped bool) {
	if cpu.Verbose {
		log.Printf("cpu: cycle %d (%v) bus %v", uint8(cpu.Cycle), cpu.Cycle, cpu.Bus)
	}

	prior := cpu.Result

	wrapped = Step(&cpu.Registers, cpu.Program)
	if wrapped {
		cpu.Wraps++
		if cpu.Verbose {
			log.Printf("cpu: program restarting")
		}
	}

	if cpu.Verbose && cpu.Cycle == CYCLE_EXECUTE {
		op := AluOp(cpu.Opcode)
		if !op.Recognized() {
			log.Printf("cpu: opcode %v not recognized, result unchanged", cpu.Opcode)
		} else if prior != cpu.Result {
			log.Printf("cpu: %v %v %v => %v", op, cpu.OperandA, cpu.OperandB, cpu.Result)
		}
	}

	return
}

// Advance moves the clock to the next phase.
func (cpu *Cpu) Advance() {
	cpu.Cycle = cpu.Cycle.Next()
	cpu.Ticks++
}

// Tick executes the current clock phase, then advances the clock.
func (cpu *Cpu) Tick() (wrapped bool) {
	wrapped = cpu.Execute()
	cpu.Advance()

	return
}
