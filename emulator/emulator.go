// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives the design project CPU one clock tick at a time.
package emulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/nybble/cpu"
	"github.com/ezrec/nybble/internal"
)

// DefaultProgram is the switch sequence used when no listing is given.
var DefaultProgram = []cpu.Nibble{
	0x4, 0x1, 0x8, // OR 0001 with 1000 => 1001
	0x7, 0x3, 0x5, // XOR 0011 with 0101 => 0110
	0xa, 0x7, 0x9, // ADD 0111 with 1001 => 0000, carry 1
	0x4, 0x1, 0xb, // OR 0001 with 1011 => 1011
}

var _emulator_defines = map[string]string{
	"NIBBLE_MASK":  fmt.Sprintf("0x%x", cpu.NIBBLE_MASK),
	"RESULT_CARRY": fmt.Sprintf("0x%x", cpu.RESULT_CARRY),
}

// Clock decides when the next tick happens.
// Wait returns io.EOF when no more ticks will come.
type Clock interface {
	Wait(ctx context.Context) error
}

// Reporter observes the emulator after every tick. It must not modify
// the status it is given.
type Reporter interface {
	Report(status Status) error
}

// Status is the emulator state after a tick.
// Registers.Cycle is the phase that was just executed.
type Status struct {
	cpu.Registers

	Ticks   int  // Ticks since reset, including this one.
	Wraps   int  // Program restarts since reset.
	Wrapped bool // Set if the program restarted during this tick.
	Cursor  int  // Program index of the value on the bus.
	LineNo  int  // Listing line of the value on the bus, if known.
}

// Emulator state. CPU + program listing + status reporting.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Listing  *cpu.Listing // Listing the program was assembled from, if any.
	Reporter Reporter     // Status reporter, if any.
}

// NewEmulator creates a new emulator running a program.
func NewEmulator(prog *cpu.Program) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(prog),
	}

	return
}

// NewEmulatorListing creates a new emulator running an assembled listing.
func NewEmulatorListing(lst *cpu.Listing) (emu *Emulator, err error) {
	prog, err := lst.Program()
	if err != nil {
		return
	}

	emu = NewEmulator(prog)
	emu.Listing = lst

	return
}

// Defines returns an iterator over all of the defines
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines), cpu.Defines())
}

// Reset the emulator: registers cleared, program rewound, bus primed.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// LineNo returns the listing line for the value currently on the bus.
func (emu *Emulator) LineNo() int {
	if emu.Listing == nil {
		return 0
	}

	return emu.Listing.LineOf(emu.Cpu.Program.Cursor())
}

// Tick performs a single tick of the emulator: the current phase is
// executed, the reporter is notified, then the clock advances.
func (emu *Emulator) Tick() (status Status, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	wrapped := emu.Cpu.Execute()

	status = Status{
		Registers: emu.Cpu.Registers,
		Ticks:     emu.Cpu.Ticks + 1,
		Wraps:     emu.Cpu.Wraps,
		Wrapped:   wrapped,
		Cursor:    emu.Cpu.Program.Cursor(),
		LineNo:    emu.LineNo(),
	}

	emu.Cpu.Advance()

	if emu.Reporter != nil {
		err = emu.Reporter.Report(status)
		if err != nil {
			err = &ErrRuntime{Tick: status.Ticks, LineNo: status.LineNo, Err: err}
			return
		}
	}

	return
}

// Run ticks the emulator each time the clock allows, until the clock
// runs out or the context is cancelled.
func (emu *Emulator) Run(ctx context.Context, clock Clock) (err error) {
	for {
		err = clock.Wait(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			if emu.Verbose {
				log.Printf("emulator: stopped after %d ticks: %v", emu.Cpu.Ticks, err)
			}
			err = nil
			return
		}
		if err != nil {
			err = &ErrRuntime{Tick: emu.Cpu.Ticks, LineNo: emu.LineNo(), Err: err}
			return
		}

		_, err = emu.Tick()
		if err != nil {
			return
		}
	}
}
