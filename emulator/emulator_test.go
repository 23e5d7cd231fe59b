package emulator

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/nybble/cpu"
)

type recorder struct {
	statuses []Status
	err      error
}

func (rec *recorder) Report(status Status) error {
	rec.statuses = append(rec.statuses, status)
	return rec.err
}

type countClock struct {
	ticks int
	err   error
}

func (cc *countClock) Wait(ctx context.Context) error {
	if cc.ticks == 0 {
		return cc.err
	}
	cc.ticks--
	return nil
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.MustProgram(DefaultProgram...))

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Nil(emu.Listing)
	assert.Equal(cpu.Registers{Bus: 0x4}, emu.Cpu.Registers)
	assert.Equal(0, emu.LineNo())

	defines := map[string]string{}
	for key, value := range Defines() {
		defines[key] = value
	}
	assert.Equal("0xf", defines["NIBBLE_MASK"])
	assert.Equal("0x10", defines["RESULT_CARRY"])
	assert.Equal("0xa", defines["ADD"])
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.MustProgram(0xa, 0x7, 0x9))
	rec := &recorder{}
	emu.Reporter = rec

	for range cpu.CYCLE_COUNT {
		_, err := emu.Tick()
		assert.NoError(err)
	}

	assert.Equal(cpu.CYCLE_COUNT, len(rec.statuses))
	for n, status := range rec.statuses {
		// The reported phase is the one that was executed.
		assert.Equal(cpu.Cycle(n), status.Cycle)
		assert.Equal(n+1, status.Ticks)
		assert.Equal(n == int(cpu.CYCLE_FETCH_B), status.Wrapped)
	}

	last := rec.statuses[len(rec.statuses)-1]
	assert.Equal(cpu.Result(0b1_0000), last.Result)
	assert.Equal(1, last.Wraps)
	assert.Equal(0, last.Cursor)

	assert.Equal(cpu.CYCLE_SETTLED, emu.Cpu.Cycle)
	assert.Equal(cpu.CYCLE_COUNT, emu.Ticks)

	emu.Reset()
	assert.Equal(0, emu.Ticks)
	assert.Equal(cpu.Registers{Bus: 0xa}, emu.Cpu.Registers)
}

func TestEmulatorListing(t *testing.T) {
	assert := assert.New(t)

	asm := &cpu.Assembler{}
	lst, err := asm.Parse(strings.NewReader("; test\nor 1 8\n\nxor 3 5\n"))
	assert.NoError(err)

	emu, err := NewEmulatorListing(lst)
	assert.NoError(err)
	rec := &recorder{}
	emu.Reporter = rec

	err = emu.Run(context.Background(), &countClock{ticks: 16, err: io.EOF})
	assert.NoError(err)
	assert.Equal(16, len(rec.statuses))

	// Cycle 4 of the first instruction refills the bus from line 4.
	assert.Equal(4, rec.statuses[4].LineNo)
	assert.Equal(cpu.Result(0x9), rec.statuses[7].Result)
	assert.Equal(cpu.Result(0x6), rec.statuses[15].Result)
	assert.Equal(2, rec.statuses[15].LineNo)
	assert.True(rec.statuses[12].Wrapped)

	_, err = NewEmulatorListing(&cpu.Listing{})
	assert.ErrorIs(err, cpu.ErrProgramEmpty)
}

func TestEmulatorRunErrors(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.MustProgram(DefaultProgram...))

	err := emu.Run(context.Background(), &countClock{ticks: 3, err: context.Canceled})
	assert.NoError(err)
	assert.Equal(3, emu.Ticks)

	broken := errors.New("broken clock")
	err = emu.Run(context.Background(), &countClock{ticks: 2, err: broken})
	assert.ErrorIs(err, broken)
	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(5, runtime.Tick)
	assert.Equal("tick 5 broken clock", err.Error())

	emu.Reporter = &recorder{err: io.ErrShortWrite}
	err = emu.Run(context.Background(), &countClock{ticks: 2, err: io.EOF})
	assert.ErrorIs(err, io.ErrShortWrite)
	assert.True(errors.As(err, &runtime))
	assert.Equal(6, runtime.Tick)
}
