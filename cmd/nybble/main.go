// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/ezrec/nybble/clock"
	"github.com/ezrec/nybble/cpu"
	"github.com/ezrec/nybble/emulator"
	"github.com/ezrec/nybble/report"
)

type defines map[string]string

func (d defines) String() string {
	return fmt.Sprintf("%v", map[string]string(d))
}

func (d defines) Set(value string) error {
	name, val, ok := strings.Cut(value, "=")
	if !ok || len(name) == 0 {
		return fmt.Errorf("expected NAME=value, got '%v'", value)
	}
	d[name] = val
	return nil
}

// checkClockFlags rejects clock selections that cannot be combined.
// A period may be limited to a number of ticks; keypress stepping
// cannot be combined with either.
func checkClockFlags(ticks int, period time.Duration, key bool) (err error) {
	switch {
	case ticks < 0:
		err = fmt.Errorf("-n %v: tick count must not be negative", ticks)
	case period < 0:
		err = fmt.Errorf("-p %v: period must not be negative", period)
	case key && ticks > 0:
		err = errors.New("-k cannot be combined with -n")
	case key && period > 0:
		err = errors.New("-k cannot be combined with -p")
	}

	return
}

func main() {
	var compile string
	var ticks int
	var key bool
	var period time.Duration
	var verbose bool
	var quiet bool
	var compact bool
	var graph string
	predefine := defines{}

	flag.StringVar(&compile, "c", "", "Program listing to assemble (default: built-in test program)")
	flag.IntVar(&ticks, "n", 0, "Run this many ticks without waiting, 0 to step interactively")
	flag.BoolVar(&key, "k", false, "Step the clock on any keypress, instead of on enter")
	flag.DurationVar(&period, "p", 0, "Free-running clock period, instead of stepping")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&quiet, "q", false, "Do not report status after each tick")
	flag.BoolVar(&compact, "1", false, "Report status as one line per tick")
	flag.StringVar(&graph, "g", "", "Write a graphviz dump of the final CPU state to this file")
	flag.Var(predefine, "D", "Predefine an assembler equate, as NAME=value")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	err := checkClockFlags(ticks, period, key)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	var emu *emulator.Emulator

	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for name, value := range emulator.Defines() {
			asm.Predefine(name, value)
		}
		for name, value := range predefine {
			asm.Predefine(name, value)
		}

		lst, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		emu, err = emulator.NewEmulatorListing(lst)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	} else {
		emu = emulator.NewEmulator(cpu.MustProgram(emulator.DefaultProgram...))
	}

	emu.Verbose = verbose
	if !quiet {
		emu.Reporter = &report.Text{Output: os.Stdout, Compact: compact}
	}

	var clk emulator.Clock
	switch {
	case period > 0:
		clk = &clock.Period{Limit: clock.Limit{Ticks: ticks}, Period: period}
	case ticks > 0:
		clk = &clock.Limit{Ticks: ticks}
	case key:
		kc, err := clock.OpenKey("/dev/tty")
		if err != nil {
			log.Fatalf("/dev/tty: %v", err)
		}
		defer kc.Close()
		kc.Output = os.Stdout
		kc.Prompt = "press any key to step clock, q to quit ======================\n"
		clk = kc
	default:
		clk = &clock.Enter{
			Input:  os.Stdin,
			Output: os.Stdout,
			Prompt: "press enter to step clock ======================",
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	emu.Reset()
	err = emu.Run(ctx, clk)
	if err != nil {
		if kc, ok := clk.(*clock.Key); ok {
			kc.Close()
		}
		log.Fatal(err)
	}

	if len(graph) != 0 {
		ouf, err := os.Create(graph)
		if err != nil {
			log.Fatalf("%v: %v", graph, err)
		}
		defer ouf.Close()
		memviz.Map(ouf, emu.Cpu)
	}
}
