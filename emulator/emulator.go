// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"log"

	"github.com/kr/pretty"

	"github.com/ezrec/ls8/cpu"
)

// Emulator state. CPU + program image + output.
type Emulator struct {
	Verbose  bool         // If set, enables tracing of every cycle.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Assembled program listing, if any.
	Image    []uint8      // Program image; if nil, the binary of Program.
}

// Summary is the register level state of the machine.
type Summary struct {
	Pc       uint16
	Register [cpu.REGISTER_COUNT]uint8
	Flags    uint8
	State    cpu.State
	Ticks    int
	Fault    error
}

// NewEmulator creates a new emulator, writing program output to output.
func NewEmulator(output io.Writer) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(output),
		Program: &cpu.Program{},
	}

	return
}

// Reset the CPU, and load the program image into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = false

	emu.Cpu.Reset()

	image := emu.Image
	if image == nil && emu.Program != nil {
		image = emu.Program.Binary()
	}

	err = emu.Cpu.Load(image)
	if err != nil {
		return
	}

	emu.Cpu.Verbose = emu.Verbose

	return
}

// LineNo returns the source line number for the instruction at the program counter.
func (emu *Emulator) LineNo() int {
	if emu.Image != nil || emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Statement == nil {
		return 0
	}

	return dbg.LineNo
}

// Summary returns the register level state of the machine.
func (emu *Emulator) Summary() Summary {
	return Summary{
		Pc:       emu.Cpu.Pc,
		Register: emu.Cpu.Register,
		Flags:    emu.Cpu.Flags,
		State:    emu.Cpu.State,
		Ticks:    emu.Cpu.Ticks,
		Fault:    emu.Cpu.Fault,
	}
}

// Faulted returns true if the machine stopped on an unknown instruction or
// on a fatal fault. Summary().Fault tells the two apart.
func (emu *Emulator) Faulted() bool {
	return emu.Cpu.State == cpu.STATE_FAULTED
}

// Tick performs a single cycle of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		}
	}()

	if emu.Verbose {
		log.Print(emu.Cpu.Trace())
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.State != cpu.STATE_RUNNING

	return
}

// Run ticks the emulator until the CPU halts or faults.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			break
		}
	}

	if emu.Verbose {
		log.Printf("%# v", pretty.Formatter(emu.Summary()))
	}

	return
}
