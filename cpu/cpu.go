// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"io"
	"log"

	"github.com/ezrec/ls8/translate"
)

const (
	MEMORY_SIZE    = 256  // Bytes of memory.
	REGISTER_COUNT = 8    // General purpose registers.
	REGISTER_SP    = 7    // Register used as the stack pointer.
	STACK_TOP      = 0xf4 // Initial stack pointer; the stack grows down from here.
)

// Flag bits of the flags register, set by CMP.
const (
	FLAG_EQUAL   = uint8(0b001)
	FLAG_GREATER = uint8(0b010)
	FLAG_LESS    = uint8(0b100)
)

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

// Cpu is the simulation context for the LS-8 machine.
type Cpu struct {
	Verbose bool      // Set to enable verbose logging.
	Output  io.Writer // Destination of PRN, HLT and diagnostic output.

	Pc       uint16                // Current program counter.
	Register [REGISTER_COUNT]uint8 // Register bank.
	Memory   [MEMORY_SIZE]uint8    // Program and stack memory.
	Flags    uint8                 // Result of the last CMP.
	State    State                 // Execution state.
	Fault    error                 // Reason for STATE_FAULTED.

	Ticks int // Instructions executed since reset.
}

// Instruction is a fetched, but not yet executed, instruction.
type Instruction struct {
	Pc      uint16               // Address of the opcode.
	Opcode  Opcode               // Opcode byte.
	Operand [OPERAND_SLOTS]uint8 // Cells following the opcode.
	Fetched int                  // Operand cells that were inside memory.
}

// Args returns the operands declared by the opcode.
func (in Instruction) Args() []uint8 {
	return in.Operand[:min(in.Opcode.Operands(), OPERAND_SLOTS)]
}

// NewCpu creates a new CPU, reset and ready to load.
func NewCpu(output io.Writer) (cpu *Cpu) {
	cpu = &Cpu{
		Output: output,
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears the registers, flags and memory.
// - Points the stack pointer at the top of the stack.
// - Sets the program counter to 0, and the state to running.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	cpu.Register[REGISTER_SP] = STACK_TOP
	cpu.Flags = 0
	cpu.Pc = 0
	cpu.State = STATE_RUNNING
	cpu.Fault = nil
	cpu.Ticks = 0
}

// Load copies a program image into memory, starting at address 0.
func (cpu *Cpu) Load(image []uint8) (err error) {
	if len(image) > len(cpu.Memory) {
		err = ErrImageTooLarge
		return
	}

	copy(cpu.Memory[:], image)

	return
}

// RamRead reads a byte of memory.
func (cpu *Cpu) RamRead(addr uint16) (value uint8, err error) {
	if int(addr) >= len(cpu.Memory) {
		err = ErrMemoryRange
		return
	}

	value = cpu.Memory[addr]
	return
}

// RamWrite writes a byte of memory.
func (cpu *Cpu) RamWrite(addr uint16, value uint8) (err error) {
	if int(addr) >= len(cpu.Memory) {
		err = ErrMemoryRange
		return
	}

	cpu.Memory[addr] = value
	return
}

// register returns a reference to a register by index.
func (cpu *Cpu) register(index uint8) (reg *uint8, err error) {
	if int(index) >= len(cpu.Register) {
		err = ErrRegisterInvalid
		return
	}

	reg = &cpu.Register[index]
	return
}

// Equal is true if the last CMP found its operands equal.
func (cpu *Cpu) Equal() bool {
	return (cpu.Flags & FLAG_EQUAL) != 0
}

// Less is true if the last CMP found the first operand smaller.
func (cpu *Cpu) Less() bool {
	return (cpu.Flags & FLAG_LESS) != 0
}

// Greater is true if the last CMP found the first operand larger.
func (cpu *Cpu) Greater() bool {
	return (cpu.Flags & FLAG_GREATER) != 0
}

// print writes translated text to the output, if any.
func (cpu *Cpu) print(format string, args ...any) (err error) {
	if cpu.Output == nil {
		return
	}

	return translate.To(cpu.Output, format, args...)
}

// peek reads memory for display, with zero outside of memory.
func (cpu *Cpu) peek(addr uint16) (value uint8) {
	value, _ = cpu.RamRead(addr)
	return
}

// Trace returns the program counter, the next three memory cells and the
// register bank as a single line.
func (cpu *Cpu) Trace() (text string) {
	text = fmt.Sprintf("TRACE: %02X | %02X %02X %02X |",
		cpu.Pc,
		cpu.peek(cpu.Pc),
		cpu.peek(cpu.Pc+1),
		cpu.peek(cpu.Pc+2),
	)

	for _, reg := range cpu.Register {
		text += fmt.Sprintf(" %02X", reg)
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %03b\n", "fl", cpu.Flags)
	for n, reg := range cpu.Register {
		text += fmt.Sprintf("% 5s: %02X\n", fmt.Sprintf("r%d", n), reg)
	}
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State)

	return
}

// Fetch reads the instruction at the program counter. Both operand cells are
// always read; cells past the end of memory read as zero.
func (cpu *Cpu) Fetch() (in Instruction, err error) {
	in.Pc = cpu.Pc

	code, err := cpu.RamRead(cpu.Pc)
	if err != nil {
		err = ErrPcRange
		return
	}
	in.Opcode = Opcode(code)

	for n := range in.Operand {
		value, rerr := cpu.RamRead(cpu.Pc + 1 + uint16(n))
		if rerr != nil {
			break
		}
		in.Operand[n] = value
		in.Fetched++
	}

	return
}

// Tick executes a single fetch-decode-execute cycle.
//
// An opcode outside of the instruction set stops the CPU in STATE_FAULTED
// after writing a diagnostic, and is not an error. Any other fault stops the
// CPU in STATE_FAULTED and is returned as an *ErrInstruction.
func (cpu *Cpu) Tick() (err error) {
	if cpu.State != STATE_RUNNING {
		err = ErrNotRunning
		return
	}

	in, err := cpu.Fetch()
	if err != nil {
		err = &ErrInstruction{Pc: cpu.Pc, Err: err}
		cpu.State = STATE_FAULTED
		cpu.Fault = err
		return
	}

	handler := dispatch[in.Opcode]
	if handler == nil {
		cpu.State = STATE_FAULTED
		cpu.Fault = ErrOpcode(in.Opcode)
		err = cpu.print("Unknown instruction 0x%02X at address 0x%02X\n", uint8(in.Opcode), in.Pc)
		return
	}

	err = cpu.Execute(in)

	return
}

// Execute executes a single fetched instruction.
func (cpu *Cpu) Execute(in Instruction) (err error) {
	defer func() {
		if err != nil {
			err = &ErrInstruction{Pc: in.Pc, Opcode: in.Opcode, Err: err}
			cpu.State = STATE_FAULTED
			cpu.Fault = err
		}
	}()

	handler := dispatch[in.Opcode]
	if handler == nil {
		err = ErrOpcode(in.Opcode)
		return
	}

	args := in.Args()
	if in.Fetched < len(args) {
		err = ErrPcRange
		return
	}

	if cpu.Verbose {
		log.Printf("%02x: %v %v", in.Pc, in.Opcode, args)
	}

	err = handler(cpu, args)
	if err != nil {
		return
	}

	cpu.Ticks += 1

	return
}
