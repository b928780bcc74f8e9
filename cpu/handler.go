package cpu

// handler executes an instruction given its declared operands, and is
// responsible for advancing the program counter.
type handler func(cpu *Cpu, args []uint8) (err error)

// dispatch maps every opcode byte to its handler; nil entries are not part
// of the instruction set.
var dispatch = [256]handler{
	OP_HLT:  (*Cpu).hlt,
	OP_PUSH: (*Cpu).push,
	OP_POP:  (*Cpu).pop,
	OP_PRN:  (*Cpu).prn,
	OP_JMP:  (*Cpu).jmp,
	OP_JEQ:  (*Cpu).jeq,
	OP_JNE:  (*Cpu).jne,
	OP_LDI:  (*Cpu).ldi,
	OP_ADD:  (*Cpu).add,
	OP_MUL:  (*Cpu).mul,
	OP_CMP:  (*Cpu).cmp,
}

// LDI reg imm: reg <- imm
func (cpu *Cpu) ldi(args []uint8) (err error) {
	reg, err := cpu.register(args[0])
	if err != nil {
		return
	}

	*reg = args[1]
	cpu.Pc += 3
	return
}

// PRN reg: print the decimal value of reg
func (cpu *Cpu) prn(args []uint8) (err error) {
	reg, err := cpu.register(args[0])
	if err != nil {
		return
	}

	err = cpu.print("%d\n", *reg)
	if err != nil {
		return
	}

	cpu.Pc += 2
	return
}

// ADD reg_a reg_b: reg_a <- reg_a + reg_b
func (cpu *Cpu) add(args []uint8) (err error) {
	err = cpu.Alu(ALU_OP_ADD, args[0], args[1])
	if err != nil {
		return
	}

	cpu.Pc += 3
	return
}

// MUL reg_a reg_b: reg_a <- reg_a * reg_b
func (cpu *Cpu) mul(args []uint8) (err error) {
	err = cpu.Alu(ALU_OP_MUL, args[0], args[1])
	if err != nil {
		return
	}

	cpu.Pc += 3
	return
}

func (cpu *Cpu) hlt(args []uint8) (err error) {
	err = cpu.print("Stopping.\n")
	if err != nil {
		return
	}

	cpu.Pc += 1
	cpu.State = STATE_HALTED
	return
}

// PUSH reg: decrement SP, then store reg at SP.
func (cpu *Cpu) push(args []uint8) (err error) {
	reg, err := cpu.register(args[0])
	if err != nil {
		return
	}

	sp := &cpu.Register[REGISTER_SP]
	if *sp == 0 {
		err = ErrStackFull
		return
	}

	*sp -= 1
	err = cpu.RamWrite(uint16(*sp), *reg)
	if err != nil {
		return
	}

	cpu.Pc += 2
	return
}

// POP reg: load reg from SP, then increment SP.
func (cpu *Cpu) pop(args []uint8) (err error) {
	reg, err := cpu.register(args[0])
	if err != nil {
		return
	}

	sp := &cpu.Register[REGISTER_SP]
	if *sp >= STACK_TOP {
		err = ErrStackEmpty
		return
	}

	*reg, err = cpu.RamRead(uint16(*sp))
	if err != nil {
		return
	}
	*sp += 1

	cpu.Pc += 2
	return
}

// JMP reg: pc <- reg
func (cpu *Cpu) jmp(args []uint8) (err error) {
	reg, err := cpu.register(args[0])
	if err != nil {
		return
	}

	cpu.Pc = uint16(*reg)
	return
}

// CMP reg_a reg_b: set exactly one of the equal, less or greater flags.
func (cpu *Cpu) cmp(args []uint8) (err error) {
	a, err := cpu.register(args[0])
	if err != nil {
		return
	}
	b, err := cpu.register(args[1])
	if err != nil {
		return
	}

	cpu.Flags = 0
	switch {
	case *a == *b:
		cpu.Flags |= FLAG_EQUAL
	case *a < *b:
		cpu.Flags |= FLAG_LESS
	default:
		cpu.Flags |= FLAG_GREATER
	}

	cpu.Pc += 3
	return
}

// jumpIf sets pc to the register if taken, or skips the instruction.
func (cpu *Cpu) jumpIf(taken bool, args []uint8) (err error) {
	reg, err := cpu.register(args[0])
	if err != nil {
		return
	}

	if taken {
		cpu.Pc = uint16(*reg)
	} else {
		cpu.Pc += 2
	}
	return
}

// JEQ reg: jump if the equal flag is set
func (cpu *Cpu) jeq(args []uint8) (err error) {
	return cpu.jumpIf(cpu.Equal(), args)
}

// JNE reg: jump if the equal flag is clear
func (cpu *Cpu) jne(args []uint8) (err error) {
	return cpu.jumpIf(!cpu.Equal(), args)
}
