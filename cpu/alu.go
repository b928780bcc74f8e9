package cpu

// AluOp is an ALU operation type.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // add
	ALU_OP_MUL = AluOp(1) // mul
)

// Alu performs the requested operation on two registers, and stores the
// result in the first. Arithmetic wraps at 8 bits.
func (cpu *Cpu) Alu(op AluOp, reg_a, reg_b uint8) (err error) {
	a, err := cpu.register(reg_a)
	if err != nil {
		return
	}
	b, err := cpu.register(reg_b)
	if err != nil {
		return
	}

	switch op {
	case ALU_OP_ADD:
		*a += *b
	case ALU_OP_MUL:
		*a *= *b
	default:
		err = ErrAluUnsupported
	}

	return
}
