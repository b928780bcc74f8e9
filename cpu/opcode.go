package cpu

import (
	"slices"
	"strings"
)

// Opcode is an encoded instruction byte.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT  = Opcode(0b0000_0001) // HLT
	OP_PUSH = Opcode(0b0100_0101) // PUSH
	OP_POP  = Opcode(0b0100_0110) // POP
	OP_PRN  = Opcode(0b0100_0111) // PRN
	OP_JMP  = Opcode(0b0101_0100) // JMP
	OP_JEQ  = Opcode(0b0101_0101) // JEQ
	OP_JNE  = Opcode(0b0101_0110) // JNE
	OP_LDI  = Opcode(0b1000_0010) // LDI
	OP_ADD  = Opcode(0b1010_0000) // ADD
	OP_MUL  = Opcode(0b1010_0010) // MUL
	OP_CMP  = Opcode(0b1010_0111) // CMP
)

const (
	OPERAND_SHIFT = 6 // Position of the operand count in the opcode.
	OPERAND_SLOTS = 2 // Operand cells fetched after every opcode.
)

// opcodes is the instruction set.
var opcodes = []Opcode{
	OP_HLT,
	OP_PUSH,
	OP_POP,
	OP_PRN,
	OP_JMP,
	OP_JEQ,
	OP_JNE,
	OP_LDI,
	OP_ADD,
	OP_MUL,
	OP_CMP,
}

// opcodeImmediate lists, per opcode, which operand is an immediate value
// rather than a register index.
var opcodeImmediate = map[Opcode]int{
	OP_LDI: 1,
}

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return int(op >> OPERAND_SHIFT)
}

// Immediate returns true if operand n is an immediate value.
func (op Opcode) Immediate(n int) bool {
	index, ok := opcodeImmediate[op]
	return ok && index == n
}

// Known returns true if the opcode is part of the instruction set.
func (op Opcode) Known() bool {
	return slices.Contains(opcodes, op)
}

// LookupOpcode finds the opcode for a mnemonic, ignoring case.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	for _, code := range opcodes {
		if strings.EqualFold(code.String(), mnemonic) {
			return code, true
		}
	}

	return
}
