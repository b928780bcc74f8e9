// Package cpu implements the LS-8 microprocessor and its assembler.
//
// The CPU consists of a program counter (PC), eight 8-bit general-purpose
// registers (R0-R7, with R7 serving as the stack pointer), a flags register
// holding the result of the last comparison, and 256 bytes of memory shared
// between program text and the downward growing stack.
//
// Instructions are one opcode byte followed by up to two operand bytes. The
// top two bits of the opcode encode the number of operands.
//
// The assembler provides a small assembly language for the LS-8 instruction
// set, supporting labels, equates, data bytes and compile-time expression
// evaluation.
package cpu
