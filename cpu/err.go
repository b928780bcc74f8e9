package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrNotRunning      = errors.New(f("not running"))
	ErrPcRange         = errors.New(f("program counter outside of memory"))
	ErrMemoryRange     = errors.New(f("address outside of memory"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrStackFull       = errors.New(f("stack full"))
	ErrStackEmpty      = errors.New(f("stack empty"))
	ErrAluUnsupported  = errors.New(f("unsupported alu operation"))

	// Image errors
	ErrImageTooLarge = errors.New(f("image larger than memory"))
	ErrImageValue    = errors.New(f("image value larger than a byte"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrValueRange         = errors.New(f("value does not fit in a byte"))
)

// ErrOpcode is an opcode with no handler in the instruction set.
type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("unknown instruction 0x%02X", uint8(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrInstruction is a fatal fault raised while executing an instruction.
type ErrInstruction struct {
	Pc     uint16
	Opcode Opcode
	Err    error
}

func (err *ErrInstruction) Error() string {
	return f("%02X: %v %v", err.Pc, err.Opcode, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
