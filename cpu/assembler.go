// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ls8/internal"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":      "0",
	"SP":          fmt.Sprintf("R%d", REGISTER_SP),
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"STACK_TOP":   fmt.Sprintf("%#x", STACK_TOP),
}

var (
	reLabel     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reCharacter = regexp.MustCompile(`'\\?[^']'`)
	reParen     = regexp.MustCompile(`\$\([^\$]*\)`)
)

// Assembler is a single pass assembler for the LS-8 system.
//
// Source lines have the form:
//
//	[label:]... [MNEMONIC [operand[, operand]]] [; comment]
//
// Operands are registers (R0-R7), numbers, character constants ('x'),
// labels, equates (.equ NAME VALUE) or $(...) expressions. DB emits its
// operands as raw data bytes.
type Assembler struct {
	Verbose   bool        // If set, verbosely logs the assembler actions.
	Statement []Statement // List of generated statements.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Defines returns an iterator over the system equates and the predefines.
func (asm *Assembler) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(sysEquate), maps.All(asm.predefine))
}

// valueOf returns the byte value of a number.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 < -0x80 || v64 > 0xff {
		err = ErrValueRange
		return
	}

	value = uint8(v64)
	return
}

// registerOf returns the index of a register name.
func (asm *Assembler) registerOf(word string) (index uint8, err error) {
	if len(word) != 2 || (word[0] != 'R' && word[0] != 'r') {
		err = ErrRegisterInvalid
		return
	}

	n := word[1] - '0'
	if n >= REGISTER_COUNT {
		err = ErrRegisterInvalid
		return
	}

	index = n
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for label, addr := range asm.Label {
		pred[label] = starlark.MakeInt(addr)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine expands a line into words, and records equates and labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "t":
				str = "\t"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if strings.EqualFold(words[0], ".equ") {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !reLabel.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.currentAddress()
		words = words[1:]
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// currentAddress gets the address of the next statement.
func (asm *Assembler) currentAddress() int {
	if len(asm.Statement) == 0 {
		return 0
	}

	last := asm.Statement[len(asm.Statement)-1]

	return last.Address + len(last.Bytes)
}

// Parse parses an input stream into a Program containing statements.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Statement = asm.Statement[:0]
	asm.Label = make(map[string]int, 16)
	asm.Equate = maps.Collect(asm.Defines())

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment, _, _ := strings.Cut(text, ";")
		line = strings.TrimSpace(text_comment)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if asm.currentAddress() > MEMORY_SIZE {
		err = ErrImageTooLarge
		return
	}

	// Final linking of labels.
	for n := range asm.Statement {
		st := &asm.Statement[n]
		for _, link := range st.Links {
			lineno = st.LineNo
			line = strings.Join(st.Words, " ")

			addr, ok := asm.Label[link.Label]
			if !ok {
				err = ErrLabelMissing(link.Label)
				return
			}
			if addr > 0xff {
				err = ErrValueRange
				return
			}
			st.Bytes[link.Index] = uint8(addr)
		}
	}

	prog = &Program{
		Statements: asm.Statement,
	}
	asm.Statement = nil

	return
}

// immediate encodes an immediate operand, or links it to a label.
func (asm *Assembler) immediate(word string, index int, links *[]Link) (value uint8, err error) {
	value, err = asm.valueOf(word)
	if err == nil {
		return
	}

	if _, ok := err.(ErrParseNumber); ok && reLabel.MatchString(word) {
		*links = append(*links, Link{Index: index, Label: word})
		err = nil
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var bytes []uint8
	var links []Link

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if err != nil || len(bytes) == 0 {
			return
		}
		st := Statement{LineNo: lineno, Address: asm.currentAddress(), Words: initial_words, Bytes: bytes, Links: links}
		asm.Statement = append(asm.Statement, st)
	}()

	if strings.EqualFold(words[0], "DB") {
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		for n, word := range words[1:] {
			var value uint8
			value, err = asm.immediate(word, n, &links)
			if err != nil {
				return
			}
			bytes = append(bytes, value)
		}
		return
	}

	op, ok := LookupOpcode(words[0])
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	args := words[1:]
	if len(args) < op.Operands() {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > op.Operands() {
		err = ErrOpcodeExtraArgs
		return
	}

	bytes = append(bytes, uint8(op))
	for n, word := range args {
		var value uint8
		if op.Immediate(n) {
			value, err = asm.immediate(word, 1+n, &links)
		} else {
			value, err = asm.registerOf(word)
		}
		if err != nil {
			return
		}
		bytes = append(bytes, value)
	}

	return
}
