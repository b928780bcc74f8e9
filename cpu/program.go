package cpu

import (
	"iter"
	"slices"

	"github.com/ezrec/ls8/internal"
)

// Link is a reference from an assembled byte to a label address.
type Link struct {
	Index int    // Index into the statement bytes.
	Label string // Label whose address is stored there.
}

// Statement represents a line of assembled code with its source location and generated bytes.
type Statement struct {
	LineNo  int
	Address int
	Words   []string
	Bytes   []uint8
	Links   []Link
}

type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
	Index int
}

// Debug finds the statement that generated the byte at an address.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, st := range prog.Statements {
		if int(addr) >= st.Address && int(addr) < st.Address+len(st.Bytes) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     int(addr) - st.Address,
			}
			break
		}
	}

	return
}

// Bytes returns the memory image, byte by byte.
func (prog *Program) Bytes() iter.Seq[uint8] {
	seqs := make([]iter.Seq[uint8], 0, len(prog.Statements))
	for _, st := range prog.Statements {
		seqs = append(seqs, slices.Values(st.Bytes))
	}

	return internal.IterSeqConcat(seqs...)
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []uint8) {
	return slices.Collect(prog.Bytes())
}
