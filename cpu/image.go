package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseBinary parses a base-2 number, with an optional sign, an optional
// 0b prefix, and '_' digit separators.
func parseBinary(text string) (value int64, err error) {
	var sign string
	if strings.HasPrefix(text, "+") || strings.HasPrefix(text, "-") {
		sign, text = text[:1], text[1:]
	}

	if !strings.HasPrefix(text, "0b") && !strings.HasPrefix(text, "0B") {
		if strings.HasPrefix(text, "_") {
			err = strconv.ErrSyntax
			return
		}
		text = "0b" + text
	}

	return strconv.ParseInt(sign+text, 0, 64)
}

// ReadImage reads a program image: one base-2 byte per line, with anything
// after a '#' ignored. Lines that are not a binary number are skipped; binary
// numbers outside of a byte are an error.
func ReadImage(input io.Reader) (image []uint8, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		text, _, _ := strings.Cut(line, "#")
		text = strings.TrimSpace(text)

		value, perr := parseBinary(text)
		if perr != nil {
			if errors.Is(perr, strconv.ErrRange) {
				err = ErrImageValue
				return
			}
			continue
		}
		if value < 0 || value > 0xff {
			err = ErrImageValue
			return
		}

		if len(image) == MEMORY_SIZE {
			err = ErrImageTooLarge
			return
		}

		image = append(image, uint8(value))
	}

	err = scanner.Err()

	return
}

// WriteImage writes an assembled program in the format read by ReadImage,
// annotating the first byte of each statement with its source text.
func WriteImage(output io.Writer, prog *Program) (err error) {
	for _, st := range prog.Statements {
		for n, value := range st.Bytes {
			if n == 0 {
				_, err = fmt.Fprintf(output, "%08b # %v\n", value, strings.Join(st.Words, " "))
			} else {
				_, err = fmt.Fprintf(output, "%08b\n", value)
			}
			if err != nil {
				return
			}
		}
	}

	return
}
