package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadImage(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"# print8.ls8",
		"",
		"10000010 # LDI R0,8",
		"00000000",
		"  00001000  ",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
		"# trailing comment",
		"not a number",
	}

	image, err := ReadImage(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal([]uint8{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, image)
}

func TestReadImageShortNumbers(t *testing.T) {
	assert := assert.New(t)

	image, err := ReadImage(strings.NewReader("1\n101 # five\n0\n"))
	assert.NoError(err)
	assert.Equal([]uint8{1, 5, 0}, image)
}

func TestReadImageValue(t *testing.T) {
	assert := assert.New(t)

	_, err := ReadImage(strings.NewReader("00000001\n100000000\n"))
	assert.ErrorIs(err, ErrImageValue)

	var es ErrSyntax
	assert.True(errors.As(err, &es))
	assert.Equal(2, es.LineNo)
	assert.Equal("100000000", es.Line)
}

func TestReadImageTooLarge(t *testing.T) {
	assert := assert.New(t)

	lines := strings.Repeat("00000001\n", MEMORY_SIZE)

	image, err := ReadImage(strings.NewReader(lines))
	assert.NoError(err)
	assert.Len(image, MEMORY_SIZE)

	_, err = ReadImage(strings.NewReader(lines + "00000001\n"))
	assert.ErrorIs(err, ErrImageTooLarge)
}

func TestWriteImage(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("LDI R0, 8\nPRN R0\nHLT\n"))
	assert.NoError(err)

	out := &bytes.Buffer{}
	assert.NoError(WriteImage(out, prog))

	expected := []string{
		"10000010 # LDI R0 8",
		"00000000",
		"00001000",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), out.String())

	image, err := ReadImage(out)
	assert.NoError(err)
	assert.Equal(prog.Binary(), image)
}

func TestReadImageNumberForms(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"0b101    # prefixed",
		"0B11",
		"+101",
		"1_0      # separated",
		"0b_1111_0000",
		"_1",
		"1__0",
		"2",
		"00000001",
	}

	image, err := ReadImage(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal([]uint8{5, 3, 5, 2, 0xf0, 1}, image)
}

func TestReadImageNegative(t *testing.T) {
	assert := assert.New(t)

	_, err := ReadImage(strings.NewReader("00000001\n-1\n"))
	assert.ErrorIs(err, ErrImageValue)

	var es ErrSyntax
	assert.True(errors.As(err, &es))
	assert.Equal(2, es.LineNo)
}
