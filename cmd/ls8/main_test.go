package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, name string, lines ...string) (path string) {
	path = filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestRunImage(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "print8.ls8",
		"# Print the number 8",
		"10000010 # LDI R0,8",
		"00000000",
		"00001000",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
	)

	out := &bytes.Buffer{}
	assert.Equal(EXIT_OK, run(path, false, false, false, out))
	assert.Equal("8\nStopping.\n", out.String())
}

func TestRunNotFound(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "missing.ls8")

	out := &bytes.Buffer{}
	assert.Equal(EXIT_NOT_FOUND, run(path, false, false, false, out))
	assert.Empty(out.String())
}

func TestRunUnknownOpcode(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "bad.ls8", "11111111")

	out := &bytes.Buffer{}
	assert.Equal(EXIT_OK, run(path, false, false, false, out))
	assert.Equal("Unknown instruction 0xFF at address 0x00\n", out.String())
}

func TestRunImageError(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "big.ls8", "111111111")

	out := &bytes.Buffer{}
	assert.Equal(EXIT_FAILED, run(path, false, false, false, out))
}

func TestRunFault(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "pop.asm", "POP R0", "HLT")

	out := &bytes.Buffer{}
	assert.Equal(EXIT_FAILED, run(path, true, false, false, out))
	assert.Empty(out.String())
}

func TestRunAssemble(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "mult.asm",
		"LDI R0, 8",
		"LDI R1, 9",
		"MUL R0, R1",
		"PRN R0",
		"HLT",
	)

	out := &bytes.Buffer{}
	assert.Equal(EXIT_OK, run(path, true, false, false, out))
	assert.Equal("72\nStopping.\n", out.String())

	out.Reset()
	assert.Equal(EXIT_OK, run(path, true, true, false, out))
	assert.True(strings.HasPrefix(out.String(), "10000010 # LDI R0 8\n00000000\n00001000\n"))

	image := writeFile(t, "mult.ls8", out.String())
	out.Reset()
	assert.Equal(EXIT_OK, run(image, false, false, false, out))
	assert.Equal("72\nStopping.\n", out.String())
}

func TestRunAssembleError(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "bad.asm", "FOO R0")

	out := &bytes.Buffer{}
	assert.Equal(EXIT_FAILED, run(path, true, false, false, out))
}

func TestCommandUsage(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "halt.ls8", "00000001")

	table := [](struct {
		name string
		args []string
	}){
		{"no_args", []string{}},
		{"two_args", []string{path, path}},
		{"unknown_flag", []string{"-x", path}},
		{"help", []string{"-h"}},
		{"save_without_assemble", []string{"-s", path}},
	}

	for _, entry := range table {
		out := &bytes.Buffer{}
		errout := &bytes.Buffer{}
		assert.Equal(EXIT_USAGE, command("ls8", entry.args, out, errout), entry.name)
		assert.Contains(errout.String(), "usage: ls8", entry.name)
		assert.Empty(out.String(), entry.name)
	}
}

func TestCommand(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "halt.ls8", "00000001")

	out := &bytes.Buffer{}
	errout := &bytes.Buffer{}
	assert.Equal(EXIT_OK, command("ls8", []string{path}, out, errout))
	assert.Equal("Stopping.\n", out.String())
	assert.Empty(errout.String())

	// A program name that looks like a flag follows "--".
	out.Reset()
	assert.Equal(EXIT_NOT_FOUND, command("ls8", []string{"--", "-missing.ls8"}, out, errout))
	assert.Empty(out.String())
}
