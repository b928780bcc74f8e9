// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

// Process exit codes.
const (
	EXIT_OK        = 0 // Halted, or stopped on an unknown instruction.
	EXIT_USAGE     = 1 // Wrong arguments.
	EXIT_NOT_FOUND = 2 // Program file could not be opened.
	EXIT_FAILED    = 3 // Program could not be loaded, or faulted fatally.
)

func main() {
	os.Exit(command(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}

// command parses the command line arguments, and runs the program they name.
// Any argument error is a usage error.
func command(name string, args []string, output, errout io.Writer) int {
	var assemble bool
	var save bool
	var verbose bool

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(errout)
	flags.BoolVar(&assemble, "a", false, "Program is assembly source, not a binary image")
	flags.BoolVar(&save, "s", false, "Write the assembled image to stdout, do not execute")
	flags.BoolVar(&verbose, "v", false, "Verbose (trace) mode")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), f("usage: %v [-a] [-s] [-v] [--] <filename>", name))
		flags.PrintDefaults()
	}

	err := flags.Parse(args)
	if err != nil {
		return EXIT_USAGE
	}

	if flags.NArg() != 1 || (save && !assemble) {
		flags.Usage()
		return EXIT_USAGE
	}

	return run(flags.Arg(0), assemble, save, verbose, output)
}

// run loads and executes the program at path, returning the exit code.
func run(path string, assemble, save, verbose bool, output io.Writer) int {
	inf, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, f("%v: %v not found", os.Args[0], path))
		return EXIT_NOT_FOUND
	}
	defer inf.Close()

	emu := emulator.NewEmulator(output)
	emu.Verbose = verbose

	if assemble {
		asm := &cpu.Assembler{Verbose: verbose}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Printf("%v: %v", path, err)
			return EXIT_FAILED
		}

		if save {
			err = cpu.WriteImage(output, emu.Program)
			if err != nil {
				log.Printf("%v: %v", path, err)
				return EXIT_FAILED
			}
			return EXIT_OK
		}
	} else {
		emu.Image, err = cpu.ReadImage(inf)
		if err != nil {
			log.Printf("%v: %v", path, err)
			return EXIT_FAILED
		}
	}

	err = emu.Reset()
	if err != nil {
		log.Printf("%v: %v", path, err)
		return EXIT_FAILED
	}

	err = emu.Run()
	if err != nil {
		log.Printf("%v: %v", path, err)
		return EXIT_FAILED
	}

	return EXIT_OK
}
