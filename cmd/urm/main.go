// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/urm/asm"
	"github.com/ezrec/urm/runner"
)

func main() {
	var print_code bool
	var config string
	var max_steps int
	var verbose bool

	flag.BoolVar(&print_code, "p", false, "Print the assembled program, do not execute")
	flag.StringVar(&config, "config", "", "TOML config file")
	flag.IntVar(&max_steps, "max-steps", 0, "Abort execution after this many steps (0: unbounded)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalf("%v: no source file", os.Args[0])
	}

	conf, err := LoadConfig(config)
	if err != nil {
		log.Fatalf("%v: %v", config, err)
	}

	// Flags given on the command line override the config file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "max-steps":
			conf.MaxSteps = max_steps
		case "v":
			conf.Verbose = verbose
		}
	})

	source := flag.Arg(0)
	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: conf.Verbose}
	prog, err := assembler.Parse(inf)
	if err != nil {
		fatal(conf.Color, err)
	}

	if print_code {
		for n, text := range prog.Listing() {
			fmt.Printf("%4d  %v\n", n, text)
		}
		return
	}

	inputs, err := runner.ParseInputs(flag.Args()[1:])
	if err != nil {
		fatal(conf.Color, err)
	}

	run := &runner.Runner{
		Verbose:  conf.Verbose,
		Output:   os.Stdout,
		MaxSteps: conf.MaxSteps,
		Program:  prog,
	}

	m, err := run.Run(inputs...)
	if err != nil {
		fatal(conf.Color, err)
	}

	fmt.Printf("Y = %v\n", m.Registers.Y)
}

// fatal prints an error, in red when configured, and exits.
func fatal(color bool, err error) {
	if color {
		fmt.Fprintf(os.Stderr, "\x1b[31;1m%v\x1b[0m\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}
