// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package machine executes assembled URM programs: a fetch-decode-execute
// loop over the instruction array. Execution never fails; decrement
// saturates at zero and a jump to an undefined label halts the machine.
package machine

import (
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/ezrec/urm/asm"
)

// Registers is the URM register file: the scalar accumulator y and the
// growable x and z register sequences, indexed from 1. No register value is
// ever negative.
type Registers struct {
	Y int
	X []int
	Z []int
}

// Get reads a register. Reading past the end of a sequence yields 0 without
// growing it.
func (regs *Registers) Get(v asm.Variable) int {
	switch v.Kind {
	case asm.VAR_Y:
		return regs.Y
	case asm.VAR_X:
		if v.Index <= len(regs.X) {
			return regs.X[v.Index-1]
		}
	case asm.VAR_Z:
		if v.Index <= len(regs.Z) {
			return regs.Z[v.Index-1]
		}
	}
	return 0
}

// Set writes a register, growing the sequence as needed with zero fill.
func (regs *Registers) Set(v asm.Variable, value int) {
	switch v.Kind {
	case asm.VAR_Y:
		regs.Y = value
	case asm.VAR_X:
		for v.Index > len(regs.X) {
			regs.X = append(regs.X, 0)
		}
		regs.X[v.Index-1] = value
	case asm.VAR_Z:
		for v.Index > len(regs.Z) {
			regs.Z = append(regs.Z, 0)
		}
		regs.Z[v.Index-1] = value
	}
}

// Machine is the execution state for a single run of a program.
type Machine struct {
	Verbose bool      // If set, verbosely logs each executed instruction.
	Output  io.Writer // Destination for print and state output; nil discards.

	Program   *asm.Program
	Registers Registers
	Pc        int
}

// NewMachine creates a machine for a program with the x registers loaded
// from inputs.
func NewMachine(prog *asm.Program, inputs ...int) (m *Machine) {
	m = &Machine{
		Program:   prog,
		Registers: Registers{X: slices.Clone(inputs)},
	}

	return
}

// Done reports whether the machine has halted.
func (m *Machine) Done() bool {
	return m.Pc >= len(m.Program.Instructions)
}

// Step executes a single instruction.
func (m *Machine) Step() {
	if m.Done() {
		return
	}

	inst := m.Program.Instructions[m.Pc]
	if m.Verbose {
		log.Printf("machine: %d: %v", m.Pc, inst)
	}

	switch inst.Op {
	case asm.OP_INC:
		m.Registers.Set(inst.Var, m.Registers.Get(inst.Var)+1)
	case asm.OP_DEC:
		// Saturates at zero; never underflows, never fails.
		if value := m.Registers.Get(inst.Var); value > 0 {
			m.Registers.Set(inst.Var, value-1)
		}
	case asm.OP_JNZ:
		if m.Registers.Get(inst.Var) > 0 {
			// A jump to an undefined label halts the machine.
			index, ok := m.Program.Labels[inst.To]
			if !ok {
				index = len(m.Program.Instructions)
			}
			m.Pc = index
			return
		}
	case asm.OP_NOP:
		// pass
	case asm.OP_PRINT:
		m.emit("%v = %v\n", inst.Var, m.Registers.Get(inst.Var))
	case asm.OP_STATE:
		m.emit("%v", m)
	}

	m.Pc++
}

// Run steps the machine until it halts. A program that never halts never
// returns; bounding the run is the caller's concern.
func (m *Machine) Run() {
	for !m.Done() {
		m.Step()
	}
}

func (m *Machine) emit(format string, args ...any) {
	if m.Output != nil {
		fmt.Fprintf(m.Output, format, args...)
	}
}

// String returns the current register file and program counter as a string.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("%4v: %v\n", "y", m.Registers.Y)
	for n, value := range m.Registers.X {
		text += fmt.Sprintf("%4v: %v\n", fmt.Sprintf("x%d", n+1), value)
	}
	for n, value := range m.Registers.Z {
		text += fmt.Sprintf("%4v: %v\n", fmt.Sprintf("z%d", n+1), value)
	}
	text += fmt.Sprintf("%4v: %v\n", "pc", m.Pc)

	return
}
