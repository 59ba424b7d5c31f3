// Package runner executes an assembled URM program with run policy
// applied: initial x register inputs and an optional external step bound.
// The machine itself never bounds a run; the runner is the caller that
// does, when asked to.
package runner

import (
	"io"

	"github.com/ezrec/urm/asm"
	"github.com/ezrec/urm/machine"
)

// Runner binds a program to its run policy.
type Runner struct {
	Verbose  bool      // If set, verbosely logs execution.
	Output   io.Writer // Destination for print and state output.
	MaxSteps int       // Fail Run after this many steps; 0 is unbounded.

	Program *asm.Program
}

// Run executes the program to completion with the x registers loaded from
// inputs, returning the final machine state.
func (run *Runner) Run(inputs ...int) (m *machine.Machine, err error) {
	m = machine.NewMachine(run.Program, inputs...)
	m.Verbose = run.Verbose
	m.Output = run.Output

	var steps int
	for !m.Done() {
		if run.MaxSteps > 0 && steps >= run.MaxSteps {
			err = ErrStepLimit(run.MaxSteps)
			return
		}
		m.Step()
		steps++
	}

	return
}
