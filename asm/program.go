package asm

import (
	"fmt"
	"iter"
	"slices"
)

// Program is an assembled URM program: the flat instruction array, the
// label table, the macro definitions in first-match-wins order, and the
// freshness counters as of the end of assembly. Immutable once built.
type Program struct {
	Instructions []Instruction
	Labels       map[Label]int
	Macros       []*Macro

	MaxTemp  int
	MaxLabel [GROUP_COUNT]int
}

// LabelsAt returns the labels bound to an instruction index, in key order.
func (prog *Program) LabelsAt(index int) (labels []Label) {
	for label, n := range prog.Labels {
		if n == index {
			labels = append(labels, label)
		}
	}
	slices.SortFunc(labels, func(a, b Label) int { return a.Key() - b.Key() })
	return
}

// Listing yields the label-annotated source form of every assembled
// instruction.
func (prog *Program) Listing() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for n, inst := range prog.Instructions {
			var text string
			for _, label := range prog.LabelsAt(n) {
				text += fmt.Sprintf("[%v] ", label)
			}
			text += inst.String()
			if !yield(n, text) {
				return
			}
		}
	}
}
