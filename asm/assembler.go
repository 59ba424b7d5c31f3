// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/urm/internal"
)

// Assembler is the two-pass macro assembler for URM source text. The
// zero value is ready to use; Parse resets all state.
//
// During expansion the Assembler is the shared mutable context: the label
// table and the freshness counters are threaded through every recursive
// expansion call, which is what makes the hygiene guarantee structural.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	instructions []Instruction
	labels       map[Label]int
	macros       []*Macro // Definition order; first match wins.

	maxTemp  int              // Highest z<N> referenced or generated.
	maxLabel [GROUP_COUNT]int // Highest label number per group; -1 if none.
}

var (
	tempScanRe  = regexp.MustCompile(`\bz(\d+)\b`)
	labelScanRe = regexp.MustCompile(`\b([A-E])(\d+)\b`)
	bracketRe   = regexp.MustCompile(`^\[(\w+)\]\s*`)
	autoLabelRe = regexp.MustCompile(`%([A-E])(\d+)`)
	autoTempRe  = regexp.MustCompile(`\$(\w+)`)
)

// numberedLines yields (line number, raw text) for the built-in prologue
// followed by the user source. User lines count from 0; the prologue
// occupies the line numbers before it.
func numberedLines(prologue, user []string) iter.Seq2[int, string] {
	return internal.IterSeq2Concat(
		internal.IterSeq2Index(-len(prologue), prologue),
		internal.IterSeq2Index(0, user),
	)
}

// Parse assembles the built-in prologue followed by the user source into a
// Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var user []string
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		user = append(user, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	asm.instructions = asm.instructions[:0]
	asm.labels = make(map[Label]int)
	asm.macros = asm.macros[:0]
	asm.maxTemp = 0
	for group := range asm.maxLabel {
		asm.maxLabel[group] = -1
	}

	lines := numberedLines(strings.Split(Prologue, "\n"), user)

	// Pass 1: seed the freshness counters from the raw, pre-expansion
	// text, so generated names can never collide with anything written
	// literally anywhere in the source.
	for _, text := range lines {
		for _, caps := range tempScanRe.FindAllStringSubmatch(text, -1) {
			n, _ := strconv.Atoi(caps[1])
			asm.maxTemp = max(asm.maxTemp, n)
		}
		for _, caps := range labelScanRe.FindAllStringSubmatch(text, -1) {
			group := Group(caps[1][0] - 'A')
			n, _ := strconv.Atoi(caps[2])
			asm.maxLabel[group] = max(asm.maxLabel[group], n)
		}
	}

	var lineno int
	var line string
	var open *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	// Pass 2: assemble in order.
	for lineno, line = range lines {
		line = strings.Join(strings.Fields(line), " ")
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		if asm.Verbose {
			log.Printf("asm: %d: %v", lineno, line)
		}

		if strings.HasPrefix(line, "@") {
			open, err = asm.directive(line, open)
			if err != nil {
				return
			}
			continue
		}

		if open != nil {
			open.Lines = append(open.Lines, line)
			continue
		}

		err = asm.assembleLine(line)
		if err != nil {
			return
		}
	}

	if open != nil {
		err = ErrMacroLonely
		return
	}

	prog = &Program{
		Instructions: slices.Clone(asm.instructions),
		Labels:       maps.Clone(asm.labels),
		Macros:       slices.Clone(asm.macros),
		MaxTemp:      asm.maxTemp,
		MaxLabel:     asm.maxLabel,
	}

	return
}

// directive processes one @-prefixed line, tracking at most one open macro
// definition.
func (asm *Assembler) directive(line string, open *Macro) (still *Macro, err error) {
	still = open

	words := strings.Split(line, " ")
	switch words[0] {
	case "@def":
		if open != nil {
			err = ErrMacroNesting
			return
		}
		still = CompileMacro(strings.Join(words[1:], " "))
		asm.macros = append(asm.macros, still)
	case "@end":
		if open == nil {
			err = ErrMacroLonelyEnd
			return
		}
		still = nil
	default:
		err = ErrDirectiveUnknown
	}

	return
}

// assembleLine assembles a single line outside any macro definition. A line
// matching neither a primitive nor a macro is a fatal error here, unlike
// during nested expansion.
func (asm *Assembler) assembleLine(line string) (err error) {
	line, err = asm.findLabel(line)
	if err != nil {
		return
	}

	inst, ok, err := ParseInstruction(line)
	if err != nil {
		return
	}
	if ok {
		asm.instructions = append(asm.instructions, inst)
		return
	}

	for _, m := range asm.macros {
		subs, matched := m.Match(line)
		if matched {
			return asm.expand(m, subs)
		}
	}

	return ErrNoMatch(line)
}

// findLabel strips a leading [Name] label, binding it to the next
// instruction position. Redefining a label anywhere in the assembled source
// is an error.
func (asm *Assembler) findLabel(line string) (rest string, err error) {
	rest = line

	caps := bracketRe.FindStringSubmatch(line)
	if caps == nil {
		return
	}

	label, err := ParseLabel(caps[1])
	if err != nil {
		return
	}

	if _, ok := asm.labels[label]; ok {
		err = ErrLabelRedefined(label)
		return
	}

	asm.labels[label] = len(asm.instructions)
	rest = strings.TrimPrefix(line, caps[0])
	return
}

// expand recursively expands a matched macro. Automatic labels and temp
// variables are memoized per token for the duration of this expansion and
// allocated from the shared freshness counters, so no two expansions ever
// share a generated name.
func (asm *Assembler) expand(m *Macro, subs map[string]string) (err error) {
	autoLabels := map[string]string{}
	autoTemps := map[string]string{}

	if asm.Verbose {
		log.Printf("asm: expand '%v' %v", m.Header, subs)
	}

	defer func() {
		if err != nil {
			err = &ErrMacro{Header: m.Header, Err: err}
		}
	}()

	for _, text := range m.Lines {
		// Allocate automatic labels (%<Group><Number>).
		line := autoLabelRe.ReplaceAllStringFunc(text, func(token string) string {
			label, seen := autoLabels[token]
			if !seen {
				group := Group(token[1] - 'A')
				asm.maxLabel[group]++
				label = Label{Group: group, Number: asm.maxLabel[group]}.String()
				autoLabels[token] = label
			}
			return label
		})

		line, err = asm.findLabel(line)
		if err != nil {
			return
		}

		// Substitute captured placeholder text.
		line = substituteWords(line, subs)

		// Allocate automatic temp variables ($name).
		line = autoTempRe.ReplaceAllStringFunc(line, func(token string) string {
			temp, seen := autoTemps[token]
			if !seen {
				asm.maxTemp++
				temp = fmt.Sprintf("z%d", asm.maxTemp)
				autoTemps[token] = temp
			}
			return temp
		})

		var inst Instruction
		var ok bool
		inst, ok, err = ParseInstruction(line)
		if err != nil {
			return
		}
		if ok {
			asm.instructions = append(asm.instructions, inst)
			continue
		}

		for _, inner := range asm.macros {
			innerSubs, matched := inner.Match(line)
			if matched {
				err = asm.expand(inner, innerSubs)
				if err != nil {
					return
				}
				break
			}
		}
		// A nested line matching nothing is dropped without diagnostic.
	}

	return
}
