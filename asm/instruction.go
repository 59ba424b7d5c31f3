package asm

import (
	"fmt"
	"regexp"
)

// Op is a primitive operation type.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_INC   = Op(0) // inc
	OP_DEC   = Op(1) // dec
	OP_JNZ   = Op(2) // jnz
	OP_NOP   = Op(3) // nop
	OP_PRINT = Op(4) // print
	OP_STATE = Op(5) // state
)

// Instruction is a single primitive machine operation, immutable once
// assembled. Var is unused for nop and state; To is used by jnz only.
type Instruction struct {
	Op  Op
	Var Variable
	To  Label
}

// String returns the source form of the instruction.
func (inst Instruction) String() string {
	switch inst.Op {
	case OP_INC:
		return fmt.Sprintf("%v <- %v + 1", inst.Var, inst.Var)
	case OP_DEC:
		return fmt.Sprintf("%v <- %v - 1", inst.Var, inst.Var)
	case OP_JNZ:
		return fmt.Sprintf("if %v != 0 goto %v", inst.Var, inst.To)
	case OP_PRINT:
		return fmt.Sprintf("print %v", inst.Var)
	}
	return inst.Op.String()
}

const varPat = `(y|[xz]\d+)`

// primitive is one entry of the ordered primitive grammar table. build
// reports ok=false when the captured text is not this primitive after all
// (e.g. different registers on the two sides of an increment), letting the
// line fall through to macro matching.
type primitive struct {
	pattern *regexp.Regexp
	build   func(caps []string) (Instruction, bool, error)
}

var primitives = []primitive{
	{
		pattern: regexp.MustCompile(`^` + varPat + `\s*<-\s*` + varPat + `\s*\+\s*1$`),
		build: func(caps []string) (inst Instruction, ok bool, err error) {
			if caps[1] != caps[2] {
				return
			}
			v, err := ParseVariable(caps[1])
			if err != nil {
				return
			}
			inst, ok = Instruction{Op: OP_INC, Var: v}, true
			return
		},
	},
	{
		pattern: regexp.MustCompile(`^` + varPat + `\s*<-\s*` + varPat + `\s*-\s*1$`),
		build: func(caps []string) (inst Instruction, ok bool, err error) {
			if caps[1] != caps[2] {
				return
			}
			v, err := ParseVariable(caps[1])
			if err != nil {
				return
			}
			inst, ok = Instruction{Op: OP_DEC, Var: v}, true
			return
		},
	},
	{
		pattern: regexp.MustCompile(`^if\s+` + varPat + `\s*!=\s*0\s+goto\s+(\w+)$`),
		build: func(caps []string) (inst Instruction, ok bool, err error) {
			v, err := ParseVariable(caps[1])
			if err != nil {
				return
			}
			to, err := ParseLabel(caps[2])
			if err != nil {
				return
			}
			inst, ok = Instruction{Op: OP_JNZ, Var: v, To: to}, true
			return
		},
	},
	{
		pattern: regexp.MustCompile(`^nop$`),
		build: func(caps []string) (inst Instruction, ok bool, err error) {
			inst, ok = Instruction{Op: OP_NOP}, true
			return
		},
	},
	{
		pattern: regexp.MustCompile(`^print\s+` + varPat + `$`),
		build: func(caps []string) (inst Instruction, ok bool, err error) {
			v, err := ParseVariable(caps[1])
			if err != nil {
				return
			}
			inst, ok = Instruction{Op: OP_PRINT, Var: v}, true
			return
		},
	},
	{
		pattern: regexp.MustCompile(`^state$`),
		build: func(caps []string) (inst Instruction, ok bool, err error) {
			inst, ok = Instruction{Op: OP_STATE}, true
			return
		},
	},
}

// ParseInstruction tries each primitive grammar in definition order against
// a whole line. ok reports whether any grammar accepted the line; a grammar
// match with a malformed operand is an error.
func ParseInstruction(line string) (inst Instruction, ok bool, err error) {
	for _, prim := range primitives {
		caps := prim.pattern.FindStringSubmatch(line)
		if caps == nil {
			continue
		}
		inst, ok, err = prim.build(caps)
		if ok || err != nil {
			return
		}
	}

	return
}
