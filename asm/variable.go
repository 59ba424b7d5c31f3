package asm

import (
	"fmt"
	"regexp"
	"strconv"
)

// VarKind classifies a register name.
type VarKind int

//go:generate go tool stringer -linecomment -type=VarKind
const (
	VAR_Y = VarKind(0) // y
	VAR_X = VarKind(1) // x
	VAR_Z = VarKind(2) // z
)

// Variable identifies a register: the scalar accumulator y, an input
// register x<N>, or a temporary register z<N> (N >= 1).
type Variable struct {
	Kind  VarKind
	Index int
}

var variableRe = regexp.MustCompile(`^([xyz])(\d*)$`)

// ParseVariable classifies a register token by its leading character.
// Indexed registers require a positive integer index.
func ParseVariable(token string) (v Variable, err error) {
	caps := variableRe.FindStringSubmatch(token)
	if caps == nil {
		err = ErrVariableInvalid(token)
		return
	}

	if caps[1] == "y" {
		if len(caps[2]) != 0 {
			err = ErrVariableInvalid(token)
			return
		}
		v = Variable{Kind: VAR_Y}
		return
	}

	index, err := strconv.Atoi(caps[2])
	if err != nil || index < 1 {
		err = ErrVariableInvalid(token)
		return
	}

	switch caps[1] {
	case "x":
		v = Variable{Kind: VAR_X, Index: index}
	case "z":
		v = Variable{Kind: VAR_Z, Index: index}
	}

	return
}

// String returns the source form of the register name.
func (v Variable) String() string {
	if v.Kind == VAR_Y {
		return "y"
	}
	return fmt.Sprintf("%v%d", v.Kind, v.Index)
}
