package asm

import (
	"errors"

	"github.com/ezrec/urm/translate"
)

var f = translate.From

var (
	// Directive errors
	ErrMacroNesting     = errors.New(f("@def inside @def prohibited"))
	ErrMacroLonely      = errors.New(f("@def without @end"))
	ErrMacroLonelyEnd   = errors.New(f("@end without @def"))
	ErrDirectiveUnknown = errors.New(f("unknown directive"))
)

// ErrSyntax locates an assembly failure in the source text. User lines
// count from 0; negative line numbers refer to the built-in prologue.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrMacro locates an assembly failure inside a macro expansion.
type ErrMacro struct {
	Header string
	Err    error
}

func (err ErrMacro) Error() string {
	return f("macro '%v' %v", err.Header, err.Err)
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}

type ErrVariableInvalid string

func (err ErrVariableInvalid) Error() string {
	return f("'%v' is not a variable", string(err))
}

type ErrLabelInvalid string

func (err ErrLabelInvalid) Error() string {
	return f("'%v' is not a label", string(err))
}

type ErrLabelRedefined Label

func (err ErrLabelRedefined) Error() string {
	return f("label %v redefined", Label(err))
}

type ErrNoMatch string

func (err ErrNoMatch) Error() string {
	return f("'%v' is not an instruction or macro", string(err))
}
