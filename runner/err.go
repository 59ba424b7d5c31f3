package runner

import (
	"github.com/ezrec/urm/translate"
)

var f = translate.From

// ErrStepLimit indicates the configured step bound was exceeded.
type ErrStepLimit int

func (err ErrStepLimit) Error() string {
	return f("step limit %v exceeded", int(err))
}

// ErrParseInput indicates an input expression did not produce a
// non-negative integer.
type ErrParseInput string

func (err ErrParseInput) Error() string {
	return f("'%v' is not a non-negative integer", string(err))
}
