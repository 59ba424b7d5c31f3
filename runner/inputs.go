package runner

import (
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ParseInputs evaluates initial x register values. Plain integers are taken
// as-is; anything else is evaluated as a Starlark expression that must
// produce a non-negative integer.
func ParseInputs(args []string) (inputs []int, err error) {
	for _, arg := range args {
		var value int
		value, err = parseInput(arg)
		if err != nil {
			return
		}
		inputs = append(inputs, value)
	}

	return
}

func parseInput(arg string) (value int, err error) {
	value, err = strconv.Atoi(arg)
	if err == nil && value >= 0 {
		return
	}

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	result, err := starlark.EvalOptions(&opts, &thread, "<input>", arg, starlark.StringDict{})
	if err != nil {
		err = ErrParseInput(arg)
		return
	}

	st_int, ok := result.(starlark.Int)
	if !ok {
		err = ErrParseInput(arg)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 {
		err = ErrParseInput(arg)
		return
	}

	value = int(st_int64)
	return
}
