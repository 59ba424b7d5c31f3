package runner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInputs(t *testing.T) {
	assert := assert.New(t)

	inputs, err := ParseInputs(nil)
	assert.NoError(err)
	assert.Equal(0, len(inputs))

	inputs, err = ParseInputs([]string{"5", "0", "12"})
	assert.NoError(err)
	assert.Equal([]int{5, 0, 12}, inputs)

	// Non-literal arguments are evaluated as Starlark expressions.
	inputs, err = ParseInputs([]string{"2*3", "2**4", "1+2+3"})
	assert.NoError(err)
	assert.Equal([]int{6, 16, 6}, inputs)

	for _, arg := range []string{"-3", "0-5", "foo", "1.5", `"text"`} {
		_, err = ParseInputs([]string{arg})
		assert.Error(err, arg)

		var pe ErrParseInput
		assert.True(errors.As(err, &pe), arg)
		assert.Equal(arg, string(pe), arg)
	}
}
