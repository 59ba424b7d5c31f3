package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVariable(t *testing.T) {
	assert := assert.New(t)

	v, err := ParseVariable("y")
	assert.NoError(err)
	assert.Equal(Variable{Kind: VAR_Y}, v)
	assert.Equal("y", v.String())

	v, err = ParseVariable("x12")
	assert.NoError(err)
	assert.Equal(Variable{Kind: VAR_X, Index: 12}, v)
	assert.Equal("x12", v.String())

	v, err = ParseVariable("z3")
	assert.NoError(err)
	assert.Equal(Variable{Kind: VAR_Z, Index: 3}, v)
	assert.Equal("z3", v.String())

	for _, token := range []string{"", "w1", "x", "z", "x0", "z0", "y1", "xz1", "x-1", "A0"} {
		_, err = ParseVariable(token)
		assert.Error(err, token)
	}
}

func TestParseLabel(t *testing.T) {
	assert := assert.New(t)

	l, err := ParseLabel("A0")
	assert.NoError(err)
	assert.Equal(Label{Group: GROUP_A, Number: 0}, l)
	assert.Equal("A0", l.String())

	l, err = ParseLabel("E15")
	assert.NoError(err)
	assert.Equal(Label{Group: GROUP_E, Number: 15}, l)
	assert.Equal("E15", l.String())

	for _, token := range []string{"", "F0", "a0", "A", "A-1", "A0x", "0A"} {
		_, err = ParseLabel(token)
		assert.Error(err, token)
	}
}

func TestLabelKey(t *testing.T) {
	assert := assert.New(t)

	// Keys are unique and totally ordered: all number-0 labels sort below
	// all number-1 labels, grouped A..E within a number.
	assert.Equal(0, Label{Group: GROUP_A, Number: 0}.Key())
	assert.Equal(4, Label{Group: GROUP_E, Number: 0}.Key())
	assert.Equal(5, Label{Group: GROUP_A, Number: 1}.Key())
	assert.Equal(11, Label{Group: GROUP_B, Number: 2}.Key())

	keys := map[int]bool{}
	for number := range 4 {
		for group := range Group(GROUP_COUNT) {
			key := Label{Group: group, Number: number}.Key()
			assert.False(keys[key])
			keys[key] = true
		}
	}
}
