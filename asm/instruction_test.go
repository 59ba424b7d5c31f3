package asm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInstructionIncrement(t *testing.T) {
	assert := assert.New(t)

	for _, n := range []int{1, 2, 7, 40} {
		line := fmt.Sprintf("x%d <- x%d + 1", n, n)
		inst, ok, err := ParseInstruction(line)
		assert.NoError(err)
		assert.True(ok, line)
		assert.Equal(Instruction{Op: OP_INC, Var: Variable{Kind: VAR_X, Index: n}}, inst)
	}

	// Whitespace-insensitive around the operators.
	inst, ok, err := ParseInstruction("y<-y+1")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(Instruction{Op: OP_INC, Var: Variable{Kind: VAR_Y}}, inst)

	// Different registers on the two sides are not an increment; the line
	// falls through to macro matching.
	_, ok, err = ParseInstruction("x1 <- x2 + 1")
	assert.NoError(err)
	assert.False(ok)

	// x0 matches the grammar but is not a register.
	_, _, err = ParseInstruction("x0 <- x0 + 1")
	assert.Error(err)
}

func TestParseInstructionDecrement(t *testing.T) {
	assert := assert.New(t)

	inst, ok, err := ParseInstruction("z2 <- z2 - 1")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(Instruction{Op: OP_DEC, Var: Variable{Kind: VAR_Z, Index: 2}}, inst)

	// Decrement requires the identical variable on both sides.
	_, ok, err = ParseInstruction("x1 <- x2 - 1")
	assert.NoError(err)
	assert.False(ok)
}

func TestParseInstructionJump(t *testing.T) {
	assert := assert.New(t)

	inst, ok, err := ParseInstruction("if z2 != 0 goto B3")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(Instruction{
		Op:  OP_JNZ,
		Var: Variable{Kind: VAR_Z, Index: 2},
		To:  Label{Group: GROUP_B, Number: 3},
	}, inst)

	inst, ok, err = ParseInstruction("if y!=0 goto A0")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(OP_JNZ, inst.Op)

	// A malformed jump target is an error, not a fall-through.
	_, _, err = ParseInstruction("if y != 0 goto foo")
	assert.Error(err)
}

func TestParseInstructionEffects(t *testing.T) {
	assert := assert.New(t)

	inst, ok, err := ParseInstruction("nop")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(Instruction{Op: OP_NOP}, inst)

	inst, ok, err = ParseInstruction("print x3")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(Instruction{Op: OP_PRINT, Var: Variable{Kind: VAR_X, Index: 3}}, inst)

	inst, ok, err = ParseInstruction("state")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(Instruction{Op: OP_STATE}, inst)

	for _, line := range []string{"", "nop nop", "print", "state y", "y <- y + 2"} {
		_, ok, err = ParseInstruction(line)
		assert.NoError(err, line)
		assert.False(ok, line)
	}
}

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		inst Instruction
		text string
	}{
		{Instruction{Op: OP_INC, Var: Variable{Kind: VAR_Y}}, "y <- y + 1"},
		{Instruction{Op: OP_DEC, Var: Variable{Kind: VAR_Z, Index: 4}}, "z4 <- z4 - 1"},
		{Instruction{Op: OP_JNZ, Var: Variable{Kind: VAR_X, Index: 1}, To: Label{Group: GROUP_A, Number: 0}}, "if x1 != 0 goto A0"},
		{Instruction{Op: OP_NOP}, "nop"},
		{Instruction{Op: OP_PRINT, Var: Variable{Kind: VAR_X, Index: 2}}, "print x2"},
		{Instruction{Op: OP_STATE}, "state"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.inst.String())
	}
}
