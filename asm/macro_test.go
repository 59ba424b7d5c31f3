package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileMacro(t *testing.T) {
	assert := assert.New(t)

	m := CompileMacro("{v} <- {a} + {b}")
	assert.Equal(map[string]int{"v": 0, "a": 1, "b": 2}, m.Params)

	subs, ok := m.Match("y <- x1 + z2")
	assert.True(ok)
	assert.Equal(map[string]string{"v": "y", "a": "x1", "b": "z2"}, subs)

	// The literal '+' matches literally, not as a pattern operator.
	_, ok = m.Match("y <- x1  z2")
	assert.False(ok)
	_, ok = m.Match("y <- x1 - z2")
	assert.False(ok)

	// The match is anchored to the whole line.
	_, ok = m.Match("say y <- x1 + z2 now")
	assert.False(ok)
}

func TestCompileMacroRepeatedPlaceholder(t *testing.T) {
	assert := assert.New(t)

	m := CompileMacro("twice {v} {v}")
	assert.Equal(map[string]int{"v": 0}, m.Params)

	subs, ok := m.Match("twice x1 x1")
	assert.True(ok)
	assert.Equal(map[string]string{"v": "x1"}, subs)

	// A repeated placeholder must capture identical text at every position.
	_, ok = m.Match("twice x1 x2")
	assert.False(ok)
}

func TestSubstituteWords(t *testing.T) {
	assert := assert.New(t)

	subs := map[string]string{"v1": "x1", "v2": "y"}
	assert.Equal("x1 <- y", substituteWords("v1 <- v2", subs))

	// Whole tokens only.
	assert.Equal("v10 <- y", substituteWords("v10 <- v2", subs))

	// Substitution is a single pass: captures naming other placeholders do
	// not cascade.
	swap := map[string]string{"v1": "v2", "v2": "v1"}
	assert.Equal("v2 <- v1", substituteWords("v1 <- v2", swap))
}
