package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelStrings(t *testing.T) {
	cases := []struct {
		level Level
		want  string
	}{
		{Bug, "bug"},
		{Fatal, "fatal"},
		{Error, "error"},
		{Warning, "warning"},
		{Note, "note"},
		{OnceNote, "note"},
		{Help, "help"},
		{OnceHelp, "help"},
		{FailureNote, "error"},
		{Allow, "allow"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.level.String())
	}
}

func TestLevelIsError(t *testing.T) {
	assert.True(t, Bug.IsError())
	assert.True(t, Fatal.IsError())
	assert.True(t, Error.IsError())
	assert.True(t, FailureNote.IsError())
	assert.False(t, Warning.IsError())
	assert.False(t, Note.IsError())
	assert.False(t, Help.IsError())
	assert.False(t, Allow.IsError())
}

func TestDiagIdLintAndErrorCode(t *testing.T) {
	assert.Equal(t, "unused-variable", Lint("unused-variable").String())
	assert.Equal(t, "E0042", ErrorCode(42).String())
	assert.True(t, DiagId{}.IsZero())
	assert.False(t, Lint("x").IsZero())
}

func TestErrorCodeOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { ErrorCode(0) })
	assert.Panics(t, func() { ErrorCode(10000) })
}
