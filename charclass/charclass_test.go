package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWhitespace(t *testing.T) {
	for _, b := range []byte{' ', '\t', '\n', '\r'} {
		assert.True(t, IsWhitespace(b), "byte %q", b)
	}
	assert.False(t, IsWhitespace('a'))
	assert.False(t, IsWhitespace(0))
}

func TestIsIDStart(t *testing.T) {
	assert.True(t, IsIDStart('a'))
	assert.True(t, IsIDStart('Z'))
	assert.True(t, IsIDStart('_'))
	assert.True(t, IsIDStart('$'))
	assert.False(t, IsIDStart('0'))
	assert.False(t, IsIDStart(' '))
}

// TestIsIDContinueInvariant enforces invariant #5 from the spec: for every
// byte b, IsIDContinue(b) <=> IsIDStart(b) || (b in [0x30,0x39]).
func TestIsIDContinueInvariant(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		want := IsIDStart(b) || (b >= 0x30 && b <= 0x39)
		assert.Equal(t, want, IsIDContinue(b), "byte %#x", b)
	}
}

func TestIsHexDigit(t *testing.T) {
	for _, b := range []byte("0123456789abcdefABCDEF") {
		assert.True(t, IsHexDigit(b), "byte %q", b)
	}
	assert.False(t, IsHexDigit('g'))
	assert.False(t, IsHexDigit('G'))
}

func TestIsIdent(t *testing.T) {
	assert.True(t, IsIdent([]byte("uint256")))
	assert.True(t, IsIdent([]byte("_private")))
	assert.True(t, IsIdent([]byte("$slot")))
	assert.False(t, IsIdent([]byte("")))
	assert.False(t, IsIdent([]byte("1abc")))
}
