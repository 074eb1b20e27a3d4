package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWithinByte(t *testing.T) {
	assert.LessOrEqual(t, Count, 255)
}

func TestFromIndexRoundTrips(t *testing.T) {
	for i := 0; i < Count; i++ {
		b, ok := FromIndex(i)
		assert.True(t, ok, "index %d", i)
		assert.Equal(t, Builtin(i), b)
	}
	_, ok := FromIndex(Count)
	assert.False(t, ok)
	_, ok = FromIndex(-1)
	assert.False(t, ok)
}

func TestGlobalRange(t *testing.T) {
	var got []string
	for b := range Global() {
		got = append(got, b.Name())
	}
	want := []string{
		"blockhash", "blobhash", "gasleft", "selfdestruct", "assert",
		"require", "revert", "addmod", "mulmod", "keccak256", "sha256",
		"ripemd160", "ecrecover", "block", "msg", "tx", "abi",
	}
	assert.Equal(t, want, got)
}

func TestNamespaceMarkersAreNamespaceKind(t *testing.T) {
	for _, b := range []Builtin{Block, Msg, Tx, Abi} {
		assert.Equal(t, Namespace, b.Kind(), "%s", b.Name())
	}
}

func TestNonNamespaceBuiltinsAreFunctionKind(t *testing.T) {
	for b := range Global() {
		if b == Block || b == Msg || b == Tx || b == Abi {
			continue
		}
		assert.Equal(t, Function, b.Kind(), "%s", b.Name())
	}
}

func TestMembersRanges(t *testing.T) {
	tests := []struct {
		ns   Builtin
		want []string
	}{
		{Block, []string{"coinbase", "timestamp", "difficulty", "prevrandao", "number", "gaslimit", "chainid", "basefee", "blobbasefee"}},
		{Msg, []string{"sender", "gas", "value", "data", "sig"}},
		{Tx, []string{"origin", "gasprice"}},
		{Abi, []string{"encode", "encodePacked", "encodeWithSelector", "encodeCall", "encodeWithSignature", "decode"}},
	}
	for _, tt := range tests {
		var got []string
		for b := range Members(tt.ns) {
			got = append(got, b.Name())
		}
		assert.Equal(t, tt.want, got, "%s", tt.ns.Name())
	}
}

func TestThisAndSuperAreNamedButNotInAnyRange(t *testing.T) {
	assert.Equal(t, "this", This.Name())
	assert.Equal(t, "super", Super.Name())
	assert.Equal(t, Function, This.Kind())
	assert.Equal(t, Function, Super.Kind())

	for b := range Global() {
		assert.NotEqual(t, This, b)
		assert.NotEqual(t, Super, b)
	}
	for _, ns := range []Builtin{Block, Msg, Tx, Abi} {
		for b := range Members(ns) {
			assert.NotEqual(t, This, b)
			assert.NotEqual(t, Super, b)
		}
	}
}

func TestMembersEmptyForNonNamespace(t *testing.T) {
	count := 0
	for range Members(Assert) {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestEveryBuiltinHasAName(t *testing.T) {
	for i := 0; i < Count; i++ {
		b, _ := FromIndex(i)
		assert.NotEmpty(t, b.Name(), "index %d", i)
	}
}
