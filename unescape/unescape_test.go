package unescape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gotError struct {
	lo, hi int
	kind   ErrorKind
}

func collect(src []byte, mode Mode) (string, []gotError) {
	var errs []gotError
	out := TryParseStringLiteral(src, mode, func(lo, hi int, kind ErrorKind) {
		errs = append(errs, gotError{lo, hi, kind})
	})
	return string(out), errs
}

func TestLoneSlash(t *testing.T) {
	out, errs := collect([]byte(`\`), Str)
	assert.Equal(t, "", out)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{0, 1, LoneSlash}, errs[0])
}

func TestHexEscapeTooShortAtEOF(t *testing.T) {
	out, errs := collect([]byte(`\x`), Str)
	assert.Equal(t, "", out)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{0, 2, HexEscapeTooShort}, errs[0])
}

func TestHexEscapeDecodesToCodepoint(t *testing.T) {
	out, errs := collect([]byte(`\xE8`), Str)
	assert.Equal(t, "è", out)
	assert.Empty(t, errs)
}

func TestBareCRLF(t *testing.T) {
	out, errs := collect([]byte("\r\n"), Str)
	assert.Equal(t, "", out)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{1, 2, StrNewline}, errs[0])
}

func TestLineContinuationSkipsWhitespaceThenResumes(t *testing.T) {
	out, errs := collect([]byte("\\\n \t a\n"), Str)
	assert.Equal(t, "a", out)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{6, 7, StrNewline}, errs[0])
}

func TestLineContinuationEmbeddedNewlineReportsCannotSkipMultipleLines(t *testing.T) {
	out, errs := collect([]byte("\\\n\na\\\nb"), Str)
	assert.Equal(t, "ab", out)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{2, 3, CannotSkipMultipleLines}, errs[0])
}

func TestSimpleEscapes(t *testing.T) {
	out, errs := collect([]byte(`a\nb\tc\rd\\e\'f\"g`), Str)
	assert.Empty(t, errs)
	assert.Equal(t, "a\nb\tc\rd\\e'f\"g", out)
}

func TestInvalidEscape(t *testing.T) {
	out, errs := collect([]byte(`\q`), Str)
	assert.Equal(t, "", out)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{0, 2, InvalidEscape}, errs[0])
}

func TestUnicodeEscapeTooShort(t *testing.T) {
	_, errs := collect([]byte(`\u12`), Str)
	require.Len(t, errs, 1)
	assert.Equal(t, UnicodeEscapeTooShort, errs[0].kind)
}

func TestInvalidUnicodeEscape(t *testing.T) {
	_, errs := collect([]byte(`\u12zz`), Str)
	require.Len(t, errs, 1)
	assert.Equal(t, InvalidUnicodeEscape, errs[0].kind)
}

// TestScenarioS8 checks `"a\nb"` with Str mode -> bytes "a\nb", no errors.
func TestScenarioS8(t *testing.T) {
	out, errs := collect([]byte(`a\nb`), Str)
	assert.Equal(t, "a\nb", out)
	assert.Empty(t, errs)
}

// TestScenarioS9 checks `"\x"` with Str mode -> 0 bytes, (0..2, HexEscapeTooShort).
func TestScenarioS9(t *testing.T) {
	out, errs := collect([]byte(`\x`), Str)
	assert.Equal(t, "", out)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{0, 2, HexEscapeTooShort}, errs[0])
}

// TestScenarioS10 checks `"è"`: Str mode errors StrNonAsciiChar over (0..2);
// UnicodeStr mode decodes to "è".
func TestScenarioS10(t *testing.T) {
	src := []byte("è") // 2-byte UTF-8 sequence
	out, errs := collect(src, Str)
	assert.Equal(t, "", out)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{0, 2, StrNonAsciiChar}, errs[0])

	out, errs = collect(src, UnicodeStr)
	assert.Equal(t, "è", out)
	assert.Empty(t, errs)
}

func TestMalformedUTF8DoesNotPanic(t *testing.T) {
	src := []byte{0xFF, 'a'}
	assert.NotPanics(t, func() {
		_, errs := collect(src, Str)
		require.Len(t, errs, 1)
		assert.Equal(t, gotError{0, 1, StrNonAsciiChar}, errs[0])
	})
}

func TestFastPathAliasesInputForAlreadyCleanStr(t *testing.T) {
	src := []byte("plain ascii, no escapes")
	out := TryParseStringLiteral(src, Str, nil)
	assert.Equal(t, string(src), string(out))
	assert.True(t, &src[0] == &out[0], "fast-path result should share src's backing array")
}

// TestScenarioS7 checks hex"DEAD_beef" -> bytes [0xDE,0xAD,0xBE,0xEF].
func TestScenarioS7(t *testing.T) {
	out, errs := collect([]byte("DEAD_beef"), HexStr)
	assert.Empty(t, errs)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, []byte(out))
}

func TestHexPrefixReportedAndSkipped(t *testing.T) {
	_, errs := collect([]byte("0x11"), HexStr)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{0, 2, HexPrefix}, errs[0])
}

func TestHexOddDigitsSpansWholeSource(t *testing.T) {
	out, errs := collect([]byte("abc"), HexStr)
	assert.Equal(t, "", out)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{0, 3, HexOddDigits}, errs[0])
}

func TestHexBadUnderscoreLeading(t *testing.T) {
	out, errs := collect([]byte("_11_"), HexStr)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{0, 1, HexBadUnderscore}, errs[0])
	assert.Equal(t, []byte{0x11}, []byte(out))
}

func TestHexBadUnderscoreTrailingDouble(t *testing.T) {
	_, errs := collect([]byte("11__"), HexStr)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{3, 4, HexBadUnderscore}, errs[0])
}

func TestHexBadUnderscoreMidPair(t *testing.T) {
	out, errs := collect([]byte("1_2"), HexStr)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{1, 2, HexBadUnderscore}, errs[0])
	assert.Equal(t, []byte{0x12}, []byte(out))
}

func TestHexBadUnderscoreTrailingSingleAfterValidPair(t *testing.T) {
	out, errs := collect([]byte("11_"), HexStr)
	require.Len(t, errs, 1)
	assert.Equal(t, gotError{2, 3, HexBadUnderscore}, errs[0])
	assert.Equal(t, []byte{0x11}, []byte(out))
}

func TestHexNotHexDigitPerOccurrence(t *testing.T) {
	_, errs := collect([]byte("1g2h"), HexStr)
	require.Len(t, errs, 2)
	assert.Equal(t, HexNotHexDigit, errs[0].kind)
	assert.Equal(t, HexNotHexDigit, errs[1].kind)
}

func TestHexFastPathForAlreadyCleanInput(t *testing.T) {
	out, errs := collect([]byte("deadbeef"), HexStr)
	assert.Empty(t, errs)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, []byte(out))
}

// TestInvariantDecodedLengthNeverExceedsSourceLength is invariant #4.
func TestInvariantDecodedLengthNeverExceedsSourceLength(t *testing.T) {
	cases := []struct {
		src  string
		mode Mode
	}{
		{`\x41`, Str},
		{`A`, Str},
		{"plain text with no escapes at all", Str},
		{"déjà vu", UnicodeStr},
		{"DEADBEEF", HexStr},
		{"0xDEADBEEF", HexStr},
	}
	for _, c := range cases {
		out := TryParseStringLiteral([]byte(c.src), c.mode, nil)
		assert.LessOrEqual(t, len(out), len(c.src), "src=%q", c.src)
	}
}
