// Package unescape decodes and validates the contents of string, unicode
// string, and hex string literals (quotes already stripped by the cursor).
// It never fails outright: every malformed escape is reported as an
// EscapeError over the exact source byte range that produced it, and
// scanning continues so later literals in the same file still get checked.
package unescape

// Mode selects which literal grammar UnescapeLiteral applies, matching the
// three string-literal prefixes the cursor recognizes.
type Mode uint8

const (
	// Str is a plain `"..."` or `'...'` literal: full escape processing,
	// and any non-ASCII byte is an error.
	Str Mode = iota
	// UnicodeStr is a `unicode"..."` literal: full escape processing, and
	// non-ASCII UTF-8 sequences decode to their scalar value instead of
	// erroring.
	UnicodeStr
	// HexStr is a `hex"..."` literal: contents must be an even number of
	// hex digits, optionally grouped with underscores between byte pairs.
	HexStr
)

// ErrorKind enumerates every way a literal's contents can fail to decode
// cleanly. The taxonomy is exhaustive and closed: no other error shape is
// ever reported by this package.
type ErrorKind uint8

const (
	LoneSlash ErrorKind = iota
	InvalidEscape
	HexEscapeTooShort
	InvalidHexEscape
	UnicodeEscapeTooShort
	InvalidUnicodeEscape
	StrNewline
	BareCarriageReturn
	StrNonAsciiChar
	CannotSkipMultipleLines
	HexPrefix
	HexOddDigits
	HexBadUnderscore
	HexNotHexDigit
)

func (k ErrorKind) String() string {
	switch k {
	case LoneSlash:
		return "LoneSlash"
	case InvalidEscape:
		return "InvalidEscape"
	case HexEscapeTooShort:
		return "HexEscapeTooShort"
	case InvalidHexEscape:
		return "InvalidHexEscape"
	case UnicodeEscapeTooShort:
		return "UnicodeEscapeTooShort"
	case InvalidUnicodeEscape:
		return "InvalidUnicodeEscape"
	case StrNewline:
		return "StrNewline"
	case BareCarriageReturn:
		return "BareCarriageReturn"
	case StrNonAsciiChar:
		return "StrNonAsciiChar"
	case CannotSkipMultipleLines:
		return "CannotSkipMultipleLines"
	case HexPrefix:
		return "HexPrefix"
	case HexOddDigits:
		return "HexOddDigits"
	case HexBadUnderscore:
		return "HexBadUnderscore"
	case HexNotHexDigit:
		return "HexNotHexDigit"
	default:
		return "Invalid"
	}
}

// Element is one visited unit of a literal's contents: either a successfully
// decoded code point, or an error, always paired with the exact byte range
// in the original (quote-stripped) source that produced it. Ranges reported
// across successive callback invocations are monotonically non-decreasing
// and non-overlapping.
type Element struct {
	Lo, Hi int

	IsError bool
	// Codepoint is meaningful iff !IsError.
	Codepoint uint32
	// Err is meaningful iff IsError.
	Err ErrorKind
}

// Callback receives one Element per logical unit of a literal's contents.
type Callback func(Element)
