// Package charclass classifies single ASCII bytes for the cursor: whether a
// byte can start or continue an identifier, counts as whitespace, or is a
// decimal/hex digit. All predicates are branch-free table lookups and are
// only valid for ASCII input; non-ASCII bytes must be rejected or routed to
// the Unknown path by the caller before reaching these.
package charclass

const (
	flagWhitespace uint8 = 1 << iota
	flagIDStart
	flagIDContinue
	flagDecimalDigit
	flagHexDigit
)

var table [256]uint8

func init() {
	for b := 0; b < 256; b++ {
		var flags uint8
		switch byte(b) {
		case ' ', '\t', '\n', '\r':
			flags |= flagWhitespace
		}
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '_', b == '$':
			flags |= flagIDStart | flagIDContinue
		case b >= '0' && b <= '9':
			flags |= flagIDContinue | flagDecimalDigit
		}
		switch {
		case b >= '0' && b <= '9', b >= 'a' && b <= 'f', b >= 'A' && b <= 'F':
			flags |= flagHexDigit
		}
		table[b] = flags
	}
}

// IsWhitespace reports whether b is space, tab, LF, or CR.
func IsWhitespace(b byte) bool { return table[b]&flagWhitespace != 0 }

// IsIDStart reports whether b can begin an identifier: ASCII letter,
// underscore, or dollar sign.
func IsIDStart(b byte) bool { return table[b]&flagIDStart != 0 }

// IsIDContinue reports whether b can continue an identifier: anything
// IsIDStart accepts, plus ASCII digits.
func IsIDContinue(b byte) bool { return table[b]&flagIDContinue != 0 }

// IsDecimalDigit reports whether b is an ASCII decimal digit.
func IsDecimalDigit(b byte) bool { return table[b]&flagDecimalDigit != 0 }

// IsHexDigit reports whether b is an ASCII hex digit (either case).
func IsHexDigit(b byte) bool { return table[b]&flagHexDigit != 0 }

// IsIdent reports whether s is a non-empty byte slice whose first byte
// satisfies IsIDStart and whose remaining bytes all satisfy IsIDContinue.
func IsIdent(s []byte) bool {
	if len(s) == 0 || !IsIDStart(s[0]) {
		return false
	}
	for _, b := range s[1:] {
		if !IsIDContinue(b) {
			return false
		}
	}
	return true
}
