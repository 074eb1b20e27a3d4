package unescape

import (
	"unicode/utf8"

	"github.com/malik672/solar-lexcore/charclass"
)

// UnescapeLiteral visits the logical contents of a literal (quotes already
// stripped) according to mode, invoking cb once per decoded element. It
// never panics and never stops early on error: decoding resumes after every
// reported error so that one bad escape does not hide the rest of the
// literal's problems.
func UnescapeLiteral(src []byte, mode Mode, cb Callback) {
	switch mode {
	case Str, UnicodeStr:
		if !needsUnescapeStr(src, mode) {
			emitRuneFastPath(src, cb)
			return
		}
		unescapeStrSlow(src, mode == UnicodeStr, cb)
	case HexStr:
		if !needsUnescapeHex(src) {
			emitHexFastPath(src, cb)
			return
		}
		unescapeHexSlow(src, cb)
	}
}

func needsUnescapeStr(src []byte, mode Mode) bool {
	if mode == Str {
		for _, b := range src {
			if b >= 0x80 {
				return true
			}
		}
	}
	for _, b := range src {
		if b == '\\' || b == '\n' || b == '\r' {
			return true
		}
	}
	return false
}

func needsUnescapeHex(src []byte) bool {
	if len(src)%2 != 0 {
		return true
	}
	for _, b := range src {
		if !charclass.IsHexDigit(b) {
			return true
		}
	}
	return false
}

func emitRuneFastPath(src []byte, cb Callback) {
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRune(src[i:])
		if size == 0 {
			size = 1
		}
		cb(Element{Lo: i, Hi: i + size, Codepoint: uint32(r)})
		i += size
	}
}

// unescapeStrSlow is the byte-by-byte scan used whenever the fast-path
// precondition fails. isUnicode selects whether non-ASCII UTF-8 sequences
// decode to their scalar value (UnicodeStr) or are reported as
// StrNonAsciiChar (Str).
func unescapeStrSlow(src []byte, isUnicode bool, cb Callback) {
	n := len(src)
	i := 0
	for i < n {
		b := src[i]
		switch {
		case b == '\\':
			if i+1 >= n {
				cb(Element{Lo: i, Hi: i + 1, IsError: true, Err: LoneSlash})
				i++
				continue
			}
			switch src[i+1] {
			case '\n':
				i = skipLineContinuation(src, i+2, cb)
			case '\r':
				if i+2 < n && src[i+2] == '\n' {
					i = skipLineContinuation(src, i+3, cb)
				} else {
					newPos, cp, kind, isErr := scanEscape(src, i)
					emitScanned(cb, i, newPos, cp, kind, isErr)
					i = newPos
				}
			default:
				newPos, cp, kind, isErr := scanEscape(src, i)
				emitScanned(cb, i, newPos, cp, kind, isErr)
				i = newPos
			}
		case b == '\n':
			cb(Element{Lo: i, Hi: i + 1, IsError: true, Err: StrNewline})
			i++
		case b == '\r':
			if i+1 < n && src[i+1] == '\n' {
				// The \r is silently absorbed; the following \n reports its
				// own StrNewline on the next iteration.
				i++
			} else {
				cb(Element{Lo: i, Hi: i + 1, IsError: true, Err: BareCarriageReturn})
				i++
			}
		case b < 0x80:
			cb(Element{Lo: i, Hi: i + 1, Codepoint: uint32(b)})
			i++
		default:
			r, size := utf8.DecodeRune(src[i:])
			if size == 0 {
				size = 1
			}
			if isUnicode {
				cb(Element{Lo: i, Hi: i + size, Codepoint: uint32(r)})
			} else {
				cb(Element{Lo: i, Hi: i + size, IsError: true, Err: StrNonAsciiChar})
			}
			i += size
		}
	}
}

func emitScanned(cb Callback, lo, hi int, cp uint32, kind ErrorKind, isErr bool) {
	if isErr {
		cb(Element{Lo: lo, Hi: hi, IsError: true, Err: kind})
	} else {
		cb(Element{Lo: lo, Hi: hi, Codepoint: cp})
	}
}

// skipLineContinuation skips ASCII space/tab starting at pos, reporting
// embedded bare newlines per the line-continuation rules, and returns the
// position where normal scanning resumes.
func skipLineContinuation(src []byte, pos int, cb Callback) int {
	n := len(src)
	for pos < n {
		switch b := src[pos]; {
		case b == ' ' || b == '\t':
			pos++
		case b == '\n':
			cb(Element{Lo: pos, Hi: pos + 1, IsError: true, Err: CannotSkipMultipleLines})
			pos++
		case b == '\r':
			if pos+1 < n && src[pos+1] == '\n' {
				cb(Element{Lo: pos, Hi: pos + 2, IsError: true, Err: CannotSkipMultipleLines})
				pos += 2
			} else {
				cb(Element{Lo: pos, Hi: pos + 1, IsError: true, Err: BareCarriageReturn})
				pos++
			}
		default:
			return pos
		}
	}
	return pos
}

// scanEscape decodes the escape selector byte that follows the backslash at
// src[i], returning the position just past the full escape sequence.
func scanEscape(src []byte, i int) (newPos int, cp uint32, kind ErrorKind, isErr bool) {
	sel := src[i+1]
	switch sel {
	case '\'', '"', '\\':
		return i + 2, uint32(sel), 0, false
	case 'n':
		return i + 2, '\n', 0, false
	case 'r':
		return i + 2, '\r', 0, false
	case 't':
		return i + 2, '\t', 0, false
	case 'x':
		return scanFixedHexEscape(src, i+2, 2, HexEscapeTooShort, InvalidHexEscape)
	case 'u':
		return scanFixedHexEscape(src, i+2, 4, UnicodeEscapeTooShort, InvalidUnicodeEscape)
	default:
		return i + 2, 0, InvalidEscape, true
	}
}

// scanFixedHexEscape reads exactly want hex digits starting at pos.
func scanFixedHexEscape(src []byte, pos, want int, tooShort, invalid ErrorKind) (int, uint32, ErrorKind, bool) {
	n := len(src)
	var val uint32
	for have := 0; have < want; have++ {
		if pos >= n {
			return pos, 0, tooShort, true
		}
		b := src[pos]
		if !charclass.IsHexDigit(b) {
			return pos + 1, 0, invalid, true
		}
		val = val<<4 | uint32(hexNibble(b))
		pos++
	}
	return pos, val, 0, false
}

func hexNibble(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	default:
		return 0
	}
}
