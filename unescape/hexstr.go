package unescape

import "github.com/malik672/solar-lexcore/charclass"

func emitHexFastPath(src []byte, cb Callback) {
	for i, b := range src {
		cb(Element{Lo: i, Hi: i + 1, Codepoint: uint32(b)})
	}
}

// unescapeHexSlow implements the hex string contents grammar: an optional
// `0x`/`0X` prefix, then an even count of hex digits, with `_` permitted
// only exactly between two completed hex-digit pairs.
func unescapeHexSlow(src []byte, cb Callback) {
	n := len(src)
	start := 0
	if n >= 2 && src[0] == '0' && (src[1] == 'x' || src[1] == 'X') {
		cb(Element{Lo: 0, Hi: 2, IsError: true, Err: HexPrefix})
		start = 2
	}

	digitCount := 0
	for i := start; i < n; i++ {
		if charclass.IsHexDigit(src[i]) {
			digitCount++
		}
	}
	if digitCount%2 != 0 {
		cb(Element{Lo: 0, Hi: n, IsError: true, Err: HexOddDigits})
		return
	}

	even := true
	allowUnderscore := false
	emitUnderscoreErrors := true

	for i := start; i < n; i++ {
		b := src[i]
		switch {
		case b == '_':
			if !allowUnderscore || !even {
				if emitUnderscoreErrors {
					cb(Element{Lo: i, Hi: i + 1, IsError: true, Err: HexBadUnderscore})
					emitUnderscoreErrors = false
				}
			} else {
				allowUnderscore = false
			}
		case charclass.IsHexDigit(b):
			cb(Element{Lo: i, Hi: i + 1, Codepoint: uint32(b)})
			even = !even
			allowUnderscore = true
		default:
			cb(Element{Lo: i, Hi: i + 1, IsError: true, Err: HexNotHexDigit})
		}
	}

	if emitUnderscoreErrors && n > 1 && src[n-1] == '_' {
		cb(Element{Lo: n - 1, Hi: n, IsError: true, Err: HexBadUnderscore})
	}
}
