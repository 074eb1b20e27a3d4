// Package cursor implements the byte-level scanner that turns one file's
// source bytes into a stream of RawTokens. It is a direct, faithful port of
// the reference compiler's hand-rolled cursor: no regular expressions, no
// lookahead beyond two bytes, no allocation on the hot path. A Cursor is not
// safe for concurrent use; parallelism in this codebase happens at file
// granularity, one Cursor per file, never by sharing a Cursor across
// goroutines.
package cursor

import (
	"iter"

	"github.com/malik672/solar-lexcore/charclass"
)

const eofChar byte = 0

// Cursor scans a single immutable byte slice, left to right, producing one
// RawToken per AdvanceToken call.
type Cursor struct {
	bytes []byte
	pos   int
}

// New creates a cursor over input. input must be valid UTF-8; the cursor
// itself only inspects individual bytes and does not validate this, and
// SourceMap.AddFile does not validate it either.
func New(input []byte) *Cursor {
	return &Cursor{bytes: input}
}

// AsBytes returns the unconsumed tail of the input.
func (c *Cursor) AsBytes() []byte { return c.bytes[c.pos:] }

// Pos returns the cursor's current byte offset into its input.
func (c *Cursor) Pos() int { return c.pos }

func (c *Cursor) isEOF() bool { return c.pos >= len(c.bytes) }

func (c *Cursor) first() byte {
	if c.pos < len(c.bytes) {
		return c.bytes[c.pos]
	}
	return eofChar
}

func (c *Cursor) second() byte {
	if c.pos+1 < len(c.bytes) {
		return c.bytes[c.pos+1]
	}
	return eofChar
}

func (c *Cursor) bump() byte {
	if c.pos >= len(c.bytes) {
		return eofChar
	}
	b := c.bytes[c.pos]
	c.pos++
	return b
}

// bumpRet is bump's Option<u8>-returning twin: ok is false only at EOF,
// which is what AdvanceToken uses to recognize the end of input.
func (c *Cursor) bumpRet() (b byte, ok bool) {
	if c.pos >= len(c.bytes) {
		return 0, false
	}
	b = c.bytes[c.pos]
	c.pos++
	return b, true
}

func (c *Cursor) eatWhile(pred func(byte) bool) {
	for !c.isEOF() && pred(c.first()) {
		c.bump()
	}
}

// AdvanceToken scans and returns the next raw token. It always terminates;
// once the cursor reaches the end of input it returns an Eof token with
// length 0 on every subsequent call.
func (c *Cursor) AdvanceToken() RawToken {
	start := c.pos
	first, ok := c.bumpRet()
	if !ok {
		return RawToken{Kind: Eof, Len: 0}
	}
	tok := c.advanceTokenKind(first)
	tok.Len = uint32(c.pos - start)
	return tok
}

// Tokens returns an iterator over every token the cursor produces, ending
// (inclusively) with the terminal Eof token.
func (c *Cursor) Tokens() iter.Seq[RawToken] {
	return func(yield func(RawToken) bool) {
		for {
			tok := c.AdvanceToken()
			if !yield(tok) {
				return
			}
			if tok.IsEof() {
				return
			}
		}
	}
}

func (c *Cursor) advanceTokenKind(first byte) RawToken {
	switch {
	case first == '/':
		switch c.first() {
		case '/':
			return c.lineComment()
		case '*':
			return c.blockComment()
		default:
			return RawToken{Kind: Slash}
		}
	case charclass.IsWhitespace(first):
		c.eatWhile(charclass.IsWhitespace)
		return RawToken{Kind: Whitespace}
	case charclass.IsIDStart(first):
		return c.identOrPrefixedLiteral(first)
	case first >= '0' && first <= '9':
		return c.number(first)
	case first == '.' && charclass.IsDecimalDigit(c.first()):
		return c.rationalNumberAfterDot(Decimal)
	case first == '\'' || first == '"':
		return c.stringToken(first)
	default:
		if tok, ok := punctuator(first); ok {
			return tok
		}
		if first >= 0x80 {
			c.bumpUTF8With(first)
		}
		return RawToken{Kind: Unknown}
	}
}

func punctuator(b byte) (RawToken, bool) {
	switch b {
	case ';':
		return RawToken{Kind: Semi}, true
	case ',':
		return RawToken{Kind: Comma}, true
	case '.':
		return RawToken{Kind: Dot}, true
	case '(':
		return RawToken{Kind: OpenParen}, true
	case ')':
		return RawToken{Kind: CloseParen}, true
	case '{':
		return RawToken{Kind: OpenBrace}, true
	case '}':
		return RawToken{Kind: CloseBrace}, true
	case '[':
		return RawToken{Kind: OpenBracket}, true
	case ']':
		return RawToken{Kind: CloseBracket}, true
	case '~':
		return RawToken{Kind: Tilde}, true
	case '?':
		return RawToken{Kind: Question}, true
	case ':':
		return RawToken{Kind: Colon}, true
	case '=':
		return RawToken{Kind: Eq}, true
	case '!':
		return RawToken{Kind: Bang}, true
	case '<':
		return RawToken{Kind: Lt}, true
	case '>':
		return RawToken{Kind: Gt}, true
	case '-':
		return RawToken{Kind: Minus}, true
	case '&':
		return RawToken{Kind: And}, true
	case '|':
		return RawToken{Kind: Or}, true
	case '+':
		return RawToken{Kind: Plus}, true
	case '*':
		return RawToken{Kind: Star}, true
	case '^':
		return RawToken{Kind: Caret}, true
	case '%':
		return RawToken{Kind: Percent}, true
	default:
		return RawToken{}, false
	}
}

// lineComment handles the tail of `//...`. The two leading slashes are
// already consumed (the first by AdvanceToken, the second here).
func (c *Cursor) lineComment() RawToken {
	c.bump() // second '/'
	isDoc := c.first() == '/' && c.second() != '/'
	for !c.isEOF() && c.first() != '\n' && c.first() != '\r' {
		c.bump()
	}
	return RawToken{Kind: LineComment, IsDoc: isDoc}
}

// blockComment handles the tail of `/*...`. The leading slash is already
// consumed by AdvanceToken; the `*` is consumed here.
func (c *Cursor) blockComment() RawToken {
	c.bump() // '*'
	isDoc := c.first() == '*' && c.second() != '*' && c.second() != '/'
	terminated := false
	for !c.isEOF() {
		if c.first() == '*' && c.second() == '/' {
			c.bump()
			c.bump()
			terminated = true
			break
		}
		c.bump()
	}
	return RawToken{Kind: BlockComment, IsDoc: isDoc, Terminated: terminated}
}

// identOrPrefixedLiteral handles an identifier, or a `hex"..."`/
// `unicode"..."` prefixed string literal when first is 'h' or 'u' and the
// accumulated identifier bytes match exactly.
func (c *Cursor) identOrPrefixedLiteral(first byte) RawToken {
	start := c.pos - 1
	c.eatWhile(charclass.IsIDContinue)

	if first == 'h' || first == 'u' {
		word := c.bytes[start:c.pos]
		var prefix StrPrefix
		matched := false
		switch string(word) {
		case "hex":
			prefix, matched = StrHex, true
		case "unicode":
			prefix, matched = StrUnicode, true
		}
		if matched {
			if q := c.first(); q == '\'' || q == '"' {
				c.bump()
				terminated := c.eatString(q)
				return RawToken{Kind: Literal, LitKind: LitStr, StrPrefix: prefix, Terminated: terminated}
			}
		}
	}
	return RawToken{Kind: Ident}
}

// stringToken handles a plain (unprefixed) string literal.
func (c *Cursor) stringToken(quote byte) RawToken {
	terminated := c.eatString(quote)
	return RawToken{Kind: Literal, LitKind: LitStr, StrPrefix: StrPlain, Terminated: terminated}
}

// eatString consumes bytes up to and including the closing quote, applying
// only the minimal lexer-level backslash handling needed to not mistake an
// escaped quote or backslash for the terminator. Full escape semantics are
// the unescape package's job.
func (c *Cursor) eatString(quote byte) bool {
	for {
		if c.isEOF() {
			return false
		}
		b := c.bump()
		if b == quote {
			return true
		}
		if b == '\\' {
			if nb := c.first(); nb == '\\' || nb == quote {
				c.bump()
			}
		}
	}
}

// number handles the full numeric literal grammar, given the already
// consumed first digit.
func (c *Cursor) number(firstDigit byte) RawToken {
	base := Decimal
	hasDigits := true

	if firstDigit == '0' {
		switch c.first() {
		case 'b':
			base = Binary
			c.bump()
			hasDigits = c.eatDecimalDigits()
		case 'o':
			base = Octal
			c.bump()
			hasDigits = c.eatDecimalDigits()
		case 'x':
			base = Hexadecimal
			c.bump()
			hasDigits = c.eatHexadecimalDigits()
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '_', '.', 'e', 'E':
			c.eatDecimalDigits()
			hasDigits = true
		default:
			return RawToken{Kind: Literal, LitKind: LitInt, Base: Decimal, EmptyInt: false}
		}
	} else {
		c.eatDecimalDigits()
	}

	if base != Decimal && !hasDigits {
		return RawToken{Kind: Literal, LitKind: LitInt, Base: base, EmptyInt: true}
	}

	switch {
	case c.first() == '.' && (!charclass.IsIDStart(c.second()) || c.second() == '_'):
		c.bump() // '.'
		return c.rationalNumberAfterDot(base)
	case c.first() == 'e' || c.first() == 'E':
		c.bump()
		emptyExp := !c.eatExponent()
		return RawToken{Kind: Literal, LitKind: LitRational, Base: base, EmptyExponent: emptyExp}
	default:
		return RawToken{Kind: Literal, LitKind: LitInt, Base: base, EmptyInt: false}
	}
}

// rationalNumberAfterDot handles the portion of a numeric literal after a
// decimal point has already been consumed.
func (c *Cursor) rationalNumberAfterDot(base Base) RawToken {
	c.eatDecimalDigits()
	emptyExp := false
	if c.first() == 'e' || c.first() == 'E' {
		c.bump()
		emptyExp = !c.eatExponent()
	}
	return RawToken{Kind: Literal, LitKind: LitRational, Base: base, EmptyExponent: emptyExp}
}

// eatExponent consumes an optional leading '-' (never '+', see the numeric
// exponent design note) followed by decimal digits, reporting whether any
// digit was actually consumed.
func (c *Cursor) eatExponent() bool {
	if c.first() == '-' {
		c.bump()
	}
	return c.eatDecimalDigits()
}

// eatDecimalDigits eats a run of ASCII decimal digits and underscores,
// reporting whether at least one digit (not counting underscores) was seen.
func (c *Cursor) eatDecimalDigits() bool {
	hasDigits := false
	for {
		switch c.first() {
		case '_':
			c.bump()
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			hasDigits = true
			c.bump()
		default:
			return hasDigits
		}
	}
}

// eatHexadecimalDigits eats a run of ASCII hex digits and underscores,
// reporting whether at least one digit (not counting underscores) was seen.
func (c *Cursor) eatHexadecimalDigits() bool {
	hasDigits := false
	for {
		b := c.first()
		switch {
		case b == '_':
			c.bump()
		case charclass.IsHexDigit(b):
			hasDigits = true
			c.bump()
		default:
			return hasDigits
		}
	}
}

// bumpUTF8With skips the continuation bytes of a non-ASCII UTF-8 sequence
// whose leading byte is lead, using the standard leading-byte length table.
func (c *Cursor) bumpUTF8With(lead byte) {
	var n int
	switch {
	case lead < 0x80:
		n = 0
	case lead < 0xE0:
		n = 1
	case lead < 0xF0:
		n = 2
	default:
		n = 3
	}
	for i := 0; i < n; i++ {
		c.bump()
	}
}
