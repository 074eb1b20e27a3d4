package cursor

// TokenKind is the closed set of raw token kinds the cursor can produce.
// Lengths are tracked separately on RawToken; TokenKind alone carries no
// byte-length information.
type TokenKind uint8

const (
	Eof TokenKind = iota
	Whitespace
	LineComment
	BlockComment
	Ident
	Literal

	Semi
	Comma
	Dot
	OpenParen
	CloseParen
	OpenBrace
	CloseBrace
	OpenBracket
	CloseBracket
	Tilde
	Question
	Colon
	Eq
	Bang
	Lt
	Gt
	Minus
	And
	Or
	Plus
	Star
	Caret
	Percent
	Slash

	Unknown
)

func (k TokenKind) String() string {
	switch k {
	case Eof:
		return "Eof"
	case Whitespace:
		return "Whitespace"
	case LineComment:
		return "LineComment"
	case BlockComment:
		return "BlockComment"
	case Ident:
		return "Ident"
	case Literal:
		return "Literal"
	case Semi:
		return "Semi"
	case Comma:
		return "Comma"
	case Dot:
		return "Dot"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	case OpenBrace:
		return "OpenBrace"
	case CloseBrace:
		return "CloseBrace"
	case OpenBracket:
		return "OpenBracket"
	case CloseBracket:
		return "CloseBracket"
	case Tilde:
		return "Tilde"
	case Question:
		return "Question"
	case Colon:
		return "Colon"
	case Eq:
		return "Eq"
	case Bang:
		return "Bang"
	case Lt:
		return "Lt"
	case Gt:
		return "Gt"
	case Minus:
		return "Minus"
	case And:
		return "And"
	case Or:
		return "Or"
	case Plus:
		return "Plus"
	case Star:
		return "Star"
	case Caret:
		return "Caret"
	case Percent:
		return "Percent"
	case Slash:
		return "Slash"
	case Unknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

// LiteralKind distinguishes the three literal shapes a raw token can carry.
type LiteralKind uint8

const (
	LitInt LiteralKind = iota
	LitRational
	LitStr
)

// StrPrefix is the prefix tag a string literal was lexed with, taken from
// the `hex"..."`/`unicode"..."` prefix check, or StrPlain absent a prefix.
type StrPrefix uint8

const (
	StrPlain StrPrefix = iota
	StrUnicode
	StrHex
)

// Base is the numeric base of an integer or rational literal.
type Base uint8

const (
	Binary Base = iota
	Octal
	Decimal
	Hexadecimal
)

func (b Base) String() string {
	switch b {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	default:
		return "Invalid"
	}
}

// RawToken is the cursor's sole output: a kind plus a byte length, with the
// handful of extra flags each kind needs (doc-comment-ness, termination,
// literal sub-kind). Fields irrelevant to Kind are zero and must not be
// read; the field comments below give the legal combinations.
type RawToken struct {
	Kind TokenKind
	Len  uint32

	// IsDoc is meaningful for LineComment and BlockComment.
	IsDoc bool
	// Terminated is meaningful for BlockComment and Literal{LitStr}.
	Terminated bool

	// LitKind is meaningful when Kind == Literal.
	LitKind LiteralKind
	// Base is meaningful when LitKind is LitInt or LitRational.
	Base Base
	// EmptyInt is meaningful when LitKind == LitInt.
	EmptyInt bool
	// EmptyExponent is meaningful when LitKind == LitRational.
	EmptyExponent bool
	// StrPrefix is meaningful when LitKind == LitStr.
	StrPrefix StrPrefix
}

// IsEof reports whether the token is the terminal end-of-input marker.
func (t RawToken) IsEof() bool { return t.Kind == Eof }
