// Package span implements byte-position and span arithmetic shared by every
// later compiler pass: the cursor reports raw token lengths, the parser
// turns those into spans, and the diagnostic machinery renders spans back
// to file/line/column.
package span

import (
	"cmp"
	"fmt"
)

// BytePos is an absolute offset into the logical concatenation of every
// source file registered with a SourceMap. Two BytePos values are only
// meaningfully comparable when they come from the same SourceMap instance.
type BytePos uint32

// ToUint32 returns the position as a plain uint32.
func (p BytePos) ToUint32() uint32 { return uint32(p) }

// ToInt returns the position as a plain int, for slice indexing.
func (p BytePos) ToInt() int { return int(p) }

func (p BytePos) String() string { return fmt.Sprintf("BytePos(%d)", uint32(p)) }

// Span is a half-open [Lo, Hi) range of BytePos. The zero value is DUMMY.
type Span struct {
	Lo BytePos
	Hi BytePos
}

// DUMMY denotes "no location".
var DUMMY = Span{Lo: 0, Hi: 0}

// New builds a span from two positions, swapping them if out of order so
// that Lo <= Hi always holds.
func New(lo, hi BytePos) Span {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Span{Lo: lo, Hi: hi}
}

// IsDummy reports whether s is the DUMMY sentinel.
func (s Span) IsDummy() bool { return s == DUMMY }

// Len returns the span's byte length.
func (s Span) Len() uint32 { return uint32(s.Hi - s.Lo) }

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool { return s.Lo == s.Hi }

// ToRange returns the span as a Go [int,int) range. The result may not be
// directly usable to index into a source string when more than one file is
// registered in the source map that produced s; use SourceMap.SpanToSnippet
// instead.
func (s Span) ToRange() (int, int) { return s.Lo.ToInt(), s.Hi.ToInt() }

// WithLo returns a span with the same Hi and a new Lo.
func (s Span) WithLo(lo BytePos) Span { return New(lo, s.Hi) }

// WithHi returns a span with the same Lo and a new Hi.
func (s Span) WithHi(hi BytePos) Span { return New(s.Lo, hi) }

// ShrinkToLo returns an empty span at s's start.
func (s Span) ShrinkToLo() Span { return Span{Lo: s.Lo, Hi: s.Lo} }

// ShrinkToHi returns an empty span at s's end.
func (s Span) ShrinkToHi() Span { return Span{Lo: s.Hi, Hi: s.Hi} }

// Contains reports whether s fully encloses other.
func (s Span) Contains(other Span) bool {
	return s.Lo <= other.Lo && other.Hi <= s.Hi
}

// Overlaps reports whether s and other share at least one byte position.
func (s Span) Overlaps(other Span) bool {
	return s.Lo < other.Hi && other.Lo < s.Hi
}

// IsEqualRange reports whether s and other cover exactly the same range.
func (s Span) IsEqualRange(other Span) bool {
	return s.Lo == other.Lo && s.Hi == other.Hi
}

// SplitAt splits s into two composite spans around an offset k measured
// from s.Lo. Panics if k exceeds the span's length, matching the source
// debug_assert!(pos <= len).
func (s Span) SplitAt(k uint32) (Span, Span) {
	length := uint32(s.Hi - s.Lo)
	if k > length {
		panic(fmt.Sprintf("span: SplitAt(%d) exceeds span length %d", k, length))
	}
	mid := s.Lo + BytePos(k)
	return New(s.Lo, mid), New(mid, s.Hi)
}

// To returns the smallest span enclosing both s and end. start.To(end) and
// end.To(start) return the same span.
func (s Span) To(end Span) Span {
	return New(min(s.Lo, end.Lo), max(s.Hi, end.Hi))
}

// Between returns the span from the end of s to the beginning of end.
func (s Span) Between(end Span) Span {
	return New(s.Hi, end.Lo)
}

// Until returns the span from the beginning of s to the beginning of end.
func (s Span) Until(end Span) Span {
	return New(s.Lo, end.Lo)
}

// JoinMany folds To over every span in spans, returning DUMMY for an empty
// input.
func JoinMany(spans []Span) Span {
	if len(spans) == 0 {
		return DUMMY
	}
	out := spans[0]
	for _, s := range spans[1:] {
		out = out.To(s)
	}
	return out
}

// JoinFirstLast joins only the first and last span in spans, ignoring
// anything in between. Returns DUMMY for an empty input.
func JoinFirstLast(spans []Span) Span {
	if len(spans) == 0 {
		return DUMMY
	}
	first := spans[0]
	last := spans[len(spans)-1]
	if len(spans) == 1 {
		return first
	}
	return first.To(last)
}

// Compare imposes a total order over spans by (Lo, Hi), usable with
// slices.SortFunc.
func Compare(a, b Span) int {
	if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
		return c
	}
	return cmp.Compare(a.Hi, b.Hi)
}

// DebugFormatter is implemented by whatever can resolve a span to a
// human-readable "file:line:col-line:col" string. SourceMap implements it;
// Span's String method uses the one installed with SetActiveFormatter, if
// any.
type DebugFormatter interface {
	SpanToDiagnosticString(Span) string
}

var activeFormatter DebugFormatter

// SetActiveFormatter installs the formatter consulted by Span.String;
// passing nil clears it. The session package installs its source map on
// every Enter/EnterParallel call and clears it when that call returns.
func SetActiveFormatter(f DebugFormatter) { activeFormatter = f }

// String renders the span via the active session's source map when one is
// installed, and otherwise falls back to the raw lo..hi pair — mirroring
// the original's Debug impl for Span.
func (s Span) String() string {
	if activeFormatter != nil {
		return activeFormatter.SpanToDiagnosticString(s)
	}
	return fmt.Sprintf("Span(%d..%d)", uint32(s.Lo), uint32(s.Hi))
}

func min(a, b BytePos) BytePos {
	if a < b {
		return a
	}
	return b
}

func max(a, b BytePos) BytePos {
	if a > b {
		return a
	}
	return b
}
