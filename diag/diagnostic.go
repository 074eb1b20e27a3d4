package diag

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"
)

// Style tags one segment of a multi-segment styled message (used by
// Note/Help sub-diagnostics that render suggested-edit-style text: plain
// context, an addition, a removal, or a highlighted span of text).
type Style uint8

const (
	StylePlain Style = iota
	StyleAddition
	StyleRemoval
	StyleHighlight
)

// StyledSegment is one piece of a multi-segment message.
type StyledSegment struct {
	Text  string
	Style Style
}

// MessagePart is one (message, style-segments) pair. A Diagnostic's
// top-level message list and a SubDiagnostic's message list are both built
// from MessageParts so a long explanation can mix plain prose with
// suggested-edit-style segments without the caller juggling two types.
type MessagePart struct {
	Text     string
	Segments []StyledSegment
}

// Plain constructs a MessagePart carrying only unstyled text.
func Plain(text string) MessagePart {
	return MessagePart{Text: text}
}

// Styled constructs a MessagePart from styled segments, concatenating their
// text for Text.
func Styled(segments ...StyledSegment) MessagePart {
	var text string
	for _, s := range segments {
		text += s.Text
	}
	return MessagePart{Text: text, Segments: segments}
}

// SubDiagnostic is a child diagnostic attached to a primary Diagnostic. It
// carries its own level (Warning, Note, OnceNote, Help, or OnceHelp), its
// own message parts, and its own MultiSpan, but never has children of its
// own.
type SubDiagnostic struct {
	Level    Level
	Messages []MessagePart
	Span     MultiSpan
}

// site captures the file+line of a Diagnostic's construction, surfaced on
// self-diagnostic notes (e.g. "diagnostic constructed at cursor.go:142").
type site struct {
	file string
	line int
}

// Diagnostic is a fully-built, immutable diagnostic: a level, an ordered
// list of message parts, a MultiSpan, an ordered list of sub-diagnostics,
// an optional DiagId, and the construction site.
//
// Diagnostic values are produced exclusively by a Builder; there
// is no exported constructor, matching the must-consume discipline at the
// Builder layer (see builder.go).
type Diagnostic struct {
	level    Level
	messages []MessagePart
	span     MultiSpan
	subs     []SubDiagnostic
	id       DiagId
	site     site
}

// Level returns the diagnostic's level.
func (d Diagnostic) Level() Level { return d.level }

// Messages returns the top-level message parts, in order.
func (d Diagnostic) Messages() []MessagePart {
	if len(d.messages) == 0 {
		return nil
	}
	cp := make([]MessagePart, len(d.messages))
	copy(cp, d.messages)
	return cp
}

// Span returns the diagnostic's MultiSpan.
func (d Diagnostic) Span() MultiSpan { return d.span }

// Subs returns the sub-diagnostics, in attachment order.
func (d Diagnostic) Subs() []SubDiagnostic {
	if len(d.subs) == 0 {
		return nil
	}
	cp := make([]SubDiagnostic, len(d.subs))
	copy(cp, d.subs)
	return cp
}

// Id returns the diagnostic's DiagId, zero if none was set.
func (d Diagnostic) Id() DiagId { return d.id }

// Message joins the top-level message parts' text with a single space,
// the common case where a caller just wants "the message".
func (d Diagnostic) Message() string {
	out := ""
	for i, m := range d.messages {
		if i > 0 {
			out += " "
		}
		out += m.Text
	}
	return out
}

// Site renders the diagnostic's construction site as "file:line".
func (d Diagnostic) Site() string {
	return fmt.Sprintf("%s:%d", d.site.file, d.site.line)
}

// Equal reports whether d and other are equal per the spec: equal iff
// (level, messages, code, primary span, sub-diagnostics) tuples compare
// equal. Construction site is deliberately excluded — two diagnostics built
// from different call sites but otherwise identical content are the same
// diagnostic for deduplication purposes.
func (d Diagnostic) Equal(other Diagnostic) bool {
	return d.Fingerprint() == other.Fingerprint()
}

// Fingerprint computes a stable hash over the fields Equal compares,
// suitable for use as a Context dedup key or once-note suppression key.
func (d Diagnostic) Fingerprint() string {
	h := sha256.New()
	fmt.Fprintf(h, "%d|%s|", d.level, d.id.String())
	for _, m := range d.messages {
		fmt.Fprintf(h, "%s;", m.Text)
	}
	fmt.Fprintf(h, "|%d..%d|", d.span.primary.Lo, d.span.primary.Hi)
	for _, sub := range d.subs {
		fmt.Fprintf(h, "%d:%d..%d:", sub.Level, sub.Span.primary.Lo, sub.Span.primary.Hi)
		for _, m := range sub.Messages {
			fmt.Fprintf(h, "%s;", m.Text)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// captureSite returns the file+line of the caller skip frames above this
// function.
func captureSite(skip int) site {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return site{file: "<unknown>", line: 0}
	}
	return site{file: file, line: line}
}
