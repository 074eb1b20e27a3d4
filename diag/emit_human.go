package diag

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/malik672/solar-lexcore/sourcemap"
)

// ANSI palette per the diagnostic context & emitters design: bright-red for
// error/fatal/bug, bright-yellow for warning, bright-green for note,
// bright-cyan for help; addition=green, removal=red, line-number=
// bright-blue, highlight=bright-magenta.
const (
	ansiReset         = "\x1b[0m"
	ansiBrightRed     = "\x1b[91m"
	ansiBrightYellow  = "\x1b[93m"
	ansiBrightGreen   = "\x1b[92m"
	ansiBrightCyan    = "\x1b[96m"
	ansiBrightBlue    = "\x1b[94m"
	ansiBrightMagenta = "\x1b[95m"
	ansiGreen         = "\x1b[32m"
	ansiRed           = "\x1b[31m"
	ansiBold          = "\x1b[1m"
)

func levelColor(l Level) string {
	switch l {
	case Bug, Fatal, Error, FailureNote:
		return ansiBrightRed
	case Warning:
		return ansiBrightYellow
	case Note, OnceNote:
		return ansiBrightGreen
	case Help, OnceHelp:
		return ansiBrightCyan
	default:
		return ""
	}
}

func styleColor(s Style) string {
	switch s {
	case StyleAddition:
		return ansiGreen
	case StyleRemoval:
		return ansiRed
	case StyleHighlight:
		return ansiBrightMagenta
	default:
		return ""
	}
}

// Human renders diagnostics to a writer with ANSI color per ColorChoice,
// using a SourceMap to produce caret-underlined snippets for the primary
// span and label lines for secondary spans.
type Human struct {
	w     io.Writer
	sm    *sourcemap.SourceMap
	color ColorChoice
}

// NewHuman creates a Human emitter writing to w. sm may be nil, in which
// case snippets are omitted and only "Span(lo..hi)" location text is shown.
func NewHuman(w io.Writer, sm *sourcemap.SourceMap, color ColorChoice) *Human {
	return &Human{w: w, sm: sm, color: color}
}

// SourceMap returns the SourceMap this emitter resolves spans against, or
// nil if constructed without one.
func (h *Human) SourceMap() *sourcemap.SourceMap { return h.sm }

func (h *Human) colorize(code, text string) string {
	if h.color == ColorNever || code == "" {
		return text
	}
	return code + text + ansiReset
}

// EmitDiagnostic implements Emitter.
func (h *Human) EmitDiagnostic(d Diagnostic) {
	io.WriteString(h.w, h.render(d))
}

func (h *Human) render(d Diagnostic) string {
	var b strings.Builder

	label := d.Level().String()
	if id := d.Id(); !id.IsZero() {
		label = fmt.Sprintf("%s[%s]", label, id.String())
	}
	fmt.Fprintf(&b, "%s: %s\n", h.colorize(levelColor(d.Level())+ansiBold, label), d.Message())

	if !d.Span().Primary().IsDummy() {
		h.renderSpan(&b, d.Span())
	}

	for _, sub := range d.Subs() {
		fmt.Fprintf(&b, "  %s: ", h.colorize(levelColor(sub.Level), sub.Level.String()))
		for _, part := range sub.Messages {
			b.WriteString(h.renderParts(part))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (h *Human) renderParts(part MessagePart) string {
	if len(part.Segments) == 0 {
		return part.Text
	}
	var b strings.Builder
	for _, seg := range part.Segments {
		b.WriteString(h.colorize(styleColor(seg.Style), seg.Text))
	}
	return b.String()
}

func (h *Human) renderSpan(b *strings.Builder, ms MultiSpan) {
	primary := ms.Primary()
	if h.sm == nil {
		fmt.Fprintf(b, "  --> %s\n", primary)
		return
	}

	loc := h.sm.SpanToDiagnosticString(primary)
	fmt.Fprintf(b, "  %s %s\n", h.colorize(ansiBrightBlue, "-->"), loc)

	file, ok := h.sm.Lookup(primary.Lo)
	if !ok {
		return
	}
	line, col := file.LineCol(primary.Lo)
	text, ok := file.LineText(line)
	if !ok {
		return
	}
	width := primary.Len()
	if width == 0 {
		width = 1
	}
	gutter := fmt.Sprintf("%d", line)
	fmt.Fprintf(b, "  %s | %s\n", h.colorize(ansiBrightBlue, gutter), text)
	fmt.Fprintf(b, "  %s | %s%s\n",
		strings.Repeat(" ", len(gutter)),
		strings.Repeat(" ", col-1),
		h.colorize(levelColor(Error), strings.Repeat("^", int(width))))

	for _, lbl := range ms.Labels() {
		labelFile, ok := h.sm.Lookup(lbl.Span.Lo)
		if !ok {
			continue
		}
		lLine, _ := labelFile.LineCol(lbl.Span.Lo)
		fmt.Fprintf(b, "  %s: %s (line %d)\n", h.colorize(levelColor(Note), "note"), lbl.Message, lLine)
	}
}

// HumanBuffer renders the same as Human but into an in-memory buffer,
// exposed via EmittedDiagnostics for tests and batch output modes.
type HumanBuffer struct {
	buf   bytes.Buffer
	human *Human
}

// NewHumanBuffer creates a HumanBuffer emitter. sm may be nil (see
// NewHuman).
func NewHumanBuffer(sm *sourcemap.SourceMap, color ColorChoice) *HumanBuffer {
	hb := &HumanBuffer{}
	hb.human = NewHuman(&hb.buf, sm, color)
	return hb
}

// EmitDiagnostic implements Emitter.
func (hb *HumanBuffer) EmitDiagnostic(d Diagnostic) {
	hb.human.EmitDiagnostic(d)
}

// EmittedDiagnostics returns everything rendered so far.
func (hb *HumanBuffer) EmittedDiagnostics() string {
	return hb.buf.String()
}

// SourceMap returns the SourceMap this emitter resolves spans against, or
// nil if constructed without one.
func (hb *HumanBuffer) SourceMap() *sourcemap.SourceMap { return hb.human.sm }
