package diag

import (
	"encoding/json"
	"io"

	"github.com/malik672/solar-lexcore/sourcemap"
	"github.com/malik672/solar-lexcore/span"
)

// diagnosticWire is the stable JSON wire format for a Diagnostic: one
// self-contained object with fields level, code, messages, spans (each
// resolved to file/line/col), and children (sub-diagnostics, themselves
// carrying spans but never further children).
type diagnosticWire struct {
	Level    string      `json:"level"`
	Code     string      `json:"code,omitzero"`
	Messages []string    `json:"messages"`
	Spans    []spanWire  `json:"spans,omitzero"`
	Children []childWire `json:"children,omitzero"`
}

type spanWire struct {
	File      string `json:"file"`
	Lo        uint32 `json:"lo"`
	Hi        uint32 `json:"hi"`
	LineStart int    `json:"line_start"`
	ColStart  int    `json:"col_start"`
	LineEnd   int    `json:"line_end"`
	ColEnd    int    `json:"col_end"`
	Label     string `json:"label,omitzero"`
}

// childWire is a sub-diagnostic: level, messages, and its own spans, with
// no further nesting.
type childWire struct {
	Level    string     `json:"level"`
	Messages []string   `json:"messages"`
	Spans    []spanWire `json:"spans,omitzero"`
}

// JSON is an Emitter that writes one JSON object per diagnostic to w, each
// on its own line (JSON Lines), resolving each span's file/line/col via sm.
type JSON struct {
	w   io.Writer
	sm  *sourcemap.SourceMap
	enc *json.Encoder
}

// NewJSON creates a JSON emitter. sm may be nil, in which case spanWire
// carries only raw lo/hi offsets with file/line/col left at their zero
// values.
func NewJSON(w io.Writer, sm *sourcemap.SourceMap) *JSON {
	return &JSON{w: w, sm: sm, enc: json.NewEncoder(w)}
}

// EmitDiagnostic implements Emitter.
func (j *JSON) EmitDiagnostic(d Diagnostic) {
	wire := diagnosticWire{
		Level:    d.Level().String(),
		Code:     d.Id().String(),
		Messages: messageTexts(d.Messages()),
		Spans:    j.toSpanWires(d.Span()),
	}
	for _, sub := range d.Subs() {
		wire.Children = append(wire.Children, childWire{
			Level:    sub.Level.String(),
			Messages: messageTexts(sub.Messages),
			Spans:    j.toSpanWires(sub.Span),
		})
	}

	//nolint:errchkjson // wire types are safe; error check is defensive
	if err := j.enc.Encode(wire); err != nil {
		panic("diag: unexpected JSON marshal error: " + err.Error())
	}
}

// SourceMap returns the SourceMap this emitter resolves spans against, or
// nil if constructed without one.
func (j *JSON) SourceMap() *sourcemap.SourceMap { return j.sm }

// toSpanWires resolves a MultiSpan's primary span (unlabeled) followed by
// its secondary spans (each carrying its attached label), skipping a dummy
// primary span entirely.
func (j *JSON) toSpanWires(ms MultiSpan) []spanWire {
	var out []spanWire
	if primary := ms.Primary(); !primary.IsDummy() {
		out = append(out, j.toSpanWire(primary, ""))
	}
	for _, lbl := range ms.Labels() {
		out = append(out, j.toSpanWire(lbl.Span, lbl.Message))
	}
	return out
}

func (j *JSON) toSpanWire(s span.Span, label string) spanWire {
	wire := spanWire{Lo: s.Lo.ToUint32(), Hi: s.Hi.ToUint32(), Label: label}
	if j.sm == nil {
		return wire
	}
	if f, ok := j.sm.Lookup(s.Lo); ok {
		wire.File = f.Name()
	}
	if lineStart, colStart, err := j.sm.LineCol(s.Lo); err == nil {
		wire.LineStart, wire.ColStart = lineStart, colStart
	}
	if lineEnd, colEnd, err := j.sm.LineCol(s.Hi); err == nil {
		wire.LineEnd, wire.ColEnd = lineEnd, colEnd
	}
	return wire
}

func messageTexts(parts []MessagePart) []string {
	if len(parts) == 0 {
		return nil
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.Text
	}
	return out
}
