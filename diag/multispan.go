package diag

import "github.com/malik672/solar-lexcore/span"

// SpanLabel attaches a message to one span within a MultiSpan.
type SpanLabel struct {
	Span    span.Span
	Message string
}

// MultiSpan is a primary span plus an ordered list of secondary
// (span, label) attachments. The Human emitter underlines the primary span
// with carets; each secondary span is listed as a note line carrying its
// label and line number, and is not underlined.
type MultiSpan struct {
	primary span.Span
	labels  []SpanLabel
}

// NewMultiSpan creates a MultiSpan whose primary span is primary.
func NewMultiSpan(primary span.Span) MultiSpan {
	return MultiSpan{primary: primary}
}

// Primary returns the primary span.
func (m MultiSpan) Primary() span.Span { return m.primary }

// Labels returns a copy of the secondary span/label attachments, in
// attachment order.
func (m MultiSpan) Labels() []SpanLabel {
	if len(m.labels) == 0 {
		return nil
	}
	cp := make([]SpanLabel, len(m.labels))
	copy(cp, m.labels)
	return cp
}

// WithLabel returns a MultiSpan with an additional (span, message)
// attachment. m is not modified.
func (m MultiSpan) WithLabel(s span.Span, message string) MultiSpan {
	out := m
	out.labels = append(append([]SpanLabel(nil), m.labels...), SpanLabel{Span: s, Message: message})
	return out
}
