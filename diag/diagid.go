package diag

import "fmt"

// DiagId is a stable identifier for a diagnostic: either a free-form string
// tag (used for lints, e.g. "unused-variable") or a numeric error code in
// 1..9999, rendered zero-padded to four digits (e.g. "E0042").
//
// The zero value is the empty DiagId (IsZero() true); diagnostics are not
// required to carry one.
type DiagId struct {
	tag  string
	code uint16 // 0 means "no numeric code"; valid range is 1..9999
}

// Lint creates a DiagId from a free-form string tag.
func Lint(tag string) DiagId {
	return DiagId{tag: tag}
}

// ErrorCode creates a DiagId from a numeric error code. Panics if code is
// not in 1..9999 — this is always a programmer error at a call site that
// hardcodes the code.
func ErrorCode(code uint16) DiagId {
	if code == 0 || code > 9999 {
		panic(fmt.Sprintf("diag.ErrorCode: code %d out of range 1..9999", code))
	}
	return DiagId{code: code}
}

// IsZero reports whether d carries no tag and no code.
func (d DiagId) IsZero() bool {
	return d.tag == "" && d.code == 0
}

// String renders the lint tag verbatim, or the numeric code as "E" followed
// by four zero-padded digits.
func (d DiagId) String() string {
	if d.code != 0 {
		return fmt.Sprintf("E%04d", d.code)
	}
	return d.tag
}
