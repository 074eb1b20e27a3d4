package diag

// Level is the severity/kind of a diagnostic or sub-diagnostic.
//
// Level is an ordered enumeration; lower numeric values are more severe.
// Every top-level Diagnostic carries exactly one Level. Sub-diagnostics are
// restricted to a subset (see Builder.Warning/Note/OnceNote/Help/OnceHelp).
type Level uint8

const (
	// Bug indicates an internal-compiler-error condition: the compiler
	// itself reached a state it asserts cannot happen. Emitting a Bug
	// triggers an aborting internal-error path after rendering.
	Bug Level = iota

	// Fatal indicates an unrecoverable condition for the current
	// operation. Emitting a Fatal triggers an aborting path after
	// rendering.
	Fatal

	// Error indicates a reported failure; processing may continue but the
	// overall result is unsuccessful.
	Error

	// Warning indicates a condition worth flagging that does not by
	// itself make the result unsuccessful.
	Warning

	// Note is an informational sub-diagnostic attached to a primary one.
	Note

	// OnceNote is a Note that is suppressed after the first time an
	// identical one is emitted within a Context's lifetime.
	OnceNote

	// Help suggests a fix.
	Help

	// OnceHelp is a Help suppressed after its first identical emission.
	OnceHelp

	// FailureNote is a sub-diagnostic that itself counts toward failure
	// (used when a note carries independent error weight).
	FailureNote

	// Allow marks a diagnostic as suppressed entirely; emitting an
	// Allow-level diagnostic (Builder.EmitPlain) is a no-op that never
	// reaches the sink or counters.
	Allow
)

// String returns the canonical lowercase label for the level.
func (l Level) String() string {
	switch l {
	case Bug:
		return "bug"
	case Fatal:
		return "fatal"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	case OnceNote:
		return "note"
	case Help:
		return "help"
	case OnceHelp:
		return "help"
	case FailureNote:
		return "error"
	case Allow:
		return "allow"
	default:
		return "unknown"
	}
}

// IsError reports whether l counts toward a Context's failure state:
// true for Bug, Fatal, Error, and FailureNote.
func (l Level) IsError() bool {
	switch l {
	case Bug, Fatal, Error, FailureNote:
		return true
	default:
		return false
	}
}

// isOnce reports whether l is subject to once-per-Context suppression.
func (l Level) isOnce() bool {
	return l == OnceNote || l == OnceHelp
}

// BugAbort is the emission guarantee returned by emitting a Bug-level
// diagnostic. Its mere existence documents "this code path reported an
// internal-compiler-error"; it carries no data.
type BugAbort struct{ _ struct{} }

// FatalAbort is the emission guarantee returned by emitting a Fatal-level
// diagnostic.
type FatalAbort struct{ _ struct{} }

// ErrorGuaranteed is the emission guarantee returned by emitting an
// Error-level diagnostic. Downstream code that holds one can return it (or
// a value derived from it) to prove upward that a failure was already
// reported, rather than reporting the same failure twice.
type ErrorGuaranteed struct{ _ struct{} }
