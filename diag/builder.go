package diag

import (
	"fmt"
	"os"
	"runtime"

	"github.com/malik672/solar-lexcore/span"
)

// debugAssertionsEnabled gates the must-consume leak detector: either the
// binary was built with the solar_debug_assertions tag (see
// builder_debug.go / builder_release.go) or the environment opts in at
// process start.
var debugAssertionsEnabled = buildTagDebugAssertions || os.Getenv("SOLAR_DEBUG_ASSERTIONS") != ""

// Builder constructs a Diagnostic bound to a Context. It is must-consume:
// the only legal terminations are Emit (append to the context, return an
// emission guarantee whose type matches the level) or Cancel (discard
// without emission). Letting a Builder go out of scope without calling
// either is a programmer error; under debug assertions this is caught by a
// finalizer that panics.
type Builder struct {
	ctx  *Context
	diag Diagnostic

	consumed bool
}

// newBuilder is called by Context.Diagnostic; callers reach it only through
// the Context so every Builder is bound to exactly one sink.
func newBuilder(ctx *Context, level Level, message string) *Builder {
	b := &Builder{
		ctx: ctx,
		diag: Diagnostic{
			level:    level,
			messages: []MessagePart{Plain(message)},
			site:     captureSite(2),
		},
	}
	if debugAssertionsEnabled {
		runtime.SetFinalizer(b, func(b *Builder) {
			if !b.consumed {
				panic(fmt.Sprintf(
					"diag.Builder: diagnostic %q constructed at %s was never Emit'd or Cancel'd",
					b.diag.Message(), b.diag.Site()))
			}
		})
	}
	return b
}

// WithSpan sets the primary span.
func (b *Builder) WithSpan(s span.Span) *Builder {
	b.diag.span = NewMultiSpan(s)
	return b
}

// WithId sets the diagnostic's stable DiagId.
func (b *Builder) WithId(id DiagId) *Builder {
	b.diag.id = id
	return b
}

// WithLabel attaches a secondary (span, message) label to the primary
// MultiSpan.
func (b *Builder) WithLabel(s span.Span, message string) *Builder {
	b.diag.span = b.diag.span.WithLabel(s, message)
	return b
}

// WithMessage appends an additional top-level message part.
func (b *Builder) WithMessage(part MessagePart) *Builder {
	b.diag.messages = append(b.diag.messages, part)
	return b
}

func (b *Builder) withSub(level Level, message string, spans ...span.Span) *Builder {
	sub := SubDiagnostic{Level: level, Messages: []MessagePart{Plain(message)}}
	if len(spans) > 0 {
		sub.Span = NewMultiSpan(spans[0])
		for _, s := range spans[1:] {
			sub.Span = sub.Span.WithLabel(s, "")
		}
	}
	b.diag.subs = append(b.diag.subs, sub)
	return b
}

// Warning attaches a Warning-level sub-diagnostic, optionally spanned.
func (b *Builder) Warning(message string, spans ...span.Span) *Builder {
	return b.withSub(Warning, message, spans...)
}

// Note attaches a Note-level sub-diagnostic, optionally spanned.
func (b *Builder) Note(message string, spans ...span.Span) *Builder {
	return b.withSub(Note, message, spans...)
}

// OnceNote attaches a OnceNote-level sub-diagnostic, optionally spanned.
func (b *Builder) OnceNote(message string, spans ...span.Span) *Builder {
	return b.withSub(OnceNote, message, spans...)
}

// Help attaches a Help-level sub-diagnostic, optionally spanned.
func (b *Builder) Help(message string, spans ...span.Span) *Builder {
	return b.withSub(Help, message, spans...)
}

// OnceHelp attaches a OnceHelp-level sub-diagnostic, optionally spanned.
func (b *Builder) OnceHelp(message string, spans ...span.Span) *Builder {
	return b.withSub(OnceHelp, message, spans...)
}

// StyledNote attaches a Note-level sub-diagnostic built from multi-segment
// styled text (e.g. a suggested-edit rendering with addition/removal
// segments), optionally spanned.
func (b *Builder) StyledNote(parts []MessagePart, spans ...span.Span) *Builder {
	sub := SubDiagnostic{Level: Note, Messages: parts}
	if len(spans) > 0 {
		sub.Span = NewMultiSpan(spans[0])
	}
	b.diag.subs = append(b.diag.subs, sub)
	return b
}

// Cancel discards the builder without emitting. It satisfies the
// must-consume requirement; calling Cancel twice, or calling it after Emit,
// panics.
func (b *Builder) Cancel() {
	if b.consumed {
		panic("diag.Builder: Cancel called on an already-consumed builder")
	}
	b.consumed = true
}

// emit is the untyped emission path shared by the typed Emit* wrappers
// below; it hands the built Diagnostic to the Context and marks the
// builder consumed.
func (b *Builder) emit() Diagnostic {
	if b.consumed {
		panic("diag.Builder: Emit called on an already-consumed builder")
	}
	b.consumed = true
	b.ctx.emit(b.diag)
	return b.diag
}

// EmitBug emits a Bug-level diagnostic and returns the guarantee that an
// internal-compiler-error path has run. Panics if the builder's level is
// not Bug.
func (b *Builder) EmitBug() BugAbort {
	if b.diag.level != Bug {
		panic(fmt.Sprintf("diag.Builder.EmitBug: level is %s, not bug", b.diag.level))
	}
	b.emit()
	return BugAbort{}
}

// EmitFatal emits a Fatal-level diagnostic and returns the guarantee that
// an aborting path has run. Panics if the builder's level is not Fatal.
func (b *Builder) EmitFatal() FatalAbort {
	if b.diag.level != Fatal {
		panic(fmt.Sprintf("diag.Builder.EmitFatal: level is %s, not fatal", b.diag.level))
	}
	b.emit()
	return FatalAbort{}
}

// Emit emits an Error-level diagnostic and returns a proof that the failure
// was reported. Panics if the builder's level is not Error.
func (b *Builder) Emit() ErrorGuaranteed {
	if b.diag.level != Error {
		panic(fmt.Sprintf("diag.Builder.Emit: level is %s, not error", b.diag.level))
	}
	b.emit()
	return ErrorGuaranteed{}
}

// EmitPlain emits a diagnostic whose level carries no guarantee type
// (Warning, Note, OnceNote, Help, OnceHelp, FailureNote, Allow).
func (b *Builder) EmitPlain() {
	b.emit()
}
