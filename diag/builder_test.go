package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malik672/solar-lexcore/span"
)

func newTestContext() (*Context, *HumanBuffer) {
	hb := NewHumanBuffer(nil, ColorNever)
	return NewContext(hb), hb
}

func TestEmitReturnsErrorGuaranteedAndRenders(t *testing.T) {
	ctx, hb := newTestContext()
	g := ctx.Diagnostic(Error, "bad token").WithSpan(span.New(0, 1)).Emit()
	assert.Equal(t, ErrorGuaranteed{}, g)
	assert.Contains(t, hb.EmittedDiagnostics(), "bad token")
}

func TestEmitPanicsOnLevelMismatch(t *testing.T) {
	ctx, _ := newTestContext()
	assert.Panics(t, func() {
		ctx.Diagnostic(Warning, "just a warning").Emit()
	})
}

func TestEmitBugPanicsOnLevelMismatch(t *testing.T) {
	ctx, _ := newTestContext()
	assert.Panics(t, func() {
		ctx.Diagnostic(Error, "not a bug").EmitBug()
	})
}

func TestCancelDiscardsWithoutRendering(t *testing.T) {
	ctx, hb := newTestContext()
	ctx.Diagnostic(Error, "never rendered").Cancel()
	assert.Empty(t, hb.EmittedDiagnostics())
}

func TestDoubleConsumePanics(t *testing.T) {
	ctx, _ := newTestContext()
	b := ctx.Diagnostic(Warning, "x")
	b.EmitPlain()
	assert.Panics(t, func() { b.EmitPlain() })
}

func TestCancelAfterEmitPanics(t *testing.T) {
	ctx, _ := newTestContext()
	b := ctx.Diagnostic(Warning, "x")
	b.EmitPlain()
	assert.Panics(t, func() { b.Cancel() })
}

func TestEmitBugTriggersBugSignalPanic(t *testing.T) {
	ctx, _ := newTestContext()
	defer func() {
		r := recover()
		bs, ok := r.(BugSignal)
		assert.True(t, ok)
		assert.Equal(t, "internal invariant violated", bs.Diagnostic.Message())
	}()
	ctx.Diagnostic(Bug, "internal invariant violated").EmitBug()
	t.Fatal("expected panic")
}

func TestEmitFatalTriggersFatalSignalPanic(t *testing.T) {
	ctx, _ := newTestContext()
	defer func() {
		r := recover()
		fs, ok := r.(FatalSignal)
		assert.True(t, ok)
		assert.Equal(t, "out of memory", fs.Diagnostic.Message())
	}()
	ctx.Diagnostic(Fatal, "out of memory").EmitFatal()
	t.Fatal("expected panic")
}

func TestNoteAndHelpSubDiagnosticsAttach(t *testing.T) {
	ctx, hb := newTestContext()
	ctx.Diagnostic(Error, "parse failure").
		WithSpan(span.New(0, 1)).
		Note("expected a semicolon").
		Help("add ';' here").
		Emit()

	out := hb.EmittedDiagnostics()
	assert.Contains(t, out, "expected a semicolon")
	assert.Contains(t, out, "add ';' here")
}

func TestOnceNoteSuppressedAfterFirstEmission(t *testing.T) {
	ctx, hb := newTestContext()
	for i := 0; i < 3; i++ {
		ctx.Diagnostic(OnceNote, "only once").EmitPlain()
	}
	out := hb.EmittedDiagnostics()
	assert.Equal(t, 1, strings.Count(out, "only once"))
}
