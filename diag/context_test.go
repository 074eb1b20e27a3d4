package diag

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malik672/solar-lexcore/span"
)

func TestEmittedErrorsFalseInitially(t *testing.T) {
	ctx, _ := newTestContext()
	assert.False(t, ctx.EmittedErrors())
}

func TestEmittedErrorsTrueAfterError(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.Diagnostic(Error, "boom").WithSpan(span.New(0, 1)).Emit()
	assert.True(t, ctx.EmittedErrors())
}

func TestEmittedErrorsFalseForWarningsOnly(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.Diagnostic(Warning, "heads up").EmitPlain()
	assert.False(t, ctx.EmittedErrors())
}

func TestTreatWarningsAsErrorsUpgradesCount(t *testing.T) {
	hb := NewHumanBuffer(nil, ColorNever)
	ctx := NewContext(hb, WithTreatWarningsAsErrors(true))
	ctx.Diagnostic(Warning, "heads up").EmitPlain()
	assert.True(t, ctx.EmittedErrors())
	assert.Equal(t, 1, ctx.Count(Error))
	assert.Equal(t, 0, ctx.Count(Warning))
}

func TestEmitWarningsFalseDropsBeforeRendering(t *testing.T) {
	hb := NewHumanBuffer(nil, ColorNever)
	ctx := NewContext(hb, WithEmitWarnings(false))
	ctx.Diagnostic(Warning, "suppressed").EmitPlain()
	assert.Empty(t, hb.EmittedDiagnostics())
	assert.Equal(t, 0, ctx.Count(Warning))
}

func TestAllowLevelNeverReachesSinkOrCounters(t *testing.T) {
	hb := NewHumanBuffer(nil, ColorNever)
	ctx := NewContext(hb)
	ctx.Diagnostic(Allow, "ignored").EmitPlain()
	assert.Empty(t, hb.EmittedDiagnostics())
	assert.Equal(t, 0, ctx.Count(Allow))
}

func TestConcurrentEmitDoesNotCorruptSink(t *testing.T) {
	hb := NewHumanBuffer(nil, ColorNever)
	ctx := NewContext(hb)

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			ctx.Diagnostic(Error, "concurrent failure").WithSpan(span.New(0, 1)).Emit()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, goroutines, ctx.Count(Error))
	assert.Equal(t, goroutines, strings.Count(hb.EmittedDiagnostics(), "concurrent failure"))
}

func TestDeduplicationCountsButDoesNotRerender(t *testing.T) {
	hb := NewHumanBuffer(nil, ColorNever)
	ctx := NewContext(hb, WithDeduplicate(true))
	for i := 0; i < 5; i++ {
		ctx.Diagnostic(Error, "repeated failure").WithSpan(span.New(2, 4)).Emit()
	}
	assert.Equal(t, 1, ctx.Count(Error))
	out := hb.EmittedDiagnostics()
	assert.Equal(t, 1, strings.Count(out, "repeated failure"))
}
