package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malik672/solar-lexcore/span"
)

func TestMultiSpanLabels(t *testing.T) {
	ms := NewMultiSpan(span.New(0, 5))
	ms = ms.WithLabel(span.New(10, 15), "previous definition here")
	require.Len(t, ms.Labels(), 1)
	assert.Equal(t, "previous definition here", ms.Labels()[0].Message)
	assert.Equal(t, span.New(0, 5), ms.Primary())
}

func TestDiagnosticEqualIgnoresConstructionSite(t *testing.T) {
	sink := NewHumanBuffer(nil, ColorNever)
	ctx := NewContext(sink, WithDeduplicate(true))

	ctx.Diagnostic(Error, "duplicate symbol").WithSpan(span.New(0, 3)).Emit()
	ctx.Diagnostic(Error, "duplicate symbol").WithSpan(span.New(0, 3)).Emit()

	// Both diagnostics were built at different call sites above but are
	// otherwise identical; dedup should treat them as equal fingerprints.
	assert.Equal(t, 1, ctx.Count(Error))
}

func TestDiagnosticFingerprintDiffersOnMessage(t *testing.T) {
	ctx := NewContext(NewHumanBuffer(nil, ColorNever), WithDeduplicate(false))
	ctx.Diagnostic(Error, "first").WithSpan(span.New(0, 1)).Emit()
	ctx.Diagnostic(Error, "second").WithSpan(span.New(0, 1)).Emit()
	assert.Equal(t, 2, ctx.Count(Error))
}
