package diag

import (
	"sync"

	"github.com/malik672/solar-lexcore/sourcemap"
)

// sourceMapped is implemented by emitters that are bound to a SourceMap
// (Human, HumanBuffer, JSON). Silent implements no such binding and is
// treated as having none.
type sourceMapped interface {
	SourceMap() *sourcemap.SourceMap
}

// ColorChoice selects whether the Human emitter writes ANSI escapes.
type ColorChoice uint8

const (
	ColorAuto ColorChoice = iota
	ColorAlways
	ColorNever
)

// Emitter renders one Diagnostic. Implementations: Human, HumanBuffer,
// JSON, Silent.
type Emitter interface {
	EmitDiagnostic(d Diagnostic)
}

// BugSignal is the value panic carries when a Bug-level diagnostic is
// emitted, after rendering has already happened. It is not recovered
// anywhere in this module: it unwinds the emitting goroutine.
type BugSignal struct{ Diagnostic Diagnostic }

// FatalSignal is the value panic carries when a Fatal-level diagnostic is
// emitted, after rendering has already happened. session.Scope.Spawn
// recovers it, so a Fatal ends only the spawned task that emitted it.
type FatalSignal struct{ Diagnostic Diagnostic }

// Context holds the diagnostic emission state shared across a compilation
// session: a sink, per-level counters, a deduplication set, and a
// once-fingerprint set for OnceNote/OnceHelp suppression. All mutation
// happens inside emit, guarded by a single mutex, matching the teacher's
// collector: readers observe a consistent snapshot, writers are serialized.
type Context struct {
	mu sync.Mutex

	sink Emitter

	treatWarningsAsErrors bool
	emitWarnings          bool
	deduplicate           bool

	onceFingerprints map[string]struct{}
	dedupCounts      map[string]int

	counts [10]int // indexed by Level (Allow's slot is never incremented)
}

// ContextOption configures a Context at construction.
type ContextOption func(*Context)

// WithTreatWarningsAsErrors upgrades Warning to Error severity for the
// purposes of EmittedErrors() and Count(), without changing the rendered
// level.
func WithTreatWarningsAsErrors(on bool) ContextOption {
	return func(c *Context) { c.treatWarningsAsErrors = on }
}

// WithEmitWarnings controls whether Warning-level diagnostics reach the
// sink at all; false silently drops them before rendering.
func WithEmitWarnings(on bool) ContextOption {
	return func(c *Context) { c.emitWarnings = on }
}

// WithDeduplicate enables fingerprint-based deduplication: a second
// emission identical to one already emitted (per Diagnostic.Equal) is
// counted but not re-rendered.
func WithDeduplicate(on bool) ContextOption {
	return func(c *Context) { c.deduplicate = on }
}

// NewContext creates a Context that renders through sink.
func NewContext(sink Emitter, opts ...ContextOption) *Context {
	c := &Context{
		sink:             sink,
		emitWarnings:     true,
		onceFingerprints: make(map[string]struct{}),
		dedupCounts:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Diagnostic starts building a diagnostic at the given level with the given
// top-level message. The returned Builder is bound to c and must be
// consumed via Emit/EmitFatal/EmitBug/EmitPlain or Cancel.
func (c *Context) Diagnostic(level Level, message string) *Builder {
	return newBuilder(c, level, message)
}

// emit implements the Emission algorithm: fingerprint, once-suppression,
// deduplication, sink, counters, then the Bug/Fatal abort path.
func (c *Context) emit(d Diagnostic) {
	if d.level == Allow {
		return
	}

	fp := d.Fingerprint()

	c.mu.Lock()
	if d.level.isOnce() {
		if _, seen := c.onceFingerprints[fp]; seen {
			c.mu.Unlock()
			return
		}
		c.onceFingerprints[fp] = struct{}{}
	}

	if c.deduplicate {
		n := c.dedupCounts[fp]
		c.dedupCounts[fp] = n + 1
		if n > 0 {
			c.mu.Unlock()
			return
		}
	}

	if d.level == Warning && !c.emitWarnings {
		c.mu.Unlock()
		return
	}

	effectiveLevel := d.level
	if c.treatWarningsAsErrors && effectiveLevel == Warning {
		effectiveLevel = Error
	}
	c.counts[effectiveLevel]++

	// The sink call stays under c.mu: two goroutines racing into
	// EmitDiagnostic would otherwise corrupt a shared writer (a
	// HumanBuffer's buf, or an *os.File's offset under concurrent
	// non-atomic writes). Only the Bug/Fatal abort signal fires outside
	// the lock, since it unwinds the calling goroutine rather than
	// returning.
	if c.sink != nil {
		c.sink.EmitDiagnostic(d)
	}
	c.mu.Unlock()

	switch d.level {
	case Bug:
		panic(BugSignal{Diagnostic: d})
	case Fatal:
		panic(FatalSignal{Diagnostic: d})
	}
}

// EmittedErrors reports whether any Bug, Fatal, Error, or FailureNote
// diagnostic (or, under WithTreatWarningsAsErrors, any Warning) has been
// emitted — i.e. whether the compilation so far is unsuccessful.
func (c *Context) EmittedErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[Bug] > 0 || c.counts[Fatal] > 0 || c.counts[Error] > 0 || c.counts[FailureNote] > 0
}

// Count returns how many diagnostics of exactly this level have been
// emitted (post once/dedup suppression).
func (c *Context) Count(level Level) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if int(level) >= len(c.counts) {
		return 0
	}
	return c.counts[level]
}

// SourceMap returns the SourceMap the context's sink renders spans
// against, or nil if the sink carries none (e.g. Silent, or a Human/JSON
// emitter constructed with a nil SourceMap). Session uses this to enforce
// that a session's source map and its diagnostic context's source map are
// the same object.
func (c *Context) SourceMap() *sourcemap.SourceMap {
	sm, ok := c.sink.(sourceMapped)
	if !ok {
		return nil
	}
	return sm.SourceMap()
}
