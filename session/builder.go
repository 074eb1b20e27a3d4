package session

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/malik672/solar-lexcore/diag"
	"github.com/malik672/solar-lexcore/sourcemap"
)

// Builder constructs a Session. It follows the teacher's owned-builder
// style: every With*/emitter method returns the same *Builder for
// chaining, and Build consumes it.
type Builder struct {
	dcx       *diag.Context
	sourceMap *sourcemap.SourceMap
	opts      Opts
	logger    commonlog.Logger
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Dcx sets the diagnostic context directly. Prefer the With*Emitter helpers
// below when you don't already have one.
func (b *Builder) Dcx(dcx *diag.Context) *Builder {
	b.dcx = dcx
	return b
}

// SourceMap sets the session's source map explicitly.
func (b *Builder) SourceMap(sm *sourcemap.SourceMap) *Builder {
	b.sourceMap = sm
	return b
}

// WithOpts sets the session's options.
func (b *Builder) WithOpts(opts Opts) *Builder {
	b.opts = opts
	return b
}

// WithLogger installs a commonlog.Logger for session-start and
// EnterParallel entry/exit events. Logging happens only at Debug level,
// never on the hot per-token path.
func (b *Builder) WithLogger(logger commonlog.Logger) *Builder {
	b.logger = logger
	return b
}

// Threads sets the number of threads to use for parallelism. Zero (the
// default) resolves to the number of logical cores at Build time.
func (b *Builder) Threads(n int) *Builder {
	b.opts.Threads = n
	return b
}

// SingleThreaded disables parallelism.
func (b *Builder) SingleThreaded() *Builder {
	return b.Threads(1)
}

// getOrCreateSourceMap returns b.sourceMap, creating a fresh one if unset —
// the Go analogue of get_or_insert_default on the original's Arc<SourceMap>.
func (b *Builder) getOrCreateSourceMap() *sourcemap.SourceMap {
	if b.sourceMap == nil {
		b.sourceMap = sourcemap.New()
	}
	return b.sourceMap
}

// WithStderrEmitter sets the diagnostic context to a Human emitter writing
// to os.Stderr with the given color policy.
func (b *Builder) WithStderrEmitter(color diag.ColorChoice) *Builder {
	sm := b.getOrCreateSourceMap()
	b.dcx = diag.NewContext(diag.NewHuman(os.Stderr, sm, color))
	return b
}

// WithWriterEmitter sets the diagnostic context to a Human emitter writing
// to w with the given color policy.
func (b *Builder) WithWriterEmitter(w io.Writer, color diag.ColorChoice) *Builder {
	sm := b.getOrCreateSourceMap()
	b.dcx = diag.NewContext(diag.NewHuman(w, sm, color))
	return b
}

// WithBufferEmitter sets the diagnostic context to a Human emitter that
// renders into an in-memory buffer — used by tests. The Context does not
// expose its sink, so the rendered text is not reachable from the built
// Session; build the HumanBuffer yourself and pass it via Dcx to read it.
func (b *Builder) WithBufferEmitter(color diag.ColorChoice) *Builder {
	sm := b.getOrCreateSourceMap()
	b.dcx = diag.NewContext(diag.NewHumanBuffer(sm, color))
	return b
}

// WithJSONEmitter sets the diagnostic context to a JSON-Lines emitter
// writing to w.
func (b *Builder) WithJSONEmitter(w io.Writer) *Builder {
	sm := b.getOrCreateSourceMap()
	b.dcx = diag.NewContext(diag.NewJSON(w, sm))
	return b
}

// WithSilentEmitter sets the diagnostic context to an emitter that discards
// everything, optionally recording fatalNote on a Fatal emission.
func (b *Builder) WithSilentEmitter(fatalNote string) *Builder {
	b.dcx = diag.NewContext(diag.NewSilent(fatalNote))
	return b
}

// Build consumes the Builder and returns the constructed Session. If no
// source map was supplied explicitly, the one bound to the diagnostic
// context's sink is adopted (SessionBuilder::build's
// `self.source_map = dcx.source_map_mut().cloned()`); only once that
// adoption has had its chance does Build fall back to a fresh source map.
// Panics if no diagnostic context was set, or if an explicitly-supplied
// source map is not the same object as the context's — the construction
// invariant ported from SessionBuilder::build's Arc::ptr_eq assertion.
func (b *Builder) Build() *Session {
	if b.dcx == nil {
		panic("session: diagnostics context not set")
	}
	if b.sourceMap == nil {
		b.sourceMap = b.dcx.SourceMap()
	}
	if b.sourceMap == nil {
		b.sourceMap = sourcemap.New()
	}
	if dcxSM := b.dcx.SourceMap(); dcxSM != nil && dcxSM != b.sourceMap {
		panic("session: session source map does not match the one in the diagnostics context")
	}

	sess := &Session{
		dcx:           b.dcx,
		sourceMap:     b.sourceMap,
		opts:          b.opts,
		logger:        b.logger,
		sessionID:     sessionCounter.Add(1),
		correlationID: uuid.New(),
	}
	sess.debugf("session %d started (correlation %s, threads %d)",
		sess.sessionID, sess.correlationID, sess.Threads())
	return sess
}
