// Package session ties a diagnostic context and a source map together into
// a single compilation session, and provides the sequential/parallel work
// dispatch (Enter, EnterParallel, Scope, Join) every later compiler pass
// runs inside. It is the Go analogue of solar's interface::Session, with
// rayon's thread pool replaced by one goroutine per spawned task from
// golang.org/x/sync's errgroup, bounded by a semaphore (see pool.go).
package session

import (
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/malik672/solar-lexcore/diag"
	"github.com/malik672/solar-lexcore/sourcemap"
)

// sessionCounter is the only process-wide mutable state this package keeps:
// an atomic counter minting unique session ids, mirroring the original's
// own SESSION_COUNTER.
var sessionCounter atomic.Uint64

// Session bundles a diagnostic context, a source map, and the options that
// govern how the rest of the pipeline runs. Construct one via Builder, New,
// or Empty; the zero value is not usable.
type Session struct {
	dcx       *diag.Context
	sourceMap *sourcemap.SourceMap
	opts      Opts
	logger    commonlog.Logger

	sessionID     uint64
	correlationID uuid.UUID
}

// New creates a Session with the given diagnostic context and source map.
// Panics if dcx's sink is bound to a different, non-nil source map than sm
// (the construction invariant ported from SessionBuilder::build's
// Arc::ptr_eq assertion).
func New(dcx *diag.Context, sm *sourcemap.SourceMap) *Session {
	return NewBuilder().Dcx(dcx).SourceMap(sm).Build()
}

// Empty creates a Session with the given diagnostic context and a fresh,
// empty source map.
func Empty(dcx *diag.Context) *Session {
	return NewBuilder().Dcx(dcx).Build()
}

// Dcx returns the session's diagnostic context.
func (s *Session) Dcx() *diag.Context { return s.dcx }

// SourceMap returns the session's source map.
func (s *Session) SourceMap() *sourcemap.SourceMap { return s.sourceMap }

// Opts returns the session's options.
func (s *Session) Opts() Opts { return s.opts }

// SessionID returns the process-local, monotonically increasing id minted
// for this session.
func (s *Session) SessionID() uint64 { return s.sessionID }

// CorrelationID returns the session's externally-shareable correlation id,
// suitable for tagging log lines across a single solarlex invocation.
func (s *Session) CorrelationID() uuid.UUID { return s.correlationID }

// Validate checks the session's options (currently: no duplicate --emit
// kind) and, on failure, both emits a diagnostic describing the problem and
// returns an error. Mirrors Session::validate in the original.
func (s *Session) Validate() error {
	if err := s.opts.Validate(); err != nil {
		s.dcx.Diagnostic(diag.Error, err.Error()).Emit()
		return err
	}
	return nil
}

// Unstable returns the session's unstable flags.
func (s *Session) Unstable() UnstableOpts { return s.opts.Unstable }

// Threads returns the resolved number of worker threads: Opts.Threads
// verbatim if nonzero, otherwise the number of logical CPUs, matching the
// original's "zero specifies the number of logical cores".
func (s *Session) Threads() int {
	if s.opts.Threads > 0 {
		return s.opts.Threads
	}
	return runtime.NumCPU()
}

// IsSequential reports whether parallelism is disabled.
func (s *Session) IsSequential() bool { return s.Threads() == 1 }

// IsParallel reports whether parallelism is enabled.
func (s *Session) IsParallel() bool { return !s.IsSequential() }

// StopAfter reports whether compilation should stop after the given stage.
func (s *Session) StopAfter(stage Stage) bool { return s.opts.stopAfter(stage) }

// DoEmit reports whether the given output kind should be emitted.
func (s *Session) DoEmit(kind EmitKind) bool { return s.opts.doEmit(kind) }

// EmittedErrors reports whether any error-class diagnostic has been
// emitted through this session's context so far.
func (s *Session) EmittedErrors() bool { return s.dcx.EmittedErrors() }

func (s *Session) debugf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debugf(format, args...)
	}
}
