package session

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/malik672/solar-lexcore/diag"
	"github.com/malik672/solar-lexcore/span"
)

// Enter installs this session's globals (currently: the active source map,
// for Span's debug formatting) and runs f. Recursing into Enter from inside
// an already-entered call for the same session is a no-op: f runs directly,
// reusing the globals already installed by the outer call.
func (s *Session) Enter(f func()) {
	if s.alreadyEntered() {
		f()
		return
	}
	restore := s.installGlobals()
	defer restore()

	span.SetActiveFormatter(s.sourceMap)
	defer span.SetActiveFormatter(nil)

	f()
}

// EnterParallel installs this session's globals and runs f on the calling
// goroutine. It builds no pool of its own: RunScope and Join, called from
// inside f, each bound their own fan-out by Threads(). If the session is
// sequential, f runs directly without the thread-count check below.
// Recursing from inside an already-entered call for the same session is a
// no-op, same as Enter.
//
// On pool construction failure — Threads() resolving to zero, which cannot
// happen through the public Opts/Threads path but is checked here because
// the original's corresponding failure (rayon::ThreadPoolBuilder::build
// erroring, e.g. under a restrictive sandbox) is a real, user-visible
// condition this port preserves — EnterParallel emits a Fatal diagnostic
// whose help text reads "try running with --threads 1 to disable
// parallelism" and then aborts via the diagnostic context's Fatal path.
func (s *Session) EnterParallel(f func()) {
	if s.alreadyEntered() {
		f()
		return
	}
	restore := s.installGlobals()
	defer restore()

	span.SetActiveFormatter(s.sourceMap)
	defer span.SetActiveFormatter(nil)

	if s.IsSequential() {
		f()
		return
	}

	threads := s.Threads()
	if threads <= 0 {
		s.dcx.Diagnostic(diag.Fatal, "failed to build the worker pool: resolved thread count is zero").
			Help("try running with --threads 1 to disable parallelism").
			EmitFatal()
		return
	}

	s.debugf("entering parallel pool: %d threads", threads)
	defer s.debugf("leaving parallel pool: %d threads", threads)

	f()
}

// Join runs a and b, in parallel if the session allows it, sequentially
// otherwise, and returns both results once both have finished.
func Join[A, B any](s *Session, a func() A, b func() B) (A, B) {
	if s.IsSequential() {
		return a(), b()
	}

	var ra A
	var rb B
	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error { ra = a(); return nil })
	g.Go(func() error { rb = b(); return nil })
	_ = g.Wait()
	return ra, rb
}

// Scope is a fork-join admission gate: Spawn schedules a closure to run
// concurrently (subject to the session's thread count), and Wait blocks
// until every spawned closure has returned. It is the Go analogue of
// rayon::Scope, built on an errgroup bounded by a semaphore sized to
// Threads() in place of a thread-pool-native scope primitive.
type Scope struct {
	ctx  context.Context
	g    *errgroup.Group
	sema *semaphore.Weighted
	seq  bool
}

// Spawn schedules f to run as part of the scope. If the session is
// sequential, f runs immediately, inline, on the calling goroutine. A
// diag.FatalSignal raised by f ends only that task and is recovered here;
// any other panic propagates.
func (sc *Scope) Spawn(f func()) {
	task := func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(diag.FatalSignal); !ok {
					panic(r)
				}
			}
		}()
		f()
	}
	if sc.seq {
		task()
		return
	}
	sc.g.Go(func() error {
		if err := sc.sema.Acquire(sc.ctx, 1); err != nil {
			return err
		}
		defer sc.sema.Release(1)
		task()
		return nil
	})
}

// Wait blocks until every closure spawned on the scope has returned.
func (sc *Scope) Wait() {
	_ = sc.g.Wait()
}

// RunScope executes op inside a fork-join scope sized to the session's
// thread count, waiting for every spawned closure before returning op's
// result. This is the Go analogue of Session::scope.
func RunScope[R any](s *Session, op func(*Scope) R) R {
	seq := s.IsSequential()
	g, ctx := errgroup.WithContext(context.Background())
	sc := &Scope{ctx: ctx, g: g, seq: seq}
	if !seq {
		sc.sema = semaphore.NewWeighted(int64(s.Threads()))
	}
	result := op(sc)
	sc.Wait()
	return result
}
