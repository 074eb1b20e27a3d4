package session

import "sync/atomic"

// currentlyEntered tracks which Session's globals are installed for the
// dynamic extent of the innermost Enter/EnterParallel call on the current
// call stack. Go goroutines have no thread-local storage the way rayon's
// worker threads do, but Enter/EnterParallel/Scope/Join are synchronous
// (the closure runs to completion before the entering call returns), so a
// single package-level pointer serves the same purpose as the original's
// thread-local SessionGlobals: it lets a nested Enter call recognize "this
// session is already active" and skip reinstalling it.
var currentlyEntered atomic.Pointer[Session]

// alreadyEntered reports whether s's globals are already installed on the
// current call stack, i.e. whether this is a recursive call into
// Enter/EnterParallel from inside an already-running closure for the same
// session. Per §4.H's recursion rule, such a call is a no-op: it runs the
// closure directly instead of reinstalling globals or rebuilding a pool.
func (s *Session) alreadyEntered() bool {
	return currentlyEntered.Load() == s
}

// installGlobals installs s as the currently-entered session and returns a
// restore function that puts back whatever was installed before (nil if
// nothing was).
func (s *Session) installGlobals() (restore func()) {
	prev := currentlyEntered.Swap(s)
	return func() { currentlyEntered.Store(prev) }
}
