// Package diag implements the diagnostic model and emission pipeline shared
// by the lexer and everything downstream: structured diagnostics with a
// level, a primary message and zero or more sub-diagnostics, a MultiSpan,
// an optional stable DiagId, and a must-consume Builder bound to a Context.
//
// A Builder is only ever terminated by Emit (append to the context, return
// an emission guarantee) or Cancel (discard). Letting a Builder go out of
// scope unconsumed is a programmer error; in debug builds (the
// solar_debug_assertions build tag, or SOLAR_DEBUG_ASSERTIONS=1) this is
// caught by a runtime.SetFinalizer callback that panics.
package diag
