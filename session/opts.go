package session

import (
	"errors"
	"fmt"

	"github.com/malik672/solar-lexcore/diag"
)

// Language selects the input grammar. Unlike the original Rust session,
// this is never auto-detected from file extensions (see SPEC_FULL §12);
// callers must set it explicitly.
type Language uint8

const (
	LanguageSolidity Language = iota
	LanguageYul
)

func (l Language) String() string {
	switch l {
	case LanguageSolidity:
		return "solidity"
	case LanguageYul:
		return "yul"
	default:
		return "unknown"
	}
}

// Stage names a point in the compilation pipeline that StopAfter can target.
// This module implements lexing only, so StageLex is presently the only
// meaningful stage; the type stays an ordered enum rather than a bool so a
// future stage slots in without changing Opts' shape.
type Stage uint8

const (
	StageLex Stage = iota
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	default:
		return "unknown"
	}
}

// EmitKind names an output format the driver can render diagnostics (and,
// eventually, other compiler artifacts) through.
type EmitKind uint8

const (
	EmitHuman EmitKind = iota
	EmitJSON
)

func (k EmitKind) String() string {
	switch k {
	case EmitHuman:
		return "human"
	case EmitJSON:
		return "json"
	default:
		return "unknown"
	}
}

// UnstableOpts carries experimental, unstable flags by name. Presence of a
// key with value true enables that flag; unrecognized keys are accepted and
// simply inert, matching the original's "unstable options are not
// individually validated" posture.
type UnstableOpts map[string]bool

// Get reports whether the named unstable flag is set.
func (u UnstableOpts) Get(name string) bool {
	return u[name]
}

// ErrDuplicateEmitKind is returned by Opts.Validate when the same EmitKind
// appears more than once in Emit.
var ErrDuplicateEmitKind = errors.New("session: duplicate --emit kind")

// Opts is the compiler session's configuration surface: thread count,
// requested output kinds, how far to run the pipeline, the input language,
// color policy, and unstable flags. It is the Go analogue of
// solar_config::Opts, trimmed to what a lexical core needs.
type Opts struct {
	Input       []string
	Threads     int
	Emit        []EmitKind
	StopAfter   *Stage
	Language    Language
	ColorChoice diag.ColorChoice
	Unstable    UnstableOpts
}

// Validate checks the options for a duplicate --emit kind, mirroring
// Session::validate's check_unique("emit", ...) in the original. It returns
// the first duplicate found, wrapped in ErrDuplicateEmitKind.
func (o Opts) Validate() error {
	seen := make(map[EmitKind]struct{}, len(o.Emit))
	for _, k := range o.Emit {
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%w: cannot specify `--emit %s` twice", ErrDuplicateEmitKind, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// stopAfter reports whether compilation should stop once stage has run,
// i.e. whether o.StopAfter is set and is at or before stage.
func (o Opts) stopAfter(stage Stage) bool {
	return o.StopAfter != nil && *o.StopAfter <= stage
}

// doEmit reports whether kind appears in o.Emit.
func (o Opts) doEmit(kind EmitKind) bool {
	for _, k := range o.Emit {
		if k == kind {
			return true
		}
	}
	return false
}
