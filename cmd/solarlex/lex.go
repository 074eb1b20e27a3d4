package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"

	"github.com/malik672/solar-lexcore/config"
	"github.com/malik672/solar-lexcore/cursor"
	"github.com/malik672/solar-lexcore/diag"
	"github.com/malik672/solar-lexcore/session"
	"github.com/malik672/solar-lexcore/sourcemap"
	"github.com/malik672/solar-lexcore/span"
)

// fanOut forwards one diagnostic to every emitter in turn, letting the
// driver honor a config with more than one requested --emit kind even
// though diag.Context itself is bound to a single sink.
type fanOut struct {
	emitters []diag.Emitter
}

func (f *fanOut) EmitDiagnostic(d diag.Diagnostic) {
	for _, e := range f.emitters {
		e.EmitDiagnostic(d)
	}
}

func buildEmitter(opts session.Opts, sm *sourcemap.SourceMap, w io.Writer) diag.Emitter {
	var emitters []diag.Emitter
	for _, kind := range opts.Emit {
		switch kind {
		case session.EmitHuman:
			emitters = append(emitters, diag.NewHuman(w, sm, opts.ColorChoice))
		case session.EmitJSON:
			emitters = append(emitters, diag.NewJSON(w, sm))
		}
	}
	switch len(emitters) {
	case 0:
		return diag.NewSilent("")
	case 1:
		return emitters[0]
	default:
		return &fanOut{emitters: emitters}
	}
}

// Lex runs the end-to-end driver described in SPEC_FULL.md §13: it builds a
// Session from cfg, registers every configured input file, lexes each one
// (in parallel across files when the session allows it), and renders the
// collected diagnostics to w. It returns true iff any error-level
// diagnostic was emitted, matching the "non-zero exit iff an error was
// reported" contract.
func Lex(cfg *config.Config, w io.Writer, logger commonlog.Logger) (errorsReported bool, err error) {
	opts, err := cfg.ToOpts()
	if err != nil {
		return false, err
	}

	sm := sourcemap.New()
	dcx := diag.NewContext(buildEmitter(opts, sm, w))
	sess := session.NewBuilder().
		Dcx(dcx).
		SourceMap(sm).
		WithOpts(opts).
		WithLogger(logger).
		Build()

	if err := sess.Validate(); err != nil {
		return true, nil
	}

	files := make([]*sourcemap.SourceFile, 0, len(opts.Input))
	for _, path := range opts.Input {
		src, rerr := os.ReadFile(path)
		if rerr != nil {
			dcx.Diagnostic(diag.Error, fmt.Sprintf("could not read input file %q: %v", path, rerr)).Emit()
			continue
		}
		if _, aerr := sm.AddFile(path, string(src)); aerr != nil {
			dcx.Diagnostic(diag.Error, fmt.Sprintf("could not register input file %q: %v", path, aerr)).Emit()
			continue
		}
		f, _ := sm.FileByName(path)
		files = append(files, f)
	}

	sess.EnterParallel(func() {
		session.RunScope(sess, func(sc *session.Scope) struct{} {
			for _, f := range files {
				f := f
				sc.Spawn(func() { lexFile(f, dcx) })
			}
			return struct{}{}
		})
	})

	return sess.EmittedErrors(), nil
}

// lexFile runs the cursor over f's text, promoting the raw-token error
// flags the cursor itself never emits (§7: unterminated comments/strings,
// empty integer prefixes, empty exponents) into diagnostics anchored at
// the offending token's span.
func lexFile(f *sourcemap.SourceFile, dcx *diag.Context) {
	c := cursor.New([]byte(f.Text()))
	offset := f.Start()

	for tok := range c.Tokens() {
		s := span.New(offset, span.BytePos(offset.ToUint32()+tok.Len))
		offset = s.Hi

		switch {
		case tok.Kind == cursor.BlockComment && !tok.Terminated:
			dcx.Diagnostic(diag.Error, "unterminated block comment").WithSpan(s).Emit()

		case tok.Kind == cursor.Literal && tok.LitKind == cursor.LitStr && !tok.Terminated:
			dcx.Diagnostic(diag.Error, "unterminated string literal").WithSpan(s).Emit()

		case tok.Kind == cursor.Literal && tok.LitKind == cursor.LitInt && tok.EmptyInt:
			dcx.Diagnostic(diag.Error, fmt.Sprintf("missing digits after %s integer prefix", tok.Base)).WithSpan(s).Emit()

		case tok.Kind == cursor.Literal && tok.LitKind == cursor.LitRational && tok.EmptyExponent:
			dcx.Diagnostic(diag.Error, "missing digits in exponent").WithSpan(s).Emit()
		}
	}
}
