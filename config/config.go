// Package config loads the cmd/solarlex driver's configuration surface —
// threads, emit kinds, stop-after stage, language, color choice, and
// unstable flags — from a JSON-with-comments file. It mirrors the teacher's
// own "jsonc in, stdlib json decode out" pattern: github.com/tidwall/jsonc
// strips comments/trailing-commas down to plain JSON, then encoding/json
// does the actual decoding.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/malik672/solar-lexcore/diag"
	"github.com/malik672/solar-lexcore/session"
)

// Config is the on-disk, string-typed mirror of session.Opts. String enums
// decode more forgivingly than integers from a hand-edited JSONC file; ToOpts
// converts each field to its session.Opts counterpart and rejects unknown
// enum spellings by name rather than silently defaulting.
type Config struct {
	Input       []string        `json:"input"`
	Threads     int             `json:"threads"`
	Emit        []string        `json:"emit"`
	StopAfter   string          `json:"stop_after,omitempty"`
	Language    string          `json:"language"`
	ColorChoice string          `json:"color_choice,omitempty"`
	Unstable    map[string]bool `json:"unstable,omitempty"`
}

// Load reads the JSONC file at path, strips it to plain JSON, and decodes
// it into a Config.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(raw), &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

func parseLanguage(s string) (session.Language, error) {
	switch s {
	case "", "solidity":
		return session.LanguageSolidity, nil
	case "yul":
		return session.LanguageYul, nil
	default:
		return 0, fmt.Errorf("config: unknown language %q", s)
	}
}

func parseColorChoice(s string) (diag.ColorChoice, error) {
	switch s {
	case "", "auto":
		return diag.ColorAuto, nil
	case "always":
		return diag.ColorAlways, nil
	case "never":
		return diag.ColorNever, nil
	default:
		return 0, fmt.Errorf("config: unknown color_choice %q", s)
	}
}

func parseEmitKind(s string) (session.EmitKind, error) {
	switch s {
	case "human":
		return session.EmitHuman, nil
	case "json":
		return session.EmitJSON, nil
	default:
		return 0, fmt.Errorf("config: unknown emit kind %q", s)
	}
}

func parseStage(s string) (session.Stage, error) {
	switch s {
	case "lex":
		return session.StageLex, nil
	default:
		return 0, fmt.Errorf("config: unknown stop_after stage %q", s)
	}
}

// ToOpts converts the Config into a session.Opts, resolving every string
// enum field and running the same duplicate-emit-kind validation
// session.Opts.Validate performs — returning the first error found rather
// than building a partially-valid Opts.
func (c Config) ToOpts() (session.Opts, error) {
	lang, err := parseLanguage(c.Language)
	if err != nil {
		return session.Opts{}, err
	}
	color, err := parseColorChoice(c.ColorChoice)
	if err != nil {
		return session.Opts{}, err
	}

	emit := make([]session.EmitKind, 0, len(c.Emit))
	for _, e := range c.Emit {
		kind, err := parseEmitKind(e)
		if err != nil {
			return session.Opts{}, err
		}
		emit = append(emit, kind)
	}

	var stopAfter *session.Stage
	if c.StopAfter != "" {
		stage, err := parseStage(c.StopAfter)
		if err != nil {
			return session.Opts{}, err
		}
		stopAfter = &stage
	}

	opts := session.Opts{
		Input:       c.Input,
		Threads:     c.Threads,
		Emit:        emit,
		StopAfter:   stopAfter,
		Language:    lang,
		ColorChoice: color,
		Unstable:    session.UnstableOpts(c.Unstable),
	}
	if err := opts.Validate(); err != nil {
		return session.Opts{}, err
	}
	return opts, nil
}
