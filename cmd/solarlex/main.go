// Command solarlex is a thin driver that exercises the lexical core end to
// end: it loads a JSONC config, builds a Session, registers each input file
// into the session's source map, lexes every file (in parallel when the
// configured thread count allows it), and renders the diagnostics the lex
// pass collected through the configured emitters. It has no parser and is
// not a Solidity compiler front end in its own right; its only job is to
// give the config/session/sourcemap/cursor/diag stack a real caller.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/malik672/solar-lexcore/config"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "solarlex: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("solarlex", flag.ContinueOnError)

	var (
		configPath = fs.String("config", "", "path to a solarlex.jsonc config file")
		verbosity  = fs.Int("verbosity", 0, "commonlog verbosity (0=silent .. 3=debug)")
		showVer    = fs.Bool("version", false, "print version and exit")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parse flags: %w", err)
	}

	if *showVer {
		fmt.Printf("solarlex %s\n", version)
		return nil
	}
	if *configPath == "" {
		return errors.New("missing required -config flag")
	}

	commonlog.Configure(*verbosity, nil)
	logger := commonlog.GetLogger("solarlex")

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	errorsReported, err := Lex(cfg, os.Stdout, logger)
	if err != nil {
		return err
	}
	if errorsReported {
		os.Exit(1)
	}
	return nil
}
