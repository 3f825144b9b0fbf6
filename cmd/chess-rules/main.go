// chess-rules plays, replays and checks chess games under the standard rules.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile, setFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log.Logger, err = configLogger(os.Stderr, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	log.Debug().Str("config", *configFile).Interface("settings", cfg).Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	switch {
	case *perftDepth > 0:
		err = runPerft(ctx, os.Stdout, cfg, *perftDepth)
	case *replayFile != "":
		err = runReplayFile(os.Stdout, cfg, *replayFile)
	default:
		err = runPlay(os.Stdin, os.Stdout, cfg)
	}
	stop()
	if err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and environment, overlays the
// command-line flags that were set and validates the result.
func loadConfig(path string, set map[string]bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg = applyFlags(cfg, set)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configLogger builds the process logger from the log section of cfg.
func configLogger(w io.Writer, cfg *config.Config) (zerolog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
	}
	return newLogger(w, level, cfg.Log.Pretty), nil
}

// newLogger builds the process logger: human-readable console output when
// pretty, JSON lines otherwise.
func newLogger(w io.Writer, level zerolog.Level, pretty bool) zerolog.Logger {
	out := w
	if pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess at the terminal, replay PGN files or count moves with perft.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  (default)     interactive play; type 'help' for commands\n")
	fmt.Fprintf(os.Stderr, "  -replay FILE  replay a PGN game and print its outcome\n")
	fmt.Fprintf(os.Stderr, "  -perft N      count leaf nodes per root move to depth N\n")
}
