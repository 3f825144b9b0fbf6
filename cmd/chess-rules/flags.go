// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// General
	configFile = flag.String("config", "", "Configuration file (default: chess-rules.yaml if present)")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")

	// Position
	startFEN = flag.String("fen", "", "Start from this FEN position")

	// Display
	colorOutput   = flag.Bool("color", true, "Colour the board")
	unicodeOutput = flag.Bool("unicode", false, "Draw pieces as Unicode glyphs")
	flipBoard     = flag.Bool("flip", false, "Draw the board from Black's side")

	// PGN export
	lineLength = flag.Int("w", 80, "Maximum PGN line length")
	whiteName  = flag.String("white", "", "White player name for exported PGN")
	blackName  = flag.String("black", "", "Black player name for exported PGN")
	eventName  = flag.String("event", "", "Event tag for exported PGN (default: generated name)")

	// Modes
	replayFile = flag.String("replay", "", "Replay a PGN file and report the outcome")
	perftDepth = flag.Int("perft", 0, "Run perft divide to this depth and exit")
	workers    = flag.Int("workers", 4, "Number of perft workers")

	// Logging
	logLevel = flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	logJSON  = flag.Bool("log-json", false, "Write logs as JSON instead of console text")
)

// setFlags returns the names of flags given on the command line, so that
// only those override file and environment configuration.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags overlays explicitly set command-line flags onto cfg.
func applyFlags(cfg *config.Config, set map[string]bool) *config.Config {
	b := config.From(cfg)
	applyPositionFlags(b, set)
	applyDisplayFlags(b, set)
	applyOutputFlags(b, set)
	applyPerftFlags(b, set)
	applyLogFlags(b, set)
	return b.Build()
}

// applyPositionFlags configures the starting position.
func applyPositionFlags(b *config.ConfigBuilder, set map[string]bool) {
	if set["fen"] {
		b.WithStartFEN(*startFEN)
	}
}

// applyDisplayFlags configures board drawing.
func applyDisplayFlags(b *config.ConfigBuilder, set map[string]bool) {
	if set["color"] {
		b.WithColor(*colorOutput)
	}
	if set["unicode"] {
		b.WithUnicode(*unicodeOutput)
	}
	if set["flip"] {
		b.WithFlip(*flipBoard)
	}
}

// applyOutputFlags configures PGN export.
func applyOutputFlags(b *config.ConfigBuilder, set map[string]bool) {
	if set["w"] {
		b.WithMaxLineLength(*lineLength)
	}
	cfg := b.Build()
	white, black := cfg.Output.White, cfg.Output.Black
	if set["white"] {
		white = *whiteName
	}
	if set["black"] {
		black = *blackName
	}
	b.WithPlayers(white, black)
	if set["event"] {
		b.WithEvent(*eventName)
	}
}

// applyPerftFlags configures perft.
func applyPerftFlags(b *config.ConfigBuilder, set map[string]bool) {
	if set["workers"] {
		b.WithWorkers(*workers)
	}
}

// applyLogFlags configures logging.
func applyLogFlags(b *config.ConfigBuilder, set map[string]bool) {
	if set["log-level"] {
		b.WithLogLevel(*logLevel)
	}
	if set["log-json"] {
		b.WithPrettyLog(!*logJSON)
	}
}
