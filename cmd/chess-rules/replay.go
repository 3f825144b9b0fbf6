package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

// runReplayFile replays the first game of a PGN file.
func runReplayFile(out io.Writer, cfg *config.Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the user
	if err != nil {
		return err
	}
	log.Debug().Str("file", path).Int("bytes", len(data)).Msg("Replaying")
	return runReplay(out, cfg, string(data))
}

// runReplay replays PGN text and prints the players, the normalised
// movetext, the final position and the outcome. A move that cannot be
// played stops the replay; what was played so far is still printed.
func runReplay(out io.Writer, cfg *config.Config, text string) error {
	g, tags, err := game.ParsePGN(text)
	if g == nil {
		return err
	}

	opts := render.Options{Color: cfg.Display.Color, Unicode: cfg.Display.Unicode, Flip: cfg.Display.Flip}
	fmt.Fprintf(out, "%s - %s\n", orUnknown(tags.Get(notation.WhiteTag)), orUnknown(tags.Get(notation.BlackTag)))
	fmt.Fprintln(out, g.PGN())
	fmt.Fprint(out, render.Board(g.Board(), opts))

	if err != nil {
		var merr *errors.MoveError
		if errors.As(err, &merr) {
			return fmt.Errorf("replay stopped at ply %d: %w", merr.Ply, err)
		}
		return err
	}

	t := g.Termination()
	if status := game.StatusText(g); status != "" {
		fmt.Fprintln(out, render.Status(status, t.IsOver(), opts))
	}
	fmt.Fprintf(out, "Result: %s\n", t.Result())

	if claimed := tags.Get(notation.ResultTag); claimed != "" && claimed != notation.Unfinished && t.IsOver() && claimed != t.Result() {
		log.Warn().Str("tag", claimed).Str("position", t.Result()).Msg("Result tag disagrees with final position")
	}
	return nil
}

func orUnknown(name string) string {
	if name == "" {
		return "?"
	}
	return name
}
