package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

const prompt = "> "

// session is one interactive game. Each accepted move replaces game with
// its successor.
type session struct {
	game       *game.Game
	out        io.Writer
	opts       render.Options
	tags       notation.Tags
	lineLength int
}

// newSession starts a game from the configured position. A missing Event
// tag is filled with a generated session name.
func newSession(cfg *config.Config, out io.Writer) (*session, error) {
	g := game.New()
	if cfg.StartFEN != "" {
		var err error
		if g, err = game.NewFromFEN(cfg.StartFEN); err != nil {
			return nil, err
		}
	}

	tags := cfg.Output.Tags()
	if tags.Get(notation.EventTag) == "" {
		tags[notation.EventTag] = petname.Generate(2, "-")
	}
	tags[notation.DateTag] = time.Now().Format("2006.01.02")

	return &session{
		game: g,
		out:  out,
		opts: render.Options{
			Color:   cfg.Display.Color,
			Unicode: cfg.Display.Unicode,
			Flip:    cfg.Display.Flip,
		},
		tags:       tags,
		lineLength: cfg.Output.MaxLineLength,
	}, nil
}

// runPlay runs an interactive session until quit or end of input.
func runPlay(in io.Reader, out io.Writer, cfg *config.Config) error {
	s, err := newSession(cfg, out)
	if err != nil {
		return err
	}
	log.Info().Str("event", s.tags.Get(notation.EventTag)).Str("fen", s.game.Board().FEN()).Msg("Session started")

	s.printBoard()
	s.printState()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		quit, err := s.handle(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		if quit {
			break
		}
	}

	log.Info().Int("plies", s.game.PlyCount()).Str("result", s.game.Termination().Result()).Msg("Session ended")
	return scanner.Err()
}

// handle executes one input line. It reports whether the session should end.
func (s *session) handle(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "help":
		s.printHelp()
	case "moves":
		fmt.Fprintln(s.out, strings.Join(s.game.LegalMovesSAN(), " "))
	case "board":
		s.printBoard()
	case "history":
		fmt.Fprintln(s.out, strings.Join(s.game.History(), " "))
	case "pgn":
		return false, s.game.WritePGN(s.out, s.tags, s.lineLength)
	case "fen":
		fmt.Fprintln(s.out, s.game.Board().FEN())
	case "export":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: export FILE")
		}
		return false, s.export(fields[1])
	default:
		s.move(line)
	}
	return false, nil
}

// move submits move text to the game.
func (s *session) move(text string) {
	next, err := s.game.TryApplyMove(text)
	if err != nil {
		log.Debug().Err(err).Str("move", text).Msg("Move rejected")
		fmt.Fprintln(s.out, "Invalid move!")
		return
	}
	s.game = next
	log.Debug().Str("san", next.History()[next.PlyCount()-1]).Str("fen", next.Board().FEN()).Msg("Move played")

	s.printBoard()
	s.printState()
}

func (s *session) export(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.game.WritePGN(f, s.tags, s.lineLength); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info().Str("file", path).Int("plies", s.game.PlyCount()).Msg("Game exported")
	fmt.Fprintf(s.out, "Saved %s\n", path)
	return nil
}

func (s *session) printBoard() {
	fmt.Fprint(s.out, render.Board(s.game.Board(), s.opts))
}

// printState prints the status line, if any, and whose turn it is.
func (s *session) printState() {
	if status := game.StatusText(s.game); status != "" {
		fmt.Fprintln(s.out, render.Status(status, s.game.Termination().IsOver(), s.opts))
	}
	fmt.Fprintln(s.out, game.TurnText(s.game))
}

func (s *session) printHelp() {
	fmt.Fprint(s.out, `Enter a move in SAN (e4, Nf3, O-O, exd6, e8=Q) or a command:
  moves         list legal moves
  board         draw the board
  history       list the moves played so far
  pgn           print the game as PGN
  fen           print the current position as FEN
  export FILE   save the game as PGN
  quit          leave
`)
}
