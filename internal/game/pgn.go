package game

import (
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// PGN returns the movetext of the game on one line, ending with the result
// of Termination, for example "1. e4 e5 2. Nf3 *".
func (g *Game) PGN() string {
	return notation.Movetext(g.sans, g.start.MoveNumber, g.start.ToMove == chess.Black, g.Termination().Result())
}

// WritePGN writes the game as a complete PGN record: the Seven Tag Roster
// and any extra tags, then the wrapped movetext. The Result tag always
// follows Termination, PlyCount is filled in, a finished game names how it
// ended in a Termination tag, and a game that did not start from the
// standard position carries SetUp and FEN tags.
func (g *Game) WritePGN(w io.Writer, tags notation.Tags, maxLineLength int) error {
	out := tags.Clone()
	term := g.Termination()
	result := term.Result()
	out[notation.ResultTag] = result
	out[notation.PlyCountTag] = strconv.Itoa(len(g.moves))
	if term.IsOver() {
		out[notation.TerminationTag] = term.String()
	} else {
		delete(out, notation.TerminationTag)
	}
	if fen := g.start.FEN(); fen != chess.InitialFEN {
		out[notation.SetupTag] = "1"
		out[notation.FENTag] = fen
	} else {
		delete(out, notation.SetupTag)
		delete(out, notation.FENTag)
	}

	pw := notation.NewWriter(w, maxLineLength)
	return pw.Game(out, g.sans, g.start.MoveNumber, g.start.ToMove == chess.Black, result)
}

// ParsePGN reads the first game of PGN text and replays its main line.
// A FEN tag sets the starting position. Move tokens are resolved leniently,
// so files written by other programs replay as long as every move is legal.
//
// When a move cannot be played the game up to that point is returned with
// a *errors.MoveError naming the failing ply.
func ParsePGN(text string) (*Game, notation.Tags, error) {
	rec, err := notation.ParseMovetext(text)
	if err != nil {
		return nil, rec.Tags, err
	}

	g := New()
	if fen := strings.TrimSpace(rec.Tags.Get(notation.FENTag)); fen != "" {
		if g, err = NewFromFEN(fen); err != nil {
			return nil, rec.Tags, errors.Wrapf(err, "%s tag", notation.FENTag)
		}
	}

	for _, tok := range rec.Moves {
		m, err := notation.Resolve(tok, g.board)
		if err != nil {
			return g, rec.Tags, &errors.MoveError{Err: err, Ply: len(g.moves) + 1, MoveText: tok}
		}
		if g, err = g.ApplyMove(m); err != nil {
			return g, rec.Tags, err
		}
	}
	return g, rec.Tags, nil
}
