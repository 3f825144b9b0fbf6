package notation

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Resolve finds the legal move of b that text names. It is lenient in the
// ways real PGN files are: check markers may be missing or wrong, the "="
// of a promotion may be absent, disambiguation may be redundant, castling
// may be written with zeros or as a two-square king move.
//
// Text with no move shape fails with ErrMalformedNotation; a shape that
// matches no legal move, or more than one, fails with ErrIllegalMove.
func Resolve(text string, b chess.Board) (chess.Move, error) {
	p, err := Decode(text)
	if err != nil {
		return chess.Move{}, err
	}

	legal := engine.LegalMoves(b)
	var found []chess.Move
	for _, m := range legal {
		if p.Matches(m) {
			found = append(found, m)
		}
	}

	// "Kg1" for a castle.
	if len(found) == 0 && p.Piece == chess.King && !p.IsCastle() {
		for _, m := range legal {
			if m.IsCastle() && m.To == p.To && (p.FromFile < 0 || p.FromFile == m.From.File) {
				found = append(found, m)
			}
		}
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return chess.Move{}, fmt.Errorf("%q: no such move: %w", text, errors.ErrIllegalMove)
	default:
		return chess.Move{}, fmt.Errorf("%q: ambiguous between %d moves: %w", text, len(found), errors.ErrIllegalMove)
	}
}
