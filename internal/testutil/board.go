package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Reference positions with well-known perft counts.
const (
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// MustBoard parses a FEN string, failing the test on error.
func MustBoard(t testing.TB, fen string) chess.Board {
	t.Helper()
	b, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return b
}

// UCIs returns the coordinate form of each move.
func UCIs(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}

// FindMove returns the move with the given coordinate form, failing the
// test when it is absent.
func FindMove(t testing.TB, moves []chess.Move, uci string) chess.Move {
	t.Helper()
	for _, m := range moves {
		if m.UCI() == uci {
			return m
		}
	}
	t.Fatalf("move %s not among %v", uci, UCIs(moves))
	return chess.Move{}
}
