package engine

import (
	"math/rand"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// oracleMoves returns the coordinate form of every move notnil/chess
// considers legal in its current position.
func oracleMoves(g *nchess.Game) []string {
	valid := g.ValidMoves()
	out := make([]string, len(valid))
	for i, m := range valid {
		out[i] = m.String()
	}
	return out
}

// TestLegalMoves_AgreesWithOracle plays seeded random games from several
// start positions and compares the legal move set after every ply.
func TestLegalMoves_AgreesWithOracle(t *testing.T) {
	starts := []string{
		chess.InitialFEN,
		testutil.KiwipeteFEN,
		testutil.Position3FEN,
		testutil.Position4FEN,
		testutil.Position5FEN,
	}
	games, plies := 8, 60
	if testing.Short() {
		games, plies = 2, 30
	}

	rng := rand.New(rand.NewSource(20240611))
	for _, fen := range starts {
		for n := 0; n < games; n++ {
			board := testutil.MustBoard(t, fen)
			opt, err := nchess.FEN(fen)
			if err != nil {
				t.Fatalf("oracle FEN(%q) error: %v", fen, err)
			}
			oracle := nchess.NewGame(opt)

			for ply := 0; ply < plies; ply++ {
				ours := LegalMoves(board)
				testutil.AssertSameElements(t, testutil.UCIs(ours), oracleMoves(oracle),
					"game %d ply %d from %s", n, ply, board.FEN())
				if len(ours) == 0 || t.Failed() {
					break
				}

				m := ours[rng.Intn(len(ours))]
				var played bool
				for _, om := range oracle.ValidMoves() {
					if om.String() == m.UCI() {
						if err := oracle.Move(om); err != nil {
							t.Fatalf("oracle rejected %s: %v", m.UCI(), err)
						}
						played = true
						break
					}
				}
				if !played {
					t.Fatalf("oracle has no move %s at %s", m.UCI(), board.FEN())
				}
				board = board.Apply(m)
			}
		}
	}
}
