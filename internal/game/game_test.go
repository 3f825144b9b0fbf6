package game

import (
	stderrors "errors"
	"slices"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// play applies each SAN in turn, failing the test on the first rejection.
func play(t *testing.T, g *Game, sans ...string) *Game {
	t.Helper()
	for _, san := range sans {
		next, err := g.TryApplyMove(san)
		if err != nil {
			t.Fatalf("TryApplyMove(%q) after %v: %v", san, g.History(), err)
		}
		g = next
	}
	return g
}

func mustFEN(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewFromFEN(fen)
	testutil.AssertNoError(t, err)
	return g
}

func TestNew(t *testing.T) {
	g := New()
	testutil.AssertEqual(t, len(g.LegalMovesSAN()), 20)
	testutil.AssertEqual(t, g.Turn(), chess.White)
	testutil.AssertEqual(t, g.PlyCount(), 0)
	testutil.AssertEqual(t, len(g.History()), 0)
	testutil.AssertEqual(t, g.RepetitionCount(), 1)
	testutil.AssertEqual(t, g.Termination(), Termination{Kind: InProgress})
	testutil.AssertBoardEqual(t, g.Board(), chess.NewInitialBoard())
}

func TestNewFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"not a fen", "not a fen"},
		{"king capturable by rook", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1"},
		{"king capturable by pawn", "4k3/8/8/8/8/8/3p4/4K3 b - - 0 1"},
		{"kings adjacent", "8/8/8/8/8/8/3k4/4K3 w - - 0 1"},
		{"pawn on first rank", "4k3/8/8/8/8/8/8/p3K3 w - - 0 1"},
		{"phantom en passant", "4k3/8/8/4P3/8/8/8/4K3 w - d6 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
			if g != nil {
				t.Errorf("NewFromFEN(%q) = %v, want nil game", tt.fen, g.Board().FEN())
			}
		})
	}
}

func TestNewFromFEN_MoverInCheck(t *testing.T) {
	g := mustFEN(t, "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1")
	testutil.AssertTrue(t, g.IsInCheck())
	testutil.AssertEqual(t, StatusText(g), "Check!")
}

func TestScholarsMate(t *testing.T) {
	g := play(t, New(), "e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#")

	testutil.AssertEqual(t, g.Termination(), Termination{Kind: Checkmate, Winner: chess.White})
	testutil.AssertEqual(t, g.PGN(), "1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0")
	testutil.AssertEqual(t, StatusText(g), "Checkmate! White won!")
	testutil.AssertEqual(t, len(g.LegalMovesSAN()), 0)
	testutil.AssertTrue(t, g.IsInCheck())
}

func TestFoolsMate(t *testing.T) {
	g := play(t, New(), "f3", "e5", "g4", "Qh4#")

	testutil.AssertEqual(t, g.Termination(), Termination{Kind: Checkmate, Winner: chess.Black})
	testutil.AssertEqual(t, g.PGN(), "1. f3 e5 2. g4 Qh4# 0-1")
	testutil.AssertEqual(t, StatusText(g), "Checkmate! Black won!")
}

func TestHistoryGrowsByOne(t *testing.T) {
	g := New()
	for i, san := range []string{"d4", "d5", "c4", "e6", "Nc3", "Nf6"} {
		next := play(t, g, san)
		testutil.AssertEqual(t, next.PlyCount(), i+1)
		testutil.AssertEqual(t, next.History()[i], san)
		testutil.AssertEqual(t, len(next.Moves()), i+1)
		testutil.AssertEqual(t, g.PlyCount(), i, "receiver unchanged")
		g = next
	}
}

func TestTryApplyMove_Rejects(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"unreachable", "e5", errors.ErrIllegalMove},
		{"missing check marker", "Nf3+", errors.ErrIllegalMove},
		{"wrong case", "nf3", errors.ErrMalformedNotation},
		{"coordinate form", "g1f3", errors.ErrIllegalMove},
		{"gibberish", "hello", errors.ErrMalformedNotation},
		{"empty", "", errors.ErrMalformedNotation},
		{"castle not yet possible", "O-O", errors.ErrIllegalMove},
	}

	g := play(t, New(), "e4", "e5")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.TryApplyMove(tt.text)
			if got != g {
				t.Errorf("TryApplyMove(%q) returned a different game", tt.text)
			}
			testutil.AssertErrorIs(t, err, tt.want)

			var merr *errors.MoveError
			if !stderrors.As(err, &merr) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			testutil.AssertEqual(t, merr.Ply, 3)
			testutil.AssertEqual(t, merr.MoveText, tt.text)
			testutil.AssertEqual(t, g.PlyCount(), 2)
		})
	}
}

func TestTryApplyMove_TrimsWhitespace(t *testing.T) {
	g := play(t, New(), "  e4\n")
	testutil.AssertEqual(t, g.History(), []string{"e4"})
}

func TestBranchesAreIndependent(t *testing.T) {
	base := play(t, New(), "e4", "e5", "Nf3")
	a := play(t, base, "Nc6")
	b := play(t, base, "d6")

	testutil.AssertEqual(t, a.History(), []string{"e4", "e5", "Nf3", "Nc6"})
	testutil.AssertEqual(t, b.History(), []string{"e4", "e5", "Nf3", "d6"})
	testutil.AssertEqual(t, base.History(), []string{"e4", "e5", "Nf3"})
}

func TestEnPassantAvailable(t *testing.T) {
	g := play(t, New(), "e4", "Nc6", "e5", "d5")
	testutil.AssertContains(t, strings.Join(g.LegalMovesSAN(), " "), "exd6")

	g = play(t, g, "exd6")
	_, ok := g.Board().PieceAt(chess.MustSquare("d5"))
	testutil.AssertFalse(t, ok, "captured pawn removed")
}

func TestCastlingRightsLostByMoving(t *testing.T) {
	const fen = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	tests := []struct {
		name  string
		moves []string
		want  []string // castles still legal for White
		gone  []string
	}{
		{"untouched", nil, []string{"O-O", "O-O-O"}, nil},
		{"king returned home", []string{"Kf1", "Kf8", "Ke1", "Ke8"}, nil, []string{"O-O", "O-O-O"}},
		{"kingside rook returned home", []string{"Rg1", "Rg8", "Rh1", "Rh8"}, []string{"O-O-O"}, []string{"O-O"}},
		{"queenside rook returned home", []string{"Rb1", "Rb8", "Ra1", "Ra8"}, []string{"O-O"}, []string{"O-O-O"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := play(t, mustFEN(t, fen), tt.moves...)
			testutil.AssertTrue(t, strings.HasPrefix(g.Board().FEN(), "r3k2r/8/8/8/8/8/8/R3K2R w "), "pieces back on their home squares")
			legal := g.LegalMovesSAN()
			for _, san := range tt.want {
				testutil.AssertTrue(t, slices.Contains(legal, san), "%s should be legal", san)
			}
			for _, san := range tt.gone {
				testutil.AssertFalse(t, slices.Contains(legal, san), "%s should be illegal", san)
				next, err := g.TryApplyMove(san)
				testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
				if next != g {
					t.Errorf("TryApplyMove(%q) returned a new game", san)
				}
			}
		})
	}
}

func TestThreefoldRepetition(t *testing.T) {
	shuffle := []string{"Nf3", "Nf6", "Ng1", "Ng8"}

	g := play(t, New(), shuffle...)
	testutil.AssertEqual(t, g.RepetitionCount(), 2)
	testutil.AssertEqual(t, g.Termination().Kind, InProgress)

	g = play(t, g, shuffle...)
	testutil.AssertEqual(t, g.RepetitionCount(), 3)
	testutil.AssertEqual(t, g.Termination().Kind, DrawThreefoldRepetition)
	testutil.AssertEqual(t, StatusText(g), "Draw: Threefold repetition rule")
	testutil.AssertEqual(t, g.Termination().Result(), "1/2-1/2")

	// Draws are claimable, not forced: play continues and the draw stays.
	g = play(t, g, "e4")
	testutil.AssertEqual(t, g.Termination().Kind, DrawThreefoldRepetition)
}

func TestApplyMove(t *testing.T) {
	g := New()
	m := testutil.FindMove(t, g.LegalMoves(), "g1f3")
	next, err := g.ApplyMove(m)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, next.History(), []string{"Nf3"})

	bogus := chess.Move{From: chess.MustSquare("e2"), To: chess.MustSquare("e5"), Piece: chess.W(chess.Pawn)}
	same, err := g.ApplyMove(bogus)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	if same != g {
		t.Error("ApplyMove returned a different game on failure")
	}
}
