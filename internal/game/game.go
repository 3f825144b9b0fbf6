// Package game tracks a chess game from its starting position: the moves
// played, their SAN, repetition counts and the resulting termination state.
//
// A Game is immutable. Every accepted move returns a new Game and leaves the
// receiver valid, so older snapshots can be kept and branched from freely.
package game

import (
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Game is one game in progress.
type Game struct {
	start chess.Board
	board chess.Board
	moves []chess.Move
	sans  []string

	// Occurrences of every position reached, the start included.
	repetitions map[chess.PositionKey]int
	maxRepeats  int

	// Legal moves of board keyed by SAN.
	legal map[string]chess.Move
}

// New returns a game at the standard starting position.
func New() *Game {
	return fromBoard(chess.NewInitialBoard())
}

// NewFromFEN returns a game starting from the given position.
func NewFromFEN(fen string) (*Game, error) {
	b, err := ParsePosition(fen)
	if err != nil {
		return nil, err
	}
	return fromBoard(b), nil
}

// ParsePosition parses a FEN string as a game start. On top of ParseFEN it
// rejects positions where the side that just moved is still in check,
// since the king could then be captured.
func ParsePosition(fen string) (chess.Board, error) {
	b, err := chess.ParseFEN(fen)
	if err != nil {
		return chess.Board{}, err
	}
	if engine.IsInCheck(b, b.ToMove.Opposite()) {
		return chess.Board{}, errors.Wrapf(errors.ErrInvalidFEN, "%s is in check with %s to move", b.ToMove.Opposite(), b.ToMove)
	}
	return b, nil
}

func fromBoard(b chess.Board) *Game {
	return &Game{
		start:       b,
		board:       b,
		repetitions: map[chess.PositionKey]int{b.Key(): 1},
		maxRepeats:  1,
		legal:       notation.SANMoves(b),
	}
}

// Board returns the current position.
func (g *Game) Board() chess.Board {
	return g.board
}

// StartBoard returns the position the game started from.
func (g *Game) StartBoard() chess.Board {
	return g.start
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.board.ToMove
}

// PlyCount returns the number of moves played.
func (g *Game) PlyCount() int {
	return len(g.moves)
}

// Moves returns the moves played, in order.
func (g *Game) Moves() []chess.Move {
	out := make([]chess.Move, len(g.moves))
	copy(out, g.moves)
	return out
}

// History returns the SAN of every move played, in order.
func (g *Game) History() []string {
	out := make([]string, len(g.sans))
	copy(out, g.sans)
	return out
}

// IsInCheck reports whether the side to move is in check.
func (g *Game) IsInCheck() bool {
	return engine.IsInCheck(g.board, g.board.ToMove)
}

// LegalMoves returns the legal moves of the current position.
func (g *Game) LegalMoves() []chess.Move {
	out := make([]chess.Move, 0, len(g.legal))
	for _, m := range g.legal {
		out = append(out, m)
	}
	return out
}

// LegalMovesSAN returns the SAN of every legal move, sorted.
func (g *Game) LegalMovesSAN() []string {
	out := make([]string, 0, len(g.legal))
	for san := range g.legal {
		out = append(out, san)
	}
	sort.Strings(out)
	return out
}

// RepetitionCount returns how many times the current position has occurred.
func (g *Game) RepetitionCount() int {
	return g.repetitions[g.board.Key()]
}

// TryApplyMove plays the move written in text. Surrounding whitespace is
// ignored; otherwise the text must equal one of LegalMovesSAN exactly.
//
// On failure the receiver itself is returned together with a
// *errors.MoveError wrapping ErrMalformedNotation when text is not move
// notation at all, or ErrIllegalMove when it is but names no legal move.
func (g *Game) TryApplyMove(text string) (*Game, error) {
	san := strings.TrimSpace(text)
	m, ok := g.legal[san]
	if !ok {
		cause := errors.ErrIllegalMove
		if _, err := notation.Decode(san); err != nil {
			cause = errors.ErrMalformedNotation
		}
		return g, g.reject(cause, text)
	}
	return g.advance(m, san), nil
}

// ApplyMove plays m, which must be one of LegalMoves.
func (g *Game) ApplyMove(m chess.Move) (*Game, error) {
	for san, legal := range g.legal {
		if legal == m {
			return g.advance(m, san), nil
		}
	}
	return g, g.reject(errors.ErrIllegalMove, m.UCI())
}

func (g *Game) reject(cause error, text string) error {
	return &errors.MoveError{Err: cause, Ply: len(g.moves) + 1, MoveText: text}
}

// advance builds the successor game. Slices are capped before appending so
// that sibling games branching from g never share a backing array.
func (g *Game) advance(m chess.Move, san string) *Game {
	next := g.board.Apply(m)

	reps := make(map[chess.PositionKey]int, len(g.repetitions)+1)
	for k, v := range g.repetitions {
		reps[k] = v
	}
	key := next.Key()
	reps[key]++

	maxRepeats := g.maxRepeats
	if reps[key] > maxRepeats {
		maxRepeats = reps[key]
	}

	n := len(g.moves)
	return &Game{
		start:       g.start,
		board:       next,
		moves:       append(g.moves[:n:n], m),
		sans:        append(g.sans[:n:n], san),
		repetitions: reps,
		maxRepeats:  maxRepeats,
		legal:       notation.SANMoves(next),
	}
}

// Termination classifies the current state. Checkmate and stalemate take
// precedence, then threefold repetition, insufficient material and the
// fifty-move rule in that order. Draws are reported but do not stop
// further moves from being accepted.
func (g *Game) Termination() Termination {
	if len(g.legal) == 0 {
		if g.IsInCheck() {
			return Termination{Kind: Checkmate, Winner: g.board.ToMove.Opposite()}
		}
		return Termination{Kind: Stalemate}
	}
	switch {
	case g.maxRepeats >= 3:
		return Termination{Kind: DrawThreefoldRepetition}
	case engine.HasInsufficientMaterial(g.board):
		return Termination{Kind: DrawInsufficientMaterial}
	case g.board.HalfmoveClock >= 100:
		return Termination{Kind: DrawFiftyMove}
	}
	return Termination{Kind: InProgress}
}
