package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// TerminationKind classifies the state of a game.
type TerminationKind uint8

const (
	InProgress TerminationKind = iota
	Checkmate
	Stalemate
	DrawInsufficientMaterial
	DrawThreefoldRepetition
	DrawFiftyMove
)

// String returns the string representation of a termination kind.
func (k TerminationKind) String() string {
	names := []string{"InProgress", "Checkmate", "Stalemate", "DrawInsufficientMaterial", "DrawThreefoldRepetition", "DrawFiftyMove"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Termination is the outcome of a game. Winner is only meaningful for
// Checkmate.
type Termination struct {
	Kind   TerminationKind
	Winner chess.Colour
}

// IsOver reports whether the game has reached any terminal or drawn state.
func (t Termination) IsOver() bool {
	return t.Kind != InProgress
}

// IsDraw reports whether the outcome is a draw of any kind.
func (t Termination) IsDraw() bool {
	switch t.Kind {
	case Stalemate, DrawInsufficientMaterial, DrawThreefoldRepetition, DrawFiftyMove:
		return true
	}
	return false
}

// Result returns the PGN result token for the outcome.
func (t Termination) Result() string {
	switch {
	case t.Kind == Checkmate && t.Winner == chess.White:
		return notation.WhiteWins
	case t.Kind == Checkmate:
		return notation.BlackWins
	case t.IsDraw():
		return notation.Draw
	}
	return notation.Unfinished
}

func (t Termination) String() string {
	if t.Kind == Checkmate {
		return t.Kind.String() + "(" + t.Winner.String() + ")"
	}
	return t.Kind.String()
}
