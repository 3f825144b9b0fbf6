// Package notation converts between chess moves and their textual forms:
// Standard Algebraic Notation for single moves and PGN for whole games.
package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Castling tokens.
const (
	KingsideCastle  = "O-O"
	QueensideCastle = "O-O-O"
)

// ToSAN renders m, which must be legal in b, in Standard Algebraic Notation.
func ToSAN(m chess.Move, b chess.Board) string {
	return encode(m, b, engine.LegalMoves(b))
}

// SANMoves returns every legal move of the position keyed by its SAN.
func SANMoves(b chess.Board) map[string]chess.Move {
	legal := engine.LegalMoves(b)
	out := make(map[string]chess.Move, len(legal))
	for _, m := range legal {
		out[encode(m, b, legal)] = m
	}
	return out
}

// encode renders m given the full legal move list of b, which is needed to
// decide disambiguation.
func encode(m chess.Move, b chess.Board, legal []chess.Move) string {
	var sb strings.Builder

	switch {
	case m.IsKingsideCastle():
		sb.WriteString(KingsideCastle)
	case m.IsQueensideCastle():
		sb.WriteString(QueensideCastle)
	default:
		if m.Piece.Kind == chess.Pawn {
			if m.IsCapture() {
				sb.WriteByte(m.From.FileLetter())
			}
		} else {
			sb.WriteByte(m.Piece.Kind.Letter())
			sb.WriteString(disambiguation(m, legal))
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	}

	sb.WriteString(checkSuffix(b.Apply(m)))
	return sb.String()
}

// disambiguation returns the minimal origin qualifier for a piece move:
// nothing when no other piece of the same kind can reach the destination,
// else the file if it is unique, else the rank if it is unique, else both.
func disambiguation(m chess.Move, legal []chess.Move) string {
	var rivals, sameFile, sameRank int
	for _, other := range legal {
		if other.Piece != m.Piece || other.To != m.To || other.From == m.From || other.IsCastle() {
			continue
		}
		rivals++
		if other.From.File == m.From.File {
			sameFile++
		}
		if other.From.Rank == m.From.Rank {
			sameRank++
		}
	}

	switch {
	case rivals == 0:
		return ""
	case sameFile == 0:
		return string(m.From.FileLetter())
	case sameRank == 0:
		return string(m.From.RankDigit())
	default:
		return m.From.String()
	}
}

// checkSuffix returns "#" when the side to move in next is mated, "+" when
// it is merely in check, and "" otherwise.
func checkSuffix(next chess.Board) string {
	if !engine.IsInCheck(next, next.ToMove) {
		return ""
	}
	if engine.HasLegalMoves(next) {
		return "+"
	}
	return "#"
}
