package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board chess.Board, colour chess.Colour) bool {
	king, ok := board.KingSquare(colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of colour by attacks sq.
// Pawns attack diagonally whether or not the square is occupied.
func IsSquareAttacked(board chess.Board, sq chess.Square, by chess.Colour) bool {
	// Pawns attack from one rank behind, relative to their direction.
	pawn := chess.Piece{Kind: chess.Pawn, Colour: by}
	for _, df := range []int{-1, 1} {
		if from, ok := sq.Offset(df, -by.Forward()); ok && board.At(from) == pawn {
			return true
		}
	}

	if attackedByStep(board, sq, knightOffsets, chess.Piece{Kind: chess.Knight, Colour: by}) {
		return true
	}
	if attackedByStep(board, sq, kingOffsets, chess.Piece{Kind: chess.King, Colour: by}) {
		return true
	}

	queen := chess.Piece{Kind: chess.Queen, Colour: by}
	if attackedBySlide(board, sq, diagonalOffsets, chess.Piece{Kind: chess.Bishop, Colour: by}, queen) {
		return true
	}
	return attackedBySlide(board, sq, straightOffsets, chess.Piece{Kind: chess.Rook, Colour: by}, queen)
}

// attackedByStep checks the single-step attackers (knight, king).
func attackedByStep(board chess.Board, sq chess.Square, offsets []offset, attacker chess.Piece) bool {
	for _, off := range offsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && board.At(from) == attacker {
			return true
		}
	}
	return false
}

// attackedBySlide walks each ray out from sq and checks the first piece met.
func attackedBySlide(board chess.Board, sq chess.Square, offsets []offset, slider, queen chess.Piece) bool {
	for _, off := range offsets {
		from, ok := sq.Offset(off[0], off[1])
		for ok {
			piece := board.At(from)
			if !piece.IsEmpty() {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			from, ok = from.Offset(off[0], off[1])
		}
	}
	return false
}
