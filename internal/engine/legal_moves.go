package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the moves of the side to move that do not leave its
// own king attacked. Order is unspecified.
func LegalMoves(board chess.Board) []chess.Move {
	pseudo := PseudoLegalMoves(board)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if leavesKingSafe(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board chess.Board) bool {
	for _, m := range PseudoLegalMoves(board) {
		if leavesKingSafe(board, m) {
			return true
		}
	}
	return false
}

// leavesKingSafe plays m on a copy of the board and tests the mover's king.
func leavesKingSafe(board chess.Board, m chess.Move) bool {
	return !IsInCheck(board.Apply(m), board.ToMove)
}
