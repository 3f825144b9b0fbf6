package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasInsufficientMaterial returns true if neither side can possibly mate.
// That is the case when there are no pawns, rooks or queens and either:
//   - no minor pieces remain (K v K)
//   - exactly one minor piece remains (K+B v K, K+N v K)
//   - every minor piece is a bishop and all stand on one square colour
func HasInsufficientMaterial(board chess.Board) bool {
	var minors, bishops, lightBishops int
	for _, pl := range board.Occupied() {
		switch pl.Piece.Kind {
		case chess.King:
			// Kings don't count for material
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Bishop:
			minors++
			bishops++
			if pl.Square.IsLight() {
				lightBishops++
			}
		case chess.Knight:
			minors++
		}
	}

	if minors <= 1 {
		return true
	}
	// Bishops only, all on one colour.
	return bishops == minors && (lightBishops == 0 || lightBishops == bishops)
}
