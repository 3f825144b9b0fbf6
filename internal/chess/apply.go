package chess

// Apply returns the board that results from playing m. The receiver is not
// modified. Apply trusts that m is structurally valid for this position;
// legality is the move generator's job.
func (b Board) Apply(m Move) Board {
	next := b
	colour := b.ToMove

	switch m.Class {
	case KingsideCastle, QueensideCastle:
		next.applyCastle(m)
	case EnPassantPawnMove:
		// The captured pawn sits beside the origin, on the destination file.
		next.set(Sq(m.To.File, m.From.Rank), NoPiece)
		next.relocate(m.From, m.To, m.Piece)
	case PawnMoveWithPromotion:
		next.relocate(m.From, m.To, Piece{Kind: m.Promotion, Colour: colour})
	default:
		next.relocate(m.From, m.To, m.Piece)
	}

	// Castling rights go when the king moves, or when anything leaves or
	// lands on a rook's home corner.
	if m.Piece.Kind == King {
		next.Castling.revokeColour(colour)
	}
	next.Castling.revokeCorner(m.From)
	next.Castling.revokeCorner(m.To)

	// En passant target only after a double pawn push.
	next.EnPassant = false
	next.EPSquare = Square{}
	if m.Piece.Kind == Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		next.EnPassant = true
		next.EPSquare = Sq(m.From.File, (m.From.Rank+m.To.Rank)/2)
	}

	if m.Piece.Kind == Pawn || m.IsCapture() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if colour == Black {
		next.MoveNumber++
	}
	next.ToMove = colour.Opposite()

	return next
}

// relocate empties from and places piece on to, replacing any occupant.
func (b *Board) relocate(from, to Square, piece Piece) {
	b.set(from, NoPiece)
	b.set(to, piece)
}

// applyCastle moves the king two files and the rook over it.
func (b *Board) applyCastle(m Move) {
	rank := m.From.Rank
	rookFrom, rookTo := Sq(7, rank), Sq(5, rank)
	if m.Class == QueensideCastle {
		rookFrom, rookTo = Sq(0, rank), Sq(3, rank)
	}
	rook := b.At(rookFrom)
	b.relocate(m.From, m.To, m.Piece)
	b.relocate(rookFrom, rookTo, rook)
}

// CastleSquares returns the king origin and destination for a castle of
// the given colour and side.
func CastleSquares(colour Colour, kingside bool) (from, to Square) {
	rank := colour.HomeRank()
	if kingside {
		return Sq(4, rank), Sq(6, rank)
	}
	return Sq(4, rank), Sq(2, rank)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
