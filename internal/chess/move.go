package chess

// MoveClass categorizes different types of chess moves.
type MoveClass uint8

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	names := []string{"PawnMove", "Promotion", "EnPassant", "PieceMove", "KingsideCastle", "QueensideCastle"}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move represents a single fully resolved chess move. Moves are values and
// are never modified after construction.
type Move struct {
	From, To Square

	// The piece being moved.
	Piece Piece

	// The piece captured (NoPiece if no capture). For en passant this is
	// the pawn removed from beside the destination.
	Captured Piece

	// The kind promoted to (NoKind if not a promotion).
	Promotion PieceKind

	Class MoveClass
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty() || m.Class == EnPassantPawnMove
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsEnPassant returns true if this move captures en passant.
func (m Move) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// IsKingsideCastle returns true for O-O.
func (m Move) IsKingsideCastle() bool {
	return m.Class == KingsideCastle
}

// IsQueensideCastle returns true for O-O-O.
func (m Move) IsQueensideCastle() bool {
	return m.Class == QueensideCastle
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// UCI returns the move in long algebraic coordinate form, e.g. "e2e4",
// "e7e8q", "e1g1".
func (m Move) UCI() string {
	b := []byte(m.From.String() + m.To.String())
	if m.IsPromotion() {
		b = append(b, m.Promotion.Letter()|0x20)
	}
	return string(b)
}

// String returns the coordinate form of the move.
func (m Move) String() string {
	return m.UCI()
}
