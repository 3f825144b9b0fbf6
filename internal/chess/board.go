package chess

// CastlingRights holds the four independent castling permissions.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Kingside reports whether the colour may still castle short.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports whether the colour may still castle long.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// Any reports whether any castling right remains.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// revokeColour removes both rights of a colour.
func (c *CastlingRights) revokeColour(colour Colour) {
	if colour == White {
		c.WhiteKingside = false
		c.WhiteQueenside = false
	} else {
		c.BlackKingside = false
		c.BlackQueenside = false
	}
}

// revokeCorner removes the right tied to a rook home square. Any move from
// or onto a corner means that rook has moved or been captured.
func (c *CastlingRights) revokeCorner(sq Square) {
	switch sq {
	case Sq(0, 0):
		c.WhiteQueenside = false
	case Sq(7, 0):
		c.WhiteKingside = false
	case Sq(0, 7):
		c.BlackQueenside = false
	case Sq(7, 7):
		c.BlackKingside = false
	}
}

// Board represents a chess position with all state needed for the game.
// A Board is a value: methods never modify the receiver, and Apply returns
// a fresh Board.
type Board struct {
	// squares[file][rank]; the zero Piece is an empty cell.
	squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling permissions.
	Castling CastlingRights

	// Is en passant capture possible? If so then EPSquare is the square
	// the capturing pawn would land on.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number.
	MoveNumber int
}

// NewBoard creates an empty board with White to move at move 1.
func NewBoard() Board {
	return Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() Board {
	b := NewBoard()
	for file := 0; file < BoardSize; file++ {
		b.squares[file][0] = W(backRank[file])
		b.squares[file][1] = W(Pawn)
		b.squares[file][6] = B(Pawn)
		b.squares[file][7] = B(backRank[file])
	}
	b.Castling = CastlingRights{true, true, true, true}
	return b
}

// PieceAt returns the piece on the square and whether there is one.
func (b Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return NoPiece, false
	}
	p := b.squares[sq.File][sq.Rank]
	return p, !p.IsEmpty()
}

// At returns the piece on the square, NoPiece when empty or off the board.
func (b Board) At(sq Square) Piece {
	p, _ := b.PieceAt(sq)
	return p
}

// IsEmpty reports whether the square holds no piece.
func (b Board) IsEmpty(sq Square) bool {
	_, ok := b.PieceAt(sq)
	return !ok
}

// With returns a copy of the board with the square set to piece.
// Use NoPiece to clear a square.
func (b Board) With(sq Square, piece Piece) Board {
	b.set(sq, piece)
	return b
}

// set places a piece on the receiver. Only used while building a board.
func (b *Board) set(sq Square, piece Piece) {
	if !sq.Valid() {
		return
	}
	if piece.IsEmpty() {
		piece = NoPiece
	}
	b.squares[sq.File][sq.Rank] = piece
}

// KingSquare finds the king of the given colour.
func (b Board) KingSquare(colour Colour) (Square, bool) {
	king := Piece{Kind: King, Colour: colour}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.squares[file][rank] == king {
				return Sq(file, rank), true
			}
		}
	}
	return Square{}, false
}

// Occupied returns every occupied square with its piece, a1..h1 then
// a2..h2 and so on.
func (b Board) Occupied() []Placement {
	var out []Placement
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.squares[file][rank]; !p.IsEmpty() {
				out = append(out, Placement{Square: Sq(file, rank), Piece: p})
			}
		}
	}
	return out
}

// Placement pairs a square with the piece standing on it.
type Placement struct {
	Square Square
	Piece  Piece
}

// PositionKey is the canonical signature of a position for repetition
// detection: placement, side to move, castling rights and a capturable
// en passant target. It is comparable and used directly as a map key.
type PositionKey struct {
	Placement    [BoardSize][BoardSize]Piece
	ToMove       Colour
	Castling     CastlingRights
	HasEnPassant bool
	EPSquare     Square
}

// Key returns the repetition signature of the board. The en passant target
// only counts when a pawn of the side to move stands ready to capture onto
// it; otherwise the position is the same as without the double push.
func (b Board) Key() PositionKey {
	key := PositionKey{
		Placement: b.squares,
		ToMove:    b.ToMove,
		Castling:  b.Castling,
	}
	if b.EnPassant && b.canCaptureEnPassant() {
		key.HasEnPassant = true
		key.EPSquare = b.EPSquare
	}
	return key
}

// canCaptureEnPassant reports whether a pawn of the side to move is placed
// to capture onto the en passant square.
func (b Board) canCaptureEnPassant() bool {
	pawn := Piece{Kind: Pawn, Colour: b.ToMove}
	dir := b.ToMove.Forward()
	for _, df := range []int{-1, 1} {
		if from, ok := b.EPSquare.Offset(df, -dir); ok && b.At(from) == pawn {
			return true
		}
	}
	return false
}
