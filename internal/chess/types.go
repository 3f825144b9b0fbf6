// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the colour.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PieceKind represents a chess piece type.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionKinds are the kinds a pawn may promote to, strongest first.
var PromotionKinds = []PieceKind{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts an uppercase or lowercase piece letter to a kind.
// It returns NoKind for anything that is not a piece letter.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// Piece is a coloured piece. The zero value is the empty cell.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NoPiece is the empty cell.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty returns true for the empty cell.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// FENLetter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black, '.' for the empty cell.
func (p Piece) FENLetter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter |= 0x20 // lowercase is +32 uppercase
	}
	return letter
}

// Glyph returns the unicode chess symbol for the piece, or "" when empty.
func (p Piece) Glyph() string {
	white := [...]string{"", "♙", "♘", "♗", "♖", "♕", "♔"}
	black := [...]string{"", "♟", "♞", "♝", "♜", "♛", "♚"}
	if int(p.Kind) >= len(white) {
		return ""
	}
	if p.Colour == White {
		return white[p.Kind]
	}
	return black[p.Kind]
}

// String returns a readable description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)

// Square is a board coordinate. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File int
	Rank int
}

// Sq creates a square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: want two characters", s)
	}
	sq := Square{File: int(s[0]) - FileBase, Rank: int(s[1]) - RankBase}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("square %q: off the board", s)
	}
	return sq, nil
}

// MustSquare parses algebraic coordinates and panics on failure.
// Intended for package-level tables and tests.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether both coordinates lie on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square shifted by df files and dr ranks, and whether
// it is still on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	next := Square{File: s.File + df, Rank: s.Rank + dr}
	return next, next.Valid()
}

// FileLetter returns the file character 'a'-'h'.
func (s Square) FileLetter() byte {
	return byte(FileBase + s.File)
}

// RankDigit returns the rank character '1'-'8'.
func (s Square) RankDigit() byte {
	return byte(RankBase + s.Rank)
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (s.File+s.Rank)%2 == 1
}

// String returns algebraic coordinates such as "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}
