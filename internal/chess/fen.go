package chess

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN creates a board from a FEN string. The side to move, castling,
// en passant and clock fields are optional and default to "w - - 0 1".
// Positions without exactly one king per side are rejected.
func ParseFEN(fen string) (Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Board{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := NewBoard()

	if err := parsePiecePositions(&board, parts[0]); err != nil {
		return Board{}, err
	}
	if err := parseSideToMove(&board, parts); err != nil {
		return Board{}, err
	}
	if err := parseCastlingRights(&board, parts); err != nil {
		return Board{}, err
	}
	if err := parseEnPassant(&board, parts); err != nil {
		return Board{}, err
	}
	if err := parseClocks(&board, parts); err != nil {
		return Board{}, err
	}
	if err := validateKings(board); err != nil {
		return Board{}, err
	}

	return board, nil
}

// MustParseFEN is ParseFEN for fixtures known to be valid; it panics on error.
func MustParseFEN(fen string) Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != BoardSize {
		return fmt.Errorf("want %d ranks, got %d: %w", BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := KindFromLetter(byte(c))
				if kind == NoKind {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= BoardSize {
					return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
				}
				colour := White
				if unicode.IsLower(c) {
					colour = Black
				}
				if kind == Pawn && (rank == 0 || rank == BoardSize-1) {
					return fmt.Errorf("pawn on rank %d: %w", rank+1, errors.ErrInvalidFEN)
				}
				board.set(Sq(file, rank), Piece{Kind: kind, Colour: colour})
				file++
			}
		}
		if file != BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = White
	case "b":
		board.ToMove = Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *Board, parts []string) error {
	board.Castling = CastlingRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.Castling.WhiteKingside = true
		case 'Q':
			board.Castling.WhiteQueenside = true
		case 'k':
			board.Castling.BlackKingside = true
		case 'q':
			board.Castling.BlackQueenside = true
		default:
			return fmt.Errorf("invalid castling flag: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *Board, parts []string) error {
	board.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant %v: %w", err, errors.ErrInvalidFEN)
	}
	want := 5
	if board.ToMove == Black {
		want = 2
	}
	if sq.Rank != want {
		return fmt.Errorf("en passant square %s on wrong rank: %w", sq, errors.ErrInvalidFEN)
	}
	pushed, _ := sq.Offset(0, -board.ToMove.Forward())
	if board.At(pushed) != (Piece{Kind: Pawn, Colour: board.ToMove.Opposite()}) || !board.IsEmpty(sq) {
		return fmt.Errorf("en passant square %s has no pawn that just advanced: %w", sq, errors.ErrInvalidFEN)
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		board.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid move number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		board.MoveNumber = n
	}
	return nil
}

// validateKings enforces exactly one king of each colour.
func validateKings(board Board) error {
	counts := map[Colour]int{}
	for _, pl := range board.Occupied() {
		if pl.Piece.Kind == King {
			counts[pl.Piece.Colour]++
		}
	}
	for _, colour := range []Colour{White, Black} {
		if counts[colour] != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, counts[colour], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// FEN converts the board to a FEN string.
func (b Board) FEN() string {
	var sb strings.Builder

	b.writePiecePositions(&sb)
	sb.WriteByte(' ')
	if b.ToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	b.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	if b.EnPassant {
		sb.WriteString(b.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", b.HalfmoveClock, b.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func (b Board) writePiecePositions(sb *strings.Builder) {
	for rank := BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < BoardSize; file++ {
			piece := b.squares[file][rank]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func (b Board) writeCastlingRights(sb *strings.Builder) {
	if !b.Castling.Any() {
		sb.WriteByte('-')
		return
	}
	if b.Castling.WhiteKingside {
		sb.WriteByte('K')
	}
	if b.Castling.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if b.Castling.BlackKingside {
		sb.WriteByte('k')
	}
	if b.Castling.BlackQueenside {
		sb.WriteByte('q')
	}
}
