// Package engine provides chess move generation and rule evaluation.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// offset is a (file, rank) step.
type offset [2]int

var (
	knightOffsets   = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalOffsets = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightOffsets = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// pieceGeometry describes how a non-pawn piece moves: its step offsets and
// whether it repeats them until blocked.
type pieceGeometry struct {
	offsets []offset
	slides  bool
}

var geometry = map[chess.PieceKind]pieceGeometry{
	chess.Knight: {knightOffsets, false},
	chess.Bishop: {diagonalOffsets, true},
	chess.Rook:   {straightOffsets, true},
	chess.Queen:  {append(append([]offset{}, diagonalOffsets...), straightOffsets...), true},
	chess.King:   {kingOffsets, false},
}

// PseudoLegalMoves returns every move the side to move could make by piece
// geometry alone. Moves that leave the mover's own king attacked are
// included; castling is only offered when the king's origin, transit and
// destination squares are unattacked.
func PseudoLegalMoves(board chess.Board) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	colour := board.ToMove
	for _, pl := range board.Occupied() {
		if pl.Piece.Colour != colour {
			continue
		}
		if pl.Piece.Kind == chess.Pawn {
			moves = appendPawnMoves(moves, board, pl.Square, pl.Piece)
			continue
		}
		moves = appendPieceMoves(moves, board, pl.Square, pl.Piece)
		if pl.Piece.Kind == chess.King {
			moves = appendCastlingMoves(moves, board, pl.Square, pl.Piece)
		}
	}
	return moves
}

// appendPieceMoves adds the steps and slides of a knight, bishop, rook,
// queen or king.
func appendPieceMoves(moves []chess.Move, board chess.Board, from chess.Square, piece chess.Piece) []chess.Move {
	geo := geometry[piece.Kind]
	for _, off := range geo.offsets {
		to, ok := from.Offset(off[0], off[1])
		for ok {
			target := board.At(to)
			if target.IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Class: chess.PieceMove})
			} else {
				if target.Colour != piece.Colour {
					moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target, Class: chess.PieceMove})
				}
				break
			}
			if !geo.slides {
				break
			}
			to, ok = to.Offset(off[0], off[1])
		}
	}
	return moves
}

// appendPawnMoves adds pushes, double pushes, captures, en passant and
// promotions for the pawn on from.
func appendPawnMoves(moves []chess.Move, board chess.Board, from chess.Square, pawn chess.Piece) []chess.Move {
	dir := pawn.Colour.Forward()
	startRank := pawn.Colour.HomeRank() + dir
	lastRank := pawn.Colour.Opposite().HomeRank()

	add := func(to chess.Square, captured chess.Piece) {
		if to.Rank == lastRank {
			for _, kind := range chess.PromotionKinds {
				moves = append(moves, chess.Move{
					From: from, To: to, Piece: pawn, Captured: captured,
					Promotion: kind, Class: chess.PawnMoveWithPromotion,
				})
			}
			return
		}
		moves = append(moves, chess.Move{From: from, To: to, Piece: pawn, Captured: captured, Class: chess.PawnMove})
	}

	if one, ok := from.Offset(0, dir); ok && board.IsEmpty(one) {
		add(one, chess.NoPiece)
		if from.Rank == startRank {
			if two, ok := one.Offset(0, dir); ok && board.IsEmpty(two) {
				add(two, chess.NoPiece)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if target := board.At(to); !target.IsEmpty() {
			if target.Colour != pawn.Colour {
				add(to, target)
			}
			continue
		}
		if board.EnPassant && to == board.EPSquare {
			moves = append(moves, chess.Move{
				From: from, To: to, Piece: pawn,
				Captured: chess.Piece{Kind: chess.Pawn, Colour: pawn.Colour.Opposite()},
				Class:    chess.EnPassantPawnMove,
			})
		}
	}
	return moves
}

// castleSide describes one castling option for a colour.
type castleSide struct {
	kingside  bool
	rookFile  int
	emptyFrom int // files that must be empty, inclusive range
	emptyTo   int
	class     chess.MoveClass
}

var castleSides = []castleSide{
	{kingside: true, rookFile: 7, emptyFrom: 5, emptyTo: 6, class: chess.KingsideCastle},
	{kingside: false, rookFile: 0, emptyFrom: 1, emptyTo: 3, class: chess.QueensideCastle},
}

// appendCastlingMoves adds the castles still available to the king on from.
// A castle needs the right, the rook on its corner, empty squares between,
// and no attack on the king's origin, transit or destination.
func appendCastlingMoves(moves []chess.Move, board chess.Board, from chess.Square, king chess.Piece) []chess.Move {
	colour := king.Colour
	rank := colour.HomeRank()
	if from != chess.Sq(4, rank) {
		return moves
	}
	enemy := colour.Opposite()
	rook := chess.Piece{Kind: chess.Rook, Colour: colour}

	for _, side := range castleSides {
		if side.kingside && !board.Castling.Kingside(colour) {
			continue
		}
		if !side.kingside && !board.Castling.Queenside(colour) {
			continue
		}
		if board.At(chess.Sq(side.rookFile, rank)) != rook {
			continue
		}
		if !filesEmpty(board, rank, side.emptyFrom, side.emptyTo) {
			continue
		}
		_, to := chess.CastleSquares(colour, side.kingside)
		if castlePathAttacked(board, from, to, enemy) {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: to, Piece: king, Class: side.class})
	}
	return moves
}

// filesEmpty reports whether files lo..hi on rank hold no pieces.
func filesEmpty(board chess.Board, rank, lo, hi int) bool {
	for file := lo; file <= hi; file++ {
		if !board.IsEmpty(chess.Sq(file, rank)) {
			return false
		}
	}
	return true
}

// castlePathAttacked reports whether any square the king stands on or
// crosses while castling is attacked.
func castlePathAttacked(board chess.Board, from, to chess.Square, by chess.Colour) bool {
	step := 1
	if to.File < from.File {
		step = -1
	}
	for file := from.File; ; file += step {
		if IsSquareAttacked(board, chess.Sq(file, from.Rank), by) {
			return true
		}
		if file == to.File {
			return false
		}
	}
}
